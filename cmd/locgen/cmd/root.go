package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	lgerror "github.com/locgen/locgen/core/error"
	"github.com/locgen/locgen/core/log"
)

var (
	workspaceRoot string
	verbose       bool
	jsonLogs      bool
)

var rootCmd = &cobra.Command{
	Use:   "locgen",
	Short: "locgen - Typed locale code generator",
	Long: `locgen compiles translation source files (JSON, YAML, TOML) into
strongly-typed Go accessor code and keeps it in sync while you work.

Commands:
  projects - List the translation projects of a workspace
  compile  - Run one compile pass
  watch    - Recompile continuously on file changes`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger := log.Default()
		if verbose {
			logger = logger.WithLevel(log.LevelDebug)
		}
		if jsonLogs {
			logger = logger.WithFormat(log.FormatJSON)
		}
		log.SetDefault(logger)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspaceRoot, "workspace", "w", ".", "Workspace root directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "log-json", false, "Emit logs as JSON")
}

func printError(msg string, err error) {
	fmt.Fprintln(os.Stderr, formatError(msg, err))
}

// formatError prefixes coded pipeline errors with their code so failures
// are grep-able in scripted use
func formatError(msg string, err error) string {
	if code := lgerror.GetCode(err); code != lgerror.CodeUnknown {
		return fmt.Sprintf("Error: %s [%s]: %v", msg, code, err)
	}
	return fmt.Sprintf("Error: %s: %v", msg, err)
}
