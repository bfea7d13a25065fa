package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is stamped at build time via -ldflags
var Version = "v0.1.0-dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the locgen version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("locgen %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
