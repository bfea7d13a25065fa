package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/locgen/locgen/core/log"
	"github.com/locgen/locgen/internal/pipeline"
	"github.com/locgen/locgen/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [project-id]",
	Short: "Recompile continuously on file changes",
	Long: `Compiles once, then watches the locales directories and recompiles
whenever translation files change. Bursts of changes coalesce into a
single pass. Stop with Ctrl+C.

Examples:
  locgen watch                   # Every project in the workspace
  locgen watch apps/web          # One project`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	projects, err := selectProjects(args)
	if err != nil {
		return err
	}

	var sessions []*watch.Session
	for _, project := range projects {
		project := project
		session := watch.New(project,
			func(passID string, results []pipeline.CompileResult) {
				reportPass(project.ID, passID, results)
			},
			func(err error) {
				printError(fmt.Sprintf("watch error in %s", project.ID), err)
			})

		if err := session.Start(); err != nil {
			for _, started := range sessions {
				started.Stop()
			}
			printError(fmt.Sprintf("failed to watch %s", project.ID), err)
			return err
		}
		sessions = append(sessions, session)
	}

	fmt.Printf("Watching %d project(s). Press Ctrl+C to stop.\n", len(sessions))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	fmt.Println("\nStopping...")
	for _, session := range sessions {
		session.Stop()
	}
	return nil
}

func reportPass(projectID, passID string, results []pipeline.CompileResult) {
	failed := 0
	keys := 0
	for _, result := range results {
		if !result.Success {
			failed++
			for _, message := range result.Errors {
				fmt.Printf("  fail  [%s] %s\n", projectID, message)
			}
			continue
		}
		if result.KeysCount > keys {
			keys = result.KeysCount
		}
	}

	if failed == 0 {
		log.Info("compile pass finished",
			log.String("project", projectID),
			log.String("pass", passID),
			log.Int("keys", keys))
	} else {
		log.Warn("compile pass finished with errors",
			log.String("project", projectID),
			log.String("pass", passID),
			log.Int("failed", failed))
	}
}
