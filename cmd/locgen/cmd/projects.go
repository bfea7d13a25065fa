package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/locgen/locgen/internal/discovery"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List the translation projects of a workspace",
	Long: `Discovers every translation project under the workspace root:
directories with a locgen configuration file, workspace packages with a
locales directory, and the root itself.

Examples:
  locgen projects
  locgen -w ../monorepo projects`,
	RunE: runProjects,
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}

func runProjects(cmd *cobra.Command, args []string) error {
	projects, err := discovery.Discover(workspaceRoot)
	if err != nil {
		printError("project discovery failed", err)
		return err
	}

	if len(projects) == 0 {
		fmt.Println("No translation projects found.")
		return nil
	}

	for _, project := range projects {
		config := project.ConfigPath
		if config == "" {
			config = "(defaults)"
		}
		fmt.Printf("%-24s %-24s %s\n", project.ID, project.Name, config)
		fmt.Printf("%-24s source=%s targets=%v layout=%s\n",
			"", project.Config.SourceLocale, project.Config.TargetLocales, project.Config.Layout)
	}
	return nil
}
