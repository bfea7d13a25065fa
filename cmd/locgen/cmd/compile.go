package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/locgen/locgen/internal/discovery"
	"github.com/locgen/locgen/internal/pipeline"
)

var compileCmd = &cobra.Command{
	Use:   "compile [project-id]",
	Short: "Run one compile pass",
	Long: `Compiles the translation files of every discovered project into
typed Go accessor code. With a project identifier, only that project
compiles.

Examples:
  locgen compile                 # Every project in the workspace
  locgen compile apps/web        # One project
  locgen compile .               # The workspace root project`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	projects, err := selectProjects(args)
	if err != nil {
		return err
	}

	anyFailed := false
	for _, project := range projects {
		fmt.Printf("%s (%s)\n", project.Name, project.ID)

		for _, result := range pipeline.Compile(project) {
			if result.Success {
				fmt.Printf("  ok    %s (%d keys)\n", result.OutputPath, result.KeysCount)
				continue
			}
			anyFailed = true
			for _, message := range result.Errors {
				fmt.Printf("  fail  %s\n", message)
			}
		}
	}

	if anyFailed {
		return fmt.Errorf("compilation finished with errors")
	}
	return nil
}

// selectProjects discovers the workspace and narrows to one project when
// an identifier was given
func selectProjects(args []string) ([]discovery.Project, error) {
	projects, err := discovery.Discover(workspaceRoot)
	if err != nil {
		printError("project discovery failed", err)
		return nil, err
	}
	if len(projects) == 0 {
		return nil, fmt.Errorf("no translation projects found in %s", workspaceRoot)
	}

	if len(args) == 0 {
		return projects, nil
	}

	project, ok := discovery.Find(projects, args[0])
	if !ok {
		return nil, fmt.Errorf("unknown project %q (try 'locgen projects')", args[0])
	}
	return []discovery.Project{project}, nil
}
