package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tickbridge/internal/application/commands"
	"tickbridge/internal/domain"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects (task lists)",
}

var projectFlags struct {
	color    string
	viewMode string
	groupID  string
	clear    string
}

func projectPatch() domain.ProjectPatch {
	patch := domain.ProjectPatch{
		Color:    projectFlags.color,
		ViewMode: projectFlags.viewMode,
		GroupID:  projectFlags.groupID,
	}
	if projectFlags.clear != "" {
		patch.Clear = domain.SplitList(projectFlags.clear)
	}
	return patch
}

func addProjectPatchFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&projectFlags.color, "color", "", "hex color, e.g. #F18181")
	f.StringVar(&projectFlags.viewMode, "view", "", "view mode: list, kanban or timeline")
	f.StringVar(&projectFlags.groupID, "group", "", "project group to file the project under")
	f.StringVar(&projectFlags.clear, "clear", "", "comma-separated fields to reset (color,groupId)")
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := commands.NewListProjectsCommand(GetGateway()).Execute(context.Background())
		if err != nil {
			return err
		}
		for _, p := range projects {
			fmt.Printf("%s  %s\n", p.ID, p.Name)
		}
		return nil
	},
}

var projectGroupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List project groups (folders)",
	RunE: func(cmd *cobra.Command, args []string) error {
		groups, err := commands.NewListProjectGroupsCommand(GetGateway()).Execute(context.Background())
		if err != nil {
			return err
		}
		for _, g := range groups {
			fmt.Printf("%s  %s\n", g.ID, g.Name)
		}
		return nil
	},
}

var projectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		patch := projectPatch()
		patch.Name = args[0]

		result, err := commands.NewCreateProjectCommand(GetGateway(), patch).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update <project-id>",
	Short: "Partially update a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		patch := projectPatch()
		patch.Name = projectUpdateName

		result, err := commands.NewUpdateProjectCommand(GetGateway(), args[0], patch).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var projectUpdateName string

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <project-id>",
	Short: "Delete a project and everything in it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewDeleteProjectCommand(GetGateway(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectCmd)

	addProjectPatchFlags(projectAddCmd)
	addProjectPatchFlags(projectUpdateCmd)
	projectUpdateCmd.Flags().StringVar(&projectUpdateName, "name", "", "new project name")

	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectGroupsCmd)
	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectUpdateCmd)
	projectCmd.AddCommand(projectDeleteCmd)
}
