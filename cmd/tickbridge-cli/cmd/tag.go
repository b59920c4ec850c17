package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tickbridge/internal/application/commands"
	"tickbridge/internal/domain"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage tags (requires session auth)",
}

var tagFlags struct {
	color  string
	parent string
	clear  string
}

func tagPatch() domain.TagPatch {
	patch := domain.TagPatch{
		Color:  tagFlags.color,
		Parent: tagFlags.parent,
	}
	if tagFlags.clear != "" {
		patch.Clear = domain.SplitList(tagFlags.clear)
	}
	return patch
}

func addTagPatchFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&tagFlags.color, "color", "", "hex color")
	f.StringVar(&tagFlags.parent, "parent", "", "parent tag name")
	f.StringVar(&tagFlags.clear, "clear", "", "comma-separated fields to reset (color,parent)")
}

var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, err := commands.NewListTagsCommand(GetGateway()).Execute(context.Background())
		if err != nil {
			return err
		}
		for _, t := range tags {
			if t.Parent != "" {
				fmt.Printf("%s  (under %s)\n", t.Name, t.Parent)
			} else {
				fmt.Println(t.Name)
			}
		}
		return nil
	},
}

var tagAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewCreateTagCommand(GetGateway(), args[0], tagPatch()).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var tagUpdateCmd = &cobra.Command{
	Use:   "update <name>",
	Short: "Partially update a tag (color, parent)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewUpdateTagCommand(GetGateway(), args[0], tagPatch()).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var tagRenameCmd = &cobra.Command{
	Use:   "rename <old-name> <new-name>",
	Short: "Rename a tag everywhere it is used",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewRenameTagCommand(GetGateway(), args[0], args[1]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var tagDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewDeleteTagCommand(GetGateway(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagCmd)

	addTagPatchFlags(tagAddCmd)
	addTagPatchFlags(tagUpdateCmd)

	tagCmd.AddCommand(tagListCmd)
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagUpdateCmd)
	tagCmd.AddCommand(tagRenameCmd)
	tagCmd.AddCommand(tagDeleteCmd)
}
