package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tickbridge/internal/application"
	"tickbridge/internal/application/commands"
	"tickbridge/internal/domain"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var taskFlags struct {
	projectID  string
	title      string
	content    string
	priority   int
	startDate  string
	dueDate    string
	timeZone   string
	repeat     string
	reminders  string
	addTags    string
	removeTags string
	clear      string
}

// taskPatch assembles a TaskPatch from the flags the caller actually set.
// Unset flags stay out of the patch so the merge leaves those fields alone.
func taskPatch(cmd *cobra.Command) domain.TaskPatch {
	patch := domain.TaskPatch{
		Title:      taskFlags.title,
		Content:    taskFlags.content,
		StartDate:  taskFlags.startDate,
		DueDate:    taskFlags.dueDate,
		TimeZone:   taskFlags.timeZone,
		RepeatFlag: taskFlags.repeat,
		Reminders:  taskFlags.reminders,
		ProjectID:  taskFlags.projectID,
	}
	if cmd.Flags().Changed("priority") {
		prio := taskFlags.priority
		patch.Priority = &prio
	}
	if taskFlags.addTags != "" {
		patch.AddTags = domain.SplitList(taskFlags.addTags)
	}
	if taskFlags.removeTags != "" {
		patch.RemoveTags = domain.SplitList(taskFlags.removeTags)
	}
	if taskFlags.clear != "" {
		patch.Clear = domain.SplitList(taskFlags.clear)
	}
	return patch
}

func addTaskPatchFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&taskFlags.content, "content", "", "task body text")
	f.IntVar(&taskFlags.priority, "priority", 0, "priority: 0 none, 1 low, 3 medium, 5 high")
	f.StringVar(&taskFlags.startDate, "start", "", "start date")
	f.StringVar(&taskFlags.dueDate, "due", "", "due date")
	f.StringVar(&taskFlags.timeZone, "tz", "", "IANA time zone for the dates")
	f.StringVar(&taskFlags.repeat, "repeat", "", "recurrence rule, e.g. RRULE:FREQ=DAILY")
	f.StringVar(&taskFlags.reminders, "reminders", "", "comma-separated reminder triggers")
	f.StringVar(&taskFlags.addTags, "add-tags", "", "comma-separated tags to add")
	f.StringVar(&taskFlags.removeTags, "remove-tags", "", "comma-separated tags to remove")
	f.StringVar(&taskFlags.clear, "clear", "", "comma-separated fields to reset (e.g. dueDate,tags)")
}

var taskListCmd = &cobra.Command{
	Use:   "list [project-id]",
	Short: "List the open tasks of a project (default: inbox)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID := domain.InboxProject
		if len(args) == 1 {
			projectID = args[0]
		}

		listCmd := commands.NewListTasksCommand(GetGateway(), application.DirectLocator(projectID))
		tasks, err := listCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		for _, t := range tasks {
			due := ""
			if t.DueDate != nil {
				due = "  due " + *t.DueDate
			}
			fmt.Printf("%s  %s%s\n", t.ID, t.Title, due)
		}
		return nil
	},
}

var taskGetCmd = &cobra.Command{
	Use:   "get <task-id>",
	Short: "Show one task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		getCmd := commands.NewGetTaskCommand(GetGateway(), args[0], taskFlags.projectID)
		task, err := getCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("%s  %s\n", task.ID, task.Title)
		fmt.Printf("project: %s  priority: %d  status: %d\n", task.ProjectID, task.Priority, task.Status)
		if task.DueDate != nil {
			fmt.Printf("due: %s\n", *task.DueDate)
		}
		if len(task.Tags) > 0 {
			fmt.Printf("tags: %s\n", strings.Join(task.Tags, ", "))
		}
		if task.Content != "" {
			fmt.Printf("\n%s\n", task.Content)
		}
		for _, item := range task.Items {
			mark := " "
			if item.Status == domain.StatusCompleted {
				mark = "x"
			}
			fmt.Printf("- [%s] %s\n", mark, item.Title)
		}
		return nil
	},
}

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a task (inbox unless --project is given)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskFlags.title = args[0]

		addCmd := commands.NewCreateTaskCommand(GetGateway(), taskPatch(cmd))
		result, err := addCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var taskUpdateCmd = &cobra.Command{
	Use:   "update <task-id>",
	Short: "Partially update a task; unset flags leave fields alone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		updateCmd := commands.NewUpdateTaskCommand(GetGateway(), args[0], taskFlags.projectID, taskPatch(cmd))
		result, err := updateCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var taskCompleteCmd = &cobra.Command{
	Use:   "complete <task-id>",
	Short: "Mark a task completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		completeCmd := commands.NewCompleteTaskCommand(GetGateway(), args[0], taskFlags.projectID)
		result, err := completeCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a task permanently",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deleteCmd := commands.NewDeleteTaskCommand(GetGateway(), args[0], taskFlags.projectID)
		result, err := deleteCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.PersistentFlags().StringVarP(&taskFlags.projectID, "project", "p", "", "project the task lives in")

	addTaskPatchFlags(taskAddCmd)
	addTaskPatchFlags(taskUpdateCmd)
	taskUpdateCmd.Flags().StringVar(&taskFlags.title, "title", "", "new task title")

	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskGetCmd)
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskUpdateCmd)
	taskCmd.AddCommand(taskCompleteCmd)
	taskCmd.AddCommand(taskDeleteCmd)
}
