package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tickbridge/internal/application"
	"tickbridge/internal/application/commands"
	"tickbridge/internal/domain"
	"tickbridge/internal/ports"
)

// RegisterReadTools adds all read-only task tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, gateway ports.TaskGateway) {
	s.AddTool(listProjectsTool(), listProjectsHandler(gateway))
	s.AddTool(listTasksTool(), listTasksHandler(gateway))
	s.AddTool(getTaskTool(), getTaskHandler(gateway))
	s.AddTool(listTagsTool(), listTagsHandler(gateway))
	s.AddTool(listHabitsTool(), listHabitsHandler(gateway))
	s.AddTool(focusHeatmapTool(), focusHeatmapHandler(gateway))
	s.AddTool(profileTool(), profileHandler(gateway))
}

// --- list_projects ---

func listProjectsTool() mcp.Tool {
	return mcp.NewTool("list_projects",
		mcp.WithDescription("List all projects (task lists) in the account."),
	)
}

func listProjectsHandler(gateway ports.TaskGateway) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		projects, err := commands.NewListProjectsCommand(gateway).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(projects, formatProject)
	}
}

// --- list_tasks ---

func listTasksTool() mcp.Tool {
	return mcp.NewTool("list_tasks",
		mcp.WithDescription("List the open tasks of a project. Use project ID \"inbox\" for the inbox."),
		mcp.WithString("project_id",
			mcp.Description("Project ID to list tasks from. Omit for the inbox."),
		),
	)
}

func listTasksHandler(gateway ports.TaskGateway) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		projectID := req.GetString("project_id", domain.InboxProject)

		cmd := commands.NewListTasksCommand(gateway, application.DirectLocator(projectID))
		tasks, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(tasks, formatTask)
	}
}

// --- get_task ---

func getTaskTool() mcp.Tool {
	return mcp.NewTool("get_task",
		mcp.WithDescription("Fetch one task with its full content, dates, tags and checklist."),
		mcp.WithString("task_id",
			mcp.Description("Task ID"),
			mcp.Required(),
		),
		mcp.WithString("project_id",
			mcp.Description("Project the task lives in. Omit for the inbox."),
		),
	)
}

func getTaskHandler(gateway ports.TaskGateway) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		taskID := req.GetString("task_id", "")
		projectID := req.GetString("project_id", domain.InboxProject)

		task, err := commands.NewGetTaskCommand(gateway, taskID, projectID).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%s  %s\n", task.ID, task.Title)
		fmt.Fprintf(&sb, "project: %s  priority: %d  status: %d\n", task.ProjectID, task.Priority, task.Status)
		if task.DueDate != nil {
			fmt.Fprintf(&sb, "due: %s\n", *task.DueDate)
		}
		if len(task.Tags) > 0 {
			fmt.Fprintf(&sb, "tags: %s\n", strings.Join(task.Tags, ", "))
		}
		if task.Content != "" {
			fmt.Fprintf(&sb, "\n%s\n", task.Content)
		}
		for _, item := range task.Items {
			mark := " "
			if item.Status == domain.StatusCompleted {
				mark = "x"
			}
			fmt.Fprintf(&sb, "- [%s] %s\n", mark, item.Title)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_tags ---

func listTagsTool() mcp.Tool {
	return mcp.NewTool("list_tags",
		mcp.WithDescription("List all tags in the account with their colors and parents."),
	)
}

func listTagsHandler(gateway ports.TaskGateway) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tags, err := commands.NewListTagsCommand(gateway).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(tags, formatTag)
	}
}

// --- list_habits ---

func listHabitsTool() mcp.Tool {
	return mcp.NewTool("list_habits",
		mcp.WithDescription("List all tracked habits with their goals."),
	)
}

func listHabitsHandler(gateway ports.TaskGateway) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		habits, err := commands.NewListHabitsCommand(gateway).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(habits, formatHabit)
	}
}

// --- focus_heatmap ---

func focusHeatmapTool() mcp.Tool {
	return mcp.NewTool("focus_heatmap",
		mcp.WithDescription("Per-day focus (pomodoro) minutes for a date range. Defaults to the last 30 days."),
		mcp.WithString("start",
			mcp.Description("Start day as YYYYMMDD"),
		),
		mcp.WithString("end",
			mcp.Description("End day as YYYYMMDD"),
		),
	)
}

func focusHeatmapHandler(gateway ports.TaskGateway) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		now := time.Now()
		start := req.GetString("start", now.AddDate(0, 0, -30).Format("20060102"))
		end := req.GetString("end", now.Format("20060102"))

		summaries, err := commands.NewFocusHeatmapCommand(gateway, start, end).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(summaries, func(s domain.FocusSummary) string {
			return fmt.Sprintf("%s  %d min", s.Day, s.Duration/60)
		})
	}
}

// --- profile ---

func profileTool() mcp.Tool {
	return mcp.NewTool("profile",
		mcp.WithDescription("Show the signed-in user's profile and preferences."),
	)
}

func profileHandler(gateway ports.TaskGateway) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		profile, err := commands.NewProfileCommand(gateway).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s (%s, %s)", profile.Username, profile.Name, profile.TimeZone)), nil
	}
}

// --- formatting ---

func formatProject(p domain.Project) string {
	return fmt.Sprintf("%s  %s", p.ID, p.Name)
}

func formatTask(t domain.Task) string {
	due := ""
	if t.DueDate != nil {
		due = "  due " + *t.DueDate
	}
	return fmt.Sprintf("%s  %s%s", t.ID, t.Title, due)
}

func formatTag(t domain.Tag) string {
	if t.Parent != "" {
		return fmt.Sprintf("%s  (under %s)", t.Name, t.Parent)
	}
	return t.Name
}

func formatHabit(h domain.Habit) string {
	return fmt.Sprintf("%s  %s  goal %.0f %s", h.ID, h.Name, h.Goal, h.Unit)
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}
