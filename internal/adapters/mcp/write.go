package mcp

import (
	"context"
	"strconv"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tickbridge/internal/application/commands"
	"tickbridge/internal/domain"
	"tickbridge/internal/ports"
)

// RegisterWriteTools adds all mutating task tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, gateway ports.TaskGateway) {
	s.AddTool(createTaskTool(), createTaskHandler(gateway))
	s.AddTool(updateTaskTool(), updateTaskHandler(gateway))
	s.AddTool(completeTaskTool(), completeTaskHandler(gateway))
	s.AddTool(deleteTaskTool(), deleteTaskHandler(gateway))
	s.AddTool(createProjectTool(), createProjectHandler(gateway))
	s.AddTool(renameTagTool(), renameTagHandler(gateway))
	s.AddTool(habitCheckinTool(), habitCheckinHandler(gateway))
}

// taskPatchArgs pulls the shared partial-update arguments out of a tool
// request. Absent arguments stay at their zero value, which the merge layer
// treats as "leave alone".
func taskPatchArgs(req mcp.CallToolRequest) domain.TaskPatch {
	patch := domain.TaskPatch{
		Title:      req.GetString("title", ""),
		Content:    req.GetString("content", ""),
		StartDate:  req.GetString("start_date", ""),
		DueDate:    req.GetString("due_date", ""),
		TimeZone:   req.GetString("time_zone", ""),
		RepeatFlag: req.GetString("repeat", ""),
		Reminders:  req.GetString("reminders", ""),
		ProjectID:  req.GetString("project_id", ""),
	}
	if raw := req.GetString("priority", ""); raw != "" {
		if prio, err := strconv.Atoi(raw); err == nil {
			patch.Priority = &prio
		}
	}
	if raw := req.GetString("add_tags", ""); raw != "" {
		patch.AddTags = domain.SplitList(raw)
	}
	if raw := req.GetString("remove_tags", ""); raw != "" {
		patch.RemoveTags = domain.SplitList(raw)
	}
	if raw := req.GetString("clear", ""); raw != "" {
		patch.Clear = domain.SplitList(raw)
	}
	return patch
}

func withTaskPatchArgs(opts ...mcp.ToolOption) []mcp.ToolOption {
	return append(opts,
		mcp.WithString("title", mcp.Description("Task title")),
		mcp.WithString("content", mcp.Description("Task body text")),
		mcp.WithString("priority", mcp.Description("Priority: 0 none, 1 low, 3 medium, 5 high")),
		mcp.WithString("start_date", mcp.Description("Start date, e.g. 2026-09-01T09:00:00.000+0000")),
		mcp.WithString("due_date", mcp.Description("Due date, same format as start_date")),
		mcp.WithString("time_zone", mcp.Description("IANA time zone for the dates")),
		mcp.WithString("repeat", mcp.Description("Recurrence rule, e.g. RRULE:FREQ=DAILY")),
		mcp.WithString("reminders", mcp.Description("Comma-separated reminder triggers")),
		mcp.WithString("add_tags", mcp.Description("Comma-separated tags to add")),
		mcp.WithString("remove_tags", mcp.Description("Comma-separated tags to remove")),
		mcp.WithString("clear", mcp.Description("Comma-separated fields to reset (e.g. dueDate,tags)")),
	)
}

// --- create_task ---

func createTaskTool() mcp.Tool {
	opts := withTaskPatchArgs(
		mcp.WithDescription("Create a task. Goes to the inbox unless project_id is given."),
		mcp.WithString("project_id", mcp.Description("Project to create the task in")),
	)
	return mcp.NewTool("create_task", opts...)
}

func createTaskHandler(gateway ports.TaskGateway) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewCreateTaskCommand(gateway, taskPatchArgs(req))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- update_task ---

func updateTaskTool() mcp.Tool {
	opts := withTaskPatchArgs(
		mcp.WithDescription("Partially update a task. Only supplied fields change; use `clear` to reset fields."),
		mcp.WithString("task_id", mcp.Description("Task ID"), mcp.Required()),
		mcp.WithString("project_id", mcp.Description("Project the task lives in")),
	)
	return mcp.NewTool("update_task", opts...)
}

func updateTaskHandler(gateway ports.TaskGateway) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		taskID := req.GetString("task_id", "")
		projectID := req.GetString("project_id", "")

		cmd := commands.NewUpdateTaskCommand(gateway, taskID, projectID, taskPatchArgs(req))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- complete_task ---

func completeTaskTool() mcp.Tool {
	return mcp.NewTool("complete_task",
		mcp.WithDescription("Mark a task as completed."),
		mcp.WithString("task_id", mcp.Description("Task ID"), mcp.Required()),
		mcp.WithString("project_id", mcp.Description("Project the task lives in")),
	)
}

func completeTaskHandler(gateway ports.TaskGateway) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewCompleteTaskCommand(gateway, req.GetString("task_id", ""), req.GetString("project_id", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete_task ---

func deleteTaskTool() mcp.Tool {
	return mcp.NewTool("delete_task",
		mcp.WithDescription("Delete a task permanently."),
		mcp.WithString("task_id", mcp.Description("Task ID"), mcp.Required()),
		mcp.WithString("project_id", mcp.Description("Project the task lives in")),
	)
}

func deleteTaskHandler(gateway ports.TaskGateway) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewDeleteTaskCommand(gateway, req.GetString("task_id", ""), req.GetString("project_id", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- create_project ---

func createProjectTool() mcp.Tool {
	return mcp.NewTool("create_project",
		mcp.WithDescription("Create a new project (task list)."),
		mcp.WithString("name", mcp.Description("Project name"), mcp.Required()),
		mcp.WithString("color", mcp.Description("Hex color, e.g. #F18181")),
		mcp.WithString("view_mode", mcp.Description("View mode: list, kanban or timeline")),
	)
}

func createProjectHandler(gateway ports.TaskGateway) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		patch := domain.ProjectPatch{
			Name:     req.GetString("name", ""),
			Color:    req.GetString("color", ""),
			ViewMode: req.GetString("view_mode", ""),
		}
		result, err := commands.NewCreateProjectCommand(gateway, patch).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- rename_tag ---

func renameTagTool() mcp.Tool {
	return mcp.NewTool("rename_tag",
		mcp.WithDescription("Rename a tag everywhere it is used."),
		mcp.WithString("old_name", mcp.Description("Current tag name"), mcp.Required()),
		mcp.WithString("new_name", mcp.Description("New tag name"), mcp.Required()),
	)
}

func renameTagHandler(gateway ports.TaskGateway) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewRenameTagCommand(gateway, req.GetString("old_name", ""), req.GetString("new_name", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- habit_checkin ---

func habitCheckinTool() mcp.Tool {
	return mcp.NewTool("habit_checkin",
		mcp.WithDescription("Record a habit check-in for a day."),
		mcp.WithString("habit_id", mcp.Description("Habit ID"), mcp.Required()),
		mcp.WithString("stamp", mcp.Description("Day as YYYYMMDD. Defaults to today.")),
		mcp.WithString("value", mcp.Description("Check-in amount. Defaults to 1.")),
	)
}

func habitCheckinHandler(gateway ports.TaskGateway) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		value := 1.0
		if raw := req.GetString("value", ""); raw != "" {
			if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
				value = parsed
			}
		}
		stamp := req.GetString("stamp", time.Now().Format("20060102"))
		cmd := commands.NewCheckinHabitCommand(gateway, req.GetString("habit_id", ""), stamp, value)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
