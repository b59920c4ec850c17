package commands

import (
	"context"
	"fmt"

	"tickbridge/internal/application"
	"tickbridge/internal/domain"
	"tickbridge/internal/ports"
)

// TaskResult contains the outcome of a task mutation
type TaskResult struct {
	Task    *domain.Task
	Message string
}

// CreateTaskCommand creates a task from a field patch
type CreateTaskCommand struct {
	gateway ports.TaskGateway
	Patch   domain.TaskPatch
}

// NewCreateTaskCommand creates a new CreateTaskCommand
func NewCreateTaskCommand(gateway ports.TaskGateway, patch domain.TaskPatch) *CreateTaskCommand {
	return &CreateTaskCommand{gateway: gateway, Patch: patch}
}

// Validate checks if the create operation is valid
func (c *CreateTaskCommand) Validate() error {
	if c.Patch.Title == "" {
		return &application.ValidationError{
			Field:   "title",
			Message: "title is required",
		}
	}
	return nil
}

// Execute runs the create task command
func (c *CreateTaskCommand) Execute(ctx context.Context) (*TaskResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	task, err := c.gateway.CreateTask(ctx, domain.BuildTaskCreate(c.Patch))
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &TaskResult{
		Task:    task,
		Message: fmt.Sprintf("Created task: %s %s", task.ID, task.Title),
	}, nil
}

// UpdateTaskCommand applies a partial update to a task. It fetches the
// current server snapshot first so the full-entity replacement carries every
// untouched field forward; the fetch and the submit are strictly ordered
// within one execution.
type UpdateTaskCommand struct {
	gateway   ports.TaskGateway
	TaskID    string
	ProjectID string
	Patch     domain.TaskPatch
}

// NewUpdateTaskCommand creates a new UpdateTaskCommand
func NewUpdateTaskCommand(gateway ports.TaskGateway, taskID, projectID string, patch domain.TaskPatch) *UpdateTaskCommand {
	return &UpdateTaskCommand{gateway: gateway, TaskID: taskID, ProjectID: projectID, Patch: patch}
}

// Validate checks if the update operation is valid
func (c *UpdateTaskCommand) Validate() error {
	return application.ValidateRequired("taskId", c.TaskID)
}

// Execute runs the update task command
func (c *UpdateTaskCommand) Execute(ctx context.Context) (*TaskResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := c.gateway.GetTask(ctx, c.ProjectID, c.TaskID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch task %s: %w", c.TaskID, err)
	}

	merged := domain.BuildTaskUpdate(*snapshot, c.Patch, c.TaskID, c.ProjectID)
	task, err := c.gateway.ReplaceTask(ctx, merged)
	if err != nil {
		return nil, fmt.Errorf("failed to update task %s: %w", c.TaskID, err)
	}

	return &TaskResult{
		Task:    task,
		Message: fmt.Sprintf("Updated task: %s %s", task.ID, task.Title),
	}, nil
}

// CompleteTaskCommand marks a task completed
type CompleteTaskCommand struct {
	gateway   ports.TaskGateway
	TaskID    string
	ProjectID string
}

// NewCompleteTaskCommand creates a new CompleteTaskCommand
func NewCompleteTaskCommand(gateway ports.TaskGateway, taskID, projectID string) *CompleteTaskCommand {
	return &CompleteTaskCommand{gateway: gateway, TaskID: taskID, ProjectID: projectID}
}

// Validate checks if the complete operation is valid
func (c *CompleteTaskCommand) Validate() error {
	return application.ValidateRequired("taskId", c.TaskID)
}

// Execute runs the complete task command
func (c *CompleteTaskCommand) Execute(ctx context.Context) (*TaskResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.gateway.CompleteTask(ctx, c.ProjectID, c.TaskID); err != nil {
		return nil, fmt.Errorf("failed to complete task %s: %w", c.TaskID, err)
	}

	return &TaskResult{Message: fmt.Sprintf("Completed task: %s", c.TaskID)}, nil
}

// DeleteTaskCommand deletes a task
type DeleteTaskCommand struct {
	gateway   ports.TaskGateway
	TaskID    string
	ProjectID string
}

// NewDeleteTaskCommand creates a new DeleteTaskCommand
func NewDeleteTaskCommand(gateway ports.TaskGateway, taskID, projectID string) *DeleteTaskCommand {
	return &DeleteTaskCommand{gateway: gateway, TaskID: taskID, ProjectID: projectID}
}

// Validate checks if the delete operation is valid
func (c *DeleteTaskCommand) Validate() error {
	return application.ValidateRequired("taskId", c.TaskID)
}

// Execute runs the delete task command
func (c *DeleteTaskCommand) Execute(ctx context.Context) (*TaskResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.gateway.DeleteTask(ctx, c.ProjectID, c.TaskID); err != nil {
		return nil, fmt.Errorf("failed to delete task %s: %w", c.TaskID, err)
	}

	return &TaskResult{Message: fmt.Sprintf("Deleted task: %s", c.TaskID)}, nil
}

// GetTaskCommand fetches a single task
type GetTaskCommand struct {
	gateway   ports.TaskGateway
	TaskID    string
	ProjectID string
}

// NewGetTaskCommand creates a new GetTaskCommand
func NewGetTaskCommand(gateway ports.TaskGateway, taskID, projectID string) *GetTaskCommand {
	return &GetTaskCommand{gateway: gateway, TaskID: taskID, ProjectID: projectID}
}

// Execute runs the get task command
func (c *GetTaskCommand) Execute(ctx context.Context) (*domain.Task, error) {
	if err := application.ValidateRequired("taskId", c.TaskID); err != nil {
		return nil, err
	}
	return c.gateway.GetTask(ctx, c.ProjectID, c.TaskID)
}

// ListTasksCommand lists the tasks of a project
type ListTasksCommand struct {
	gateway ports.TaskGateway
	Project application.ResourceLocator
}

// NewListTasksCommand creates a new ListTasksCommand
func NewListTasksCommand(gateway ports.TaskGateway, project application.ResourceLocator) *ListTasksCommand {
	return &ListTasksCommand{gateway: gateway, Project: project}
}

// Execute runs the list tasks command
func (c *ListTasksCommand) Execute(ctx context.Context) ([]domain.Task, error) {
	projectID, err := c.Project.Normalize()
	if err != nil {
		return nil, err
	}
	return c.gateway.ListTasks(ctx, projectID)
}
