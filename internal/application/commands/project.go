package commands

import (
	"context"
	"fmt"

	"tickbridge/internal/application"
	"tickbridge/internal/domain"
	"tickbridge/internal/ports"
)

// ProjectResult contains the outcome of a project mutation
type ProjectResult struct {
	Project *domain.Project
	Message string
}

// CreateProjectCommand creates a project
type CreateProjectCommand struct {
	gateway ports.TaskGateway
	Patch   domain.ProjectPatch
}

// NewCreateProjectCommand creates a new CreateProjectCommand
func NewCreateProjectCommand(gateway ports.TaskGateway, patch domain.ProjectPatch) *CreateProjectCommand {
	return &CreateProjectCommand{gateway: gateway, Patch: patch}
}

// Validate checks if the create operation is valid
func (c *CreateProjectCommand) Validate() error {
	if c.Patch.Name == "" {
		return &application.ValidationError{
			Field:   "name",
			Message: "name is required",
		}
	}
	return nil
}

// Execute runs the create project command
func (c *CreateProjectCommand) Execute(ctx context.Context) (*ProjectResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	project, err := c.gateway.CreateProject(ctx, domain.BuildProjectUpdate(domain.Project{}, c.Patch, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return &ProjectResult{
		Project: project,
		Message: fmt.Sprintf("Created project: %s %s", project.ID, project.Name),
	}, nil
}

// UpdateProjectCommand applies a partial update to a project
type UpdateProjectCommand struct {
	gateway   ports.TaskGateway
	ProjectID string
	Patch     domain.ProjectPatch
}

// NewUpdateProjectCommand creates a new UpdateProjectCommand
func NewUpdateProjectCommand(gateway ports.TaskGateway, projectID string, patch domain.ProjectPatch) *UpdateProjectCommand {
	return &UpdateProjectCommand{gateway: gateway, ProjectID: projectID, Patch: patch}
}

// Validate checks if the update operation is valid
func (c *UpdateProjectCommand) Validate() error {
	return application.ValidateRequired("projectId", c.ProjectID)
}

// Execute runs the update project command
func (c *UpdateProjectCommand) Execute(ctx context.Context) (*ProjectResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := c.gateway.GetProject(ctx, c.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project %s: %w", c.ProjectID, err)
	}

	merged := domain.BuildProjectUpdate(*snapshot, c.Patch, c.ProjectID)
	project, err := c.gateway.ReplaceProject(ctx, merged)
	if err != nil {
		return nil, fmt.Errorf("failed to update project %s: %w", c.ProjectID, err)
	}

	return &ProjectResult{
		Project: project,
		Message: fmt.Sprintf("Updated project: %s %s", project.ID, project.Name),
	}, nil
}

// DeleteProjectCommand deletes a project
type DeleteProjectCommand struct {
	gateway   ports.TaskGateway
	ProjectID string
}

// NewDeleteProjectCommand creates a new DeleteProjectCommand
func NewDeleteProjectCommand(gateway ports.TaskGateway, projectID string) *DeleteProjectCommand {
	return &DeleteProjectCommand{gateway: gateway, ProjectID: projectID}
}

// Validate checks if the delete operation is valid
func (c *DeleteProjectCommand) Validate() error {
	return application.ValidateRequired("projectId", c.ProjectID)
}

// Execute runs the delete project command
func (c *DeleteProjectCommand) Execute(ctx context.Context) (*ProjectResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.gateway.DeleteProject(ctx, c.ProjectID); err != nil {
		return nil, fmt.Errorf("failed to delete project %s: %w", c.ProjectID, err)
	}

	return &ProjectResult{Message: fmt.Sprintf("Deleted project: %s", c.ProjectID)}, nil
}

// ListProjectsCommand lists all projects
type ListProjectsCommand struct {
	gateway ports.TaskGateway
}

// NewListProjectsCommand creates a new ListProjectsCommand
func NewListProjectsCommand(gateway ports.TaskGateway) *ListProjectsCommand {
	return &ListProjectsCommand{gateway: gateway}
}

// Execute runs the list projects command
func (c *ListProjectsCommand) Execute(ctx context.Context) ([]domain.Project, error) {
	return c.gateway.ListProjects(ctx)
}

// ListProjectGroupsCommand lists all project groups (folders)
type ListProjectGroupsCommand struct {
	gateway ports.TaskGateway
}

// NewListProjectGroupsCommand creates a new ListProjectGroupsCommand
func NewListProjectGroupsCommand(gateway ports.TaskGateway) *ListProjectGroupsCommand {
	return &ListProjectGroupsCommand{gateway: gateway}
}

// Execute runs the list project groups command
func (c *ListProjectGroupsCommand) Execute(ctx context.Context) ([]domain.ProjectGroup, error) {
	return c.gateway.ListProjectGroups(ctx)
}
