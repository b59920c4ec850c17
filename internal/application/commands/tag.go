package commands

import (
	"context"
	"fmt"

	"tickbridge/internal/application"
	"tickbridge/internal/domain"
	"tickbridge/internal/ports"
)

// TagResult contains the outcome of a tag mutation
type TagResult struct {
	Tag     *domain.Tag
	Message string
}

// CreateTagCommand creates a tag
type CreateTagCommand struct {
	gateway ports.TaskGateway
	Name    string
	Patch   domain.TagPatch
}

// NewCreateTagCommand creates a new CreateTagCommand
func NewCreateTagCommand(gateway ports.TaskGateway, name string, patch domain.TagPatch) *CreateTagCommand {
	return &CreateTagCommand{gateway: gateway, Name: name, Patch: patch}
}

// Validate checks if the create operation is valid
func (c *CreateTagCommand) Validate() error {
	return application.ValidateRequired("name", c.Name)
}

// Execute runs the create tag command
func (c *CreateTagCommand) Execute(ctx context.Context) (*TagResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	tag := domain.BuildTagUpdate(domain.Tag{Name: c.Name, Label: c.Name}, c.Patch)
	created, err := c.gateway.CreateTag(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	return &TagResult{
		Tag:     created,
		Message: fmt.Sprintf("Created tag: %s", created.Name),
	}, nil
}

// UpdateTagCommand applies a partial update to a tag. The tag name is the
// identity key on the batch surface, so it never changes here; renames go
// through RenameTagCommand.
type UpdateTagCommand struct {
	gateway ports.TaskGateway
	Name    string
	Patch   domain.TagPatch
}

// NewUpdateTagCommand creates a new UpdateTagCommand
func NewUpdateTagCommand(gateway ports.TaskGateway, name string, patch domain.TagPatch) *UpdateTagCommand {
	return &UpdateTagCommand{gateway: gateway, Name: name, Patch: patch}
}

// Validate checks if the update operation is valid
func (c *UpdateTagCommand) Validate() error {
	return application.ValidateRequired("name", c.Name)
}

// Execute runs the update tag command
func (c *UpdateTagCommand) Execute(ctx context.Context) (*TagResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	tags, err := c.gateway.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tags: %w", err)
	}

	var snapshot *domain.Tag
	for i := range tags {
		if tags[i].Name == c.Name {
			snapshot = &tags[i]
			break
		}
	}
	if snapshot == nil {
		return nil, fmt.Errorf("tag %q: %w", c.Name, application.ErrNotFound)
	}

	merged := domain.BuildTagUpdate(*snapshot, c.Patch)
	updated, err := c.gateway.ReplaceTag(ctx, merged)
	if err != nil {
		return nil, fmt.Errorf("failed to update tag %s: %w", c.Name, err)
	}

	return &TagResult{
		Tag:     updated,
		Message: fmt.Sprintf("Updated tag: %s", updated.Name),
	}, nil
}

// RenameTagCommand renames a tag across the whole account
type RenameTagCommand struct {
	gateway ports.TaskGateway
	OldName string
	NewName string
}

// NewRenameTagCommand creates a new RenameTagCommand
func NewRenameTagCommand(gateway ports.TaskGateway, oldName, newName string) *RenameTagCommand {
	return &RenameTagCommand{gateway: gateway, OldName: oldName, NewName: newName}
}

// Validate checks if the rename operation is valid
func (c *RenameTagCommand) Validate() error {
	if err := application.ValidateRequired("oldName", c.OldName); err != nil {
		return err
	}
	return application.ValidateRequired("newName", c.NewName)
}

// Execute runs the rename tag command
func (c *RenameTagCommand) Execute(ctx context.Context) (*TagResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.gateway.RenameTag(ctx, c.OldName, c.NewName); err != nil {
		return nil, fmt.Errorf("failed to rename tag %s: %w", c.OldName, err)
	}

	return &TagResult{Message: fmt.Sprintf("Renamed tag: %s -> %s", c.OldName, c.NewName)}, nil
}

// DeleteTagCommand deletes a tag
type DeleteTagCommand struct {
	gateway ports.TaskGateway
	Name    string
}

// NewDeleteTagCommand creates a new DeleteTagCommand
func NewDeleteTagCommand(gateway ports.TaskGateway, name string) *DeleteTagCommand {
	return &DeleteTagCommand{gateway: gateway, Name: name}
}

// Validate checks if the delete operation is valid
func (c *DeleteTagCommand) Validate() error {
	return application.ValidateRequired("name", c.Name)
}

// Execute runs the delete tag command
func (c *DeleteTagCommand) Execute(ctx context.Context) (*TagResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.gateway.DeleteTag(ctx, c.Name); err != nil {
		return nil, fmt.Errorf("failed to delete tag %s: %w", c.Name, err)
	}

	return &TagResult{Message: fmt.Sprintf("Deleted tag: %s", c.Name)}, nil
}

// ListTagsCommand lists all tags
type ListTagsCommand struct {
	gateway ports.TaskGateway
}

// NewListTagsCommand creates a new ListTagsCommand
func NewListTagsCommand(gateway ports.TaskGateway) *ListTagsCommand {
	return &ListTagsCommand{gateway: gateway}
}

// Execute runs the list tags command
func (c *ListTagsCommand) Execute(ctx context.Context) ([]domain.Tag, error) {
	return c.gateway.ListTags(ctx)
}
