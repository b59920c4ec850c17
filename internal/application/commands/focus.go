package commands

import (
	"context"
	"fmt"
	"time"

	"tickbridge/internal/application"
	"tickbridge/internal/domain"
	"tickbridge/internal/ports"
)

const stampLayout = "20060102"

// FocusHeatmapCommand fetches per-day focus durations for a date range
type FocusHeatmapCommand struct {
	gateway ports.TaskGateway
	Start   string
	End     string
}

// NewFocusHeatmapCommand creates a new FocusHeatmapCommand
func NewFocusHeatmapCommand(gateway ports.TaskGateway, start, end string) *FocusHeatmapCommand {
	return &FocusHeatmapCommand{gateway: gateway, Start: start, End: end}
}

// Validate checks if the range is valid
func (c *FocusHeatmapCommand) Validate() error {
	for _, stamp := range []struct{ field, value string }{
		{"start", c.Start},
		{"end", c.End},
	} {
		if _, err := time.Parse(stampLayout, stamp.value); err != nil {
			return &application.ValidationError{
				Field:   stamp.field,
				Message: fmt.Sprintf("expected a YYYYMMDD day stamp, got %q", stamp.value),
			}
		}
	}
	if c.Start > c.End {
		return &application.ValidationError{
			Field:   "start",
			Message: "start is after end",
		}
	}
	return nil
}

// Execute runs the focus heatmap command
func (c *FocusHeatmapCommand) Execute(ctx context.Context) ([]domain.FocusSummary, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.gateway.FocusHeatmap(ctx, c.Start, c.End)
}

// ProfileCommand fetches the signed-in user's profile
type ProfileCommand struct {
	gateway ports.TaskGateway
}

// NewProfileCommand creates a new ProfileCommand
func NewProfileCommand(gateway ports.TaskGateway) *ProfileCommand {
	return &ProfileCommand{gateway: gateway}
}

// Execute runs the profile command
func (c *ProfileCommand) Execute(ctx context.Context) (*domain.UserProfile, error) {
	return c.gateway.Profile(ctx)
}
