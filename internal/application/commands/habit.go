package commands

import (
	"context"
	"fmt"
	"strconv"

	"tickbridge/internal/application"
	"tickbridge/internal/domain"
	"tickbridge/internal/ports"
)

// HabitResult contains the outcome of a habit mutation
type HabitResult struct {
	Habit   *domain.Habit
	Message string
}

// ListHabitsCommand lists all habits
type ListHabitsCommand struct {
	gateway ports.TaskGateway
}

// NewListHabitsCommand creates a new ListHabitsCommand
func NewListHabitsCommand(gateway ports.TaskGateway) *ListHabitsCommand {
	return &ListHabitsCommand{gateway: gateway}
}

// Execute runs the list habits command
func (c *ListHabitsCommand) Execute(ctx context.Context) ([]domain.Habit, error) {
	return c.gateway.ListHabits(ctx)
}

// UpdateHabitCommand applies a partial update to a habit
type UpdateHabitCommand struct {
	gateway ports.TaskGateway
	HabitID string
	Patch   domain.HabitPatch
}

// NewUpdateHabitCommand creates a new UpdateHabitCommand
func NewUpdateHabitCommand(gateway ports.TaskGateway, habitID string, patch domain.HabitPatch) *UpdateHabitCommand {
	return &UpdateHabitCommand{gateway: gateway, HabitID: habitID, Patch: patch}
}

// Validate checks if the update operation is valid
func (c *UpdateHabitCommand) Validate() error {
	return application.ValidateRequired("habitId", c.HabitID)
}

// Execute runs the update habit command
func (c *UpdateHabitCommand) Execute(ctx context.Context) (*HabitResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := c.gateway.GetHabit(ctx, c.HabitID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch habit %s: %w", c.HabitID, err)
	}

	merged := domain.BuildHabitUpdate(*snapshot, c.Patch, c.HabitID)
	habit, err := c.gateway.ReplaceHabit(ctx, merged)
	if err != nil {
		return nil, fmt.Errorf("failed to update habit %s: %w", c.HabitID, err)
	}

	return &HabitResult{
		Habit:   habit,
		Message: fmt.Sprintf("Updated habit: %s %s", habit.ID, habit.Name),
	}, nil
}

// CheckinHabitCommand records a habit check-in for a day
type CheckinHabitCommand struct {
	gateway ports.TaskGateway
	HabitID string
	Stamp   string
	Value   float64
}

// NewCheckinHabitCommand creates a new CheckinHabitCommand
func NewCheckinHabitCommand(gateway ports.TaskGateway, habitID, stamp string, value float64) *CheckinHabitCommand {
	return &CheckinHabitCommand{gateway: gateway, HabitID: habitID, Stamp: stamp, Value: value}
}

// Validate checks if the check-in is valid
func (c *CheckinHabitCommand) Validate() error {
	if err := application.ValidateRequired("habitId", c.HabitID); err != nil {
		return err
	}
	if _, err := c.stamp(); err != nil {
		return &application.ValidationError{
			Field:   "stamp",
			Message: "expected a YYYYMMDD day stamp",
		}
	}
	return nil
}

func (c *CheckinHabitCommand) stamp() (int, error) {
	if len(c.Stamp) != 8 {
		return 0, fmt.Errorf("stamp %q: wrong length", c.Stamp)
	}
	return strconv.Atoi(c.Stamp)
}

// Execute runs the check-in habit command
func (c *CheckinHabitCommand) Execute(ctx context.Context) (*HabitResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	stamp, err := c.stamp()
	if err != nil {
		return nil, err
	}
	checkin := domain.HabitCheckin{
		HabitID:      c.HabitID,
		CheckinStamp: stamp,
		Value:        c.Value,
	}
	if err := c.gateway.CheckinHabit(ctx, checkin); err != nil {
		return nil, fmt.Errorf("failed to check in habit %s: %w", c.HabitID, err)
	}

	return &HabitResult{Message: fmt.Sprintf("Checked in habit %s on %s", c.HabitID, c.Stamp)}, nil
}
