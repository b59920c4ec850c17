package ports

import (
	"context"

	"tickbridge/internal/domain"
)

// TaskGateway defines the interface to the remote task service. Commands
// never build HTTP requests directly; everything goes through this port.
//
// Replace* methods take a complete entity (the batch surface replaces
// wholesale); callers build it from a snapshot with the domain merge
// functions. List and Get wrap missing entities in application.ErrNotFound.
type TaskGateway interface {
	// Task operations
	CreateTask(ctx context.Context, t domain.Task) (*domain.Task, error)
	GetTask(ctx context.Context, projectID, taskID string) (*domain.Task, error)
	ListTasks(ctx context.Context, projectID string) ([]domain.Task, error)
	ReplaceTask(ctx context.Context, t domain.Task) (*domain.Task, error)
	CompleteTask(ctx context.Context, projectID, taskID string) error
	DeleteTask(ctx context.Context, projectID, taskID string) error

	// Project operations
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, projectID string) (*domain.Project, error)
	CreateProject(ctx context.Context, p domain.Project) (*domain.Project, error)
	ReplaceProject(ctx context.Context, p domain.Project) (*domain.Project, error)
	DeleteProject(ctx context.Context, projectID string) error
	ListProjectGroups(ctx context.Context) ([]domain.ProjectGroup, error)

	// Tag operations (session surface only)
	ListTags(ctx context.Context) ([]domain.Tag, error)
	CreateTag(ctx context.Context, tag domain.Tag) (*domain.Tag, error)
	ReplaceTag(ctx context.Context, tag domain.Tag) (*domain.Tag, error)
	RenameTag(ctx context.Context, oldName, newName string) error
	DeleteTag(ctx context.Context, name string) error

	// Habit operations (session surface only)
	ListHabits(ctx context.Context) ([]domain.Habit, error)
	GetHabit(ctx context.Context, habitID string) (*domain.Habit, error)
	ReplaceHabit(ctx context.Context, h domain.Habit) (*domain.Habit, error)
	CheckinHabit(ctx context.Context, c domain.HabitCheckin) error

	// Focus statistics and user preferences (session surface only)
	FocusHeatmap(ctx context.Context, start, end string) ([]domain.FocusSummary, error)
	Profile(ctx context.Context) (*domain.UserProfile, error)
}
