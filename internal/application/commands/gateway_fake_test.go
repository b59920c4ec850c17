package commands

import (
	"context"
	"fmt"

	"tickbridge/internal/application"
	"tickbridge/internal/domain"
)

// fakeGateway is an in-memory TaskGateway for command tests. It records the
// entities handed to Replace* so tests can assert on the merged payload.
type fakeGateway struct {
	tasks    map[string]domain.Task
	projects map[string]domain.Project
	tags     []domain.Tag
	habits   map[string]domain.Habit

	replacedTasks  []domain.Task
	replacedTags   []domain.Tag
	replacedHabits []domain.Habit
	checkins       []domain.HabitCheckin
	renames        [][2]string
	deleted        []string

	err error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		tasks:    map[string]domain.Task{},
		projects: map[string]domain.Project{},
		habits:   map[string]domain.Habit{},
	}
}

func (g *fakeGateway) CreateTask(_ context.Context, t domain.Task) (*domain.Task, error) {
	if g.err != nil {
		return nil, g.err
	}
	if t.ID == "" {
		t.ID = fmt.Sprintf("task-%d", len(g.tasks)+1)
	}
	g.tasks[t.ID] = t
	return &t, nil
}

func (g *fakeGateway) GetTask(_ context.Context, _, taskID string) (*domain.Task, error) {
	if g.err != nil {
		return nil, g.err
	}
	t, ok := g.tasks[taskID]
	if !ok {
		return nil, fmt.Errorf("task %s: %w", taskID, application.ErrNotFound)
	}
	return &t, nil
}

func (g *fakeGateway) ListTasks(_ context.Context, projectID string) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range g.tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out, g.err
}

func (g *fakeGateway) ReplaceTask(_ context.Context, t domain.Task) (*domain.Task, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.replacedTasks = append(g.replacedTasks, t)
	g.tasks[t.ID] = t
	return &t, nil
}

func (g *fakeGateway) CompleteTask(_ context.Context, _, taskID string) error {
	if g.err != nil {
		return g.err
	}
	t, ok := g.tasks[taskID]
	if !ok {
		return fmt.Errorf("task %s: %w", taskID, application.ErrNotFound)
	}
	t.Status = domain.StatusCompleted
	g.tasks[taskID] = t
	return nil
}

func (g *fakeGateway) DeleteTask(_ context.Context, _, taskID string) error {
	if g.err != nil {
		return g.err
	}
	delete(g.tasks, taskID)
	g.deleted = append(g.deleted, taskID)
	return nil
}

func (g *fakeGateway) ListProjects(_ context.Context) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range g.projects {
		out = append(out, p)
	}
	return out, g.err
}

func (g *fakeGateway) GetProject(_ context.Context, projectID string) (*domain.Project, error) {
	p, ok := g.projects[projectID]
	if !ok {
		return nil, fmt.Errorf("project %s: %w", projectID, application.ErrNotFound)
	}
	return &p, nil
}

func (g *fakeGateway) CreateProject(_ context.Context, p domain.Project) (*domain.Project, error) {
	if p.ID == "" {
		p.ID = fmt.Sprintf("proj-%d", len(g.projects)+1)
	}
	g.projects[p.ID] = p
	return &p, nil
}

func (g *fakeGateway) ReplaceProject(_ context.Context, p domain.Project) (*domain.Project, error) {
	g.projects[p.ID] = p
	return &p, nil
}

func (g *fakeGateway) DeleteProject(_ context.Context, projectID string) error {
	delete(g.projects, projectID)
	g.deleted = append(g.deleted, projectID)
	return nil
}

func (g *fakeGateway) ListProjectGroups(_ context.Context) ([]domain.ProjectGroup, error) {
	return nil, g.err
}

func (g *fakeGateway) ListTags(_ context.Context) ([]domain.Tag, error) {
	return g.tags, g.err
}

func (g *fakeGateway) CreateTag(_ context.Context, tag domain.Tag) (*domain.Tag, error) {
	g.tags = append(g.tags, tag)
	return &tag, nil
}

func (g *fakeGateway) ReplaceTag(_ context.Context, tag domain.Tag) (*domain.Tag, error) {
	g.replacedTags = append(g.replacedTags, tag)
	return &tag, nil
}

func (g *fakeGateway) RenameTag(_ context.Context, oldName, newName string) error {
	if g.err != nil {
		return g.err
	}
	g.renames = append(g.renames, [2]string{oldName, newName})
	return nil
}

func (g *fakeGateway) DeleteTag(_ context.Context, name string) error {
	g.deleted = append(g.deleted, name)
	return g.err
}

func (g *fakeGateway) ListHabits(_ context.Context) ([]domain.Habit, error) {
	var out []domain.Habit
	for _, h := range g.habits {
		out = append(out, h)
	}
	return out, g.err
}

func (g *fakeGateway) GetHabit(_ context.Context, habitID string) (*domain.Habit, error) {
	h, ok := g.habits[habitID]
	if !ok {
		return nil, fmt.Errorf("habit %s: %w", habitID, application.ErrNotFound)
	}
	return &h, nil
}

func (g *fakeGateway) ReplaceHabit(_ context.Context, h domain.Habit) (*domain.Habit, error) {
	g.replacedHabits = append(g.replacedHabits, h)
	g.habits[h.ID] = h
	return &h, nil
}

func (g *fakeGateway) CheckinHabit(_ context.Context, c domain.HabitCheckin) error {
	if g.err != nil {
		return g.err
	}
	g.checkins = append(g.checkins, c)
	return nil
}

func (g *fakeGateway) FocusHeatmap(_ context.Context, _, _ string) ([]domain.FocusSummary, error) {
	return []domain.FocusSummary{{Day: "20260101", Duration: 1500}}, g.err
}

func (g *fakeGateway) Profile(_ context.Context) (*domain.UserProfile, error) {
	return &domain.UserProfile{Username: "u@example.com"}, g.err
}
