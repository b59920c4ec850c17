package ticktick

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"tickbridge/internal/application"
	"tickbridge/internal/domain"
)

// Repository implements ports.TaskGateway over the router. The auth method
// is resolved once at construction and threaded into every call; operations
// that only exist on the session surface request it explicitly and fail fast
// with IncompatibleProtocolError when the repository is configured for the
// token surface.
type Repository struct {
	client *Client
	auth   application.AuthMethod
}

// NewRepository creates a gateway using the given auth method for every
// operation.
func NewRepository(client *Client, auth application.AuthMethod) *Repository {
	return &Repository{client: client, auth: auth}
}

// --- tasks ---

func (r *Repository) CreateTask(ctx context.Context, t domain.Task) (*domain.Task, error) {
	if r.auth != application.AuthSession {
		raw, err := r.client.Call(ctx, r.auth, "POST", epCreateTask(), t, nil)
		if err != nil {
			return nil, err
		}
		return decodeTask(raw)
	}

	if t.ID == "" {
		t.ID = NewEntityID()
	}
	batch := emptyTaskBatch()
	batch.Add = append(batch.Add, t)
	if err := r.submitTaskBatch(ctx, batch); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) GetTask(ctx context.Context, projectID, taskID string) (*domain.Task, error) {
	if r.auth != application.AuthSession {
		ep, err := epTask(projectID, taskID)
		if err != nil {
			return nil, err
		}
		raw, err := r.client.Call(ctx, r.auth, "GET", ep, nil, nil)
		if err != nil {
			return nil, err
		}
		return decodeTask(raw)
	}

	state, err := r.fetchSync(ctx)
	if err != nil {
		return nil, err
	}
	task := state.findTask(taskID)
	if task == nil {
		return nil, fmt.Errorf("task %s: %w", taskID, application.ErrNotFound)
	}
	return task, nil
}

func (r *Repository) ListTasks(ctx context.Context, projectID string) ([]domain.Task, error) {
	if r.auth != application.AuthSession {
		ep, err := epProjectData(projectID)
		if err != nil {
			return nil, err
		}
		raw, err := r.client.Call(ctx, r.auth, "GET", ep, nil, nil)
		if err != nil {
			return nil, err
		}
		var data struct {
			Tasks []domain.Task `json:"tasks"`
		}
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("decode project data: %w", err)
		}
		return data.Tasks, nil
	}

	state, err := r.fetchSync(ctx)
	if err != nil {
		return nil, err
	}
	if projectID == domain.InboxProject && state.InboxID != "" {
		projectID = state.InboxID
	}
	var tasks []domain.Task
	for _, t := range state.tasks() {
		if projectID == "" || t.ProjectID == projectID {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (r *Repository) ReplaceTask(ctx context.Context, t domain.Task) (*domain.Task, error) {
	if r.auth != application.AuthSession {
		ep, err := epUpdateTask(t.ID)
		if err != nil {
			return nil, err
		}
		raw, err := r.client.Call(ctx, r.auth, "POST", ep, t, nil)
		if err != nil {
			return nil, err
		}
		return decodeTask(raw)
	}

	batch := emptyTaskBatch()
	batch.Update = append(batch.Update, t)
	if err := r.submitTaskBatch(ctx, batch); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) CompleteTask(ctx context.Context, projectID, taskID string) error {
	if r.auth != application.AuthSession {
		ep, err := epCompleteTask(projectID, taskID)
		if err != nil {
			return err
		}
		_, err = r.client.Call(ctx, r.auth, "POST", ep, nil, nil)
		return err
	}

	snapshot, err := r.GetTask(ctx, projectID, taskID)
	if err != nil {
		return err
	}
	done := domain.StatusCompleted
	merged := domain.BuildTaskUpdate(*snapshot, domain.TaskPatch{Status: &done}, taskID, projectID)
	_, err = r.ReplaceTask(ctx, merged)
	return err
}

func (r *Repository) DeleteTask(ctx context.Context, projectID, taskID string) error {
	if r.auth != application.AuthSession {
		ep, err := epTask(projectID, taskID)
		if err != nil {
			return err
		}
		_, err = r.client.Call(ctx, r.auth, "DELETE", ep, nil, nil)
		return err
	}

	batch := emptyTaskBatch()
	batch.Delete = append(batch.Delete, domain.TaskKey{TaskID: taskID, ProjectID: projectID})
	return r.submitTaskBatch(ctx, batch)
}

func (r *Repository) submitTaskBatch(ctx context.Context, batch taskBatch) error {
	raw, err := r.client.Call(ctx, r.auth, "POST", epBatchTask(), batch, nil)
	if err != nil {
		return err
	}
	_, err = decodeBatchResponse(raw)
	return err
}

// --- projects ---

func (r *Repository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	if r.auth != application.AuthSession {
		raw, err := r.client.Call(ctx, r.auth, "GET", epProjects(), nil, nil)
		if err != nil {
			return nil, err
		}
		var projects []domain.Project
		if err := json.Unmarshal(raw, &projects); err != nil {
			return nil, fmt.Errorf("decode projects: %w", err)
		}
		return projects, nil
	}

	state, err := r.fetchSync(ctx)
	if err != nil {
		return nil, err
	}
	return state.ProjectProfiles, nil
}

func (r *Repository) GetProject(ctx context.Context, projectID string) (*domain.Project, error) {
	if r.auth != application.AuthSession {
		ep, err := epProject(projectID)
		if err != nil {
			return nil, err
		}
		raw, err := r.client.Call(ctx, r.auth, "GET", ep, nil, nil)
		if err != nil {
			return nil, err
		}
		var p domain.Project
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		return &p, nil
	}

	state, err := r.fetchSync(ctx)
	if err != nil {
		return nil, err
	}
	p := state.findProject(projectID)
	if p == nil {
		return nil, fmt.Errorf("project %s: %w", projectID, application.ErrNotFound)
	}
	return p, nil
}

func (r *Repository) CreateProject(ctx context.Context, p domain.Project) (*domain.Project, error) {
	if r.auth != application.AuthSession {
		raw, err := r.client.Call(ctx, r.auth, "POST", epProjects(), p, nil)
		if err != nil {
			return nil, err
		}
		var created domain.Project
		if err := json.Unmarshal(raw, &created); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		return &created, nil
	}

	if p.ID == "" {
		p.ID = NewEntityID()
	}
	batch := emptyProjectBatch()
	batch.Add = append(batch.Add, p)
	if err := r.submitProjectBatch(ctx, batch); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) ReplaceProject(ctx context.Context, p domain.Project) (*domain.Project, error) {
	if r.auth != application.AuthSession {
		ep, err := epProject(p.ID)
		if err != nil {
			return nil, err
		}
		raw, err := r.client.Call(ctx, r.auth, "POST", ep, p, nil)
		if err != nil {
			return nil, err
		}
		var updated domain.Project
		if err := json.Unmarshal(raw, &updated); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		return &updated, nil
	}

	batch := emptyProjectBatch()
	batch.Update = append(batch.Update, p)
	if err := r.submitProjectBatch(ctx, batch); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) DeleteProject(ctx context.Context, projectID string) error {
	if r.auth != application.AuthSession {
		ep, err := epProject(projectID)
		if err != nil {
			return err
		}
		_, err = r.client.Call(ctx, r.auth, "DELETE", ep, nil, nil)
		return err
	}

	batch := emptyProjectBatch()
	batch.Delete = append(batch.Delete, projectID)
	return r.submitProjectBatch(ctx, batch)
}

func (r *Repository) submitProjectBatch(ctx context.Context, batch projectBatch) error {
	raw, err := r.client.Call(ctx, r.auth, "POST", epBatchProject(), batch, nil)
	if err != nil {
		return err
	}
	_, err = decodeBatchResponse(raw)
	return err
}

func (r *Repository) ListProjectGroups(ctx context.Context) ([]domain.ProjectGroup, error) {
	state, err := r.fetchSync(ctx)
	if err != nil {
		return nil, err
	}
	return state.ProjectGroups, nil
}

// --- tags ---

func (r *Repository) ListTags(ctx context.Context) ([]domain.Tag, error) {
	state, err := r.fetchSync(ctx)
	if err != nil {
		return nil, err
	}
	return state.Tags, nil
}

func (r *Repository) CreateTag(ctx context.Context, tag domain.Tag) (*domain.Tag, error) {
	batch := emptyTagBatch()
	batch.Add = append(batch.Add, tag)
	if err := r.submitTagBatch(ctx, batch); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *Repository) ReplaceTag(ctx context.Context, tag domain.Tag) (*domain.Tag, error) {
	batch := emptyTagBatch()
	batch.Update = append(batch.Update, tag)
	if err := r.submitTagBatch(ctx, batch); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *Repository) RenameTag(ctx context.Context, oldName, newName string) error {
	body := map[string]string{"name": oldName, "newName": newName}
	_, err := r.client.Call(ctx, r.auth, "PUT", epTagRename(), body, nil)
	return err
}

func (r *Repository) DeleteTag(ctx context.Context, name string) error {
	query := url.Values{"name": []string{name}}
	_, err := r.client.Call(ctx, r.auth, "DELETE", epTagDelete(), nil, query)
	return err
}

func (r *Repository) submitTagBatch(ctx context.Context, batch tagBatch) error {
	raw, err := r.client.Call(ctx, r.auth, "POST", epBatchTag(), batch, nil)
	if err != nil {
		return err
	}
	_, err = decodeBatchResponse(raw)
	return err
}

// --- habits ---

func (r *Repository) ListHabits(ctx context.Context) ([]domain.Habit, error) {
	raw, err := r.client.Call(ctx, r.auth, "GET", epHabits(), nil, nil)
	if err != nil {
		return nil, err
	}
	var habits []domain.Habit
	if err := json.Unmarshal(raw, &habits); err != nil {
		return nil, fmt.Errorf("decode habits: %w", err)
	}
	return habits, nil
}

func (r *Repository) GetHabit(ctx context.Context, habitID string) (*domain.Habit, error) {
	habits, err := r.ListHabits(ctx)
	if err != nil {
		return nil, err
	}
	for i := range habits {
		if habits[i].ID == habitID {
			return &habits[i], nil
		}
	}
	return nil, fmt.Errorf("habit %s: %w", habitID, application.ErrNotFound)
}

func (r *Repository) ReplaceHabit(ctx context.Context, h domain.Habit) (*domain.Habit, error) {
	batch := emptyHabitBatch()
	batch.Update = append(batch.Update, h)
	raw, err := r.client.Call(ctx, r.auth, "POST", epBatchHabit(), batch, nil)
	if err != nil {
		return nil, err
	}
	if _, err := decodeBatchResponse(raw); err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *Repository) CheckinHabit(ctx context.Context, c domain.HabitCheckin) error {
	if c.ID == "" {
		c.ID = NewEntityID()
	}
	batch := emptyCheckinBatch()
	batch.Add = append(batch.Add, c)
	raw, err := r.client.Call(ctx, r.auth, "POST", epBatchHabitCheckin(), batch, nil)
	if err != nil {
		return err
	}
	_, err = decodeBatchResponse(raw)
	return err
}

// --- focus statistics and user profile ---

func (r *Repository) FocusHeatmap(ctx context.Context, start, end string) ([]domain.FocusSummary, error) {
	ep, err := epFocusHeatmap(start, end)
	if err != nil {
		return nil, err
	}
	raw, err := r.client.Call(ctx, r.auth, "GET", ep, nil, nil)
	if err != nil {
		return nil, err
	}
	var summary []domain.FocusSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, fmt.Errorf("decode focus heatmap: %w", err)
	}
	return summary, nil
}

func (r *Repository) Profile(ctx context.Context) (*domain.UserProfile, error) {
	raw, err := r.client.Call(ctx, r.auth, "GET", epUserProfile(), nil, nil)
	if err != nil {
		return nil, err
	}
	var profile domain.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("decode user profile: %w", err)
	}
	return &profile, nil
}

func decodeTask(raw []byte) (*domain.Task, error) {
	var t domain.Task
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("decode task: %w", err)
	}
	return &t, nil
}
