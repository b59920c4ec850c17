package ticktick

import (
	"context"
	"encoding/json"
	"fmt"

	"tickbridge/internal/domain"
)

// syncState is the session surface's full-state checkpoint, the only way to
// read current tags, habits-adjacent metadata and non-completed tasks across
// projects. Fetched fresh before every session-side read or merge; never
// cached, so merges always start from current server state even under
// concurrent external edits.
type syncState struct {
	SyncTaskBean struct {
		Update []domain.Task `json:"update"`
		Add    []domain.Task `json:"add"`
	} `json:"syncTaskBean"`
	ProjectProfiles []domain.Project      `json:"projectProfiles"`
	ProjectGroups   []domain.ProjectGroup `json:"projectGroups"`
	Tags            []domain.Tag          `json:"tags"`
	InboxID         string                `json:"inboxId"`
}

func (s *syncState) tasks() []domain.Task {
	return append(append([]domain.Task{}, s.SyncTaskBean.Update...), s.SyncTaskBean.Add...)
}

func (s *syncState) findTask(taskID string) *domain.Task {
	for _, t := range s.tasks() {
		if t.ID == taskID {
			return &t
		}
	}
	return nil
}

func (s *syncState) findProject(projectID string) *domain.Project {
	for i := range s.ProjectProfiles {
		if s.ProjectProfiles[i].ID == projectID {
			return &s.ProjectProfiles[i]
		}
	}
	return nil
}

func (s *syncState) findTag(name string) *domain.Tag {
	for i := range s.Tags {
		if s.Tags[i].Name == name {
			return &s.Tags[i]
		}
	}
	return nil
}

// fetchSync retrieves the current sync checkpoint over the session surface.
func (r *Repository) fetchSync(ctx context.Context) (*syncState, error) {
	raw, err := r.client.Call(ctx, r.auth, "GET", epSyncCheck(), nil, nil)
	if err != nil {
		return nil, err
	}
	var state syncState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode sync state: %w", err)
	}
	return &state, nil
}
