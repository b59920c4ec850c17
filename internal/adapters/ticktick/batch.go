package ticktick

import (
	"encoding/json"
	"fmt"
	"sort"

	"tickbridge/internal/domain"
)

// The batch endpoint takes {add, update, delete} and replaces update entries
// wholesale. It retries nothing and checks no precondition: concurrent
// updates to one entity race and the last submit wins, matching the vendor's
// own client.

type taskBatch struct {
	Add    []domain.Task    `json:"add"`
	Update []domain.Task    `json:"update"`
	Delete []domain.TaskKey `json:"delete"`
}

type projectBatch struct {
	Add    []domain.Project `json:"add"`
	Update []domain.Project `json:"update"`
	Delete []string         `json:"delete"`
}

type tagBatch struct {
	Add    []domain.Tag `json:"add"`
	Update []domain.Tag `json:"update"`
	Delete []string     `json:"delete"`
}

type habitBatch struct {
	Add    []domain.Habit `json:"add"`
	Update []domain.Habit `json:"update"`
	Delete []string       `json:"delete"`
}

type checkinBatch struct {
	Add    []domain.HabitCheckin `json:"add"`
	Update []domain.HabitCheckin `json:"update"`
	Delete []string              `json:"delete"`
}

func emptyTaskBatch() taskBatch {
	return taskBatch{Add: []domain.Task{}, Update: []domain.Task{}, Delete: []domain.TaskKey{}}
}

func emptyProjectBatch() projectBatch {
	return projectBatch{Add: []domain.Project{}, Update: []domain.Project{}, Delete: []string{}}
}

func emptyTagBatch() tagBatch {
	return tagBatch{Add: []domain.Tag{}, Update: []domain.Tag{}, Delete: []string{}}
}

func emptyHabitBatch() habitBatch {
	return habitBatch{Add: []domain.Habit{}, Update: []domain.Habit{}, Delete: []string{}}
}

func emptyCheckinBatch() checkinBatch {
	return checkinBatch{Add: []domain.HabitCheckin{}, Update: []domain.HabitCheckin{}, Delete: []string{}}
}

// batchResponse is the batch endpoint's result envelope. id2error is keyed
// by entity id; any entry means that mutation failed server-side.
type batchResponse struct {
	ID2Etag  map[string]string `json:"id2etag"`
	ID2Error map[string]any    `json:"id2error"`
}

// decodeBatchResponse surfaces per-entity failures so a caller never sees
// ambiguous partial success.
func decodeBatchResponse(raw []byte) (*batchResponse, error) {
	var br batchResponse
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &br); err != nil {
			return nil, fmt.Errorf("decode batch response: %w", err)
		}
	}
	if len(br.ID2Error) > 0 {
		ids := make([]string, 0, len(br.ID2Error))
		for id := range br.ID2Error {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		return nil, fmt.Errorf("batch rejected %d mutation(s): %s = %v", len(ids), ids[0], br.ID2Error[ids[0]])
	}
	return &br, nil
}
