package ticktick

import (
	"fmt"

	"tickbridge/internal/application"
)

// Endpoint is a resolved request path. SessionOnly marks paths that exist
// only on the session surface; the router refuses to send those with bearer
// auth because the official surface answers them with a misleading 404.
type Endpoint struct {
	Path        string
	SessionOnly bool
}

// Official surface (token/oauth2), scoped to /open/v1.

func epCreateTask() Endpoint {
	return Endpoint{Path: "/task"}
}

func epTask(projectID, taskID string) (Endpoint, error) {
	p, err := application.ValidatePathParam("projectId", projectID)
	if err != nil {
		return Endpoint{}, err
	}
	t, err := application.ValidatePathParam("taskId", taskID)
	if err != nil {
		return Endpoint{}, err
	}
	return Endpoint{Path: fmt.Sprintf("/project/%s/task/%s", p, t)}, nil
}

func epUpdateTask(taskID string) (Endpoint, error) {
	t, err := application.ValidatePathParam("taskId", taskID)
	if err != nil {
		return Endpoint{}, err
	}
	return Endpoint{Path: "/task/" + t}, nil
}

func epCompleteTask(projectID, taskID string) (Endpoint, error) {
	ep, err := epTask(projectID, taskID)
	if err != nil {
		return Endpoint{}, err
	}
	ep.Path += "/complete"
	return ep, nil
}

func epProjects() Endpoint {
	return Endpoint{Path: "/project"}
}

func epProject(projectID string) (Endpoint, error) {
	p, err := application.ValidatePathParam("projectId", projectID)
	if err != nil {
		return Endpoint{}, err
	}
	return Endpoint{Path: "/project/" + p}, nil
}

func epProjectData(projectID string) (Endpoint, error) {
	ep, err := epProject(projectID)
	if err != nil {
		return Endpoint{}, err
	}
	ep.Path += "/data"
	return ep, nil
}

// Session surface, scoped to /api/v2.

func epSyncCheck() Endpoint {
	return Endpoint{Path: "/batch/check/0", SessionOnly: true}
}

func epBatchTask() Endpoint {
	return Endpoint{Path: "/batch/task", SessionOnly: true}
}

func epBatchProject() Endpoint {
	return Endpoint{Path: "/batch/project", SessionOnly: true}
}

func epBatchTag() Endpoint {
	return Endpoint{Path: "/batch/tag", SessionOnly: true}
}

func epBatchHabit() Endpoint {
	return Endpoint{Path: "/batch/habit", SessionOnly: true}
}

func epBatchHabitCheckin() Endpoint {
	return Endpoint{Path: "/habitCheckins/batch", SessionOnly: true}
}

func epHabits() Endpoint {
	return Endpoint{Path: "/habits", SessionOnly: true}
}

func epTagRename() Endpoint {
	return Endpoint{Path: "/tag/rename", SessionOnly: true}
}

func epTagDelete() Endpoint {
	return Endpoint{Path: "/tag", SessionOnly: true}
}

func epFocusHeatmap(start, end string) (Endpoint, error) {
	s, err := application.ValidatePathParam("start", start)
	if err != nil {
		return Endpoint{}, err
	}
	e, err := application.ValidatePathParam("end", end)
	if err != nil {
		return Endpoint{}, err
	}
	return Endpoint{
		Path:        fmt.Sprintf("/pomodoros/statistics/heatmap/%s/%s", s, e),
		SessionOnly: true,
	}, nil
}

func epUserProfile() Endpoint {
	return Endpoint{Path: "/user/profile", SessionOnly: true}
}
