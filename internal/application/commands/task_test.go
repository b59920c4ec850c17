package commands

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"tickbridge/internal/application"
	"tickbridge/internal/domain"
)

func TestCreateTaskCommand(t *testing.T) {
	t.Run("requires a title", func(t *testing.T) {
		cmd := NewCreateTaskCommand(newFakeGateway(), domain.TaskPatch{})
		_, err := cmd.Execute(context.Background())
		var verr *application.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if verr.Field != "title" {
			t.Errorf("expected field title, got %s", verr.Field)
		}
	})

	t.Run("defaults to the inbox project", func(t *testing.T) {
		gw := newFakeGateway()
		cmd := NewCreateTaskCommand(gw, domain.TaskPatch{Title: "Buy milk"})
		result, err := cmd.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Task.ProjectID != domain.InboxProject {
			t.Errorf("expected inbox project, got %s", result.Task.ProjectID)
		}
	})

	t.Run("carries patch fields onto the new task", func(t *testing.T) {
		gw := newFakeGateway()
		prio := domain.PriorityHigh
		cmd := NewCreateTaskCommand(gw, domain.TaskPatch{
			Title:     "Ship release",
			ProjectID: "p1",
			Priority:  &prio,
			AddTags:   []string{"work"},
		})
		result, err := cmd.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		task := result.Task
		if task.ProjectID != "p1" || task.Priority != domain.PriorityHigh {
			t.Errorf("patch fields not applied: %+v", task)
		}
		if !reflect.DeepEqual(task.Tags, []string{"work"}) {
			t.Errorf("expected tags [work], got %v", task.Tags)
		}
	})
}

func TestUpdateTaskCommand(t *testing.T) {
	t.Run("merges the patch over the server snapshot", func(t *testing.T) {
		gw := newFakeGateway()
		due := "2026-09-01T09:00:00.000+0000"
		gw.tasks["t1"] = domain.Task{
			ID:        "t1",
			ProjectID: "p1",
			Title:     "Write report",
			Content:   "outline first",
			DueDate:   &due,
			Tags:      []string{"work"},
		}

		cmd := NewUpdateTaskCommand(gw, "t1", "p1", domain.TaskPatch{Title: "Write final report"})
		result, err := cmd.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(gw.replacedTasks) != 1 {
			t.Fatalf("expected one replacement, got %d", len(gw.replacedTasks))
		}
		got := gw.replacedTasks[0]
		if got.Title != "Write final report" {
			t.Errorf("title not updated: %s", got.Title)
		}
		if got.Content != "outline first" {
			t.Errorf("untouched content was lost: %q", got.Content)
		}
		if got.DueDate == nil || *got.DueDate != due {
			t.Errorf("untouched due date was lost: %v", got.DueDate)
		}
		if result.Task.ID != "t1" {
			t.Errorf("unexpected task in result: %+v", result.Task)
		}
	})

	t.Run("propagates not found from the snapshot fetch", func(t *testing.T) {
		gw := newFakeGateway()
		cmd := NewUpdateTaskCommand(gw, "missing", "p1", domain.TaskPatch{Title: "x"})
		_, err := cmd.Execute(context.Background())
		if !errors.Is(err, application.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if len(gw.replacedTasks) != 0 {
			t.Errorf("no replacement should be sent for a missing task")
		}
	})

	t.Run("requires a task id", func(t *testing.T) {
		cmd := NewUpdateTaskCommand(newFakeGateway(), "", "p1", domain.TaskPatch{})
		_, err := cmd.Execute(context.Background())
		var verr *application.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestCompleteTaskCommand(t *testing.T) {
	gw := newFakeGateway()
	gw.tasks["t1"] = domain.Task{ID: "t1", ProjectID: "p1", Title: "Call dentist"}

	cmd := NewCompleteTaskCommand(gw, "t1", "p1")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gw.tasks["t1"].Status != domain.StatusCompleted {
		t.Errorf("task not completed: %+v", gw.tasks["t1"])
	}
	if result.Message == "" {
		t.Error("expected a result message")
	}
}

func TestDeleteTaskCommand(t *testing.T) {
	gw := newFakeGateway()
	gw.tasks["t1"] = domain.Task{ID: "t1", ProjectID: "p1"}

	cmd := NewDeleteTaskCommand(gw, "t1", "p1")
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := gw.tasks["t1"]; ok {
		t.Error("task still present after delete")
	}
}

func TestListTasksCommand(t *testing.T) {
	gw := newFakeGateway()
	gw.tasks["t1"] = domain.Task{ID: "t1", ProjectID: "p1"}
	gw.tasks["t2"] = domain.Task{ID: "t2", ProjectID: "p2"}

	cmd := NewListTasksCommand(gw, application.DirectLocator("p1"))
	tasks, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != "t1" {
		t.Errorf("expected [t1], got %+v", tasks)
	}

	t.Run("rejects an empty locator", func(t *testing.T) {
		cmd := NewListTasksCommand(gw, application.DirectLocator(""))
		if _, err := cmd.Execute(context.Background()); err == nil {
			t.Fatal("expected an error for an empty locator")
		}
	})
}
