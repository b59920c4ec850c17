package ticktick

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tickbridge/internal/application"
	"tickbridge/internal/domain"
)

// fakeVendor fakes enough of the session surface for repository tests:
// sign-on, sync checkpoint, and the batch endpoints.
type fakeVendor struct {
	sync        syncState
	batchBodies map[string][]byte
	batchReply  string
}

func newFakeVendor() *fakeVendor {
	return &fakeVendor{
		batchBodies: make(map[string][]byte),
		batchReply:  `{"id2etag":{},"id2error":{}}`,
	}
}

func (f *fakeVendor) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/user/signon"):
			w.Write([]byte(`{"token":"tok","inboxId":"inbox-1"}`))
		case r.URL.Path == "/batch/check/0":
			json.NewEncoder(w).Encode(f.sync)
		case strings.HasPrefix(r.URL.Path, "/batch/") || r.URL.Path == "/habitCheckins/batch":
			body, _ := io.ReadAll(r.Body)
			f.batchBodies[r.URL.Path] = body
			w.Write([]byte(f.batchReply))
		case r.URL.Path == "/tag":
			w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func newSessionRepo(t *testing.T, vendor *fakeVendor) *Repository {
	t.Helper()
	ts := httptest.NewServer(vendor.handler())
	t.Cleanup(ts.Close)
	client := NewClient(
		staticCreds{username: "u1", password: "pw"},
		WithHTTPClient(ts.Client()),
		WithBaseURLs(ts.URL+"/open", ts.URL),
	)
	return NewRepository(client, application.AuthSession)
}

func TestRepository_GetTaskFromSync(t *testing.T) {
	vendor := newFakeVendor()
	vendor.sync.SyncTaskBean.Update = []domain.Task{
		{ID: "t1", ProjectID: "p1", Title: "from sync"},
	}
	repo := newSessionRepo(t, vendor)

	task, err := repo.GetTask(context.Background(), "p1", "t1")
	if err != nil {
		t.Fatal(err)
	}
	if task.Title != "from sync" {
		t.Errorf("title = %q", task.Title)
	}

	_, err = repo.GetTask(context.Background(), "p1", "missing")
	if !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRepository_ReplaceTaskSubmitsFullEntity(t *testing.T) {
	vendor := newFakeVendor()
	repo := newSessionRepo(t, vendor)

	due := "2026-02-01T00:00:00.000+0000"
	task := domain.Task{
		ID:        "t1",
		ProjectID: "p1",
		Title:     "complete entity",
		Priority:  domain.PriorityHigh,
		DueDate:   &due,
		Tags:      []string{"work"},
	}

	if _, err := repo.ReplaceTask(context.Background(), task); err != nil {
		t.Fatal(err)
	}

	var envelope struct {
		Add    []domain.Task    `json:"add"`
		Update []domain.Task    `json:"update"`
		Delete []domain.TaskKey `json:"delete"`
	}
	if err := json.Unmarshal(vendor.batchBodies["/batch/task"], &envelope); err != nil {
		t.Fatal(err)
	}
	if len(envelope.Update) != 1 || len(envelope.Add) != 0 || len(envelope.Delete) != 0 {
		t.Fatalf("envelope = %+v", envelope)
	}
	got := envelope.Update[0]
	if got.ID != "t1" || got.Title != "complete entity" || got.Priority != domain.PriorityHigh {
		t.Errorf("update entry = %+v", got)
	}
	if got.DueDate == nil || *got.DueDate != due {
		t.Errorf("dueDate lost in envelope: %v", got.DueDate)
	}
}

func TestRepository_DeleteTaskBatchKey(t *testing.T) {
	vendor := newFakeVendor()
	repo := newSessionRepo(t, vendor)

	if err := repo.DeleteTask(context.Background(), "p1", "t1"); err != nil {
		t.Fatal(err)
	}

	var envelope struct {
		Delete []domain.TaskKey `json:"delete"`
	}
	if err := json.Unmarshal(vendor.batchBodies["/batch/task"], &envelope); err != nil {
		t.Fatal(err)
	}
	want := domain.TaskKey{TaskID: "t1", ProjectID: "p1"}
	if len(envelope.Delete) != 1 || envelope.Delete[0] != want {
		t.Errorf("delete = %+v, want %+v", envelope.Delete, want)
	}
}

func TestRepository_BatchErrorSurfaces(t *testing.T) {
	vendor := newFakeVendor()
	vendor.batchReply = `{"id2etag":{},"id2error":{"t1":"NOT_EXISTED"}}`
	repo := newSessionRepo(t, vendor)

	_, err := repo.ReplaceTask(context.Background(), domain.Task{ID: "t1"})
	if err == nil || !strings.Contains(err.Error(), "t1") {
		t.Fatalf("err = %v, want per-entity batch failure", err)
	}
}

func TestRepository_ListTasksInboxAlias(t *testing.T) {
	vendor := newFakeVendor()
	vendor.sync.InboxID = "inbox-real"
	vendor.sync.SyncTaskBean.Update = []domain.Task{
		{ID: "t1", ProjectID: "inbox-real", Title: "in inbox"},
		{ID: "t2", ProjectID: "p9", Title: "elsewhere"},
	}
	repo := newSessionRepo(t, vendor)

	tasks, err := repo.ListTasks(context.Background(), domain.InboxProject)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || tasks[0].ID != "t1" {
		t.Errorf("tasks = %+v", tasks)
	}
}

func TestRepository_ListTags(t *testing.T) {
	vendor := newFakeVendor()
	vendor.sync.Tags = []domain.Tag{{Name: "work", Label: "Work"}}
	repo := newSessionRepo(t, vendor)

	tags, err := repo.ListTags(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(tags) != 1 || tags[0].Name != "work" {
		t.Errorf("tags = %+v", tags)
	}
}

func TestRepository_CreateTaskMintsID(t *testing.T) {
	vendor := newFakeVendor()
	repo := newSessionRepo(t, vendor)

	created, err := repo.CreateTask(context.Background(), domain.Task{Title: "fresh"})
	if err != nil {
		t.Fatal(err)
	}
	if len(created.ID) != 24 {
		t.Errorf("minted id = %q, want 24 hex chars", created.ID)
	}
}

func TestRepository_SessionOnlyOpsRefusedOnToken(t *testing.T) {
	client := NewClient(staticCreds{token: "tok"})
	repo := NewRepository(client, application.AuthToken)

	_, err := repo.ListHabits(context.Background())
	var ipe *application.IncompatibleProtocolError
	if !errors.As(err, &ipe) {
		t.Fatalf("err = %v, want IncompatibleProtocolError", err)
	}
}
