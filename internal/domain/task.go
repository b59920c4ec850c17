package domain

// InboxProject is the service's default container for tasks that have no
// explicit project.
const InboxProject = "inbox"

// Task priority levels as the wire protocol encodes them.
const (
	PriorityNone   = 0
	PriorityLow    = 1
	PriorityMedium = 3
	PriorityHigh   = 5
)

// Task status values.
const (
	StatusOpen      = 0
	StatusCompleted = 2
)

// Task is the full wire representation of a task, shared by both API
// surfaces. Date fields are pointers so an explicit clear serializes as
// JSON null rather than being dropped.
type Task struct {
	ID         string      `json:"id,omitempty"`
	ProjectID  string      `json:"projectId,omitempty"`
	ParentID   string      `json:"parentId,omitempty"`
	Title      string      `json:"title"`
	Content    string      `json:"content"`
	Desc       string      `json:"desc,omitempty"`
	Priority   int         `json:"priority"`
	Status     int         `json:"status"`
	StartDate  *string     `json:"startDate"`
	DueDate    *string     `json:"dueDate"`
	TimeZone   string      `json:"timeZone,omitempty"`
	IsAllDay   bool        `json:"isAllDay"`
	RepeatFlag string      `json:"repeatFlag,omitempty"`
	Reminders  []string    `json:"reminders"`
	Tags       []string    `json:"tags"`
	Items      []CheckItem `json:"items,omitempty"`
	SortOrder  int64       `json:"sortOrder,omitempty"`
	Etag       string      `json:"etag,omitempty"`

	ModifiedTime string `json:"modifiedTime,omitempty"`
	CreatedTime  string `json:"createdTime,omitempty"`
}

// CheckItem is a checklist entry inside a task.
type CheckItem struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title"`
	Status    int    `json:"status"`
	SortOrder int64  `json:"sortOrder,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	IsAllDay  bool   `json:"isAllDay,omitempty"`
}

// TaskKey identifies a task inside a batch delete entry.
type TaskKey struct {
	TaskID    string `json:"taskId"`
	ProjectID string `json:"projectId"`
}
