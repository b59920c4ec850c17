package domain

// TaskPatch carries the caller's partial update intent for a task. Zero-value
// fields mean "leave alone"; pointer fields distinguish "not supplied" from a
// legitimate zero. Resetting a field to empty goes through Clear, never
// through an empty value.
type TaskPatch struct {
	Title      string
	Content    string
	Desc       string
	Priority   *int
	Status     *int
	StartDate  string
	DueDate    string
	TimeZone   string
	IsAllDay   *bool
	RepeatFlag string

	// Reminders is a comma-separated list; segments are trimmed and empty
	// segments dropped.
	Reminders string

	AddTags    []string
	RemoveTags []string

	// Items, when non-nil, rebuilds the checklist wholesale.
	Items []CheckItemPatch

	ProjectID string

	// Clear names fields to reset to their empty value before any explicit
	// values above are applied.
	Clear []string
}

// CheckItemPatch is the per-subtask counterpart of TaskPatch.
type CheckItemPatch struct {
	ID     string
	Title  string
	Status *int
}

// ProjectPatch carries a partial project update.
type ProjectPatch struct {
	Name     string
	Color    string
	ViewMode string
	Kind     string
	GroupID  string
	Clear    []string
}

// TagPatch carries a partial tag update. Tags are addressed by Name.
type TagPatch struct {
	Label  string
	Color  string
	Parent string
	Clear  []string
}

// HabitPatch carries a partial habit update.
type HabitPatch struct {
	Name          string
	Color         string
	IconRes       string
	Goal          *float64
	Step          *float64
	Unit          string
	Encouragement string
	Clear         []string
}
