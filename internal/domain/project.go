package domain

// Project is a task container (a "list" in the web client).
type Project struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	Color      string `json:"color,omitempty"`
	SortOrder  int64  `json:"sortOrder,omitempty"`
	Closed     bool   `json:"closed,omitempty"`
	GroupID    string `json:"groupId,omitempty"`
	ViewMode   string `json:"viewMode,omitempty"`
	Permission string `json:"permission,omitempty"`
	Kind       string `json:"kind,omitempty"`
}

// ProjectGroup is a folder of projects. Only exposed by the session surface.
type ProjectGroup struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int64  `json:"sortOrder,omitempty"`
}

// Tag as the session surface represents it. Tags are keyed by Name; Label
// carries the display casing.
type Tag struct {
	Name      string `json:"name"`
	Label     string `json:"label,omitempty"`
	Color     string `json:"color,omitempty"`
	Parent    string `json:"parent,omitempty"`
	SortOrder int64  `json:"sortOrder,omitempty"`
	SortType  string `json:"sortType,omitempty"`
}
