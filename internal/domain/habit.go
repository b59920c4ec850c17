package domain

// Habit is a recurring habit tracked by the session surface.
type Habit struct {
	ID            string   `json:"id,omitempty"`
	Name          string   `json:"name"`
	IconRes       string   `json:"iconRes,omitempty"`
	Color         string   `json:"color,omitempty"`
	Goal          float64  `json:"goal"`
	Step          float64  `json:"step"`
	Unit          string   `json:"unit,omitempty"`
	Type          string   `json:"type,omitempty"`
	Encouragement string   `json:"encouragement,omitempty"`
	RepeatRule    string   `json:"repeatRule,omitempty"`
	Reminders     []string `json:"reminders"`
	SortOrder     int64    `json:"sortOrder,omitempty"`
	Status        int      `json:"status,omitempty"`
	TotalCheckIns int      `json:"totalCheckIns,omitempty"`
}

// HabitCheckin records one check-in of a habit on a given day.
// CheckinStamp is the vendor's yyyyMMdd integer date form.
type HabitCheckin struct {
	ID           string  `json:"id,omitempty"`
	HabitID      string  `json:"habitId"`
	CheckinStamp int     `json:"checkinStamp"`
	Value        float64 `json:"value"`
	Goal         float64 `json:"goal,omitempty"`
	Status       int     `json:"status,omitempty"`
}

// FocusSummary is one day of focus-time statistics (pomodoro heatmap cell).
type FocusSummary struct {
	Day      string `json:"day"`
	Duration int    `json:"duration"`
}

// UserProfile is the subset of user preferences the session surface returns.
type UserProfile struct {
	Username    string `json:"username"`
	Name        string `json:"name,omitempty"`
	Locale      string `json:"locale,omitempty"`
	TimeZone    string `json:"timeZone,omitempty"`
	StartOfWeek int    `json:"weekStart,omitempty"`
}
