package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#2EA8E6") // Blue
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// List entry styles
	EntryProject = lipgloss.NewStyle().
			Bold(true)

	EntryTask = lipgloss.NewStyle()

	EntryDone = lipgloss.NewStyle().
			Foreground(Muted).
			Strikethrough(true)

	EntrySelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	EntryOverdue = lipgloss.NewStyle().
			Foreground(Error)

	// Priority markers
	MarkerHigh   = lipgloss.NewStyle().Foreground(Error).SetString("!!")
	MarkerMedium = lipgloss.NewStyle().Foreground(Warning).SetString("!")
	MarkerBullet = lipgloss.NewStyle().Foreground(Muted)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// PriorityMarker returns the marker for a task priority value.
func PriorityMarker(priority int) string {
	switch {
	case priority >= 5:
		return MarkerHigh.String() + " "
	case priority >= 3:
		return MarkerMedium.String() + "  "
	default:
		return "   "
	}
}
