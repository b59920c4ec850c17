package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tickbridge/internal/adapters/tui/styles"
	"tickbridge/internal/application"
	"tickbridge/internal/application/commands"
	"tickbridge/internal/domain"
	"tickbridge/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Back     key.Binding
	Enter    key.Binding
	Complete key.Binding
	Delete   key.Binding
	Yank     key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Back: key.NewBinding(
		key.WithKeys("h", "left", "esc"),
		key.WithHelp("h/←", "back"),
	),
	Enter: key.NewBinding(
		key.WithKeys("l", "right", "enter"),
		key.WithHelp("enter", "open"),
	),
	Complete: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "complete"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy id"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// browserLevel says whether the cursor walks projects or the tasks of one
// project.
type browserLevel int

const (
	levelProjects browserLevel = iota
	levelTasks
)

// BrowserModel is the model for the project/task browser view
type BrowserModel struct {
	ViewState
	gateway ports.TaskGateway

	level    browserLevel
	projects []domain.Project
	tasks    []domain.Task
	current  *domain.Project
	cursor   int
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(gateway ports.TaskGateway) *BrowserModel {
	return &BrowserModel{gateway: gateway}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadProjects
}

func (m *BrowserModel) loadProjects() tea.Msg {
	projects, err := commands.NewListProjectsCommand(m.gateway).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return projectsLoadedMsg{projects}
}

func (m *BrowserModel) loadTasks(project domain.Project) tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewListTasksCommand(m.gateway, application.DirectLocator(project.ID))
		tasks, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return tasksLoadedMsg{project, tasks}
	}
}

type projectsLoadedMsg struct {
	projects []domain.Project
}

type tasksLoadedMsg struct {
	project domain.Project
	tasks   []domain.Task
}

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case projectsLoadedMsg:
		m.projects = msg.projects
		m.level = levelProjects
		m.current = nil
		m.clampCursor()
		return m, nil

	case tasksLoadedMsg:
		m.tasks = msg.tasks
		m.current = &msg.project
		m.level = levelTasks
		m.cursor = 0
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, m.Reload()

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			if m.cursor < m.entryCount()-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Back):
			if m.level == levelTasks {
				m.level = levelProjects
				m.current = nil
				m.cursor = m.projectCursor()
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Enter):
			if m.level == levelProjects {
				if p := m.selectedProject(); p != nil {
					return m, m.loadTasks(*p)
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Complete):
			if t := m.selectedTask(); t != nil {
				return m, m.completeTask(*t)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Delete):
			if t := m.selectedTask(); t != nil {
				return m, m.deleteTask(*t)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Yank):
			if t := m.selectedTask(); t != nil {
				if err := clipboard.WriteAll(t.ID); err != nil {
					m.SetMessage(err.Error(), true)
				} else {
					m.SetMessage(fmt.Sprintf("Copied %s", t.ID), false)
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Reload):
			return m, m.Reload()

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *BrowserModel) completeTask(t domain.Task) tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewCompleteTaskCommand(m.gateway, t.ID, t.ProjectID)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return successMsg{result.Message}
	}
}

func (m *BrowserModel) deleteTask(t domain.Task) tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewDeleteTaskCommand(m.gateway, t.ID, t.ProjectID)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return successMsg{result.Message}
	}
}

func (m *BrowserModel) entryCount() int {
	if m.level == levelTasks {
		return len(m.tasks)
	}
	return len(m.projects)
}

func (m *BrowserModel) selectedProject() *domain.Project {
	if m.level != levelProjects || m.cursor < 0 || m.cursor >= len(m.projects) {
		return nil
	}
	return &m.projects[m.cursor]
}

func (m *BrowserModel) selectedTask() *domain.Task {
	if m.level != levelTasks || m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	return &m.tasks[m.cursor]
}

// projectCursor finds the position of the currently open project so leaving
// the task list lands back on it.
func (m *BrowserModel) projectCursor() int {
	if m.current == nil {
		return 0
	}
	for i, p := range m.projects {
		if p.ID == m.current.ID {
			return i
		}
	}
	return 0
}

func (m *BrowserModel) clampCursor() {
	if m.cursor >= m.entryCount() {
		m.cursor = m.entryCount() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Tickbridge"))
	b.WriteString("\n")
	if m.level == levelTasks && m.current != nil {
		b.WriteString(styles.Subtitle.Render(m.current.Name))
	} else {
		b.WriteString(styles.Subtitle.Render("Projects"))
	}
	b.WriteString("\n\n")

	switch m.level {
	case levelProjects:
		if m.projects == nil {
			b.WriteString("Loading...")
		}
		for i, p := range m.projects {
			b.WriteString(m.renderProject(p, i == m.cursor))
			b.WriteString("\n")
		}
	case levelTasks:
		if len(m.tasks) == 0 {
			b.WriteString(styles.MutedText.Render("No open tasks."))
			b.WriteString("\n")
		}
		for i, t := range m.tasks {
			b.WriteString(m.renderTask(t, i == m.cursor))
			b.WriteString("\n")
		}
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *BrowserModel) renderProject(p domain.Project, selected bool) string {
	text := p.Name
	if selected {
		return styles.EntrySelected.Render(text)
	}
	return styles.EntryProject.Render(text)
}

func (m *BrowserModel) renderTask(t domain.Task, selected bool) string {
	marker := styles.PriorityMarker(t.Priority)

	text := t.Title
	if t.DueDate != nil && len(*t.DueDate) >= 10 {
		text = fmt.Sprintf("%s  %s", text, styles.MutedText.Render((*t.DueDate)[:10]))
	}

	switch {
	case selected:
		text = styles.EntrySelected.Render(t.Title)
	case t.Status == domain.StatusCompleted:
		text = styles.EntryDone.Render(t.Title)
	default:
		text = styles.EntryTask.Render(text)
	}
	return marker + text
}

func (m *BrowserModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"enter", "open"},
		{"h", "back"},
		{"c", "complete"},
		{"d", "delete"},
		{"y", "copy id"},
		{"?", "help"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}

// Reload refetches the current level from the service
func (m *BrowserModel) Reload() tea.Cmd {
	if m.level == levelTasks && m.current != nil {
		return m.loadTasks(*m.current)
	}
	return m.loadProjects
}
