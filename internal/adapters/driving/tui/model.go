// Package tui implements an interactive query console built on Bubble
// Tea. It lets a developer try questions against the retrieval pipeline
// and inspect the detected faculty and the assembled context.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/talenta-labs/kampuskb/internal/core/domain"
	"github.com/talenta-labs/kampuskb/internal/core/ports/driving"
)

// Model is the Bubble Tea model for the query console.
type Model struct {
	service   driving.RetrievalService
	input     textinput.Model
	viewport  viewport.Model
	faculty   domain.FacultyTag
	status    string
	ready     bool
	lastQuery string
}

// New creates a new console model bound to the retrieval service.
func New(service driving.RetrievalService) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Taip soalan dan tekan Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		service:  service,
		input:    ti,
		viewport: vp,
		status:   "Ready. Type a question about FSKTM, FKAAB or FKEE.",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, ch := contextBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + qh + 1 // header + faculty line, query box, status
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-ch)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				m.runQuery(q)
				m.input.SetValue("")
				return m, nil
			}
		case "down":
			m.viewport.ScrollDown(1)
			return m, nil
		case "up":
			m.viewport.ScrollUp(1)
			return m, nil
		case "pgdown":
			m.viewport.HalfPageDown()
			return m, nil
		case "pgup":
			m.viewport.HalfPageUp()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) runQuery(q string) {
	m.lastQuery = q
	m.faculty = m.service.DetectFaculty(q)
	answer := m.service.ContextForAI(context.Background(), m.faculty, q)
	if strings.TrimSpace(answer) == "" {
		answer = "No context assembled for this question."
	}
	m.viewport.SetContent(answer)
	m.viewport.GotoTop()
	m.status = fmt.Sprintf("Context for %q", q)
}

// View renders the console layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("KampusKB Console")
	faculty := "faculty: -"
	if m.lastQuery != "" {
		faculty = fmt.Sprintf("faculty: %s (%s)", m.faculty, m.faculty.Description())
	}
	facultyLine := facultyStyle.Render(faculty)
	body := contextBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + facultyLine + "\n" + body + "\n" + input + "\n" + status
}

var (
	contextBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	facultyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
