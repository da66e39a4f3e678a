package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mrsinham/alzforge/cmd/alzforge/wizard/components"
	"github.com/mrsinham/alzforge/cmd/alzforge/wizard/help"
)

// SummaryAction represents the action selected on the summary screen
type SummaryAction int

const (
	// SummaryActionFinish accepts the record and exits
	SummaryActionFinish SummaryAction = iota
	// SummaryActionBack reopens the last section
	SummaryActionBack
)

var (
	summaryPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("63")).
				Padding(0, 1)

	summaryHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("63")).
				Bold(true).
				Padding(0, 1)

	summaryCellStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Padding(0, 1)
)

// SummaryHeaders are the column titles of the transposed record.
var SummaryHeaders = []string{"Field", "Value", "Meaning"}

// SummaryScreen displays the transposed feature record after submission
type SummaryScreen struct {
	form      *huh.Form
	rows      [][]string
	action    SummaryAction
	done      bool
	cancelled bool
	width     int
	height    int
}

// NewSummaryScreen creates a summary screen over rows (field, value, meaning).
func NewSummaryScreen(rows [][]string) *SummaryScreen {
	s := &SummaryScreen{
		rows:   rows,
		action: SummaryActionFinish,
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[SummaryAction]().
				Key(help.KeySummaryAction).
				Title("Select an action").
				Options(
					huh.NewOption("Finish", SummaryActionFinish),
					huh.NewOption("Back to edit", SummaryActionBack),
				).
				Value(&s.action),
		),
	).WithShowHelp(false)

	return s
}

// Init implements tea.Model
func (s *SummaryScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *SummaryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			// Esc goes back instead of cancelling
			s.action = SummaryActionBack
			s.done = true
			return s, nil
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// RenderTable draws rows under SummaryHeaders.
func RenderTable(rows [][]string) string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers(SummaryHeaders...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return summaryHeaderStyle
			}
			return summaryCellStyle
		})
	return t.Render()
}

// View implements tea.Model
func (s *SummaryScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render(components.AppTitle),
		components.SubtitleStyle.Render("Collected feature record"),
		summaryPanelStyle.Render(RenderTable(s.rows)),
		"",
		s.form.View(),
		"",
		components.HintStyle.Render("Enter: Select | Esc: Back to edit"),
	)
}

// Form exposes the underlying form so it can be run on its own in accessible mode.
func (s *SummaryScreen) Form() *huh.Form { return s.form }

// Done returns true if an action was selected
func (s *SummaryScreen) Done() bool { return s.done }

// Cancelled returns true if the user cancelled
func (s *SummaryScreen) Cancelled() bool { return s.cancelled }

// Action returns the selected action
func (s *SummaryScreen) Action() SummaryAction { return s.action }
