// Package screens holds one tea.Model per wizard screen.
package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mrsinham/alzforge/cmd/alzforge/wizard/components"
)

const keyHint = "Tab: Next field | Enter: Confirm | Esc: Cancel"

// formScreen carries the state every form-backed screen shares.
type formScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	header    *components.StepHeader
	done      bool
	cancelled bool
	width     int
	height    int
	// summary is the record rendered under the form once submitted.
	summary [][]string
}

func newFormScreen() formScreen {
	return formScreen{
		helpPanel: components.NewHelpPanel(),
		header:    components.NewStepHeader(),
	}
}

// update feeds msg to the form and tracks focus, completion and cancellation.
func (b *formScreen) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			b.cancelled = true
			return tea.Quit
		}
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.helpPanel.SetWidth(msg.Width / 2)
		b.header.SetWidth(msg.Width)
	}

	form, cmd := b.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		b.form = f
	}

	if focused := b.form.GetFocusedField(); focused != nil {
		b.helpPanel.SetField(focused.GetKey())
	}

	if b.form.State == huh.StateCompleted {
		b.done = true
	}

	return cmd
}

// Init implements tea.Model
func (b *formScreen) Init() tea.Cmd {
	return b.form.Init()
}

// Form exposes the underlying form so it can be run on its own in accessible mode.
func (b *formScreen) Form() *huh.Form { return b.form }

// Done returns true if the form was completed
func (b *formScreen) Done() bool { return b.done }

// Cancelled returns true if the user cancelled
func (b *formScreen) Cancelled() bool { return b.cancelled }

// SetSummary shows rows of the submitted record under the form. Nil hides it.
func (b *formScreen) SetSummary(rows [][]string) { b.summary = rows }

// Summary returns the rows set by SetSummary.
func (b *formScreen) Summary() [][]string { return b.summary }

// summaryView renders the submitted record, or nothing before submission.
func (b *formScreen) summaryView() string {
	if b.summary == nil {
		return ""
	}
	return summaryPanelStyle.Render(RenderTable(b.summary))
}
