package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/alzforge/cmd/alzforge/wizard/help"
	"github.com/mrsinham/alzforge/internal/entry"
	"github.com/mrsinham/alzforge/internal/intake"
)

var (
	helpPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1)

	helpTitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("63")).
		Bold(true)

	helpDescStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	helpDetailStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	helpValuesStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("108"))
)

const (
	defaultHelpWidth = 60
	minHelpWidth     = 30
)

// HelpPanel shows what the focused control expects. For catalog fields it
// also lists the accepted values and the stored code of each option.
type HelpPanel struct {
	key   string
	width int
}

// NewHelpPanel creates an empty help panel.
func NewHelpPanel() *HelpPanel {
	return &HelpPanel{width: defaultHelpWidth}
}

// SetField switches the panel to the control with the given key.
func (h *HelpPanel) SetField(key string) {
	h.key = key
}

// Field returns the key currently described.
func (h *HelpPanel) Field() string { return h.key }

// SetWidth fits the panel into width columns.
func (h *HelpPanel) SetWidth(width int) {
	h.width = max(width, minHelpWidth)
}

// View renders the panel.
func (h *HelpPanel) View() string {
	style := helpPanelStyle.Width(h.width - 2)

	text, ok := help.Lookup(h.key)
	if !ok {
		return style.Render(helpDetailStyle.Render("No help for this control."))
	}

	lines := []string{
		helpTitleStyle.Render(text.Title),
		helpDescStyle.Render(text.Description),
	}
	if text.Details != "" {
		lines = append(lines, helpDetailStyle.Render(text.Details))
	}
	if spec, err := intake.LookupField(h.key); err == nil {
		lines = append(lines, helpValuesStyle.Render("Accepted: "+entry.Describe(spec)))
	}

	return style.Render(strings.Join(lines, "\n"))
}
