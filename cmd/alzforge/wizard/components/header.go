package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/alzforge/internal/intake"
)

const defaultBarWidth = 40

var stepStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("252")).
	Bold(true)

// StepHeader renders the application title, a progress bar over the seven
// sections and the "Step n of 7" line.
type StepHeader struct {
	bar progress.Model
}

// NewStepHeader creates a header with the default bar width.
func NewStepHeader() *StepHeader {
	return &StepHeader{
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(defaultBarWidth),
		),
	}
}

// SetWidth resizes the bar to fit a terminal of the given width.
func (h *StepHeader) SetWidth(width int) {
	w := width - 10
	if w <= 0 || w > defaultBarWidth {
		w = defaultBarWidth
	}
	h.bar.Width = w
}

// StepLine formats the position line, e.g. "Step 3 of 7 · Lifestyle Factors".
func StepLine(req intake.RenderRequest) string {
	return fmt.Sprintf("Step %d of %d · %s", req.Step+1, req.TotalSteps, req.Title)
}

// View renders the header for req.
func (h *StepHeader) View(req intake.RenderRequest) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(AppTitle),
		h.bar.ViewAs(req.Progress()),
		stepStyle.Render(StepLine(req)),
	)
}
