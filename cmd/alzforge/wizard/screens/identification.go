package screens

import (
	"math/rand/v2"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/alzforge/cmd/alzforge/wizard/components"
	"github.com/mrsinham/alzforge/cmd/alzforge/wizard/help"
	"github.com/mrsinham/alzforge/internal/intake"
	"github.com/mrsinham/alzforge/internal/util"
)

// IdentificationScreen is the Patient Identification section. Nothing it
// collects is recorded.
type IdentificationScreen struct {
	formScreen
	req    intake.RenderRequest
	name   string
	action Action
}

// NewIdentificationScreen builds the screen for req, prefilled with name.
// rng only feeds the placeholder name.
func NewIdentificationScreen(req intake.RenderRequest, name string, rng *rand.Rand) *IdentificationScreen {
	s := &IdentificationScreen{
		formScreen: newFormScreen(),
		req:        req,
		name:       name,
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Patient ID").
				Description(strconv.Itoa(req.PatientID)),

			huh.NewInput().
				Key(help.KeyPatientName).
				Title("Enter Patient Name").
				Placeholder(util.GeneratePlaceholderName(rng)).
				Value(&s.name),

			newNavSelect(req.Nav, &s.action),
		),
	).WithShowHelp(false)

	s.helpPanel.SetField(help.KeyPatientName)

	return s
}

// Update implements tea.Model
func (s *IdentificationScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := s.update(msg)
	return s, cmd
}

// View implements tea.Model
func (s *IdentificationScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	parts := []string{
		s.header.View(s.req),
		components.SubtitleStyle.Render(components.AppDescription),
		s.form.View(),
	}
	if err := intake.CheckPatientName(s.name); err != nil {
		parts = append(parts, components.WarningStyle.Render("! "+err.Error()))
	}
	parts = append(parts, "", s.helpPanel.View(), "", components.HintStyle.Render(keyHint))
	if summary := s.summaryView(); summary != "" {
		parts = append(parts, "", summary)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Request returns the render request the screen was built from.
func (s *IdentificationScreen) Request() intake.RenderRequest { return s.req }

// Name returns the entered patient name.
func (s *IdentificationScreen) Name() string { return s.name }

// Action returns the chosen navigation.
func (s *IdentificationScreen) Action() Action { return s.action }

// Fields returns nil: the identification section records nothing.
func (s *IdentificationScreen) Fields() (intake.Fields, error) { return nil, nil }
