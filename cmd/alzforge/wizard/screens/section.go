package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/alzforge/cmd/alzforge/wizard/components"
	"github.com/mrsinham/alzforge/internal/entry"
	"github.com/mrsinham/alzforge/internal/intake"
)

// emptyOptionLabel stands in for an option whose label is blank.
const emptyOptionLabel = "(not specified)"

// SectionScreen renders any data-collecting section from its field specs.
type SectionScreen struct {
	formScreen
	req      intake.RenderRequest
	numeric  map[string]*string
	category map[string]*int
	action   Action
}

// NewSectionScreen builds a form for req. Fields already present in current
// are prefilled; the rest show their defaults.
func NewSectionScreen(req intake.RenderRequest, current intake.Fields) *SectionScreen {
	s := &SectionScreen{
		formScreen: newFormScreen(),
		req:        req,
		numeric:    make(map[string]*string),
		category:   make(map[string]*int),
	}

	fields := make([]huh.Field, 0, len(req.Fields)+1)
	for _, spec := range req.Fields {
		v, ok := current[spec.Name]
		if !ok {
			v = spec.Default
		}
		if spec.Kind == intake.KindCategory {
			fields = append(fields, s.categoryField(spec, v))
		} else {
			fields = append(fields, s.numberField(spec, v))
		}
	}
	fields = append(fields, newNavSelect(req.Nav, &s.action))

	s.form = huh.NewForm(huh.NewGroup(fields...)).
		WithShowHelp(false).
		WithShowErrors(true)

	if len(req.Fields) > 0 {
		s.helpPanel.SetField(req.Fields[0].Name)
	}

	return s
}

func (s *SectionScreen) numberField(spec intake.FieldSpec, v float64) huh.Field {
	text := entry.FormatNumber(spec, entry.Clamp(spec, v))
	s.numeric[spec.Name] = &text

	return huh.NewInput().
		Key(spec.Name).
		Title(spec.Label).
		Description(entry.Describe(spec)).
		Value(&text).
		Validate(func(raw string) error {
			_, err := entry.ParseNumber(spec, raw)
			return err
		})
}

func (s *SectionScreen) categoryField(spec intake.FieldSpec, v float64) huh.Field {
	code := int(v)
	s.category[spec.Name] = &code

	opts := make([]huh.Option[int], 0, len(spec.Options))
	for _, o := range spec.Options {
		label := o.Label
		if label == "" {
			label = emptyOptionLabel
		}
		opts = append(opts, huh.NewOption(label, o.Code))
	}

	sel := huh.NewSelect[int]().
		Key(spec.Name).
		Title(spec.Label).
		Options(opts...).
		Value(&code)
	if spec.IsBinary() {
		sel = sel.Inline(true)
	}
	return sel
}

// Update implements tea.Model
func (s *SectionScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := s.update(msg)
	return s, cmd
}

// View implements tea.Model
func (s *SectionScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	parts := []string{
		s.header.View(s.req),
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		components.HintStyle.Render(keyHint),
	}
	if summary := s.summaryView(); summary != "" {
		parts = append(parts, "", summary)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Request returns the render request the screen was built from.
func (s *SectionScreen) Request() intake.RenderRequest { return s.req }

// Action returns the chosen navigation.
func (s *SectionScreen) Action() Action { return s.action }

// Fields decodes every field of the section.
func (s *SectionScreen) Fields() (intake.Fields, error) {
	out := make(intake.Fields, len(s.req.Fields))
	for _, spec := range s.req.Fields {
		if code, ok := s.category[spec.Name]; ok {
			out[spec.Name] = float64(*code)
			continue
		}
		v, err := entry.ParseNumber(spec, *s.numeric[spec.Name])
		if err != nil {
			return nil, err
		}
		out[spec.Name] = v
	}
	return out, nil
}
