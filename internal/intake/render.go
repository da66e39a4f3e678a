package intake

import (
	"math/rand/v2"
	"strings"

	"github.com/mrsinham/alzforge/internal/util"
)

// Navigation lists the buttons a section may show.
type Navigation struct {
	BackEnabled bool
	ShowNext    bool
	ShowSubmit  bool
}

// RenderRequest tells the presentation layer what to draw for the current step.
type RenderRequest struct {
	Section    Section
	Title      string
	Step       int
	TotalSteps int
	Fields     []FieldSpec
	Nav        Navigation
	// ShowSummary is set once the wizard has been submitted.
	ShowSummary bool
	// PatientID is drawn anew for every Patient Identification render and is
	// zero for every other section. It is never stored.
	PatientID int
}

// Progress returns the completed fraction of the wizard, from 0 to 1.
func (r RenderRequest) Progress() float64 {
	if r.TotalSteps <= 1 {
		return 1
	}
	return float64(r.Step) / float64(r.TotalSteps-1)
}

// RenderCurrentSection describes the section at s.Step. For Patient
// Identification a fresh identifier is drawn from rng on every call; nil
// uses a shared time-seeded source.
func RenderCurrentSection(s State, rng *rand.Rand) RenderRequest {
	s.mustCheck()

	req := RenderRequest{
		Section:    s.Step,
		Title:      s.Step.String(),
		Step:       int(s.Step),
		TotalSteps: TotalSteps,
		Fields:     SectionFields(s.Step),
		Nav: Navigation{
			BackEnabled: s.CanRetreat(),
			ShowNext:    s.CanAdvance(),
			ShowSubmit:  s.CanSubmit(),
		},
		ShowSummary: s.Submitted,
	}

	if s.Step == SectionIdentification {
		req.PatientID = util.GeneratePatientID(rng)
	}

	return req
}

// CheckPatientName returns ErrEmptyName for a blank name. The result is
// advisory only.
func CheckPatientName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}
