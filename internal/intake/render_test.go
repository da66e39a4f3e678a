package intake

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/mrsinham/alzforge/internal/util"
)

func TestRenderCurrentSection_Identification(t *testing.T) {
	req := RenderCurrentSection(New(), rand.New(rand.NewPCG(1, 1)))

	if req.Section != SectionIdentification || req.Title != "Patient Identification" {
		t.Errorf("Unexpected section %v %q", req.Section, req.Title)
	}
	if len(req.Fields) != 0 {
		t.Errorf("Identification should expose no model fields, got %d", len(req.Fields))
	}
	if req.PatientID < util.MinPatientID || req.PatientID >= util.MaxPatientID {
		t.Errorf("PatientID %d out of range", req.PatientID)
	}
	if req.Nav.BackEnabled {
		t.Error("Back should be disabled at step 0")
	}
	if !req.Nav.ShowNext || req.Nav.ShowSubmit {
		t.Errorf("Step 0 nav = %+v, want Next only", req.Nav)
	}
}

func TestRenderCurrentSection_IdentifierRedrawnEachRender(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	s := New()

	seen := map[int]bool{}
	for i := 0; i < 20; i++ {
		seen[RenderCurrentSection(s, rng).PatientID] = true
	}
	if len(seen) < 2 {
		t.Error("Patient identifier should be redrawn on every render")
	}

	// rendering never stores the identifier
	if len(s.Inputs) != 0 {
		t.Errorf("Render mutated inputs: %v", s.Inputs)
	}
}

func TestRenderCurrentSection_OtherSectionsHaveNoIdentifier(t *testing.T) {
	s := New().Advance()
	for s.CanAdvance() {
		req := RenderCurrentSection(s, nil)
		if req.PatientID != 0 {
			t.Errorf("Section %v got PatientID %d", s.Step, req.PatientID)
		}
		if len(req.Fields) == 0 {
			t.Errorf("Section %v has no fields", s.Step)
		}
		s = s.Advance()
	}
}

func TestRenderCurrentSection_Navigation(t *testing.T) {
	s := New()
	for i := 0; i < TotalSteps; i++ {
		req := RenderCurrentSection(s, nil)
		if req.Step != i || req.TotalSteps != TotalSteps {
			t.Errorf("Step %d/%d, want %d/%d", req.Step, req.TotalSteps, i, TotalSteps)
		}
		if req.Nav.BackEnabled != (i > 0) {
			t.Errorf("Step %d BackEnabled = %v", i, req.Nav.BackEnabled)
		}
		if req.Nav.ShowNext != (i < TotalSteps-1) {
			t.Errorf("Step %d ShowNext = %v", i, req.Nav.ShowNext)
		}
		if req.Nav.ShowSubmit != (i == TotalSteps-1) {
			t.Errorf("Step %d ShowSubmit = %v", i, req.Nav.ShowSubmit)
		}
		s = s.Advance()
	}
}

func TestRenderCurrentSection_ShowSummary(t *testing.T) {
	s := New()
	for s.CanAdvance() {
		s = s.Advance()
	}
	if RenderCurrentSection(s, nil).ShowSummary {
		t.Error("Summary should be hidden before submit")
	}
	if !RenderCurrentSection(s.Submit(), nil).ShowSummary {
		t.Error("Summary should be shown after submit")
	}
}

func TestRenderRequest_Progress(t *testing.T) {
	tests := []struct {
		step int
		want float64
	}{
		{0, 0},
		{3, 0.5},
		{6, 1},
	}
	for _, tc := range tests {
		req := RenderRequest{Step: tc.step, TotalSteps: TotalSteps}
		if got := req.Progress(); got != tc.want {
			t.Errorf("Progress at step %d = %v, want %v", tc.step, got, tc.want)
		}
	}
}

func TestCheckPatientName(t *testing.T) {
	for _, blank := range []string{"", "   ", "\t"} {
		if err := CheckPatientName(blank); !errors.Is(err, ErrEmptyName) {
			t.Errorf("CheckPatientName(%q) = %v, want ErrEmptyName", blank, err)
		}
	}
	if err := CheckPatientName("Jane Doe"); err != nil {
		t.Errorf("CheckPatientName(Jane Doe) = %v, want nil", err)
	}
}
