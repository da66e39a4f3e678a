package intake

import (
	"fmt"
	"maps"
)

// Fields is a set of collected values keyed by field name. Categorical
// values are stored as their integer code.
type Fields map[string]float64

// Clone returns an independent copy of f.
func (f Fields) Clone() Fields {
	if f == nil {
		return Fields{}
	}
	return maps.Clone(f)
}

// State is the wizard state of one session. It is a value: every
// transition returns a new State and leaves the receiver untouched.
type State struct {
	Step      Section
	Inputs    Fields
	Submitted bool
}

// New returns the initial state: first section, no inputs, not submitted.
func New() State {
	return State{Step: SectionIdentification, Inputs: Fields{}}
}

// Check reports whether the state satisfies its step invariant.
func (s State) Check() error {
	if !s.Step.Valid() {
		return fmt.Errorf("%w: step %d not in [0, %d)", ErrStepOutOfBounds, int(s.Step), TotalSteps)
	}
	return nil
}

// mustCheck panics on a corrupted step. A State built through New and the
// transitions below can never trip it.
func (s State) mustCheck() {
	if err := s.Check(); err != nil {
		panic(err)
	}
}

// CanAdvance reports whether Advance moves the wizard.
func (s State) CanAdvance() bool { return s.Step < lastSection }

// CanRetreat reports whether Retreat moves the wizard.
func (s State) CanRetreat() bool { return s.Step > SectionIdentification }

// CanSubmit reports whether Submit completes the wizard.
func (s State) CanSubmit() bool { return s.Step == lastSection }

// Advance moves to the next section. It is a no-op on the last section.
func (s State) Advance() State {
	s.mustCheck()
	if s.CanAdvance() {
		s.Step++
	}
	s.Inputs = s.Inputs.Clone()
	return s
}

// Retreat moves to the previous section. It is a no-op on the first section.
func (s State) Retreat() State {
	s.mustCheck()
	if s.CanRetreat() {
		s.Step--
	}
	s.Inputs = s.Inputs.Clone()
	return s
}

// Submit marks the wizard complete. It is a no-op before the last section.
// Once set, Submitted is never cleared.
func (s State) Submit() State {
	s.mustCheck()
	if s.CanSubmit() {
		s.Submitted = true
	}
	s.Inputs = s.Inputs.Clone()
	return s
}

// RecordSectionFields merges fields into the inputs, last write wins per key.
// Patient Identification keys are dropped so they can never become model
// features. The step is not changed.
func (s State) RecordSectionFields(fields Fields) State {
	s.mustCheck()
	merged := s.Inputs.Clone()
	for name, v := range fields {
		if IsIdentificationField(name) {
			continue
		}
		merged[name] = v
	}
	s.Inputs = merged
	return s
}

// Finalize materializes the inputs into a one-row FeatureRecord. It is
// recomputed from scratch on every call.
func (s State) Finalize() (FeatureRecord, error) {
	if len(s.Inputs) == 0 {
		return FeatureRecord{}, ErrEmptyRecord
	}
	return newFeatureRecord(s.Inputs), nil
}
