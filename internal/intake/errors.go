package intake

import "errors"

var (
	// ErrEmptyRecord is returned by Finalize when nothing has been recorded.
	ErrEmptyRecord = errors.New("no input data captured yet")

	// ErrStepOutOfBounds marks a State whose step left [0, TotalSteps).
	// Transitions treat it as a programming error and panic.
	ErrStepOutOfBounds = errors.New("step out of bounds")

	// ErrEmptyName is the advisory returned for a blank patient name.
	// It never blocks navigation.
	ErrEmptyName = errors.New("please enter a valid patient name")

	// ErrUnknownLabel is returned when a categorical label has no code.
	ErrUnknownLabel = errors.New("unknown option label")

	// ErrUnknownField is returned by LookupField for names outside the catalog.
	ErrUnknownField = errors.New("unknown field")
)
