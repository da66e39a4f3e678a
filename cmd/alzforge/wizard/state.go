// Package wizard provides the interactive TUI that walks a clinician through
// the intake sections.
package wizard

import (
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/mrsinham/alzforge/internal/intake/session"
)

// Phase represents the current phase/screen of the wizard.
type Phase int

const (
	PhaseSection Phase = iota
	PhaseSummary
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseSection:
		return "section"
	case PhaseSummary:
		return "summary"
	case PhaseError:
		return "error"
	}
	return "unknown"
}

// Options configures a wizard run.
type Options struct {
	// Store keeps the session. Nil uses a fresh in-memory store.
	Store session.Store
	// Logger receives transition logs. Nil discards them.
	Logger *slog.Logger
	// RNG draws patient identifiers and placeholder names. Nil is time-seeded.
	RNG *rand.Rand
	// Accessible runs plain prompts instead of the full-screen TUI.
	Accessible bool
	// Input defaults to stdin and Output to stderr. Stdout is left for the record.
	Input  io.Reader
	Output io.Writer
}
