// Package session keeps wizard states keyed by session id.
//
// The intake core is pure; the presentation layer stores each new State here
// after every transition so a running wizard can be inspected or resumed
// within the same process.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/mrsinham/alzforge/internal/intake"
)

// ErrNotFound is returned for an unknown session id.
var ErrNotFound = errors.New("session not found")

// Session is one clinician's pass through the wizard.
type Session struct {
	ID        string
	State     intake.State
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store persists sessions. Implementations must hand out copies so callers
// can never alias a stored Inputs map.
type Store interface {
	Create(ctx context.Context) (Session, error)
	Get(ctx context.Context, id string) (Session, error)
	Put(ctx context.Context, s Session) (Session, error)
	Delete(ctx context.Context, id string) error
}

func (s Session) clone() Session {
	s.State.Inputs = s.State.Inputs.Clone()
	return s
}
