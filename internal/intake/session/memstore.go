package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mrsinham/alzforge/internal/intake"
)

// MemStore is an in-process Store. Nothing outlives the process.
type MemStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time
}

// NewMemStore returns an empty store.
func NewMemStore() *MemStore {
	return &MemStore{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

// Create starts a session at the first section.
func (m *MemStore) Create(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}

	now := m.now()
	s := Session{
		ID:        uuid.NewString(),
		State:     intake.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.sessions[s.ID] = s.clone()
	m.mu.Unlock()

	return s, nil
}

// Get returns a copy of the stored session.
func (m *MemStore) Get(ctx context.Context, id string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}

	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return Session{}, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	return s.clone(), nil
}

// Put replaces the state of an existing session and bumps UpdatedAt.
// CreatedAt is kept from the stored copy.
func (m *MemStore) Put(ctx context.Context, s Session) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	if err := s.State.Check(); err != nil {
		return Session{}, fmt.Errorf("put %s: %w", s.ID, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	prev, ok := m.sessions[s.ID]
	if !ok {
		return Session{}, fmt.Errorf("put %s: %w", s.ID, ErrNotFound)
	}
	s.CreatedAt = prev.CreatedAt
	s.UpdatedAt = m.now()
	m.sessions[s.ID] = s.clone()

	return s.clone(), nil
}

// Delete removes a session.
func (m *MemStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}
	delete(m.sessions, id)
	return nil
}

// Len reports how many sessions are held.
func (m *MemStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

var _ Store = (*MemStore)(nil)
