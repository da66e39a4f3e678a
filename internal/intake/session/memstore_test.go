package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsinham/alzforge/internal/intake"
)

func TestMemStore_CreateGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	s, err := store.Create(ctx)
	require.NoError(t, err)

	_, err = uuid.Parse(s.ID)
	assert.NoError(t, err, "session id should be a uuid")
	assert.Equal(t, intake.SectionIdentification, s.State.Step)
	assert.False(t, s.State.Submitted)
	assert.Equal(t, s.CreatedAt, s.UpdatedAt)

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, 1, store.Len())
}

func TestMemStore_PutKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	tick := base
	store.now = func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	}

	s, err := store.Create(ctx)
	require.NoError(t, err)

	s.State = s.State.Advance().RecordSectionFields(intake.Fields{intake.FieldAge: 70})
	s.CreatedAt = time.Time{}
	updated, err := store.Put(ctx, s)
	require.NoError(t, err)

	assert.Equal(t, base.Add(time.Minute), updated.CreatedAt)
	assert.Equal(t, base.Add(2*time.Minute), updated.UpdatedAt)
	assert.Equal(t, intake.SectionDemographics, updated.State.Step)
	assert.Equal(t, 70.0, updated.State.Inputs[intake.FieldAge])
}

func TestMemStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	s, err := store.Create(ctx)
	require.NoError(t, err)
	s.State = s.State.RecordSectionFields(intake.Fields{intake.FieldMMSE: 20})
	_, err = store.Put(ctx, s)
	require.NoError(t, err)

	// mutate what the caller holds
	s.State.Inputs[intake.FieldMMSE] = 1

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 20.0, got.State.Inputs[intake.FieldMMSE])

	got.State.Inputs[intake.FieldMMSE] = 2
	again, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 20.0, again.State.Inputs[intake.FieldMMSE])
}

func TestMemStore_NotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Put(ctx, Session{ID: "missing", State: intake.New()})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "missing"), ErrNotFound)
}

func TestMemStore_PutRejectsCorruptState(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	s, err := store.Create(ctx)
	require.NoError(t, err)

	s.State.Step = intake.TotalSteps
	_, err = store.Put(ctx, s)
	assert.ErrorIs(t, err, intake.ErrStepOutOfBounds)
}

func TestMemStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	s, err := store.Create(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, s.ID))

	_, err = store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestMemStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewMemStore()
	_, err := store.Create(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, store.Len())
}

func TestMemStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	s, err := store.Create(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(age int) {
			defer wg.Done()
			cur, err := store.Get(ctx, s.ID)
			if err != nil {
				return
			}
			cur.State = cur.State.RecordSectionFields(intake.Fields{intake.FieldAge: float64(age)})
			_, _ = store.Put(ctx, cur)
		}(i + 1)
	}
	wg.Wait()

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.InDelta(t, 10, got.State.Inputs[intake.FieldAge], 10)
}
