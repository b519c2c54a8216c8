package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-dashboard/internal/dashboard"
)

func newTestStore(max int, age time.Duration) *SessionStore {
	return NewSessionStore(func() *dashboard.Dashboard {
		return dashboard.New(nil, dashboard.Options{})
	}, max, age)
}

func TestGetOrCreate(t *testing.T) {
	s := newTestStore(10, time.Hour)

	id, d := s.GetOrCreate("")
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	require.NotNil(t, d)

	again, same := s.GetOrCreate(id)
	assert.Equal(t, id, again)
	assert.Same(t, d, same)

	got, err := s.Get(id)
	require.NoError(t, err)
	assert.Same(t, d, got)
	assert.Equal(t, 1, s.Len())
}

func TestGetOrCreateRejectsForeignIDs(t *testing.T) {
	s := newTestStore(10, time.Hour)

	id, _ := s.GetOrCreate("not-a-uuid")
	assert.NotEqual(t, "not-a-uuid", id)

	_, err := s.Get("not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEvictsOldestSession(t *testing.T) {
	s := newTestStore(2, 0)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	first, _ := s.GetOrCreate("")
	now = now.Add(time.Minute)
	second, _ := s.GetOrCreate("")
	now = now.Add(time.Minute)
	s.GetOrCreate(first) // touch first so second is the oldest
	now = now.Add(time.Minute)
	third, _ := s.GetOrCreate("")

	assert.Equal(t, 2, s.Len())
	_, err := s.Get(second)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(first)
	assert.NoError(t, err)
	_, err = s.Get(third)
	assert.NoError(t, err)
}

func TestPrune(t *testing.T) {
	s := newTestStore(0, time.Hour)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	old, _ := s.GetOrCreate("")
	now = now.Add(50 * time.Minute)
	fresh, _ := s.GetOrCreate("")
	now = now.Add(20 * time.Minute)

	assert.Equal(t, 1, s.Prune())
	_, err := s.Get(old)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(fresh)
	assert.NoError(t, err)
}

func TestEach(t *testing.T) {
	s := newTestStore(0, 0)
	a, _ := s.GetOrCreate("")
	b, _ := s.GetOrCreate("")

	seen := map[string]bool{}
	s.Each(func(id string, d *dashboard.Dashboard) {
		require.NotNil(t, d)
		seen[id] = true
	})
	assert.Equal(t, map[string]bool{a: true, b: true}, seen)
	assert.Equal(t, 0, s.Prune(), "no max age means nothing is pruned")
}
