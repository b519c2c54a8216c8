package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/weather-dashboard/internal/dashboard"
)

var (
	// ErrNotFound is returned when no dashboard exists for a session id.
	ErrNotFound = errors.New("no dashboard for session")
)

type session struct {
	dash     *dashboard.Dashboard
	lastSeen time.Time
}

// SessionStore is a concurrency-safe in-memory map of browser sessions to
// their dashboards. It only holds live view state.
type SessionStore struct {
	mu sync.RWMutex

	// key: session id
	data map[string]*session

	newDashboard func() *dashboard.Dashboard

	// retention configuration
	maxSessions int           // max number of live sessions
	maxAge      time.Duration // sessions idle longer than this are pruned

	now func() time.Time
}

// NewSessionStore creates a store that builds dashboards with factory.
// If maxSessions or maxAge is <= 0, it is treated as unlimited.
func NewSessionStore(factory func() *dashboard.Dashboard, maxSessions int, maxAge time.Duration) *SessionStore {
	return &SessionStore{
		data:         make(map[string]*session),
		newDashboard: factory,
		maxSessions:  maxSessions,
		maxAge:       maxAge,
		now:          time.Now,
	}
}

// GetOrCreate returns the dashboard for id, creating one when id is unknown.
// Ids that are not UUIDs are replaced with a fresh one. The returned id is
// the one the caller should hand back to the browser.
func (s *SessionStore) GetOrCreate(id string) (string, *dashboard.Dashboard) {
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if sess, ok := s.data[id]; ok {
		sess.lastSeen = now
		return id, sess.dash
	}

	s.evictOldestLocked()
	sess := &session{dash: s.newDashboard(), lastSeen: now}
	s.data[id] = sess
	return id, sess.dash
}

// Get returns the dashboard for id.
func (s *SessionStore) Get(id string) (*dashboard.Dashboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.data[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess.dash, nil
}

// Each calls fn for every live dashboard. fn must not call back into the store.
func (s *SessionStore) Each(fn func(id string, d *dashboard.Dashboard)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id, sess := range s.data {
		fn(id, sess.dash)
	}
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Prune drops sessions idle for longer than maxAge and returns how many
// were removed.
func (s *SessionStore) Prune() int {
	if s.maxAge <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.maxAge)
	removed := 0
	for id, sess := range s.data {
		if sess.lastSeen.Before(cutoff) {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}

// evictOldestLocked makes room for one more session.
func (s *SessionStore) evictOldestLocked() {
	if s.maxSessions <= 0 || len(s.data) < s.maxSessions {
		return
	}

	var (
		oldestID string
		oldest   time.Time
	)
	for id, sess := range s.data {
		if oldestID == "" || sess.lastSeen.Before(oldest) {
			oldestID = id
			oldest = sess.lastSeen
		}
	}
	delete(s.data, oldestID)
}
