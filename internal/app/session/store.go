package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"speaker-scribe/internal/app/metrics"
)

const (
	// DefaultTTL is how long an untouched session is kept.
	DefaultTTL = time.Hour

	minJanitorInterval = time.Second
)

// Config holds session store settings
type Config struct {
	TTL time.Duration
}

// Store keeps sessions in memory, keyed by UUID.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	client  Client
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewStore creates an empty session store
func NewStore(client Client, config Config, m *metrics.Metrics, logger *zap.Logger) *Store {
	if config.TTL <= 0 {
		config.TTL = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		sessions: make(map[string]*Session),
		client:   client,
		ttl:      config.TTL,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
	}
}

// Create starts a new idle session
func (st *Store) Create() *Session {
	s := newSession(uuid.New().String(), st.client, st.metrics, st.logger, st.now)

	st.mu.Lock()
	st.sessions[s.ID] = s
	n := len(st.sessions)
	st.mu.Unlock()

	st.metrics.SetActiveSessions(n)
	return s
}

// Get returns the session with the given id
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// GetOrCreate returns the session for id, creating a new one when id is
// unknown or malformed. created reports whether a new session was made.
func (st *Store) GetOrCreate(id string) (s *Session, created bool) {
	if _, err := uuid.Parse(id); err == nil {
		if s, ok := st.Get(id); ok {
			return s, false
		}
	}
	return st.Create(), true
}

// Delete removes a session, reporting whether it existed
func (st *Store) Delete(id string) bool {
	st.mu.Lock()
	_, ok := st.sessions[id]
	delete(st.sessions, id)
	n := len(st.sessions)
	st.mu.Unlock()

	st.metrics.SetActiveSessions(n)
	return ok
}

// Len returns the number of sessions held
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Evict drops sessions idle for longer than the TTL. Loading sessions are kept.
func (st *Store) Evict() int {
	now := st.now()

	st.mu.Lock()
	evicted := 0
	for id, s := range st.sessions {
		if s.expired(now, st.ttl) {
			delete(st.sessions, id)
			evicted++
		}
	}
	n := len(st.sessions)
	st.mu.Unlock()

	st.metrics.SetActiveSessions(n)
	if evicted > 0 {
		st.logger.Info("evicted idle sessions", zap.Int("evicted", evicted), zap.Int("remaining", n))
	}
	return evicted
}

// Run evicts expired sessions periodically until ctx is done.
func (st *Store) Run(ctx context.Context) error {
	interval := st.ttl / 4
	if interval < minJanitorInterval {
		interval = minJanitorInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			st.Evict()
		}
	}
}
