package explorer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/FACorreiaa/go-viberoute/app/observability/metrics"
)

const (
	defaultFetchTimeout = 60 * time.Second
	defaultSessionTTL   = 2 * time.Hour
)

type Options struct {
	// FetchTimeout bounds each background fetch.
	FetchTimeout time.Duration
	// SessionTTL is how long an idle session survives before Sweep drops it.
	SessionTTL time.Duration
}

// Store keeps explorer sessions in memory for the life of the process.
type Store struct {
	guide  Dispatcher
	opts   Options
	logger *slog.Logger
	now    func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewStore(guide Dispatcher, opts Options, logger *slog.Logger) *Store {
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = defaultFetchTimeout
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = defaultSessionTTL
	}
	return &Store{
		guide:    guide,
		opts:     opts,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*Session),
	}
}

func (st *Store) Create(ctx context.Context) *Session {
	s := newSession(st.guide, st.opts.FetchTimeout, st.logger, st.now())

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	metrics.Get().ExplorerSessionsActive.Add(ctx, 1)
	st.logger.DebugContext(ctx, "Explorer session created", slog.String("session_id", s.ID.String()))
	return s
}

// Get returns the session and marks it as recently used.
func (st *Store) Get(id uuid.UUID) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.touch(st.now())
	return s, nil
}

func (st *Store) Delete(ctx context.Context, id uuid.UUID) error {
	st.mu.Lock()
	s, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	s.Close()
	metrics.Get().ExplorerSessionsActive.Add(ctx, -1)
	return nil
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep drops sessions idle for longer than the TTL and reports how many
// were removed. Sessions with a fetch in flight are never idle.
func (st *Store) Sweep(ctx context.Context) int {
	now := st.now()
	var expired []*Session

	st.mu.Lock()
	for id, s := range st.sessions {
		if s.idleSince(now) > st.opts.SessionTTL {
			expired = append(expired, s)
			delete(st.sessions, id)
		}
	}
	st.mu.Unlock()

	for _, s := range expired {
		s.Close()
	}
	if n := len(expired); n > 0 {
		metrics.Get().ExplorerSessionsActive.Add(ctx, -int64(n))
		st.logger.InfoContext(ctx, "Expired idle explorer sessions", slog.Int("count", n))
	}
	return len(expired)
}

// Run sweeps idle sessions until ctx is cancelled.
func (st *Store) Run(ctx context.Context) error {
	ticker := time.NewTicker(st.opts.SessionTTL / 4)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			st.Sweep(ctx)
		}
	}
}
