package explorer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/FACorreiaa/go-viberoute/app/observability/metrics"
	"github.com/FACorreiaa/go-viberoute/internal/api/guide"
	"github.com/FACorreiaa/go-viberoute/internal/types"
)

var (
	ErrSessionNotFound = errors.New("explorer session not found")
	ErrBusy            = errors.New("explorer session is still loading")
	ErrUnknownTab      = errors.New("unknown tab")
)

// Dispatcher runs the model query behind a tab. guide.Service satisfies it.
type Dispatcher interface {
	Dispatch(ctx context.Context, tab types.Tab, q types.GuideQuery) (*types.QueryResult, error)
}

// Session is one client's walk through the guide: explore, then the category
// menu for a city, then a detail tab. At most one fetch is in flight per
// session; completions carrying an older generation are dropped.
type Session struct {
	ID uuid.UUID

	guide   Dispatcher
	timeout time.Duration
	logger  *slog.Logger

	mu         sync.Mutex
	tab        types.Tab
	city       string
	hours      int
	loading    bool
	result     *types.QueryResult
	sources    []types.SourceCitation
	errMsg     string
	generation uint64
	cancel     context.CancelFunc
	done       chan struct{}
	lastSeen   time.Time
	closed     bool
}

func newSession(guide Dispatcher, timeout time.Duration, logger *slog.Logger, now time.Time) *Session {
	id := uuid.New()
	return &Session{
		ID:       id,
		guide:    guide,
		timeout:  timeout,
		logger:   logger.With(slog.String("session_id", id.String())),
		tab:      types.TabExplore,
		hours:    types.DefaultDurationHours,
		sources:  []types.SourceCitation{},
		lastSeen: now,
	}
}

// SubmitCity opens the category menu for city.
func (s *Session) SubmitCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return types.ErrCityRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writable(); err != nil {
		return err
	}
	s.city = city
	s.tab = types.TabMenu
	s.clearResult()
	return nil
}

// SetHours changes the itinerary duration used by the next itinerary fetch.
func (s *Session) SetHours(hours int) error {
	if hours <= 0 {
		return types.ErrInvalidHours
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writable(); err != nil {
		return err
	}
	s.hours = hours
	return nil
}

// SelectCategory moves the session to tab. Detail tabs start a background
// fetch; use Wait to block until it settles.
func (s *Session) SelectCategory(ctx context.Context, tab types.Tab) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writable(); err != nil {
		return err
	}

	switch {
	case tab == types.TabExplore:
		s.tab = types.TabExplore
		s.clearResult()
		return nil
	case tab == types.TabMenu:
		if s.city == "" {
			return types.ErrCityRequired
		}
		s.tab = types.TabMenu
		s.clearResult()
		return nil
	case !guide.IsDetailTab(tab):
		return fmt.Errorf("%w: %q", ErrUnknownTab, tab)
	case s.city == "":
		return types.ErrCityRequired
	}

	s.tab = tab
	s.clearResult()
	s.loading = true
	s.generation++

	fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	s.cancel = cancel
	done := make(chan struct{})
	s.done = done

	q := types.GuideQuery{City: s.city, DurationHours: s.hours}
	s.logger.InfoContext(ctx, "Fetching tab", slog.String("tab", string(tab)),
		slog.String("city", s.city), slog.Uint64("generation", s.generation))
	go s.fetch(fetchCtx, cancel, done, s.generation, tab, q)
	return nil
}

// Back returns from a detail tab to the menu and from the menu to explore.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writable(); err != nil {
		return err
	}
	switch s.tab {
	case types.TabExplore:
	case types.TabMenu:
		s.tab = types.TabExplore
	default:
		s.tab = types.TabMenu
	}
	s.clearResult()
	return nil
}

// Wait blocks until the current fetch, if any, has settled.
func (s *Session) Wait(ctx context.Context) error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// View returns a snapshot of the session.
func (s *Session) View() types.ExplorerView {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := types.ExplorerView{
		SessionID:  s.ID,
		Tab:        s.tab,
		City:       s.city,
		Hours:      s.hours,
		Loading:    s.loading,
		Result:     s.result,
		Sources:    slices.Clone(s.sources),
		Error:      s.errMsg,
		Generation: s.generation,
	}
	if v.Sources == nil {
		v.Sources = []types.SourceCitation{}
	}
	if s.loading {
		v.LoadingMessage = fmt.Sprintf("Consultando i locali a %s...", s.city)
	}
	if s.tab == types.TabExplore {
		v.Suggestions = guide.CitySuggestions
	}
	return v
}

// Close cancels an in-flight fetch. Its completion is dropped as stale.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.generation++
	s.loading = false
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// writable reports whether the session accepts changes. Callers hold s.mu.
func (s *Session) writable() error {
	switch {
	case s.closed:
		return ErrSessionNotFound
	case s.loading:
		return ErrBusy
	}
	return nil
}

func (s *Session) fetch(ctx context.Context, cancel context.CancelFunc, done chan struct{}, gen uint64, tab types.Tab, q types.GuideQuery) {
	defer close(done)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			s.complete(ctx, gen, nil, fmt.Errorf("fetch panicked: %v", r))
		}
	}()

	res, err := s.guide.Dispatch(ctx, tab, q)
	s.complete(ctx, gen, res, err)
}

func (s *Session) complete(ctx context.Context, gen uint64, res *types.QueryResult, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.DebugContext(ctx, "Dropping stale response",
			slog.Uint64("generation", gen), slog.Uint64("current", s.generation))
		metrics.Get().ExplorerStaleResponses.Add(context.WithoutCancel(ctx), 1,
			metric.WithAttributes(attribute.String("tab", string(s.tab))))
		return
	}

	s.loading = false
	s.cancel = nil
	if err != nil {
		s.logger.WarnContext(ctx, "Tab fetch failed", slog.String("tab", string(s.tab)), slog.Any("error", err))
		s.result = nil
		s.sources = []types.SourceCitation{}
		s.errMsg = err.Error()
		return
	}
	s.result = res
	if res != nil && res.Sources != nil {
		s.sources = res.Sources
	}
}

// clearResult must be called with mu held.
func (s *Session) clearResult() {
	s.result = nil
	s.sources = []types.SourceCitation{}
	s.errMsg = ""
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return 0
	}
	return now.Sub(s.lastSeen)
}
