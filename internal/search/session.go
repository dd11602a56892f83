// Package search owns the incremental-search pipeline: debounced, cancellable
// remote fetches whose pages accumulate into one observable result list.
package search

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/readmio/bookshelf-service/internal/errs"
	"github.com/readmio/bookshelf-service/internal/gateway"
	"github.com/readmio/bookshelf-service/internal/model"
	"github.com/readmio/bookshelf-service/internal/state"
	"github.com/readmio/bookshelf-service/pkg/netcheck"
)

const DefaultDebounce = 2 * time.Second

// HistoryRecorder persists successful queries to the recent-search list.
type HistoryRecorder interface {
	AppendSearchHistory(ctx context.Context, query string) error
}

type Option func(*Session)

func WithDebounce(d time.Duration) Option {
	return func(s *Session) { s.debounce = d }
}

// Session converts a stream of queries into a sequence of remote fetches
// merged into one growing result list. Each Search/SearchNow call supersedes
// the previous one: the superseded call is cancelled and never writes to the
// state container (last call wins). LoadMore is deduplicated by an in-flight
// guard rather than cancellation.
type Session struct {
	log      *zap.Logger
	gw       gateway.Gateway
	net      netcheck.Checker
	history  HistoryRecorder
	debounce time.Duration

	container *state.Container[[]model.BookSummary]

	mu       sync.Mutex
	gen      uint64
	ctx      context.Context
	cancel   context.CancelFunc
	query    string
	filters  gateway.Filters
	offset   int
	total    int
	results  []model.BookSummary
	inFlight bool
	pending  bool
}

func NewSession(gw gateway.Gateway, net netcheck.Checker, history HistoryRecorder, log *zap.Logger, opts ...Option) *Session {
	s := &Session{
		log:       log.Named("search"),
		gw:        gw,
		net:       net,
		history:   history,
		debounce:  DefaultDebounce,
		container: state.NewContainer[[]model.BookSummary](),
	}
	for _, op := range opts {
		op(s)
	}
	return s
}

// State exposes the observable result container.
func (s *Session) State() *state.Container[[]model.BookSummary] { return s.container }

// Search schedules a debounced fetch for query, superseding any prior call.
// An empty query resets the session to Idle without fetching.
func (s *Session) Search(query string, f gateway.Filters) {
	s.start(query, f, true)
}

// SearchNow is Search without the debounce, for explicit submits. Pending
// debounce timers from earlier calls are cancelled.
func (s *Session) SearchNow(query string, f gateway.Filters) {
	s.start(query, f, false)
}

func (s *Session) start(query string, f gateway.Filters, debounce bool) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	gen := s.gen
	s.query = query
	s.filters = f
	s.offset = 0
	s.total = 0
	s.results = nil
	s.inFlight = false

	if query == "" {
		s.pending = false
		s.mu.Unlock()
		s.container.Set(state.Idle[[]model.BookSummary]())
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.ctx = ctx
	s.cancel = cancel
	s.pending = true
	s.mu.Unlock()

	// intent is visible immediately, before the debounce gate
	s.container.Set(state.Loading[[]model.BookSummary]())

	go func() {
		if debounce {
			t := time.NewTimer(s.debounce)
			defer t.Stop()
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}
		}
		s.fetch(ctx, gen, query, f, 0, true)
	}()
}

// LoadMore fetches the next page under the current query and filters. It is a
// no-op while another fetch is pending or in flight, and after Clear.
func (s *Session) LoadMore() {
	s.mu.Lock()
	if s.query == "" || s.cancel == nil || s.inFlight || s.pending {
		s.mu.Unlock()
		return
	}
	gen := s.gen
	ctx := s.ctx
	query, f, offset := s.query, s.filters, s.offset
	s.pending = true
	s.mu.Unlock()

	s.container.Set(state.Loading[[]model.BookSummary]())
	go s.fetch(ctx, gen, query, f, offset, false)
}

// Clear cancels any outstanding work and resets the session to Idle.
func (s *Session) Clear() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	s.query = ""
	s.filters = gateway.Filters{}
	s.offset = 0
	s.total = 0
	s.results = nil
	s.inFlight = false
	s.pending = false
	s.mu.Unlock()
	s.container.Set(state.Idle[[]model.BookSummary]())
}

func (s *Session) fetch(ctx context.Context, gen uint64, query string, f gateway.Filters, offset int, fresh bool) {
	if !s.net.Online(ctx) {
		s.commit(gen, func() {
			s.container.Set(state.Fail[[]model.BookSummary](errs.ErrNoNetwork.Error()))
		})
		return
	}

	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.inFlight = true
	s.mu.Unlock()

	page, err := s.gw.Search(ctx, query, f, offset)

	if err != nil {
		s.log.Debug("fetch failed", zap.String("query", query), zap.Int("offset", offset), zap.Error(err))
		s.commit(gen, func() {
			s.container.Set(state.Fail[[]model.BookSummary](err.Error()))
		})
		return
	}

	committed := s.commit(gen, func() {
		s.results = append(s.results, page.Items...)
		s.offset += len(page.Items)
		s.total = page.TotalItems
		snapshot := make([]model.BookSummary, len(s.results))
		copy(snapshot, s.results)
		s.container.Set(state.Success(snapshot))
	})

	if committed && fresh && s.history != nil {
		// history keeps its own lifetime; the session ctx may be cancelled
		// by the next keystroke without invalidating the record
		if err := s.history.AppendSearchHistory(context.Background(), query); err != nil {
			s.log.Error("append search history", zap.String("query", query), zap.Error(err))
		}
	}
}

// commit runs fn only if this operation has not been superseded. A cancelled
// branch falls through without touching session state or the container.
func (s *Session) commit(gen uint64, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.inFlight = false
	s.pending = false
	fn()
	return true
}

// Offset reports the next start index the session would request.
func (s *Session) Offset() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offset
}

// TotalItems reports the remote total-count hint from the last page.
func (s *Session) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}
