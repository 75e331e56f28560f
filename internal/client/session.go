// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package client

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/shelfscope/internal/logger"
	"github.com/pdiddy/shelfscope/pkg/types"
)

// Session defaults.
const (
	DefaultDebounce = 2 * time.Second
	DefaultPageSize = 10
)

// DefaultPageSizes are the page sizes a session offers when none are
// configured.
var DefaultPageSizes = []int{5, 10, 20}

// Status is the state of the session's current fetch.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// State is a point-in-time copy of a session.
type State struct {
	Query          string
	DebouncedQuery string
	Page           int
	PageSize       int
	PageSizes      []int
	Status         Status
	Result         *types.SearchResult
	Err            error
}

// StartIndex is the offset of the first entry on the current page.
func (s State) StartIndex() int { return s.Page * s.PageSize }

// CanPrev reports whether there is a page before the current one.
func (s State) CanPrev() bool { return s.Page > 0 }

// CanNext reports whether another page may follow. A page shorter than the
// page size is taken as the last one; the reported total is not consulted.
func (s State) CanNext() bool {
	return s.Status == StatusReady && s.Result != nil && len(s.Result.Books) >= s.PageSize
}

// Searcher fetches one page of results. *API satisfies it.
type Searcher interface {
	Search(ctx context.Context, req types.SearchRequest) (*types.SearchResult, error)
}

// Options configure a Session. Zero values select the defaults.
type Options struct {
	Debounce  time.Duration
	PageSize  int
	PageSizes []int
}

// Session tracks a query, its debounced copy and the page being viewed, and
// keeps exactly one fetch current. A response is applied only if no newer
// fetch has started since it was issued.
type Session struct {
	ctx       context.Context
	api       Searcher
	debouncer *Debouncer

	mu       sync.Mutex
	state    State
	token    uint64
	cancel   context.CancelFunc
	lastReq  types.SearchRequest
	onChange func(State)
}

// NewSession returns an idle session that fetches through api. Fetches run
// under ctx.
func NewSession(ctx context.Context, api Searcher, opts Options) (*Session, error) {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if len(opts.PageSizes) == 0 {
		opts.PageSizes = DefaultPageSizes
	}
	if opts.PageSize == 0 {
		opts.PageSize = DefaultPageSize
	}
	if !slices.Contains(opts.PageSizes, opts.PageSize) {
		return nil, fmt.Errorf("page size %d is not one of %v", opts.PageSize, opts.PageSizes)
	}

	s := &Session{
		ctx: ctx,
		api: api,
		state: State{
			PageSize:  opts.PageSize,
			PageSizes: slices.Clone(opts.PageSizes),
			Status:    StatusIdle,
		},
	}
	s.debouncer = NewDebouncer(opts.Debounce, s.settle)
	return s, nil
}

// OnChange registers fn to receive every state change. fn is called without
// the session lock held and may call Snapshot.
func (s *Session) OnChange(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Snapshot returns the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// SetQuery updates the query and restarts the debounce delay.
func (s *Session) SetQuery(q string) {
	s.mu.Lock()
	s.state.Query = q
	st := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(st)
	s.debouncer.Trigger(q)
}

// Submit returns to the first page and applies the query without waiting
// for the debounce delay.
func (s *Session) Submit() {
	s.mu.Lock()
	s.state.Page = 0
	q := s.state.Query
	s.mu.Unlock()

	s.debouncer.Trigger(q)
	s.debouncer.Flush()
}

// Prev moves to the previous page, stopping at the first. It reports
// whether the page changed.
func (s *Session) Prev() bool {
	s.mu.Lock()
	if s.state.Page == 0 {
		s.mu.Unlock()
		return false
	}
	s.state.Page--
	st := s.fetchLocked()
	s.mu.Unlock()

	s.publish(st)
	return true
}

// Next moves to the following page when CanNext allows it. It reports
// whether the page changed.
func (s *Session) Next() bool {
	s.mu.Lock()
	if !s.state.CanNext() {
		s.mu.Unlock()
		return false
	}
	s.state.Page++
	st := s.fetchLocked()
	s.mu.Unlock()

	s.publish(st)
	return true
}

// CanPrev reports whether Prev would change the page.
func (s *Session) CanPrev() bool { return s.Snapshot().CanPrev() }

// CanNext reports whether Next would change the page.
func (s *Session) CanNext() bool { return s.Snapshot().CanNext() }

// SetPageSize switches to one of the configured page sizes and fetches the
// current page again with it. The page index is kept.
func (s *Session) SetPageSize(n int) error {
	s.mu.Lock()
	if !slices.Contains(s.state.PageSizes, n) {
		sizes := slices.Clone(s.state.PageSizes)
		s.mu.Unlock()
		return fmt.Errorf("page size %d is not one of %v", n, sizes)
	}
	if n == s.state.PageSize {
		s.mu.Unlock()
		return nil
	}
	s.state.PageSize = n
	st := s.fetchLocked()
	s.mu.Unlock()

	s.publish(st)
	return nil
}

// Close drops the pending query and abandons the fetch in flight.
func (s *Session) Close() {
	s.debouncer.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// settle receives the debounced query. A new value returns to the first
// page. Nothing is fetched when the request would repeat the current one,
// unless that one failed.
func (s *Session) settle(q string) {
	s.mu.Lock()
	if q != s.state.DebouncedQuery {
		s.state.DebouncedQuery = q
		s.state.Page = 0
	}
	if s.currentRequestLocked() == s.lastReq && s.state.Status != StatusFailed && s.state.Status != StatusIdle {
		s.mu.Unlock()
		return
	}
	st := s.fetchLocked()
	s.mu.Unlock()

	s.publish(st)
}

func (s *Session) currentRequestLocked() types.SearchRequest {
	return types.SearchRequest{
		Query:      s.state.DebouncedQuery,
		StartIndex: s.state.StartIndex(),
		MaxResults: s.state.PageSize,
	}
}

// fetchLocked supersedes any fetch in flight and starts one for the current
// key. An empty debounced query returns the session to idle instead.
func (s *Session) fetchLocked() State {
	s.token++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	if s.state.DebouncedQuery == "" {
		s.lastReq = types.SearchRequest{}
		s.state.Status = StatusIdle
		s.state.Result = nil
		s.state.Err = nil
		return s.snapshotLocked()
	}

	req := s.currentRequestLocked()
	ctx, cancel := context.WithCancel(s.ctx)
	s.cancel = cancel
	s.lastReq = req
	s.state.Status = StatusLoading
	s.state.Err = nil

	go s.run(ctx, cancel, s.token, req)
	return s.snapshotLocked()
}

func (s *Session) run(ctx context.Context, cancel context.CancelFunc, token uint64, req types.SearchRequest) {
	defer cancel()

	result, err := s.api.Search(ctx, req)

	s.mu.Lock()
	if token != s.token {
		s.mu.Unlock()
		logger.For(ctx).WithField("query", req.Query).Debug("dropping superseded response")
		return
	}
	s.cancel = nil
	if err != nil {
		s.state.Status = StatusFailed
		s.state.Result = nil
		s.state.Err = err
		logger.For(ctx).WithError(err).WithFields(logrus.Fields{
			"query":      req.Query,
			"startIndex": req.StartIndex,
		}).Warn("search failed")
	} else {
		s.state.Status = StatusReady
		s.state.Result = result
		s.state.Err = nil
	}
	st := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(st)
}

func (s *Session) snapshotLocked() State {
	st := s.state
	st.PageSizes = slices.Clone(s.state.PageSizes)
	return st
}

func (s *Session) publish(st State) {
	s.mu.Lock()
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn(st)
	}
}
