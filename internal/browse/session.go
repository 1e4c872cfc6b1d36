package browse

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/roster/internal/logging"
	"github.com/five82/roster/internal/state"
)

// Options tunes a Session. Zero values fall back to SearchDelay and
// DefaultRequestTimeout.
type Options struct {
	SearchDelay    time.Duration
	RequestTimeout time.Duration
}

// Session binds the UI state to the debouncer and the two controllers. Every
// user event and fetch completion goes through one of its methods; methods
// that start a fetch return the blocking work to run, or nil when nothing
// needs fetching.
//
// A Session must only be used from a single goroutine.
type Session struct {
	State state.State

	debounce *Debouncer
	list     *ListController
	detail   *DetailController
	logger   zerolog.Logger
}

// NewSession returns a Session in the mount state. Fetches derive their
// contexts from ctx.
func NewSession(ctx context.Context, svc Service, opts Options) *Session {
	return &Session{
		State:    state.New(),
		debounce: NewDebouncer(opts.SearchDelay),
		list:     NewListController(ctx, svc, opts.RequestTimeout),
		detail:   NewDetailController(ctx, NewEnricher(svc), opts.RequestTimeout),
		logger:   logging.NewLogger("browse"),
	}
}

// SearchDelay returns the debounce quiet period.
func (s *Session) SearchDelay() time.Duration {
	return s.debounce.Delay()
}

// Mount fetches the first unfiltered page.
func (s *Session) Mount() func() ListResult {
	return s.Load("", 1)
}

// Load commits query and page directly, bypassing the debouncer.
func (s *Session) Load(query string, page int) func() ListResult {
	s.debounce.Cancel()
	s.State.SearchTerm = query
	s.State.Query = strings.TrimSpace(query)
	if page < 1 {
		page = 1
	}
	s.State.CurrentPage = page
	return s.list.Begin(&s.State, s.State.Query, page)
}

// OnSearchChange records text and restarts the debounce timer. The caller
// schedules OnDebounce with the returned generation after SearchDelay.
func (s *Session) OnSearchChange(text string, now time.Time) uint64 {
	s.State.SearchTerm = text
	return s.debounce.Input(text, now)
}

// OnSearchClear empties the search box. It is debounced like any other edit.
func (s *Session) OnSearchClear(now time.Time) uint64 {
	return s.OnSearchChange("", now)
}

// OnDebounce commits the pending term if gen is the latest schedule.
func (s *Session) OnDebounce(gen uint64) func() ListResult {
	term, ok := s.debounce.Fire(gen)
	if !ok {
		return nil
	}
	return s.commit(term)
}

// Tick commits the pending term once its deadline has passed. It is the
// polling alternative to OnDebounce.
func (s *Session) Tick(now time.Time) func() ListResult {
	term, ok := s.debounce.Tick(now)
	if !ok {
		return nil
	}
	return s.commit(term)
}

func (s *Session) commit(term string) func() ListResult {
	searchCommitsTotal.Inc()
	s.State.Query = strings.TrimSpace(term)
	s.State.CurrentPage = 1
	s.logger.Debug().Str("query", s.State.Query).Msg("search committed")
	return s.list.Begin(&s.State, s.State.Query, 1)
}

// OnPageChange clamps page into range and refetches with the committed
// query. It returns nil when the clamped page is already current.
func (s *Session) OnPageChange(page int) func() ListResult {
	page = state.ClampPage(page, s.State.TotalPages)
	if page == s.State.CurrentPage {
		return nil
	}
	s.State.CurrentPage = page
	return s.list.Begin(&s.State, s.State.Query, page)
}

// NextPage moves forward one page.
func (s *Session) NextPage() func() ListResult {
	return s.OnPageChange(s.State.CurrentPage + 1)
}

// PrevPage moves back one page.
func (s *Session) PrevPage() func() ListResult {
	return s.OnPageChange(s.State.CurrentPage - 1)
}

// FirstPage jumps to page 1.
func (s *Session) FirstPage() func() ListResult {
	return s.OnPageChange(1)
}

// LastPage jumps to the last known page.
func (s *Session) LastPage() func() ListResult {
	return s.OnPageChange(s.State.TotalPages)
}

// Refresh refetches the current page.
func (s *Session) Refresh() func() ListResult {
	return s.list.Begin(&s.State, s.State.Query, s.State.CurrentPage)
}

// ApplyList commits a list result. When the service reports fewer pages than
// the one requested, the last page is fetched instead.
func (s *Session) ApplyList(res ListResult) func() ListResult {
	if !s.list.Apply(&s.State, res) || res.Err != nil {
		return nil
	}
	if len(res.Page.Results) == 0 && res.Page.Total > 0 && res.Request.Page > s.State.TotalPages {
		s.logger.Debug().
			Int("requested", res.Request.Page).
			Int("total_pages", s.State.TotalPages).
			Msg("page past end, loading last page")
		return s.list.Begin(&s.State, s.State.Query, s.State.CurrentPage)
	}
	return nil
}

// OnItemClick starts enriching the character at index on the current page.
func (s *Session) OnItemClick(index int) func() DetailResult {
	if index < 0 || index >= len(s.State.Characters) {
		return nil
	}
	s.State.Cursor = index
	return s.detail.Open(&s.State, s.State.Characters[index], index)
}

// OpenHighlighted enriches the character under the cursor.
func (s *Session) OpenHighlighted() func() DetailResult {
	return s.OnItemClick(s.State.Cursor)
}

// ApplyDetail commits an enrichment result.
func (s *Session) ApplyDetail(res DetailResult) bool {
	return s.detail.Apply(&s.State, res)
}

// OnModalClose hides the detail modal.
func (s *Session) OnModalClose() {
	s.detail.Close(&s.State)
}

// Close abandons every outstanding fetch and pending search.
func (s *Session) Close() {
	s.debounce.Cancel()
	s.list.Close()
	s.detail.Shutdown()
}
