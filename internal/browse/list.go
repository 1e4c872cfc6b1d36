package browse

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/five82/roster/internal/catalog"
	"github.com/five82/roster/internal/logging"
	"github.com/five82/roster/internal/state"
)

// DefaultRequestTimeout bounds a single list fetch or enrichment.
const DefaultRequestTimeout = 10 * time.Second

// ListRequest identifies one list fetch.
type ListRequest struct {
	Seq   uint64
	ID    string
	Query string
	Page  int
}

// ListResult is the outcome of a list fetch, delivered back to the event loop.
type ListResult struct {
	Request  ListRequest
	Page     catalog.Page
	Err      error
	Duration time.Duration
}

// ListController owns the list fetch lifecycle. Only the most recently begun
// request may be applied; older responses are dropped on arrival.
//
// ListController is not safe for concurrent use. Begin and Apply run on the
// event loop; only the returned work function runs elsewhere.
type ListController struct {
	parent  context.Context
	lister  CharacterLister
	timeout time.Duration
	logger  zerolog.Logger

	seq    uint64
	cancel context.CancelFunc
}

// NewListController binds a lister to ctx. Cancelling ctx aborts every
// outstanding fetch.
func NewListController(ctx context.Context, lister CharacterLister, timeout time.Duration) *ListController {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &ListController{
		parent:  ctx,
		lister:  lister,
		timeout: timeout,
		logger:  logging.NewLogger("browse"),
	}
}

// Begin supersedes any outstanding fetch and marks st as loading. The returned
// function performs the request and blocks until it completes or times out.
func (c *ListController) Begin(st *state.State, query string, page int) func() ListResult {
	if c.cancel != nil {
		c.cancel()
	}
	if page < 1 {
		page = 1
	}
	c.seq++
	req := ListRequest{
		Seq:   c.seq,
		ID:    uuid.NewString(),
		Query: query,
		Page:  page,
	}
	ctx, cancel := context.WithTimeout(c.parent, c.timeout)
	c.cancel = cancel
	st.Loading = true

	c.logger.Debug().
		Str("request_id", req.ID).
		Str("query", query).
		Int("page", page).
		Msg("list fetch started")

	lister := c.lister
	return func() ListResult {
		defer cancel()
		start := time.Now()
		result, err := lister.FetchCharacters(ctx, req.Query, req.Page)
		return ListResult{Request: req, Page: result, Err: err, Duration: time.Since(start)}
	}
}

// Latest returns the sequence number of the most recent request.
func (c *ListController) Latest() uint64 {
	return c.seq
}

// Apply commits res to st if it answers the latest request and reports
// whether it did. Failures leave an empty single-page list and never a
// lingering loading flag.
func (c *ListController) Apply(st *state.State, res ListResult) bool {
	if res.Request.Seq != c.seq {
		staleResponsesTotal.WithLabelValues("list").Inc()
		c.logger.Debug().
			Str("request_id", res.Request.ID).
			Uint64("seq", res.Request.Seq).
			Uint64("latest", c.seq).
			Msg("dropping stale list response")
		return false
	}
	c.cancel = nil
	st.Loading = false

	if res.Err != nil {
		listFetchesTotal.WithLabelValues("error").Inc()
		event := c.logger.Error()
		if errors.Is(res.Err, context.DeadlineExceeded) {
			event = c.logger.Warn()
		}
		event.Err(res.Err).
			Str("request_id", res.Request.ID).
			Str("query", res.Request.Query).
			Int("page", res.Request.Page).
			Dur("duration", res.Duration).
			Msg("list fetch failed")
		st.Characters = []catalog.Character{}
		st.Total = 0
		st.TotalPages = 1
		st.CurrentPage = state.ClampPage(st.CurrentPage, st.TotalPages)
		st.Cursor = 0
		st.LoadErr = res.Err
		return true
	}

	listFetchesTotal.WithLabelValues("ok").Inc()
	results := res.Page.Results
	if results == nil {
		results = []catalog.Character{}
	}
	st.Characters = results
	st.Total = res.Page.Total
	st.TotalPages = state.PageCount(res.Page.Total)
	st.CurrentPage = state.ClampPage(st.CurrentPage, st.TotalPages)
	st.Cursor = 0
	st.LoadErr = nil
	st.LoadedAt = time.Now()

	c.logger.Info().
		Str("request_id", res.Request.ID).
		Str("query", res.Request.Query).
		Int("page", res.Request.Page).
		Int("results", len(results)).
		Int("total", res.Page.Total).
		Dur("duration", res.Duration).
		Msg("list fetch complete")
	return true
}

// Close cancels the outstanding fetch. Responses that arrive afterwards are
// treated as stale.
func (c *ListController) Close() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.seq++
}
