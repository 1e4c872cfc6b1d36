package browse

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/five82/roster/internal/catalog"
	"github.com/five82/roster/internal/logging"
	"github.com/five82/roster/internal/state"
)

// DetailRequest identifies one enrichment.
type DetailRequest struct {
	Seq   uint64
	ID    string
	Index int
	Name  string
}

// DetailResult is the outcome of an enrichment.
type DetailResult struct {
	Request  DetailRequest
	Detail   state.Detail
	Err      error
	Duration time.Duration
}

// DetailController opens and closes the detail modal. The modal opens only
// when the latest enrichment succeeds; closing it discards any enrichment
// still in flight.
type DetailController struct {
	parent   context.Context
	enricher *Enricher
	timeout  time.Duration
	logger   zerolog.Logger

	seq    uint64
	cancel context.CancelFunc
}

// NewDetailController binds an Enricher to ctx.
func NewDetailController(ctx context.Context, enricher *Enricher, timeout time.Duration) *DetailController {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &DetailController{
		parent:   ctx,
		enricher: enricher,
		timeout:  timeout,
		logger:   logging.NewLogger("browse"),
	}
}

// Open starts enriching summary, superseding any enrichment in flight.
func (c *DetailController) Open(st *state.State, summary catalog.Character, index int) func() DetailResult {
	c.stop()
	c.seq++
	req := DetailRequest{
		Seq:   c.seq,
		ID:    uuid.NewString(),
		Index: index,
		Name:  summary.Name,
	}
	ctx, cancel := context.WithTimeout(c.parent, c.timeout)
	c.cancel = cancel
	st.Enriching = true
	st.DetailErr = nil

	c.logger.Debug().
		Str("request_id", req.ID).
		Str("character", summary.Name).
		Int("films", len(summary.Films)).
		Msg("enrichment started")

	enricher := c.enricher
	return func() DetailResult {
		defer cancel()
		start := time.Now()
		detail, err := enricher.Enrich(ctx, summary)
		return DetailResult{Request: req, Detail: detail, Err: err, Duration: time.Since(start)}
	}
}

// Apply opens the modal with res if it answers the latest open and reports
// whether res was current.
func (c *DetailController) Apply(st *state.State, res DetailResult) bool {
	if res.Request.Seq != c.seq {
		staleResponsesTotal.WithLabelValues("detail").Inc()
		c.logger.Debug().
			Str("request_id", res.Request.ID).
			Uint64("seq", res.Request.Seq).
			Uint64("latest", c.seq).
			Msg("dropping stale enrichment")
		return false
	}
	c.cancel = nil
	st.Enriching = false

	if res.Err != nil {
		c.logger.Error().
			Err(res.Err).
			Str("request_id", res.Request.ID).
			Str("character", res.Request.Name).
			Dur("duration", res.Duration).
			Msg("enrichment failed")
		st.DetailErr = res.Err
		return true
	}

	detail := res.Detail
	st.Selected = &detail
	st.DetailErr = nil
	c.logger.Info().
		Str("request_id", res.Request.ID).
		Str("character", res.Request.Name).
		Dur("duration", res.Duration).
		Msg("enrichment complete")
	return true
}

// Close hides the modal and abandons any enrichment in flight.
func (c *DetailController) Close(st *state.State) {
	c.Shutdown()
	st.Selected = nil
	st.Enriching = false
}

// Shutdown cancels in-flight work without touching state.
func (c *DetailController) Shutdown() {
	c.stop()
	c.seq++
}

func (c *DetailController) stop() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
