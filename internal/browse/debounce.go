package browse

import "time"

// SearchDelay is how long the search term must stay unchanged before it is
// committed.
const SearchDelay = 500 * time.Millisecond

// Debouncer is a trailing debounce for search input. It is either idle or
// pending with a term and a deadline; every Input restarts the deadline.
//
// Each Input bumps a generation counter. A timer that fires with an older
// generation is stale and emits nothing, which is how keystrokes cancel
// earlier timers without tracking them.
type Debouncer struct {
	delay    time.Duration
	gen      uint64
	pending  bool
	term     string
	deadline time.Time
}

// NewDebouncer returns an idle debouncer. A non-positive delay uses SearchDelay.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = SearchDelay
	}
	return &Debouncer{delay: delay}
}

// Delay returns the quiet period.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Input records a new term and schedules it for now+delay, replacing any
// pending term. The returned generation identifies this schedule.
func (d *Debouncer) Input(term string, now time.Time) uint64 {
	d.gen++
	d.pending = true
	d.term = term
	d.deadline = now.Add(d.delay)
	return d.gen
}

// Tick emits the pending term once its deadline has passed.
func (d *Debouncer) Tick(now time.Time) (string, bool) {
	if !d.pending || now.Before(d.deadline) {
		return "", false
	}
	return d.emit()
}

// Fire emits the pending term if gen is the latest schedule. Timers started
// by earlier inputs are ignored.
func (d *Debouncer) Fire(gen uint64) (string, bool) {
	if !d.pending || gen != d.gen {
		return "", false
	}
	return d.emit()
}

// Pending reports whether a term is waiting to be committed.
func (d *Debouncer) Pending() bool {
	return d.pending
}

// Cancel drops the pending term and invalidates outstanding timers.
func (d *Debouncer) Cancel() {
	d.gen++
	d.pending = false
	d.term = ""
}

func (d *Debouncer) emit() (string, bool) {
	term := d.term
	d.pending = false
	d.term = ""
	return term, true
}
