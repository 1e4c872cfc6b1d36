package browse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_RapidInputEmitsLastTermOnce(t *testing.T) {
	d := NewDebouncer(SearchDelay)
	t0 := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	terms := []string{"L", "Lu", "Luk", "Luke"}
	var gens []uint64
	for i, term := range terms {
		now := t0.Add(time.Duration(i) * 100 * time.Millisecond)
		gens = append(gens, d.Input(term, now))

		_, ok := d.Tick(now.Add(SearchDelay - time.Millisecond))
		if i < len(terms)-1 {
			assert.False(t, ok, "no emission while typing continues")
		}
	}

	last := t0.Add(300 * time.Millisecond)
	_, ok := d.Tick(last.Add(SearchDelay - time.Millisecond))
	assert.False(t, ok)

	term, ok := d.Tick(last.Add(SearchDelay))
	require.True(t, ok)
	assert.Equal(t, "Luke", term)

	_, ok = d.Tick(last.Add(2 * SearchDelay))
	assert.False(t, ok, "a committed term is emitted only once")
	assert.False(t, d.Pending())

	for _, gen := range gens {
		_, ok := d.Fire(gen)
		assert.False(t, ok, "timers fired after emission are ignored")
	}
}

func TestDebouncer_FireIgnoresStaleGenerations(t *testing.T) {
	d := NewDebouncer(0)
	assert.Equal(t, SearchDelay, d.Delay())

	now := time.Now()
	first := d.Input("Han", now)
	second := d.Input("Han Solo", now.Add(50*time.Millisecond))

	_, ok := d.Fire(first)
	assert.False(t, ok)
	assert.True(t, d.Pending())

	term, ok := d.Fire(second)
	require.True(t, ok)
	assert.Equal(t, "Han Solo", term)
}

func TestDebouncer_ClearGoesThroughDelay(t *testing.T) {
	d := NewDebouncer(SearchDelay)
	now := time.Now()

	d.Input("Leia", now)
	d.Input("", now.Add(10*time.Millisecond))
	gen := d.Input("Lei", now.Add(20*time.Millisecond))

	term, ok := d.Fire(gen)
	require.True(t, ok)
	assert.Equal(t, "Lei", term)
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(SearchDelay)
	now := time.Now()
	gen := d.Input("Yoda", now)

	d.Cancel()
	assert.False(t, d.Pending())
	_, ok := d.Fire(gen)
	assert.False(t, ok)
	_, ok = d.Tick(now.Add(time.Hour))
	assert.False(t, ok)
}
