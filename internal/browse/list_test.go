package browse

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/roster/internal/catalog"
	"github.com/five82/roster/internal/state"
)

func TestListController_AppliesSuccess(t *testing.T) {
	svc := newFakeService()
	svc.pages[listCall{Query: "sky", Page: 1}] = catalog.Page{Results: characters(10), Total: 23}

	c := NewListController(context.Background(), svc, time.Second)
	st := state.New()

	work := c.Begin(&st, "sky", 1)
	assert.True(t, st.Loading)
	assert.True(t, st.ShowLoading())

	res := work()
	require.NoError(t, res.Err)
	require.True(t, c.Apply(&st, res))

	assert.False(t, st.Loading)
	assert.Len(t, st.Characters, 10)
	assert.Equal(t, 23, st.Total)
	assert.Equal(t, 3, st.TotalPages)
	assert.NoError(t, st.LoadErr)
	assert.Equal(t, []listCall{{Query: "sky", Page: 1}}, svc.listCalls())
}

func TestListController_FailSoftOnError(t *testing.T) {
	svc := newFakeService()
	svc.listErr = &catalog.APIError{StatusCode: 500, Class: catalog.ErrorClassServer, URL: "x"}

	c := NewListController(context.Background(), svc, time.Second)
	st := state.New()
	st.Characters = characters(3)
	st.TotalPages = 4
	st.CurrentPage = 3

	res := c.Begin(&st, "", 3)()
	require.Error(t, res.Err)
	require.True(t, c.Apply(&st, res))

	assert.False(t, st.Loading, "loading must clear on failure")
	assert.Empty(t, st.Characters)
	assert.NotNil(t, st.Characters)
	assert.Equal(t, 1, st.TotalPages)
	assert.Equal(t, 1, st.CurrentPage)
	assert.True(t, st.ShowEmpty())

	var apiErr *catalog.APIError
	assert.True(t, errors.As(st.LoadErr, &apiErr))
}

func TestListController_DropsStaleResponses(t *testing.T) {
	svc := newFakeService()
	svc.pages[listCall{Query: "a", Page: 1}] = catalog.Page{Results: characters(1), Total: 1}
	svc.pages[listCall{Query: "ab", Page: 1}] = catalog.Page{Results: characters(2), Total: 2}

	c := NewListController(context.Background(), svc, time.Second)
	st := state.New()

	older := c.Begin(&st, "a", 1)
	newer := c.Begin(&st, "ab", 1)

	// The superseded request's context is already cancelled.
	olderRes := older()
	newerRes := newer()

	assert.False(t, c.Apply(&st, olderRes), "older response must be dropped")
	assert.True(t, st.Loading, "loading stays set until the latest request answers")

	require.True(t, c.Apply(&st, newerRes))
	assert.Len(t, st.Characters, 2)

	// A late arrival after the newer result still cannot clobber it.
	assert.False(t, c.Apply(&st, olderRes))
	assert.Len(t, st.Characters, 2)
	assert.False(t, st.Loading)
}

type blockingLister struct{}

func (blockingLister) FetchCharacters(ctx context.Context, _ string, _ int) (catalog.Page, error) {
	<-ctx.Done()
	return catalog.Page{}, ctx.Err()
}

func TestListController_TimeoutClearsLoading(t *testing.T) {
	c := NewListController(context.Background(), blockingLister{}, 20*time.Millisecond)
	st := state.New()

	res := c.Begin(&st, "", 1)()
	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)

	require.True(t, c.Apply(&st, res))
	assert.False(t, st.Loading)
	assert.ErrorIs(t, st.LoadErr, context.DeadlineExceeded)
}

func TestListController_CloseCancelsOutstanding(t *testing.T) {
	c := NewListController(context.Background(), blockingLister{}, time.Minute)
	st := state.New()

	work := c.Begin(&st, "", 1)
	c.Close()

	res := work()
	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.False(t, c.Apply(&st, res), "results after Close are stale")
}
