package browser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpessoni/pokedex/internal/domain"
)

func makePage(start, n int) []domain.Pokemon {
	out := make([]domain.Pokemon, n)
	for i := range out {
		out[i] = domain.Pokemon{ID: start + i + 1, Name: "poke", Types: []string{"normal"}}
	}
	return out
}

func TestInitialLoadThenLoadMore(t *testing.T) {
	b := New(20)
	require.Equal(t, StateIdle, b.State())

	req := b.LoadFirst()
	assert.Equal(t, StateLoadingInitial, b.State())
	assert.Equal(t, 0, req.Offset)
	assert.Equal(t, 20, req.Limit)

	require.True(t, b.ApplyPage(req.Seq, makePage(0, 20), true))
	assert.Equal(t, StateReady, b.State())
	assert.Len(t, b.Items(), 20)
	assert.Equal(t, 20, b.Offset())
	assert.True(t, b.HasNext())

	more, ok := b.LoadMore()
	require.True(t, ok)
	assert.Equal(t, 20, more.Offset)
	assert.Equal(t, StateLoadingMore, b.State())

	require.True(t, b.ApplyPage(more.Seq, makePage(20, 20), true))
	assert.Len(t, b.Items(), 40, "load more appends, never replaces")
	assert.Equal(t, 40, b.Offset())

	// Pages stay in issue order.
	assert.Equal(t, 1, b.Items()[0].ID)
	assert.Equal(t, 21, b.Items()[20].ID)
}

func TestLoadMoreWithoutNextPageIsNoop(t *testing.T) {
	b := New(20)
	req := b.LoadFirst()
	require.True(t, b.ApplyPage(req.Seq, makePage(0, 7), false))

	_, ok := b.LoadMore()
	assert.False(t, ok, "no request when hasNext is false")
	assert.Equal(t, StateReady, b.State())
	assert.Len(t, b.Items(), 7)
}

func TestLoadMoreBlockedWhileNotReady(t *testing.T) {
	b := New(20)
	b.LoadFirst()

	_, ok := b.LoadMore()
	assert.False(t, ok)
}

func TestSearchReplacesListWithSingleItem(t *testing.T) {
	b := New(20)
	req := b.LoadFirst()
	require.True(t, b.ApplyPage(req.Seq, makePage(0, 40), true))

	sreq, ok := b.Search("Pikachu ")
	require.True(t, ok)
	assert.Equal(t, "pikachu", sreq.Term, "terms are lowercased for the source")
	assert.Equal(t, StateSearching, b.State())

	require.True(t, b.ApplySearchHit(sreq.Seq, domain.Pokemon{ID: 25, Name: "pikachu", Types: []string{"electric"}}))
	require.Len(t, b.Items(), 1)
	assert.Equal(t, 25, b.Items()[0].ID)
	assert.False(t, b.HasNext())
	assert.True(t, b.InSearch())

	_, ok = b.LoadMore()
	assert.False(t, ok, "load more is disabled in search mode")
}

func TestEmptySearchTermIsRejected(t *testing.T) {
	b := New(20)
	_, ok := b.Search("   ")
	assert.False(t, ok)
	assert.Equal(t, StateIdle, b.State())
}

func TestClearingSearchRestoresDefaultView(t *testing.T) {
	b := New(20)
	req := b.LoadFirst()
	require.True(t, b.ApplyPage(req.Seq, makePage(0, 20), true))

	sreq, _ := b.Search("mew")
	require.True(t, b.ApplySearchHit(sreq.Seq, domain.Pokemon{ID: 151, Name: "mew"}))

	// Empty resubmission path: the caller falls back to LoadFirst.
	reset := b.LoadFirst()
	assert.Equal(t, 0, reset.Offset)
	assert.Equal(t, 20, reset.Limit, "same page size as the original initial load")
	assert.False(t, b.InSearch())

	require.True(t, b.ApplyPage(reset.Seq, makePage(0, 20), true))
	assert.Equal(t, StateReady, b.State())
	assert.Len(t, b.Items(), 20)
}

func TestSearchMissFallsBackToInitialLoad(t *testing.T) {
	b := New(20)
	req := b.LoadFirst()
	require.True(t, b.ApplyPage(req.Seq, makePage(0, 20), true))

	sreq, _ := b.Search("missingno")
	fallback, ok := b.ApplySearchMiss(sreq.Seq)
	require.True(t, ok)
	assert.Equal(t, StateLoadingInitial, b.State())
	assert.Equal(t, 0, fallback.Offset)
	assert.False(t, b.InSearch())
}

func TestStalePageResponseIsDiscarded(t *testing.T) {
	b := New(20)
	stale := b.LoadFirst()

	// A reset supersedes the in-flight request before its response lands.
	fresh := b.LoadFirst()
	assert.False(t, b.ApplyPage(stale.Seq, makePage(100, 20), true))

	require.True(t, b.ApplyPage(fresh.Seq, makePage(0, 20), true))
	assert.Equal(t, 1, b.Items()[0].ID)
}

func TestPageResponseAfterEnteringSearchIsDiscarded(t *testing.T) {
	b := New(20)
	req := b.LoadFirst()
	require.True(t, b.ApplyPage(req.Seq, makePage(0, 20), true))

	more, ok := b.LoadMore()
	require.True(t, ok)

	// Search submitted while the load-more response is still in flight.
	sreq, ok := b.Search("pikachu")
	require.True(t, ok)

	assert.False(t, b.ApplyPage(more.Seq, makePage(20, 20), true), "superseded page must not append")
	require.True(t, b.ApplySearchHit(sreq.Seq, domain.Pokemon{ID: 25, Name: "pikachu"}))
	assert.Len(t, b.Items(), 1)
}

func TestStaleSearchResponseIsDiscarded(t *testing.T) {
	b := New(20)
	sreq, _ := b.Search("pikachu")
	b.LoadFirst()

	assert.False(t, b.ApplySearchHit(sreq.Seq, domain.Pokemon{ID: 25}))
	_, ok := b.ApplySearchMiss(sreq.Seq)
	assert.False(t, ok)
}

func TestInitialLoadFailureEntersErrorStateAndRetries(t *testing.T) {
	b := New(20)
	req := b.LoadFirst()

	boom := errors.New("connection refused")
	require.True(t, b.Fail(req.Seq, boom))
	assert.Equal(t, StateError, b.State())
	assert.Equal(t, boom, b.Err())

	retry, ok := b.Retry()
	require.True(t, ok)
	assert.Equal(t, StateLoadingInitial, b.State())

	require.True(t, b.ApplyPage(retry.Seq, makePage(0, 20), true))
	assert.Equal(t, StateReady, b.State())
	assert.NoError(t, b.Err())
}

func TestLoadMoreFailureStaysReady(t *testing.T) {
	b := New(20)
	req := b.LoadFirst()
	require.True(t, b.ApplyPage(req.Seq, makePage(0, 20), true))

	more, _ := b.LoadMore()
	require.True(t, b.Fail(more.Seq, errors.New("timeout")))
	assert.Equal(t, StateReady, b.State())
	assert.Len(t, b.Items(), 20, "previous pages survive an incidental failure")
}

func TestSearchFailureExitsSearchModeKeepingList(t *testing.T) {
	b := New(20)
	req := b.LoadFirst()
	require.True(t, b.ApplyPage(req.Seq, makePage(0, 20), true))

	sreq, _ := b.Search("pikachu")
	require.True(t, b.Fail(sreq.Seq, errors.New("timeout")))
	assert.Equal(t, StateReady, b.State())
	assert.False(t, b.InSearch())
	assert.Len(t, b.Items(), 20)
}

func TestStaleFailureIsDiscarded(t *testing.T) {
	b := New(20)
	stale := b.LoadFirst()
	fresh := b.LoadFirst()

	assert.False(t, b.Fail(stale.Seq, errors.New("late failure")))
	assert.Equal(t, StateLoadingInitial, b.State())

	require.True(t, b.ApplyPage(fresh.Seq, makePage(0, 20), false))
	assert.Equal(t, StateReady, b.State())
}

func TestNoDeduplicationAcrossPages(t *testing.T) {
	// Overlapping pages from the source are reproduced as-is.
	b := New(20)
	req := b.LoadFirst()
	require.True(t, b.ApplyPage(req.Seq, makePage(0, 20), true))

	more, _ := b.LoadMore()
	require.True(t, b.ApplyPage(more.Seq, makePage(15, 20), false))
	assert.Len(t, b.Items(), 40)
}
