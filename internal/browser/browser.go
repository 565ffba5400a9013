// Package browser holds the pagination state machine for the external
// pokemon catalog. It decides which fetches to issue and which responses are
// still current; the actual network work is performed by the caller, which
// feeds results back through the Apply methods together with the request
// sequence number. Responses carrying a superseded sequence are discarded, so
// a slow page response can never clobber a newer reset or search.
package browser

import (
	"strings"

	"github.com/gpessoni/pokedex/internal/domain"
)

// DefaultPageSize is the catalog page size used when none is configured.
const DefaultPageSize = 20

// State is the browser's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateLoadingInitial
	StateLoadingMore
	StateSearching
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoadingInitial:
		return "loading"
	case StateLoadingMore:
		return "loading more"
	case StateSearching:
		return "searching"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// PageRequest describes one catalog page fetch the caller should perform.
// Seq must be echoed back to ApplyPage/Fail unchanged.
type PageRequest struct {
	Seq    int
	Limit  int
	Offset int
}

// SearchRequest describes an exact-key lookup against the catalog source.
type SearchRequest struct {
	Seq  int
	Term string
}

// Browser is the catalog pagination state machine. It is owned by the update
// loop and never touched concurrently.
type Browser struct {
	state    State
	pageSize int
	offset   int
	hasNext  bool
	items    []domain.Pokemon
	term     string
	err      error

	// seq is bumped on every issued request; a response is applied only if
	// it carries the current value.
	seq int
}

// New creates an idle browser with the given page size.
func New(pageSize int) *Browser {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Browser{state: StateIdle, pageSize: pageSize}
}

// LoadFirst resets the browser to the default paginated view and issues a
// fetch for the page at offset 0. Valid from any state; it supersedes
// whatever was in flight. Also exits search mode.
func (b *Browser) LoadFirst() PageRequest {
	b.seq++
	b.state = StateLoadingInitial
	b.term = ""
	b.err = nil
	return PageRequest{Seq: b.seq, Limit: b.pageSize, Offset: 0}
}

// LoadMore issues a fetch for the next page. It is a strict no-op (no request
// issued, no state change) unless the browser is Ready, more pages exist, and
// search mode is off.
func (b *Browser) LoadMore() (PageRequest, bool) {
	if b.state != StateReady || !b.hasNext || b.term != "" {
		return PageRequest{}, false
	}
	b.seq++
	b.state = StateLoadingMore
	return PageRequest{Seq: b.seq, Limit: b.pageSize, Offset: b.offset}, true
}

// Search enters search mode with a non-empty term and issues an exact-key
// lookup against the source. The current page list stays visible until the
// result arrives. An empty or blank term returns false; callers clear search
// by calling LoadFirst instead.
func (b *Browser) Search(term string) (SearchRequest, bool) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return SearchRequest{}, false
	}
	b.seq++
	b.state = StateSearching
	b.term = term
	b.err = nil
	return SearchRequest{Seq: b.seq, Term: term}, true
}

// Retry re-issues the initial load after an unrecoverable failure.
func (b *Browser) Retry() (PageRequest, bool) {
	if b.state != StateError {
		return PageRequest{}, false
	}
	return b.LoadFirst(), true
}

// ApplyPage feeds a page fetch result back into the machine. Stale responses
// (seq mismatch, or the machine is no longer waiting for a page) are
// discarded and false is returned. An initial page replaces the list; a
// load-more page is appended after the existing items and the offset cursor
// advances by the page size. No de-duplication is performed across pages;
// the source is trusted not to repeat identifiers.
func (b *Browser) ApplyPage(seq int, items []domain.Pokemon, hasNext bool) bool {
	if seq != b.seq {
		return false
	}
	switch b.state {
	case StateLoadingInitial:
		b.items = items
		b.offset = b.pageSize
	case StateLoadingMore:
		b.items = append(b.items, items...)
		b.offset += b.pageSize
	default:
		return false
	}
	b.hasNext = hasNext
	b.state = StateReady
	b.err = nil
	return true
}

// ApplySearchHit replaces the visible list with exactly the found item and
// disables further pagination until search mode is cleared.
func (b *Browser) ApplySearchHit(seq int, item domain.Pokemon) bool {
	if seq != b.seq || b.state != StateSearching {
		return false
	}
	b.items = []domain.Pokemon{item}
	b.hasNext = false
	b.state = StateReady
	return true
}

// ApplySearchMiss handles a not-found search result: search mode is dropped
// and a fresh initial load of the default view is issued. The returned
// request is valid only when ok is true; the caller surfaces the miss to the
// user separately.
func (b *Browser) ApplySearchMiss(seq int) (PageRequest, bool) {
	if seq != b.seq || b.state != StateSearching {
		return PageRequest{}, false
	}
	return b.LoadFirst(), true
}

// Fail feeds a fetch failure into the machine. A failed initial load is
// unrecoverable until Retry and moves the browser to Error. A failed
// load-more or search drops back to Ready with the previous list intact;
// the caller reports the failure as a toast.
func (b *Browser) Fail(seq int, err error) bool {
	if seq != b.seq {
		return false
	}
	switch b.state {
	case StateLoadingInitial:
		b.state = StateError
		b.err = err
	case StateLoadingMore:
		b.state = StateReady
	case StateSearching:
		b.state = StateReady
		b.term = ""
	default:
		return false
	}
	return true
}

// State returns the current lifecycle state.
func (b *Browser) State() State { return b.state }

// Items returns the visible catalog list in source order.
func (b *Browser) Items() []domain.Pokemon { return b.items }

// HasNext reports whether another page can be loaded.
func (b *Browser) HasNext() bool { return b.hasNext }

// InSearch reports whether the single-item search override is active.
func (b *Browser) InSearch() bool { return b.term != "" }

// Term returns the active search term, empty in browse mode.
func (b *Browser) Term() string { return b.term }

// Offset returns the next page offset cursor.
func (b *Browser) Offset() int { return b.offset }

// PageSize returns the fixed page size.
func (b *Browser) PageSize() int { return b.pageSize }

// Err returns the failure that moved the browser to Error, if any.
func (b *Browser) Err() error { return b.err }

// Loading reports whether any fetch is currently in flight.
func (b *Browser) Loading() bool {
	return b.state == StateLoadingInitial || b.state == StateLoadingMore || b.state == StateSearching
}
