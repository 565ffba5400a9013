// Package collection tracks which catalog pokemons the current user owns.
// The index is one of the two pieces of process-wide mutable state (the other
// is the session credential); command goroutines read and write it, so access
// is guarded by a mutex.
package collection

import (
	"sort"
	"sync"

	"github.com/gpessoni/pokedex/internal/domain"
)

// Index is the set of caught pokemons, keyed by catalog ID. It is always a
// projection of the latest known record list: a full Refresh replaces it
// atomically, and successful catch/release calls update it synchronously.
//
// Writes take precedence over an in-flight refresh. Each write bumps a
// version counter; a refresh snapshot taken before the write is rejected
// when it tries to apply.
type Index struct {
	mu      sync.RWMutex
	records map[int]domain.CaughtPokemon
	version uint64
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{records: make(map[int]domain.CaughtPokemon)}
}

// Version returns the current write version. Callers snapshot it before
// starting a refresh fetch and hand it back to ApplyRefresh.
func (x *Index) Version() uint64 {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.version
}

// ApplyRefresh atomically replaces the index with the fetched record list.
// It returns false without touching the index when a catch or release
// completed after the refresh started (startVersion is stale); the caller
// may fetch again if it wants the server's view.
func (x *Index) ApplyRefresh(startVersion uint64, records []domain.CaughtPokemon) bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.version != startVersion {
		return false
	}
	next := make(map[int]domain.CaughtPokemon, len(records))
	for _, r := range records {
		next[r.PokemonID] = r
	}
	x.records = next
	return true
}

// ApplyCatch inserts a confirmed catch record and bumps the write version.
func (x *Index) ApplyCatch(rec domain.CaughtPokemon) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.version++
	x.records[rec.PokemonID] = rec
}

// ApplyRelease removes the record for a catalog ID and bumps the write
// version. Removing an absent ID still counts as a write.
func (x *Index) ApplyRelease(pokemonID int) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.version++
	delete(x.records, pokemonID)
}

// Owned reports whether the catalog ID is in the index. This is the live
// ownership decoration evaluated at render time.
func (x *Index) Owned(pokemonID int) bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	_, ok := x.records[pokemonID]
	return ok
}

// Record returns the caught record backing a catalog ID, if owned.
func (x *Index) Record(pokemonID int) (domain.CaughtPokemon, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	rec, ok := x.records[pokemonID]
	return rec, ok
}

// Records returns the owned records ordered by catch time, oldest first.
func (x *Index) Records() []domain.CaughtPokemon {
	x.mu.RLock()
	defer x.mu.RUnlock()
	out := make([]domain.CaughtPokemon, 0, len(x.records))
	for _, r := range x.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CaughtAt.Equal(out[j].CaughtAt) {
			return out[i].PokemonID < out[j].PokemonID
		}
		return out[i].CaughtAt.Before(out[j].CaughtAt)
	})
	return out
}

// Len returns the number of owned pokemons.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.records)
}
