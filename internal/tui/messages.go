package tui

import (
	"github.com/gpessoni/pokedex/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// PageLoadedMsg carries one catalog page
type PageLoadedMsg struct {
	Seq     int
	Items   []domain.Pokemon
	HasNext bool
}

// PageFailedMsg signals that a page fetch failed
type PageFailedMsg struct {
	Seq int
	Err error
}

// SearchFoundMsg carries an exact catalog search hit
type SearchFoundMsg struct {
	Seq  int
	Item domain.Pokemon
}

// SearchFailedMsg signals that a catalog search missed or errored
type SearchFailedMsg struct {
	Seq  int
	Term string
	Err  error
}

// DetailLoadedMsg carries a fully hydrated pokemon for the detail view
type DetailLoadedMsg struct {
	Item domain.Pokemon
}

// CollectionRefreshedMsg signals that the caught index was reloaded
type CollectionRefreshedMsg struct {
	Err error
}

// PokemonCaughtMsg reports the outcome of a catch attempt
type PokemonCaughtMsg struct {
	Name string
	Err  error
}

// PokemonReleasedMsg reports the outcome of a release
type PokemonReleasedMsg struct {
	Name string
	Err  error
}

// AuthResultMsg reports the outcome of a login or register attempt
type AuthResultMsg struct {
	Cred       *domain.Credential
	Registered bool
	Err        error
}

// SessionExpiredMsg signals that the backend rejected the stored token
type SessionExpiredMsg struct{}

// TrainersLoadedMsg carries the trainer directory
type TrainersLoadedMsg struct {
	Trainers []domain.Trainer
}

// ToastExpiredMsg dismisses one notification after its TTL
type ToastExpiredMsg struct {
	ID string
}

// TickMsg is a general tick message for animations
type TickMsg struct{}
