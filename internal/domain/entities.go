package domain

import "time"

// User is the authenticated trainer's identity as reported by the backend.
type User struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
}

// Credential is the bearer token for the current session plus the identity
// it was issued for. At most one credential is active at a time; an empty
// token means logged out.
type Credential struct {
	Token string
	User  User
}

// Stat is a single base stat of a pokemon (hp, attack, ...).
type Stat struct {
	Name string
	Base int
}

// Ability is a pokemon ability slot.
type Ability struct {
	Name   string
	Hidden bool
}

// Pokemon is an immutable catalog record from the external source.
// Types is ordered and non-empty; the first entry is the primary type.
type Pokemon struct {
	ID             int
	Name           string
	Types          []string
	Height         int
	Weight         int
	BaseExperience int
	Stats          []Stat
	Abilities      []Ability
	Image          string
}

// PrimaryType returns the first (primary) type, or "normal" if the source
// ever hands us an empty type list.
func (p Pokemon) PrimaryType() string {
	if len(p.Types) == 0 {
		return "normal"
	}
	return p.Types[0]
}

// CaughtPokemon is an ownership record from the backend. ID is the
// server-assigned record identifier; PokemonID references the catalog.
// Name and Image are denormalized snapshots taken at catch time.
type CaughtPokemon struct {
	ID        string
	PokemonID int
	Name      string
	Image     string
	UserID    string
	CaughtAt  time.Time
}

// Trainer is another user together with their caught pokemons.
type Trainer struct {
	User
	Pokemons []CaughtPokemon
}
