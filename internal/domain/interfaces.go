package domain

import "context"

// CatalogSource is the read-only external pokemon catalog.
// List returns one page in source order plus whether more pages exist.
type CatalogSource interface {
	List(ctx context.Context, limit, offset int) ([]Pokemon, bool, error)
	GetByName(ctx context.Context, name string) (Pokemon, error)
	GetByID(ctx context.Context, id int) (Pokemon, error)
}

// OwnershipRepository is the authenticated backend holding caught records.
type OwnershipRepository interface {
	ListMine(ctx context.Context) ([]CaughtPokemon, error)
	Catch(ctx context.Context, pokemonID int, name, image string) (CaughtPokemon, error)
	Release(ctx context.Context, id string) (CaughtPokemon, error)
}

// TrainerRepository lists other users and their collections.
type TrainerRepository interface {
	ListTrainers(ctx context.Context) ([]Trainer, error)
	TrainerPokemons(ctx context.Context, userID string) ([]CaughtPokemon, error)
}

// AuthRepository exchanges login/register forms for session credentials.
type AuthRepository interface {
	Login(ctx context.Context, email, password string) (Credential, error)
	Register(ctx context.Context, email, name, password string) (Credential, error)
}
