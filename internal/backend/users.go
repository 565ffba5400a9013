package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gpessoni/pokedex/internal/domain"
)

// trainerDTO is a user together with their caught pokemons.
type trainerDTO struct {
	userDTO
	Pokemons []caughtDTO `json:"pokemons"`
}

func (d trainerDTO) toDomain() domain.Trainer {
	return domain.Trainer{
		User:     d.userDTO.toDomain(),
		Pokemons: mapCaught(d.Pokemons),
	}
}

// ListTrainers returns every user with their collections. Deployed backends
// disagree on the envelope: the list may arrive bare, under "users", or
// under "data", so all three shapes are accepted.
func (c *Client) ListTrainers(ctx context.Context) ([]domain.Trainer, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/users", nil)
	if err != nil {
		return nil, err
	}

	var bare []trainerDTO
	if err := json.Unmarshal(body, &bare); err == nil {
		return mapTrainers(bare), nil
	}

	var wrapped struct {
		Users []trainerDTO `json:"users"`
		Data  []trainerDTO `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to parse trainer list: %w", err)
	}
	if wrapped.Users != nil {
		return mapTrainers(wrapped.Users), nil
	}
	return mapTrainers(wrapped.Data), nil
}

// TrainerPokemons returns one user's caught pokemons.
func (c *Client) TrainerPokemons(ctx context.Context, userID string) ([]domain.CaughtPokemon, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/users/"+url.PathEscape(userID)+"/pokemons", nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Pokemons []caughtDTO `json:"pokemons"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse trainer pokemons: %w", err)
	}
	return mapCaught(resp.Pokemons), nil
}

func mapTrainers(dtos []trainerDTO) []domain.Trainer {
	out := make([]domain.Trainer, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toDomain())
	}
	return out
}
