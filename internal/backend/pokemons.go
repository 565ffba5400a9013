package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gpessoni/pokedex/internal/domain"
	"github.com/gpessoni/pokedex/internal/pokeapi"
)

// caughtDTO is the backend's wire shape for an ownership record.
type caughtDTO struct {
	ID        string `json:"id"`
	PokemonID int    `json:"pokemonId"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	UserID    string `json:"userId"`
	CaughtAt  string `json:"caughtAt"`
}

func (d caughtDTO) toDomain() domain.CaughtPokemon {
	caught, _ := time.Parse(time.RFC3339, d.CaughtAt)
	image := d.Image
	if image == "" {
		// Records written by other clients may omit the image snapshot;
		// derive the front sprite from the catalog id.
		image = pokeapi.SpriteURL(d.PokemonID)
	}
	return domain.CaughtPokemon{
		ID:        d.ID,
		PokemonID: d.PokemonID,
		Name:      d.Name,
		Image:     image,
		UserID:    d.UserID,
		CaughtAt:  caught,
	}
}

func mapCaught(dtos []caughtDTO) []domain.CaughtPokemon {
	out := make([]domain.CaughtPokemon, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toDomain())
	}
	return out
}

// ListMine returns the current user's complete list of caught pokemons.
func (c *Client) ListMine(ctx context.Context) ([]domain.CaughtPokemon, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/pokemons", nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Pokemons []caughtDTO `json:"pokemons"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse pokemon list: %w", err)
	}
	return mapCaught(resp.Pokemons), nil
}

// Catch posts an ownership record for a catalog pokemon with its denormalized
// name and best-available image snapshot.
func (c *Client) Catch(ctx context.Context, pokemonID int, name, image string) (domain.CaughtPokemon, error) {
	payload := map[string]any{
		"pokemonId": pokemonID,
		"name":      name,
		"image":     image,
	}
	body, err := c.doRequest(ctx, http.MethodPost, "/pokemons/catch", payload)
	if err != nil {
		return domain.CaughtPokemon{}, err
	}

	var resp struct {
		Message string    `json:"message"`
		Pokemon caughtDTO `json:"pokemon"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.CaughtPokemon{}, fmt.Errorf("failed to parse catch response: %w", err)
	}
	return resp.Pokemon.toDomain(), nil
}

// Release deletes an ownership record by its server-assigned identifier and
// returns the released record.
func (c *Client) Release(ctx context.Context, id string) (domain.CaughtPokemon, error) {
	body, err := c.doRequest(ctx, http.MethodDelete, "/pokemons/release/"+url.PathEscape(id), nil)
	if err != nil {
		return domain.CaughtPokemon{}, err
	}

	var resp struct {
		Message string    `json:"message"`
		Pokemon caughtDTO `json:"pokemon"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.CaughtPokemon{}, fmt.Errorf("failed to parse release response: %w", err)
	}
	return resp.Pokemon.toDomain(), nil
}
