package pokeapi

import (
	"fmt"
	"sort"

	"github.com/gpessoni/pokedex/internal/domain"
)

const spriteRepoURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"

// SpriteURL builds the deterministic front-sprite URL for a catalog ID.
func SpriteURL(id int) string {
	return fmt.Sprintf("%s/%d.png", spriteRepoURL, id)
}

// ArtworkURL builds the deterministic official-artwork URL for a catalog ID,
// the last resort of the image fallback chain.
func ArtworkURL(id int) string {
	return fmt.Sprintf("%s/other/official-artwork/%d.png", spriteRepoURL, id)
}

// mapPokemon converts a wire record into the immutable domain record.
func mapPokemon(d pokemonDTO) domain.Pokemon {
	types := make([]typeSlotDTO, len(d.Types))
	copy(types, d.Types)
	sort.Slice(types, func(i, j int) bool { return types[i].Slot < types[j].Slot })

	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.Type.Name)
	}

	stats := make([]domain.Stat, 0, len(d.Stats))
	for _, s := range d.Stats {
		stats = append(stats, domain.Stat{Name: s.Stat.Name, Base: s.BaseStat})
	}

	abilities := make([]domain.Ability, 0, len(d.Abilities))
	for _, a := range d.Abilities {
		abilities = append(abilities, domain.Ability{Name: a.Ability.Name, Hidden: a.IsHidden})
	}

	return domain.Pokemon{
		ID:             d.ID,
		Name:           d.Name,
		Types:          names,
		Height:         d.Height,
		Weight:         d.Weight,
		BaseExperience: d.BaseExperience,
		Stats:          stats,
		Abilities:      abilities,
		Image:          bestImage(d),
	}
}

// bestImage resolves an image through the fallback chain: explicit official
// artwork, then the default front sprite, then the URL derived from the ID.
func bestImage(d pokemonDTO) string {
	if d.Sprites.Other != nil && d.Sprites.Other.OfficialArtwork.FrontDefault != "" {
		return d.Sprites.Other.OfficialArtwork.FrontDefault
	}
	if d.Sprites.FrontDefault != "" {
		return d.Sprites.FrontDefault
	}
	return ArtworkURL(d.ID)
}
