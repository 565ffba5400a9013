package pokeapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageFallbackChain(t *testing.T) {
	withArtwork := pokemonDTO{ID: 1}
	withArtwork.Sprites.Other = &struct {
		OfficialArtwork struct {
			FrontDefault string `json:"front_default"`
		} `json:"official-artwork"`
	}{}
	withArtwork.Sprites.Other.OfficialArtwork.FrontDefault = "artwork.png"
	withArtwork.Sprites.FrontDefault = "sprite.png"
	assert.Equal(t, "artwork.png", bestImage(withArtwork), "explicit artwork wins")

	spriteOnly := pokemonDTO{ID: 2}
	spriteOnly.Sprites.FrontDefault = "sprite.png"
	assert.Equal(t, "sprite.png", bestImage(spriteOnly))

	bare := pokemonDTO{ID: 132}
	assert.Equal(t, ArtworkURL(132), bestImage(bare), "computed URL is the last resort")
}

func TestDeterministicImageURLs(t *testing.T) {
	assert.Equal(t,
		"https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/25.png",
		SpriteURL(25))
	assert.Equal(t,
		"https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/25.png",
		ArtworkURL(25))
}

func TestMapPokemonOrdersTypesBySlot(t *testing.T) {
	dto := pokemonDTO{ID: 6, Name: "charizard"}
	dto.Types = []typeSlotDTO{{Slot: 2}, {Slot: 1}}
	dto.Types[0].Type.Name = "flying"
	dto.Types[1].Type.Name = "fire"
	dto.Stats = []statSlotDTO{{BaseStat: 78}}
	dto.Stats[0].Stat.Name = "hp"
	dto.Abilities = []abilitySlotDTO{{IsHidden: true}}
	dto.Abilities[0].Ability.Name = "solar-power"

	p := mapPokemon(dto)
	assert.Equal(t, []string{"fire", "flying"}, p.Types)
	assert.Equal(t, "fire", p.PrimaryType())
	assert.Equal(t, "hp", p.Stats[0].Name)
	assert.Equal(t, 78, p.Stats[0].Base)
	assert.True(t, p.Abilities[0].Hidden)
}
