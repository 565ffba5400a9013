package pokeapi

// Wire types for the PokeAPI REST responses. Only the fields the client
// consumes are declared.

type listResponse struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  []listEntry `json:"results"`
}

type listEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type pokemonDTO struct {
	ID             int              `json:"id"`
	Name           string           `json:"name"`
	Height         int              `json:"height"`
	Weight         int              `json:"weight"`
	BaseExperience int              `json:"base_experience"`
	Sprites        spritesDTO       `json:"sprites"`
	Types          []typeSlotDTO    `json:"types"`
	Stats          []statSlotDTO    `json:"stats"`
	Abilities      []abilitySlotDTO `json:"abilities"`
}

type spritesDTO struct {
	FrontDefault string `json:"front_default"`
	Other        *struct {
		OfficialArtwork struct {
			FrontDefault string `json:"front_default"`
		} `json:"official-artwork"`
	} `json:"other"`
}

type typeSlotDTO struct {
	Slot int `json:"slot"`
	Type struct {
		Name string `json:"name"`
	} `json:"type"`
}

type statSlotDTO struct {
	BaseStat int `json:"base_stat"`
	Stat     struct {
		Name string `json:"name"`
	} `json:"stat"`
}

type abilitySlotDTO struct {
	Ability struct {
		Name string `json:"name"`
	} `json:"ability"`
	IsHidden bool `json:"is_hidden"`
	Slot     int  `json:"slot"`
}
