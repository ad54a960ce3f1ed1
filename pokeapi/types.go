package pokeapi

import "encoding/json"

// NamedAPIResource is a reference to another resource by name and url
type NamedAPIResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// APIResource is a reference to another resource by url only
type APIResource struct {
	URL string `json:"url"`
}

// Name is a localized name
type Name struct {
	Name     string           `json:"name"`
	Language NamedAPIResource `json:"language"`
}

// VersionGameIndex is a game index within a version
type VersionGameIndex struct {
	GameIndex int              `json:"game_index"`
	Version   NamedAPIResource `json:"version"`
}

// Page represents a paginated list response
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// HasNext checks if there is a following page
func (p *Page[T]) HasNext() bool {
	return p.Next != nil && *p.Next != ""
}

// Pokemon represents a PokeAPI Pokemon resource
type Pokemon struct {
	ID                     int                `json:"id"`
	Name                   string             `json:"name"`
	BaseExperience         *int               `json:"base_experience"`
	Height                 int                `json:"height"`
	Weight                 int                `json:"weight"`
	IsDefault              bool               `json:"is_default"`
	Order                  int                `json:"order"`
	Abilities              []PokemonAbility   `json:"abilities"`
	Forms                  []NamedAPIResource `json:"forms"`
	GameIndices            []VersionGameIndex `json:"game_indices"`
	HeldItems              []HeldItem         `json:"held_items"`
	LocationAreaEncounters string             `json:"location_area_encounters"`
	Moves                  []PokemonMove      `json:"moves"`
	Species                NamedAPIResource   `json:"species"`
	Stats                  []PokemonStat      `json:"stats"`
	Types                  []PokemonTypeSlot  `json:"types"`
	PastTypes              []PastType         `json:"past_types,omitempty"`
	PastAbilities          []PastAbility      `json:"past_abilities,omitempty"`
	// Sprites is kept verbatim; its shape varies too much to model.
	Sprites json.RawMessage `json:"sprites"`
	Cries   *PokemonCries   `json:"cries,omitempty"`
}

// PokemonAbility is an ability slot of a Pokemon
type PokemonAbility struct {
	IsHidden bool              `json:"is_hidden"`
	Slot     int               `json:"slot"`
	Ability  *NamedAPIResource `json:"ability"`
}

// HeldItem is an item a Pokemon may hold in the wild
type HeldItem struct {
	Item           NamedAPIResource        `json:"item"`
	VersionDetails []HeldItemVersionDetail `json:"version_details"`
}

// HeldItemVersionDetail is the rarity of a held item per version
type HeldItemVersionDetail struct {
	Rarity  int              `json:"rarity"`
	Version NamedAPIResource `json:"version"`
}

// PokemonMove is a move a Pokemon can learn
type PokemonMove struct {
	Move                NamedAPIResource         `json:"move"`
	VersionGroupDetails []MoveVersionGroupDetail `json:"version_group_details"`
}

// MoveVersionGroupDetail describes how a move is learned in a version group
type MoveVersionGroupDetail struct {
	LevelLearnedAt  int              `json:"level_learned_at"`
	MoveLearnMethod NamedAPIResource `json:"move_learn_method"`
	VersionGroup    NamedAPIResource `json:"version_group"`
}

// PokemonStat is a base stat value
type PokemonStat struct {
	BaseStat int              `json:"base_stat"`
	Effort   int              `json:"effort"`
	Stat     NamedAPIResource `json:"stat"`
}

// PokemonTypeSlot is a type slot of a Pokemon
type PokemonTypeSlot struct {
	Slot int              `json:"slot"`
	Type NamedAPIResource `json:"type"`
}

// PastType lists the types a Pokemon had in an earlier generation
type PastType struct {
	Generation NamedAPIResource  `json:"generation"`
	Types      []PokemonTypeSlot `json:"types"`
}

// PastAbility lists the abilities a Pokemon had in an earlier generation
type PastAbility struct {
	Generation NamedAPIResource `json:"generation"`
	Abilities  []PokemonAbility `json:"abilities"`
}

// PokemonCries holds links to cry audio
type PokemonCries struct {
	Latest string `json:"latest"`
	Legacy string `json:"legacy"`
}

// Generation represents a PokeAPI Generation resource
type Generation struct {
	ID             int                `json:"id"`
	Name           string             `json:"name"`
	Abilities      []NamedAPIResource `json:"abilities"`
	Moves          []NamedAPIResource `json:"moves"`
	PokemonSpecies []NamedAPIResource `json:"pokemon_species"`
	Types          []NamedAPIResource `json:"types"`
	VersionGroups  []NamedAPIResource `json:"version_groups"`
	MainRegion     NamedAPIResource   `json:"main_region"`
	Names          []Name             `json:"names"`
}
