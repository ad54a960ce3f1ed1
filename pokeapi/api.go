package pokeapi

import (
	"context"
	"fmt"
)

// API lists the typed operations of the client.
type API interface {
	PokemonByID(ctx context.Context, id uint32) (*Pokemon, error)
	PokemonByName(ctx context.Context, name PokemonName) (*Pokemon, error)
	Pokemon(ctx context.Context, ref PokemonRef) (*Pokemon, error)
	PokemonList(ctx context.Context, page PageRequest) (*Page[NamedAPIResource], error)

	GenerationByID(ctx context.Context, id uint32) (*Generation, error)
	GenerationByName(ctx context.Context, name GenerationName) (*Generation, error)
	Generation(ctx context.Context, ref GenerationRef) (*Generation, error)
	GenerationList(ctx context.Context, page PageRequest) (*Page[NamedAPIResource], error)
}

var _ API = (*Client)(nil)

// PokemonByID fetches a Pokemon by numeric id
func (c *Client) PokemonByID(ctx context.Context, id uint32) (*Pokemon, error) {
	var p Pokemon
	if err := c.FetchJSON(ctx, fmt.Sprintf("pokemon/%d", id), Query{}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// PokemonByName fetches a Pokemon by validated name
func (c *Client) PokemonByName(ctx context.Context, name PokemonName) (*Pokemon, error) {
	if name.String() == "" {
		return nil, &InvalidArgumentError{Field: "pokemon_name", Reason: "cannot be empty"}
	}
	var p Pokemon
	if err := c.FetchJSON(ctx, "pokemon/"+name.String(), Query{}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Pokemon fetches a Pokemon by id or name
func (c *Client) Pokemon(ctx context.Context, ref PokemonRef) (*Pokemon, error) {
	if name, ok := ref.Name(); ok {
		return c.PokemonByName(ctx, name)
	}
	id, _ := ref.ID()
	return c.PokemonByID(ctx, id)
}

// PokemonList lists Pokemon resources (name and url).
//
// GET /pokemon?limit=...&offset=...
func (c *Client) PokemonList(ctx context.Context, page PageRequest) (*Page[NamedAPIResource], error) {
	return c.list(ctx, "pokemon", page)
}

// GenerationByID fetches a Generation by numeric id
func (c *Client) GenerationByID(ctx context.Context, id uint32) (*Generation, error) {
	var g Generation
	if err := c.FetchJSON(ctx, fmt.Sprintf("generation/%d", id), Query{}, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// GenerationByName fetches a Generation by validated name
func (c *Client) GenerationByName(ctx context.Context, name GenerationName) (*Generation, error) {
	if name.String() == "" {
		return nil, &InvalidArgumentError{Field: "generation_name", Reason: "cannot be empty"}
	}
	var g Generation
	if err := c.FetchJSON(ctx, "generation/"+name.String(), Query{}, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// Generation fetches a Generation by id or name
func (c *Client) Generation(ctx context.Context, ref GenerationRef) (*Generation, error) {
	if name, ok := ref.Name(); ok {
		return c.GenerationByName(ctx, name)
	}
	id, _ := ref.ID()
	return c.GenerationByID(ctx, id)
}

// GenerationList lists generations (name and url).
//
// GET /generation?limit=...&offset=...
func (c *Client) GenerationList(ctx context.Context, page PageRequest) (*Page[NamedAPIResource], error) {
	return c.list(ctx, "generation", page)
}

func (c *Client) list(ctx context.Context, resource string, page PageRequest) (*Page[NamedAPIResource], error) {
	if page.Limit.Value() == 0 {
		return nil, &InvalidArgumentError{Field: "limit", Reason: "must be > 0"}
	}
	var p Page[NamedAPIResource]
	if err := c.FetchJSON(ctx, resource, page.Query(), &p); err != nil {
		return nil, err
	}
	return &p, nil
}
