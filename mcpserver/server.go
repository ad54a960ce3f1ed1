// Package mcpserver exposes a subset of the PokeAPI client as MCP tools.
//
// Four tools are registered: pokemon_get and generation_get take exactly one
// of id or name, pokemon_list and generation_list take an optional limit
// (default 20) and offset (default 0). Results are pretty-printed JSON text.
// Client errors become tool results with isError set; see errorResult for
// the envelope.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/s0up4200/dexarr/pokeapi"
)

const serverName = "dexarr"

// PokemonAPI is the part of the PokeAPI client used by the tools.
type PokemonAPI interface {
	Pokemon(ctx context.Context, ref pokeapi.PokemonRef) (*pokeapi.Pokemon, error)
	Generation(ctx context.Context, ref pokeapi.GenerationRef) (*pokeapi.Generation, error)
	PokemonList(ctx context.Context, page pokeapi.PageRequest) (*pokeapi.Page[pokeapi.NamedAPIResource], error)
	GenerationList(ctx context.Context, page pokeapi.PageRequest) (*pokeapi.Page[pokeapi.NamedAPIResource], error)
}

var _ PokemonAPI = (*pokeapi.Client)(nil)

// Server wraps an MCP server with the PokeAPI tools registered.
type Server struct {
	api    PokemonAPI
	logger zerolog.Logger
	mcp    *server.MCPServer
}

// getArgs are the arguments of the *_get tools
type getArgs struct {
	ID   *uint32 `json:"id"`
	Name *string `json:"name"`
}

// listArgs are the arguments of the *_list tools
type listArgs struct {
	Limit  *uint32 `json:"limit"`
	Offset *uint32 `json:"offset"`
}

// New creates a new MCP server backed by api
func New(api PokemonAPI, logger zerolog.Logger, version string) *Server {
	s := &Server{
		api:    api,
		logger: logger.With().Str("component", "mcp").Logger(),
		mcp: server.NewMCPServer(serverName, version,
			server.WithToolCapabilities(false),
			server.WithInstructions("PokeAPI tools powered by the dexarr Go client."),
		),
	}

	s.mcp.AddTool(
		mcp.NewTool("pokemon_get",
			mcp.WithDescription("Fetch a Pokemon by id or name. Provide exactly one of {id, name}."),
			mcp.WithNumber("id", mcp.Description("Numeric id (exclusive with name)"), mcp.Min(0)),
			mcp.WithString("name", mcp.Description("Pokemon name, lowercase (exclusive with id)")),
		),
		s.handlePokemonGet,
	)
	s.mcp.AddTool(
		mcp.NewTool("generation_get",
			mcp.WithDescription("Fetch a Generation by id or name. Provide exactly one of {id, name}."),
			mcp.WithNumber("id", mcp.Description("Numeric id (exclusive with name)"), mcp.Min(0)),
			mcp.WithString("name", mcp.Description("Generation name, e.g. generation-i (exclusive with id)")),
		),
		s.handleGenerationGet,
	)
	s.mcp.AddTool(
		mcp.NewTool("pokemon_list",
			mcp.WithDescription("List Pokemon resources with pagination (limit/offset)."),
			mcp.WithNumber("limit", mcp.Description("Page size, 1 to 100 (default 20)"), mcp.Min(1), mcp.Max(pokeapi.MaxLimit)),
			mcp.WithNumber("offset", mcp.Description("Offset into the collection (default 0)"), mcp.Min(0)),
		),
		s.handlePokemonList,
	)
	s.mcp.AddTool(
		mcp.NewTool("generation_list",
			mcp.WithDescription("List Generation resources with pagination (limit/offset)."),
			mcp.WithNumber("limit", mcp.Description("Page size, 1 to 100 (default 20)"), mcp.Min(1), mcp.Max(pokeapi.MaxLimit)),
			mcp.WithNumber("offset", mcp.Description("Offset into the collection (default 0)"), mcp.Min(0)),
		),
		s.handleGenerationList,
	)

	return s
}

// MCPServer returns the underlying MCP server
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// Serve runs the server over stdin/stdout until stdin closes.
func (s *Server) Serve() error {
	s.logger.Info().Msg("Serving MCP over stdio")
	return server.ServeStdio(s.mcp)
}

func (s *Server) handlePokemonGet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args getArgs
	if err := decodeArgs(request, &args); err != nil {
		return s.fail(request, err), nil
	}
	ref, err := pokeapi.ResolvePokemonRef("pokemon_get", args.ID, args.Name)
	if err != nil {
		return s.fail(request, err), nil
	}
	pokemon, err := s.api.Pokemon(ctx, ref)
	if err != nil {
		return s.fail(request, err), nil
	}
	return s.ok(request, pokemon), nil
}

func (s *Server) handleGenerationGet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args getArgs
	if err := decodeArgs(request, &args); err != nil {
		return s.fail(request, err), nil
	}
	ref, err := pokeapi.ResolveGenerationRef("generation_get", args.ID, args.Name)
	if err != nil {
		return s.fail(request, err), nil
	}
	generation, err := s.api.Generation(ctx, ref)
	if err != nil {
		return s.fail(request, err), nil
	}
	return s.ok(request, generation), nil
}

func (s *Server) handlePokemonList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, err := pageFromRequest(request)
	if err != nil {
		return s.fail(request, err), nil
	}
	result, err := s.api.PokemonList(ctx, page)
	if err != nil {
		return s.fail(request, err), nil
	}
	return s.ok(request, result), nil
}

func (s *Server) handleGenerationList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, err := pageFromRequest(request)
	if err != nil {
		return s.fail(request, err), nil
	}
	result, err := s.api.GenerationList(ctx, page)
	if err != nil {
		return s.fail(request, err), nil
	}
	return s.ok(request, result), nil
}

// pageFromRequest applies the 20/0 defaults and validates the limit
func pageFromRequest(request mcp.CallToolRequest) (pokeapi.PageRequest, error) {
	var args listArgs
	if err := decodeArgs(request, &args); err != nil {
		return pokeapi.PageRequest{}, err
	}

	limit := pokeapi.DefaultLimit
	if args.Limit != nil {
		l, err := pokeapi.NewLimit(*args.Limit)
		if err != nil {
			return pokeapi.PageRequest{}, err
		}
		limit = l
	}

	var offset pokeapi.Offset
	if args.Offset != nil {
		offset = pokeapi.NewOffset(*args.Offset)
	}

	return pokeapi.NewPageRequest(limit, offset), nil
}

// decodeArgs maps the raw argument object onto v. Type mismatches such as a
// negative or fractional id are reported as invalid arguments.
func decodeArgs(request mcp.CallToolRequest, v any) error {
	data, err := json.Marshal(request.GetArguments())
	if err != nil {
		return &pokeapi.InvalidArgumentError{Field: "arguments", Reason: err.Error()}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &pokeapi.InvalidArgumentError{Field: "arguments", Reason: err.Error()}
	}
	return nil
}

func (s *Server) ok(request mcp.CallToolRequest, v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return s.fail(request, &pokeapi.InternalError{Reason: fmt.Sprintf("failed to serialize result: %v", err)})
	}
	s.logger.Debug().Str("tool", request.Params.Name).Int("bytes", len(data)).Msg("Tool call succeeded")
	return mcp.NewToolResultText(string(data))
}

func (s *Server) fail(request mcp.CallToolRequest, err error) *mcp.CallToolResult {
	result, envelope := errorResult(err)
	s.logger.Warn().
		Err(err).
		Str("tool", request.Params.Name).
		Str("code", envelope.Code).
		Msg("Tool call failed")
	return result
}
