package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/dexarr/pokeapi"
)

// mockAPI records the last call and returns canned values
type mockAPI struct {
	pokemonRef    *pokeapi.PokemonRef
	generationRef *pokeapi.GenerationRef
	page          *pokeapi.PageRequest
	listKind      string
	err           error
}

func (m *mockAPI) Pokemon(ctx context.Context, ref pokeapi.PokemonRef) (*pokeapi.Pokemon, error) {
	m.pokemonRef = &ref
	if m.err != nil {
		return nil, m.err
	}
	return &pokeapi.Pokemon{ID: 25, Name: "pikachu"}, nil
}

func (m *mockAPI) Generation(ctx context.Context, ref pokeapi.GenerationRef) (*pokeapi.Generation, error) {
	m.generationRef = &ref
	if m.err != nil {
		return nil, m.err
	}
	return &pokeapi.Generation{
		ID:         1,
		Name:       "generation-i",
		MainRegion: pokeapi.NamedAPIResource{Name: "kanto", URL: "https://pokeapi.co/api/v2/region/1/"},
	}, nil
}

func (m *mockAPI) PokemonList(ctx context.Context, page pokeapi.PageRequest) (*pokeapi.Page[pokeapi.NamedAPIResource], error) {
	return m.list("pokemon", page)
}

func (m *mockAPI) GenerationList(ctx context.Context, page pokeapi.PageRequest) (*pokeapi.Page[pokeapi.NamedAPIResource], error) {
	return m.list("generation", page)
}

func (m *mockAPI) list(kind string, page pokeapi.PageRequest) (*pokeapi.Page[pokeapi.NamedAPIResource], error) {
	m.page = &page
	m.listKind = kind
	if m.err != nil {
		return nil, m.err
	}
	return &pokeapi.Page[pokeapi.NamedAPIResource]{
		Count:   1,
		Results: []pokeapi.NamedAPIResource{{Name: "foo", URL: "https://pokeapi.co/api/v2/" + kind + "/1/"}},
	}, nil
}

func callTool(t *testing.T, s *Server, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	var request mcp.CallToolRequest
	request.Params.Name = name
	request.Params.Arguments = args

	handlers := map[string]func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error){
		"pokemon_get":     s.handlePokemonGet,
		"generation_get":  s.handleGenerationGet,
		"pokemon_list":    s.handlePokemonList,
		"generation_list": s.handleGenerationList,
	}
	handler, ok := handlers[name]
	require.True(t, ok, "unknown tool %s", name)

	result, err := handler(context.Background(), request)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "unexpected content %#v", result.Content[0])
	return text.Text
}

func toolError(t *testing.T, result *mcp.CallToolResult) ToolError {
	t.Helper()
	require.True(t, result.IsError)
	envelope, ok := result.StructuredContent.(ToolError)
	require.True(t, ok, "unexpected structured content %#v", result.StructuredContent)
	assert.Equal(t, envelope.Message, resultText(t, result))
	return envelope
}

func TestPokemonGet(t *testing.T) {
	t.Run("by id", func(t *testing.T) {
		api := &mockAPI{}
		result := callTool(t, New(api, zerolog.Nop(), "test"), "pokemon_get", map[string]any{"id": 25})

		require.False(t, result.IsError)
		require.NotNil(t, api.pokemonRef)
		id, ok := api.pokemonRef.ID()
		assert.True(t, ok)
		assert.Equal(t, uint32(25), id)

		var pokemon pokeapi.Pokemon
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &pokemon))
		assert.Equal(t, "pikachu", pokemon.Name)
		assert.Contains(t, resultText(t, result), "\n  \"id\": 25")
	})

	t.Run("by name", func(t *testing.T) {
		api := &mockAPI{}
		result := callTool(t, New(api, zerolog.Nop(), "test"), "pokemon_get", map[string]any{"name": "pikachu"})

		require.False(t, result.IsError)
		name, ok := api.pokemonRef.Name()
		assert.True(t, ok)
		assert.Equal(t, "pikachu", name.String())
	})
}

func TestGenerationGet(t *testing.T) {
	api := &mockAPI{}
	result := callTool(t, New(api, zerolog.Nop(), "test"), "generation_get", map[string]any{"name": "generation-i"})

	require.False(t, result.IsError)
	name, ok := api.generationRef.Name()
	assert.True(t, ok)
	assert.Equal(t, "generation-i", name.String())
	assert.Contains(t, resultText(t, result), "kanto")
}

func TestGetArgumentErrors(t *testing.T) {
	tests := []struct {
		name     string
		tool     string
		args     map[string]any
		contains string
	}{
		{name: "both", tool: "pokemon_get", args: map[string]any{"id": 25, "name": "pikachu"}, contains: "invalid argument `pokemon_get`"},
		{name: "neither", tool: "generation_get", args: map[string]any{}, contains: "invalid argument `generation_get`"},
		{name: "null name counts as absent", tool: "pokemon_get", args: map[string]any{"name": nil}, contains: "exactly one of"},
		{name: "invalid name", tool: "pokemon_get", args: map[string]any{"name": "Pikachu"}, contains: "invalid argument `pokemon_name`"},
		{name: "negative id", tool: "pokemon_get", args: map[string]any{"id": -1}, contains: "invalid argument `arguments`"},
		{name: "fractional id", tool: "generation_get", args: map[string]any{"id": 1.5}, contains: "invalid argument `arguments`"},
		{name: "string id", tool: "pokemon_get", args: map[string]any{"id": "25"}, contains: "invalid argument `arguments`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &mockAPI{}
			result := callTool(t, New(api, zerolog.Nop(), "test"), tt.tool, tt.args)

			envelope := toolError(t, result)
			assert.Equal(t, CodeBadRequest, envelope.Code)
			assert.Equal(t, "Invalid arguments", envelope.Message)
			assert.Equal(t, "invalid_argument", envelope.Kind)
			assert.Contains(t, envelope.Error, tt.contains)

			assert.Nil(t, api.pokemonRef, "client must not be called")
			assert.Nil(t, api.generationRef, "client must not be called")
		})
	}
}

func TestListDefaultsAndBounds(t *testing.T) {
	tests := []struct {
		name       string
		tool       string
		args       map[string]any
		wantLimit  uint32
		wantOffset uint32
		wantErr    bool
	}{
		{name: "defaults", tool: "pokemon_list", args: nil, wantLimit: 20, wantOffset: 0},
		{name: "explicit", tool: "generation_list", args: map[string]any{"limit": 5, "offset": 40}, wantLimit: 5, wantOffset: 40},
		{name: "max limit", tool: "pokemon_list", args: map[string]any{"limit": 100}, wantLimit: 100},
		{name: "large offset", tool: "pokemon_list", args: map[string]any{"offset": 100000}, wantLimit: 20, wantOffset: 100000},
		{name: "zero limit", tool: "pokemon_list", args: map[string]any{"limit": 0}, wantErr: true},
		{name: "limit over max", tool: "generation_list", args: map[string]any{"limit": 101}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &mockAPI{}
			result := callTool(t, New(api, zerolog.Nop(), "test"), tt.tool, tt.args)

			if tt.wantErr {
				envelope := toolError(t, result)
				assert.Equal(t, CodeBadRequest, envelope.Code)
				assert.Contains(t, envelope.Error, "invalid argument `limit`")
				assert.Nil(t, api.page)
				return
			}

			require.False(t, result.IsError)
			require.NotNil(t, api.page)
			assert.Equal(t, tt.wantLimit, api.page.Limit.Value())
			assert.Equal(t, tt.wantOffset, api.page.Offset.Value())

			var page pokeapi.Page[pokeapi.NamedAPIResource]
			require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &page))
			assert.Equal(t, 1, page.Count)
		})
	}
}

func TestClientErrorMapping(t *testing.T) {
	retry := uint64(3)
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
		wantKind    string
	}{
		{
			name:        "not found",
			err:         &pokeapi.APIError{Status: 404, Detail: pokeapi.NotFound{Resource: "pokemon", Identifier: "missingno"}},
			wantCode:    CodeNotFound,
			wantMessage: "Not found",
			wantKind:    "api",
		},
		{
			name:        "rate limited",
			err:         &pokeapi.APIError{Status: 429, Detail: pokeapi.RateLimited{RetryAfter: &retry}},
			wantCode:    CodeInternalError,
			wantMessage: "Upstream API error",
			wantKind:    "api",
		},
		{
			name:        "server error",
			err:         &pokeapi.APIError{Status: 500, Detail: pokeapi.HTTPStatus{}},
			wantCode:    CodeInternalError,
			wantMessage: "Upstream API error",
			wantKind:    "api",
		},
		{
			name:        "transport",
			err:         &pokeapi.TransportError{Err: errors.New("connection refused")},
			wantCode:    CodeInternalError,
			wantMessage: "Network/transport error",
			wantKind:    "transport",
		},
		{
			name:        "deserialize",
			err:         &pokeapi.DeserializeError{URL: "u", Err: errors.New("bad json")},
			wantCode:    CodeInternalError,
			wantMessage: "Deserialize error",
			wantKind:    "deserialize",
		},
		{
			name:        "internal",
			err:         &pokeapi.InternalError{Reason: "invalid base url join"},
			wantCode:    CodeInternalError,
			wantMessage: "Unexpected error",
			wantKind:    "internal",
		},
		{
			name:        "foreign error",
			err:         errors.New("something else"),
			wantCode:    CodeInternalError,
			wantMessage: "Unexpected error",
			wantKind:    "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &mockAPI{err: tt.err}
			result := callTool(t, New(api, zerolog.Nop(), "test"), "pokemon_get", map[string]any{"id": 1})

			envelope := toolError(t, result)
			assert.Equal(t, tt.wantCode, envelope.Code)
			assert.Equal(t, tt.wantMessage, envelope.Message)
			assert.Equal(t, tt.wantKind, envelope.Kind)
			assert.Equal(t, tt.err.Error(), envelope.Error)
		})
	}
}

func TestToolsAreRegistered(t *testing.T) {
	s := New(&mockAPI{}, zerolog.Nop(), "1.2.3")

	response := s.MCPServer().HandleMessage(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	data, err := json.Marshal(response)
	require.NoError(t, err)

	for _, name := range []string{"pokemon_get", "generation_get", "pokemon_list", "generation_list"} {
		assert.Contains(t, string(data), `"name":"`+name+`"`)
	}
}
