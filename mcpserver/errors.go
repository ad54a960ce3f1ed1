package mcpserver

import (
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/s0up4200/dexarr/pokeapi"
)

// Error codes carried in the structured error payload
const (
	CodeBadRequest    = "bad_request"
	CodeNotFound      = "not_found"
	CodeInternalError = "internal_error"
)

// ToolError is the structured payload attached to a failed tool call. The
// text content only carries Message; the full description and the kind stay
// here as diagnostics.
type ToolError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Kind    string `json:"kind"`
	Error   string `json:"error"`
}

// errorResult maps a client error to a tool result with isError set.
func errorResult(err error) (*mcp.CallToolResult, ToolError) {
	envelope := ToolError{
		Code:    CodeInternalError,
		Message: "Unexpected error",
		Kind:    string(pokeapi.KindOf(err)),
		Error:   err.Error(),
	}
	if envelope.Kind == "" {
		envelope.Kind = string(pokeapi.KindInternal)
	}

	var apiErr *pokeapi.APIError
	switch pokeapi.KindOf(err) {
	case pokeapi.KindInvalidArgument:
		envelope.Code = CodeBadRequest
		envelope.Message = "Invalid arguments"
	case pokeapi.KindAPI:
		envelope.Message = "Upstream API error"
		if errors.As(err, &apiErr) && apiErr.IsNotFound() {
			envelope.Code = CodeNotFound
			envelope.Message = "Not found"
		}
	case pokeapi.KindTransport:
		envelope.Message = "Network/transport error"
	case pokeapi.KindDeserialize:
		envelope.Message = "Deserialize error"
	}

	result := mcp.NewToolResultError(envelope.Message)
	result.StructuredContent = envelope
	return result, envelope
}
