package pokeapi

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// maxSnippetRunes bounds the body excerpt kept on generic HTTP errors.
const maxSnippetRunes = 300

// Classify maps a non-2xx response to an *APIError. Every status maps to
// exactly one kind: 404 is NotFound, 429 is RateLimited and everything else
// is HTTPStatus.
func Classify(status int, url string, resp *Response) error {
	switch status {
	case 404:
		return &APIError{
			Status: status,
			URL:    url,
			Detail: NotFound{Resource: "resource", Identifier: "<unknown>"},
		}
	case 429:
		return &APIError{
			Status: status,
			URL:    url,
			Detail: RateLimited{RetryAfter: retryAfter(resp)},
		}
	default:
		return &APIError{
			Status: status,
			URL:    url,
			Detail: HTTPStatus{BodySnippet: bodySnippet(resp)},
		}
	}
}

func retryAfter(resp *Response) *uint64 {
	if resp == nil {
		return nil
	}
	raw, ok := resp.Headers.Get("retry-after")
	if !ok {
		return nil
	}
	secs, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return nil
	}
	return &secs
}

func bodySnippet(resp *Response) *string {
	if resp == nil || len(resp.Body) == 0 {
		return nil
	}
	text := strings.ToValidUTF8(string(resp.Body), string(utf8.RuneError))
	if utf8.RuneCountInString(text) > maxSnippetRunes {
		runes := []rune(text)
		text = string(runes[:maxSnippetRunes])
	}
	return &text
}

// describeNotFound fills in NotFound labels from the relative resource
// path ("pokemon/pikachu" -> pokemon, pikachu).
func describeNotFound(err error, relPath string) error {
	apiErr, ok := err.(*APIError)
	if !ok || !apiErr.IsNotFound() {
		return err
	}
	resource, identifier, _ := strings.Cut(strings.Trim(relPath, "/"), "/")
	nf := apiErr.Detail.(NotFound)
	if resource != "" {
		nf.Resource = resource
	}
	if identifier != "" {
		nf.Identifier = identifier
	}
	apiErr.Detail = nf
	return apiErr
}
