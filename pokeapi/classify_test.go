package pokeapi

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeResponse(status int, body string, headers map[string]string) *Response {
	h := NewHeaders()
	for k, v := range headers {
		h.Set(k, v)
	}
	return &Response{Status: status, Headers: h, Body: []byte(body)}
}

func classifyAPI(t *testing.T, resp *Response) *APIError {
	t.Helper()
	err := Classify(resp.Status, "https://pokeapi.co/api/v2/pokemon/x", resp)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, resp.Status, apiErr.Status)
	assert.Equal(t, "https://pokeapi.co/api/v2/pokemon/x", apiErr.URL)
	return apiErr
}

func TestClassify_NotFound(t *testing.T) {
	apiErr := classifyAPI(t, makeResponse(404, "", nil))

	nf, ok := apiErr.Detail.(NotFound)
	require.True(t, ok, "unexpected api kind: %#v", apiErr.Detail)
	assert.Equal(t, "resource", nf.Resource)
	assert.True(t, apiErr.IsNotFound())
}

func TestClassify_RateLimited(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    *uint64
	}{
		{name: "with header", headers: map[string]string{"retry-after": "5"}, want: ptr(uint64(5))},
		{name: "canonical header name", headers: map[string]string{"Retry-After": "30"}, want: ptr(uint64(30))},
		{name: "missing header"},
		{name: "http date", headers: map[string]string{"retry-after": "Wed, 21 Oct 2015 07:28:00 GMT"}},
		{name: "negative", headers: map[string]string{"retry-after": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := classifyAPI(t, makeResponse(429, "", tt.headers))
			rl, ok := apiErr.Detail.(RateLimited)
			require.True(t, ok, "unexpected api kind: %#v", apiErr.Detail)
			assert.Equal(t, tt.want, rl.RetryAfter)
		})
	}
}

func TestClassify_HTTPStatus(t *testing.T) {
	t.Run("body snippet", func(t *testing.T) {
		apiErr := classifyAPI(t, makeResponse(500, "oops", nil))
		hs, ok := apiErr.Detail.(HTTPStatus)
		require.True(t, ok, "unexpected api kind: %#v", apiErr.Detail)
		require.NotNil(t, hs.BodySnippet)
		assert.Equal(t, "oops", *hs.BodySnippet)
	})

	t.Run("empty body", func(t *testing.T) {
		apiErr := classifyAPI(t, makeResponse(500, "", nil))
		hs := apiErr.Detail.(HTTPStatus)
		assert.Nil(t, hs.BodySnippet)
	})

	t.Run("truncated to 300 characters", func(t *testing.T) {
		apiErr := classifyAPI(t, makeResponse(503, strings.Repeat("é", 400), nil))
		hs := apiErr.Detail.(HTTPStatus)
		require.NotNil(t, hs.BodySnippet)
		assert.Equal(t, 300, utf8.RuneCountInString(*hs.BodySnippet))
	})

	t.Run("invalid utf8 is replaced", func(t *testing.T) {
		apiErr := classifyAPI(t, makeResponse(502, "bad\xff\xfebody", nil))
		hs := apiErr.Detail.(HTTPStatus)
		require.NotNil(t, hs.BodySnippet)
		assert.True(t, utf8.ValidString(*hs.BodySnippet))
		assert.Contains(t, *hs.BodySnippet, "bad")
		assert.Contains(t, *hs.BodySnippet, "body")
	})
}

func TestClassify_IsTotal(t *testing.T) {
	for status := 100; status <= 599; status++ {
		if status >= 200 && status <= 299 {
			continue
		}
		err := Classify(status, "u", makeResponse(status, "", nil))
		apiErr, ok := err.(*APIError)
		require.True(t, ok, "status %d", status)
		switch apiErr.Detail.(type) {
		case NotFound:
			assert.Equal(t, 404, status)
		case RateLimited:
			assert.Equal(t, 429, status)
		case HTTPStatus:
			assert.NotContains(t, []int{404, 429}, status)
		default:
			t.Fatalf("status %d: unexpected kind %#v", status, apiErr.Detail)
		}
	}
}

func TestDescribeNotFound(t *testing.T) {
	err := describeNotFound(Classify(404, "u", makeResponse(404, "", nil)), "pokemon/missingno")
	assert.EqualError(t, err, "pokemon `missingno` not found (status 404)")

	// other kinds pass through untouched
	err = describeNotFound(Classify(500, "u", makeResponse(500, "", nil)), "pokemon/1")
	assert.EqualError(t, err, "http error (status 500)")
}

func ptr[T any](v T) *T { return &v }
