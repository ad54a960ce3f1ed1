package pokeapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pair struct{ k, v string }

func collect(seq func(func(string, string) bool)) []pair {
	var out []pair
	seq(func(k, v string) bool {
		out = append(out, pair{k, v})
		return true
	})
	return out
}

func TestHeaders(t *testing.T) {
	h := NewHeaders()
	h.Set("z-last", "2")
	h.Set("A-First", "1")

	v, ok := h.Get("a-first")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	v, ok = h.Get("Z-LAST")
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	assert.Equal(t, []pair{{"a-first", "1"}, {"z-last", "2"}}, collect(h.All()))

	t.Run("clone is independent", func(t *testing.T) {
		c := h.Clone()
		c.Set("a-first", "changed")
		v, _ := h.Get("a-first")
		assert.Equal(t, "1", v)
	})

	t.Run("zero value is usable", func(t *testing.T) {
		var z Headers
		_, ok := z.Get("x")
		assert.False(t, ok)
		z.Set("x", "y")
		assert.Equal(t, 1, z.Len())
	})
}

func TestQuery(t *testing.T) {
	q := NewQuery()
	q.Set("limit", "10")
	q.Set("limit", "20")
	assert.Equal(t, []pair{{"limit", "20"}}, collect(q.All()))

	q.Set("offset", "0")
	q.Set("name", "mr mime")
	assert.Equal(t, "limit=20&name=mr+mime&offset=0", q.Encode())
}

func TestNewRequest(t *testing.T) {
	u := mustParse(t, "https://pokeapi.co/ping")
	req := NewRequest(MethodGet, u)

	assert.Equal(t, MethodGet, req.Method)
	assert.Equal(t, u, req.URL)
	assert.Equal(t, 0, req.Headers.Len())
	assert.Equal(t, 0, req.Query.Len())
	assert.Empty(t, req.Body)
}

func TestResponseIsSuccess(t *testing.T) {
	for status, want := range map[int]bool{199: false, 200: true, 204: true, 299: true, 300: false, 404: false} {
		assert.Equal(t, want, (&Response{Status: status}).IsSuccess(), "status %d", status)
	}
}
