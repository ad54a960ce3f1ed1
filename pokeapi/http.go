package pokeapi

import (
	"iter"
	"maps"
	"net/url"
	"slices"
	"strings"
)

// Method is an HTTP method. Only GET is issued today.
type Method string

const (
	MethodGet Method = "GET"
)

// Headers is a set of HTTP headers keyed by lowercase name. Iteration is
// sorted by key so serialized requests are reproducible.
type Headers struct {
	m map[string]string
}

// NewHeaders creates an empty header set
func NewHeaders() Headers {
	return Headers{m: make(map[string]string)}
}

// Set inserts or overwrites a header
func (h *Headers) Set(key, value string) {
	if h.m == nil {
		h.m = make(map[string]string)
	}
	h.m[strings.ToLower(key)] = value
}

// Get returns the value for key and whether it was present
func (h Headers) Get(key string) (string, bool) {
	v, ok := h.m[strings.ToLower(key)]
	return v, ok
}

// Len returns the number of headers
func (h Headers) Len() int {
	return len(h.m)
}

// All iterates headers in key order
func (h Headers) All() iter.Seq2[string, string] {
	return sortedPairs(h.m)
}

// Clone returns an independent copy
func (h Headers) Clone() Headers {
	return Headers{m: maps.Clone(h.m)}
}

// Query is a set of query parameters with set semantics on keys.
type Query struct {
	m map[string]string
}

// NewQuery creates an empty query set
func NewQuery() Query {
	return Query{m: make(map[string]string)}
}

// Set inserts or overwrites a parameter
func (q *Query) Set(key, value string) {
	if q.m == nil {
		q.m = make(map[string]string)
	}
	q.m[key] = value
}

// Get returns the value for key and whether it was present
func (q Query) Get(key string) (string, bool) {
	v, ok := q.m[key]
	return v, ok
}

// Len returns the number of parameters
func (q Query) Len() int {
	return len(q.m)
}

// All iterates parameters in key order
func (q Query) All() iter.Seq2[string, string] {
	return sortedPairs(q.m)
}

// Values converts the set to url.Values
func (q Query) Values() url.Values {
	values := make(url.Values, len(q.m))
	for k, v := range q.m {
		values.Set(k, v)
	}
	return values
}

// Encode percent-encodes the parameters sorted by key
func (q Query) Encode() string {
	return q.Values().Encode()
}

func sortedPairs(m map[string]string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range slices.Sorted(maps.Keys(m)) {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}

// Request is a single outgoing call. It is built fresh for every call and
// never reused.
type Request struct {
	Method  Method
	URL     *url.URL
	Headers Headers
	Query   Query
	// Body is unused for GET.
	Body []byte
}

// NewRequest creates a request with empty headers and query
func NewRequest(method Method, u *url.URL) *Request {
	return &Request{
		Method:  method,
		URL:     u,
		Headers: NewHeaders(),
		Query:   NewQuery(),
	}
}

// Response is what a Transport returned, whatever the status.
type Response struct {
	Status  int
	Headers Headers
	Body    []byte
}

// IsSuccess reports whether the status is in [200, 299]
func (r *Response) IsSuccess() bool {
	return r.Status >= 200 && r.Status <= 299
}
