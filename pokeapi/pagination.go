package pokeapi

import "strconv"

// MaxLimit is the largest page size accepted by NewLimit.
const MaxLimit = 100

// DefaultLimit is the page size used when the caller gives none.
var DefaultLimit = Limit{v: 20}

// Limit is a page size in (0, MaxLimit].
type Limit struct {
	v uint32
}

// NewLimit validates v
func NewLimit(v uint32) (Limit, error) {
	if v == 0 {
		return Limit{}, &InvalidArgumentError{Field: "limit", Reason: "must be > 0"}
	}
	if v > MaxLimit {
		return Limit{}, &InvalidArgumentError{
			Field:  "limit",
			Reason: "must be <= " + strconv.Itoa(MaxLimit),
		}
	}
	return Limit{v: v}, nil
}

// Value returns the page size
func (l Limit) Value() uint32 { return l.v }

// Offset is the index of the first item of a page. Any value is accepted;
// the API puts no upper bound on it.
type Offset struct {
	v uint32
}

// NewOffset wraps v
func NewOffset(v uint32) Offset { return Offset{v: v} }

// Value returns the offset
func (o Offset) Value() uint32 { return o.v }

// PageRequest is the limit/offset window of a list call.
type PageRequest struct {
	Limit  Limit
	Offset Offset
}

// NewPageRequest creates a page request
func NewPageRequest(limit Limit, offset Offset) PageRequest {
	return PageRequest{Limit: limit, Offset: offset}
}

// FirstPage is a page request starting at offset 0
func FirstPage(limit Limit) PageRequest {
	return PageRequest{Limit: limit}
}

// Query renders the window as limit and offset parameters
func (p PageRequest) Query() Query {
	q := NewQuery()
	q.Set("limit", strconv.FormatUint(uint64(p.Limit.Value()), 10))
	q.Set("offset", strconv.FormatUint(uint64(p.Offset.Value()), 10))
	return q
}
