package filter

import (
	"path"
	"strconv"
	"strings"

	"github.com/s0up4200/dexarr/pokeapi"
)

// alternateFormIDBase is where PokeAPI starts numbering alternate forms
const alternateFormIDBase = 10000

// Entry is a list result as seen by filter expressions
type Entry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	// ID is parsed from the last URL segment, 0 if the URL has none
	ID int `json:"id"`
}

// NewEntry converts a list result into an Entry
func NewEntry(resource pokeapi.NamedAPIResource) Entry {
	return Entry{
		Name: resource.Name,
		URL:  resource.URL,
		ID:   idFromURL(resource.URL),
	}
}

// NewEntries converts a page of list results
func NewEntries(resources []pokeapi.NamedAPIResource) []Entry {
	entries := make([]Entry, len(resources))
	for i, r := range resources {
		entries[i] = NewEntry(r)
	}
	return entries
}

// IsAlternateForm reports whether the entry is a form variant rather than a
// species default
func (e Entry) IsAlternateForm() bool {
	return e.ID > alternateFormIDBase
}

func idFromURL(raw string) int {
	last := path.Base(strings.TrimRight(raw, "/"))
	id, err := strconv.Atoi(last)
	if err != nil || id < 0 {
		return 0
	}
	return id
}
