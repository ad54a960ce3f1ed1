package pokeapi

import (
	"net/url"
	"strings"
)

// JoinURL resolves relPath under apiPrefix under base. Leading and trailing
// slashes on apiPrefix and relPath are ignored. The result is always rooted
// at base's authority and keeps any path base already has.
//
// A base without an authority (e.g. mailto:pokeapi) is a configuration bug
// and yields an InternalError.
func JoinURL(base *url.URL, apiPrefix, relPath string) (*url.URL, error) {
	if base == nil || base.Opaque != "" || base.Host == "" || !base.IsAbs() {
		return nil, &InternalError{Reason: "invalid base url join"}
	}

	apiPrefix = strings.Trim(apiPrefix, "/")
	relPath = strings.Trim(relPath, "/")

	// Anchor a directory-like URL first so the second resolution appends
	// instead of replacing the last segment.
	dir := "./"
	if apiPrefix != "" {
		dir = apiPrefix + "/"
	}
	prefixRef, err := url.Parse(dir)
	if err != nil {
		return nil, &InternalError{Reason: "invalid base url join"}
	}
	u := base.ResolveReference(prefixRef)

	if relPath == "" {
		return u, nil
	}
	pathRef, err := url.Parse(relPath)
	if err != nil || pathRef.Scheme != "" || pathRef.Host != "" {
		return nil, &InternalError{Reason: "invalid path join"}
	}
	return u.ResolveReference(pathRef), nil
}
