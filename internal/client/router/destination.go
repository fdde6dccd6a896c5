package router

import (
	"net/url"
	"path"
	"strings"
)

const (
	HomePath  = "/"
	LoginPath = "/login"

	ReturnURLParam = "returnUrl"
	ErrorParam     = "error"
	ErrorForbidden = "forbidden"
)

// Destination is a navigation target: a path plus query parameters.
type Destination struct {
	Path  string
	Query url.Values
}

// ParseDestination reads "/path?k=v". The path is cleaned and always
// starts with "/". Unparsable queries are dropped.
func ParseDestination(raw string) Destination {
	p, q, _ := strings.Cut(raw, "?")
	query, err := url.ParseQuery(q)
	if err != nil || len(query) == 0 {
		query = nil
	}
	return Destination{Path: cleanPath(p), Query: query}
}

func To(p string) Destination {
	return Destination{Path: cleanPath(p)}
}

// With returns a copy of d with key set to value.
func (d Destination) With(key, value string) Destination {
	q := url.Values{}
	for k, v := range d.Query {
		q[k] = append([]string(nil), v...)
	}
	q.Set(key, value)
	return Destination{Path: d.Path, Query: q}
}

func (d Destination) String() string {
	if len(d.Query) == 0 {
		return d.Path
	}
	return d.Path + "?" + d.Query.Encode()
}

func cleanPath(p string) string {
	if p == "" {
		return HomePath
	}
	return path.Clean("/" + p)
}
