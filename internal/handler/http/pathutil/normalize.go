package pathutil

import (
	"regexp"
	"strings"
)

// staticPaths are endpoints whose full path is already a bounded label set.
// They must never be rewritten to a slug template.
var staticPaths = map[string]struct{}{
	"/subjects":          {},
	"/articles":          {},
	"/articles/featured": {},
	"/articles/recent":   {},
	"/articles/search":   {},
	"/health":            {},
	"/ready":             {},
	"/live":              {},
	"/metrics":           {},
}

// pathPattern pairs a compiled route pattern with its label template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// pathPatterns lists the dynamic routes, most specific first.
// Pre-compiled at initialization.
var pathPatterns = []pathPattern{
	{pattern: regexp.MustCompile(`^/articles/subject/\d+$`), template: "/articles/subject/:id"},
	{pattern: regexp.MustCompile(`^/articles/[^/]+$`), template: "/articles/:slug"},
	{pattern: regexp.MustCompile(`^/subjects/[^/]+$`), template: "/subjects/:slug"},
}

// NormalizePath collapses dynamic URL paths into templates so metrics labels
// stay bounded. Slug-carrying paths (e.g. /articles/nutrition-myths) become
// /articles/:slug; static endpoints pass through unchanged.
//
// Query parameters and trailing slashes are stripped before matching.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := staticPaths[path]; ok {
		return path
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}

	// Unknown paths pass through; the router 404s them anyway.
	return path
}
