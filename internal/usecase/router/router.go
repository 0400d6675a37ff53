package router

import (
	"strings"

	"github.com/kailas-cloud/docnav/internal/domain/locale"
	"github.com/kailas-cloud/docnav/internal/domain/route"
)

// builtinExclusions are internal and asset prefixes that never reach the locale decision.
// They are matched against the path without its leading slash.
var builtinExclusions = []string{"_next", "api", "favicon.ico"}

// Router decides whether a request path carries a locale prefix.
// It holds no mutable state and is safe for concurrent use.
type Router struct {
	exclusions []string
}

// New creates a Router. extraExclusions are prefixes (with or without a leading slash)
// added to the built-in internal/asset exclusions.
func New(extraExclusions ...string) *Router {
	ex := make([]string, 0, len(builtinExclusions)+len(extraExclusions))
	ex = append(ex, builtinExclusions...)
	for _, p := range extraExclusions {
		p = strings.TrimPrefix(p, "/")
		if p != "" {
			ex = append(ex, p)
		}
	}
	return &Router{exclusions: ex}
}

// Excluded reports whether path bypasses locale routing: internal prefixes,
// configured prefixes, and any path that looks like a file (contains a dot).
func (r *Router) Excluded(path string) bool {
	rest := strings.TrimPrefix(path, "/")
	if strings.Contains(rest, ".") {
		return true
	}
	for _, p := range r.exclusions {
		if strings.HasPrefix(rest, p) {
			return true
		}
	}
	return false
}

// Route returns PassThrough for locale-prefixed paths and a redirect to the
// default locale otherwise. rawQuery, when non-empty, is carried over verbatim.
// Exclusions are not consulted here; callers check Excluded first.
func (r *Router) Route(path, rawQuery string) route.Decision {
	if _, ok := LocaleOf(path); ok {
		return route.PassThrough()
	}

	target := locale.Default.Prefix() + path
	if rawQuery != "" {
		target += "?" + rawQuery
	}
	return route.RedirectTo(target)
}

// LocaleOf returns the locale whose segment leads path: path equals "/<code>"
// or starts with "/<code>/". The match is segment-exact.
func LocaleOf(path string) (locale.Code, bool) {
	for _, code := range locale.All() {
		prefix := code.Prefix()
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return code, true
		}
	}
	return locale.Default, false
}
