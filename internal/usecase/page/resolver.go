package page

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/docnav/internal/domain"
	"github.com/kailas-cloud/docnav/internal/domain/catalog"
	"github.com/kailas-cloud/docnav/internal/domain/locale"
	"github.com/kailas-cloud/docnav/internal/usecase/router"
)

// SiteName is the title of each locale's home page.
const SiteName = "FortiVault"

// Page is a resolved, locale-qualified page.
type Page struct {
	Locale   locale.Code
	Path     string
	Title    string
	Category string
}

// Resolver maps request paths to the pages of the site.
type Resolver struct{}

// NewResolver creates a Resolver.
func NewResolver() *Resolver { return &Resolver{} }

// Resolve returns the page at path. A trailing slash is ignored.
// Unknown paths yield ErrPageNotFound.
func (r *Resolver) Resolve(path string) (Page, error) {
	code, ok := router.LocaleOf(path)
	if !ok {
		return Page{}, fmt.Errorf("%w: %s has no locale segment", domain.ErrPageNotFound, path)
	}

	clean := path
	if len(clean) > 1 {
		clean = strings.TrimSuffix(clean, "/")
	}
	rest := strings.TrimPrefix(clean, code.Prefix())
	dict := locale.Lookup(code)

	static := map[string]string{
		"":          SiteName,
		"/docs":     dict.Docs,
		"/about":    dict.About,
		"/contact":  dict.Contact,
		"/download": dict.Download,
		"/license":  dict.License,
	}
	if title, ok := static[rest]; ok {
		return Page{Locale: code, Path: clean, Title: title}, nil
	}

	if d, ok := catalog.Lookup(clean); ok {
		return Page{Locale: code, Path: clean, Title: d.Title(), Category: d.Category()}, nil
	}

	return Page{}, fmt.Errorf("%w: %s", domain.ErrPageNotFound, clean)
}
