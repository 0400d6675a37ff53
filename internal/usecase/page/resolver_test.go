package page

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/docnav/internal/domain"
	"github.com/kailas-cloud/docnav/internal/domain/locale"
	"github.com/kailas-cloud/docnav/internal/usecase/switcher"
)

func TestResolve_StaticPages(t *testing.T) {
	r := NewResolver()
	tests := []struct {
		path  string
		code  locale.Code
		title string
	}{
		{"/pt", locale.PT, SiteName},
		{"/en/", locale.EN, SiteName},
		{"/en/docs", locale.EN, "Documentation"},
		{"/pt/docs/", locale.PT, "Documentação"},
		{"/pt/about", locale.PT, "Sobre"},
		{"/en/license", locale.EN, "License"},
	}
	for _, tc := range tests {
		p, err := r.Resolve(tc.path)
		if err != nil {
			t.Errorf("Resolve(%q): %v", tc.path, err)
			continue
		}
		if p.Locale != tc.code || p.Title != tc.title {
			t.Errorf("Resolve(%q) = %+v", tc.path, p)
		}
	}
}

func TestResolve_CatalogPages(t *testing.T) {
	p, err := NewResolver().Resolve("/pt/docs/security/")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.Title != "Segurança" || p.Category != "Deploy" || p.Path != "/pt/docs/security" {
		t.Errorf("unexpected page %+v", p)
	}
}

func TestResolve_NotFound(t *testing.T) {
	r := NewResolver()
	for _, path := range []string{"/docs", "/fr/docs", "/en/docs/nope", "/en/blog", ""} {
		if _, err := r.Resolve(path); !errors.Is(err, domain.ErrPageNotFound) {
			t.Errorf("Resolve(%q): expected ErrPageNotFound, got %v", path, err)
		}
	}
}

func TestResolve_SwitchedCatalogPathsResolve(t *testing.T) {
	r := NewResolver()
	for _, path := range []string{"/en/docs/installation", "/en/docs/contributing", "/en/about"} {
		switched := switcher.Switch(path, locale.PT)
		if _, err := r.Resolve(switched); err != nil {
			t.Errorf("Resolve(%q): %v", switched, err)
		}
	}
}
