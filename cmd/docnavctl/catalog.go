package main

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/docnav/internal/domain"
	"github.com/kailas-cloud/docnav/internal/domain/catalog"
	"github.com/kailas-cloud/docnav/internal/domain/locale"
)

// Run executes the catalog command.
func (c *CatalogCmd) Run(deps *Dependencies) error {
	code, err := parseLang(deps, c.Lang)
	if err != nil {
		return err
	}
	printDocs(deps, catalog.For(code))
	return nil
}

// Run executes the locales command.
func (c *LocalesCmd) Run(deps *Dependencies) error {
	for _, code := range locale.All() {
		marker := ""
		if code == locale.Default {
			marker = "  (default)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s%s\n", code, code.Tag(), locale.Lookup(code).DisplayName, marker)
	}
	return nil
}

func printDocs(deps *Dependencies, docs []catalog.Descriptor) {
	for _, d := range docs {
		fmt.Fprintf(deps.Stdout, "%s  %s  [%s]\n", d.Path(), d.Title(), d.Category())
	}
}

func parseLang(deps *Dependencies, s string) (locale.Code, error) {
	code, ok := locale.Parse(s)
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: unknown locale %q (supported: %s)\n", s, supportedCodes())
		return locale.Default, fmt.Errorf("%w: %q", domain.ErrUnsupportedLocale, s)
	}
	return code, nil
}

func supportedCodes() string {
	all := locale.All()
	codes := make([]string, len(all))
	for i, c := range all {
		codes[i] = c.String()
	}
	return strings.Join(codes, ", ")
}
