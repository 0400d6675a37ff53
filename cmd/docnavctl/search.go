package main

import (
	"fmt"

	"github.com/kailas-cloud/docnav/internal/domain/catalog"
	"github.com/kailas-cloud/docnav/internal/domain/locale"
	"github.com/kailas-cloud/docnav/internal/domain/search/outcome"
	"github.com/kailas-cloud/docnav/internal/usecase/search"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	code, err := parseLang(deps, c.Lang)
	if err != nil {
		return err
	}

	res := search.Evaluate(c.Query, catalog.For(code))
	dict := locale.Lookup(code)

	switch res.Outcome {
	case outcome.TooShort:
		fmt.Fprintln(deps.Stdout, dict.TooShortHint)
	case outcome.NoResults:
		fmt.Fprintln(deps.Stdout, dict.NoResults(res.Query))
	default:
		printDocs(deps, res.Docs)
	}
	return nil
}
