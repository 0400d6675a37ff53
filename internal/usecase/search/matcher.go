package search

import (
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/docnav/internal/domain/catalog"
	"github.com/kailas-cloud/docnav/internal/domain/search/outcome"
)

// MinQueryLength is the shortest query, in characters, that is matched at all.
const MinQueryLength = 2

// Result is the outcome of matching one complete query.
type Result struct {
	Query   string
	Outcome outcome.Outcome
	Docs    []catalog.Descriptor
}

// Match returns the descriptors whose title, description or any keyword contains
// query, case-insensitively, in catalog order. Queries shorter than MinQueryLength
// match nothing.
func Match(query string, docs []catalog.Descriptor) []catalog.Descriptor {
	if utf8.RuneCountInString(query) < MinQueryLength {
		return nil
	}

	needle := strings.ToLower(query)
	var out []catalog.Descriptor
	for _, d := range docs {
		if matches(d, needle) {
			out = append(out, d)
		}
	}
	return out
}

// Evaluate runs Match and classifies the outcome.
func Evaluate(query string, docs []catalog.Descriptor) Result {
	if utf8.RuneCountInString(query) < MinQueryLength {
		return Result{Query: query, Outcome: outcome.TooShort}
	}
	found := Match(query, docs)
	if len(found) == 0 {
		return Result{Query: query, Outcome: outcome.NoResults}
	}
	return Result{Query: query, Outcome: outcome.Results, Docs: found}
}

func matches(d catalog.Descriptor, needle string) bool {
	if strings.Contains(strings.ToLower(d.Title()), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(d.Description()), needle) {
		return true
	}
	return d.EachKeyword(func(k string) bool {
		return strings.Contains(strings.ToLower(k), needle)
	})
}
