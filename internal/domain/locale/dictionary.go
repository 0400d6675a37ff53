package locale

import "fmt"

// Dictionary holds the UI strings rendered around the search modal and the language toggle.
type Dictionary struct {
	DisplayName       string
	SearchButton      string
	SearchTitle       string
	SearchPlaceholder string
	TooShortHint      string
	noResultsFormat   string
	Docs              string
	About             string
	Contact           string
	Download          string
	License           string
}

// NoResults formats the empty-result message for query.
func (d Dictionary) NoResults(query string) string {
	return fmt.Sprintf(d.noResultsFormat, query)
}

// One entry per Code; the array length ties the table to the enum.
var dictionaries = [count]Dictionary{
	PT: {
		DisplayName:       "Português",
		SearchButton:      "Buscar documentação...",
		SearchTitle:       "Buscar Documentação",
		SearchPlaceholder: "Digite para buscar...",
		TooShortHint:      "Digite pelo menos 2 caracteres para buscar",
		noResultsFormat:   "Nenhum resultado encontrado para %q",
		Docs:              "Documentação",
		About:             "Sobre",
		Contact:           "Contato",
		Download:          "Download",
		License:           "Licença",
	},
	EN: {
		DisplayName:       "English",
		SearchButton:      "Search documentation...",
		SearchTitle:       "Search Documentation",
		SearchPlaceholder: "Type to search...",
		TooShortHint:      "Type at least 2 characters to search",
		noResultsFormat:   "No results found for %q",
		Docs:              "Documentation",
		About:             "About",
		Contact:           "Contact",
		Download:          "Download",
		License:           "License",
	},
}

// Lookup returns the dictionary for c. Values outside the table get the default's.
func Lookup(c Code) Dictionary {
	if !c.IsValid() {
		return dictionaries[Default]
	}
	return dictionaries[c]
}
