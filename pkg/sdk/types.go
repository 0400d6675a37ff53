package docnav

// Outcome classifies a search.
type Outcome string

// Outcome constants.
const (
	OutcomeTooShort  Outcome = "too_short"
	OutcomeNoResults Outcome = "no_results"
	OutcomeResults   Outcome = "results"
)

// SessionState is the state of a search modal.
type SessionState string

// SessionState constants.
const (
	StateClosed        SessionState = "closed"
	StateOpenEmpty     SessionState = "open_empty"
	StateOpenResults   SessionState = "open_results"
	StateOpenNoResults SessionState = "open_no_results"
)

// Locale describes a supported locale.
type Locale struct {
	Code    string
	Tag     string
	Name    string
	Default bool
}

// Document is a catalog entry. Keywords are match-only and not exposed.
type Document struct {
	Title       string
	Description string
	Path        string
	Category    string
}

// SearchResult is the outcome of a catalog search.
type SearchResult struct {
	Query     string
	Locale    string
	Outcome   Outcome
	Documents []Document
	// Status is the localized hint shown instead of results.
	Status string
}

// RouteDecision tells whether a request path is served or redirected.
type RouteDecision struct {
	Excluded bool
	Redirect bool
	Target   string
}

// Page is a resolved page of the site.
type Page struct {
	Locale   string
	Path     string
	Title    string
	Category string
}

// KeyEvent is a key press forwarded from a page.
type KeyEvent struct {
	Key   string
	Meta  bool
	Ctrl  bool
	Alt   bool
	Shift bool
}

// SessionSnapshot is the rendered state of a search session.
type SessionSnapshot struct {
	ID      string
	Locale  string
	State   SessionState
	Query   string
	Status  string
	Results []Document
	// NavigateTo is set when the last operation selected a result.
	NavigateTo string
}

// DayStats holds one day of search outcome counters, per locale.
type DayStats struct {
	Day    string
	Total  int64
	Counts map[string]map[Outcome]int64
}
