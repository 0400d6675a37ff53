package chi

// ErrorCode is the machine-readable code of an ErrorResponse.
type ErrorCode string

// Error codes.
const (
	CodeBadRequest        ErrorCode = "bad_request"
	CodeUnauthorized      ErrorCode = "unauthorized"
	CodeUnsupportedLocale ErrorCode = "unsupported_locale"
	CodePageNotFound      ErrorCode = "page_not_found"
	CodeSessionNotFound   ErrorCode = "session_not_found"
	CodeTooManySessions   ErrorCode = "too_many_sessions"
	CodeSearchClosed      ErrorCode = "search_closed"
	CodeResultNotFound    ErrorCode = "result_not_found"
	CodeAlreadyMounted    ErrorCode = "already_mounted"
	CodeStatsDisabled     ErrorCode = "stats_disabled"
	CodeRateLimited       ErrorCode = "rate_limited"
	CodeInternalError     ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx API answer.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// LocaleItem describes one entry of the locale table.
type LocaleItem struct {
	Code    string `json:"code"`
	Tag     string `json:"tag"`
	Name    string `json:"name"`
	Default bool   `json:"default"`
}

// LocaleListResponse is the body of GET /api/v1/locales.
type LocaleListResponse struct {
	Items   []LocaleItem `json:"items"`
	Default string       `json:"default"`
}

// DocumentItem is a catalog entry as shown to users. Keywords are match-only and never sent.
type DocumentItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Path        string `json:"path"`
	Category    string `json:"category"`
}

// SearchResponse is the body of GET /api/v1/search.
type SearchResponse struct {
	Query   string         `json:"query"`
	Locale  string         `json:"locale"`
	Outcome string         `json:"outcome"`
	Status  string         `json:"status,omitempty"`
	Items   []DocumentItem `json:"items"`
	Total   int            `json:"total"`
}

// SwitchResponse is the body of GET /api/v1/locale/switch.
type SwitchResponse struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Path     string `json:"path"`
	Resolves bool   `json:"resolves"`
}

// NavLink is a header/sidebar link of a page.
type NavLink struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// PageResponse is the body of GET /{lang}/*.
type PageResponse struct {
	Site       string            `json:"site"`
	Locale     string            `json:"locale"`
	Path       string            `json:"path"`
	Title      string            `json:"title"`
	Category   string            `json:"category,omitempty"`
	Nav        []NavLink         `json:"nav"`
	Alternates map[string]string `json:"alternates"`
	Search     SearchLabels      `json:"search"`
}

// SearchLabels are the localized strings of the search modal.
type SearchLabels struct {
	Button      string `json:"button"`
	Title       string `json:"title"`
	Placeholder string `json:"placeholder"`
}

// SessionResponse is the snapshot of a search session.
type SessionResponse struct {
	ID         string         `json:"id"`
	Locale     string         `json:"locale"`
	State      string         `json:"state"`
	Query      string         `json:"query"`
	Status     string         `json:"status,omitempty"`
	Results    []DocumentItem `json:"results"`
	NavigateTo string         `json:"navigate_to,omitempty"`
}

// KeyEventResponse is the body of POST /api/v1/sessions/{id}/keys.
type KeyEventResponse struct {
	// Handled tells the page to suppress the browser's default action.
	Handled bool            `json:"handled"`
	Session SessionResponse `json:"session"`
}

// SetQueryRequest is the body of PUT /api/v1/sessions/{id}/query.
type SetQueryRequest struct {
	Query string `json:"query"`
}

// SelectRequest is the body of POST /api/v1/sessions/{id}/select.
type SelectRequest struct {
	Index *int `json:"index"`
}

// StatsResponse is the body of GET /api/v1/admin/stats.
type StatsResponse struct {
	Day    string                      `json:"day"`
	Total  int64                       `json:"total"`
	Counts map[string]map[string]int64 `json:"counts"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
