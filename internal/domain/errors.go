package domain

import "errors"

var (
	// ErrInvalidRequest signals malformed client input.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUnsupportedLocale signals a locale code outside the locale table.
	ErrUnsupportedLocale = errors.New("unsupported locale")
	// ErrPageNotFound signals a path that resolves to no page.
	ErrPageNotFound = errors.New("page not found")

	// ErrSessionNotFound signals a missing search session.
	ErrSessionNotFound = errors.New("search session not found")
	// ErrTooManySessions signals that the session registry is full.
	ErrTooManySessions = errors.New("too many search sessions")
	// ErrSearchClosed signals an operation that needs an open search modal.
	ErrSearchClosed = errors.New("search is closed")
	// ErrResultNotFound signals a selection outside the current result list.
	ErrResultNotFound = errors.New("search result not found")
	// ErrAlreadyMounted signals a second Mount without Unmount.
	ErrAlreadyMounted = errors.New("controller already mounted")

	// ErrStatsDisabled signals that no query statistics store is configured.
	ErrStatsDisabled = errors.New("query statistics disabled")
	// ErrRateLimited signals a rate limit hit.
	ErrRateLimited = errors.New("rate limited")
)
