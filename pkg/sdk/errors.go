package docnav

import "github.com/kailas-cloud/docnav/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrUnsupportedLocale = domain.ErrUnsupportedLocale
	ErrPageNotFound      = domain.ErrPageNotFound
	ErrSessionNotFound   = domain.ErrSessionNotFound
	ErrTooManySessions   = domain.ErrTooManySessions
	ErrSearchClosed      = domain.ErrSearchClosed
	ErrResultNotFound    = domain.ErrResultNotFound
	ErrStatsDisabled     = domain.ErrStatsDisabled
)
