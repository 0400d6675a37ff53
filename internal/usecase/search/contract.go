package search

import (
	"context"

	"github.com/kailas-cloud/docnav/internal/domain/locale"
	"github.com/kailas-cloud/docnav/internal/domain/search/outcome"
)

// StatsRecorder persists query outcome counters. Implementations may be remote;
// the service treats failures as non-fatal.
type StatsRecorder interface {
	Record(ctx context.Context, code locale.Code, o outcome.Outcome) error
}
