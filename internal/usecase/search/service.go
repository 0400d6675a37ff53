package search

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/docnav/internal/domain/catalog"
	"github.com/kailas-cloud/docnav/internal/domain/locale"
	logpkg "github.com/kailas-cloud/docnav/internal/logger"
	"github.com/kailas-cloud/docnav/internal/metrics"
)

// Service runs catalog searches for the HTTP API and records their outcomes.
type Service struct {
	stats StatsRecorder
}

// New creates a search service. stats can be nil.
func New(stats StatsRecorder) *Service {
	return &Service{stats: stats}
}

// Search matches query against the catalog of code.
func (s *Service) Search(ctx context.Context, code locale.Code, query string) Result {
	res := Evaluate(query, catalog.For(code))

	metrics.SearchQueriesTotal.WithLabelValues(code.String(), string(res.Outcome)).Inc()

	if s.stats != nil {
		if err := s.stats.Record(ctx, code, res.Outcome); err != nil {
			logpkg.FromContext(ctx).Warn("failed to record search stats",
				zap.String("locale", code.String()),
				zap.String("outcome", string(res.Outcome)),
				zap.Error(err),
			)
		}
	}

	return res
}
