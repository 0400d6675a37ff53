package docnav

import (
	"context"
	"time"

	"github.com/kailas-cloud/docnav/internal/domain/locale"
	"github.com/kailas-cloud/docnav/internal/repository/querystats"
	healthuc "github.com/kailas-cloud/docnav/internal/usecase/health"
	"github.com/kailas-cloud/docnav/internal/usecase/page"
	searchuc "github.com/kailas-cloud/docnav/internal/usecase/search"
)

// --- searchUseCase mock ---

type mockSearchUC struct {
	searchFn func(ctx context.Context, code locale.Code, query string) searchuc.Result
}

func (m *mockSearchUC) Search(ctx context.Context, code locale.Code, query string) searchuc.Result {
	return m.searchFn(ctx, code, query)
}

// --- statsUseCase mock ---

type mockStatsUC struct {
	countsFn func(ctx context.Context, day time.Time) (querystats.Day, error)
}

func (m *mockStatsUC) Counts(ctx context.Context, day time.Time) (querystats.Day, error) {
	return m.countsFn(ctx, day)
}

// --- pageUseCase mock ---

type mockPageUC struct {
	resolveFn func(path string) (page.Page, error)
}

func (m *mockPageUC) Resolve(path string) (page.Page, error) {
	return m.resolveFn(path)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	checkFn func(ctx context.Context) healthuc.Report
}

func (m *mockHealthUC) Check(ctx context.Context) healthuc.Report {
	return m.checkFn(ctx)
}

// --- store mock ---

type mockStore struct {
	pingErr error
	closed  bool
}

func (m *mockStore) Ping(context.Context) error { return m.pingErr }
func (m *mockStore) Close()                     { m.closed = true }

func (m *mockStore) WaitForReady(context.Context, time.Duration) error { return nil }

func (m *mockStore) Get(context.Context, string) ([]byte, error) { return nil, nil }

func (m *mockStore) IncrBy(context.Context, string, int64) error { return nil }

func (m *mockStore) Expire(context.Context, string, time.Duration, bool) error { return nil }

// testClient wires a Client with in-memory defaults; callers override fields.
func testClient() *Client {
	return wireClient(nil, defaultConfig(), nil)
}
