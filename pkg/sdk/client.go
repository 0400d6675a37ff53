package docnav

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/docnav/internal/db"
	dbRedis "github.com/kailas-cloud/docnav/internal/db/redis"
	"github.com/kailas-cloud/docnav/internal/domain"
	"github.com/kailas-cloud/docnav/internal/domain/catalog"
	"github.com/kailas-cloud/docnav/internal/domain/locale"
	"github.com/kailas-cloud/docnav/internal/domain/search/outcome"
	"github.com/kailas-cloud/docnav/internal/repository/querystats"
	"github.com/kailas-cloud/docnav/internal/usecase/controller"
	healthuc "github.com/kailas-cloud/docnav/internal/usecase/health"
	"github.com/kailas-cloud/docnav/internal/usecase/page"
	"github.com/kailas-cloud/docnav/internal/usecase/router"
	searchuc "github.com/kailas-cloud/docnav/internal/usecase/search"
	"github.com/kailas-cloud/docnav/internal/usecase/session"
	"github.com/kailas-cloud/docnav/internal/usecase/switcher"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces, swapped for fakes in tests.
type searchUseCase interface {
	Search(ctx context.Context, code locale.Code, query string) searchuc.Result
}

type statsUseCase interface {
	Counts(ctx context.Context, day time.Time) (querystats.Day, error)
}

type pageUseCase interface {
	Resolve(path string) (page.Page, error)
}

// Client is the docnav SDK entry point.
type Client struct {
	store     db.Store // nil when statistics are disabled
	router    *router.Router
	searchSvc searchUseCase
	statsSvc  statsUseCase // nil when statistics are disabled
	pageSvc   pageUseCase
	sessions  sessionUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New creates a docnav Client. Without WithValkey or WithRedis it runs
// fully in memory and Stats returns ErrStatsDisabled.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o.apply(cfg)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	var store db.Store
	if cfg.driver != "" {
		store, err = createStore(cfg)
		if err != nil {
			return nil, err
		}
		if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			store.Close()
			return nil, fmt.Errorf("docnav: database not ready: %w", err)
		}
	}

	return wireClient(store, cfg, obs), nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	if len(cfg.addrs) == 0 || cfg.addrs[0] == "" {
		return nil, fmt.Errorf("docnav: %s address required", cfg.driver)
	}
	switch cfg.driver {
	case "valkey", "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("docnav: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("docnav: unknown driver %q", cfg.driver)
	}
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) *Client {
	c := &Client{
		store:   store,
		router:  router.New(cfg.excludePrefixes...),
		pageSvc: page.NewResolver(),
		sessions: session.New(session.Config{
			MaxSessions: cfg.maxSessions,
			IdleTTL:     cfg.sessionIdleTTL,
			Shortcut:    controller.Shortcut{Key: cfg.shortcutKey},
		}),
		obs: obs,
	}

	// Nil interfaces, not typed nil pointers, when statistics are off.
	var (
		recorder searchuc.StatsRecorder
		pinger   healthuc.DBPinger
	)
	if store != nil {
		stats := querystats.New(store, cfg.statsPrefix, cfg.statsTTL)
		recorder = stats
		pinger = store
		c.statsSvc = stats
	}
	c.searchSvc = searchuc.New(recorder)
	c.healthSvc = healthuc.New(catalogValidator{}, pinger)
	return c
}

// Close ends every search session and releases the database connection.
func (c *Client) Close() {
	if c.sessions != nil {
		c.sessions.Close()
	}
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if c.store == nil {
		return ErrStatsDisabled
	}
	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Route decides whether path is served as is or redirected to a locale-qualified path.
// rawQuery is carried over to the redirect target.
func (c *Client) Route(path, rawQuery string) RouteDecision {
	if c.router.Excluded(path) {
		return RouteDecision{Excluded: true}
	}
	d := c.router.Route(path, rawQuery)
	return RouteDecision{Redirect: d.IsRedirect(), Target: d.Target()}
}

// Switch rewrites path so it points at the same page in lang.
func (c *Client) Switch(path, lang string) (string, error) {
	code, err := parseLocale(lang)
	if err != nil {
		return "", err
	}
	return switcher.Switch(path, code), nil
}

// Search matches query against the catalog of lang. An empty lang means the default locale.
func (c *Client) Search(ctx context.Context, lang, query string) (res SearchResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("search", start, err) }()

	code, err := parseLocale(lang)
	if err != nil {
		return SearchResult{}, err
	}
	return searchResultFromDomain(code, c.searchSvc.Search(ctx, code, query)), nil
}

// Catalog lists every document of lang in catalog order.
func (c *Client) Catalog(lang string) ([]Document, error) {
	code, err := parseLocale(lang)
	if err != nil {
		return nil, err
	}
	return documentsFromDomain(catalog.For(code)), nil
}

// Locales lists the supported locales.
func (c *Client) Locales() []Locale {
	out := make([]Locale, 0, locale.NumCodes)
	for _, code := range locale.All() {
		out = append(out, Locale{
			Code:    code.String(),
			Tag:     code.Tag().String(),
			Name:    locale.Lookup(code).DisplayName,
			Default: code == locale.Default,
		})
	}
	return out
}

// Page resolves a locale-qualified path to a site page.
func (c *Client) Page(path string) (Page, error) {
	p, err := c.pageSvc.Resolve(path)
	if err != nil {
		return Page{}, fmt.Errorf("resolve page: %w", err)
	}
	return Page{
		Locale:   p.Locale.String(),
		Path:     p.Path,
		Title:    p.Title,
		Category: p.Category,
	}, nil
}

// Stats returns the search outcome counters of day (UTC).
func (c *Client) Stats(ctx context.Context, day time.Time) (res DayStats, err error) {
	start := time.Now()
	defer func() { c.obs.observe("stats", start, err) }()

	if c.statsSvc == nil {
		return DayStats{}, ErrStatsDisabled
	}
	d, err := c.statsSvc.Counts(ctx, day)
	if err != nil {
		return DayStats{}, fmt.Errorf("read stats: %w", err)
	}

	counts := make(map[string]map[Outcome]int64, len(d.Counts))
	for code, byOutcome := range d.Counts {
		m := make(map[Outcome]int64, len(byOutcome))
		for o, n := range byOutcome {
			m[Outcome(o)] = n
		}
		counts[code.String()] = m
	}
	return DayStats{Day: d.Day, Total: d.Total(), Counts: counts}, nil
}

// Sessions returns the search session service.
func (c *Client) Sessions() *SessionService {
	return &SessionService{svc: c.sessions, obs: c.obs}
}

// parseLocale maps a locale code to the domain; "" means the default locale.
func parseLocale(lang string) (locale.Code, error) {
	if lang == "" {
		return locale.Default, nil
	}
	code, ok := locale.Parse(lang)
	if !ok {
		return locale.Default, fmt.Errorf("%w: %q", domain.ErrUnsupportedLocale, lang)
	}
	return code, nil
}

func searchResultFromDomain(code locale.Code, r searchuc.Result) SearchResult {
	res := SearchResult{
		Query:     r.Query,
		Locale:    code.String(),
		Outcome:   Outcome(r.Outcome),
		Documents: documentsFromDomain(r.Docs),
	}
	dict := locale.Lookup(code)
	switch r.Outcome {
	case outcome.TooShort:
		res.Status = dict.TooShortHint
	case outcome.NoResults:
		res.Status = dict.NoResults(r.Query)
	}
	return res
}

func documentsFromDomain(docs []catalog.Descriptor) []Document {
	out := make([]Document, len(docs))
	for i, d := range docs {
		out[i] = Document{
			Title:       d.Title(),
			Description: d.Description(),
			Path:        d.Path(),
			Category:    d.Category(),
		}
	}
	return out
}

// catalogValidator adapts the package-level catalog check to the health service.
type catalogValidator struct{}

func (catalogValidator) Validate() error { return catalog.Validate() }
