package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	gochi "github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docnav/internal/domain"
	"github.com/kailas-cloud/docnav/internal/domain/catalog"
	"github.com/kailas-cloud/docnav/internal/domain/locale"
	"github.com/kailas-cloud/docnav/internal/domain/search/outcome"
	logpkg "github.com/kailas-cloud/docnav/internal/logger"
	"github.com/kailas-cloud/docnav/internal/repository/querystats"
	healthuc "github.com/kailas-cloud/docnav/internal/usecase/health"
	"github.com/kailas-cloud/docnav/internal/usecase/page"
	"github.com/kailas-cloud/docnav/internal/usecase/router"
	searchuc "github.com/kailas-cloud/docnav/internal/usecase/search"
	"github.com/kailas-cloud/docnav/internal/usecase/session"
	"github.com/kailas-cloud/docnav/internal/usecase/switcher"
)

const dayLayout = "2006-01-02"

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// StatsReader reads daily query statistics.
type StatsReader interface {
	Counts(ctx context.Context, day time.Time) (querystats.Day, error)
}

// Server serves the page routes and the navigation API.
type Server struct {
	search        *searchuc.Service
	sessions      *session.Registry
	pages         *page.Resolver
	health        *healthuc.Service
	stats         StatsReader
	logger        *zap.Logger
	now           func() time.Time
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. stats can be nil when the stats store is disabled.
func NewServer(
	search *searchuc.Service,
	sessions *session.Registry,
	pages *page.Resolver,
	health *healthuc.Service,
	stats StatsReader,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:   search,
		sessions: sessions,
		pages:    pages,
		health:   health,
		stats:    stats,
		logger:   logger,
		now:      time.Now,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, CodeBadRequest),
		sentinelHandler(domain.ErrUnsupportedLocale, http.StatusBadRequest, CodeUnsupportedLocale),
		sentinelHandler(domain.ErrPageNotFound, http.StatusNotFound, CodePageNotFound),
		sentinelHandler(domain.ErrSessionNotFound, http.StatusNotFound, CodeSessionNotFound),
		sentinelHandler(domain.ErrTooManySessions, http.StatusServiceUnavailable, CodeTooManySessions),
		sentinelHandler(domain.ErrSearchClosed, http.StatusConflict, CodeSearchClosed),
		sentinelHandler(domain.ErrResultNotFound, http.StatusNotFound, CodeResultNotFound),
		sentinelHandler(domain.ErrAlreadyMounted, http.StatusConflict, CodeAlreadyMounted),
		sentinelHandler(domain.ErrStatsDisabled, http.StatusNotImplemented, CodeStatsDisabled),
		sentinelHandler(domain.ErrRateLimited, http.StatusTooManyRequests, CodeRateLimited),
	}
	return s
}

// Mount registers every route on r. api wraps /api/v1; admin additionally wraps /api/v1/admin.
func (s *Server) Mount(r gochi.Router, api, admin gochi.Middlewares) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r gochi.Router) {
		r.Use(api...)

		r.Get("/locales", s.ListLocales)
		r.Get("/search", s.Search)
		r.Get("/locale/switch", s.SwitchLocale)

		r.Post("/sessions", s.CreateSession)
		r.Route("/sessions/{id}", func(r gochi.Router) {
			r.Get("/", s.GetSession)
			r.Delete("/", s.DeleteSession)
			r.Post("/open", s.OpenSession)
			r.Post("/close", s.CloseSession)
			r.Put("/query", s.SetSessionQuery)
			r.Post("/keys", s.DispatchKey)
			r.Post("/select", s.SelectResult)
		})

		r.Group(func(r gochi.Router) {
			r.Use(admin...)
			r.Get("/admin/stats", s.GetStats)
		})
	})

	r.Get("/{lang}", s.GetPage)
	r.Get("/{lang}/*", s.GetPage)
}

// GetPage handles GET /{lang} and GET /{lang}/*.
func (s *Server) GetPage(w http.ResponseWriter, r *http.Request) {
	p, err := s.pages.Resolve(r.URL.Path)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	dict := locale.Lookup(p.Locale)
	prefix := p.Locale.Prefix()
	resp := PageResponse{
		Site:     page.SiteName,
		Locale:   p.Locale.String(),
		Path:     p.Path,
		Title:    p.Title,
		Category: p.Category,
		Nav: []NavLink{
			{Label: dict.Docs, Path: prefix + "/docs"},
			{Label: dict.About, Path: prefix + "/about"},
			{Label: dict.Contact, Path: prefix + "/contact"},
			{Label: dict.Download, Path: prefix + "/download"},
			{Label: dict.License, Path: prefix + "/license"},
		},
		Alternates: make(map[string]string, locale.NumCodes),
		Search: SearchLabels{
			Button:      dict.SearchButton,
			Title:       dict.SearchTitle,
			Placeholder: dict.SearchPlaceholder,
		},
	}
	for _, code := range locale.All() {
		resp.Alternates[code.String()] = switcher.Switch(p.Path, code)
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListLocales handles GET /api/v1/locales.
func (s *Server) ListLocales(w http.ResponseWriter, _ *http.Request) {
	items := make([]LocaleItem, 0, locale.NumCodes)
	for _, code := range locale.All() {
		items = append(items, LocaleItem{
			Code:    code.String(),
			Tag:     code.Tag().String(),
			Name:    locale.Lookup(code).DisplayName,
			Default: code == locale.Default,
		})
	}
	writeJSON(w, http.StatusOK, LocaleListResponse{
		Items:   items,
		Default: locale.Default.String(),
	})
}

// Search handles GET /api/v1/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	var q string
	if err := runtime.BindQueryParameter("form", true, true, "q", r.URL.Query(), &q); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid query parameter q: "+err.Error())
		return
	}
	code, err := queryLocale(r, "lang")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	res := s.search.Search(r.Context(), code, q)

	dict := locale.Lookup(code)
	resp := SearchResponse{
		Query:   res.Query,
		Locale:  code.String(),
		Outcome: string(res.Outcome),
		Items:   documentsToItems(res.Docs),
		Total:   len(res.Docs),
	}
	switch res.Outcome {
	case outcome.TooShort:
		resp.Status = dict.TooShortHint
	case outcome.NoResults:
		resp.Status = dict.NoResults(res.Query)
	}
	writeJSON(w, http.StatusOK, resp)
}

// SwitchLocale handles GET /api/v1/locale/switch.
func (s *Server) SwitchLocale(w http.ResponseWriter, r *http.Request) {
	var path, to string
	if err := runtime.BindQueryParameter("form", true, true, "path", r.URL.Query(), &path); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid query parameter path: "+err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, true, "to", r.URL.Query(), &to); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid query parameter to: "+err.Error())
		return
	}
	target, ok := locale.Parse(to)
	if !ok {
		s.handleDomainError(w, r, fmt.Errorf("%w: %q", domain.ErrUnsupportedLocale, to))
		return
	}

	switched := switcher.Switch(path, target)
	_, resolveErr := s.pages.Resolve(switched)

	from := ""
	if code, ok := router.LocaleOf(path); ok {
		from = code.String()
	}
	writeJSON(w, http.StatusOK, SwitchResponse{
		From:     from,
		To:       target.String(),
		Path:     switched,
		Resolves: resolveErr == nil,
	})
}

// GetStats handles GET /api/v1/admin/stats.
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		s.handleDomainError(w, r, domain.ErrStatsDisabled)
		return
	}

	var dayParam *string
	if err := runtime.BindQueryParameter("form", true, false, "day", r.URL.Query(), &dayParam); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid query parameter day: "+err.Error())
		return
	}
	day := s.now().UTC()
	if dayParam != nil {
		parsed, err := time.Parse(dayLayout, *dayParam)
		if err != nil {
			writeError(w, http.StatusBadRequest, CodeBadRequest, "day must be formatted as YYYY-MM-DD")
			return
		}
		day = parsed
	}

	d, err := s.stats.Counts(r.Context(), day)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	counts := make(map[string]map[string]int64, len(d.Counts))
	for code, byOutcome := range d.Counts {
		m := make(map[string]int64, len(byOutcome))
		for o, n := range byOutcome {
			m[string(o)] = n
		}
		counts[code.String()] = m
	}
	writeJSON(w, http.StatusOK, StatsResponse{
		Day:    d.Day,
		Total:  d.Total(),
		Counts: counts,
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	// Degraded (stats store down) still serves traffic.
	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// queryLocale binds an optional locale query parameter; absent means the default locale.
func queryLocale(r *http.Request, name string) (locale.Code, error) {
	var raw *string
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &raw); err != nil {
		return locale.Default, fmt.Errorf("%w: %s: %w", domain.ErrInvalidRequest, name, err)
	}
	if raw == nil {
		return locale.Default, nil
	}
	code, ok := locale.Parse(*raw)
	if !ok {
		return locale.Default, fmt.Errorf("%w: %q", domain.ErrUnsupportedLocale, *raw)
	}
	return code, nil
}

func documentsToItems(docs []catalog.Descriptor) []DocumentItem {
	items := make([]DocumentItem, len(docs))
	for i, d := range docs {
		items[i] = DocumentItem{
			Title:       d.Title(),
			Description: d.Description(),
			Path:        d.Path(),
			Category:    d.Category(),
		}
	}
	return items
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidRequest,
		domain.ErrUnsupportedLocale,
		domain.ErrPageNotFound,
		domain.ErrSessionNotFound,
		domain.ErrTooManySessions,
		domain.ErrSearchClosed,
		domain.ErrResultNotFound,
		domain.ErrAlreadyMounted,
		domain.ErrStatsDisabled,
		domain.ErrRateLimited,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logpkg.FromContext(r.Context())
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			logger.Debug("domain error", zap.Error(err))
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
