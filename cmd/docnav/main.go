package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docnav/internal/config"
	"github.com/kailas-cloud/docnav/internal/db"
	dbRedis "github.com/kailas-cloud/docnav/internal/db/redis"
	"github.com/kailas-cloud/docnav/internal/domain/catalog"
	logpkg "github.com/kailas-cloud/docnav/internal/logger"
	"github.com/kailas-cloud/docnav/internal/metrics"
	"github.com/kailas-cloud/docnav/internal/repository/querystats"
	chiTransport "github.com/kailas-cloud/docnav/internal/transport/chi"
	"github.com/kailas-cloud/docnav/internal/usecase/controller"
	healthuc "github.com/kailas-cloud/docnav/internal/usecase/health"
	"github.com/kailas-cloud/docnav/internal/usecase/page"
	"github.com/kailas-cloud/docnav/internal/usecase/router"
	searchuc "github.com/kailas-cloud/docnav/internal/usecase/search"
	"github.com/kailas-cloud/docnav/internal/usecase/session"
	"github.com/kailas-cloud/docnav/internal/version"
)

func main() {
	// Local secrets feed ${VAR} expansion in the config file
	envFileErr := godotenv.Load()

	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	if envFileErr != nil {
		logger.Debug("No .env file loaded", zap.Error(envFileErr))
	}

	logger.Info("Starting docnav server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Int("redirect_status", cfg.Router.RedirectStatus),
		zap.Bool("stats_enabled", cfg.Database.Enabled()),
	)

	if err := catalog.Validate(); err != nil {
		logger.Fatal("Invalid document catalog", zap.Error(err))
	}

	// Register navigation metrics explicitly (no init())
	metrics.RegisterNavigationMetrics()

	// Optional stats store. Pass nil interfaces (not typed nil pointers!) when disabled.
	var (
		dbPinger    healthuc.DBPinger
		statsWriter searchuc.StatsRecorder
		statsReader chiTransport.StatsReader
	)
	if cfg.Database.Enabled() {
		var store db.Store
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Password: cfg.Database.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create database store", zap.Error(err))
		}
		defer store.Close()

		readyTimeout := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
		if err := store.WaitForReady(context.Background(), readyTimeout); err != nil {
			logger.Fatal("Database not ready", zap.Error(err), zap.String("driver", cfg.Database.Driver))
		}
		logger.Info("Connected to database",
			zap.String("driver", cfg.Database.Driver),
			zap.Strings("addrs", cfg.Database.Addrs),
		)

		stats := querystats.New(store, cfg.Stats.KeyPrefix, time.Duration(cfg.Stats.TTLHours)*time.Hour)
		dbPinger = store
		statsWriter = stats
		statsReader = stats
	}

	if len(cfg.Auth.APIKeys) == 0 {
		logger.Warn("No API keys configured, admin endpoints are unauthenticated")
	}

	// Use case services
	searchSvc := searchuc.New(statsWriter)
	sessions := session.New(session.Config{
		MaxSessions: cfg.Search.MaxSessions,
		IdleTTL:     time.Duration(cfg.Search.SessionIdleTTLSec) * time.Second,
		Shortcut:    controller.Shortcut{Key: cfg.Search.ShortcutKey},
	})
	defer sessions.Close()
	pages := page.NewResolver()
	healthSvc := healthuc.New(catalogValidator{}, dbPinger)

	server := chiTransport.NewServer(searchSvc, sessions, pages, healthSvc, statsReader, logger)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"Location", "X-Request-ID", "Content-Language"},
	})

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(corsHandler.Handler)
	r.Use(metrics.Middleware())
	r.Use(chiTransport.LocaleMiddleware(router.New(cfg.Router.ExcludePrefixes...), cfg.Router.RedirectStatus))
	server.Mount(r,
		chi.Middlewares{chiTransport.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst)},
		chi.Middlewares{chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys)},
	)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully", zap.Int("sessions_open", sessions.Len()))
}

// catalogValidator adapts catalog.Validate to health.CatalogValidator.
type catalogValidator struct{}

func (catalogValidator) Validate() error { return catalog.Validate() }

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
