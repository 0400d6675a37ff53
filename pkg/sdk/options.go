package docnav

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver   string // "valkey" or "redis"; empty disables statistics
	addrs    []string
	password string

	excludePrefixes []string
	shortcutKey     string
	maxSessions     int
	sessionIdleTTL  time.Duration

	statsPrefix string
	statsTTL    time.Duration

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

func defaultConfig() *clientConfig {
	return &clientConfig{
		excludePrefixes: []string{"health", "metrics"},
		shortcutKey:     "k",
		maxSessions:     1000,
		sessionIdleTTL:  30 * time.Minute,
		statsPrefix:     "docnav:",
		statsTTL:        35 * 24 * time.Hour,
	}
}

// WithValkey stores daily query statistics in a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis stores daily query statistics in a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithExcludePrefixes replaces the extra path prefixes the router never redirects.
// Default: health, metrics.
func WithExcludePrefixes(prefixes ...string) Option {
	return optionFunc(func(c *clientConfig) {
		c.excludePrefixes = prefixes
	})
}

// WithShortcutKey sets the key that, with Meta or Ctrl, opens a search session.
// Default: "k".
func WithShortcutKey(key string) Option {
	return optionFunc(func(c *clientConfig) {
		c.shortcutKey = key
	})
}

// WithMaxSessions caps live search sessions. Default: 1000.
func WithMaxSessions(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxSessions = n
	})
}

// WithSessionIdleTTL sets how long an untouched session survives. Default: 30m.
func WithSessionIdleTTL(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.sessionIdleTTL = d
	})
}

// WithStatsRetention sets the key prefix and TTL of statistics counters.
func WithStatsRetention(prefix string, ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.statsPrefix = prefix
		c.statsTTL = ttl
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
