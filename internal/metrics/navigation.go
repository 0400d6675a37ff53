package metrics

import "github.com/prometheus/client_golang/prometheus"

// Navigation Prometheus metrics.
var (
	LocaleRedirectsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "docnav",
			Name:      "locale_redirects_total",
			Help:      "Requests redirected to the default locale",
		},
	)

	SearchQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docnav",
			Name:      "search_queries_total",
			Help:      "Catalog searches by locale and outcome",
		},
		[]string{"locale", "outcome"}, // outcome: too_short / no_results / results
	)

	SearchSessionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "docnav",
			Name:      "search_sessions_active",
			Help:      "Live search sessions",
		},
	)

	SearchShortcutOpensTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "docnav",
			Name:      "search_shortcut_opens_total",
			Help:      "Search modal opens triggered by the keyboard shortcut",
		},
	)

	SearchSelectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docnav",
			Name:      "search_selections_total",
			Help:      "Search results selected, by locale",
		},
		[]string{"locale"},
	)
)

var navMetricsRegistered bool

// RegisterNavigationMetrics registers the navigation metrics. Must be called once from main.
func RegisterNavigationMetrics() {
	if navMetricsRegistered {
		return
	}
	prometheus.MustRegister(LocaleRedirectsTotal)
	prometheus.MustRegister(SearchQueriesTotal)
	prometheus.MustRegister(SearchSessionsActive)
	prometheus.MustRegister(SearchShortcutOpensTotal)
	prometheus.MustRegister(SearchSelectionsTotal)
	navMetricsRegistered = true
}
