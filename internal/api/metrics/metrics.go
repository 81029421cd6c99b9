// Package metrics defines all custom Prometheus metrics for the newswire
// API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default Prometheus registry at import
// time via promauto and exposed on /metrics by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "newswire"

// ── Gate metrics ──────────────────────────────────────────────────────────────

// AuthDecisionsTotal counts credential verification outcomes at the
// request gate.
// Label:
//   - result: "admitted", "rejected_missing", "rejected_format",
//     "rejected_malformed", "rejected_invalid", or "error"
var AuthDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_decisions_total",
		Help:      "Total number of API key verification decisions, by result.",
	},
	[]string{"result"},
)

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestsTotal counts handled HTTP requests.
// Labels:
//   - method: HTTP method
//   - route: registered route pattern (e.g. "/v1/articles/{id}")
//   - status: numeric response status (e.g. "200")
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled, by method, route and status.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration measures wall time per request.
// Label:
//   - route: registered route pattern
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP request handling.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"route"},
)

// ── Content metrics ───────────────────────────────────────────────────────────

// ArticlesCreatedTotal counts newly published articles.
// Label:
//   - tagged: "topic", "source", "both", or "none"
var ArticlesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_created_total",
		Help:      "Total number of articles created, by relation tagging.",
	},
	[]string{"tagged"},
)
