// Package metrics defines and registers all custom Prometheus metrics for the
// job board API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default registry at package init; the router
// exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobboard"

// ── Search metrics ────────────────────────────────────────────────────────────

// SearchesTotal counts search invocations.
// Label:
//   - cache: "hit", "miss", or "bypass" (unfiltered searches are not cached)
var SearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of posting searches, labelled by cache outcome.",
	},
	[]string{"cache"},
)

// SearchDuration measures how long a search takes end-to-end.
var SearchDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_duration_seconds",
		Help:      "Duration of posting searches from request to response.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts accounts created, by role.
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// ── Application metrics ───────────────────────────────────────────────────────

// ApplicationsReceivedTotal counts applications that completed processing.
// Label:
//   - category: the posting's category label
var ApplicationsReceivedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_received_total",
		Help:      "Total number of job applications successfully processed.",
	},
	[]string{"category"},
)

// ApplicationsErrorsTotal counts applications that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "job_not_found", "job_expired", "insert_failed")
var ApplicationsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_errors_total",
		Help:      "Total number of job applications that failed processing.",
	},
	[]string{"reason"},
)

// ApplicationsDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new application, processed)
var ApplicationsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_dedup_total",
		Help:      "Total number of application dedup checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
