// Package metrics defines and registers all custom Prometheus metrics for the
// board service. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "board"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// TokenRejectionsTotal counts credentials the resolver refused, by internal
// reason. Callers only ever see a single error kind; this counter is the one
// place the distinction survives.
// Label:
//   - reason: "missing", "malformed", "bad_signature", "expired"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of rejected bearer tokens, by internal reason.",
	},
	[]string{"reason"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "user_not_found", "invalid_password"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SignupsTotal counts signup attempts.
// Label:
//   - result: "ok", "duplicate", "bad_admin_token"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// ── Mutation metrics ──────────────────────────────────────────────────────────

// MutationsTotal counts guarded mutations on owned resources.
// Labels:
//   - resource: "board" or "comment"
//   - action:   "create", "update", "delete"
//   - result:   "ok", "denied", "not_found", "error"
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of resource mutations, by resource, action and result.",
	},
	[]string{"resource", "action", "result"},
)

// ── Cache metrics ─────────────────────────────────────────────────────────────

// BoardCacheTotal counts board cache lookups.
// Label:
//   - result: "hit" or "miss"
var BoardCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of board cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks events waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditWriteDuration measures how long persisting one audit entry takes.
var AuditWriteDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "audit_write_duration_seconds",
		Help:      "Duration of a single audit trail write.",
		Buckets:   prometheus.DefBuckets,
	},
)
