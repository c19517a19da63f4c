// Package metrics defines and registers all custom Prometheus metrics for the
// accounts API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accounts"

// LoginsTotal counts authentication attempts.
// Labels:
//   - role: the role of the authenticated user, or "unknown" on failure
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// SignupsTotal counts created accounts by role.
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// AccessDeniedTotal counts guard denials.
// Label:
//   - endpoint: the logical endpoint that refused entry (e.g. "admin_dashboard")
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of role guard denials, by endpoint.",
	},
	[]string{"endpoint"},
)

// UserMutationsTotal counts admin CRUD operations that completed.
// Label:
//   - operation: "create", "update", or "delete"
var UserMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_mutations_total",
		Help:      "Total number of completed account mutations, by operation.",
	},
	[]string{"operation"},
)

// AuditQueueDepth tracks pending audit events per dispatcher worker.
// Label:
//   - worker_id: index of the sharded worker owning the queue
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Number of audit events waiting in each dispatcher worker queue.",
	},
	[]string{"worker_id"},
)

// SelfDeleteRefusedTotal counts refused self-delete attempts.
var SelfDeleteRefusedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "self_delete_refused_total",
		Help:      "Total number of admin delete requests refused by the self-delete guard.",
	},
)
