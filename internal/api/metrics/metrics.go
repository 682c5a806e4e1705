// Package metrics defines and registers all custom Prometheus metrics for the
// store management API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "store"

// RegistrationsTotal counts user registrations by outcome.
// Label:
//   - result: "success", "duplicate", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts authentication attempts by outcome.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of authentication attempts, by result.",
	},
	[]string{"result"},
)

// PurchasesTotal counts stock purchase attempts.
// Label:
//   - result: "success", "out_of_stock", "not_found", or "error"
var PurchasesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_total",
		Help:      "Total number of purchase attempts, by result.",
	},
	[]string{"result"},
)

// PurchaseDuration measures how long a purchase takes end-to-end, including
// the conditional stock decrement at the store.
var PurchaseDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "purchase_duration_seconds",
		Help:      "Duration of purchase handling from request to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
)

// RestockAlertsTotal counts low-stock alerts raised by purchases.
var RestockAlertsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "restock_alerts_total",
		Help:      "Total number of low-stock alerts enqueued.",
	},
)

// RestockQueueDepth tracks the number of alerts waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var RestockQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "restock_queue_depth",
		Help:      "Current number of alerts pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
