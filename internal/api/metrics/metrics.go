// Package metrics defines and registers all custom Prometheus metrics for the
// sweet shop API. It is the single source of truth for metric names, labels,
// and help strings. Registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sweetshop"

// SweetsCreatedTotal counts newly created sweets by category.
var SweetsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sweets_created_total",
		Help:      "Total number of sweets created, by category.",
	},
	[]string{"category"},
)

// PurchasesTotal counts purchase attempts.
// Label:
//   - result: "ok" or "insufficient_stock"
var PurchasesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_total",
		Help:      "Total number of purchase attempts, by result.",
	},
	[]string{"result"},
)

// RestocksTotal counts successful restocks.
var RestocksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "restocks_total",
		Help:      "Total number of successful restocks.",
	},
)

// SweetsDeletedTotal counts deleted sweets.
var SweetsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sweets_deleted_total",
		Help:      "Total number of sweets deleted.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "failed" or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
