// Package metrics defines and registers all custom Prometheus metrics for the
// ordering API. It is the single source of truth for metric names, labels,
// and help strings. HTTP-level metrics (latency, status codes) come from the
// echoprometheus middleware; the counters here track domain events.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ordering"

// LoginsTotal counts successful logins.
// Label:
//   - role: "admin" or "user"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by role.",
	},
	[]string{"role"},
)

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "missing_token", "invalid_token", "unknown_email", "password", "role", "forbidden"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected authentication or authorization attempts.",
	},
	[]string{"reason"},
)

// OrdersCreatedTotal counts newly created orders.
// Label:
//   - order_type: "delivery" or "pickup"
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created, by order type.",
	},
	[]string{"order_type"},
)

// UploadsStoredTotal counts image uploads accepted by the storage layer.
var UploadsStoredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_stored_total",
		Help:      "Total number of uploaded images stored.",
	},
)
