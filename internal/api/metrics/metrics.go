// Package metrics defines all custom Prometheus metrics for the storefront
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics auto-register with the default registry at import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "not_found"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts account registrations.
// Label:
//   - result: "success" or "duplicate"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogMutationsTotal counts catalog writes.
// Label:
//   - op: "add", "remove" or "update_stock"
var CatalogMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_mutations_total",
		Help:      "Total number of catalog mutations, by operation.",
	},
	[]string{"op"},
)

// ── Cart metrics ──────────────────────────────────────────────────────────────

// CartOpsTotal counts cart operations.
// Label:
//   - op: "add", "update_quantity", "remove" or "clear"
var CartOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_ops_total",
		Help:      "Total number of cart operations, by operation.",
	},
	[]string{"op"},
)

// CheckoutsTotal counts completed simulated purchases (replays excluded).
var CheckoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_total",
		Help:      "Total number of completed checkouts.",
	},
)

// CheckoutValue observes the gross total of each completed checkout, in pesos.
var CheckoutValue = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "checkout_value_pesos",
		Help:      "Gross checkout totals in Chilean pesos.",
		Buckets:   prometheus.ExponentialBuckets(1000, 2, 8), // 1000 … 128000
	},
)

// ── Contact metrics ───────────────────────────────────────────────────────────

// ContactSubmissionsTotal counts contact-form submissions.
// Label:
//   - category: the submission category (e.g. "reclamo")
var ContactSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_submissions_total",
		Help:      "Total number of contact submissions, by category.",
	},
	[]string{"category"},
)
