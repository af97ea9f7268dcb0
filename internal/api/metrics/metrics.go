// Package metrics defines the custom Prometheus metrics of the correction
// notices API. Metrics register with the default registry on package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "correction_notices"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts token requests.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of token requests, by result.",
	},
	[]string{"result"},
)

// TokenResolutionsTotal counts bearer tokens presented to protected routes.
// Label:
//   - result: "ok", "rejected" or "error"
var TokenResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_resolutions_total",
		Help:      "Total number of bearer token resolutions, by result.",
	},
	[]string{"result"},
)

// AuthorizationDeniedTotal counts requests refused by the access policy.
// Labels:
//   - resource: record type (e.g. "driver")
//   - operation: "create", "update" or "delete"
//   - reason: "unauthenticated" or "forbidden"
var AuthorizationDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_denied_total",
		Help:      "Total number of requests denied by the access policy.",
	},
	[]string{"resource", "operation", "reason"},
)

// ── Record metrics ────────────────────────────────────────────────────────────

// RecordMutationsTotal counts successful record mutations.
// Labels:
//   - resource: record type
//   - operation: "create", "update" or "delete"
var RecordMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "record_mutations_total",
		Help:      "Total number of successful record mutations, by resource and operation.",
	},
	[]string{"resource", "operation"},
)
