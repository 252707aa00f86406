// Package metrics defines and registers all custom Prometheus metrics for the
// notes API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at import time via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "notes"

// AuthAttemptsTotal counts login attempts.
// Label:
//   - outcome: "success", "not_found", "bad_password", or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// SessionsActive tracks sessions opened minus sessions explicitly closed in
// this process. TTL expiries, restarts, and sessions shared with other
// processes are not observable here, so the value is an approximation.
var SessionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Approximate count of sessions opened by login and not yet explicitly logged out, per process.",
	},
)

// NoteOpsTotal counts note operations that reached the persistence layer.
// Labels:
//   - op: "list", "add", "update", "update_status", "delete"
//   - result: "ok" or "error"
var NoteOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "note_ops_total",
		Help:      "Total number of note operations, by operation and result.",
	},
	[]string{"op", "result"},
)
