// Package metrics defines and registers all custom Prometheus metrics for
// the room booking API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default registry at init time; the
// router exposes them on /metrics alongside the echoprometheus HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking"

// BookingsCreatedTotal counts successfully created bookings.
// Label:
//   - status: the initial booking status ("Pending" or "Confirmed")
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by initial status.",
	},
	[]string{"status"},
)

// BookingConflictsTotal counts create/update attempts rejected because the
// requested slot overlapped an existing booking.
var BookingConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_conflicts_total",
		Help:      "Total number of requests rejected with a scheduling conflict.",
	},
)

// ValidationFailuresTotal counts requests rejected by the validation engine.
// Label:
//   - kind: "missing_field", "invalid_field" or "duplicate_field"
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of requests rejected by validation, by failure kind.",
	},
	[]string{"kind"},
)

// RecordsDeletedTotal counts deleted records.
// Label:
//   - entity: "user", "room" or "booking"
var RecordsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_deleted_total",
		Help:      "Total number of records deleted, by entity.",
	},
	[]string{"entity"},
)
