package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the reconciliation engine.
type Metrics struct {
	// Recalculation metrics
	RecalculationsRun      prometheus.Counter
	RecalculationsFailed   *prometheus.CounterVec
	RecalculationDuration  prometheus.Histogram
	EventsClassified       *prometheus.CounterVec
	AllocationsCreated     prometheus.Counter
	AllocationsPurged      prometheus.Counter
	LockContentionObserved prometheus.Counter

	// Pending-balance metrics
	PendingQueries prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		RecalculationsRun: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cartera_recalculations_total",
			Help: "Total number of counterparty recalculations run",
		}),
		RecalculationsFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cartera_recalculations_failed_total",
				Help: "Total number of failed recalculations by reason",
			},
			[]string{"reason"},
		),
		RecalculationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "cartera_recalculation_duration_seconds",
			Help:    "Duration of counterparty recalculations",
			Buckets: prometheus.DefBuckets,
		}),
		EventsClassified: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cartera_events_classified_total",
				Help: "Total documents classified into reconciliation events by role",
			},
			[]string{"role"},
		),
		AllocationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cartera_allocations_created_total",
			Help: "Total allocation records created",
		}),
		AllocationsPurged: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cartera_allocations_purged_total",
			Help: "Total allocation records purged before rebuild",
		}),
		LockContentionObserved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cartera_lock_contention_total",
			Help: "Total recalculations rejected by the counterparty lock",
		}),
		PendingQueries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cartera_pending_queries_total",
			Help: "Total pending-balance queries served",
		}),
	}
}
