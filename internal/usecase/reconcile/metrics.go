package reconcile

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reconcileActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redfish_sync_reconcile_actions_total",
			Help: "Reconciliation outcomes per schema and action",
		},
		[]string{"schema", "action"},
	)

	reconcileSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "redfish_sync_reconcile_seconds",
			Help:    "Time to reconcile one resource, network included",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"schema"},
	)

	consumedChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redfish_sync_consumed_changes_total",
			Help: "Local values changed from the remote side",
		},
		[]string{"schema"},
	)
)

func recordResult(res *Result, start time.Time) {
	reconcileActions.WithLabelValues(res.Schema, res.Action.String()).Inc()
	reconcileSeconds.WithLabelValues(res.Schema).Observe(time.Since(start).Seconds())
}
