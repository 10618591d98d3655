package app

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	passesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "redfish_sync_passes_total",
		Help: "Sync passes by outcome.",
	}, []string{"outcome"})

	passDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "redfish_sync_pass_seconds",
		Help:    "Duration of a sync pass.",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
	})

	// Once raised it stays raised until the process restarts.
	rebootRequired = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "redfish_sync_reboot_required",
		Help: "1 once a consumed remote value changed the local configuration.",
	})
)

func recordPass(report *Report, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	passesTotal.WithLabelValues(outcome).Inc()
	passDuration.Observe(time.Since(start).Seconds())

	if report.RebootRequired {
		rebootRequired.Set(1)
	}
}
