package task

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tasksSeen = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redfish_sync_tasks_seen_total",
			Help: "Tasks read from the task collection, by TaskState",
		},
		[]string{"state"},
	)

	tasksHandled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redfish_sync_tasks_handled_total",
			Help: "Tasks handed to a handler, by the state written back",
		},
		[]string{"state"},
	)

	tasksTracked = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "redfish_sync_tasks_tracked",
			Help: "Task entries currently tracked by the dispatcher",
		},
	)
)
