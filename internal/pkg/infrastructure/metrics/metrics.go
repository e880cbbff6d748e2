package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ArmedTriggers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "alarmmgmt_armed_triggers",
		Help: "The current number of armed wake up triggers",
	})
	AlarmsFired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "alarmmgmt_alarms_fired_total",
		Help: "The total number of alarm firings",
	})
	AlarmsSnoozed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "alarmmgmt_alarms_snoozed_total",
		Help: "The total number of snoozed firings",
	})
	AlarmsDismissed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "alarmmgmt_alarms_dismissed_total",
		Help: "The total number of dismissed firings",
	})
	RearmFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "alarmmgmt_rearm_failures_total",
		Help: "The total number of failures to re-arm a recurring alarm after a firing",
	})
)
