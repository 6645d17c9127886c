// Package metrics exposes Prometheus instrumentation for the transmission log.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransmissionsGenerated counts entries produced by the regeneration gate.
	TransmissionsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "beacon_transmissions_generated_total",
			Help: "Total number of transmission entries generated",
		},
	)

	// RefreshAttempts counts refresh calls by trigger and outcome.
	RefreshAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beacon_refresh_attempts_total",
			Help: "Total number of refresh attempts",
		},
		[]string{"trigger", "outcome"}, // trigger: request, scheduler; outcome: generated, not_due
	)

	// StorePersistFailures counts failed writes of the store document.
	StorePersistFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "beacon_store_persist_failures_total",
			Help: "Total number of failed transmission store writes",
		},
	)

	// StoreRepairs counts startups that replaced the store with seed content, by reason.
	StoreRepairs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beacon_store_repairs_total",
			Help: "Total number of times the store was replaced by seed content",
		},
		[]string{"reason"},
	)

	// TransmissionEntries reports the current number of retained entries.
	TransmissionEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "beacon_transmission_entries",
			Help: "Current number of entries in the transmission log",
		},
	)

	// LastGeneratedTimestamp reports last_generated_at in epoch seconds.
	LastGeneratedTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "beacon_transmission_last_generated_timestamp_seconds",
			Help: "Epoch seconds of the most recent generation",
		},
	)
)

// Refresh triggers.
const (
	TriggerRequest   = "request"
	TriggerScheduler = "scheduler"
	TriggerStartup   = "startup"
)

// RecordRefresh records a refresh attempt outcome.
func RecordRefresh(trigger string, generated bool) {
	outcome := "not_due"
	if generated {
		outcome = "generated"
		TransmissionsGenerated.Inc()
	}
	RefreshAttempts.WithLabelValues(trigger, outcome).Inc()
}

// ObserveState updates the gauges from a state summary.
func ObserveState(entries int, lastGeneratedAt int64) {
	TransmissionEntries.Set(float64(entries))
	LastGeneratedTimestamp.Set(float64(lastGeneratedAt))
}
