package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rexfit"

var (
	// Operations counts tracker mutations.
	// Labels: op (toggle_exercise, add_water, buy, ...), status (ok, rejected, error)
	Operations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tracker",
		Name:      "operations_total",
		Help:      "Tracker operations by name and outcome",
	}, []string{"op", "status"})

	// PersistDuration measures snapshot writes.
	// Labels: status (ok, error)
	PersistDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "storage",
		Name:      "persist_duration_seconds",
		Help:      "Snapshot write latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"status"})

	SnapshotBytes = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "storage",
		Name:      "snapshot_bytes",
		Help:      "Size of the last persisted snapshot",
	})

	// NotificationsSent counts delivered reminders.
	// Labels: window (morning, afternoon, evening, welcome)
	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "notify",
		Name:      "sent_total",
		Help:      "Notifications delivered to views",
	}, []string{"window"})

	Subscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "notify",
		Name:      "subscribers",
		Help:      "Connected WebSocket views",
	})

	Wallet = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "tracker",
		Name:      "wallet_bones",
		Help:      "Current wallet balance",
	})
)
