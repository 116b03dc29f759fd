package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	eventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pickup_agent",
			Subsystem: "kafka_consumer",
			Name:      "events_processed_total",
			Help:      "Total number of lifecycle events that triggered a refresh",
		},
	)

	eventsSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pickup_agent",
			Subsystem: "kafka_consumer",
			Name:      "events_skipped_total",
			Help:      "Total number of events published by this agent itself",
		},
	)

	eventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pickup_agent",
			Subsystem: "kafka_consumer",
			Name:      "events_dlq_total",
			Help:      "Total number of malformed events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pickup_agent",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)
)

var (
	operationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pickup_agent",
			Subsystem: "api",
			Name:      "operations_total",
			Help:      "Total number of lifecycle operations requested through the local API",
		},
		[]string{"role", "operation", "status"},
	)

	operationsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "pickup_agent",
			Subsystem: "api",
			Name:      "operations_in_progress",
			Help:      "Number of lifecycle operations currently being handled",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		eventsProcessed,
		eventsSkipped,
		eventsDLQ,
		commitErrors,

		operationsTotal,
		operationsInProgress,
	)
}
