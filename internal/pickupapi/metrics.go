package pickupapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pickup_agent",
		Subsystem: "pickup_api",
		Name:      "requests_total",
		Help:      "Total number of requests to the pickups collaborator.",
	}, []string{"op", "result"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pickup_agent",
		Subsystem: "pickup_api",
		Name:      "request_duration_seconds",
		Help:      "Latency of requests to the pickups collaborator.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op"})

	recordsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pickup_agent",
		Subsystem: "pickup_api",
		Name:      "invalid_records_total",
		Help:      "Records dropped from list responses because they failed validation.",
	})
)
