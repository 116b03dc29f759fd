package poller

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pollsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pickup_agent",
		Subsystem: "poller",
		Name:      "polls_total",
		Help:      "Completed polls by poller and result.",
	}, []string{"poller", "result"})

	pollsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pickup_agent",
		Subsystem: "poller",
		Name:      "polls_skipped_total",
		Help:      "Polls skipped or discarded by poller and reason.",
	}, []string{"poller", "reason"})

	pollDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pickup_agent",
		Subsystem: "poller",
		Name:      "poll_duration_seconds",
		Help:      "Duration of poll fetches.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"poller"})

	watchesOpen = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "pickup_agent",
		Subsystem: "poller",
		Name:      "watches_open",
		Help:      "Number of running watches.",
	})
)
