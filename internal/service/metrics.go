package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "pickup_agent",
	Subsystem: "lifecycle",
	Name:      "transitions_total",
	Help:      "Lifecycle operations by event and result.",
}, []string{"event", "result"})
