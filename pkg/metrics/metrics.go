// Package metrics provides Prometheus metrics for the supply chain
// reasoning service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DisruptionsDetected tracks disruptions found per detector run by type
	DisruptionsDetected = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "supplychain",
			Subsystem: "detector",
			Name:      "disruptions",
			Help:      "Number of disruptions in the latest detection run by type",
		},
		[]string{"type"},
	)

	// MutationsTotal tracks state mutations by kind and outcome
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "supplychain",
			Subsystem: "store",
			Name:      "mutations_total",
			Help:      "Total number of state mutations by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	// ResetsTotal tracks full state resets
	ResetsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "supplychain",
			Subsystem: "store",
			Name:      "resets_total",
			Help:      "Total number of resets to the initial snapshot",
		},
	)

	// ReasoningRequestsTotal tracks reasoning requests by outcome
	ReasoningRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "supplychain",
			Subsystem: "reasoning",
			Name:      "requests_total",
			Help:      "Total number of reasoning requests by outcome",
		},
		[]string{"outcome"},
	)

	// ReasoningDuration tracks end-to-end reasoning latency including the
	// upstream call
	ReasoningDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "supplychain",
			Subsystem: "reasoning",
			Name:      "duration_seconds",
			Help:      "Duration of reasoning requests in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
	)

	// UpstreamRequestsTotal tracks calls to the text-generation provider
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "supplychain",
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Total number of outbound provider requests by status code",
		},
		[]string{"status_code"},
	)
)
