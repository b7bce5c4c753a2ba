// Package metrics provides Prometheus observability for the attribute
// normalization engine.
//
// # Overview
//
// The metrics package exposes pre-registered collectors for the two
// pipelines:
//   - Arrays normalized / materialized, labeled by element kind and outcome
//   - Mixed-type coercions (the lenient stringify path)
//   - Recovered read-path anomalies, labeled by legacy pattern
//   - Distribution of attribute element counts
//
// # Basic Usage
//
//	metrics.ArraysNormalized.WithLabelValues("text", "success").Inc()
//
//	timer := metrics.NewTimer()
//	out, err := encode(arr)
//	metrics.PipelineLatency.WithLabelValues("normalize").Observe(float64(timer.Stop().Nanoseconds()))
//
// All collectors are registered through promauto and are safe for
// concurrent use.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ArraysNormalized counts write-path conversions.
	// Labels: kind (integer/floating/boolean/text/bytestring/object), status (success/failure)
	ArraysNormalized = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loompy_arrays_normalized_total",
			Help: "Total number of attribute arrays normalized for storage",
		},
		[]string{"kind", "status"},
	)

	// ArraysMaterialized counts read-path conversions.
	// Labels: kind, status (success/failure/recovered)
	ArraysMaterialized = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loompy_arrays_materialized_total",
			Help: "Total number of stored attribute arrays materialized for callers",
		},
		[]string{"kind", "status"},
	)

	// MixedTypeCoercions counts attributes whose elements had to be
	// stringified because the caller supplied inconsistent types.
	MixedTypeCoercions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "loompy_mixed_type_coercions_total",
			Help: "Total number of mixed-type attribute arrays coerced to strings",
		},
	)

	// RecoveredAnomalies counts read-path values repaired by the legacy
	// recovery policy. Labels: pattern (the legacy pattern name)
	RecoveredAnomalies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loompy_recovered_anomalies_total",
			Help: "Total number of stored values repaired by the legacy recovery policy",
		},
		[]string{"pattern"},
	)

	// AttributeElements tracks the distribution of attribute array lengths.
	AttributeElements = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "loompy_attribute_elements",
			Help:    "Number of elements per attribute array",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 .. ~260k elements
		},
	)

	// PipelineLatency tracks conversion latency in nanoseconds.
	// Labels: operation (normalize/materialize)
	PipelineLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "loompy_pipeline_latency_nanoseconds",
			Help: "Conversion latency in nanoseconds",
			Buckets: []float64{
				100,   // 100ns - scalar passthrough
				1000,  // 1μs - small numeric arrays
				10000, // 10μs - small text arrays
				1e5,   // 100μs - escaping medium arrays
				1e6,   // 1ms - large text arrays
				1e7,   // 10ms - very large attributes
				1e8,   // 100ms - pathological inputs
			},
		},
		[]string{"operation"},
	)
)

// Timer measures elapsed time for a single pipeline invocation.
type Timer struct {
	start time.Time
}

// NewTimer starts a new timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Stop returns the elapsed time since the timer was started.
func (t *Timer) Stop() time.Duration {
	return time.Since(t.start)
}
