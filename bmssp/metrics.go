// This file instruments the BMSSP recursion, following
// internal/metrics's promauto.NewCounter/NewHistogram globals registered
// against the default Prometheus registry. BMSSP and its level-0 and
// level >= 1 helpers increment them, and only when the Config.MetricsEnabled
// passed to BMSSP is true; Run itself increments none of them.
package bmssp

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// recursionCallsTotal counts BMSSP recursive activations, partitioned
	// by level, across all Run invocations in this process.
	recursionCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bmssp_recursion_calls_total",
			Help: "Total BMSSP recursive activations, by level.",
		},
		[]string{"level"},
	)

	// batchHeapOpsTotal counts BatchHeap operations, partitioned by kind
	// (insert, batch_prepend, pull).
	batchHeapOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bmssp_batchheap_ops_total",
			Help: "Total BatchHeap operations, by kind.",
		},
		[]string{"op"},
	)

	// baseCaseSettledVertices is a histogram of how many vertices each
	// BaseCase call settles, a proxy for how tight the k bound is in
	// practice on a given graph.
	baseCaseSettledVertices = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bmssp_basecase_settled_vertices",
			Help:    "Number of vertices settled per BaseCase call.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)
)

func observeRecursionCall(enabled bool, level int) {
	if !enabled {
		return
	}
	recursionCallsTotal.WithLabelValues(strconv.Itoa(level)).Inc()
}

func observeBatchHeapOp(enabled bool, op string) {
	if !enabled {
		return
	}
	batchHeapOpsTotal.WithLabelValues(op).Inc()
}

func observeBaseCaseSettled(enabled bool, settled int) {
	if !enabled {
		return
	}
	baseCaseSettledVertices.Observe(float64(settled))
}
