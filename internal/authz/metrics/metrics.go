// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

// Package metrics exposes Prometheus instrumentation for the PDP engine.
// Like package audit, it is ambient infrastructure the engine attaches
// optionally; the evaluation core never imports it.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	evaluationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "abac_evaluation_duration_seconds",
		Help:    "Duration of a full Authorize call, from request to decision",
		Buckets: prometheus.DefBuckets,
	})

	decisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "abac_decisions_total",
		Help: "Total number of decisions rendered, by decision and underlying result type",
	}, []string{"decision", "result_type"})

	evaluationErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "abac_evaluation_errors_total",
		Help: "Total number of Authorize calls that failed before a decision could be rendered",
	})
)

// RecordEvaluation records one completed Authorize call.
func RecordEvaluation(duration time.Duration, decision, resultType string) {
	evaluationDuration.Observe(duration.Seconds())
	decisionsTotal.WithLabelValues(decision, resultType).Inc()
}

// RecordError records one Authorize call that failed before a decision
// was rendered (invalid request, cancelled context, malformed policy tree).
func RecordError() {
	evaluationErrorsTotal.Inc()
}
