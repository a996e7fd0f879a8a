// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

// Package metrics exposes Prometheus instrumentation for key and
// cryptographic operations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "airgapsync"

var (
	// Operations counts key and crypto operations by name and status.
	Operations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Total key and crypto operations by operation and status.",
		},
		[]string{"operation", "status"},
	)

	// Errors counts failed operations by name.
	Errors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Total failed operations by operation.",
		},
		[]string{"operation"},
	)

	// Duration observes operation latency.
	Duration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Operation latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// RecordOperation records one completed operation: its status counter,
// its latency, and the error counter on failure.
func RecordOperation(operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "failure"
		Errors.WithLabelValues(operation).Inc()
	}
	Operations.WithLabelValues(operation, status).Inc()
	Duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
