/*
Copyright © 2025 the pictverify authors
SPDX-License-Identifier: Apache-2.0
*/

package runner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Run-level metrics
	runDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pictverify_run_duration_seconds",
			Help:    "Time taken to process all matrix files in a run",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60},
		},
	)

	rowsValidatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pictverify_rows_validated_total",
			Help: "Total number of matrix rows validated",
		},
		[]string{"result"}, // pass or fail
	)

	expectationMismatchTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pictverify_expectation_mismatch_total",
			Help: "Total number of rows whose classification mismatched the file expectation",
		},
	)

	matrixFileDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pictverify_matrix_file_duration_seconds",
			Help:    "Time taken to process individual matrix files",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"category"}, // valid or the targeted field
	)
)
