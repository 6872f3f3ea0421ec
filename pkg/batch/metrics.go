// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package batch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	batchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mise_batch_duration_seconds",
			Help:    "Duration of a batch parse run in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
	)

	batchRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mise_batch_runs_total",
			Help: "Total number of batch parse runs",
		},
		[]string{"status"}, // success or error
	)

	linesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mise_lines_total",
			Help: "Total number of ingredient lines processed",
		},
		[]string{"status"}, // parsed or rejected
	)

	measurementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mise_measurements_total",
			Help: "Total number of measurements extracted, by canonical unit",
		},
		[]string{"unit"},
	)

	conversionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mise_conversions_total",
			Help: "Total number of converted measurements extracted",
		},
	)
)

// WriteMetrics writes all registered metrics to path in the Prometheus
// text exposition format, for collection by the node exporter textfile
// collector.
func WriteMetrics(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
