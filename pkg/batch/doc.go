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

// Package batch parses many ingredient lines concurrently and summarizes
// the outcome in a report.
//
// Lines are parsed in parallel with a bounded errgroup and written into an
// index-addressed slice, so the report keeps input order regardless of
// scheduling:
//
//	r := batch.New(batch.WithConcurrency(16), batch.WithVersion(version))
//	report, err := r.Run(ctx, lines)
//
// Lines longer than the configured limit are rejected per entry with an
// INPUT_TOO_LONG error; they never fail the run. The run itself fails only
// when the context is cancelled or its deadline passes.
//
// # Drift
//
// Compare matches a report against an earlier baseline by line text and
// counts unchanged, changed, added and removed lines, which shows what a
// parser change did to a known corpus:
//
//	baseline, err := serializer.FromFile[batch.Report]("report.json")
//	report.Drift = report.Compare(baseline)
//
// # Metrics
//
// Runs record Prometheus metrics in the default registry:
//   - mise_batch_duration_seconds
//   - mise_batch_runs_total{status}
//   - mise_lines_total{status}
//   - mise_measurements_total{unit}
//   - mise_conversions_total
//
// WriteMetrics exports them as a textfile for the node exporter.
package batch
