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


package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/mise/pkg/batch"
	"github.com/mchmarny/mise/pkg/defaults"
	cnserrors "github.com/mchmarny/mise/pkg/errors"
	"github.com/mchmarny/mise/pkg/header"
	"github.com/mchmarny/mise/pkg/serializer"
	"github.com/mchmarny/mise/pkg/source"
)

func batchCmd() *cli.Command {
	return &cli.Command{
		Name:                  "batch",
		EnableShellCompletion: true,
		Usage:                 "Parse a file of ingredient lines into a report",
		Description: fmt.Sprintf(`Parse every line of an input file concurrently and write a report with:
  - one entry per input line, in input order
  - summary statistics (quantities, units, conversions, ranges, chains)
  - a header with kind, API version, timestamp and run id

Input may be plain text (one line per line), a JSON or YAML list of
strings, or a JSON or YAML document with a "lines" list. Lines longer
than %d bytes are rejected individually and reported with an error.

Examples:
  mise batch --input recipe.txt --format table
  mise batch --input lines.yaml --output report.json --metrics-file mise.prom
  mise batch --input lines.yaml --baseline report.json`,
			defaults.MaxLineLength),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "Path to the input file",
				Required: true,
			},
			&cli.StringFlag{
				Name: "input-format",
				Usage: fmt.Sprintf("Input format (supported values: %v, default: from file extension)",
					source.SupportedFormats()),
			},
			&cli.IntFlag{
				Name:    "concurrency",
				Aliases: []string{"c"},
				Value:   defaults.BatchConcurrency,
				Usage:   "Maximum number of lines parsed in parallel",
				Sources: cli.EnvVars("MISE_CONCURRENCY"),
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.BatchTimeout,
				Usage: "Maximum duration of the batch run",
			},
			&cli.StringFlag{
				Name:  "baseline",
				Usage: "Path to an earlier JSON or YAML report of the same input; adds a drift section listing changed lines",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "Write Prometheus metrics in text format to this file after the run",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			inFormat := source.Format(cmd.String("input-format"))
			if inFormat != "" && !inFormat.IsValid() {
				return cnserrors.New(cnserrors.ErrCodeInvalidRequest,
					fmt.Sprintf("unknown input format: %q, supported values: %v", inFormat, source.SupportedFormats()))
			}

			lines, err := source.NewReader().ReadFile(cmd.String("input"), inFormat)
			if err != nil {
				return err
			}

			var baseline *batch.Report
			if path := cmd.String("baseline"); path != "" {
				if baseline, err = loadBaseline(path); err != nil {
					return err
				}
			}

			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			runner := batch.New(
				batch.WithConcurrency(cmd.Int("concurrency")),
				batch.WithVersion(version),
			)

			report, err := runner.Run(ctx, lines)
			if err != nil {
				return err
			}

			if baseline != nil {
				report.Drift = report.Compare(baseline)
				slog.Info("compared with baseline",
					"baselineRunID", report.Drift.BaselineRunID,
					"unchanged", report.Drift.Unchanged,
					"changed", len(report.Drift.Changed),
					"added", report.Drift.Added,
					"removed", report.Drift.Removed)
			}

			if path := cmd.String("metrics-file"); path != "" {
				if err := batch.WriteMetrics(path); err != nil {
					return cnserrors.Wrap(cnserrors.ErrCodeInternal,
						fmt.Sprintf("failed to write metrics to %q", path), err)
				}
				slog.Debug("metrics written", "path", path)
			}

			ser, err := newOutputWriter(cmd, outFormat)
			if err != nil {
				return err
			}
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, report)
		},
	}
}

// loadBaseline reads an earlier parse report for drift comparison.
func loadBaseline(path string) (*batch.Report, error) {
	if serializer.FormatFromPath(path) == serializer.FormatTable {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("baseline %q must be a JSON or YAML report", path))
	}

	baseline, err := serializer.FromFile[batch.Report](path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cnserrors.Wrap(cnserrors.ErrCodeNotFound, fmt.Sprintf("baseline %q not found", path), err)
		}
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, fmt.Sprintf("failed to load baseline %q", path), err)
	}
	if baseline.Kind != header.KindParseReport {
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("baseline %q is not a %s", path, header.KindParseReport),
			map[string]any{"kind": baseline.Kind.String()})
	}
	return baseline, nil
}
