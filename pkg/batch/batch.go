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
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/mise/pkg/defaults"
	cnserrors "github.com/mchmarny/mise/pkg/errors"
	"github.com/mchmarny/mise/pkg/header"
	"github.com/mchmarny/mise/pkg/ingredient"
	"github.com/mchmarny/mise/pkg/unit"
)

// Runner parses many ingredient lines concurrently.
type Runner struct {
	parser        *ingredient.Parser
	concurrency   int
	maxLineLength int
	version       string
}

// Option is a functional option for configuring Runner instances.
type Option func(*Runner)

// WithParser sets the parser used for every line.
func WithParser(p *ingredient.Parser) Option {
	return func(r *Runner) {
		if p != nil {
			r.parser = p
		}
	}
}

// WithConcurrency sets the number of lines parsed in parallel. Values
// below 1 fall back to the default and values above
// defaults.MaxBatchConcurrency are capped.
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		switch {
		case n < 1:
			r.concurrency = defaults.BatchConcurrency
		case n > defaults.MaxBatchConcurrency:
			r.concurrency = defaults.MaxBatchConcurrency
		default:
			r.concurrency = n
		}
	}
}

// WithMaxLineLength sets the byte limit above which lines are rejected.
// Zero disables the limit.
func WithMaxLineLength(n int) Option {
	return func(r *Runner) {
		r.maxLineLength = n
	}
}

// WithVersion sets the tool version recorded in the report header.
func WithVersion(v string) Option {
	return func(r *Runner) {
		r.version = v
	}
}

// New creates a Runner with the given options.
func New(opts ...Option) *Runner {
	r := &Runner{
		parser:        ingredient.NewParser(),
		concurrency:   defaults.BatchConcurrency,
		maxLineLength: defaults.MaxLineLength,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run parses lines and returns a report with one entry per line in input
// order. Over-long lines are rejected individually and do not fail the
// run. Run returns an error only when ctx is done before every line was
// parsed.
func (r *Runner) Run(ctx context.Context, lines []string) (*Report, error) {
	start := time.Now()
	runID := uuid.NewString()

	slog.Debug("batch started",
		"runID", runID,
		"lines", len(lines),
		"concurrency", r.concurrency)

	entries := make([]Entry, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, line := range lines {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entries[i] = r.parseLine(line)
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		batchRunsTotal.WithLabelValues("error").Inc()
		code := cnserrors.ErrCodeInternal
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			code = cnserrors.ErrCodeTimeout
		}
		return nil, cnserrors.WrapWithContext(code, "batch parse did not finish", err,
			map[string]any{"runID": runID, "lines": len(lines)})
	}

	report := &Report{Entries: entries}
	report.Init(header.KindParseReport, r.version,
		header.WithMetadata(header.MetadataRunID, runID))
	for _, e := range entries {
		report.Stats.add(e)
	}

	elapsed := time.Since(start)
	batchDuration.Observe(elapsed.Seconds())
	batchRunsTotal.WithLabelValues("success").Inc()

	slog.Info("batch completed",
		"runID", runID,
		"lines", report.Stats.Lines,
		"rejected", report.Stats.Rejected,
		"duration", elapsed.String())

	return report, nil
}

func (r *Runner) parseLine(line string) Entry {
	if err := ingredient.ValidateLength(line, r.maxLineLength); err != nil {
		linesTotal.WithLabelValues("rejected").Inc()
		slog.Warn("line rejected", "error", err, "length", len(line))
		return Entry{Line: line, Error: err.Error()}
	}

	res := r.parser.Parse(line)

	linesTotal.WithLabelValues("parsed").Inc()
	for _, m := range res.Measurements {
		measurementsTotal.WithLabelValues(unitLabel(m.Unit)).Inc()
	}
	if res.Converted != nil {
		conversionsTotal.Inc()
	}

	return Entry{Line: line, Result: res}
}

func unitLabel(u unit.Unit) string {
	if u.IsNone() {
		return "none"
	}
	return u.String()
}
