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
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/mise/pkg/defaults"
	cnserrors "github.com/mchmarny/mise/pkg/errors"
	"github.com/mchmarny/mise/pkg/header"
	"github.com/mchmarny/mise/pkg/ingredient"
	"github.com/mchmarny/mise/pkg/unit"
)

func TestNew_Options(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want int
	}{
		{"default", nil, defaults.BatchConcurrency},
		{"custom", []Option{WithConcurrency(3)}, 3},
		{"zero", []Option{WithConcurrency(0)}, defaults.BatchConcurrency},
		{"capped", []Option{WithConcurrency(defaults.MaxBatchConcurrency + 1)}, defaults.MaxBatchConcurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.opts...)
			assert.Equal(t, tt.want, r.concurrency)
			assert.NotNil(t, r.parser)
		})
	}

	r := New(WithParser(nil), WithMaxLineLength(10), WithVersion("v1.0.0"))
	assert.NotNil(t, r.parser)
	assert.Equal(t, 10, r.maxLineLength)
	assert.Equal(t, "v1.0.0", r.version)
}

func TestRun(t *testing.T) {
	lines := []string{
		"1 cup (4 tbsp.) honey",
		"1 tbsp plus 1 tsp of water",
		"1-2 cloves garlic, minced",
		"salt and pepper",
		strings.Repeat("x", 50),
	}

	report, err := New(WithMaxLineLength(40), WithVersion("v1.0.0")).Run(context.Background(), lines)
	require.NoError(t, err)

	assert.Equal(t, header.KindParseReport, report.Kind)
	assert.Equal(t, header.APIVersion, report.APIVersion)
	assert.Equal(t, "v1.0.0", report.Metadata[header.MetadataVersion])
	assert.Len(t, report.Metadata[header.MetadataRunID], 36)

	require.Len(t, report.Entries, len(lines))
	for i, e := range report.Entries {
		assert.Equal(t, lines[i], e.Line)
	}

	assert.Equal(t, unit.Cup, report.Entries[0].Result.Primary().Unit)
	assert.True(t, report.Entries[1].Result.HasAddedMeasurements)
	assert.Nil(t, report.Entries[4].Result)
	assert.Contains(t, report.Entries[4].Error, string(cnserrors.ErrCodeInputTooLong))

	assert.Equal(t, Stats{
		Lines:          5,
		WithQuantity:   3,
		WithUnit:       3,
		WithConversion: 1,
		Ranges:         1,
		Chained:        1,
		Rejected:       1,
	}, report.Stats)
}

func TestRun_PreservesOrder(t *testing.T) {
	lines := make([]string, 500)
	for i := range lines {
		lines[i] = fmt.Sprintf("%d cups item-%d", i+1, i)
	}

	report, err := New(WithConcurrency(16)).Run(context.Background(), lines)
	require.NoError(t, err)
	require.Len(t, report.Entries, len(lines))

	for i, e := range report.Entries {
		require.NotNil(t, e.Result)
		assert.Equal(t, ingredient.Scalar(float64(i+1)), e.Result.Primary().Quantity)
		assert.Equal(t, fmt.Sprintf("item-%d", i), e.Result.Name)
	}
}

func TestRun_Empty(t *testing.T) {
	report, err := New().Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, report.Entries)
	assert.Equal(t, Stats{}, report.Stats)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Run(ctx, []string{"1 cup water"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))

	var se *cnserrors.StructuredError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, cnserrors.ErrCodeTimeout, se.Code)
}

func TestReport_Table(t *testing.T) {
	report, err := New(WithMaxLineLength(12)).Run(context.Background(), []string{
		"1 cup water",
		"2 tbsp honey, warm",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"LINE", "MEASUREMENT", "CONVERTED", "NAME", "ADDITIONAL"}, report.TableHeader())
	rows := report.TableRows()
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1 cup water", "1 cup", "-", "water", "-"}, rows[0])
	assert.Equal(t, "2 tbsp honey, warm", rows[1][0])
	assert.True(t, strings.HasPrefix(rows[1][1], "error: "))
}

func TestWriteMetrics(t *testing.T) {
	_, err := New().Run(context.Background(), []string{"1 cup (8 oz) milk"})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "mise.prom")
	require.NoError(t, WriteMetrics(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(b)
	for _, name := range []string{
		"mise_batch_duration_seconds",
		"mise_batch_runs_total",
		`mise_lines_total{status="parsed"}`,
		`mise_measurements_total{unit="cup"}`,
		"mise_conversions_total",
	} {
		assert.Contains(t, content, name)
	}
}
