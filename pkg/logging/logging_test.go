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

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.in))
		})
	}
}

func TestStructuredLoggerAttributes(t *testing.T) {
	var buf bytes.Buffer
	l := newStructuredLogger(&buf, "mise", "v1.2.3", slog.LevelInfo)

	l.Debug("hidden")
	l.Info("parsed", "lines", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "parsed", rec["msg"])
	assert.Equal(t, "mise", rec["module"])
	assert.Equal(t, "v1.2.3", rec["version"])
	assert.Equal(t, float64(3), rec["lines"])
	assert.NotContains(t, rec, "source")
}

func TestStructuredLoggerDebugSource(t *testing.T) {
	var buf bytes.Buffer
	l := newStructuredLogger(&buf, "mise", "dev", slog.LevelDebug)
	l.Debug("no unit found", "code", "UNRECOGNIZED_UNIT")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Contains(t, rec, "source")
}

func TestSetDefaultStructuredLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	t.Setenv(EnvVarLogLevel, "error")
	SetDefaultStructuredLogger("mise", "dev")
	assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelError))

	SetDefaultStructuredLoggerWithLevel("mise", "dev", "debug")
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))
}
