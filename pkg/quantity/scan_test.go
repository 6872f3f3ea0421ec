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

package quantity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		in       string
		want     []float64
		isRange  bool
		consumed int
	}{
		{"1 cup", []float64{1}, false, 2},
		{"100 grams", []float64{100}, false, 4},
		{"1/3 cup", []float64{0.333}, false, 4},
		{"1.5 cup", []float64{1.5}, false, 4},
		{"1 1/2 cup", []float64{1.5}, false, 6},
		{"1 1/3 cup", []float64{1.333}, false, 6},
		{"2 2/3 cup", []float64{2.667}, false, 6},
		{"1 and 1/2 cup", []float64{1.5}, false, 10},
		{"1 & 1/2 cup", []float64{1.5}, false, 8},
		{"9and3/4 lb.", []float64{9.75}, false, 8},
		{"9&3/4 lb.", []float64{9.75}, false, 6},
		{"1-2 cups", []float64{1, 2}, true, 4},
		{"1 to 2 cups", []float64{1, 2}, true, 7},
		{"2 - 3 cups", []float64{2, 3}, true, 6},
		{"1 – 2 cups", []float64{1, 2}, true, 8},
		{"1/2 - 2/3 cup", []float64{0.5, 0.667}, true, 10},
		{"1/3 to 1/2 cup", []float64{0.333, 0.5}, true, 11},
		{"2.6 - 3.0 cup", []float64{2.6, 3}, true, 10},
		{"1 1/3 to 1 1/2 cup", []float64{1.333, 1.5}, true, 15},
		{"2&1/8-3&2/3 tsp", []float64{2.125, 3.667}, true, 12},
		{"2 and 1/8-3 and 2/3 tsp", []float64{2.125, 3.667}, true, 20},
		{"3 to 2 cups", []float64{3, 2}, true, 7},
		{"a cup", []float64{1}, false, 2},
		{"An egg", []float64{1}, false, 3},
		{"a 1/2 cup sugar", []float64{1.5}, false, 6},
		{"an & 1/4 lb", []float64{1.25}, false, 10},
		{"a 1/2-2 cups", []float64{1.5, 2}, true, 8},
		{"A to 2 cups", []float64{1, 2}, true, 7},
		{"a 2 lb bag", []float64{1}, false, 2},
		{"1 tomato", []float64{1}, false, 2},
		{"1 andouille", []float64{1}, false, 2},
		{"1- cup", []float64{1}, false, 1},
		{"10oz. bag", []float64{10}, false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m := Extract(tt.in)
			require.True(t, m.Found)
			assert.Equal(t, tt.want, m.Values())
			assert.Equal(t, tt.isRange, m.IsRange)
			assert.Equal(t, tt.consumed, m.Consumed)
		})
	}
}

func TestExtractNotFound(t *testing.T) {
	for _, in := range []string{"", "salt", "apple", "an", "a", "(8 oz)", "-1 cup", ".5 cup"} {
		t.Run(in, func(t *testing.T) {
			m := Extract(in)
			assert.False(t, m.Found)
			assert.Zero(t, m.Consumed)
			assert.Nil(t, m.Values())
		})
	}
}

func TestExtractAmount(t *testing.T) {
	m := ExtractAmount("4 tbsp.)")
	assert.True(t, m.Found)
	assert.Equal(t, 4.0, m.Min)
	assert.Equal(t, 2, m.Consumed)

	m = ExtractAmount("1 1/2oz)")
	assert.True(t, m.Found)
	assert.Equal(t, 1.5, m.Min)

	// ranges are not amounts
	m = ExtractAmount("1-2 cups")
	assert.True(t, m.Found)
	assert.False(t, m.IsRange)
	assert.Equal(t, 1.0, m.Min)
	assert.Equal(t, 1, m.Consumed)

	assert.False(t, ExtractAmount("oz").Found)
}

func TestExtractPathologicalInput(t *testing.T) {
	inputs := []string{
		strings.Repeat("1", 100_000),
		strings.Repeat("1/", 50_000),
		strings.Repeat("1 and ", 20_000),
		strings.Repeat("1-", 50_000),
		strings.Repeat("1.1.", 25_000),
	}

	for _, in := range inputs {
		start := time.Now()
		_ = Extract(in)
		assert.Less(t, time.Since(start), time.Second)
	}
}
