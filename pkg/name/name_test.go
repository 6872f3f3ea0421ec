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

package name

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		in         string
		name       string
		additional *string
	}{
		{"water", "water", nil},
		{"  fried rice ", "fried rice", nil},
		{"of water", "water", nil},
		{"Of shrimp", "shrimp", nil},
		{"offal", "offal", nil},
		{"of butter, sliced into tablespoons", "butter", ptr("sliced into tablespoons")},
		{"garlic clove, minced", "garlic clove", ptr("minced")},
		{"garlic clove (minced)", "garlic clove", ptr("minced")},
		{"butter (sliced into tablespoons)", "butter", ptr("sliced into tablespoons")},
		{"of tomato sauce (you can use pasta sauce if you like)", "tomato sauce", ptr("you can use pasta sauce if you like")},
		{"chicken (skinless), cut into cubes", "chicken", ptr("skinless, cut into cubes")},
		{"flour (sifted", "flour", ptr("sifted")},
		{"tomato, ", "tomato", nil},
		{"sugar ()", "sugar", nil},
		{"(optional) salt", "salt", ptr("optional")},
		{"(optional) (divided) of salt, to taste", "salt", ptr("optional, divided, to taste")},
		{"(a)(b)(c)", "", ptr("a, b, c")},
		{"(optional), salt (coarse) ground", "salt", ptr("optional, coarse, ground")},
		{", minced", "minced", nil},
		{"", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n, extra := Split(tt.in)
			assert.Equal(t, tt.name, n)
			assert.Equal(t, tt.additional, extra)
		})
	}
}

func TestSplitter(t *testing.T) {
	n, extra := Splitter{}.Split("of salt, to taste")
	assert.Equal(t, "salt", n)
	assert.Equal(t, ptr("to taste"), extra)
}

func TestSplitPathologicalInput(t *testing.T) {
	inputs := []string{
		strings.Repeat("(x)", 1<<18),
		strings.Repeat("(", 1<<18),
		strings.Repeat("of (x) ", 1<<16),
		strings.Repeat("(x),", 1<<18),
		strings.Repeat(" ", 1<<18) + "salt",
	}

	for _, in := range inputs {
		start := time.Now()
		_, _ = Split(in)
		assert.Less(t, time.Since(start), time.Second)
	}
}

func ptr(s string) *string {
	return &s
}
