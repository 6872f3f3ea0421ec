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

package unit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	tests := []struct {
		token string
		want  Unit
		ok    bool
	}{
		{"cup", Cup, true},
		{"C", Cup, true},
		{"c.", Cup, true},
		{"Tbsp.", Tablespoon, true},
		{"tbspns", Tablespoon, true},
		{"tbs", Tablespoon, true},
		{"tspn.", Teaspoon, true},
		{"mL", Milliliter, true},
		{"L.", Liter, true},
		{"litres", Liter, true},
		{"lbs.", Pound, true},
		{"kgs", Kilogram, true},
		{"pinches", Pinch, true},
		{"sm.", Small, true},
		{"lg", Large, true},
		{"pkgs.", Package, true},
		{"boxes", Box, true},
		{"  oz  ", Ounce, true},
		{"", None, false},
		{".", None, false},
		{"chicken", None, false},
		{"tbsp..", None, false},
		{"clove,", None, false},
		{"averyveryveryverylongtokenthatcannotbeaunit", None, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := Parse(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupRequiresFoldedAlias(t *testing.T) {
	_, ok := Lookup("Cup")
	assert.False(t, ok)

	u, ok := Lookup(Fold(" Cup. "))
	assert.True(t, ok)
	assert.Equal(t, Cup, u)
}

func TestEveryUnitHasAliases(t *testing.T) {
	for _, u := range All() {
		names := Aliases(u)
		require.NotEmpty(t, names, "unit %s", u)
		for _, n := range names {
			got, ok := Lookup(n)
			assert.True(t, ok, "alias %q", n)
			assert.Equal(t, u, got, "alias %q", n)
			assert.LessOrEqual(t, len(n)+1, MaxTokenLen())
		}
	}
}

func TestAllIsSortedAndComplete(t *testing.T) {
	all := All()
	assert.Len(t, all, 25)
	assert.IsIncreasing(t, all)
	assert.NotContains(t, all, None)
}

func TestClassification(t *testing.T) {
	for _, u := range []Unit{Can, Bag, Box, Package} {
		assert.True(t, u.IsPackage(), "%s", u)
		assert.False(t, u.IsConvertible(), "%s", u)
	}
	for _, u := range []Unit{Clove, Small, Medium, Large, None} {
		assert.False(t, u.IsPackage(), "%s", u)
		assert.False(t, u.IsConvertible(), "%s", u)
	}
	for _, u := range []Unit{Cup, Ounce, Gram, Tablespoon, Piece, Stick} {
		assert.True(t, u.IsConvertible(), "%s", u)
	}
}

func TestMarshal(t *testing.T) {
	b, err := json.Marshal(struct {
		A Unit `json:"a"`
		B Unit `json:"b"`
	}{A: Cup})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"cup","b":null}`, string(b))

	y, err := yaml.Marshal(map[string]Unit{"a": Gram, "b": None})
	require.NoError(t, err)
	assert.Equal(t, "a: gram\nb: null\n", string(y))

	var u Unit = Cup
	require.NoError(t, json.Unmarshal([]byte("null"), &u))
	assert.True(t, u.IsNone())
	require.NoError(t, json.Unmarshal([]byte(`"pinch"`), &u))
	assert.Equal(t, Pinch, u)
}
