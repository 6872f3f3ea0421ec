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

package ingredient

import (
	"strings"

	"github.com/mchmarny/mise/pkg/quantity"
)

// connectors join the terms of an additive chain. Word connectors must be
// followed by a space or a digit so "andouille" or "plums" never match.
var connectors = []struct {
	token string
	word  bool
}{
	{token: "plus", word: true},
	{token: "and", word: true},
	{token: "+"},
	{token: "&"},
}

// connector returns the length of a connector at the front of text, or 0.
func connector(text string) int {
	for _, c := range connectors {
		n := len(c.token)
		if len(text) < n || !strings.EqualFold(text[:n], c.token) {
			continue
		}
		if c.word && n < len(text) && !quantity.IsSpace(text[n]) && !isDigit(text[n]) {
			continue
		}
		return n
	}
	return 0
}

// extractChained matches
//
//	connector ws* amount unit
//
// at the front of text, as in "plus 2 tbsp" or "& 1/2 tsp". It returns the
// measurement and the remaining text, or false when text does not start
// with a complete chain term. A connector that is not followed by both a
// quantity and a unit is left in place as part of the name.
func extractChained(text string) (Measurement, string, bool) {
	n := connector(text)
	if n == 0 {
		return Measurement{}, text, false
	}
	pos := skipSpace(text, n)

	q := quantity.ExtractAmount(text[pos:])
	if !q.Found {
		return Measurement{}, text, false
	}
	pos += q.Consumed

	u, end, ok := unitWord(text, pos)
	if !ok {
		return Measurement{}, text, false
	}

	return Measurement{Quantity: Scalar(q.Min), Unit: u}, strings.TrimSpace(text[end:]), true
}
