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

	cnserrors "github.com/mchmarny/mise/pkg/errors"
	"github.com/mchmarny/mise/pkg/quantity"
	"github.com/mchmarny/mise/pkg/unit"
)

// extractUnitAndConversion locates the unit in text whose leading quantity
// has already been removed, and the conversion that sits next to it.
// It returns the unit, the conversion (nil when absent) and the remaining
// text.
//
// Package units (bag, box, can, package) are searched first anywhere in the
// text. The text after the package word is moved in front of the text
// before it, so "(8 oz) can of paste" and "can (8 oz) of paste" both end up
// with the size isolated at one end where the conversion detector finds it.
// Otherwise the first whole-token direct unit is taken.
func extractUnitAndConversion(text string) (unit.Unit, *Measurement, string) {
	if u, start, end, ok := findPackageUnit(text); ok {
		rest := joinSpace(text[end:], text[:start])
		conv, rest := extractConversion(rest)
		if conv == nil {
			conv, rest = extractTrailingConversion(rest)
		}
		return u, conv, rest
	}

	u, start, end, ok := findDirectUnit(text)
	if !ok {
		diagnose(cnserrors.ErrCodeUnrecognizedUnit, "no unit found", "text", text)
		return unit.None, nil, text
	}
	rest := joinSpace(text[:start], text[end:])
	conv, rest := extractConversion(rest)
	return u, conv, rest
}

// findPackageUnit finds the first whole word that is a package alias.
// A period directly after the word is included in the returned span.
func findPackageUnit(text string) (unit.Unit, int, int, bool) {
	for i := 0; i < len(text); {
		if !isWordByte(text[i]) {
			i++
			continue
		}
		j := i
		for j < len(text) && isWordByte(text[j]) {
			j++
		}
		if isLetter(text[i]) {
			if u, ok := unit.Parse(text[i:j]); ok && u.IsPackage() {
				if j < len(text) && text[j] == '.' {
					j++
				}
				return u, i, j, true
			}
		}
		i = j
	}
	return unit.None, 0, 0, false
}

// findDirectUnit finds the first unit token: it starts with a letter at a
// word boundary and runs to the next space or the end of the text, so the
// "c" in "chicken" or the "g" in "g," never match.
func findDirectUnit(text string) (unit.Unit, int, int, bool) {
	maxLen := unit.MaxTokenLen()
	for start := 0; start < len(text); {
		if quantity.IsSpace(text[start]) {
			start++
			continue
		}
		end := start
		for end < len(text) && !quantity.IsSpace(text[end]) {
			end++
		}
		for p := start; p < end; p++ {
			if !isLetter(text[p]) || (p > start && isWordByte(text[p-1])) {
				continue
			}
			if end-p > maxLen {
				continue
			}
			if u, ok := unit.Parse(text[p:end]); ok && !u.IsPackage() {
				return u, p, end, true
			}
		}
		start = end
	}
	return unit.None, 0, 0, false
}

// extractConversion matches a conversion marker at the very front of text
// and returns it with the remaining text.
func extractConversion(text string) (*Measurement, string) {
	m, n := matchConversion(text)
	if m == nil {
		return nil, text
	}
	return m, strings.TrimSpace(text[n:])
}

// extractTrailingConversion matches a parenthesized conversion that makes
// up the end of text, as left behind by the package reorder.
func extractTrailingConversion(text string) (*Measurement, string) {
	if !strings.HasSuffix(text, ")") {
		return nil, text
	}
	open := strings.LastIndexByte(text, '(')
	if open < 0 {
		return nil, text
	}
	m, n := matchConversion(text[open:])
	if m == nil || open+n != len(text) {
		return nil, text
	}
	return m, strings.TrimSpace(text[:open])
}

// matchConversion matches
//
//	('(' | '/') ws* amount ws* unit ['.'] ws* [')']
//
// at the start of text and returns the conversion with the matched length.
// Conversions are never ranges. A marker whose amount or unit does not
// parse yields nil.
func matchConversion(text string) (*Measurement, int) {
	if text == "" || (text[0] != '(' && text[0] != '/') {
		return nil, 0
	}
	pos := skipSpace(text, 1)

	amt := quantity.ExtractAmount(text[pos:])
	if !amt.Found {
		diagnose(cnserrors.ErrCodeMalformedConversion, "conversion marker without amount",
			"marker", text[:1], "text", text)
		return nil, 0
	}
	pos += amt.Consumed

	u, end, ok := unitWord(text, pos)
	if !ok || !u.IsConvertible() {
		diagnose(cnserrors.ErrCodeMalformedConversion, "conversion marker without convertible unit",
			"marker", text[:1], "amount", amt.Min, "unit", u.String(), "text", text)
		return nil, 0
	}
	pos = end

	if p := skipSpace(text, pos); p < len(text) && text[p] == ')' {
		pos = p + 1
	}

	return &Measurement{Quantity: Scalar(amt.Min), Unit: u}, pos
}

// unitWord reads a run of letters at pos, with an optional trailing
// period, and looks it up. The word must end at a space, a parenthesis, a
// comma or the end of text.
func unitWord(text string, pos int) (unit.Unit, int, bool) {
	end := pos
	for end < len(text) && isLetter(text[end]) {
		end++
	}
	if end == pos {
		return unit.None, pos, false
	}
	word := text[pos:end]
	if end < len(text) && text[end] == '.' {
		end++
	}
	if end < len(text) && !isUnitBoundary(text[end]) {
		return unit.None, pos, false
	}
	u, ok := unit.Parse(word)
	return u, end, ok
}

func isUnitBoundary(c byte) bool {
	return quantity.IsSpace(c) || c == ')' || c == '(' || c == ','
}

func skipSpace(text string, pos int) int {
	for pos < len(text) && quantity.IsSpace(text[pos]) {
		pos++
	}
	return pos
}
