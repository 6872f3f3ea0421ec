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
	"math"
	"strconv"
	"strings"
)

// precision is the number of decimal places kept by Round.
const precision = 1000

// Round rounds v to three decimal places, half away from zero.
func Round(v float64) float64 {
	// beyond this magnitude float64 has no fractional digits left
	if math.Abs(v) >= 1e15 || math.IsNaN(v) {
		return v
	}
	return math.Round(v*precision) / precision
}

// ParseNumber converts a single numeric token into a float rounded to
// three decimal places. It accepts an integer or decimal ("3", "3.25") or
// a simple fraction ("2/3"). Empty or unparseable text yields 0 so that
// optional fragments can be summed unconditionally.
func ParseNumber(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	if isDecimal(text) {
		return toFloat(text)
	}

	num, den, ok := strings.Cut(text, "/")
	if !ok || !isDigits(num) || !isDigits(den) {
		return 0
	}
	d := toFloat(den)
	if d == 0 {
		return 0
	}
	return Round(toFloat(num) / d)
}

func toFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0
	}
	return Round(v)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// isDecimal matches \d+(\.\d+)?
func isDecimal(s string) bool {
	whole, frac, ok := strings.Cut(s, ".")
	if !ok {
		return isDigits(whole)
	}
	return isDigits(whole) && isDigits(frac)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
