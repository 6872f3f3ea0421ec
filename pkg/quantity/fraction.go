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
	"unicode"

	"golang.org/x/text/width"
)

// fractionSlash is U+2044, used by some sources to compose fractions.
const fractionSlash = '⁄'

var vulgarFractions = map[rune]string{
	'½': "1/2",
	'⅓': "1/3",
	'⅔': "2/3",
	'¼': "1/4",
	'¾': "3/4",
	'⅕': "1/5",
	'⅖': "2/5",
	'⅗': "3/5",
	'⅘': "4/5",
	'⅙': "1/6",
	'⅚': "5/6",
	'⅐': "1/7",
	'⅛': "1/8",
	'⅜': "3/8",
	'⅝': "5/8",
	'⅞': "7/8",
	'⅑': "1/9",
	'⅒': "1/10",
}

// NormalizeFractions rewrites unicode fraction glyphs as ASCII "a/b" text,
// inserting a space before a glyph that is not already preceded by
// whitespace, so "1½cups" reads as "1 1/2cups" and "⅔ cup" as "2/3 cup".
// Full-width digits and punctuation are folded to ASCII and the fraction
// slash is replaced by '/'.
func NormalizeFractions(s string) string {
	s = width.Fold.String(s)

	var b strings.Builder
	b.Grow(len(s) + 8)

	var prev rune
	for i, r := range s {
		switch {
		case r == fractionSlash:
			b.WriteByte('/')
		case vulgarFractions[r] != "":
			if i > 0 && !unicode.IsSpace(prev) {
				b.WriteByte(' ')
			}
			b.WriteString(vulgarFractions[r])
		default:
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}
