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
	"unicode"

	"github.com/mchmarny/mise/pkg/quantity"
)

// normalize prepares a raw line for extraction: unicode fractions become
// ASCII, every whitespace rune becomes a plain space, and the first slash
// or opening parenthesis that starts a conversion gets a space in front of
// it ("28g/1oz" reads as "28g /1oz", "1 cup(4 tbsp)" as "1 cup (4 tbsp)").
func normalize(line string) string {
	line = quantity.NormalizeFractions(line)
	line = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, line)
	line = spaceBeforeMarker(line, '/')
	line = spaceBeforeMarker(line, '(')
	return strings.TrimSpace(line)
}

// spaceBeforeMarker inserts a space before the first occurrence of marker
// that is not preceded by a digit and is followed, after optional spaces,
// by a digit. A slash between digits is a fraction and is left alone.
func spaceBeforeMarker(s string, marker byte) string {
	for i := 0; i < len(s); i++ {
		if s[i] != marker {
			continue
		}
		if i > 0 && isDigit(s[i-1]) {
			continue
		}
		j := i + 1
		if marker == '/' {
			for j < len(s) && s[j] == ' ' {
				j++
			}
		}
		if j >= len(s) || !isDigit(s[j]) {
			continue
		}
		if i > 0 && s[i-1] == ' ' {
			return s
		}
		return s[:i] + " " + s[i:]
	}
	return s
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isWordByte matches the \w class: ASCII letters, digits and underscore.
func isWordByte(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}

// joinSpace trims both parts and joins them with a single space when both
// are non-empty.
func joinSpace(a, b string) string {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}
