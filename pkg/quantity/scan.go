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

import "strings"

// Match is the result of matching a quantity at the start of a string.
type Match struct {
	// Min is the scalar value, or the lower bound of a range.
	Min float64
	// Max is the upper bound of a range; zero otherwise.
	Max float64
	// IsRange is true when a range marker and a second bound were found.
	IsRange bool
	// Found is false when the text does not start with a quantity.
	Found bool
	// Consumed is the byte length of the matched prefix, including trailing
	// whitespace.
	Consumed int
}

// Values returns the quantity as a one-element slice, or as a [min, max]
// pair for ranges. It returns nil when nothing was found.
func (m Match) Values() []float64 {
	switch {
	case !m.Found:
		return nil
	case m.IsRange:
		return []float64{m.Min, m.Max}
	default:
		return []float64{m.Min}
	}
}

// Extract matches a quantity or range anchored at the start of text.
// A leading indefinite article ("a cup", "An egg") reads as the integer 1
// and may be continued like one, so "a 1/2 cup" is 1.5.
// Ranges keep their written order; "3 to 2" yields Min 3 and Max 2.
func Extract(text string) Match {
	s := scanner{src: text}

	var m Match
	if n := article(text); n > 0 {
		s.pos = n
		m = Match{Min: s.mixed(1), Found: true}
	} else {
		min, ok := s.amount()
		if !ok {
			return Match{}
		}
		m = Match{Min: min, Found: true}
	}

	mark := s.pos
	if s.rangeMarker() {
		if max, ok := s.amount(); ok {
			m.Max = max
			m.IsRange = true
		} else {
			s.pos = mark
		}
	}

	s.skipSpace()
	m.Consumed = s.pos
	return m
}

// ExtractAmount matches a single, non-range amount anchored at the start
// of text: an integer, decimal, fraction or mixed number.
func ExtractAmount(text string) Match {
	s := scanner{src: text}
	v, ok := s.amount()
	if !ok {
		return Match{}
	}
	s.skipSpace()
	return Match{Min: v, Found: true, Consumed: s.pos}
}

// article returns the length of a leading "a " or "an " including the
// whitespace that follows it, or zero.
func article(text string) int {
	n := 0
	switch {
	case hasPrefixFold(text, "an"):
		n = 2
	case hasPrefixFold(text, "a"):
		n = 1
	default:
		return 0
	}
	s := scanner{src: text, pos: n}
	if !s.skipSpace() {
		return 0
	}
	return s.pos
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) peek() byte {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

// skipSpace advances past whitespace and reports whether any was skipped.
func (s *scanner) skipSpace() bool {
	start := s.pos
	for s.pos < len(s.src) && IsSpace(s.src[s.pos]) {
		s.pos++
	}
	return s.pos > start
}

func (s *scanner) digits() string {
	start := s.pos
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}

// number matches digits ('.' digits | '/' digits)? and reports whether the
// token was a bare integer.
func (s *scanner) number() (v float64, integer bool, ok bool) {
	start := s.pos
	if s.digits() == "" {
		return 0, false, false
	}
	integer = true
	if c := s.peek(); (c == '.' || c == '/') && s.pos+1 < len(s.src) && isDigit(s.src[s.pos+1]) {
		s.pos++
		s.digits()
		integer = false
	}
	return ParseNumber(s.src[start:s.pos]), integer, true
}

// fraction matches digits '/' digits.
func (s *scanner) fraction() (float64, bool) {
	start := s.pos
	if s.digits() == "" || s.peek() != '/' {
		s.pos = start
		return 0, false
	}
	s.pos++
	if s.digits() == "" {
		s.pos = start
		return 0, false
	}
	return ParseNumber(s.src[start:s.pos]), true
}

// amount matches a number optionally followed by the fractional part of a
// mixed number.
func (s *scanner) amount() (float64, bool) {
	v, integer, ok := s.number()
	if !ok {
		return 0, false
	}
	if !integer {
		return v, true
	}
	return s.mixed(v), true
}

// mixed matches the fractional part of a mixed number after the whole
// part, joined by whitespace, "and" or '&'. It returns whole unchanged and
// leaves the position alone when no fraction follows.
func (s *scanner) mixed(whole float64) float64 {
	mark := s.pos
	s.skipSpace()
	switch {
	case hasPrefixFold(s.src[s.pos:], "and"):
		s.pos += len("and")
	case s.peek() == '&':
		s.pos++
	}
	s.skipSpace()
	if frac, ok := s.fraction(); ok {
		// components are already rounded; re-rounding only strips float noise
		return Round(whole + frac)
	}
	s.pos = mark
	return whole
}

// rangeMarker matches ws* ('-' | '–' | "to") ws*. "to" must not be the
// start of a longer word such as "tomato".
func (s *scanner) rangeMarker() bool {
	mark := s.pos
	s.skipSpace()
	rest := s.src[s.pos:]
	switch {
	case strings.HasPrefix(rest, "-"):
		s.pos++
	case strings.HasPrefix(rest, "–"):
		s.pos += len("–")
	case hasPrefixFold(rest, "to") && (len(rest) == 2 || IsSpace(rest[2]) || isDigit(rest[2])):
		s.pos += 2
	default:
		s.pos = mark
		return false
	}
	s.skipSpace()
	return true
}

// IsSpace reports whether c is ASCII whitespace.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
