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

import "strings"

// Split trims text, drops a leading "of " and splits at the earliest comma
// or opening parenthesis. A comma yields the text after it as additional
// detail; a parenthesis yields its inner text, followed by any text after
// the closing parenthesis. Additional is nil when there is none.
//
// Leading parentheticals are consumed in a single left-to-right pass, so
// Split runs in time linear in the length of text.
func Split(text string) (string, *string) {
	s := strings.TrimSpace(text)
	commas := finder{s: s, c: ',', at: -1}
	parens := finder{s: s, c: '(', at: -1}

	var extra []string
	pos := skipOf(s, 0)
	for {
		comma, paren := commas.from(pos), parens.from(pos)

		switch {
		case comma < paren:
			n := strings.TrimSpace(s[pos:comma])
			tail := strings.TrimSpace(s[comma+1:])
			if n == "" {
				return tail, join(extra)
			}
			return n, join(append(extra, tail))

		case paren < len(s):
			n := strings.TrimSpace(s[pos:paren])
			inner, next := len(s), len(s)
			if end := strings.IndexByte(s[paren+1:], ')'); end >= 0 {
				inner, next = paren+1+end, paren+2+end
			}
			extra = append(extra, strings.TrimSpace(s[paren+1:inner]))
			if n != "" {
				return n, join(append(extra, trimTail(s[next:])))
			}
			// "(optional) salt": the name follows the parenthetical
			pos = skipOf(s, skipSeparators(s, next))

		default:
			return strings.TrimSpace(s[pos:]), join(extra)
		}
	}
}

// Splitter adapts Split to the ingredient.NameSplitter interface.
type Splitter struct{}

// Split implements ingredient.NameSplitter.
func (Splitter) Split(text string) (string, *string) {
	return Split(text)
}

// finder caches the next index of c at or after a position. Positions
// only move forward, so every byte of s is scanned at most once.
type finder struct {
	s  string
	c  byte
	at int
}

// from returns the index of the first c at or after pos, or len(s).
func (f *finder) from(pos int) int {
	if f.at < pos {
		if i := strings.IndexByte(f.s[pos:], f.c); i >= 0 {
			f.at = pos + i
		} else {
			f.at = len(f.s)
		}
	}
	return f.at
}

// skipOf skips spaces and a leading "of " at pos.
func skipOf(s string, pos int) int {
	pos = skipSpace(s, pos)
	if len(s)-pos >= 3 && strings.EqualFold(s[pos:pos+3], "of ") {
		pos = skipSpace(s, pos+3)
	}
	return pos
}

// skipSeparators skips the spaces and commas that follow a closing
// parenthesis.
func skipSeparators(s string, pos int) int {
	for pos < len(s) && (s[pos] == ',' || isSpace(s[pos])) {
		pos++
	}
	return pos
}

func trimTail(s string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(s), ","))
}

func skipSpace(s string, pos int) int {
	for pos < len(s) && isSpace(s[pos]) {
		pos++
	}
	return pos
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// join drops empty parts and joins the rest with ", ".
func join(parts []string) *string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	s := strings.Join(kept, ", ")
	return &s
}
