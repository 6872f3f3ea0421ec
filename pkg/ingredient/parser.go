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
	"fmt"
	"strings"

	"github.com/mchmarny/mise/pkg/defaults"
	cnserrors "github.com/mchmarny/mise/pkg/errors"
	"github.com/mchmarny/mise/pkg/name"
	"github.com/mchmarny/mise/pkg/quantity"
)

// NameSplitter separates the ingredient name from trailing descriptive
// text in whatever is left of a line once measurements are removed.
type NameSplitter interface {
	Split(text string) (name string, additional *string)
}

// Parser turns ingredient lines into Results.
// A Parser holds no mutable state and is safe for concurrent use.
type Parser struct {
	splitter NameSplitter
}

// Option is a functional option for configuring Parser instances.
type Option func(*Parser)

// WithSplitter replaces the default name splitter.
func WithSplitter(s NameSplitter) Option {
	return func(p *Parser) {
		if s != nil {
			p.splitter = s
		}
	}
}

// NewParser creates a Parser with the given options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		splitter: name.Splitter{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser()

// Parse parses line with the default parser.
func Parse(line string) *Result {
	return defaultParser.Parse(line)
}

// Parse extracts measurements, an optional conversion, the name and any
// trailing text from line. It never fails: anything that cannot be
// recognized is left null, and the remaining text becomes the name.
func (p *Parser) Parse(line string) *Result {
	text := normalize(line)

	q := quantity.Extract(text)
	if !q.Found {
		diagnose(cnserrors.ErrCodeUnparseableQuantity, "no quantity found", "line", line)
	}
	first := Measurement{
		Quantity: q.Values(),
		IsRange:  q.IsRange,
	}
	rest := strings.TrimSpace(text[q.Consumed:])

	var conv *Measurement
	first.Unit, conv, rest = extractUnitAndConversion(rest)

	measurements := []Measurement{first}
	for {
		m, next, ok := extractChained(rest)
		if !ok {
			break
		}
		measurements = append(measurements, m)
		rest = next
	}

	n, additional := p.splitter.Split(rest)

	return &Result{
		Name:                 n,
		Measurements:         measurements,
		Converted:            conv,
		Additional:           additional,
		HasAddedMeasurements: len(measurements) > 1,
	}
}

// Validate reports whether line is short enough to be accepted from
// untrusted input. Parse itself handles any length.
func Validate(line string) error {
	return ValidateLength(line, defaults.MaxLineLength)
}

// ValidateLength is Validate with an explicit byte limit.
func ValidateLength(line string, limit int) error {
	if limit > 0 && len(line) > limit {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInputTooLong,
			fmt.Sprintf("ingredient line exceeds %d bytes", limit),
			map[string]any{"length": len(line), "limit": limit})
	}
	return nil
}
