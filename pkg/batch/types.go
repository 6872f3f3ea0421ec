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

package batch

import (
	"github.com/mchmarny/mise/pkg/header"
	"github.com/mchmarny/mise/pkg/ingredient"
)

// Entry is the outcome for a single input line. Exactly one of Result and
// Error is set.
type Entry struct {
	// Line is the input line as given.
	Line string `json:"line" yaml:"line"`

	// Result is the parse result; nil when the line was rejected.
	Result *ingredient.Result `json:"result,omitempty" yaml:"result,omitempty"`

	// Error describes why the line was rejected.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Stats summarizes a batch run.
type Stats struct {
	Lines          int `json:"lines" yaml:"lines"`
	WithQuantity   int `json:"withQuantity" yaml:"withQuantity"`
	WithUnit       int `json:"withUnit" yaml:"withUnit"`
	WithConversion int `json:"withConversion" yaml:"withConversion"`
	Ranges         int `json:"ranges" yaml:"ranges"`
	Chained        int `json:"chained" yaml:"chained"`
	Rejected       int `json:"rejected" yaml:"rejected"`
}

// add counts one entry.
func (s *Stats) add(e Entry) {
	s.Lines++
	if e.Result == nil {
		s.Rejected++
		return
	}
	p := e.Result.Primary()
	if !p.Quantity.IsNull() {
		s.WithQuantity++
	}
	if !p.Unit.IsNone() {
		s.WithUnit++
	}
	if p.IsRange {
		s.Ranges++
	}
	if e.Result.Converted != nil {
		s.WithConversion++
	}
	if e.Result.HasAddedMeasurements {
		s.Chained++
	}
}

// Report is the result of a batch run. Entries are in input order.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	Stats   Stats   `json:"stats" yaml:"stats"`
	Drift   *Drift  `json:"drift,omitempty" yaml:"drift,omitempty"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// TableHeader implements serializer.Tabular.
func (r *Report) TableHeader() []string {
	return append([]string{"LINE"}, ingredient.TableColumns...)
}

// TableRows implements serializer.Tabular. Rejected lines show the error
// in the measurement column.
func (r *Report) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		if e.Result == nil {
			rows = append(rows, []string{e.Line, "error: " + e.Error, "-", "-", "-"})
			continue
		}
		rows = append(rows, append([]string{e.Line}, e.Result.TableRow()...))
	}
	return rows
}
