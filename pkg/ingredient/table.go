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
)

// TableColumns are the column titles used by TableRow.
var TableColumns = []string{"MEASUREMENT", "CONVERTED", "NAME", "ADDITIONAL"}

// TableRow renders r as table cells matching TableColumns. Chained
// measurements are joined with " + " and missing values render as "-".
func (r *Result) TableRow() []string {
	parts := make([]string, 0, len(r.Measurements))
	for _, m := range r.Measurements {
		parts = append(parts, m.String())
	}

	conv := "-"
	if r.Converted != nil {
		conv = r.Converted.String()
	}
	extra := "-"
	if r.Additional != nil {
		extra = *r.Additional
	}
	n := r.Name
	if n == "" {
		n = "-"
	}

	return []string{strings.Join(parts, " + "), conv, n, extra}
}

// Line pairs an input line with its parse result.
type Line struct {
	Line   string  `json:"line" yaml:"line"`
	Result *Result `json:"result" yaml:"result"`
}

// Lines is a list of parsed lines that renders as a column table.
type Lines []Line

// TableHeader implements serializer.Tabular.
func (l Lines) TableHeader() []string {
	return append([]string{"LINE"}, TableColumns...)
}

// TableRows implements serializer.Tabular.
func (l Lines) TableRows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, e := range l {
		rows = append(rows, append([]string{e.Line}, e.Result.TableRow()...))
	}
	return rows
}
