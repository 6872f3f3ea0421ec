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
	"reflect"

	"github.com/mchmarny/mise/pkg/header"
)

// Drift compares a report with a baseline report of the same input,
// typically produced by an earlier build, and lists the lines whose
// outcome changed.
type Drift struct {
	// BaselineRunID is the run id of the baseline report, when it has one.
	BaselineRunID string `json:"baselineRunID,omitempty" yaml:"baselineRunID,omitempty"`

	// BaselineVersion is the tool version that produced the baseline.
	BaselineVersion string `json:"baselineVersion,omitempty" yaml:"baselineVersion,omitempty"`

	// Unchanged counts lines with the same result or error in both reports.
	Unchanged int `json:"unchanged" yaml:"unchanged"`

	// Changed lists lines whose result or error differs, in report order.
	Changed []string `json:"changed,omitempty" yaml:"changed,omitempty"`

	// Added counts lines missing from the baseline.
	Added int `json:"added" yaml:"added"`

	// Removed counts baseline lines missing from the report.
	Removed int `json:"removed" yaml:"removed"`
}

// HasChanges reports whether any line changed, appeared or disappeared.
func (d *Drift) HasChanges() bool {
	return len(d.Changed) > 0 || d.Added > 0 || d.Removed > 0
}

// Compare matches the entries of r against baseline by line text and
// returns the drift. Repeated lines are matched in order of appearance.
func (r *Report) Compare(baseline *Report) *Drift {
	d := &Drift{}
	if baseline == nil {
		d.Added = len(r.Entries)
		return d
	}
	d.BaselineRunID = baseline.Metadata[header.MetadataRunID]
	d.BaselineVersion = baseline.Metadata[header.MetadataVersion]

	pending := make(map[string][]Entry, len(baseline.Entries))
	for _, e := range baseline.Entries {
		pending[e.Line] = append(pending[e.Line], e)
	}

	for _, e := range r.Entries {
		queue := pending[e.Line]
		if len(queue) == 0 {
			d.Added++
			continue
		}
		prev := queue[0]
		pending[e.Line] = queue[1:]

		if sameOutcome(prev, e) {
			d.Unchanged++
		} else {
			d.Changed = append(d.Changed, e.Line)
		}
	}

	for _, queue := range pending {
		d.Removed += len(queue)
	}
	return d
}

func sameOutcome(a, b Entry) bool {
	return a.Error == b.Error && reflect.DeepEqual(a.Result, b.Result)
}
