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
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mchmarny/mise/pkg/unit"
)

// Quantity is a measured amount: nil when no quantity was found, a single
// value for scalars, or a [min, max] pair for ranges. It serializes as
// null, a number, or a two-element array.
type Quantity []float64

// Scalar returns a single-value Quantity.
func Scalar(v float64) Quantity {
	return Quantity{v}
}

// Range returns a [min, max] Quantity. The bounds are kept in the order
// given; no sorting is applied.
func Range(min, max float64) Quantity {
	return Quantity{min, max}
}

// IsNull reports whether no quantity was found.
func (q Quantity) IsNull() bool {
	return len(q) == 0
}

// Value returns the scalar value, or the lower bound of a range.
func (q Quantity) Value() float64 {
	if len(q) == 0 {
		return 0
	}
	return q[0]
}

// Bounds returns the range bounds and true for ranges.
func (q Quantity) Bounds() (float64, float64, bool) {
	if len(q) != 2 {
		return 0, 0, false
	}
	return q[0], q[1], true
}

// MarshalJSON encodes the quantity as null, a number or a pair.
func (q Quantity) MarshalJSON() ([]byte, error) {
	switch len(q) {
	case 0:
		return []byte("null"), nil
	case 1:
		return json.Marshal(q[0])
	default:
		return json.Marshal([]float64(q))
	}
}

// UnmarshalJSON decodes null, a number or an array.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*q = nil
	case float64:
		*q = Quantity{v}
	case []any:
		out := make(Quantity, 0, len(v))
		for i, e := range v {
			f, ok := e.(float64)
			if !ok {
				return fmt.Errorf("quantity[%d]: expected number, got %T", i, e)
			}
			out = append(out, f)
		}
		*q = out
	default:
		return fmt.Errorf("quantity: unsupported value %T", raw)
	}
	return nil
}

// MarshalYAML encodes the quantity as null, a number or a sequence.
func (q Quantity) MarshalYAML() (any, error) {
	switch len(q) {
	case 0:
		return nil, nil
	case 1:
		return q[0], nil
	default:
		return []float64(q), nil
	}
}

// UnmarshalYAML decodes null, a scalar or a sequence.
func (q *Quantity) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*q = nil
			return nil
		}
		var v float64
		if err := node.Decode(&v); err != nil {
			return err
		}
		*q = Quantity{v}
	case yaml.SequenceNode:
		var v []float64
		if err := node.Decode(&v); err != nil {
			return err
		}
		*q = v
	default:
		return fmt.Errorf("quantity: unsupported YAML node kind %d", node.Kind)
	}
	return nil
}

// Measurement is a quantity paired with a unit and a range flag.
// When IsRange is true Quantity holds [min, max] in written order; min <= max
// is not enforced.
type Measurement struct {
	Quantity Quantity  `json:"quantity" yaml:"quantity"`
	Unit     unit.Unit `json:"unit" yaml:"unit"`
	IsRange  bool      `json:"isRange" yaml:"isRange"`
}

// String renders the measurement for logs and table output.
func (m Measurement) String() string {
	var q string
	switch {
	case m.Quantity.IsNull():
		q = "-"
	case m.IsRange:
		q = fmt.Sprintf("%g-%g", m.Quantity[0], m.Quantity[1])
	default:
		q = fmt.Sprintf("%g", m.Quantity.Value())
	}
	if m.Unit.IsNone() {
		return q
	}
	return q + " " + m.Unit.String()
}

// Result is the structured form of one ingredient line.
type Result struct {
	// Name is the ingredient name left after measurements are removed.
	Name string `json:"name" yaml:"name"`

	// Measurements holds one entry per additive term, left to right.
	// It always has at least one entry.
	Measurements []Measurement `json:"measurement" yaml:"measurement"`

	// Converted is the equivalent measurement found next to the first
	// measurement, such as the "(1 oz)" in "28 g (1 oz) chocolate".
	Converted *Measurement `json:"convertedMeasurement" yaml:"convertedMeasurement"`

	// Additional is trailing descriptive text, such as "minced".
	Additional *string `json:"additional" yaml:"additional"`

	// HasAddedMeasurements is true when the line held an additive chain
	// like "1 cup plus 2 tbsp".
	HasAddedMeasurements bool `json:"hasAddedMeasurements" yaml:"hasAddedMeasurements"`
}

// Primary returns the first measurement.
func (r *Result) Primary() Measurement {
	if r == nil || len(r.Measurements) == 0 {
		return Measurement{}
	}
	return r.Measurements[0]
}
