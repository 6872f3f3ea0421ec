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

package unit

import (
	"encoding/json"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Unit is a canonical measurement unit name.
// The zero value means no unit was recognized and serializes as null.
type Unit string

// Canonical unit vocabulary.
const (
	None       Unit = ""
	Cup        Unit = "cup"
	Clove      Unit = "clove"
	Gallon     Unit = "gallon"
	Ounce      Unit = "ounce"
	Pint       Unit = "pint"
	Pound      Unit = "pound"
	Quart      Unit = "quart"
	Tablespoon Unit = "tablespoon"
	Teaspoon   Unit = "teaspoon"
	Gram       Unit = "gram"
	Kilogram   Unit = "kilogram"
	Liter      Unit = "liter"
	Milligram  Unit = "milligram"
	Milliliter Unit = "milliliter"
	Piece      Unit = "piece"
	Pinch      Unit = "pinch"
	Slice      Unit = "slice"
	Stick      Unit = "stick"
	Small      Unit = "small"
	Medium     Unit = "medium"
	Large      Unit = "large"
	Can        Unit = "can"
	Bag        Unit = "bag"
	Box        Unit = "box"
	Package    Unit = "package"
)

// String returns the string representation of the Unit.
func (u Unit) String() string {
	return string(u)
}

// IsNone reports whether no unit was recognized.
func (u Unit) IsNone() bool {
	return u == None
}

// IsPackage reports whether u is a countable container unit whose size
// is often given by an embedded conversion (bag, box, can, package).
func (u Unit) IsPackage() bool {
	switch u {
	case Can, Bag, Box, Package:
		return true
	default:
		return false
	}
}

// IsConvertible reports whether u may appear inside a conversion marker
// such as "(4 tbsp.)" or "/28 g".
func (u Unit) IsConvertible() bool {
	switch u {
	case None, Clove, Small, Medium, Large:
		return false
	default:
		return !u.IsPackage()
	}
}

// MarshalJSON encodes None as null.
func (u Unit) MarshalJSON() ([]byte, error) {
	if u == None {
		return []byte("null"), nil
	}
	return json.Marshal(string(u))
}

// UnmarshalJSON decodes null as None.
func (u *Unit) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		*u = None
		return nil
	}
	*u = Unit(*s)
	return nil
}

// MarshalYAML encodes None as null.
func (u Unit) MarshalYAML() (any, error) {
	if u == None {
		return nil, nil
	}
	return string(u), nil
}

// aliases is the alias to canonical unit table. It is populated once in
// init and only read afterwards.
var aliases map[string]Unit

// maxAliasLen is the length of the longest alias, used by scanners to
// skip tokens that cannot possibly be units.
var maxAliasLen int

var spellings = map[Unit][]string{
	Cup:    {"cup", "cups", "c"},
	Clove:  {"clove", "cloves"},
	Gallon: {"gallon", "gallons", "gal", "gals"},
	Ounce:  {"ounce", "ounces", "oz"},
	Pint:   {"pint", "pints", "pt", "pts"},
	Pound:  {"pound", "pounds", "lb", "lbs"},
	Quart:  {"quart", "quarts", "qt", "qts"},
	Tablespoon: {
		"tablespoon", "tablespoons",
		"tbs", "tbsp", "tbsn", "tbss", "tbspn", "tbsps", "tbsns", "tbspns",
	},
	Teaspoon:   {"teaspoon", "teaspoons", "tsp", "tspn", "tsps", "tspns"},
	Gram:       {"gram", "grams", "g"},
	Kilogram:   {"kilogram", "kilograms", "kg", "kgs"},
	Liter:      {"liter", "liters", "litre", "litres", "l", "lt"},
	Milligram:  {"milligram", "milligrams", "mg", "mgs"},
	Milliliter: {"milliliter", "milliliters", "millilitre", "millilitres", "ml", "mls"},
	Piece:      {"piece", "pieces", "pc", "pcs"},
	Pinch:      {"pinch", "pinche", "pinchs", "pinches"},
	Slice:      {"slice", "slices"},
	Stick:      {"stick", "sticks"},
	Small:      {"small", "sm"},
	Medium:     {"medium", "med"},
	Large:      {"large", "lg"},
	Can:        {"can", "cans"},
	Bag:        {"bag", "bags"},
	Box:        {"box", "boxe", "boxs", "boxes"},
	Package:    {"package", "packages", "pkg", "pkgs"},
}

func init() {
	aliases = make(map[string]Unit)
	for u, names := range spellings {
		for _, n := range names {
			aliases[n] = u
			if len(n) > maxAliasLen {
				maxAliasLen = len(n)
			}
		}
	}
}

// Lookup returns the canonical unit for an alias.
// The alias must already be folded (see Fold). Unknown aliases return
// None and false.
func Lookup(alias string) (Unit, bool) {
	u, ok := aliases[alias]
	return u, ok
}

// Fold lowercases and trims a raw token and strips a single trailing
// period, producing the form Lookup expects.
func Fold(token string) string {
	token = strings.TrimSpace(token)
	token = strings.TrimSuffix(token, ".")
	return cases.Lower(language.English).String(token)
}

// Parse folds a raw token and looks it up in one step.
func Parse(token string) (Unit, bool) {
	if len(token) == 0 || len(token) > MaxTokenLen() {
		return None, false
	}
	return Lookup(Fold(token))
}

// MaxTokenLen is the longest raw token (alias plus trailing period) that
// can fold to a known alias.
func MaxTokenLen() int {
	return maxAliasLen + 1
}

// All returns the canonical vocabulary in alphabetical order.
func All() []Unit {
	units := make([]Unit, 0, len(spellings))
	for u := range spellings {
		units = append(units, u)
	}
	sort.Slice(units, func(i, j int) bool { return units[i] < units[j] })
	return units
}

// Aliases returns the sorted aliases accepted for u.
func Aliases(u Unit) []string {
	names := append([]string(nil), spellings[u]...)
	sort.Strings(names)
	return names
}
