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

// Package ingredient parses free-form recipe ingredient lines into
// structured measurements.
//
// A line is read left to right: an optional quantity or range, a unit, an
// optional conversion in parentheses or after a slash, any additive terms
// ("plus 2 tbsp"), and finally the ingredient name with optional trailing
// detail:
//
//	r := ingredient.Parse("1 cup (4 tbsp.) honey, warmed")
//	// r.Measurements[0]: {Quantity: [1], Unit: cup}
//	// r.Converted:       {Quantity: [4], Unit: tablespoon}
//	// r.Name:            "honey"
//	// *r.Additional:     "warmed"
//
// Package units (bag, box, can, package) are found anywhere in the line
// and pick up a size conversion on either side of them:
//
//	ingredient.Parse("1 (8 oz) can of tomato paste")
//	ingredient.Parse("1 can (8 oz) of tomato paste")
//
// Parsing never fails. Fields that cannot be recognized are null and the
// unconsumed text ends up in the name. Parse runs in time linear in the
// length of the line; use Validate to bound untrusted input.
//
// Quantities are rounded to 3 decimal places, so "1/3" is 0.333 and
// "1 2/3" is 1.667. Ranges keep their written order: "3 to 2" is [3, 2].
package ingredient
