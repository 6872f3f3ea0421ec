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

// Package unit holds the canonical cooking unit vocabulary and the alias
// table that maps every accepted spelling onto it.
//
// Aliases cover singular, plural and abbreviated spellings ("tbsp",
// "tbspns", "c", "lbs"). Callers fold raw tokens before lookup:
//
//	u, ok := unit.Lookup(unit.Fold("Tbsp."))
//	// u == unit.Tablespoon, ok == true
//
// The table is built once during package initialization and is read-only
// afterwards, so lookups are safe for concurrent use.
//
// Units fall into three groups:
//   - direct units that follow a quantity ("2 cups", "1 large")
//   - package units (bag, box, can, package) that may carry a size elsewhere
//     in the line
//   - convertible units, the subset allowed inside a conversion such as
//     "(4 tbsp.)"
package unit
