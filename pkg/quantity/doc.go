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

// Package quantity tokenizes the numeric part of an ingredient line.
//
// It understands integers, decimals, simple fractions ("1/2"), mixed
// numbers ("1 1/2", "1 and 1/2", "1&1/2"), unicode fraction glyphs
// ("½", after NormalizeFractions) and ranges ("1-2", "1 to 2").
//
// # Rounding
//
// Every fraction or decimal is rounded to three decimal places, half away
// from zero, so "1/3" becomes 0.333 and "2/3" becomes 0.667. Mixed numbers
// are rounded per component and then summed: "1 1/3" is 1 + 0.333.
//
// # Grammar
//
//	range    := amount ws* ('-' | '–' | "to") ws* amount
//	amount   := number [ws* ("and" | '&')? ws* fraction]   ; fraction only after an integer
//	number   := digits ('.' digits | '/' digits)?
//	fraction := digits '/' digits
//
// The grammar is matched by a hand-written scanner that never backtracks
// more than a single optional production, so matching is linear in the
// input length regardless of content.
package quantity
