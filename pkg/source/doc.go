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

// Package source reads ingredient lines for batch parsing.
//
// Three layouts are accepted:
//
//	# text: one line per ingredient, '#' comments and blank lines skipped
//	1 cup flour
//	2 tbsp honey
//
//	["1 cup flour", "2 tbsp honey"]          // JSON list
//	{"lines": ["1 cup flour", "2 tbsp honey"]} // JSON document
//
//	lines:                                    # YAML document
//	  - 1 cup flour
//	  - 2 tbsp honey
//
// Input must be valid UTF-8 and is bounded in size and line count.
// Failures are returned as structured errors with NOT_FOUND,
// INVALID_REQUEST or INTERNAL codes.
package source
