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


// Package name separates an ingredient name from trailing descriptive
// text once all measurements have been removed from a line.
//
//	name.Split("of butter, sliced into tablespoons")
//	// "butter", "sliced into tablespoons"
//
//	name.Split("garlic (minced)")
//	// "garlic", "minced"
//
// A parenthetical that opens the text, as in "(optional) salt", is moved
// to the additional text and the name is taken from what follows it.
package name
