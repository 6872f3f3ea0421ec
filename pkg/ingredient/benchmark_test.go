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
	"testing"
)

func BenchmarkParse(b *testing.B) {
	lines := []string{
		"1 cup water",
		"1 1/2 cups (12 oz) flour, sifted",
		"2 & 1/8 - 3 & 2/3 tsp salt",
		"1 tbsp plus 1 tsp of water",
		"1 (8 oz) can of tomato paste",
		"salt and pepper, to taste",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Parse(lines[i%len(lines)])
	}
}

func BenchmarkParseLongLine(b *testing.B) {
	line := "1 cup " + strings.Repeat("very long ingredient name ", 150)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Parse(line)
	}
}

func BenchmarkParseDigitRun(b *testing.B) {
	line := strings.Repeat("1", 4096)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Parse(line)
	}
}
