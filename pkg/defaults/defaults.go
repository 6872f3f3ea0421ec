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

package defaults

import "time"

// Input limits.
const (
	// MaxLineLength is the longest ingredient line, in bytes, accepted by
	// the batch runner and the CLI.
	MaxLineLength = 4096

	// MaxBatchLines is the largest number of lines read from a single input.
	MaxBatchLines = 100_000
)

// Batch tuning.
const (
	// BatchConcurrency is the default number of lines parsed in parallel.
	BatchConcurrency = 8

	// MaxBatchConcurrency caps user-provided concurrency.
	MaxBatchConcurrency = 256

	// BatchTimeout is the default deadline for a whole batch run.
	BatchTimeout = 5 * time.Minute
)
