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

// Package defaults provides centralized configuration constants for mise.
//
// This package defines input limits, batch tuning values and timeouts used
// across the codebase. Centralizing these values ensures consistency and
// makes tuning easier.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/mchmarny/mise/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.BatchTimeout)
//	defer cancel()
//
// # Limits
//
// MaxLineLength bounds a single ingredient line. The parser is linear in
// its input, so the limit protects memory and output size rather than
// parse time. Lines over the limit are rejected by the batch runner and
// the CLI with an INPUT_TOO_LONG error; the library Parse function still
// accepts them.
package defaults
