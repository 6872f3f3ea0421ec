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
	"context"
	"log/slog"

	cnserrors "github.com/mchmarny/mise/pkg/errors"
)

// diagnose logs a failure the parser absorbed as a structured error at
// debug level. kv are context key-value pairs. Nothing is built unless
// debug logging is enabled.
func diagnose(code cnserrors.ErrorCode, message string, kv ...any) {
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	fields := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			fields[k] = kv[i+1]
		}
	}
	slog.Debug(message, "error", cnserrors.NewWithContext(code, message, fields))
}
