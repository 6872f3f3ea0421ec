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

// Package serializer writes parse results as JSON, YAML or a text table
// and reads JSON or YAML documents back.
//
// # Formats
//
//   - JSON: indented, for programmatic consumption
//   - YAML: gopkg.in/yaml.v3, for review and version control
//   - Table: aligned columns for the terminal; write-only
//
// Values implementing Tabular (parse reports, result lists, the unit
// table) render as column tables. Anything else is flattened into sorted
// FIELD/VALUE rows.
//
// # Writing
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	if err := w.Serialize(ctx, report); err != nil {
//	    return err
//	}
//
// # Reading
//
//	report, err := serializer.FromFile[batch.Report]("report.json")
//
// FormatFromPath maps .json, .yaml/.yml and .table/.txt extensions to a
// Format, defaulting to JSON.
package serializer
