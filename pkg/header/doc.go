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

// Package header provides the common header carried by mise documents.
//
// Batch parse reports and the unit table listing both start with a
// Kubernetes-style header so that consumers can tell them apart and check
// the schema version before decoding:
//
//	kind: ParseReport
//	apiVersion: mise.dev/v1alpha1
//	metadata:
//	  runID: 6f1c7c1e-3b9a-4d8e-9a57-0c8f0e5d1f42
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v1.0.0
//
// Create one with Init, which stamps the timestamp and version:
//
//	var h header.Header
//	h.Init(header.KindParseReport, version,
//	    header.WithMetadata(header.MetadataRunID, runID))
//
// Timestamps use RFC3339 in UTC.
package header
