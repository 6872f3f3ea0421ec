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

package header

import (
	"time"
)

// Kind represents the type of a mise document.
type Kind string

// Valid Kind constants for mise document types.
const (
	KindParseReport Kind = "ParseReport"
	KindUnitTable   Kind = "UnitTable"
)

// APIVersion is the schema version stamped on every mise document.
const APIVersion = "mise.dev/v1alpha1"

// Metadata keys set by Init and the batch runner.
const (
	MetadataTimestamp = "timestamp"
	MetadataVersion   = "version"
	MetadataRunID     = "runID"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k *Kind) IsValid() bool {
	switch *k {
	case KindParseReport, KindUnitTable:
		return true
	default:
		return false
	}
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata returns an Option that adds a metadata key-value pair to the Header.
// If the Metadata map is nil, it will be initialized.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind returns an Option that sets the Kind field of the Header.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion returns an Option that sets the APIVersion field of the Header.
func WithAPIVersion(version string) Option {
	return func(h *Header) {
		h.APIVersion = version
	}
}

// Header identifies a mise document: what it is, which schema it follows
// and when and by which build it was produced.
type Header struct {
	// Kind is the type of the document.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the document.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs such as timestamp, version and run id.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init sets Kind and APIVersion and resets Metadata to the current UTC
// timestamp plus the tool version when one is given. Options are applied
// last and may override any of these.
func (h *Header) Init(kind Kind, version string, opts ...Option) {
	h.Metadata = make(map[string]string)

	base := []Option{
		WithKind(kind),
		WithAPIVersion(APIVersion),
		WithMetadata(MetadataTimestamp, time.Now().UTC().Format(time.RFC3339)),
	}
	if version != "" {
		base = append(base, WithMetadata(MetadataVersion, version))
	}

	for _, opt := range append(base, opts...) {
		opt(h)
	}
}
