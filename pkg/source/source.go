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

package source

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mchmarny/mise/pkg/defaults"
	cnserrors "github.com/mchmarny/mise/pkg/errors"
	"github.com/mchmarny/mise/pkg/serializer"
)

// Format is the layout of an ingredient line input.
type Format string

const (
	// FormatText is one ingredient line per text line.
	FormatText Format = "text"
	// FormatJSON is a JSON array of strings or an object with a "lines" array.
	FormatJSON Format = "json"
	// FormatYAML is a YAML sequence of strings or a mapping with a "lines" sequence.
	FormatYAML Format = "yaml"
)

// SupportedFormats returns the accepted input formats.
func SupportedFormats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML)}
}

// IsValid reports whether f is a supported input format.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// FormatFromPath picks the input format from a file extension, defaulting
// to text.
func FormatFromPath(path string) Format {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".json"):
		return FormatJSON
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return FormatYAML
	default:
		return FormatText
	}
}

// Document is the structured input form: {"lines": ["1 cup water", ...]}.
type Document struct {
	Lines []string `json:"lines" yaml:"lines"`
}

// Option configures a Reader.
type Option func(*Reader)

// Reader reads ingredient lines from text, JSON or YAML input.
type Reader struct {
	maxSize      int
	maxLines     int
	skipComments bool
}

// WithMaxSize sets the maximum input size in bytes.
// Default is 16MB.
func WithMaxSize(size int) Option {
	return func(r *Reader) {
		r.maxSize = size
	}
}

// WithMaxLines sets the maximum number of lines accepted.
// Default is defaults.MaxBatchLines.
func WithMaxLines(n int) Option {
	return func(r *Reader) {
		r.maxLines = n
	}
}

// WithSkipComments sets whether text lines starting with '#' are skipped.
// Default is true.
func WithSkipComments(skip bool) Option {
	return func(r *Reader) {
		r.skipComments = skip
	}
}

// NewReader creates a line Reader with the provided options.
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		maxSize:      16 << 20,
		maxLines:     defaults.MaxBatchLines,
		skipComments: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadFile reads the lines of the file at path. An empty format is
// detected from the file extension.
func (r *Reader) ReadFile(path string, format Format) ([]string, error) {
	if path == "" {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "input path cannot be empty")
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cnserrors.Wrap(cnserrors.ErrCodeNotFound, fmt.Sprintf("input file %q not found", path), err)
		}
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInternal, fmt.Sprintf("failed to open %q", path), err)
	}
	defer f.Close()

	if format == "" {
		format = FormatFromPath(path)
	}
	slog.Debug("reading input", "path", path, "format", format)

	return r.Read(f, format)
}

// Read reads lines from in. Text input yields one trimmed, non-empty line
// per text line; JSON and YAML input yield their string entries in order,
// with empty entries dropped.
func (r *Reader) Read(in io.Reader, format Format) ([]string, error) {
	b, err := io.ReadAll(io.LimitReader(in, int64(r.maxSize)+1))
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to read input", err)
	}
	if len(b) > r.maxSize {
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("input exceeds maximum size of %d bytes", r.maxSize),
			map[string]any{"limit": r.maxSize})
	}
	if !utf8.Valid(b) {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "input is not valid UTF-8")
	}

	var lines []string
	switch format {
	case FormatText, "":
		lines = r.splitText(string(b))
	case FormatJSON:
		lines, err = decode(serializer.FormatJSON, b)
	case FormatYAML:
		lines, err = decode(serializer.FormatYAML, b)
	default:
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest, fmt.Sprintf("unsupported input format: %s", format))
	}
	if err != nil {
		return nil, err
	}

	if r.maxLines > 0 && len(lines) > r.maxLines {
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("input has %d lines, maximum is %d", len(lines), r.maxLines),
			map[string]any{"lines": len(lines), "limit": r.maxLines})
	}
	return lines, nil
}

func (r *Reader) splitText(content string) []string {
	parts := strings.Split(content, "\n")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		clean := strings.TrimSpace(part)
		if clean == "" {
			continue
		}
		if r.skipComments && strings.HasPrefix(clean, "#") {
			continue
		}
		result = append(result, clean)
	}
	return result
}

// decode accepts either a bare list of strings or a Document.
func decode(format serializer.Format, b []byte) ([]string, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return []string{}, nil
	}

	var list []string
	listErr := deserialize(format, b, &list)
	if listErr == nil {
		return compact(list), nil
	}

	var doc Document
	if err := deserialize(format, b, &doc); err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("input is neither a %s list of strings nor a document with lines", format), listErr)
	}
	return compact(doc.Lines), nil
}

func deserialize(format serializer.Format, b []byte, v any) error {
	r, err := serializer.NewReader(format, bytes.NewReader(b))
	if err != nil {
		return err
	}
	defer r.Close()
	return r.Deserialize(v)
}

func compact(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
