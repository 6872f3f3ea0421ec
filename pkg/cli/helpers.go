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


package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	cnserrors "github.com/mchmarny/mise/pkg/errors"
	"github.com/mchmarny/mise/pkg/serializer"
)

// parseOutputFormat reads and validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("format"))))
	if outFormat.IsUnknown() {
		return "", cnserrors.New(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown output format: %q, supported values: %v", outFormat, serializer.SupportedFormats()))
	}
	return outFormat, nil
}

// newOutputWriter returns a writer for the --output file, or for the
// command's stdout when no file is set.
func newOutputWriter(cmd *cli.Command, format serializer.Format) (*serializer.Writer, error) {
	path := strings.TrimSpace(cmd.String("output"))
	if path == "" {
		return serializer.NewWriter(format, stdout(cmd)), nil
	}
	w, err := serializer.NewFileWriterOrStdout(format, path)
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to open output", err)
	}
	return w, nil
}
