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
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/mise/pkg/defaults"
	"github.com/mchmarny/mise/pkg/ingredient"
	"github.com/mchmarny/mise/pkg/serializer"
	"github.com/mchmarny/mise/pkg/source"
)

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Parse one or more ingredient lines",
		ArgsUsage:             "[LINE...]",
		Description: `Parse the ingredient lines given as arguments. Without arguments,
lines are read from stdin, one per line; blank lines and lines starting
with # are skipped.

A single line is written as one result object. Multiple lines are
written as a list pairing each line with its result.

Examples:
  mise parse "1 1/2 cups flour, sifted"
  mise parse --format table "2 cans fruit (15 oz)" "3-4 large eggs"
  cat ingredients.txt | mise parse --format yaml`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			lines := cmd.Args().Slice()
			if len(lines) == 0 {
				lines, err = source.NewReader().Read(stdin(cmd), source.FormatText)
				if err != nil {
					return err
				}
			}

			parsed := make(ingredient.Lines, 0, len(lines))
			for _, line := range lines {
				if err := ingredient.ValidateLength(line, defaults.MaxLineLength); err != nil {
					return err
				}
				parsed = append(parsed, ingredient.Line{Line: line, Result: ingredient.Parse(line)})
			}
			slog.Debug("parsed lines", "count", len(parsed))

			ser, err := newOutputWriter(cmd, outFormat)
			if err != nil {
				return err
			}
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			if len(parsed) == 1 && outFormat != serializer.FormatTable {
				return ser.Serialize(ctx, parsed[0].Result)
			}
			return ser.Serialize(ctx, parsed)
		},
	}
}
