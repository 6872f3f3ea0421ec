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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/mise/pkg/header"
	"github.com/mchmarny/mise/pkg/unit"
)

// UnitEntry is a canonical unit with its accepted spellings.
type UnitEntry struct {
	Unit        unit.Unit `json:"unit" yaml:"unit"`
	Aliases     []string  `json:"aliases" yaml:"aliases"`
	Package     bool      `json:"package" yaml:"package"`
	Convertible bool      `json:"convertible" yaml:"convertible"`
}

// UnitTable lists the unit vocabulary.
type UnitTable struct {
	header.Header `json:",inline" yaml:",inline"`

	Units []UnitEntry `json:"units" yaml:"units"`
}

// TableHeader implements serializer.Tabular.
func (t *UnitTable) TableHeader() []string {
	return []string{"UNIT", "ALIASES", "PACKAGE", "CONVERTIBLE"}
}

// TableRows implements serializer.Tabular.
func (t *UnitTable) TableRows() [][]string {
	rows := make([][]string, 0, len(t.Units))
	for _, u := range t.Units {
		rows = append(rows, []string{
			u.Unit.String(),
			strings.Join(u.Aliases, ", "),
			yesNo(u.Package),
			yesNo(u.Convertible),
		})
	}
	return rows
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func newUnitTable() *UnitTable {
	all := unit.All()
	t := &UnitTable{Units: make([]UnitEntry, 0, len(all))}
	t.Init(header.KindUnitTable, version)
	for _, u := range all {
		t.Units = append(t.Units, UnitEntry{
			Unit:        u,
			Aliases:     unit.Aliases(u),
			Package:     u.IsPackage(),
			Convertible: u.IsConvertible(),
		})
	}
	return t
}

func unitsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "units",
		EnableShellCompletion: true,
		Usage:                 "List recognized units and their aliases",
		Description: `List the canonical units recognized by the parser, the spellings
accepted for each, and whether the unit is a package (can, bag, box,
package) or may appear inside a conversion such as "(8 oz)".
Matching is case-insensitive and a trailing period is ignored.`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			ser, err := newOutputWriter(cmd, outFormat)
			if err != nil {
				return err
			}
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, newUnitTable())
		},
	}
}
