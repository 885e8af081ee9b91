/*
Copyright © 2026 Emilio Dominguez <emiliodominguez@users.noreply.github.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/
// Package export provides the export command for sass-dep: render a
// previously emitted analyze document as DOT, Mermaid, or D2.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emiliodominguez/sass-dep/emit"
	"github.com/emiliodominguez/sass-dep/fs"
	"github.com/emiliodominguez/sass-dep/internal/output"
)

// Cmd is the export cobra command.
var Cmd = &cobra.Command{
	Use:   "export [--format dot|mermaid|d2] <INPUT.json>",
	Short: "Render a sass-dep analyze document as DOT, Mermaid, or D2",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "dot", "Output format (dot, mermaid, d2)")
	Cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	var doc emit.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	var rendered string
	switch format {
	case "dot":
		rendered = renderDOT(doc)
	case "mermaid":
		rendered = renderMermaid(doc)
	case "d2":
		rendered = renderD2(doc)
	default:
		return fmt.Errorf("unsupported --format %q: must be one of dot, mermaid, d2", format)
	}

	outputPath, _ := cmd.Flags().GetString("output")
	return output.Write(fs.NewOSFileSystem(), outputPath, []byte(rendered))
}
