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
// Package analyze provides the analyze command for sass-dep: crawl one or
// more entry points and emit the deterministic dependency-graph document.
package analyze

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	sassanalyze "github.com/emiliodominguez/sass-dep/analyze"
	"github.com/emiliodominguez/sass-dep/crawl"
	"github.com/emiliodominguez/sass-dep/emit"
	"github.com/emiliodominguez/sass-dep/fs"
	"github.com/emiliodominguez/sass-dep/internal/config"
	"github.com/emiliodominguez/sass-dep/internal/entryargs"
	"github.com/emiliodominguez/sass-dep/internal/logging"
	"github.com/emiliodominguez/sass-dep/internal/output"
	"github.com/emiliodominguez/sass-dep/internal/version"
	"github.com/emiliodominguez/sass-dep/resolve"
)

// Cmd is the analyze cobra command.
var Cmd = &cobra.Command{
	Use:   "analyze [-o FILE] [--format json] [--include-orphans] <ENTRY>...",
	Short: "Crawl SCSS entry points and emit the dependency graph",
	Long: `analyze crawls one or more SCSS entry points, resolving @use/@forward/@import
directives into a deterministic dependency graph, and writes the result as
a versioned JSON document.

Entry point arguments may be literal files or doublestar glob patterns
(e.g. "src/**/*.scss"); both forms may be mixed.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	Cmd.Flags().StringP("format", "f", "json", "Output format (currently only json)")
	Cmd.Flags().Bool("include-orphans", false, "also report .scss/.sass files unreachable from any entry point")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	verboseCount, _ := cmd.Flags().GetCount("verbose")
	log := logging.New(logging.FromFlags(quiet, verboseCount))

	if printConfig, _ := cmd.Flags().GetBool("print-config"); printConfig {
		if err := config.PrintConfig(cfg); err != nil {
			return err
		}
	}

	format, _ := cmd.Flags().GetString("format")
	if format != "json" {
		return fmt.Errorf("unsupported --format %q: only json is supported", format)
	}
	includeOrphans, _ := cmd.Flags().GetBool("include-orphans")

	absRoot, err := filepath.Abs(cfg.Root)
	if err != nil {
		return fmt.Errorf("invalid --root: %w", err)
	}

	entryPoints, err := entryargs.Expand(args)
	if err != nil {
		return err
	}
	if len(entryPoints) == 0 {
		return fmt.Errorf("no entry points given: pass file paths or glob patterns")
	}

	osfs := fs.NewOSFileSystem()
	resolverCfg := resolve.NewConfig().
		WithLoadPaths(cfg.LoadPaths...).
		WithExtensions(cfg.Extensions...).
		WithLogger(log)

	crawler := crawl.New(osfs, crawl.Options{
		RootDir:        absRoot,
		Resolver:       resolverCfg,
		IncludeOrphans: includeOrphans,
		Logger:         log,
	})

	g, diagnostics, crawlErr := crawler.Crawl(entryPoints)
	if crawlErr != nil {
		return crawlErr
	}
	for _, d := range diagnostics {
		fmt.Fprintf(os.Stderr, "warning: %v\n", d)
	}

	thresholds := sassanalyze.Thresholds{
		HighFanIn:  cfg.Thresholds.HighFanIn,
		HighFanOut: cfg.Thresholds.HighFanOut,
	}
	sassanalyze.Analyze(g, thresholds, log)

	doc := emit.Build(g, absRoot, version.GetVersion(), buildTimestamp())

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}

	outputPath, _ := cmd.Flags().GetString("output")
	return output.Write(osfs, outputPath, out)
}

// buildTimestamp is the run's generated_at instant, isolated in its own
// function so tests could stub it if the document ever needs to be
// golden-compared byte for byte.
func buildTimestamp() time.Time {
	return time.Now()
}
