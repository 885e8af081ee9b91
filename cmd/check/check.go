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
// Package check provides the check command for sass-dep: crawl and analyze
// entry points, then fail (exit 1) if the graph violates any declared
// constraint.
package check

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	sassanalyze "github.com/emiliodominguez/sass-dep/analyze"
	sasscheck "github.com/emiliodominguez/sass-dep/check"
	"github.com/emiliodominguez/sass-dep/crawl"
	"github.com/emiliodominguez/sass-dep/fs"
	"github.com/emiliodominguez/sass-dep/internal/config"
	"github.com/emiliodominguez/sass-dep/internal/entryargs"
	"github.com/emiliodominguez/sass-dep/internal/logging"
	"github.com/emiliodominguez/sass-dep/resolve"
)

// ViolationsError signals that Check found constraint violations; the root
// command maps it to exit code 1.
type ViolationsError struct {
	Violations []sasscheck.Violation
}

func (e *ViolationsError) Error() string {
	return fmt.Sprintf("%d constraint violation(s)", len(e.Violations))
}

// Cmd is the check cobra command.
var Cmd = &cobra.Command{
	Use:   "check [--no-cycles] [--max-depth N] [--max-fan-out N] [--max-fan-in N] <ENTRY>...",
	Short: "Validate a crawled dependency graph against declared constraints",
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("no-cycles", false, "fail if the graph contains any cycle")
	Cmd.Flags().Int("max-depth", 0, "fail if any reachable node exceeds this depth")
	Cmd.Flags().Int("max-fan-out", 0, "fail if any node exceeds this fan-out")
	Cmd.Flags().Int("max-fan-in", 0, "fail if any node exceeds this fan-in")
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

	crawler := crawl.New(osfs, crawl.Options{RootDir: absRoot, Resolver: resolverCfg, Logger: log})
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

	constraints, err := constraintsFromFlags(cmd)
	if err != nil {
		return err
	}

	result := sasscheck.Check(g, constraints)
	if result.Passed {
		fmt.Println("ok: no constraint violations")
		return nil
	}

	for _, v := range result.Violations {
		fmt.Fprintln(os.Stderr, v.String())
	}
	return &ViolationsError{Violations: result.Violations}
}

func constraintsFromFlags(cmd *cobra.Command) (sasscheck.Constraints, error) {
	noCycles, _ := cmd.Flags().GetBool("no-cycles")
	c := sasscheck.Constraints{NoCycles: noCycles}

	if cmd.Flags().Changed("max-depth") {
		v, _ := cmd.Flags().GetInt("max-depth")
		c.MaxDepth = &v
	}
	if cmd.Flags().Changed("max-fan-out") {
		v, _ := cmd.Flags().GetInt("max-fan-out")
		c.MaxFanOut = &v
	}
	if cmd.Flags().Changed("max-fan-in") {
		v, _ := cmd.Flags().GetInt("max-fan-in")
		c.MaxFanIn = &v
	}
	return c, nil
}
