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

// Command sass-dep is a static dependency analyzer for SCSS projects.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"

	"github.com/emiliodominguez/sass-dep/cmd/analyze"
	checkcmd "github.com/emiliodominguez/sass-dep/cmd/check"
	"github.com/emiliodominguez/sass-dep/cmd/export"
	"github.com/emiliodominguez/sass-dep/cmd/initconfig"
	"github.com/emiliodominguez/sass-dep/cmd/version"
	"github.com/emiliodominguez/sass-dep/crawl"
	"github.com/emiliodominguez/sass-dep/internal/config"
	"github.com/emiliodominguez/sass-dep/scan"
)

var (
	cpuprofile     string
	cpuprofileFile *os.File
	rootCmd        = &cobra.Command{
		Use:   "sass-dep",
		Short: "Static dependency analysis for SCSS projects",
		Long: `sass-dep crawls @use/@forward/@import directives from one or more SCSS
entry points, builds a deterministic dependency graph, and reports
structural metrics, cycles, and constraint violations.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cpuprofile != "" {
				f, err := os.Create(cpuprofile)
				if err != nil {
					return fmt.Errorf("could not create CPU profile: %w", err)
				}
				cpuprofileFile = f
				if err := pprof.StartCPUProfile(f); err != nil {
					closeErr := f.Close()
					return errors.Join(
						fmt.Errorf("could not start CPU profile: %w", err),
						closeErr,
					)
				}
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if cpuprofileFile != nil {
				pprof.StopCPUProfile()
				if err := cpuprofileFile.Close(); err != nil {
					return fmt.Errorf("closing CPU profile: %w", err)
				}
			}
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cpuprofile, "cpuprofile", "", "Write CPU profile to file")
	config.BindFlags(rootCmd)

	rootCmd.AddCommand(analyze.Cmd)
	rootCmd.AddCommand(checkcmd.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(initconfig.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

func main() {
	os.Exit(runMain())
}

// runMain executes the root command and maps its error, if any, to sass-dep's
// exit code contract: 0 success, 1 check violations, 2 bad arguments/config,
// 3 I/O, 4 parse error.
func runMain() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFor(err)
	}
	return 0
}

func exitCodeFor(err error) int {
	var violations *checkcmd.ViolationsError
	if errors.As(err, &violations) {
		return 1
	}

	var ioErr *crawl.IoError
	if errors.As(err, &ioErr) {
		return 3
	}

	var parseErr *scan.ParseError
	if errors.As(err, &parseErr) {
		return 4
	}

	return 2
}
