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
// Package initconfig provides the init-config command for sass-dep: write
// a starter .sass-dep.toml.
package initconfig

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliodominguez/sass-dep/fs"
	"github.com/emiliodominguez/sass-dep/internal/config"
)

// Cmd is the init-config cobra command.
var Cmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a starter .sass-dep.toml in the current directory",
	RunE:  run,
}

func init() {
	Cmd.Flags().String("path", ".sass-dep.toml", "path to write the starter config")
}

func run(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("path")
	osfs := fs.NewOSFileSystem()
	if osfs.Exists(path) {
		return fmt.Errorf("%s already exists; remove it first or pass --path", path)
	}
	if err := config.WriteStarter(osfs, path); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
