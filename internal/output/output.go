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

// Package output provides shared output utilities for sass-dep CLI commands.
package output

import (
	"fmt"

	"github.com/emiliodominguez/sass-dep/fs"
)

// Write sends data to path if given, otherwise to stdout.
func Write(osfs fs.FileSystem, path string, data []byte) error {
	if path != "" {
		return osfs.WriteFile(path, append(append([]byte{}, data...), '\n'), 0644)
	}
	fmt.Println(string(data))
	return nil
}
