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
// Package entryargs expands the positional <ENTRY>... arguments shared by
// the analyze and check commands: literal file paths and doublestar glob
// patterns, merged into one deduplicated absolute-path list.
package entryargs

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Expand turns args into a deduplicated, absolute entry-point list. Glob
// patterns expand in the glob library's sorted match order; literal paths
// keep their position. Order is preserved overall, so entry-point priority
// during the crawl follows the command line.
func Expand(args []string) ([]string, error) {
	seen := make(map[string]struct{})
	var entries []string

	add := func(path string) error {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("invalid path %q: %w", path, err)
		}
		if _, exists := seen[abs]; exists {
			return nil
		}
		seen[abs] = struct{}{}
		entries = append(entries, abs)
		return nil
	}

	for _, arg := range args {
		if !doublestar.ValidatePattern(arg) || !containsGlobMeta(arg) {
			if err := add(arg); err != nil {
				return nil, err
			}
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", arg, err)
		}
		for _, m := range matches {
			if err := add(m); err != nil {
				return nil, err
			}
		}
	}
	return entries, nil
}

func containsGlobMeta(s string) bool {
	for _, r := range s {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
