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
package resolve

import (
	"testing"

	"github.com/emiliodominguez/sass-dep/internal/mapfs"
)

func TestResolveRelativeFile(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/src/main.scss", "", 0644)
	mfs.AddFile("/proj/src/colors.scss", "", 0644)

	result, err := Resolve(mfs, "/proj/src/main.scss", "./colors", NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Path != "/proj/src/colors.scss" {
		t.Fatalf("got %q", result.Path)
	}
	if result.Warning != nil {
		t.Fatalf("unexpected warning: %v", result.Warning)
	}
}

func TestResolveFallsBackToPartialUnderscoreForm(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/src/main.scss", "", 0644)
	mfs.AddFile("/proj/src/_colors.scss", "", 0644)

	result, err := Resolve(mfs, "/proj/src/main.scss", "colors", NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Path != "/proj/src/_colors.scss" {
		t.Fatalf("got %q", result.Path)
	}
}

func TestResolveIndexForm(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/src/main.scss", "", 0644)
	mfs.AddFile("/proj/src/utils/_index.scss", "", 0644)

	result, err := Resolve(mfs, "/proj/src/main.scss", "utils", NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Path != "/proj/src/utils/_index.scss" {
		t.Fatalf("got %q", result.Path)
	}
}

func TestResolveAmbiguousPartialVsNonPartial(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/src/main.scss", "", 0644)
	mfs.AddFile("/proj/src/colors.scss", "", 0644)
	mfs.AddFile("/proj/src/_colors.scss", "", 0644)

	result, err := Resolve(mfs, "/proj/src/main.scss", "colors", NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Path != "/proj/src/colors.scss" {
		t.Fatalf("expected non-partial to win tiebreak, got %q", result.Path)
	}
	if result.Warning == nil || result.Warning.Kind != Ambiguous {
		t.Fatalf("expected an Ambiguous warning, got %v", result.Warning)
	}
}

func TestResolveExtensionPrecedence(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/src/main.scss", "", 0644)
	mfs.AddFile("/proj/src/colors.scss", "", 0644)
	mfs.AddFile("/proj/src/colors.sass", "", 0644)

	result, err := Resolve(mfs, "/proj/src/main.scss", "colors", NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Path != "/proj/src/colors.scss" {
		t.Fatalf("expected .scss to win extension precedence, got %q", result.Path)
	}
}

func TestResolveLoadPathFallback(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/src/main.scss", "", 0644)
	mfs.AddFile("/proj/vendor/_theme.scss", "", 0644)

	cfg := NewConfig().WithLoadPaths("/proj/vendor")
	result, err := Resolve(mfs, "/proj/src/main.scss", "theme", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Path != "/proj/vendor/_theme.scss" {
		t.Fatalf("got %q", result.Path)
	}
}

func TestResolveRelativeNeverConsultsLoadPaths(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/src/main.scss", "", 0644)
	mfs.AddFile("/proj/vendor/_colors.scss", "", 0644)

	cfg := NewConfig().WithLoadPaths("/proj/vendor")
	_, err := Resolve(mfs, "/proj/src/main.scss", "./colors", cfg)
	if err == nil || err.Kind != NotFound {
		t.Fatalf("expected NotFound since relative specifiers don't search load paths, got %v", err)
	}
}

func TestResolveNotFound(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/src/main.scss", "", 0644)

	_, err := Resolve(mfs, "/proj/src/main.scss", "missing", NewConfig())
	if err == nil || err.Kind != NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestResolveUnsupportedSpecifiers(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/src/main.scss", "", 0644)

	tests := []string{
		"https://fonts.googleapis.com/css?family=Roboto",
		"pkg:bootstrap/scss/bootstrap",
		"normalize.css",
	}
	for _, specifier := range tests {
		_, err := Resolve(mfs, "/proj/src/main.scss", specifier, NewConfig())
		if err == nil || err.Kind != Unsupported {
			t.Errorf("specifier %q: expected Unsupported, got %v", specifier, err)
		}
	}
}
