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
package scan

import (
	"strings"
	"testing"
)

func TestParseDirectivesBasic(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Directive
	}{
		{
			name:    "simple use",
			content: `@use "colors";`,
			want: []Directive{
				{Kind: Use, Specifier: "colors", Location: Location{1, 1}, Namespace: "colors"},
			},
		},
		{
			name:    "use with explicit namespace",
			content: `@use "colors" as c;`,
			want: []Directive{
				{Kind: Use, Specifier: "colors", Location: Location{1, 1}, Namespace: "c"},
			},
		},
		{
			name:    "use with wildcard namespace",
			content: `@use "colors" as *;`,
			want: []Directive{
				{Kind: Use, Specifier: "colors", Location: Location{1, 1}, Namespace: "*"},
			},
		},
		{
			name:    "use default namespace from partial path",
			content: `@use "utils/_colors.scss";`,
			want: []Directive{
				{Kind: Use, Specifier: "utils/_colors.scss", Location: Location{1, 1}, Namespace: "colors"},
			},
		},
		{
			name:    "use with configuration",
			content: `@use "colors" with ($primary: blue);`,
			want: []Directive{
				{Kind: Use, Specifier: "colors", Location: Location{1, 1}, Namespace: "colors", Configured: true},
			},
		},
		{
			name:    "forward plain",
			content: `@forward "utils";`,
			want: []Directive{
				{Kind: Forward, Specifier: "utils", Location: Location{1, 1}},
			},
		},
		{
			name:    "forward with show and as prefix",
			content: `@forward "utils" as utils-* show foo, bar;`,
			want: []Directive{
				{Kind: Forward, Specifier: "utils", Location: Location{1, 1}},
			},
		},
		{
			name:    "import with comma list produces one directive per specifier",
			content: `@import "a", "b", "c";`,
			want: []Directive{
				{Kind: Import, Specifier: "a", Location: Location{1, 1}},
				{Kind: Import, Specifier: "b", Location: Location{1, 1}},
				{Kind: Import, Specifier: "c", Location: Location{1, 1}},
			},
		},
		{
			name: "directives inside comments and strings are not recognized",
			content: `/* @use "x"; */ "@use \"y\";" @use "z";
`,
			want: []Directive{
				{Kind: Use, Specifier: "z", Location: Location{1, 31}, Namespace: "z"},
			},
		},
		{
			name: "line comment does not hide a following directive on the next line",
			content: "// @use \"x\";\n@use \"y\";",
			want: []Directive{
				{Kind: Use, Specifier: "y", Location: Location{2, 1}, Namespace: "y"},
			},
		},
		{
			name:    "unknown at-rule with nested block is discarded without affecting later directives",
			content: `@media (min-width: 1px) { .a { color: red; } } @use "after";`,
			want: []Directive{
				{Kind: Use, Specifier: "after", Location: Location{1, 48}, Namespace: "after"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDirectives([]byte(tt.content))
			if err != nil {
				t.Fatalf("ParseDirectives returned fatal error: %v", err)
			}
			if len(result.Directives) != len(tt.want) {
				t.Fatalf("got %d directives, want %d: %+v", len(result.Directives), len(tt.want), result.Directives)
			}
			for i, d := range result.Directives {
				w := tt.want[i]
				if d.Kind != w.Kind || d.Specifier != w.Specifier || d.Location != w.Location || d.Namespace != w.Namespace || d.Configured != w.Configured {
					t.Errorf("directive %d = %+v, want %+v", i, d, w)
				}
			}
		})
	}
}

func TestParseDirectivesFatalErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unterminated string", `@use "colors`},
		{"unterminated block comment", `/* never closed`},
		{"unterminated interpolation", `.a { #{$x`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDirectives([]byte(tt.content))
			if err == nil {
				t.Fatalf("expected fatal ParseError, got nil")
			}
			if _, ok := err.(*ParseError); !ok {
				t.Fatalf("expected *ParseError, got %T: %v", err, err)
			}
		})
	}
}

// TestParseDirectivesRoundTrip renders a parsed directive sequence back to
// SCSS and re-parses it, expecting the same sequence (modulo locations).
func TestParseDirectivesRoundTrip(t *testing.T) {
	content := `@use "colors" as c;
@use "theme" with ($primary: blue);
@forward "utils";
@import "a", "b";`

	first, err := ParseDirectives([]byte(content))
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}

	var sb strings.Builder
	for _, d := range first.Directives {
		switch d.Kind {
		case Use:
			sb.WriteString(`@use "` + d.Specifier + `"`)
			if d.Namespace != "" && d.Namespace != defaultNamespace(d.Specifier) {
				sb.WriteString(" as " + d.Namespace)
			}
			if d.Configured {
				sb.WriteString(" with ($x: 1)")
			}
		case Forward:
			sb.WriteString(`@forward "` + d.Specifier + `"`)
		case Import:
			sb.WriteString(`@import "` + d.Specifier + `"`)
		}
		sb.WriteString(";\n")
	}

	second, err := ParseDirectives([]byte(sb.String()))
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if len(second.Directives) != len(first.Directives) {
		t.Fatalf("re-parse produced %d directives, want %d", len(second.Directives), len(first.Directives))
	}
	for i := range first.Directives {
		a, b := first.Directives[i], second.Directives[i]
		if a.Kind != b.Kind || a.Specifier != b.Specifier || a.Namespace != b.Namespace || a.Configured != b.Configured {
			t.Errorf("directive %d changed across round trip: %+v vs %+v", i, a, b)
		}
	}
}

func TestParseDirectivesRecoverableErrors(t *testing.T) {
	content := `@use ;
@use "valid";`
	result, err := ParseDirectives([]byte(content))
	if err != nil {
		t.Fatalf("expected no fatal error, got %v", err)
	}
	if len(result.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(result.Diagnostics), result.Diagnostics)
	}
	if _, ok := result.Diagnostics[0].(*StatementError); !ok {
		t.Fatalf("expected *StatementError, got %T", result.Diagnostics[0])
	}
	if len(result.Directives) != 1 || result.Directives[0].Specifier != "valid" {
		t.Fatalf("expected the directive after the malformed one to still parse, got %+v", result.Directives)
	}
}
