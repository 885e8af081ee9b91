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

// Package scan implements the directive-aware SCSS tokenizer: a linear
// scanner that extracts @use/@forward/@import statements from raw file
// content while skipping comments, string literals, and interpolation.
package scan

import (
	"fmt"
)

// Kind classifies a directive.
type Kind int

const (
	Use Kind = iota
	Forward
	Import
)

// String returns the directive's wire name ("use", "forward", "import").
func (k Kind) String() string {
	switch k {
	case Use:
		return "use"
	case Forward:
		return "forward"
	case Import:
		return "import"
	default:
		return "unknown"
	}
}

// Location is a 1-indexed line/column position. Column counts Unicode
// scalar values on the line, not bytes.
type Location struct {
	Line   int
	Column int
}

// Directive is one @use/@forward/@import statement found in a file.
type Directive struct {
	Kind       Kind
	Specifier  string
	Location   Location
	Namespace  string // @use only; "*" for a wildcard "as *"
	Configured bool   // true when "with (...)" is present
}

// ParseError is a fatal tokenization failure: an unterminated string or
// comment. The scanner cannot recover from these; the caller should treat
// the whole file as unparsed.
type ParseError struct {
	Line, Column int
	Msg          string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

// StatementError is a recoverable per-directive parse failure (e.g. a
// directive keyword not followed by a string literal). The scanner
// resynchronizes at the next top-level ';' or '}' and keeps going.
type StatementError struct {
	Line, Column int
	Msg          string
}

func (e *StatementError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

// Result is the outcome of a successful (non-fatal) scan.
type Result struct {
	Directives  []Directive
	Diagnostics []error // *StatementError values, in source order
}

// ParseDirectives scans content and extracts all @use/@forward/@import
// directives in source order. A non-nil error return is always fatal
// (*ParseError); recoverable per-statement issues are returned inside the
// Result's Diagnostics slice so the caller can keep whatever directives
// were successfully parsed before and after the failure.
func ParseDirectives(content []byte) (Result, error) {
	s := newScanner(content)
	return s.run()
}
