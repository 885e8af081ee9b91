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
package export

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/emiliodominguez/sass-dep/emit"
)

// sortedNodeIds returns doc's node keys alphabetically, matching the
// emitter's own ordering contract so export output is itself deterministic.
func sortedNodeIds(doc emit.Document) []string {
	ids := make([]string, 0, len(doc.Nodes))
	for id := range doc.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func renderDOT(doc emit.Document) string {
	var b strings.Builder
	b.WriteString("digraph sass_dep {\n")
	for _, id := range sortedNodeIds(doc) {
		fmt.Fprintf(&b, "  %q;\n", id)
	}
	for _, e := range doc.Edges {
		fmt.Fprintf(&b, "  %q -> %q [label=%q];\n", e.From, e.To, e.DirectiveType)
	}
	b.WriteString("}\n")
	return b.String()
}

func renderMermaid(doc emit.Document) string {
	var b strings.Builder
	b.WriteString("flowchart LR\n")
	ids := sortedNodeIds(doc)
	alias := make(map[string]string, len(ids))
	for _, id := range ids {
		alias[id] = mermaidID(id)
		fmt.Fprintf(&b, "  %s[%q]\n", alias[id], id)
	}
	for _, e := range doc.Edges {
		fmt.Fprintf(&b, "  %s -->|%s| %s\n", alias[e.From], e.DirectiveType, alias[e.To])
	}
	return b.String()
}

func renderD2(doc emit.Document) string {
	var b strings.Builder
	for _, id := range sortedNodeIds(doc) {
		fmt.Fprintf(&b, "%q\n", id)
	}
	for _, e := range doc.Edges {
		fmt.Fprintf(&b, "%q -> %q: %s\n", e.From, e.To, e.DirectiveType)
	}
	return b.String()
}

var mermaidUnsafe = regexp.MustCompile(`[^A-Za-z0-9_]`)

// mermaidID sanitizes a NodeId into a valid Mermaid node identifier:
// Mermaid identifiers may not contain path separators, dots, or dashes.
func mermaidID(id string) string {
	return "n_" + mermaidUnsafe.ReplaceAllString(id, "_")
}
