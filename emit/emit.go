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
// Package emit serializes an analyzed graph.Graph into the versioned,
// deterministically-ordered JSON document consumers (the web visualizer,
// cmd/export) depend on.
package emit

import (
	"sort"
	"time"

	"github.com/emiliodominguez/sass-dep/graph"
)

// SchemaVersion is the document's "version" field.
const SchemaVersion = "1.0.0"

// SchemaURL is the document's "$schema" field.
const SchemaURL = "https://sass-dep.dev/schema/v1.0.0/graph.json"

// Metadata describes the run that produced a Document.
type Metadata struct {
	GeneratedAt    string `json:"generated_at"`
	Root           string `json:"root"`
	SassDepVersion string `json:"sass_dep_version"`
}

// Node is one serialized FileNode.
type Node struct {
	AbsolutePath   string   `json:"absolute_path"`
	FanIn          int      `json:"fan_in"`
	FanOut         int      `json:"fan_out"`
	Depth          int64    `json:"depth"`
	TransitiveDeps int      `json:"transitive_deps"`
	Flags          []string `json:"flags"`
}

// Edge is one serialized DependencyEdge.
type Edge struct {
	From          string `json:"from"`
	To            string `json:"to"`
	DirectiveType string `json:"directive_type"`
	Line          int    `json:"line"`
	Column        int    `json:"column"`
	Namespace     string `json:"namespace,omitempty"`
	Configured    bool   `json:"configured"`
}

// Document is the full versioned output schema.
type Document struct {
	Version     string          `json:"version"`
	Schema      string          `json:"$schema"`
	Metadata    Metadata        `json:"metadata"`
	Nodes       map[string]Node `json:"nodes"`
	Edges       []Edge          `json:"edges"`
	EntryPoints []string        `json:"entry_points"`
	Cycles      [][]string      `json:"cycles"`
}

// Build renders g into a Document. root is the absolute project root used
// to stamp metadata.root; sassDepVersion is the running binary's version
// string (internal/version.GetVersion()).
func Build(g *graph.Graph, root, sassDepVersion string, generatedAt time.Time) Document {
	doc := Document{
		Version: SchemaVersion,
		Schema:  SchemaURL,
		Metadata: Metadata{
			GeneratedAt:    generatedAt.UTC().Format(time.RFC3339),
			Root:           root,
			SassDepVersion: sassDepVersion,
		},
		Nodes: make(map[string]Node, g.NodeCount()),
	}

	for _, n := range g.Nodes() {
		flags := make([]string, 0, len(n.Flags()))
		for _, f := range n.Flags() {
			flags = append(flags, f.String())
		}
		doc.Nodes[string(n.Id)] = Node{
			AbsolutePath:   n.AbsolutePath,
			FanIn:          n.Metrics.FanIn,
			FanOut:         n.Metrics.FanOut,
			Depth:          n.Metrics.Depth,
			TransitiveDeps: n.Metrics.TransitiveDeps,
			Flags:          flags,
		}
	}

	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, Edge{
			From:          string(e.From),
			To:            string(e.To),
			DirectiveType: e.DirectiveType.String(),
			Line:          e.Location.Line,
			Column:        e.Location.Column,
			Namespace:     e.Namespace,
			Configured:    e.Configured,
		})
	}
	sort.Slice(doc.Edges, func(i, j int) bool {
		a, b := doc.Edges[i], doc.Edges[j]
		if a.From != b.From {
			return a.From < b.From
		}
		if a.To != b.To {
			return a.To < b.To
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return a.DirectiveType < b.DirectiveType
	})

	for _, ep := range g.EntryPoints() {
		doc.EntryPoints = append(doc.EntryPoints, string(ep))
	}
	sort.Strings(doc.EntryPoints)

	for _, cycle := range g.Cycles() {
		var ids []string
		for _, id := range cycle {
			ids = append(ids, string(id))
		}
		doc.Cycles = append(doc.Cycles, ids)
	}
	sort.Slice(doc.Cycles, func(i, j int) bool { return cycleLess(doc.Cycles[i], doc.Cycles[j]) })

	return doc
}

func cycleLess(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
