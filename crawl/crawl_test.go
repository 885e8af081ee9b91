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
package crawl

import (
	"testing"

	"github.com/emiliodominguez/sass-dep/graph"
	"github.com/emiliodominguez/sass-dep/internal/mapfs"
	"github.com/emiliodominguez/sass-dep/resolve"
)

func TestCrawlTwoFileChain(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/main.scss", `@use "a";`, 0644)
	mfs.AddFile("/proj/_a.scss", "", 0644)

	c := New(mfs, Options{RootDir: "/proj", Resolver: resolve.NewConfig()})
	g, diags, err := c.Crawl([]string{"/proj/main.scss"})
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if g.NodeCount() != 2 {
		t.Fatalf("expected 2 nodes, got %d", g.NodeCount())
	}
	if len(g.Edges()) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(g.Edges()))
	}
	e := g.Edges()[0]
	if e.From != "main.scss" || e.To != "_a.scss" {
		t.Fatalf("unexpected edge %+v", e)
	}
}

func TestCrawlPartialIndexResolution(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/main.scss", `@use "comps";`, 0644)
	mfs.AddFile("/proj/comps/_index.scss", "", 0644)

	c := New(mfs, Options{RootDir: "/proj", Resolver: resolve.NewConfig()})
	g, _, err := c.Crawl([]string{"/proj/main.scss"})
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if _, ok := g.Node("comps/_index.scss"); !ok {
		t.Fatalf("expected node comps/_index.scss, got nodes %v", nodeIds(g))
	}
}

func TestCrawlTwoNodeCycle(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/a.scss", `@use "b";`, 0644)
	mfs.AddFile("/proj/b.scss", `@use "a";`, 0644)

	c := New(mfs, Options{RootDir: "/proj", Resolver: resolve.NewConfig()})
	g, _, err := c.Crawl([]string{"/proj/a.scss"})
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if g.NodeCount() != 2 {
		t.Fatalf("expected 2 nodes, got %d", g.NodeCount())
	}
	if len(g.Edges()) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(g.Edges()))
	}
}

func TestCrawlCommentAndStringSkipping(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/main.scss", `/* @use "x"; */ "@use \"y\";" @use "z";`, 0644)
	mfs.AddFile("/proj/_z.scss", "", 0644)

	c := New(mfs, Options{RootDir: "/proj", Resolver: resolve.NewConfig()})
	g, _, err := c.Crawl([]string{"/proj/main.scss"})
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(g.Edges()) != 1 {
		t.Fatalf("expected exactly 1 edge, got %d: %+v", len(g.Edges()), g.Edges())
	}
	if g.Edges()[0].To != "_z.scss" {
		t.Fatalf("expected edge to _z.scss, got %s", g.Edges()[0].To)
	}
}

func TestCrawlOrphanDiscovery(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/main.scss", "", 0644)
	mfs.AddFile("/proj/_dead.scss", "", 0644)

	withOrphans := New(mfs, Options{RootDir: "/proj", Resolver: resolve.NewConfig(), IncludeOrphans: true})
	g, _, err := withOrphans.Crawl([]string{"/proj/main.scss"})
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if _, ok := g.Node("_dead.scss"); !ok {
		t.Fatalf("expected orphan node _dead.scss present, got %v", nodeIds(g))
	}

	withoutOrphans := New(mfs, Options{RootDir: "/proj", Resolver: resolve.NewConfig()})
	g2, _, err := withoutOrphans.Crawl([]string{"/proj/main.scss"})
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if _, ok := g2.Node("_dead.scss"); ok {
		t.Fatalf("expected orphan node absent without --include-orphans")
	}
}

func TestCrawlFatalOnMissingEntryPoint(t *testing.T) {
	mfs := mapfs.New()
	c := New(mfs, Options{RootDir: "/proj", Resolver: resolve.NewConfig()})
	_, _, err := c.Crawl([]string{"/proj/missing.scss"})
	if err == nil {
		t.Fatalf("expected a fatal error for a missing entry point")
	}
}

func TestCrawlUnresolvedDirectiveBecomesDiagnosticNotEdge(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/main.scss", `@use "missing";`, 0644)

	c := New(mfs, Options{RootDir: "/proj", Resolver: resolve.NewConfig()})
	g, diags, err := c.Crawl([]string{"/proj/main.scss"})
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(diags), diags)
	}
	if len(g.Edges()) != 0 {
		t.Fatalf("expected no edges for an unresolved directive, got %d", len(g.Edges()))
	}
	if g.NodeCount() != 1 {
		t.Fatalf("expected the source node to still be retained, got %d nodes", g.NodeCount())
	}
}

func nodeIds(g *graph.Graph) []graph.NodeId {
	var ids []graph.NodeId
	for _, n := range g.Nodes() {
		ids = append(ids, n.Id)
	}
	return ids
}
