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
package check

import (
	"testing"

	"github.com/emiliodominguez/sass-dep/graph"
)

func intp(v int) *int { return &v }

func TestCheckPassesWithNoConstraints(t *testing.T) {
	g := graph.New()
	g.EnsureNode("a.scss", "/proj/a.scss")

	result := Check(g, Constraints{})
	if !result.Passed {
		t.Fatalf("expected pass with no constraints declared, got violations: %v", result.Violations)
	}
}

func TestCheckNoCyclesViolation(t *testing.T) {
	g := graph.New()
	g.SetCycles([][]graph.NodeId{{"a.scss", "b.scss"}})

	result := Check(g, Constraints{NoCycles: true})
	if result.Passed {
		t.Fatalf("expected failure, graph has a cycle")
	}
	if len(result.Violations) != 1 || result.Violations[0].Rule != "no_cycles" {
		t.Fatalf("unexpected violations: %+v", result.Violations)
	}
}

func TestCheckMaxDepthListsEveryExceedingNode(t *testing.T) {
	g := graph.New()
	shallow := g.EnsureNode("shallow.scss", "/proj/shallow.scss")
	shallow.Metrics.Depth = 3
	deep1 := g.EnsureNode("deep1.scss", "/proj/deep1.scss")
	deep1.Metrics.Depth = 7
	deep2 := g.EnsureNode("deep2.scss", "/proj/deep2.scss")
	deep2.Metrics.Depth = 9

	result := Check(g, Constraints{MaxDepth: intp(5)})
	if result.Passed {
		t.Fatalf("expected failure")
	}
	if len(result.Violations) != 2 {
		t.Fatalf("expected 2 max_depth violations, got %d: %+v", len(result.Violations), result.Violations)
	}
	for _, v := range result.Violations {
		if v.Rule != "max_depth" {
			t.Fatalf("unexpected rule %q", v.Rule)
		}
	}
}

func TestCheckMaxDepthSkipsUnreachableNodes(t *testing.T) {
	g := graph.New()
	orphan := g.EnsureNode("orphan.scss", "/proj/orphan.scss")
	orphan.Metrics.Depth = graph.UnreachableDepth

	result := Check(g, Constraints{MaxDepth: intp(5)})
	if !result.Passed {
		t.Fatalf("expected orphan (unreachable sentinel depth) to be skipped by max_depth, got: %v", result.Violations)
	}
}

func TestCheckMaxFanOutAndFanIn(t *testing.T) {
	g := graph.New()
	n := g.EnsureNode("hub.scss", "/proj/hub.scss")
	n.Metrics.FanOut = 12
	n.Metrics.FanIn = 8

	result := Check(g, Constraints{MaxFanOut: intp(10), MaxFanIn: intp(5)})
	if len(result.Violations) != 2 {
		t.Fatalf("expected 2 violations (fan_out and fan_in), got %d: %+v", len(result.Violations), result.Violations)
	}
}

func TestCheckCollectsAllViolationsNotJustFirst(t *testing.T) {
	g := graph.New()
	g.SetCycles([][]graph.NodeId{{"a.scss", "b.scss"}})
	n := g.EnsureNode("hub.scss", "/proj/hub.scss")
	n.Metrics.FanOut = 99

	result := Check(g, Constraints{NoCycles: true, MaxFanOut: intp(1)})
	if len(result.Violations) != 2 {
		t.Fatalf("expected both no_cycles and max_fan_out violations, got %d: %+v", len(result.Violations), result.Violations)
	}
}

func TestViolationStringFormatting(t *testing.T) {
	v := Violation{Rule: "no_cycles", Detail: "1 cycle(s) detected"}
	if v.String() != "no_cycles: 1 cycle(s) detected" {
		t.Fatalf("unexpected graph-wide violation string: %q", v.String())
	}

	v2 := Violation{Rule: "max_depth", NodeId: "a.scss", Detail: "depth 7 exceeds max 5"}
	if v2.String() != "max_depth: a.scss: depth 7 exceeds max 5" {
		t.Fatalf("unexpected node violation string: %q", v2.String())
	}
}
