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
// Package check validates an analyzed graph against user-declared
// constraints, for CI use via `sass-dep check`.
package check

import (
	"fmt"

	"github.com/emiliodominguez/sass-dep/graph"
)

// Constraints are the thresholds a graph must satisfy.
type Constraints struct {
	NoCycles  bool
	MaxDepth  *int
	MaxFanOut *int
	MaxFanIn  *int
}

// Violation is one constraint failure. NodeId is empty for graph-wide
// violations (NoCycles).
type Violation struct {
	Rule   string
	NodeId graph.NodeId
	Detail string
}

func (v Violation) String() string {
	if v.NodeId == "" {
		return fmt.Sprintf("%s: %s", v.Rule, v.Detail)
	}
	return fmt.Sprintf("%s: %s: %s", v.Rule, v.NodeId, v.Detail)
}

// Result is the outcome of Check: Passed is true iff Violations is empty.
type Result struct {
	Passed     bool
	Violations []Violation
}

// Check evaluates every declared constraint against g, collecting every
// violation rather than stopping at the first.
func Check(g *graph.Graph, c Constraints) Result {
	var violations []Violation

	if c.NoCycles && len(g.Cycles()) > 0 {
		violations = append(violations, Violation{
			Rule:   "no_cycles",
			Detail: fmt.Sprintf("%d cycle(s) detected", len(g.Cycles())),
		})
	}

	for _, n := range g.Nodes() {
		if c.MaxDepth != nil && n.Metrics.Depth != graph.UnreachableDepth && n.Metrics.Depth > int64(*c.MaxDepth) {
			violations = append(violations, Violation{
				Rule:   "max_depth",
				NodeId: n.Id,
				Detail: fmt.Sprintf("depth %d exceeds max %d", n.Metrics.Depth, *c.MaxDepth),
			})
		}
		if c.MaxFanOut != nil && n.Metrics.FanOut > *c.MaxFanOut {
			violations = append(violations, Violation{
				Rule:   "max_fan_out",
				NodeId: n.Id,
				Detail: fmt.Sprintf("fan_out %d exceeds max %d", n.Metrics.FanOut, *c.MaxFanOut),
			})
		}
		if c.MaxFanIn != nil && n.Metrics.FanIn > *c.MaxFanIn {
			violations = append(violations, Violation{
				Rule:   "max_fan_in",
				NodeId: n.Id,
				Detail: fmt.Sprintf("fan_in %d exceeds max %d", n.Metrics.FanIn, *c.MaxFanIn),
			})
		}
	}

	return Result{Passed: len(violations) == 0, Violations: violations}
}
