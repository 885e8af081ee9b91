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
package analyze

import (
	"sort"

	"github.com/emiliodominguez/sass-dep/graph"
)

// tarjanState is the recursion context for one Tarjan's-algorithm pass.
// Iterating g.Nodes() in insertion order and g.OutNeighbors in
// edge-insertion order makes the whole pass deterministic.
type tarjanState struct {
	g       *graph.Graph
	index   int
	indices map[graph.NodeId]int
	lowlink map[graph.NodeId]int
	onStack map[graph.NodeId]bool
	stack   []graph.NodeId
	sccs    [][]graph.NodeId
}

// allSCCs returns every strongly connected component of g, including
// trivial size-1 components with no self-loop. Order is whatever Tarjan's
// algorithm naturally produces; callers that need the reported-cycle
// subset should filter and rotate via extractCycles.
func allSCCs(g *graph.Graph) [][]graph.NodeId {
	st := &tarjanState{
		g:       g,
		indices: make(map[graph.NodeId]int),
		lowlink: make(map[graph.NodeId]int),
		onStack: make(map[graph.NodeId]bool),
	}
	for _, n := range g.Nodes() {
		if _, seen := st.indices[n.Id]; !seen {
			st.strongConnect(n.Id)
		}
	}
	return st.sccs
}

func (st *tarjanState) strongConnect(v graph.NodeId) {
	st.indices[v] = st.index
	st.lowlink[v] = st.index
	st.index++
	st.stack = append(st.stack, v)
	st.onStack[v] = true

	for _, w := range st.g.OutNeighbors(v) {
		if _, seen := st.indices[w]; !seen {
			st.strongConnect(w)
			if st.lowlink[w] < st.lowlink[v] {
				st.lowlink[v] = st.lowlink[w]
			}
		} else if st.onStack[w] {
			if st.indices[w] < st.lowlink[v] {
				st.lowlink[v] = st.indices[w]
			}
		}
	}

	if st.lowlink[v] != st.indices[v] {
		return
	}

	var scc []graph.NodeId
	for {
		n := len(st.stack) - 1
		w := st.stack[n]
		st.stack = st.stack[:n]
		st.onStack[w] = false
		scc = append(scc, w)
		if w == v {
			break
		}
	}
	st.sccs = append(st.sccs, scc)
}

// extractCycles filters allSCCs down to the reportable ones (size >= 2, or
// size 1 with a self-loop), rotates each so its lexicographically smallest
// NodeId comes first, and sorts the result lexicographically.
func extractCycles(g *graph.Graph, sccs [][]graph.NodeId) [][]graph.NodeId {
	var cycles [][]graph.NodeId
	for _, scc := range sccs {
		if len(scc) >= 2 || (len(scc) == 1 && g.HasSelfLoop(scc[0])) {
			cycles = append(cycles, rotateCycle(scc))
		}
	}
	sort.Slice(cycles, func(i, j int) bool { return cycleLess(cycles[i], cycles[j]) })
	return cycles
}

func rotateCycle(scc []graph.NodeId) []graph.NodeId {
	minIdx := 0
	for i, id := range scc {
		if id < scc[minIdx] {
			minIdx = i
		}
	}
	rotated := make([]graph.NodeId, len(scc))
	for i := range scc {
		rotated[i] = scc[(minIdx+i)%len(scc)]
	}
	return rotated
}

func cycleLess(a, b []graph.NodeId) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// computeTransitiveDeps assigns TransitiveDeps to every node via the SCC
// condensation: all members of one SCC share the same reachable-node set
// (they can reach each other), so the set is computed once per SCC via a
// memoized walk of the (necessarily acyclic) condensation graph, then
// transitive_deps(n) = |reachable set of SCC(n)| - 1.
func computeTransitiveDeps(g *graph.Graph, sccs [][]graph.NodeId) {
	sccOf := make(map[graph.NodeId]int, g.NodeCount())
	for i, scc := range sccs {
		for _, id := range scc {
			sccOf[id] = i
		}
	}

	condAdj := make([]map[int]bool, len(sccs))
	for i := range condAdj {
		condAdj[i] = make(map[int]bool)
	}
	for _, e := range g.Edges() {
		a, b := sccOf[e.From], sccOf[e.To]
		if a != b {
			condAdj[a][b] = true
		}
	}

	reachable := make([]map[graph.NodeId]bool, len(sccs))
	var reach func(scc int) map[graph.NodeId]bool
	reach = func(scc int) map[graph.NodeId]bool {
		if reachable[scc] != nil {
			return reachable[scc]
		}
		set := make(map[graph.NodeId]bool, len(sccs[scc]))
		for _, id := range sccs[scc] {
			set[id] = true
		}
		reachable[scc] = set
		for next := range condAdj[scc] {
			for id := range reach(next) {
				set[id] = true
			}
		}
		return set
	}

	for scc := range sccs {
		reach(scc)
	}

	for _, n := range g.Nodes() {
		set := reachable[sccOf[n.Id]]
		n.Metrics.TransitiveDeps = len(set) - 1
	}
}
