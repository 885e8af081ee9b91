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
// Package analyze runs the fixed-order pass over a graph.Graph whose nodes
// and edges are frozen: fan-in/out, cycle detection, depth, transitive
// dependency counts, flag assignment, and summary statistics. The pass
// leaves the topology unchanged and writes metrics, flags and cycles onto
// the graph.
package analyze

import (
	"github.com/go-logr/logr"

	"github.com/emiliodominguez/sass-dep/graph"
)

// Thresholds configures the HighFanIn/HighFanOut flag cutoffs.
type Thresholds struct {
	HighFanIn  int
	HighFanOut int
}

// DefaultThresholds returns sass-dep's default cutoffs (fan-in > 5, fan-out > 10).
func DefaultThresholds() Thresholds {
	return Thresholds{HighFanIn: 5, HighFanOut: 10}
}

// Statistics summarizes the analyzed graph.
type Statistics struct {
	TotalNodes  int
	TotalEdges  int
	TotalCycles int
	MaxFanIn    int
	MaxFanOut   int
	OrphanCount int
}

// Analyze mutates every node's metrics and flags in place and records the
// detected cycles on g, then returns summary statistics. Must be called
// exactly once per graph, after the crawl has finished.
func Analyze(g *graph.Graph, thresholds Thresholds, log logr.Logger) Statistics {
	assignFanInOut(g)

	sccs := allSCCs(g)
	cycles := extractCycles(g, sccs)
	g.SetCycles(cycles)
	markInCycle(g, cycles)
	log.V(1).Info("computed strongly connected components", "count", len(sccs), "cycles", len(cycles))

	computeDepth(g)
	computeTransitiveDeps(g, sccs)

	assignFlags(g, thresholds)

	stats := computeStatistics(g)
	log.Info("analysis complete", "nodes", stats.TotalNodes, "edges", stats.TotalEdges, "cycles", stats.TotalCycles)
	return stats
}

func assignFanInOut(g *graph.Graph) {
	for _, n := range g.Nodes() {
		n.Metrics.FanIn = g.InDegree(n.Id)
		n.Metrics.FanOut = g.OutDegree(n.Id)
	}
}

func markInCycle(g *graph.Graph, cycles [][]graph.NodeId) {
	for _, cycle := range cycles {
		for _, id := range cycle {
			if n, ok := g.Node(id); ok {
				n.SetFlag(graph.InCycle)
			}
		}
	}
}

// computeDepth runs a multi-source BFS from the entry-point set, treating
// it as a single virtual super-source at depth 0. Nodes never reached keep
// the unreachable sentinel they're initialized to.
func computeDepth(g *graph.Graph) {
	for _, n := range g.Nodes() {
		n.Metrics.Depth = graph.UnreachableDepth
	}

	visited := make(map[graph.NodeId]bool)
	var queue []graph.NodeId
	for _, ep := range g.EntryPoints() {
		if visited[ep] {
			continue
		}
		visited[ep] = true
		if n, ok := g.Node(ep); ok {
			n.Metrics.Depth = 0
		}
		queue = append(queue, ep)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curNode, _ := g.Node(cur)
		for _, next := range g.OutNeighbors(cur) {
			if visited[next] {
				continue
			}
			visited[next] = true
			if n, ok := g.Node(next); ok {
				n.Metrics.Depth = curNode.Metrics.Depth + 1
			}
			queue = append(queue, next)
		}
	}
}

func assignFlags(g *graph.Graph, thresholds Thresholds) {
	for _, n := range g.Nodes() {
		if n.Metrics.FanOut == 0 {
			n.SetFlag(graph.Leaf)
		}
		if n.Metrics.Depth == graph.UnreachableDepth {
			n.SetFlag(graph.Orphan)
		}
		if n.Metrics.FanIn > thresholds.HighFanIn {
			n.SetFlag(graph.HighFanIn)
		}
		if n.Metrics.FanOut > thresholds.HighFanOut {
			n.SetFlag(graph.HighFanOut)
		}
	}
}

func computeStatistics(g *graph.Graph) Statistics {
	stats := Statistics{
		TotalNodes:  g.NodeCount(),
		TotalEdges:  len(g.Edges()),
		TotalCycles: len(g.Cycles()),
	}
	for _, n := range g.Nodes() {
		if n.Metrics.FanIn > stats.MaxFanIn {
			stats.MaxFanIn = n.Metrics.FanIn
		}
		if n.Metrics.FanOut > stats.MaxFanOut {
			stats.MaxFanOut = n.Metrics.FanOut
		}
		if n.HasFlag(graph.Orphan) {
			stats.OrphanCount++
		}
	}
	return stats
}
