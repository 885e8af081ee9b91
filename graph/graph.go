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
// Package graph is the in-memory dependency graph: a directed multigraph
// with stable, insertion-ordered node and edge storage. The crawl package
// builds a Graph incrementally; the analyze package then runs a read-only
// pass over the finished topology.
package graph

import "github.com/emiliodominguez/sass-dep/scan"

// NodeId is a file's path relative to the project root, forward-slash
// separated. Two files resolving to the same absolute path share a NodeId.
type NodeId string

// NodeFlag classifies a node's role or shape in the graph.
type NodeFlag int

const (
	EntryPoint NodeFlag = iota
	Leaf
	Orphan
	InCycle
	HighFanIn
	HighFanOut
)

func (f NodeFlag) String() string {
	switch f {
	case EntryPoint:
		return "entry_point"
	case Leaf:
		return "leaf"
	case Orphan:
		return "orphan"
	case InCycle:
		return "in_cycle"
	case HighFanIn:
		return "high_fan_in"
	case HighFanOut:
		return "high_fan_out"
	default:
		return "unknown"
	}
}

// FlagOrder is the fixed serialization order for a node's flag set.
var FlagOrder = []NodeFlag{EntryPoint, Leaf, Orphan, InCycle, HighFanIn, HighFanOut}

// UnreachableDepth is the sentinel depth (2^53 - 1) assigned to nodes that
// no entry point can reach, chosen to round-trip exactly through a JSON
// number parsed as an IEEE 754 double by any consumer.
const UnreachableDepth = (int64(1) << 53) - 1

// NodeMetrics holds the Analyzer's per-node measurements.
type NodeMetrics struct {
	FanIn          int
	FanOut         int
	Depth          int64
	TransitiveDeps int
}

// FileNode is one file in the graph.
type FileNode struct {
	Id           NodeId
	AbsolutePath string
	Metrics      NodeMetrics
	flags        map[NodeFlag]bool
}

// SetFlag marks f as present on the node.
func (n *FileNode) SetFlag(f NodeFlag) {
	if n.flags == nil {
		n.flags = make(map[NodeFlag]bool)
	}
	n.flags[f] = true
}

// HasFlag reports whether f is present on the node.
func (n *FileNode) HasFlag(f NodeFlag) bool {
	return n.flags[f]
}

// Flags returns the node's flags in FlagOrder.
func (n *FileNode) Flags() []NodeFlag {
	var out []NodeFlag
	for _, f := range FlagOrder {
		if n.flags[f] {
			out = append(out, f)
		}
	}
	return out
}

// DependencyEdge is one directive-derived edge between two nodes.
type DependencyEdge struct {
	From          NodeId
	To            NodeId
	DirectiveType scan.Kind
	Location      scan.Location
	Namespace     string
	Configured    bool
}

// Graph is a directed multigraph with insertion-ordered nodes and edges.
// It's built incrementally by a crawl.Crawler; the analyze package then
// leaves its nodes and edges unchanged while filling in node metrics,
// flags and cycles.
type Graph struct {
	nodes       map[NodeId]*FileNode
	order       []NodeId
	edges       []DependencyEdge
	entryPoints map[NodeId]bool
	entryOrder  []NodeId
	cycles      [][]NodeId
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		nodes:       make(map[NodeId]*FileNode),
		entryPoints: make(map[NodeId]bool),
	}
}

// EnsureNode returns the node for id, creating it with zero metrics if it
// doesn't already exist.
func (g *Graph) EnsureNode(id NodeId, absolutePath string) *FileNode {
	if n, ok := g.nodes[id]; ok {
		return n
	}
	n := &FileNode{Id: id, AbsolutePath: absolutePath, flags: make(map[NodeFlag]bool)}
	g.nodes[id] = n
	g.order = append(g.order, id)
	return n
}

// Node looks up a node by id.
func (g *Graph) Node(id NodeId) (*FileNode, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*FileNode {
	out := make([]*FileNode, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.order)
}

// MarkEntryPoint records id as an entry point. The first call for a given
// id fixes its position in EntryPoints' iteration order.
func (g *Graph) MarkEntryPoint(id NodeId) {
	if g.entryPoints[id] {
		return
	}
	g.entryPoints[id] = true
	g.entryOrder = append(g.entryOrder, id)
	if n, ok := g.nodes[id]; ok {
		n.SetFlag(EntryPoint)
	}
}

// IsEntryPoint reports whether id was marked as an entry point.
func (g *Graph) IsEntryPoint(id NodeId) bool {
	return g.entryPoints[id]
}

// EntryPoints returns the entry-point ids in the order they were marked.
func (g *Graph) EntryPoints() []NodeId {
	return append([]NodeId(nil), g.entryOrder...)
}

// AddEdge appends an edge. Parallel edges and self-loops are both allowed.
func (g *Graph) AddEdge(e DependencyEdge) {
	g.edges = append(g.edges, e)
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []DependencyEdge {
	return g.edges
}

// OutDegree counts every outgoing edge from id, including parallel edges.
func (g *Graph) OutDegree(id NodeId) int {
	n := 0
	for _, e := range g.edges {
		if e.From == id {
			n++
		}
	}
	return n
}

// InDegree counts every incoming edge to id, including parallel edges.
func (g *Graph) InDegree(id NodeId) int {
	n := 0
	for _, e := range g.edges {
		if e.To == id {
			n++
		}
	}
	return n
}

// OutNeighbors returns the distinct nodes reachable via one outgoing edge
// from id, in first-edge-insertion order. Used for adjacency walks (SCC,
// BFS, transitive-deps) where parallel edges to the same target must not
// be visited twice.
func (g *Graph) OutNeighbors(id NodeId) []NodeId {
	seen := make(map[NodeId]bool)
	var out []NodeId
	for _, e := range g.edges {
		if e.From == id && !seen[e.To] {
			seen[e.To] = true
			out = append(out, e.To)
		}
	}
	return out
}

// InNeighbors returns the distinct nodes with an edge into id, in
// first-edge-insertion order.
func (g *Graph) InNeighbors(id NodeId) []NodeId {
	seen := make(map[NodeId]bool)
	var out []NodeId
	for _, e := range g.edges {
		if e.To == id && !seen[e.From] {
			seen[e.From] = true
			out = append(out, e.From)
		}
	}
	return out
}

// HasSelfLoop reports whether id has an edge to itself.
func (g *Graph) HasSelfLoop(id NodeId) bool {
	for _, e := range g.edges {
		if e.From == id && e.To == id {
			return true
		}
	}
	return false
}

// SetCycles records the Analyzer's detected cycles.
func (g *Graph) SetCycles(cycles [][]NodeId) {
	g.cycles = cycles
}

// Cycles returns the detected cycles, each already rotated to start at its
// lexicographically smallest node.
func (g *Graph) Cycles() [][]NodeId {
	return g.cycles
}
