// SPDX-License-Identifier: MIT

package floydwarshall

import "github.com/katalvlaran/allpairs/core"

// coreGraph adapts *core.Graph to Graph[string, core.Arc].
type coreGraph struct {
	g *core.Graph
}

// Vertices returns the graph's vertex IDs in ascending order.
func (c coreGraph) Vertices() []string { return c.g.Vertices() }

// Edges returns every arc of the graph (undirected edges expanded both ways).
func (c coreGraph) Edges() []core.Arc { return c.g.Arcs() }

// FromCore exposes a *core.Graph as an engine input. Undirected edges become
// two arcs that share the same *core.Edge.
func FromCore(g *core.Graph) Graph[string, core.Arc] {
	return coreGraph{g: g}
}

// ArcWeight weighs an arc by its edge's Weight.
func ArcWeight(a core.Arc) int64 { return a.Weight() }

// HopWeight weighs every arc as 1, turning costs into hop counts.
func HopWeight(core.Arc) int64 { return 1 }

// NewCore builds a shortest-distance Engine for a core graph. Weighted graphs
// use ArcWeight; unweighted graphs use HopWeight.
func NewCore(g *core.Graph, opts ...Option) (*Engine[string, core.Arc, int64], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	weight := HopWeight
	if g.Weighted() {
		weight = ArcWeight
	}

	return NewShortestPaths[string, core.Arc, int64](FromCore(g), weight, opts...)
}
