// SPDX-License-Identifier: MIT

// Package graphio loads graph documents from YAML or TOML into *core.Graph.
//
// A document has the same shape in both formats:
//
//	directed: true          # default directedness of edges
//	multi: false            # allow parallel edges
//	loops: false            # allow self-loops
//	vertices: [A, B, C, D]  # optional, for isolated vertices and ordering
//	edges:
//	  - {from: A, to: B, weight: 1}
//	  - {from: B, to: C, weight: 2, directed: false}
//
// In TOML the edges are an array of tables ([[edges]]). Graphs are always
// weighted; an edge without a weight weighs 0. Setting "directed" on any edge
// enables mixed-mode edges for the whole graph.
//
// Edges are added in document order, so the first of several equal-cost
// parallel edges is the one a shortest-path engine keeps.
package graphio
