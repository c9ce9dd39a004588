// SPDX-License-Identifier: MIT

// Package core provides the thread-safe in-memory Graph consumed by the
// all-pairs shortest-path engine in package floydwarshall.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation in “mixed” graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Collision-free Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
//	Vertices() returns IDs sorted ascending.
//	Edges() and Arcs() return edges in insertion order, so algorithms that
//	break ties by "first seen" behave identically across runs.
//
// Arcs:
//
//	Shortest-path algorithms work on directed relations. Arcs() expands every
//	undirected edge u-v into the two arcs u→v and v→u, both pointing back at
//	the same *Edge. A directed edge yields exactly one arc. Self-loops yield
//	one arc regardless of orientation.
//
// Errors:
//
//	ErrEmptyVertexID        - vertex ID is the empty string.
//	ErrVertexNotFound       - requested vertex does not exist.
//	ErrEdgeNotFound         - requested edge does not exist.
//	ErrBadWeight            - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed       - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed  - parallel edge when multi-edges are disabled.
//	ErrMixedEdgesNotAllowed - per-edge orientation override outside mixed mode.
package core
