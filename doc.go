// SPDX-License-Identifier: MIT

// Package allpairs computes all-pairs best paths over weighted graphs with a
// generic, cancellable Floyd–Warshall engine.
//
// What is inside:
//
//	core/          : thread-safe Graph, Vertex and Edge types; Arcs() expands
//	                 undirected edges into both directions
//	floydwarshall/ : the engine: pluggable relaxers, sparse record store,
//	                 path reconstruction, text and Graphviz dumps
//	graphio/       : YAML and TOML graph documents into core graphs
//	cmd/fwpath/    : command line front end (path, table, dump)
//
// Quick ASCII example:
//
//	A ─1─▶ B ─2─▶ C ─1─▶ D
//	└──────10─────┘
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 2)
//	g.AddEdge("A", "C", 10)
//	g.AddEdge("C", "D", 1)
//
//	en, _ := floydwarshall.NewCore(g)
//	_ = en.Compute(ctx)
//	path, ok, _ := en.Path("A", "D") // [e1(A->B) e2(B->C) e4(C->D)], true
//	cost, _, _ := en.Cost("A", "D")  // 4
//
// From the shell:
//
//	fwpath path A D --graph network.yaml
//	fwpath table --graph network.toml --relaxer critical
//	fwpath dump --graph network.yaml --format dot | dot -Tsvg > records.svg
package allpairs
