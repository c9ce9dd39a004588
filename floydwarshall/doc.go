// SPDX-License-Identifier: MIT

// Package floydwarshall provides a generic all-pairs shortest-path engine
// built on the Floyd–Warshall dynamic program.
//
// Overview:
//
//   - The engine works on any Graph[V, E] whose edges expose Source/Target,
//     with any numeric cost type C and a pluggable Relaxer[C] deciding how
//     costs combine and which one is better.
//   - Instead of a dense V×V matrix of full paths it keeps one Record per
//     reachable pair. A record is either a direct edge, an intermediate
//     vertex splitting the pair in two, or the identity sentinel of a
//     self-pair. Any shortest path is rebuilt on demand from those records.
//   - Compute is cooperative-cancellable (context or Engine.Cancel) and ends
//     with a negative-cycle scan over the diagonal.
//
// When to use:
//
//   - Dense-ish graphs where many pairs are queried, routing tables, metric
//     closures, critical paths on DAGs (CriticalDistance), most reliable
//     paths or arbitrage detection (Reliability).
//
// Relaxers:
//
//   - ShortestDistance (default): Combine = a+b, Improves = a<b, Identity = 0.
//   - CriticalDistance:           Combine = a+b, Improves = a>b, Identity = 0.
//   - Reliability:                Combine = a*b, Improves = a>b, Identity = 1.
//
// A relaxer may implement CycleDetector to redefine what a negative cycle is;
// WithoutCycleCheck disables the scan altogether.
//
// Ties:
//
//   - Parallel edges: the cheapest wins; on equal cost the first enumerated
//     edge is kept.
//   - Relaxation replaces a record only on strict improvement, so the path
//     returned is one shortest path consistent with the relaxer, not a
//     canonical one.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph / ErrNilWeight / ErrNilRelaxer: returned by New.
//   - ErrVertexNotFound: unknown vertex in a query, or an edge endpoint the
//     graph does not enumerate.
//   - ErrNegativeCycle: Compute finished relaxation but a cycle improves on the
//     identity. The engine ends in StateNegativeCycle.
//   - ErrCancelled: Compute stopped at a checkpoint. Wraps the context error
//     when the context triggered it. The engine ends in StateCancelled.
//   - ErrNotComputed: queries without a Done run.
//   - ErrInconsistentPath: reconstruction revisited a vertex. Seen when
//     WithoutCycleCheck lets a negative cycle through, or with a relaxer
//     that breaks the Relaxer contract.
//
// "No path" is not an error: Path and Cost report ok == false.
//
// Example usage:
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 2)
//	en, _ := floydwarshall.NewCore(g)
//	if err := en.Compute(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	path, ok, err := en.Path("A", "C") // [e1(A->B) e2(B->C)], true, nil
//
// Thread safety:
//
//   - Compute is single-threaded and must not overlap any query on the same
//     Engine. Do not mutate the graph while Compute runs.
//   - After a Done run Path, Cost, Paths, Records, Dump and WriteDOT are
//     read-only and safe to call concurrently.
//   - Cancel is safe from any goroutine.
package floydwarshall
