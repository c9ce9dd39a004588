// SPDX-License-Identifier: MIT

// Package floydwarshall implements the Floyd–Warshall all-pairs shortest-path
// dynamic program over a sparse record store.
//
// Complexity:
//
//   - Time:  O(V³) worst case; each phase k only visits pairs (i,k) and (k,j)
//     that already have a record, so sparse graphs do much less work.
//   - Space: O(R) where R ≤ V² is the number of reachable pairs.
//
// Notes on implementation choices:
//
//   - The store is a map keyed by Pair, never a dense matrix.
//   - succ/pred index lists remember which pairs exist per vertex, in insertion
//     order, so the inner loops never scan absent pairs.
//   - Phase k never rewrites pairs (i,k) or (k,j): with a well-behaved relaxer
//     Combine with the identity is not a strict improvement, and skipping them
//     keeps every ViaStep decomposable.
package floydwarshall

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tevino/abool"
)

// Engine holds the record store of one all-pairs computation.
//
// An Engine supports one completed computation at a time: Compute clears and
// rebuilds the store, invalidating prior query results. Queries after a Done
// run are read-only and may run concurrently with each other, never with
// Compute. Cancel is safe from any goroutine.
type Engine[V comparable, E Edge[V], C Cost] struct {
	graph   Graph[V, E]
	weight  WeightFunc[E, C]
	relaxer Relaxer[C]
	options Options
	log     *slog.Logger

	store    map[Pair[V]]Record[C] // pair → best known record
	succ     map[V][]V             // succ[u]: targets t with a record (u,t)
	pred     map[V][]V             // pred[t]: sources u with a record (u,t)
	vertices []V                   // vertex enumeration of the last run
	known    map[V]struct{}        // membership for precondition checks
	loops    map[V]C               // self-loop weights that form a negative cycle on their own

	state     State
	cancelled *abool.AtomicBool
}

// New builds an Engine over g with the given weight function and relaxer.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. weight must be non-nil (ErrNilWeight).
//  3. relaxer must be non-nil (ErrNilRelaxer).
//
// Nothing is computed until Compute is called.
func New[V comparable, E Edge[V], C Cost](
	g Graph[V, E],
	weight WeightFunc[E, C],
	relaxer Relaxer[C],
	opts ...Option,
) (*Engine[V, E, C], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if weight == nil {
		return nil, ErrNilWeight
	}
	if relaxer == nil {
		return nil, ErrNilRelaxer
	}

	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return &Engine[V, E, C]{
		graph:     g,
		weight:    weight,
		relaxer:   relaxer,
		options:   cfg,
		log:       cfg.Logger,
		state:     StateIdle,
		cancelled: abool.New(),
	}, nil
}

// NewShortestPaths builds an Engine with the ShortestDistance relaxer.
func NewShortestPaths[V comparable, E Edge[V], C Cost](
	g Graph[V, E],
	weight WeightFunc[E, C],
	opts ...Option,
) (*Engine[V, E, C], error) {
	return New[V, E, C](g, weight, ShortestDistance[C]{}, opts...)
}

// State returns the current lifecycle state.
func (en *Engine[V, E, C]) State() State { return en.state }

// Vertices returns the vertex enumeration of the last run, duplicates removed.
func (en *Engine[V, E, C]) Vertices() []V {
	out := make([]V, len(en.vertices))
	copy(out, en.vertices)

	return out
}

// Cancel asks a running Compute to stop at its next checkpoint. A Cancel
// issued while no computation runs aborts the next Compute at its first
// checkpoint. The request is consumed when Compute returns.
func (en *Engine[V, E, C]) Cancel() { en.cancelled.Set() }

// Compute runs the dynamic program and populates the record store.
//
// State machine:
//
//	Idle → Initializing → Relaxing → CycleCheck → Done
//	any checkpoint → Cancelled (error wraps ErrCancelled)
//	CycleCheck → NegativeCycle (error wraps ErrNegativeCycle)
//
// Cancellation (ctx or Cancel) is polled before initialization, between the
// initialization phases and once per outer k iteration; an in-flight phase
// always completes first.
//
// An edge whose endpoint is not enumerated by the graph rejects the run with
// ErrVertexNotFound and leaves the engine Idle.
func (en *Engine[V, E, C]) Compute(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	defer en.cancelled.UnSet()

	en.reset()
	if err := en.checkpoint(ctx); err != nil {
		return err
	}

	// 1) Initialization: direct edges, then identity sentinels.
	en.transition(StateInitializing)
	if err := en.initEdges(); err != nil {
		en.reset()
		en.transition(StateIdle)

		return err
	}
	if err := en.checkpoint(ctx); err != nil {
		return err
	}
	en.initIdentity()
	if err := en.checkpoint(ctx); err != nil {
		return err
	}

	// 2) Relaxation: k outer, i middle, j inner.
	en.transition(StateRelaxing)
	var k V
	for _, k = range en.vertices {
		if err := en.checkpoint(ctx); err != nil {
			return err
		}
		en.relax(k)
	}

	// 3) Negative-cycle scan over the diagonal.
	en.transition(StateCycleCheck)
	if en.options.CycleCheck {
		if err := en.checkCycles(); err != nil {
			en.transition(StateNegativeCycle)
			en.log.Warn("floydwarshall: negative cycle", "error", err)

			return err
		}
	}

	en.transition(StateDone)
	en.log.Debug("floydwarshall: computed",
		"vertices", len(en.vertices),
		"records", len(en.store),
	)

	return nil
}

// reset clears the store and the index lists.
func (en *Engine[V, E, C]) reset() {
	en.store = make(map[Pair[V]]Record[C])
	en.succ = make(map[V][]V)
	en.pred = make(map[V][]V)
	en.loops = make(map[V]C)
	en.vertices = nil
	en.known = nil
}

// checkpoint reports cancellation from ctx or the Cancel flag.
func (en *Engine[V, E, C]) checkpoint(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		en.transition(StateCancelled)

		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	if en.cancelled.IsSet() {
		en.transition(StateCancelled)

		return ErrCancelled
	}

	return nil
}

// transition moves the state machine and logs the edge.
func (en *Engine[V, E, C]) transition(next State) {
	en.log.Debug("floydwarshall: state", "from", en.state.String(), "to", next.String())
	en.state = next
}

// initEdges stores one EdgeStep record per directed pair, keeping the cheapest
// parallel edge; on equal cost the first enumerated edge wins.
func (en *Engine[V, E, C]) initEdges() error {
	vertices := en.graph.Vertices()
	en.vertices = make([]V, 0, len(vertices))
	en.known = make(map[V]struct{}, len(vertices))
	var v V
	for _, v = range vertices {
		if _, dup := en.known[v]; dup {
			continue
		}
		en.known[v] = struct{}{}
		en.vertices = append(en.vertices, v)
	}

	var (
		e    E
		u, t V
		w    C
		p    Pair[V]
	)
	for _, e = range en.graph.Edges() {
		u, t = e.Source(), e.Target()
		if _, ok := en.known[u]; !ok {
			return fmt.Errorf("%w: edge %v→%v source %v", ErrVertexNotFound, u, t, u)
		}
		if _, ok := en.known[t]; !ok {
			return fmt.Errorf("%w: edge %v→%v target %v", ErrVertexNotFound, u, t, t)
		}
		w = en.weight(e)

		// Self-loops never replace the identity sentinel; remember the ones
		// that are a negative cycle on their own.
		if u == t {
			if isNegativeCycle(en.relaxer, w) {
				if cur, seen := en.loops[u]; !seen || en.relaxer.Improves(w, cur) {
					en.loops[u] = w
				}
			}
			continue
		}

		p = Pair[V]{Source: u, Target: t}
		if cur, ok := en.store[p]; ok && !en.relaxer.Improves(w, cur.Cost) {
			continue
		}
		en.put(p, Record[C]{Cost: w, Step: EdgeStep[E]{Edge: e}})
	}

	return nil
}

// initIdentity stores the identity sentinel on every diagonal pair.
func (en *Engine[V, E, C]) initIdentity() {
	identity := en.relaxer.Identity()
	var v V
	for _, v = range en.vertices {
		en.put(Pair[V]{Source: v, Target: v}, Record[C]{Cost: identity, Step: IdentityStep{}})
	}
}

// relax runs phase k: every (i,k) record is combined with every (k,j) record.
//
// Neither pred[k] nor succ[k] grows during the phase because pairs touching k
// are skipped, so the slices can be ranged directly.
func (en *Engine[V, E, C]) relax(k V) {
	var (
		i, j     V
		ik, kj   Record[C]
		combined C
		ij       Pair[V]
	)
	for _, i = range en.pred[k] {
		if i == k {
			continue
		}
		ik = en.store[Pair[V]{Source: i, Target: k}]
		for _, j = range en.succ[k] {
			if j == k {
				continue
			}
			kj = en.store[Pair[V]{Source: k, Target: j}]
			combined = en.relaxer.Combine(ik.Cost, kj.Cost)
			ij = Pair[V]{Source: i, Target: j}
			if cur, ok := en.store[ij]; ok && !en.relaxer.Improves(combined, cur.Cost) {
				continue
			}
			en.put(ij, Record[C]{Cost: combined, Step: ViaStep[V]{Via: k}})
		}
	}
}

// checkCycles fails on the first vertex (enumeration order) sitting on a
// negative cycle: a negative self-loop or a diagonal better than identity.
func (en *Engine[V, E, C]) checkCycles() error {
	var v V
	for _, v = range en.vertices {
		if w, ok := en.loops[v]; ok {
			return fmt.Errorf("%w: self-loop on %v (cost %v)", ErrNegativeCycle, v, w)
		}
		rec, ok := en.store[Pair[V]{Source: v, Target: v}]
		if ok && isNegativeCycle(en.relaxer, rec.Cost) {
			return fmt.Errorf("%w: through %v (cost %v)", ErrNegativeCycle, v, rec.Cost)
		}
	}

	return nil
}

// put inserts or replaces a record, indexing newly reachable pairs.
func (en *Engine[V, E, C]) put(p Pair[V], r Record[C]) {
	if _, ok := en.store[p]; !ok {
		en.succ[p.Source] = append(en.succ[p.Source], p.Target)
		en.pred[p.Target] = append(en.pred[p.Target], p.Source)
	}
	en.store[p] = r
}
