// SPDX-License-Identifier: MIT

package floydwarshall

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Path reconstructs a shortest path from source to target.
//
// Returns:
//
//   - path: edges in source-to-target order; empty (non-nil) when source == target.
//   - ok:   false when no path exists. This is not an error.
//   - err:  ErrNotComputed without a Done run, ErrVertexNotFound for a vertex
//     outside the graph, ErrInconsistentPath when the records decompose
//     through the same vertex twice.
//
// Reconstruction uses an explicit stack of pairs, never recursion: a ViaStep k
// on (s,t) pushes (k,t) then (s,k), so edges are emitted in order as the stack
// unwinds.
//
// Complexity: O(L) for a path of L edges.
func (en *Engine[V, E, C]) Path(source, target V) ([]E, bool, error) {
	if err := en.queryable(source, target); err != nil {
		return nil, false, err
	}
	if source == target {
		return []E{}, true, nil
	}

	// Every intermediate of a simple path appears once; a repeat means the
	// store decomposes cyclically and the walk would never end.
	seen := map[V]struct{}{source: {}, target: {}}

	path := make([]E, 0, 4)
	todo := []Pair[V]{{Source: source, Target: target}}
	var cur Pair[V]
	for len(todo) > 0 {
		cur = todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		rec, ok := en.store[cur]
		if !ok {
			return nil, false, nil
		}
		switch step := rec.Step.(type) {
		case EdgeStep[E]:
			path = append(path, step.Edge)
		case ViaStep[V]:
			if _, dup := seen[step.Via]; dup {
				return nil, false, fmt.Errorf("%w: %v revisited while expanding %v", ErrInconsistentPath, step.Via, cur)
			}
			seen[step.Via] = struct{}{}
			todo = append(todo,
				Pair[V]{Source: step.Via, Target: cur.Target},
				Pair[V]{Source: cur.Source, Target: step.Via},
			)
		default:
			// Identity records only sit on the diagonal, which a pair with
			// distinct endpoints never reaches.
			return nil, false, fmt.Errorf("%w: unexpected %v on %v", ErrInconsistentPath, rec, cur)
		}
	}

	return path, true, nil
}

// Cost returns the best cost from source to target; ok is false when no path
// exists. A self-pair costs the relaxer's identity.
func (en *Engine[V, E, C]) Cost(source, target V) (C, bool, error) {
	var zero C
	if err := en.queryable(source, target); err != nil {
		return zero, false, err
	}
	if source == target {
		return en.relaxer.Identity(), true, nil
	}
	rec, ok := en.store[Pair[V]{Source: source, Target: target}]
	if !ok {
		return zero, false, nil
	}

	return rec.Cost, true, nil
}

// Paths reconstructs many pairs concurrently with at most workers goroutines
// (workers <= 0 means unbounded). Pairs without a path are absent from the
// result. The first error cancels the remaining work.
func (en *Engine[V, E, C]) Paths(ctx context.Context, pairs []Pair[V], workers int) (map[Pair[V]][]E, error) {
	if en.state != StateDone {
		return nil, fmt.Errorf("%w: engine is %s", ErrNotComputed, en.state)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	paths := make([][]E, len(pairs))
	found := make([]bool, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for idx := range pairs {
		idx := idx
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path, ok, err := en.Path(pairs[idx].Source, pairs[idx].Target)
			if err != nil {
				return err
			}
			paths[idx], found[idx] = path, ok

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[Pair[V]][]E, len(pairs))
	for idx, p := range pairs {
		if found[idx] {
			out[p] = paths[idx]
		}
	}

	return out, nil
}

// queryable checks the query preconditions: a Done run and known endpoints.
func (en *Engine[V, E, C]) queryable(source, target V) error {
	if en.state != StateDone {
		return fmt.Errorf("%w: engine is %s", ErrNotComputed, en.state)
	}
	if _, ok := en.known[source]; !ok {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}
	if _, ok := en.known[target]; !ok {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, target)
	}

	return nil
}
