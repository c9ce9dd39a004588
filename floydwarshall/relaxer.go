// SPDX-License-Identifier: MIT

package floydwarshall

import "golang.org/x/exp/constraints"

// Relaxer is the pluggable cost algebra of the dynamic program.
//
// Contract:
//   - Combine(a, b) is associative and means "a then b".
//   - Improves(candidate, current) is a strict order compatible with Combine:
//     if Improves(a, b) then Combine(a, c) is never worse than Combine(b, c).
//   - Identity() is neutral for Combine and is the cost of every self-pair.
//
// A relaxer that breaks monotonicity breaks the correctness of the program.
type Relaxer[C Cost] interface {
	Identity() C
	Combine(a, b C) C
	Improves(candidate, current C) bool
}

// CycleDetector is an optional Relaxer extension overriding what counts as a
// negative cycle. Without it, a diagonal d is a negative cycle iff
// Improves(d, Identity()).
type CycleDetector[C Cost] interface {
	IsNegativeCycle(diagonal C) bool
}

// ShortestDistance is the default relaxer: sum of weights, smaller is better.
// Integer sums are not guarded against overflow.
type ShortestDistance[C Cost] struct{}

// Identity returns 0.
func (ShortestDistance[C]) Identity() C { return 0 }

// Combine returns a + b.
func (ShortestDistance[C]) Combine(a, b C) C { return a + b }

// Improves reports candidate < current.
func (ShortestDistance[C]) Improves(candidate, current C) bool { return candidate < current }

// CriticalDistance maximizes the sum of weights (critical path on a DAG).
// Under the default cycle notion it reports positive cycles.
type CriticalDistance[C Cost] struct{}

// Identity returns 0.
func (CriticalDistance[C]) Identity() C { return 0 }

// Combine returns a + b.
func (CriticalDistance[C]) Combine(a, b C) C { return a + b }

// Improves reports candidate > current.
func (CriticalDistance[C]) Improves(candidate, current C) bool { return candidate > current }

// Reliability maximizes the product of weights, for edge weights that are
// probabilities or exchange rates. Under the default cycle notion it reports
// cycles whose product exceeds 1 (for example currency arbitrage).
// Weights must be non-negative for the order to stay monotone.
type Reliability[C constraints.Float] struct{}

// Identity returns 1.
func (Reliability[C]) Identity() C { return 1 }

// Combine returns a * b.
func (Reliability[C]) Combine(a, b C) C { return a * b }

// Improves reports candidate > current.
func (Reliability[C]) Improves(candidate, current C) bool { return candidate > current }

// isNegativeCycle applies the relaxer's own notion if it has one.
func isNegativeCycle[C Cost](r Relaxer[C], diagonal C) bool {
	if d, ok := r.(CycleDetector[C]); ok {
		return d.IsNegativeCycle(diagonal)
	}

	return r.Improves(diagonal, r.Identity())
}
