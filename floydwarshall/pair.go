// SPDX-License-Identifier: MIT

package floydwarshall

import "fmt"

// Pair is the ordered (Source, Target) key of the record store.
// Two pairs are equal iff both components are equal, so (a,b) != (b,a)
// unless a == b.
type Pair[V comparable] struct {
	Source V
	Target V
}

// NewPair builds the pair source → target.
func NewPair[V comparable](source, target V) Pair[V] {
	return Pair[V]{Source: source, Target: target}
}

// Reverse returns the pair target → source.
func (p Pair[V]) Reverse() Pair[V] {
	return Pair[V]{Source: p.Target, Target: p.Source}
}

// Diagonal reports whether the pair relates a vertex to itself.
func (p Pair[V]) Diagonal() bool {
	return p.Source == p.Target
}

// String renders the pair as "source->target".
func (p Pair[V]) String() string {
	return fmt.Sprintf("%v->%v", p.Source, p.Target)
}
