// SPDX-License-Identifier: MIT

package floydwarshall

import "fmt"

// Step says how a record's pair decomposes. It is a closed sum type: the only
// implementations are EdgeStep, ViaStep and IdentityStep.
type Step interface {
	isStep()
}

// EdgeStep is a direct graph edge whose endpoints equal the record's pair.
type EdgeStep[E any] struct {
	Edge E
}

// ViaStep names the intermediate vertex splitting the pair in two halves,
// both of which have records of their own.
type ViaStep[V comparable] struct {
	Via V
}

// IdentityStep marks a diagonal pair. It carries no edge and never decomposes.
type IdentityStep struct{}

func (EdgeStep[E]) isStep()  {}
func (ViaStep[V]) isStep()   {}
func (IdentityStep) isStep() {}

// Record is the best known cost for one pair and how to rebuild it.
type Record[C Cost] struct {
	Cost C
	Step Step
}

// String renders the record for diagnostic dumps.
func (r Record[C]) String() string {
	if _, ok := r.Step.(IdentityStep); ok {
		return fmt.Sprintf("identity cost=%v", r.Cost)
	}

	return fmt.Sprintf("%v cost=%v", r.Step, r.Cost)
}

// String renders an edge step; the edge is formatted with %v.
func (s EdgeStep[E]) String() string { return fmt.Sprintf("edge %v", s.Edge) }

// String renders a via step.
func (s ViaStep[V]) String() string { return fmt.Sprintf("via %v", s.Via) }
