// SPDX-License-Identifier: MIT

package floydwarshall

import (
	"fmt"
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"
)

// dotGraphName names the digraph emitted by WriteDOT.
const dotGraphName = "allpairs"

// Records returns a copy of the record store. It is meant for debugging and
// tests; it is empty before the first Compute.
func (en *Engine[V, E, C]) Records() map[Pair[V]]Record[C] {
	out := make(map[Pair[V]]Record[C], len(en.store))
	for p, r := range en.store {
		out[p] = r
	}

	return out
}

// Dump writes every stored pair and its record, one per line, grouped by
// source in vertex order and by target in discovery order:
//
//	A->B: edge e1(A->B) cost=1
//	A->C: via B cost=3
func (en *Engine[V, E, C]) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "state: %s\n", en.state); err != nil {
		return err
	}
	var u, t V
	for _, u = range en.vertices {
		for _, t = range en.succ[u] {
			p := Pair[V]{Source: u, Target: t}
			if _, err := fmt.Fprintf(w, "%v: %v\n", p, en.store[p]); err != nil {
				return err
			}
		}
	}

	return nil
}

// WriteDOT renders the record store as a Graphviz digraph: one node per
// vertex, one edge per non-diagonal record labelled with its cost. Records
// that decompose through an intermediate are dashed, with the intermediate in
// the tooltip.
func (en *Engine[V, E, C]) WriteDOT(w io.Writer) error {
	gv := gographviz.NewGraph()
	if err := gv.SetName(dotGraphName); err != nil {
		return fmt.Errorf("floydwarshall: dot name: %w", err)
	}
	if err := gv.SetDir(true); err != nil {
		return fmt.Errorf("floydwarshall: dot direction: %w", err)
	}

	var u, t V
	for _, u = range en.vertices {
		if err := gv.AddNode(dotGraphName, dotID(u), nil); err != nil {
			return fmt.Errorf("floydwarshall: dot node %v: %w", u, err)
		}
	}
	for _, u = range en.vertices {
		for _, t = range en.succ[u] {
			if u == t {
				continue
			}
			rec := en.store[Pair[V]{Source: u, Target: t}]
			attrs := map[string]string{
				"label": strconv.Quote(fmt.Sprint(rec.Cost)),
			}
			if via, ok := rec.Step.(ViaStep[V]); ok {
				attrs["style"] = "dashed"
				attrs["tooltip"] = strconv.Quote(fmt.Sprintf("via %v", via.Via))
			}
			if err := gv.AddEdge(dotID(u), dotID(t), true, attrs); err != nil {
				return fmt.Errorf("floydwarshall: dot edge %v->%v: %w", u, t, err)
			}
		}
	}

	_, err := io.WriteString(w, gv.String())

	return err
}

// dotID quotes a vertex so that any %v rendering is a valid DOT identifier.
func dotID[V any](v V) string {
	return strconv.Quote(fmt.Sprint(v))
}
