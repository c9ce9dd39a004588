package floydwarshall_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/allpairs/core"
	"github.com/katalvlaran/allpairs/floydwarshall"
)

// arcIDs flattens a path into "ID(from->to)" strings for readable assertions.
func arcIDs(path []core.Arc) []string {
	out := make([]string, len(path))
	for i, a := range path {
		out[i] = a.String()
	}

	return out
}

// pathWeight sums the arc weights of a path.
func pathWeight(path []core.Arc) int64 {
	var total int64
	for _, a := range path {
		total += a.Weight()
	}

	return total
}

// requireChained asserts that consecutive arcs share endpoints and the path
// runs from source to target.
func requireChained(t *testing.T, path []core.Arc, source, target string) {
	t.Helper()

	require.NotEmpty(t, path)
	require.Equal(t, source, path[0].Source(), "path must start at %s", source)
	require.Equal(t, target, path[len(path)-1].Target(), "path must end at %s", target)
	for i := 1; i < len(path); i++ {
		require.Equal(t, path[i-1].Target(), path[i].Source(), "arc %d does not continue arc %d", i, i-1)
	}
}

// directed builds a directed, weighted core graph from (from, to, weight) triples.
func directed(t *testing.T, opts []core.GraphOption, edges ...edgeDef) *core.Graph {
	t.Helper()

	base := []core.GraphOption{core.WithDirected(true), core.WithWeighted()}
	g := core.NewGraph(append(base, opts...)...)
	for _, e := range edges {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	return g
}

type edgeDef struct {
	from, to string
	w        int64
}

// computed builds and runs a shortest-distance engine over g.
func computed(t *testing.T, g *core.Graph, opts ...floydwarshall.Option) *floydwarshall.Engine[string, core.Arc, int64] {
	t.Helper()

	en, err := floydwarshall.NewCore(g, opts...)
	require.NoError(t, err)
	require.NoError(t, en.Compute(context.Background()))
	require.Equal(t, floydwarshall.StateDone, en.State())

	return en
}

// denseFloydWarshall is the textbook k→i→j closure on a dense matrix with
// +Inf for "no path"; it serves as the reference for the sparse engine.
func denseFloydWarshall(ids []string, arcs []core.Arc) map[string]map[string]float64 {
	n := len(ids)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				data[i*n+j] = math.Inf(1)
			}
		}
	}
	for _, a := range arcs {
		i, j := index[a.Source()], index[a.Target()]
		if i == j {
			continue
		}
		if w := float64(a.Weight()); w < data[i*n+j] {
			data[i*n+j] = w
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik := data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				kj := data[k*n+j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand := ik + kj; cand < data[i*n+j] {
					data[i*n+j] = cand
				}
			}
		}
	}

	out := make(map[string]map[string]float64, n)
	for i, u := range ids {
		out[u] = make(map[string]float64, n)
		for j, v := range ids {
			out[u][v] = data[i*n+j]
		}
	}

	return out
}
