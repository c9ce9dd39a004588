package floydwarshall_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/brianvoe/gofakeit"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/allpairs/core"
	"github.com/katalvlaran/allpairs/floydwarshall"
)

// randomGraph builds a directed multigraph with n vertices, roughly density·n²
// edges and weights in [minW, maxW]. Seeded, so every run sees the same graph.
func randomGraph(t testing.TB, seed int64, n int, density float64, minW, maxW int) *core.Graph {
	gofakeit.Seed(seed)

	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("v%02d", i)))
	}
	m := int(density * float64(n*n))
	for i := 0; i < m; i++ {
		from := fmt.Sprintf("v%02d", gofakeit.Number(0, n-1))
		to := fmt.Sprintf("v%02d", gofakeit.Number(0, n-1))
		_, err := g.AddEdge(from, to, int64(gofakeit.Number(minW, maxW)))
		require.NoError(t, err)
	}

	return g
}

func TestRandomGraphsMatchDenseReference(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			g := randomGraph(t, seed, 14, 0.15, 0, 40)
			en := computed(t, g)
			ids := g.Vertices()
			ref := denseFloydWarshall(ids, g.Arcs())

			for _, u := range ids {
				for _, v := range ids {
					cost, ok, err := en.Cost(u, v)
					require.NoError(t, err)
					if math.IsInf(ref[u][v], 1) {
						require.False(t, ok, "%s->%s should be unreachable", u, v)
						continue
					}
					require.True(t, ok, "%s->%s should be reachable", u, v)
					require.Equal(t, ref[u][v], float64(cost), "cost %s->%s", u, v)
				}
			}
		})
	}
}

func TestRandomGraphsPathsAreConsistent(t *testing.T) {
	for seed := int64(100); seed < 110; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			g := randomGraph(t, seed, 12, 0.2, 1, 25)
			en := computed(t, g)
			ids := g.Vertices()

			for _, u := range ids {
				for _, v := range ids {
					path, ok, err := en.Path(u, v)
					require.NoError(t, err)
					cost, costOK, err := en.Cost(u, v)
					require.NoError(t, err)
					require.Equal(t, costOK, ok, "Path and Cost must agree on reachability")
					if !ok || u == v {
						continue
					}

					requireChained(t, path, u, v)
					require.Equal(t, cost, pathWeight(path), "edge weights of %s->%s must sum to its cost", u, v)

					visited := map[string]bool{u: true}
					for _, a := range path {
						require.False(t, visited[a.Target()], "%s->%s revisits %s", u, v, a.Target())
						visited[a.Target()] = true
					}
				}
			}
		})
	}
}

func TestRandomGraphsSatisfyTriangleInequality(t *testing.T) {
	g := randomGraph(t, 7, 16, 0.12, 1, 30)
	en := computed(t, g)
	recs := en.Records()
	ids := g.Vertices()

	for _, i := range ids {
		for _, k := range ids {
			ik, ok := recs[floydwarshall.NewPair(i, k)]
			if !ok {
				continue
			}
			for _, j := range ids {
				kj, ok := recs[floydwarshall.NewPair(k, j)]
				if !ok {
					continue
				}
				ij, ok := recs[floydwarshall.NewPair(i, j)]
				require.True(t, ok, "%s->%s is reachable through %s", i, j, k)
				require.LessOrEqual(t, ij.Cost, ik.Cost+kj.Cost, "%s->%s vs via %s", i, j, k)
			}
		}
	}
}

func TestRandomNegativeWeightsWithoutCycles(t *testing.T) {
	// Edges only run from lower to higher index, so negative weights cannot
	// close a cycle.
	gofakeit.Seed(42)
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	const n = 10
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if gofakeit.Number(0, 2) == 0 {
				continue
			}
			_, err := g.AddEdge(fmt.Sprintf("v%02d", i), fmt.Sprintf("v%02d", j), int64(gofakeit.Number(-20, 20)))
			require.NoError(t, err)
		}
	}

	en := computed(t, g)
	ids := g.Vertices()
	ref := denseFloydWarshall(ids, g.Arcs())
	for _, u := range ids {
		for _, v := range ids {
			cost, ok, err := en.Cost(u, v)
			require.NoError(t, err)
			require.Equal(t, !math.IsInf(ref[u][v], 1), ok)
			if ok {
				require.Equal(t, ref[u][v], float64(cost))
			}
		}
	}
}
