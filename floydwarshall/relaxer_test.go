package floydwarshall_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/allpairs/floydwarshall"
)

// rate is a minimal generic edge used to run the engine on float costs
// without going through core.
type rate struct {
	from, to string
	value    float64
}

func (r rate) Source() string { return r.from }
func (r rate) Target() string { return r.to }

type rateGraph struct {
	vertices []string
	edges    []rate
}

func (g rateGraph) Vertices() []string { return g.vertices }
func (g rateGraph) Edges() []rate      { return g.edges }

func rateValue(r rate) float64 { return r.value }

func TestRelaxerAlgebra(t *testing.T) {
	cases := []struct {
		name     string
		relaxer  floydwarshall.Relaxer[float64]
		identity float64
		a, b     float64
		combined float64
		better   bool // Improves(a, b)
	}{
		{"shortest", floydwarshall.ShortestDistance[float64]{}, 0, 2, 3, 5, true},
		{"critical", floydwarshall.CriticalDistance[float64]{}, 0, 2, 3, 5, false},
		{"reliability", floydwarshall.Reliability[float64]{}, 1, 0.5, 0.25, 0.125, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.identity, tc.relaxer.Identity())
			require.Equal(t, tc.combined, tc.relaxer.Combine(tc.a, tc.b))
			require.Equal(t, tc.better, tc.relaxer.Improves(tc.a, tc.b))
			require.False(t, tc.relaxer.Improves(tc.a, tc.a), "Improves must be strict")
			require.Equal(t, tc.a, tc.relaxer.Combine(tc.a, tc.relaxer.Identity()), "identity must be neutral")
		})
	}
}

func TestReliabilityPicksMostReliableRoute(t *testing.T) {
	g := rateGraph{
		vertices: []string{"USD", "EUR", "GBP"},
		edges: []rate{
			{"USD", "EUR", 0.9},
			{"EUR", "GBP", 0.8},
			{"USD", "GBP", 0.7},
		},
	}
	en, err := floydwarshall.New[string, rate, float64](g, rateValue, floydwarshall.Reliability[float64]{})
	require.NoError(t, err)
	require.NoError(t, en.Compute(context.Background()))

	cost, ok, err := en.Cost("USD", "GBP")
	require.NoError(t, err)
	require.True(t, ok)
	require.InDelta(t, 0.72, cost, 1e-9)

	path, ok, err := en.Path("USD", "GBP")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []rate{{"USD", "EUR", 0.9}, {"EUR", "GBP", 0.8}}, path)

	self, _, _ := en.Cost("EUR", "EUR")
	require.Equal(t, 1.0, self)
}

func TestReliabilityDetectsArbitrage(t *testing.T) {
	g := rateGraph{
		vertices: []string{"USD", "EUR"},
		edges: []rate{
			{"USD", "EUR", 0.9},
			{"EUR", "USD", 1.2},
		},
	}
	en, err := floydwarshall.New[string, rate, float64](g, rateValue, floydwarshall.Reliability[float64]{})
	require.NoError(t, err)

	err = en.Compute(context.Background())
	require.ErrorIs(t, err, floydwarshall.ErrNegativeCycle)
	require.Equal(t, floydwarshall.StateNegativeCycle, en.State())
}

func TestCriticalDistanceOnDAG(t *testing.T) {
	g := rateGraph{
		vertices: []string{"A", "B", "C", "D"},
		edges: []rate{
			{"A", "B", 3},
			{"A", "C", 2},
			{"B", "D", 4},
			{"C", "D", 6},
		},
	}
	en, err := floydwarshall.New[string, rate, float64](g, rateValue, floydwarshall.CriticalDistance[float64]{})
	require.NoError(t, err)
	require.NoError(t, en.Compute(context.Background()))

	cost, ok, err := en.Cost("A", "D")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 8.0, cost)

	path, _, err := en.Path("A", "D")
	require.NoError(t, err)
	require.Equal(t, []rate{{"A", "C", 2}, {"C", "D", 6}}, path)
}

func TestCriticalDistanceRejectsCycles(t *testing.T) {
	g := rateGraph{
		vertices: []string{"A", "B"},
		edges:    []rate{{"A", "B", 1}, {"B", "A", 1}},
	}
	en, err := floydwarshall.New[string, rate, float64](g, rateValue, floydwarshall.CriticalDistance[float64]{})
	require.NoError(t, err)
	require.ErrorIs(t, en.Compute(context.Background()), floydwarshall.ErrNegativeCycle)
}

// widest is a bottleneck relaxer: a route is as wide as its narrowest edge,
// and wider is better. Cycles never widen a route.
type widest struct{}

func (widest) Identity() int64 { return math.MaxInt64 }

func (widest) Combine(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}

func (widest) Improves(candidate, current int64) bool { return candidate > current }

func (widest) IsNegativeCycle(int64) bool { return false }

func TestCustomRelaxerWithCycleDetector(t *testing.T) {
	g := rateGraph{
		vertices: []string{"A", "B", "C"},
		edges: []rate{
			{"A", "B", 10},
			{"B", "C", 4},
			{"A", "C", 3},
			{"C", "A", 50},
		},
	}
	capacity := func(r rate) int64 { return int64(r.value) }
	en, err := floydwarshall.New[string, rate, int64](g, capacity, widest{})
	require.NoError(t, err)
	require.NoError(t, en.Compute(context.Background()))

	width, ok, err := en.Cost("A", "C")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(4), width)

	path, _, err := en.Path("A", "C")
	require.NoError(t, err)
	require.Equal(t, []rate{{"A", "B", 10}, {"B", "C", 4}}, path)

	width, _, _ = en.Cost("C", "B")
	require.Equal(t, int64(10), width, "C→A→B is bottlenecked by A→B")
}
