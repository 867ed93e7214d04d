package separation_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvbap/core"
	"github.com/katalvlaran/lvbap/flow"
	"github.com/katalvlaran/lvbap/separation"
)

var strategies = []flow.Algorithm{
	flow.AlgoDinic,
	flow.AlgoEdmondsKarp,
	flow.AlgoFordFulkerson,
	flow.AlgoPushRelabel,
}

// twoTriangles builds the 6-vertex graph 1-2-3-4 square with vertex 5 on
// 1,4 and vertex 6 on 2,3, returning edge IDs keyed "u-v".
func twoTriangles(t *testing.T) (*core.Graph, map[string]string) {
	g := core.NewGraph()
	ids := make(map[string]string)
	for _, p := range [][2]string{
		{"1", "2"}, {"2", "3"}, {"3", "4"}, {"4", "1"}, {"1", "5"},
		{"4", "5"}, {"5", "6"}, {"2", "6"}, {"3", "6"},
	} {
		eid, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
		ids[p[0]+"-"+p[1]] = eid
	}

	return g, ids
}

func valuesOf(ids map[string]string, x map[string]float64) map[string]float64 {
	values := make(map[string]float64, len(x))
	for pair, v := range x {
		values[ids[pair]] = v
	}

	return values
}

// SeparatorSuite covers the separation operations on fixed scenarios.
type SeparatorSuite struct {
	suite.Suite
}

func TestSeparatorSuite(t *testing.T) {
	suite.Run(t, new(SeparatorSuite))
}

// TestTwoSubtours verifies the disconnected-triangles scenario.
func (s *SeparatorSuite) TestTwoSubtours() {
	g, ids := twoTriangles(s.T())
	values := valuesOf(ids, map[string]float64{
		"1-2": 0, "2-3": 1, "3-4": 0, "4-1": 1, "1-5": 1,
		"4-5": 1, "5-6": 0, "2-6": 1, "3-6": 1,
	})

	for _, alg := range strategies {
		sep, err := separation.NewSeparator(g, separation.WithMaxFlow(alg))
		require.NoError(s.T(), err)

		cut, err := sep.SeparateSubtour(values)
		require.NoError(s.T(), err)
		require.NotNil(s.T(), cut)
		require.InDelta(s.T(), 0.0, cut.Value, separation.Epsilon)
		require.Equal(s.T(), []string{"2", "3", "6"}, cut.Set)

		want := separation.SubtourCut{Set: []string{"2", "3", "6"}}
		cuts, err := sep.SeparateSubtours(values, 100)
		require.NoError(s.T(), err)
		require.Len(s.T(), cuts, 1, alg.String())
		require.True(s.T(), cuts[0].Equal(want))

		cuts, err = sep.SeparateMostViolatedSubtours(values, 100)
		require.NoError(s.T(), err)
		require.Len(s.T(), cuts, 1, alg.String())
		require.True(s.T(), cuts[0].Equal(want))
	}
}

// TestHamiltonianCycleHasNoViolation verifies the tour 1-2-6-3-4-5-1.
func (s *SeparatorSuite) TestHamiltonianCycleHasNoViolation() {
	g, ids := twoTriangles(s.T())
	values := valuesOf(ids, map[string]float64{
		"1-2": 1, "2-3": 0, "3-4": 1, "4-1": 0, "1-5": 1,
		"4-5": 1, "5-6": 0, "2-6": 1, "3-6": 1,
	})

	for _, alg := range strategies {
		sep, err := separation.NewSeparator(g, separation.WithMaxFlow(alg))
		require.NoError(s.T(), err)

		cut, err := sep.SeparateSubtour(values)
		require.NoError(s.T(), err)
		require.Nil(s.T(), cut)

		for _, n := range []int{0, 1, 5} {
			cuts, err := sep.SeparateSubtours(values, n)
			require.NoError(s.T(), err)
			require.Empty(s.T(), cuts)
			cuts, err = sep.SeparateMostViolatedSubtours(values, n)
			require.NoError(s.T(), err)
			require.Empty(s.T(), cuts)
		}
	}
}

// TestDirectedInput verifies antiparallel arcs collapse into one working edge.
func (s *SeparatorSuite) TestDirectedInput() {
	g := core.NewGraph(core.WithDirected(true))
	ids := make(map[string]string)
	for _, p := range [][2]string{
		{"1", "2"}, {"2", "3"}, {"3", "4"}, {"4", "1"}, {"1", "4"}, {"1", "5"},
		{"5", "1"}, {"4", "5"}, {"5", "4"}, {"6", "2"}, {"3", "6"},
	} {
		eid, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(s.T(), err)
		ids[p[0]+"-"+p[1]] = eid
	}
	values := valuesOf(ids, map[string]float64{
		"1-2": 0, "2-3": 1, "3-4": 0, "4-1": 0.5, "1-4": 0.5, "1-5": 0.5,
		"5-1": 0.5, "4-5": 0.5, "5-4": 0.5, "6-2": 1, "3-6": 1,
	})

	sep, err := separation.NewSeparator(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 8, sep.Graph().Size())

	cut, err := sep.SeparateSubtour(values)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), cut)
	require.InDelta(s.T(), 0.0, cut.Value, separation.Epsilon)
	require.Equal(s.T(), []string{"2", "3", "6"}, cut.Set)
	require.InDelta(s.T(), 1.0, sep.Graph().Weight("4", "1"), 1e-12)

	cuts, err := sep.SeparateSubtours(values, 10)
	require.NoError(s.T(), err)
	require.Len(s.T(), cuts, 1)
	require.Equal(s.T(), []string{"2", "3", "6"}, cuts[0].Set)
}

// star returns hub "a" joined to leaves with the given values.
func star(t *testing.T, leaves map[string]float64) (*core.Graph, map[string]float64) {
	g := core.NewGraph()
	values := make(map[string]float64)
	for _, leaf := range []string{"b", "c", "d", "e", "f"} {
		x, ok := leaves[leaf]
		if !ok {
			continue
		}
		eid, err := g.AddEdge("a", leaf, 0)
		require.NoError(t, err)
		values[eid] = x
	}

	return g, values
}

// TestMostViolatedOrdering verifies best-k retention and the early stop.
func (s *SeparatorSuite) TestMostViolatedOrdering() {
	g, values := star(s.T(), map[string]float64{
		"b": 1.4, "c": 1.0, "d": 0.6, "e": 0.2, "f": 2.5,
	})
	for _, alg := range strategies {
		sep, err := separation.NewSeparator(g, separation.WithMaxFlow(alg))
		require.NoError(s.T(), err)

		cuts, err := sep.SeparateSubtours(values, 2)
		require.NoError(s.T(), err)
		require.Len(s.T(), cuts, 2)
		require.Equal(s.T(), []string{"b"}, cuts[0].Set, "scan order stops early")
		require.Equal(s.T(), []string{"c"}, cuts[1].Set)

		cuts, err = sep.SeparateMostViolatedSubtours(values, 2)
		require.NoError(s.T(), err)
		require.Len(s.T(), cuts, 2)
		require.Equal(s.T(), []string{"e"}, cuts[0].Set)
		require.InDelta(s.T(), 0.2, cuts[0].Value, 1e-12)
		require.Equal(s.T(), []string{"d"}, cuts[1].Set)

		cuts, err = sep.SeparateMostViolatedSubtours(values, 10)
		require.NoError(s.T(), err)
		require.Len(s.T(), cuts, 4, "leaf f is not violated")
		for i := 1; i < len(cuts); i++ {
			require.LessOrEqual(s.T(), cuts[i-1].Value, cuts[i].Value)
		}

		cut, err := sep.SeparateSubtour(values)
		require.NoError(s.T(), err)
		require.Equal(s.T(), []string{"e"}, cut.Set)
	}
}

// TestMostViolatedTiesKeepDiscoveryOrder verifies deterministic tie breaking.
func (s *SeparatorSuite) TestMostViolatedTiesKeepDiscoveryOrder() {
	g, values := star(s.T(), map[string]float64{"b": 0.5, "c": 0.5, "d": 0.5})
	sep, err := separation.NewSeparator(g)
	require.NoError(s.T(), err)

	cuts, err := sep.SeparateMostViolatedSubtours(values, 2)
	require.NoError(s.T(), err)
	require.Len(s.T(), cuts, 2)
	require.Equal(s.T(), []string{"b"}, cuts[0].Set)
	require.Equal(s.T(), []string{"c"}, cuts[1].Set)
}

// TestDegenerateGraphs verifies that tiny or edgeless inputs yield nothing.
func (s *SeparatorSuite) TestDegenerateGraphs() {
	single := core.NewGraph()
	require.NoError(s.T(), single.AddVertex("x"))
	edgeless := core.NewGraph()
	require.NoError(s.T(), edgeless.AddVertex("x"))
	require.NoError(s.T(), edgeless.AddVertex("y"))

	for _, g := range []*core.Graph{core.NewGraph(), single, edgeless} {
		sep, err := separation.NewSeparator(g)
		require.NoError(s.T(), err)

		cut, err := sep.SeparateSubtour(nil)
		require.NoError(s.T(), err)
		require.Nil(s.T(), cut)
		cuts, err := sep.SeparateSubtours(nil, 3)
		require.NoError(s.T(), err)
		require.Empty(s.T(), cuts)
		cuts, err = sep.SeparateMostViolatedSubtours(nil, 3)
		require.NoError(s.T(), err)
		require.Empty(s.T(), cuts)
	}
}

// TestRejectsBadRequests verifies validation happens before weights change.
func (s *SeparatorSuite) TestRejectsBadRequests() {
	g, ids := twoTriangles(s.T())
	sep, err := separation.NewSeparator(g)
	require.NoError(s.T(), err)

	first := valuesOf(ids, map[string]float64{"2-3": 1})
	_, err = sep.SeparateSubtours(first, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1.0, sep.Graph().Weight("2", "3"))

	other := valuesOf(ids, map[string]float64{"1-2": 1})
	_, err = sep.SeparateSubtours(other, -1)
	require.ErrorIs(s.T(), err, separation.ErrNegativeMaxCount)
	_, err = sep.SeparateMostViolatedSubtours(other, -1)
	require.ErrorIs(s.T(), err, separation.ErrNegativeMaxCount)
	require.Equal(s.T(), 1.0, sep.Graph().Weight("2", "3"))
	require.Equal(s.T(), 0.0, sep.Graph().Weight("1", "2"))

	bad := map[string]float64{ids["1-2"]: 1, "e999": 0.5}
	_, err = sep.SeparateSubtour(bad)
	require.ErrorIs(s.T(), err, separation.ErrUnknownEdge)
	require.Equal(s.T(), 1.0, sep.Graph().Weight("2", "3"))

	// Unknown edges at or below Epsilon are ignored like any zero value.
	_, err = sep.SeparateSubtour(map[string]float64{"e999": 1e-9})
	require.NoError(s.T(), err)

	_, err = separation.NewSeparator(g, separation.WithMaxFlow(flow.Algorithm(9)))
	require.ErrorIs(s.T(), err, flow.ErrUnknownAlgorithm)
}

// TestTinyValuesAreZero verifies that x ≤ Epsilon is dropped on refresh.
func (s *SeparatorSuite) TestTinyValuesAreZero() {
	g, ids := twoTriangles(s.T())
	sep, err := separation.NewSeparator(g)
	require.NoError(s.T(), err)

	values := valuesOf(ids, map[string]float64{
		"1-2": 1, "2-3": 1e-7, "3-4": 1, "1-5": 1, "4-5": 1, "2-6": 1, "3-6": 1,
	})
	_, err = sep.SeparateSubtour(values)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, sep.Graph().Weight("2", "3"))
}

// bruteForceMin enumerates every proper subset excluding vertex 0.
func bruteForceMin(cg *separation.CutGraph) float64 {
	ids := cg.Vertices()
	n := len(ids)
	best := -1.0
	for mask := 1; mask < 1<<(n-1); mask++ {
		var set []string
		for i := 1; i < n; i++ {
			if mask&(1<<(i-1)) != 0 {
				set = append(set, ids[i])
			}
		}
		v := cg.CutValue(set)
		if best < 0 || v < best {
			best = v
		}
	}

	return best
}

// TestRandomSupportGraphs cross-checks every operation against brute force
// on random half-integral solutions.
func TestRandomSupportGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	levels := []float64{0, 0, 0.5, 1}
	for round := 0; round < 40; round++ {
		n := 3 + rng.Intn(5)
		g := core.NewGraph()
		values := make(map[string]float64)
		for u := 0; u < n; u++ {
			require.NoError(t, g.AddVertex(fmt.Sprintf("v%d", u)))
		}
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if rng.Intn(3) == 0 {
					continue
				}
				eid, err := g.AddEdge(fmt.Sprintf("v%d", u), fmt.Sprintf("v%d", v), 0)
				require.NoError(t, err)
				values[eid] = levels[rng.Intn(len(levels))]
			}
		}

		for _, alg := range strategies {
			sep, err := separation.NewSeparator(g, separation.WithMaxFlow(alg))
			require.NoError(t, err)

			single, err := sep.SeparateSubtour(values)
			require.NoError(t, err)
			again, err := sep.SeparateSubtour(values)
			require.NoError(t, err)
			require.Equal(t, single, again, "idempotent")

			cuts, err := sep.SeparateSubtours(values, n)
			require.NoError(t, err)
			most, err := sep.SeparateMostViolatedSubtours(values, n)
			require.NoError(t, err)

			if sep.Graph().Size() == 0 {
				require.Nil(t, single)
				require.Empty(t, cuts)
				require.Empty(t, most)

				continue
			}
			lowest := bruteForceMin(sep.Graph())
			if lowest >= 2-separation.Epsilon {
				require.Nil(t, single)
				require.Empty(t, cuts)
				require.Empty(t, most)

				continue
			}
			require.NotNil(t, single)
			require.InDelta(t, lowest, single.Value, 1e-9)
			require.NotEmpty(t, cuts)
			require.NotEmpty(t, most)
			require.InDelta(t, lowest, most[0].Value, 1e-9, "s-t scan finds the global minimum")

			for _, c := range append(append([]separation.SubtourCut{*single}, cuts...), most...) {
				require.NotEmpty(t, c.Set)
				require.Less(t, len(c.Set), n)
				require.NotContains(t, c.Set, "v0")
				require.InDelta(t, sep.Graph().CutValue(c.Set), c.Value, 1e-12)
				require.True(t, c.Violated())
			}
		}
	}
}
