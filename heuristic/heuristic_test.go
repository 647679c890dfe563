package heuristic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/elevpath/heuristic"
)

const eps = 1e-9

func TestWeightedEuclidean_FlatIsEuclidean(t *testing.T) {
	a := r3.Vec{X: 0, Y: 5, Z: 0}
	b := r3.Vec{X: 3, Y: 5, Z: 4}
	assert.InDelta(t, 5.0, heuristic.WeightedEuclidean(a, b, 40), eps)
	assert.InDelta(t, 5.0, heuristic.WeightedEuclidean(b, a, 40), eps)
}

func TestWeightedEuclidean_ClimbAndDescend(t *testing.T) {
	a := r3.Vec{X: 0, Y: 0, Z: 0}
	b := r3.Vec{X: 0, Y: 2, Z: 0}

	// climb: 2 + 10*2
	assert.InDelta(t, 22.0, heuristic.WeightedEuclidean(a, b, 10), eps)
	// descend: 2 + 5*2
	assert.InDelta(t, 12.0, heuristic.WeightedEuclidean(b, a, 10), eps)
}

// TestWeightedEuclidean_Asymmetry checks f(a,b) - f(b,a) == c*dy/2 for b above a.
func TestWeightedEuclidean_Asymmetry(t *testing.T) {
	cases := []struct {
		name string
		a, b r3.Vec
		c    float64
	}{
		{"Default", r3.Vec{X: 0, Y: 1, Z: 0}, r3.Vec{X: 20, Y: 4, Z: 20}, heuristic.DefaultCoefficient},
		{"Small", r3.Vec{X: 1, Y: -2, Z: 3}, r3.Vec{X: 2, Y: 0.5, Z: 3}, 0.25},
		{"Large", r3.Vec{X: 0, Y: 10, Z: 0}, r3.Vec{X: 0, Y: 10.5, Z: 1}, 1000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dy := tc.b.Y - tc.a.Y
			require.Greater(t, dy, 0.0)
			up := heuristic.WeightedEuclidean(tc.a, tc.b, tc.c)
			down := heuristic.WeightedEuclidean(tc.b, tc.a, tc.c)
			assert.Greater(t, up, down)
			assert.InDelta(t, 0.5*tc.c*dy, up-down, 1e-6)
		})
	}
}

func TestWeightedEuclidean_ZeroCoefficient(t *testing.T) {
	a := r3.Vec{X: 0, Y: 0, Z: 0}
	b := r3.Vec{X: 1, Y: 2, Z: 2}
	assert.InDelta(t, 3.0, heuristic.WeightedEuclidean(a, b, 0), eps)
}

func TestManhattan(t *testing.T) {
	a := r3.Vec{X: 1, Y: -2, Z: 3}
	b := r3.Vec{X: -1, Y: 2, Z: 0}
	assert.InDelta(t, 9.0, heuristic.Manhattan(a, b), eps)
	assert.InDelta(t, 9.0, heuristic.Manhattan(b, a), eps)
	assert.Zero(t, heuristic.Manhattan(a, a))
}

func TestChebyshev(t *testing.T) {
	a := r3.Vec{X: 1, Y: -2, Z: 3}
	b := r3.Vec{X: -1, Y: 2, Z: 0}
	assert.InDelta(t, 4.0, heuristic.Chebyshev(a, b), eps)
	assert.InDelta(t, 1.0, heuristic.Chebyshev(r3.Vec{}, r3.Vec{X: 1, Z: 1}), eps)
}

func TestKind_NextCycles(t *testing.T) {
	k := heuristic.KindWeightedEuclidean
	var seen []heuristic.Kind
	for i := 0; i < 3; i++ {
		seen = append(seen, k)
		k = k.Next()
	}
	assert.Equal(t, heuristic.Kinds(), seen)
	assert.Equal(t, heuristic.KindWeightedEuclidean, k)
	assert.Equal(t, heuristic.KindWeightedEuclidean, heuristic.Kind(99).Next())
}

func TestParseKind(t *testing.T) {
	cases := map[string]heuristic.Kind{
		"weighted-euclidean": heuristic.KindWeightedEuclidean,
		"Weighted_Euclidean": heuristic.KindWeightedEuclidean,
		"euclidean":          heuristic.KindWeightedEuclidean,
		" manhattan ":        heuristic.KindManhattan,
		"CHEBYSHEV":          heuristic.KindChebyshev,
	}
	for in, want := range cases {
		got, err := heuristic.ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := heuristic.ParseKind("octile")
	assert.ErrorIs(t, err, heuristic.ErrUnknownKind)
}

func TestKind_TextRoundTrip(t *testing.T) {
	for _, k := range heuristic.Kinds() {
		text, err := k.MarshalText()
		require.NoError(t, err)
		var back heuristic.Kind
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, k, back)
	}
	_, err := heuristic.Kind(-1).MarshalText()
	assert.ErrorIs(t, err, heuristic.ErrUnknownKind)
	assert.Equal(t, "Kind(-1)", heuristic.Kind(-1).String())
}

// TestParams_CoefficientCaptured verifies a built Func is unaffected by later
// changes to the Params value it came from.
func TestParams_CoefficientCaptured(t *testing.T) {
	p := heuristic.Params{Kind: heuristic.KindWeightedEuclidean, Coefficient: 10}
	f := p.Func()
	p.Coefficient = 1000

	a, b := r3.Vec{}, r3.Vec{Y: 1}
	assert.InDelta(t, 11.0, f(a, b), eps)
	assert.InDelta(t, 1001.0, p.Eval(a, b), eps)
}

func TestParams_Dispatch(t *testing.T) {
	a := r3.Vec{X: 0, Y: 0, Z: 0}
	b := r3.Vec{X: 3, Y: 0, Z: 4}
	assert.InDelta(t, 5.0, heuristic.DefaultParams().Eval(a, b), eps)
	assert.InDelta(t, 7.0, heuristic.Params{Kind: heuristic.KindManhattan}.Eval(a, b), eps)
	assert.InDelta(t, 4.0, heuristic.Params{Kind: heuristic.KindChebyshev}.Eval(a, b), eps)
	assert.False(t, math.IsNaN(heuristic.DefaultParams().Eval(a, a)))
}
