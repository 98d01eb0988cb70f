package mathutil

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const solverTolerance = 1e-9

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name       string
		c0, c1, c2 float64
		want       []float64
	}{
		{
			// (x-1)(x-2) = x² - 3x + 2
			name: "two distinct roots",
			c0:   2, c1: -3, c2: 1,
			want: []float64{1, 2},
		},
		{
			// (x-3)² = x² - 6x + 9
			name: "double root",
			c0:   9, c1: -6, c2: 1,
			want: []float64{3},
		},
		{
			name: "no real roots",
			c0:   1, c1: 0, c2: 1,
			want: nil,
		},
		{
			name: "linear fallback",
			c0:   -4, c1: 2, c2: 0,
			want: []float64{2},
		},
		{
			name: "all zero coefficients",
			c0:   0, c1: 0, c2: 0,
			want: []float64{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots, n := SolveQuadratic(tt.c0, tt.c1, tt.c2)
			require.Equal(t, len(tt.want), n)
			got := append([]float64(nil), roots[:n]...)
			sort.Float64s(got)
			for i, want := range tt.want {
				assert.InDelta(t, want, got[i], solverTolerance)
			}
		})
	}
}

func TestSolveQuadratic_RootsAscending(t *testing.T) {
	roots, n := SolveQuadratic(-6, 1, 1) // (x+3)(x-2)
	require.Equal(t, 2, n)
	assert.InDelta(t, -3, roots[0], solverTolerance)
	assert.InDelta(t, 2, roots[1], solverTolerance)
}

func TestSolveCubic(t *testing.T) {
	tests := []struct {
		name           string
		c0, c1, c2, c3 float64
		want           []float64
	}{
		{
			// (x-1)(x-2)(x-3) = x³ - 6x² + 11x - 6
			name: "three distinct roots",
			c0:   -6, c1: 11, c2: -6, c3: 1,
			want: []float64{1, 2, 3},
		},
		{
			// x³ - x - 6 has the single real root 2.
			name: "single real root",
			c0:   -6, c1: -1, c2: 0, c3: 1,
			want: []float64{2},
		},
		{
			// (x-1)²(x+2) = x³ - 3x + 2
			name: "double root",
			c0:   2, c1: -3, c2: 0, c3: 1,
			want: []float64{-2, 1},
		},
		{
			name: "quadratic fallback",
			c0:   2, c1: -3, c2: 1, c3: 0,
			want: []float64{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots, n := SolveCubic(tt.c0, tt.c1, tt.c2, tt.c3)
			require.Equal(t, len(tt.want), n)
			got := append([]float64(nil), roots[:n]...)
			sort.Float64s(got)
			for i, want := range tt.want {
				assert.InDelta(t, want, got[i], solverTolerance)
			}
		})
	}
}

func TestFirstRootIn01(t *testing.T) {
	r, ok := FirstRootIn01([]float64{-2, 0.4, 0.9})
	require.True(t, ok)
	assert.InDelta(t, 0.4, r, solverTolerance)

	// A root a hair outside the interval is snapped onto it.
	r, ok = FirstRootIn01([]float64{1 + 1e-12})
	require.True(t, ok)
	assert.Equal(t, 1.0, r)

	_, ok = FirstRootIn01([]float64{-0.5, 1.5})
	assert.False(t, ok)

	_, ok = FirstRootIn01(nil)
	assert.False(t, ok)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
}
