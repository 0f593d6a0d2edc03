package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolve(t *testing.T) {
	t.Run("solves 2x2 system", func(t *testing.T) {
		a := [][]float64{
			{2, 1},
			{1, 3},
		}
		b := []float64{5, 10}

		x, err := Solve(a, b)
		require.NoError(t, err)
		require.InDelta(t, 1.0, x[0], 1e-12)
		require.InDelta(t, 3.0, x[1], 1e-12)
	})

	t.Run("solves 3x3 system requiring pivoting", func(t *testing.T) {
		// Leading zero forces a row swap.
		a := [][]float64{
			{0, 2, 1},
			{1, -2, -3},
			{-1, 1, 2},
		}
		b := []float64{-8, 0, 3}

		x, err := Solve(a, b)
		require.NoError(t, err)
		// Verify by substitution.
		for i := range a {
			got := a[i][0]*x[0] + a[i][1]*x[1] + a[i][2]*x[2]
			require.InDelta(t, b[i], got, 1e-10)
		}
	})

	t.Run("rejects singular matrix", func(t *testing.T) {
		a := [][]float64{
			{1, 2},
			{2, 4},
		}
		b := []float64{3, 6}

		_, err := Solve(a, b)
		require.ErrorIs(t, err, ErrSingular)
	})

	t.Run("rejects dimension mismatch", func(t *testing.T) {
		_, err := Solve([][]float64{{1, 2}}, []float64{1})
		require.Error(t, err)

		_, err = Solve(nil, nil)
		require.Error(t, err)
	})

	t.Run("does not modify inputs", func(t *testing.T) {
		a := [][]float64{
			{4, 1},
			{1, 3},
		}
		b := []float64{1, 2}

		_, err := Solve(a, b)
		require.NoError(t, err)
		require.Equal(t, [][]float64{{4, 1}, {1, 3}}, a)
		require.Equal(t, []float64{1, 2}, b)
	})
}
