package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInformationCriteriaPenalizeComplexity(t *testing.T) {
	// With SSE held fixed, AICc must be non-decreasing in k.
	const sse = 1.0
	const n = 20

	prev := math.Inf(-1)
	for k := 2; k <= 12; k++ {
		_, aicc, _ := informationCriteria(sse, n, k)
		require.GreaterOrEqual(t, aicc, prev, "k=%d", k)
		prev = aicc
	}
}

func TestInformationCriteriaGuards(t *testing.T) {
	t.Run("non-positive SSE is floored", func(t *testing.T) {
		aic, aicc, bic := informationCriteria(0, 10, 3)
		require.False(t, math.IsNaN(aic))
		require.False(t, math.IsNaN(aicc))
		require.False(t, math.IsNaN(bic))
		require.False(t, math.IsInf(aic, 0))
	})

	t.Run("small samples blow up AICc, not AIC", func(t *testing.T) {
		aic, aicc, _ := informationCriteria(1.0, 4, 4)
		require.False(t, math.IsInf(aic, 0))
		require.True(t, math.IsInf(aicc, 1))
	})
}

func TestInformationCriteriaFormulas(t *testing.T) {
	const sse, n, k = 2.5, 12, 3
	aic, aicc, bic := informationCriteria(sse, n, k)

	wantAIC := 12*math.Log(2.5/12) + 6
	require.InDelta(t, wantAIC, aic, 1e-12)
	require.InDelta(t, wantAIC+2*3*4/8.0, aicc, 1e-12)
	require.InDelta(t, 12*math.Log(2.5/12)+3*math.Log(12), bic, 1e-12)
}

func TestBestFitVerdict(t *testing.T) {
	t.Run("linear model on linear data is best", func(t *testing.T) {
		x := []float64{1, 2, 3, 4, 5, 6, 7, 8}
		y := []float64{2.0, 4.1, 5.9, 8.0, 10.1, 11.9, 14.0, 16.1}

		res, err := Fit(x, y, ModelLinear)
		require.NoError(t, err)
		require.True(t, res.BestFit)
	})

	t.Run("linear model on quadratic data is not best", func(t *testing.T) {
		x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		y := make([]float64, len(x))
		for i, xi := range x {
			y[i] = xi * xi
		}

		res, err := Fit(x, y, ModelLinear)
		require.NoError(t, err)
		require.False(t, res.BestFit)
		require.Contains(t, res.Recommendation, "polynomial")
	})

	t.Run("theil-sen is exempt", func(t *testing.T) {
		x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		y := make([]float64, len(x))
		for i, xi := range x {
			y[i] = xi * xi
		}

		res, err := Fit(x, y, ModelTheilSen)
		require.NoError(t, err)
		require.True(t, res.BestFit)
	})
}
