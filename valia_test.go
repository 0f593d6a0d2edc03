package valia

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/metrologiafacil-art/VaLiA-DKD-R-6-1/calibration"
	"github.com/metrologiafacil-art/VaLiA-DKD-R-6-1/regression"
)

func TestFitAndPredict(t *testing.T) {
	x := []float64{0, 50, 100, 150, 200}
	y := []float64{0, 50.01, 100.02, 150.03, 200.05}

	res, err := Fit(x, y, ModelLinear)
	require.NoError(t, err)
	require.Equal(t, regression.ModelLinear, res.Type)
	require.Greater(t, res.RSquared, 0.999)

	require.InDelta(t, 100.02, Predict(100, res), 0.05)
	require.GreaterOrEqual(t, UncertaintyAt(100, res), 0.0)
}

func TestPredictDegenerate(t *testing.T) {
	require.Zero(t, Predict(1, nil))

	res, err := Fit([]float64{1}, []float64{1}, ModelLinear)
	require.NoError(t, err)
	require.Equal(t, regression.QualityInvalid, res.Quality)
}

func TestComputeResultsFacade(t *testing.T) {
	std := &calibration.Standard{
		Name: "REF-0042",
		Points: []calibration.StandardPoint{
			{Nominal: 0, Indication: 0, ReferenceValue: 0, Uncertainty: 0.02, CoverageFactor: 2},
			{Nominal: 100, Indication: 100, ReferenceValue: 100, Uncertainty: 0.02, CoverageFactor: 2},
			{Nominal: 200, Indication: 200, ReferenceValue: 200, Uncertainty: 0.02, CoverageFactor: 2},
		},
	}
	_, _, err := std.Fit(ModelLinear, ModelLinear)
	require.NoError(t, err)

	points := []calibration.Point{
		{Nominal: 100, StandardReading: 100, Runs: [4]float64{100.01, 100.0, 100.01, 100.0}, RunCount: 4},
	}
	results, err := ComputeResults(points, calibration.Instrument{Resolution: 0.01, Tolerance: 0.2}, std, calibration.Environment{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.True(t, results[0].Compliant)
}
