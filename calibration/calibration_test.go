package calibration

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/metrologiafacil-art/VaLiA-DKD-R-6-1/regression"
)

func testStandard() *Standard {
	return &Standard{
		Name: "REF-0042",
		Points: []StandardPoint{
			{Nominal: 0, Indication: 0, ReferenceValue: 0.00, Uncertainty: 0.02, CoverageFactor: 2, ConfidenceLevel: 95.45, Distribution: "normal"},
			{Nominal: 50, Indication: 50, ReferenceValue: 50.00, Uncertainty: 0.02, CoverageFactor: 2, ConfidenceLevel: 95.45, Distribution: "normal"},
			{Nominal: 100, Indication: 100, ReferenceValue: 100.00, Uncertainty: 0.02, CoverageFactor: 2, ConfidenceLevel: 95.45, Distribution: "normal"},
			{Nominal: 150, Indication: 150, ReferenceValue: 150.00, Uncertainty: 0.02, CoverageFactor: 2, ConfidenceLevel: 95.45, Distribution: "normal"},
			{Nominal: 200, Indication: 200, ReferenceValue: 200.00, Uncertainty: 0.02, CoverageFactor: 2, ConfidenceLevel: 95.45, Distribution: "normal"},
		},
	}
}

func TestStandardFitAndCache(t *testing.T) {
	std := testStandard()

	value, unc, err := std.Fit(regression.ModelLinear, regression.ModelLinear)
	require.NoError(t, err)
	require.NotNil(t, value)
	require.NotNil(t, unc)
	require.InDelta(t, 100.0, value.Estimator.Predict(100), 1e-9)
	require.InDelta(t, 0.02, unc.Estimator.Predict(100), 1e-9)

	// Unchanged points and models hit the cache.
	value2, unc2, err := std.Fit(regression.ModelLinear, regression.ModelLinear)
	require.NoError(t, err)
	require.Same(t, value, value2)
	require.Same(t, unc, unc2)

	// A different model selection misses.
	value3, _, err := std.Fit(regression.ModelTheilSen, regression.ModelLinear)
	require.NoError(t, err)
	require.NotSame(t, value, value3)

	// Editing a point invalidates by fingerprint.
	std.Points[2].ReferenceValue = 100.05
	value4, _, err := std.Fit(regression.ModelTheilSen, regression.ModelLinear)
	require.NoError(t, err)
	require.NotSame(t, value3, value4)
}

func TestStandardFitCacheKeyedByOptions(t *testing.T) {
	std := &Standard{
		Name: "REF-0042",
		Points: []StandardPoint{
			{Nominal: 0, Indication: 0, ReferenceValue: 0.00, Uncertainty: 0.02, CoverageFactor: 2},
			{Nominal: 40, Indication: 40, ReferenceValue: 40.01, Uncertainty: 0.02, CoverageFactor: 2},
			{Nominal: 80, Indication: 80, ReferenceValue: 80.02, Uncertainty: 0.02, CoverageFactor: 2},
			{Nominal: 120, Indication: 120, ReferenceValue: 120.02, Uncertainty: 0.02, CoverageFactor: 2},
			{Nominal: 160, Indication: 160, ReferenceValue: 160.04, Uncertainty: 0.02, CoverageFactor: 2},
			{Nominal: 200, Indication: 200, ReferenceValue: 200.05, Uncertainty: 0.02, CoverageFactor: 2},
		},
	}

	value, _, err := std.Fit(regression.ModelPiecewiseMixed, regression.ModelLinear,
		regression.WithSubModels(regression.ModelLinear, regression.ModelLinear))
	require.NoError(t, err)
	require.Len(t, value.SubModels, 2)
	require.Equal(t, regression.ModelLinear, value.SubModels[0].Type)

	// A changed sub-family selection is a model-selection change and must
	// miss the cache.
	value2, _, err := std.Fit(regression.ModelPiecewiseMixed, regression.ModelLinear,
		regression.WithSubModels(regression.ModelPolynomial2, regression.ModelPolynomial2))
	require.NoError(t, err)
	require.NotSame(t, value, value2)
	require.Len(t, value2.SubModels, 2)
	require.Equal(t, regression.ModelPolynomial2, value2.SubModels[0].Type)
	require.Equal(t, regression.ModelPolynomial2, value2.SubModels[1].Type)

	// The same selection repeated hits the cache again.
	value3, _, err := std.Fit(regression.ModelPiecewiseMixed, regression.ModelLinear,
		regression.WithSubModels(regression.ModelPolynomial2, regression.ModelPolynomial2))
	require.NoError(t, err)
	require.Same(t, value2, value3)
}

func TestStandardFitCacheKeyedByName(t *testing.T) {
	std := testStandard()
	value, _, err := std.Fit(regression.ModelLinear, regression.ModelLinear)
	require.NoError(t, err)

	std.Name = "REF-0043"
	value2, _, err := std.Fit(regression.ModelLinear, regression.ModelLinear)
	require.NoError(t, err)
	require.NotSame(t, value, value2)
}

func TestStandardFitErrors(t *testing.T) {
	var std Standard
	_, _, err := std.Fit(regression.ModelLinear, regression.ModelLinear)
	require.ErrorIs(t, err, ErrNoPoints)
}

func TestStandardInvalidate(t *testing.T) {
	std := testStandard()
	_, _, err := std.Fit(regression.ModelLinear, regression.ModelLinear)
	require.NoError(t, err)

	std.Invalidate()
	value, unc := std.Models()
	require.Nil(t, value)
	require.Nil(t, unc)
}

func TestSortedPoints(t *testing.T) {
	std := &Standard{Points: []StandardPoint{
		{Indication: 100},
		{Indication: 0},
		{Indication: 50},
	}}

	sorted := std.SortedPoints()
	require.Equal(t, []float64{0, 50, 100}, []float64{
		sorted[0].Indication, sorted[1].Indication, sorted[2].Indication,
	})
	// The receiver's order is untouched.
	require.Equal(t, 100.0, std.Points[0].Indication)
}

func TestComputeResults(t *testing.T) {
	std := testStandard()
	_, _, err := std.Fit(regression.ModelLinear, regression.ModelLinear)
	require.NoError(t, err)

	instrument := Instrument{Resolution: 0.01, Tolerance: 0.1, Unit: "mbar"}
	points := []Point{
		{Nominal: 50, StandardReading: 50.0, Runs: [4]float64{50.02, 50.01, 50.02, 50.01}, RunCount: 4},
		{Nominal: 100, StandardReading: 100.0, Runs: [4]float64{100.01, 100.00, 100.02, 100.01}, RunCount: 4},
	}

	results, err := ComputeResults(points, instrument, std, Environment{})
	require.NoError(t, err)
	require.Len(t, results, 2)

	r := results[0]
	require.Equal(t, 50.0, r.Nominal)
	require.InDelta(t, 50.0, r.Reading, 1e-12)
	require.InDelta(t, 50.0, r.Predicted, 1e-9)
	require.InDelta(t, 0.015, r.Error, 1e-9)
	require.InDelta(t, 0.01, r.Hysteresis, 1e-12)
	require.Greater(t, r.Repeatability, 0.0)

	// The reference contributor is the certificate U scaled back to k=1.
	require.InDelta(t, 0.01, r.Contributors.Reference, 1e-9)
	require.InDelta(t, instrument.Resolution/math.Sqrt(12), r.Contributors.Resolution, 1e-12)
	require.Zero(t, r.Contributors.Model)

	require.InDelta(t, 2.0*r.Combined, r.Expanded, 1e-12)
	require.Equal(t, 2.0, r.CoverageFactor)
	require.True(t, r.Compliant)
}

func TestComputeResultsCompliance(t *testing.T) {
	std := testStandard()
	_, _, err := std.Fit(regression.ModelLinear, regression.ModelLinear)
	require.NoError(t, err)

	points := []Point{{Nominal: 100, StandardReading: 100.0, Runs: [4]float64{100.5, 100.4, 100.5, 100.4}, RunCount: 4}}

	t.Run("outside the band", func(t *testing.T) {
		results, err := ComputeResults(points, Instrument{Resolution: 0.01, Tolerance: 0.1}, std, Environment{})
		require.NoError(t, err)
		require.False(t, results[0].Compliant)
	})

	t.Run("no tolerance specified", func(t *testing.T) {
		results, err := ComputeResults(points, Instrument{Resolution: 0.01}, std, Environment{})
		require.NoError(t, err)
		require.True(t, results[0].Compliant)
	})
}

func TestComputeResultsRequiresFit(t *testing.T) {
	std := testStandard()
	_, err := ComputeResults(nil, Instrument{}, std, Environment{})
	require.ErrorIs(t, err, ErrNotFitted)
}

func TestComputeResultsHeadCorrection(t *testing.T) {
	std := testStandard()
	_, _, err := std.Fit(regression.ModelLinear, regression.ModelLinear)
	require.NoError(t, err)

	env := Environment{
		TemperatureC: 20,
		Medium:       FluidWater,
		HeightDiffM:  0.5,
		LatitudeDeg:  48,
		AltitudeM:    300,
	}
	// Session unit mbar = hPa, 100 Pa each.
	instrument := Instrument{Resolution: 0.01, Unit: "mbar", PascalPerUnit: 100}

	points := []Point{{Nominal: 100, StandardReading: 100.0}}

	results, err := ComputeResults(points, instrument, std, env)
	require.NoError(t, err)

	wantHead := env.HeadCorrectionPa() / 100
	require.Greater(t, wantHead, 40.0)
	require.Less(t, wantHead, 55.0)
	require.InDelta(t, 100.0+wantHead, results[0].Reading, 1e-9)

	// Without a unit conversion the correction is not applied.
	results, err = ComputeResults(points, Instrument{Resolution: 0.01}, std, env)
	require.NoError(t, err)
	require.InDelta(t, 100.0, results[0].Reading, 1e-12)
}

func TestRunHysteresis(t *testing.T) {
	require.Zero(t, runHysteresis(nil))
	require.Zero(t, runHysteresis([]float64{1.0}))
	require.InDelta(t, 0.3, runHysteresis([]float64{1.0, 0.7}), 1e-12)
	require.InDelta(t, 0.4, runHysteresis([]float64{1.0, 0.9, 1.1, 0.7}), 1e-12)
}

func TestReferenceCoverage(t *testing.T) {
	t.Run("shared factor wins", func(t *testing.T) {
		std := &Standard{Points: []StandardPoint{
			{CoverageFactor: 2.57}, {CoverageFactor: 2.57},
		}}
		require.InDelta(t, 2.57, referenceCoverage(std), 1e-12)
	})

	t.Run("mixed factors fall back to 2", func(t *testing.T) {
		std := &Standard{Points: []StandardPoint{
			{CoverageFactor: 2.57}, {CoverageFactor: 2},
		}}
		require.Equal(t, 2.0, referenceCoverage(std))
	})

	t.Run("unset factors default to 2", func(t *testing.T) {
		std := &Standard{Points: []StandardPoint{{}, {}}}
		require.Equal(t, 2.0, referenceCoverage(std))
	})
}

func TestEnvironmentDensity(t *testing.T) {
	require.Zero(t, Environment{}.Density())

	water := Environment{TemperatureC: 20, Medium: FluidWater}
	require.InDelta(t, 998.207, water.Density(), 0.01)

	air := Environment{TemperatureC: 20, PressureHPa: 1013.25, HumidityPct: 50, Medium: FluidAir}
	d := air.Density()
	require.Greater(t, d, 1.15)
	require.Less(t, d, 1.25)

	require.Zero(t, Environment{Medium: FluidWater, HeightDiffM: 0}.HeadCorrectionPa())
}
