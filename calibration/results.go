package calibration

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/metrologiafacil-art/VaLiA-DKD-R-6-1/regression"
)

// ErrNotFitted is returned by ComputeResults when the standard's
// regressions have not been fitted yet.
var ErrNotFitted = errors.New("calibration: standard models not fitted")

// sqrt12 converts a rectangular full width to a standard uncertainty.
var sqrt12 = math.Sqrt(12.0)

// ComputeResults evaluates every measured point of a session against the
// standard's fitted regressions and returns one Result per point.
//
// The hydrostatic head correction ΔP = ρ·g·h is applied additively to the
// raw standard reading before the value model is queried; it is a
// deterministic physical correction, not an uncertainty contributor. The
// expanded uncertainty combines the reference, model, resolution,
// repeatability and hysteresis contributors by root sum of squares and
// applies the coverage factor k=2.
//
// Parameters:
//   - points: the session's measured points.
//   - instrument: resolution, tolerance and unit conversion of the device
//     under test.
//   - standard: the reference standard; Fit must have been called.
//   - env: ambient conditions feeding the head correction.
//
// Returns:
//   - []Result: one entry per input point, in input order.
//   - error: ErrNotFitted when the standard carries no cached models.
func ComputeResults(points []Point, instrument Instrument, standard *Standard, env Environment) ([]Result, error) {
	valueReg, uncReg := standard.Models()
	if valueReg == nil || uncReg == nil {
		return nil, ErrNotFitted
	}

	headUnit := 0.0
	if instrument.PascalPerUnit > 0 {
		headUnit = env.HeadCorrectionPa() / instrument.PascalPerUnit
	}

	refK := referenceCoverage(standard)

	results := make([]Result, 0, len(points))
	for _, p := range points {
		res := computePoint(p, instrument, valueReg, uncReg, headUnit, refK)
		results = append(results, res)
	}

	return results, nil
}

// referenceCoverage picks the coverage factor of the standard's
// certificate: the shared stated factor when all records agree, otherwise
// the conventional k=2.
func referenceCoverage(standard *Standard) float64 {
	if len(standard.Points) == 0 {
		return 2.0
	}

	k := standard.Points[0].coverage()
	for _, sp := range standard.Points[1:] {
		if sp.coverage() != k {
			return 2.0
		}
	}

	return k
}

// computePoint evaluates one measured point.
func computePoint(p Point, instrument Instrument, valueReg, uncReg *regression.Result, headUnit, refK float64) Result {
	corrected := p.StandardReading + headUnit
	predicted := valueReg.Estimator.Predict(corrected)

	runs := p.runValues()
	indication := corrected
	if len(runs) > 0 {
		indication = stat.Mean(runs, nil)
	}

	hysteresis := runHysteresis(runs)
	repeatability := 0.0
	if len(runs) >= 2 {
		repeatability = stat.StdDev(runs, nil)
	}

	contrib := Contributors{
		Reference:     uncReg.Estimator.Predict(corrected) / refK,
		Model:         regression.UncertaintyAt(corrected, valueReg),
		Resolution:    instrument.Resolution / sqrt12,
		Repeatability: repeatability,
		Hysteresis:    hysteresis / sqrt12,
	}
	if contrib.Reference < 0 {
		// An uncertainty regression extrapolated below zero has no
		// physical meaning at this point.
		contrib.Reference = 0
	}

	combined := rss(contrib.Reference, contrib.Model, contrib.Resolution, contrib.Repeatability, contrib.Hysteresis)
	expanded := 2.0 * combined
	err := indication - predicted

	compliant := true
	if instrument.Tolerance > 0 {
		compliant = math.Abs(err)+expanded <= instrument.Tolerance
	}

	return Result{
		Nominal:        p.Nominal,
		Reading:        corrected,
		Predicted:      predicted,
		Error:          err,
		Hysteresis:     hysteresis,
		Repeatability:  repeatability,
		Contributors:   contrib,
		Combined:       combined,
		Expanded:       expanded,
		CoverageFactor: 2.0,
		Compliant:      compliant,
	}
}

// runHysteresis returns the largest |up − down| difference across the
// measurement cycles. Runs are ordered up1, down1, up2, down2.
func runHysteresis(runs []float64) float64 {
	maxDiff := 0.0
	for i := 0; i+1 < len(runs); i += 2 {
		if d := math.Abs(runs[i] - runs[i+1]); d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff
}

// rss combines standard uncertainties by root sum of squares.
func rss(terms ...float64) float64 {
	sum := 0.0
	for _, t := range terms {
		sum += t * t
	}

	return math.Sqrt(sum)
}
