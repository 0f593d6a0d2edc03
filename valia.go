// Package valia implements the numeric core of a DKD-R 6-1 style
// calibration laboratory: regression over reference-standard certificates,
// statistical validation of the fit, model selection by information
// criteria, and uncertainty propagation down to per-point calibration
// results.
//
// # Core Features
//
//   - Nine regression families: linear OLS, Theil-Sen, quadratic and cubic
//     polynomials, power, exponential, logarithmic, and two split fits
//   - Extended validation battery (correlation, Spearman, Anderson-Darling,
//     ANOVA F, Durbin-Watson, residual independence, Mandel linearity)
//   - Model selection by AIC/AICc/BIC with a best-fit verdict
//   - Prediction-interval uncertainty with per-segment blending
//   - Environmental physics: water/air density, local gravity, hydrostatic
//     head correction
//   - Compressed session snapshots for the persistence layers
//
// # Basic Usage
//
// Fitting a reference standard and computing session results:
//
//	import "github.com/metrologiafacil-art/VaLiA-DKD-R-6-1"
//
//	std := &calibration.Standard{Name: "REF-0042", Points: certificate}
//	value, unc, err := std.Fit(valia.ModelLinear, valia.ModelLinear)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(value.Quality, value.Recommendation)
//
//	results, err := valia.ComputeResults(points, instrument, std, env)
//	for _, r := range results {
//	    fmt.Printf("%.2f: error=%.4f U=%.4f compliant=%v\n",
//	        r.Nominal, r.Error, r.Expanded, r.Compliant)
//	}
//
// Direct regression over two series:
//
//	res, err := valia.Fit(x, y, valia.ModelPolynomial2)
//	yHat := valia.Predict(120.0, res)
//	u := valia.UncertaintyAt(120.0, res)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the
// regression and calibration packages, simplifying the most common use
// cases. For fine-grained control (fit options, split sub-families,
// validation details) use those packages directly; physics and archive are
// standalone.
package valia

import (
	"github.com/metrologiafacil-art/VaLiA-DKD-R-6-1/calibration"
	"github.com/metrologiafacil-art/VaLiA-DKD-R-6-1/regression"
)

// Model family identifiers re-exported for callers that only need the
// facade.
const (
	ModelLinear          = regression.ModelLinear
	ModelTheilSen        = regression.ModelTheilSen
	ModelPolynomial2     = regression.ModelPolynomial2
	ModelPolynomial3     = regression.ModelPolynomial3
	ModelPower           = regression.ModelPower
	ModelExponential     = regression.ModelExponential
	ModelLogarithmic     = regression.ModelLogarithmic
	ModelPiecewiseLinear = regression.ModelPiecewiseLinear
	ModelPiecewiseMixed  = regression.ModelPiecewiseMixed
)

// Fit runs a regression of y on x with the given model family.
//
// The returned result is always fully populated: degenerate inputs yield
// an INVALID quality verdict rather than an error. The only error
// conditions are precondition violations (mismatched series lengths, an
// unknown model family, or invalid fit options).
//
// Parameters:
//   - x: independent values, typically reference-standard indications.
//   - y: dependent values, same length as x.
//   - modelType: one of the Model* identifiers.
//   - opts: optional fit configuration (see regression.FitOption).
//
// Returns:
//   - *regression.Result: the complete fit, validation and selection record.
//   - error: precondition violation.
//
// Example:
//
//	res, err := valia.Fit(indications, references, valia.ModelLinear)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Quality == regression.QualityInvalid {
//	    // fewer than 3 usable points
//	}
func Fit(x, y []float64, modelType regression.ModelType, opts ...regression.FitOption) (*regression.Result, error) {
	return regression.Fit(x, y, modelType, opts...)
}

// Predict evaluates the fitted model at x. Invalid or nil results predict 0.
func Predict(x float64, res *regression.Result) float64 {
	if res == nil || res.Estimator == nil {
		return 0
	}

	return res.Estimator.Predict(x)
}

// UncertaintyAt returns the prediction-interval uncertainty of the fitted
// model at x. See regression.UncertaintyAt for the formula and the
// per-family behavior.
func UncertaintyAt(x float64, res *regression.Result) float64 {
	return regression.UncertaintyAt(x, res)
}

// ComputeResults evaluates a session's measured points against a fitted
// reference standard. See calibration.ComputeResults for the uncertainty
// budget composition.
func ComputeResults(points []calibration.Point, instrument calibration.Instrument, standard *calibration.Standard, env calibration.Environment) ([]calibration.Result, error) {
	return calibration.ComputeResults(points, instrument, standard, env)
}
