package regression

import (
	"fmt"
	"strings"

	"github.com/metrologiafacil-art/VaLiA-DKD-R-6-1/stattest"
)

// ModelType identifies a regression model family.
type ModelType int

const (
	// ModelLinear is the ordinary least squares line y = c0 + c1·x.
	ModelLinear ModelType = iota
	// ModelTheilSen is the robust non-parametric line estimated from the
	// median of all pairwise slopes.
	ModelTheilSen
	// ModelPolynomial2 is the quadratic polynomial y = c0 + c1·x + c2·x².
	ModelPolynomial2
	// ModelPolynomial3 is the cubic polynomial y = c0 + c1·x + c2·x² + c3·x³.
	ModelPolynomial3
	// ModelPower is y = c0·x^c1, fit by linear regression in log-log space.
	ModelPower
	// ModelExponential is y = c0·e^(c1·x), fit in log-y space.
	ModelExponential
	// ModelLogarithmic is y = c0 + c1·ln(x), fit in log-x space.
	ModelLogarithmic
	// ModelPiecewiseLinear joins two independent lines at the breakpoint
	// that minimizes the total residual sum of squares.
	ModelPiecewiseLinear
	// ModelPiecewiseMixed fits an independently chosen family to each half
	// of the data and blends predictions across an overlap band.
	ModelPiecewiseMixed
)

var modelTypeNames = map[ModelType]string{
	ModelLinear:          "linear_pearson",
	ModelTheilSen:        "theil_sen",
	ModelPolynomial2:     "polynomial_2",
	ModelPolynomial3:     "polynomial_3",
	ModelPower:           "power",
	ModelExponential:     "exponential",
	ModelLogarithmic:     "logarithmic",
	ModelPiecewiseLinear: "piecewise_linear",
	ModelPiecewiseMixed:  "piecewise_mixed",
}

var modelTypeFromString = func() map[string]ModelType {
	m := make(map[string]ModelType, len(modelTypeNames))
	for mt, name := range modelTypeNames {
		m[name] = mt
	}

	return m
}()

// String returns the canonical identifier of the model type.
func (mt ModelType) String() string {
	if name, ok := modelTypeNames[mt]; ok {
		return name
	}

	return "unknown"
}

// ModelTypeFromString resolves a model identifier to its ModelType.
// Returns ModelType(-1) for unknown identifiers.
func ModelTypeFromString(name string) ModelType {
	if mt, ok := modelTypeFromString[strings.ToLower(strings.TrimSpace(name))]; ok {
		return mt
	}

	return ModelType(-1)
}

// valid reports whether the model type is one of the known families.
func (mt ModelType) valid() bool {
	_, ok := modelTypeNames[mt]
	return ok
}

// isSegmentFamily reports whether the family may serve as a piecewise_mixed
// segment model.
func (mt ModelType) isSegmentFamily() bool {
	switch mt {
	case ModelLinear, ModelPolynomial2, ModelPolynomial3, ModelPower, ModelExponential, ModelLogarithmic:
		return true
	default:
		return false
	}
}

// Quality is the overall statistical verdict of a fit.
type Quality int

const (
	// QualityInvalid marks fits with fewer than 3 usable points.
	QualityInvalid Quality = iota
	// QualityPoor marks fits whose governing significance test failed or
	// whose explanatory power is weak.
	QualityPoor
	// QualityGood marks statistically valid fits with minor test failures.
	QualityGood
	// QualityExcellent marks fits passing every applicable test with high R².
	QualityExcellent
)

var qualityNames = map[Quality]string{
	QualityInvalid:   "INVALID",
	QualityPoor:      "POOR",
	QualityGood:      "GOOD",
	QualityExcellent: "EXCELLENT",
}

// String returns the verdict label.
func (q Quality) String() string {
	if name, ok := qualityNames[q]; ok {
		return name
	}

	return "UNKNOWN"
}

// ANOVA is the analysis-of-variance record of a fitted model.
type ANOVA struct {
	SSE          float64 // residual sum of squares
	SSR          float64 // regression sum of squares
	SST          float64 // total sum of squares
	DFRegression int
	DFResidual   int
	MSRegression float64
	MSResidual   float64
	F            float64
}

// SubModel describes one segment of a piecewise fit.
type SubModel struct {
	// Type is the segment's model family.
	Type ModelType
	// Coefficients are the segment's fitted coefficients.
	Coefficients []float64
	// Limit is the upper x bound of the segment's own data range.
	Limit float64
}

// segmentStats carries the per-segment quantities needed by the
// prediction-interval formula. For transformed families the values live in
// fit space (e.g. ln x for logarithmic models).
type segmentStats struct {
	n        int
	df       int     // residual degrees of freedom used for the t quantile
	meanX    float64 // mean regressor in fit space
	sxx      float64 // sum of squared regressor deviations in fit space
	sRes     float64 // residual standard deviation in fit space
	logX     bool    // regressor is ln(x)
	relative bool    // residuals are relative (log-y space)
}

// Result is the immutable outcome of fitting one model family to a dataset.
//
// A Result is fully populated even for degenerate inputs: instead of
// raising, the engine records the condition in Quality and Recommendation
// and zeroes the statistics.
type Result struct {
	// Type is the requested model family.
	Type ModelType
	// Estimator predicts y for a query x.
	Estimator Estimator
	// N is the number of points that survived domain filtering and were fit.
	N int
	// RSquared is the coefficient of determination, clamped to [0, 1].
	RSquared float64
	// ResidualStdDev is the standard deviation of the residuals.
	ResidualStdDev float64
	// AIC, AICc and BIC are the information criteria of the fit.
	AIC, AICc, BIC float64
	// DurbinWatson is the residual autocorrelation statistic (~2 = none).
	DurbinWatson float64
	// ANOVA holds the F-test decomposition, nil for invalid fits.
	ANOVA *ANOVA
	// Validation lists the extended hypothesis-test outcomes.
	Validation []stattest.StepResult
	// Quality is the overall verdict.
	Quality Quality
	// Recommendation is a human-readable summary of quality and model choice.
	Recommendation string
	// ParametricValid reports whether the governing significance test passed
	// (the F-test for parametric families, Spearman for Theil-Sen).
	ParametricValid bool
	// BestFit reports whether the chosen family is within the AICc tolerance
	// of the best candidate family. Always true for exempt families.
	BestFit bool
	// SubModels describes the segments of piecewise fits, nil otherwise.
	SubModels []SubModel

	primary   segmentStats
	low, high *segmentStats
	bandStart float64
	bandEnd   float64
}

// String returns a compact summary of the result.
func (r *Result) String() string {
	return fmt.Sprintf("Result{Type: %s, N: %d, R²: %.4f, Quality: %s}",
		r.Type, r.N, r.RSquared, r.Quality)
}

// Equation returns the human-readable equation of the fitted model, or an
// empty string for invalid results.
func (r *Result) Equation() string {
	if r.Estimator == nil {
		return ""
	}

	return r.Estimator.Equation()
}

// invalidResult builds the sentinel result for datasets with fewer than 3
// usable points. All statistics are zero and the estimator predicts zero.
func invalidResult(modelType ModelType, n int, reason string) *Result {
	return &Result{
		Type:           modelType,
		Estimator:      NewLinearEstimator(0, 0, modelType),
		N:              n,
		Quality:        QualityInvalid,
		Recommendation: reason,
	}
}
