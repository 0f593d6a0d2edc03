package regression

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/metrologiafacil-art/VaLiA-DKD-R-6-1/internal/matrix"
	"github.com/metrologiafacil-art/VaLiA-DKD-R-6-1/internal/options"
	"github.com/metrologiafacil-art/VaLiA-DKD-R-6-1/stattest"
)

var (
	// ErrMismatchedLengths is returned when x and y differ in length.
	// This is a caller precondition violation, not a data condition.
	ErrMismatchedLengths = errors.New("regression: x and y lengths differ")
	// ErrUnknownModel is returned for unrecognized model identifiers.
	ErrUnknownModel = errors.New("regression: unknown model type")
)

// fitConfig holds the per-call fitting configuration.
type fitConfig struct {
	lowModel  ModelType
	highModel ModelType

	skipValidation bool
	skipBestFit    bool
}

// FitOption configures a single Fit call.
type FitOption = options.Option[*fitConfig]

// WithSubModels selects the segment families of a piecewise_mixed fit.
// Both families must be single-segment families (linear, polynomial, power,
// exponential or logarithmic).
func WithSubModels(low, high ModelType) FitOption {
	return options.New(func(cfg *fitConfig) error {
		if !low.isSegmentFamily() {
			return fmt.Errorf("regression: %s cannot serve as a piecewise segment", low)
		}
		if !high.isSegmentFamily() {
			return fmt.Errorf("regression: %s cannot serve as a piecewise segment", high)
		}
		cfg.lowModel = low
		cfg.highModel = high

		return nil
	})
}

// WithoutValidation skips the extended hypothesis-test battery. The
// governing significance test still runs, since validity depends on it.
func WithoutValidation() FitOption {
	return options.NoError(func(cfg *fitConfig) { cfg.skipValidation = true })
}

// WithoutBestFitCheck skips the AICc comparison against candidate families.
func WithoutBestFitCheck() FitOption {
	return options.NoError(func(cfg *fitConfig) { cfg.skipBestFit = true })
}

// OptionFingerprint packs the semantic content of fit options into a single
// discriminator value. Callers that cache results by input fingerprint must
// fold this in, so a changed sub-family selection or validation toggle
// invalidates the cache like any other model-selection change.
func OptionFingerprint(opts ...FitOption) (uint64, error) {
	cfg := &fitConfig{lowModel: ModelLinear, highModel: ModelLinear}
	if err := options.Apply(cfg, opts...); err != nil {
		return 0, err
	}

	key := uint64(cfg.lowModel) | uint64(cfg.highModel)<<8
	if cfg.skipValidation {
		key |= 1 << 16
	}
	if cfg.skipBestFit {
		key |= 1 << 17
	}

	return key, nil
}

// Fit fits the requested model family to the (x, y) dataset and returns a
// fully populated Result.
//
// Index pairs incompatible with the family's domain (non-positive x for
// logarithmic and power models, non-positive y for power and exponential
// models) are silently dropped before fitting. If fewer than 3 points
// survive, the returned Result carries Quality QualityInvalid and zero
// statistics; no error is returned for data conditions.
//
// Parameters:
//   - x: Independent values (instrument indications)
//   - y: Dependent values (reference values)
//   - modelType: Requested model family
//   - opts: Optional fitting configuration (sub-model families for
//     piecewise_mixed, validation toggles)
//
// Returns:
//   - *Result: Immutable fit outcome
//   - error: Only for malformed input shape, unknown model identifiers, or
//     invalid options
func Fit(x, y []float64, modelType ModelType, opts ...FitOption) (*Result, error) {
	if len(x) != len(y) {
		return nil, ErrMismatchedLengths
	}
	if !modelType.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownModel, int(modelType))
	}

	cfg := &fitConfig{lowModel: ModelLinear, highModel: ModelLinear}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	switch modelType {
	case ModelTheilSen:
		return fitTheilSen(x, y, cfg), nil
	case ModelPiecewiseLinear:
		return fitPiecewiseLinear(x, y, cfg), nil
	case ModelPiecewiseMixed:
		return fitPiecewiseMixed(x, y, cfg), nil
	default:
	}

	fx, fy := filterDomain(x, y, modelType)
	if len(fx) < 3 {
		return invalidResult(modelType, len(fx), insufficientData(len(fx))), nil
	}

	est, seg := fitPrimitive(fx, fy, modelType)
	res := buildResult(modelType, est, fx, fy, paramCount(modelType), cfg)
	res.primary = seg

	return res, nil
}

// filterDomain drops index pairs incompatible with the family's domain and
// returns filtered copies. Families without domain constraints still get
// copies so later sorting never mutates caller data.
func filterDomain(x, y []float64, modelType ModelType) ([]float64, []float64) {
	needXPos := modelType == ModelLogarithmic || modelType == ModelPower
	needYPos := modelType == ModelPower || modelType == ModelExponential

	fx := make([]float64, 0, len(x))
	fy := make([]float64, 0, len(y))
	for i := range x {
		if needXPos && x[i] <= 0 {
			continue
		}
		if needYPos && y[i] <= 0 {
			continue
		}
		fx = append(fx, x[i])
		fy = append(fy, y[i])
	}

	return fx, fy
}

// fitPrimitive fits the estimator of a single-segment family and returns it
// together with the fit-space statistics the prediction-interval formula
// needs. The inputs must already be domain filtered with len >= 3.
func fitPrimitive(x, y []float64, modelType ModelType) (Estimator, segmentStats) {
	switch modelType {
	case ModelPolynomial2, ModelPolynomial3:
		degree := 2
		if modelType == ModelPolynomial3 {
			degree = 3
		}
		coeffs := polyFit(x, y, degree)
		est := NewPolynomialEstimator(coeffs)

		return est, fitSpaceStats(x, residualsOf(est, x, y), degree+1, false, false)

	case ModelPower:
		lx := logSlice(x)
		ly := logSlice(y)
		b0, b1 := olsLine(lx, ly)
		est := NewPowerEstimator(math.Exp(b0), b1)

		return est, fitSpaceStats(lx, lineResiduals(lx, ly, b0, b1), 2, true, true)

	case ModelExponential:
		ly := logSlice(y)
		b0, b1 := olsLine(x, ly)
		est := NewExponentialEstimator(math.Exp(b0), b1)

		return est, fitSpaceStats(x, lineResiduals(x, ly, b0, b1), 2, false, true)

	case ModelLogarithmic:
		lx := logSlice(x)
		b0, b1 := olsLine(lx, y)
		est := NewLogarithmicEstimator(b0, b1)

		return est, fitSpaceStats(lx, lineResiduals(lx, y, b0, b1), 2, true, false)

	default: // ModelLinear and linear fallbacks
		b0, b1 := olsLine(x, y)
		est := NewLinearEstimator(b0, b1, ModelLinear)

		return est, fitSpaceStats(x, lineResiduals(x, y, b0, b1), 2, false, false)
	}
}

// olsLine fits y = b0 + b1·x by ordinary least squares. A zero-variance x
// yields the defined fallback b1 = 0, b0 = mean(y) instead of NaN.
func olsLine(x, y []float64) (b0, b1 float64) {
	meanX := stat.Mean(x, nil)
	meanY := stat.Mean(y, nil)

	var sxx, sxy float64
	for i := range x {
		dx := x[i] - meanX
		sxx += dx * dx
		sxy += dx * (y[i] - meanY)
	}
	if sxx == 0 {
		return meanY, 0
	}

	b1 = sxy / sxx
	b0 = meanY - b1*meanX

	return b0, b1
}

// polyFit solves the normal equations of a degree-d polynomial via Gaussian
// elimination. A singular system falls back to the OLS line (higher
// coefficients zero), keeping the result defined.
func polyFit(x, y []float64, degree int) []float64 {
	size := degree + 1

	// M[i][j] = Σ x^(i+j), rhs[i] = Σ x^i·y.
	powerSums := make([]float64, 2*degree+1)
	rhs := make([]float64, size)
	for i := range x {
		p := 1.0
		for e := 0; e <= 2*degree; e++ {
			powerSums[e] += p
			if e < size {
				rhs[e] += p * y[i]
			}
			p *= x[i]
		}
	}

	m := make([][]float64, size)
	for i := 0; i < size; i++ {
		m[i] = make([]float64, size)
		for j := 0; j < size; j++ {
			m[i][j] = powerSums[i+j]
		}
	}

	coeffs, err := matrix.Solve(m, rhs)
	if err != nil {
		b0, b1 := olsLine(x, y)
		coeffs = make([]float64, size)
		coeffs[0], coeffs[1] = b0, b1
	}

	return coeffs
}

// fitSpaceStats builds the per-segment statistics from fit-space regressors
// and residuals. k is the family's parameter count (without variance term).
func fitSpaceStats(xFit, resFit []float64, k int, logX, relative bool) segmentStats {
	n := len(xFit)
	meanX := stat.Mean(xFit, nil)

	var sxx, sse float64
	for i := range xFit {
		dx := xFit[i] - meanX
		sxx += dx * dx
		sse += resFit[i] * resFit[i]
	}

	df := n - k
	if df < 1 {
		df = 1
	}

	return segmentStats{
		n:        n,
		df:       df,
		meanX:    meanX,
		sxx:      sxx,
		sRes:     math.Sqrt(sse / float64(df)),
		logX:     logX,
		relative: relative,
	}
}

// buildResult computes every dataset-level statistic of a fit: R², residual
// standard deviation, Durbin-Watson, ANOVA, information criteria, the
// validation battery, the best-fit verdict, and the quality assessment.
// Callers attach segment statistics and sub-model descriptors afterwards.
func buildResult(modelType ModelType, est Estimator, x, y []float64, k int, cfg *fitConfig) *Result {
	n := len(x)
	fitted := make([]float64, n)
	resid := make([]float64, n)
	for i := range x {
		fitted[i] = est.Predict(x[i])
		resid[i] = y[i] - fitted[i]
	}

	var sse, sst float64
	meanY := stat.Mean(y, nil)
	for i := range y {
		sse += resid[i] * resid[i]
		dy := y[i] - meanY
		sst += dy * dy
	}

	df := n - k
	if df < 1 {
		df = 1
	}

	res := &Result{
		Type:           modelType,
		Estimator:      est,
		N:              n,
		RSquared:       rSquared(sse, sst),
		ResidualStdDev: math.Sqrt(sse / float64(df)),
		DurbinWatson:   stattest.DurbinWatson(resid),
	}

	if modelType != ModelTheilSen {
		res.ANOVA = anovaOf(sse, sst, k, n)
	}
	res.AIC, res.AICc, res.BIC = informationCriteria(sse, n, k+1)

	if !cfg.skipValidation {
		res.Validation = runValidation(modelType, x, y, fitted, resid, res.ANOVA)
	}
	res.ParametricValid = governingPassed(modelType, x, y, res.ANOVA)

	res.BestFit = true
	var bestFitNote string
	if !cfg.skipBestFit {
		res.BestFit, bestFitNote = bestFitCheck(modelType, x, y, res.AICc, res.RSquared)
	}

	res.Quality = assessQuality(res)
	res.Recommendation = buildRecommendation(res, bestFitNote)

	return res
}

// rSquared computes the coefficient of determination clamped to [0, 1].
// A zero total sum of squares (constant y) yields 0.
func rSquared(sse, sst float64) float64 {
	if sst == 0 {
		return 0
	}
	r2 := 1.0 - sse/sst
	if r2 < 0 {
		return 0
	}
	if r2 > 1 {
		return 1
	}

	return r2
}

// anovaOf decomposes the variance of a parametric fit.
func anovaOf(sse, sst float64, k, n int) *ANOVA {
	ssr := sst - sse
	if ssr < 0 {
		ssr = 0
	}
	dfReg := k - 1
	if dfReg < 1 {
		dfReg = 1
	}
	dfRes := n - k
	if dfRes < 1 {
		dfRes = 1
	}

	msReg := ssr / float64(dfReg)
	msRes := sse / float64(dfRes)

	var f float64
	switch {
	case msRes > 0:
		f = msReg / msRes
	case msReg > 0:
		// Perfect fit: regression variance with zero residual variance.
		f = math.Inf(1)
	default:
		f = 0
	}

	return &ANOVA{
		SSE:          sse,
		SSR:          ssr,
		SST:          sst,
		DFRegression: dfReg,
		DFResidual:   dfRes,
		MSRegression: msReg,
		MSResidual:   msRes,
		F:            f,
	}
}

// governingPassed evaluates the significance test governing validity:
// the ANOVA F-test for parametric families, Spearman rank significance for
// the non-parametric Theil-Sen family.
func governingPassed(modelType ModelType, x, y []float64, anova *ANOVA) bool {
	if modelType == ModelTheilSen {
		return stattest.SpearmanSignificance(x, y).Passed
	}
	if anova == nil {
		return false
	}

	return anova.F > stattest.FCritical(anova.DFResidual, anova.DFRegression)
}

// assessQuality derives the overall verdict from the governing test, the
// extended-validation failures, and the explanatory power of the fit.
func assessQuality(res *Result) Quality {
	if res.N < 3 {
		return QualityInvalid
	}

	failures := 0
	for _, step := range res.Validation {
		if !step.NotApplicable && !step.Passed {
			failures++
		}
	}

	switch {
	case !res.ParametricValid:
		return QualityPoor
	case failures == 0 && res.RSquared >= 0.995:
		return QualityExcellent
	case res.RSquared >= 0.98:
		return QualityGood
	default:
		return QualityPoor
	}
}

// buildRecommendation composes the human-readable summary of a fit.
func buildRecommendation(res *Result, bestFitNote string) string {
	var msg string
	switch res.Quality {
	case QualityExcellent:
		msg = "model describes the data excellently"
	case QualityGood:
		msg = "model describes the data adequately"
	case QualityPoor:
		if !res.ParametricValid {
			msg = "governing significance test failed; the model is statistically invalid"
		} else {
			msg = "model explains too little variance"
		}
	default:
		msg = insufficientData(res.N)
	}

	var failed []string
	for _, step := range res.Validation {
		if !step.NotApplicable && !step.Passed {
			failed = append(failed, step.Name)
		}
	}
	if len(failed) > 0 {
		msg += fmt.Sprintf("; failed tests: %s", joinNames(failed))
	}
	if bestFitNote != "" {
		msg += "; " + bestFitNote
	}

	return msg
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}

	return out
}

func insufficientData(n int) string {
	return fmt.Sprintf("insufficient data: %d usable points, at least 3 required", n)
}

// sortPairs returns copies of (x, y) sorted by ascending x, preserving the
// pairing. Piecewise fits require ordered data.
func sortPairs(x, y []float64) ([]float64, []float64) {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return x[idx[a]] < x[idx[b]] })

	sx := make([]float64, len(x))
	sy := make([]float64, len(y))
	for i, j := range idx {
		sx[i] = x[j]
		sy[i] = y[j]
	}

	return sx, sy
}

func logSlice(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = math.Log(x)
	}

	return out
}

func lineResiduals(x, y []float64, b0, b1 float64) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		out[i] = y[i] - (b0 + b1*x[i])
	}

	return out
}

func residualsOf(est Estimator, x, y []float64) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		out[i] = y[i] - est.Predict(x[i])
	}

	return out
}

// paramCount returns the parameter count of a family, excluding the
// variance term. Piecewise counts are composite: all segment parameters
// plus one split indicator.
func paramCount(modelType ModelType) int {
	switch modelType {
	case ModelPolynomial2:
		return 3
	case ModelPolynomial3:
		return 4
	case ModelPiecewiseLinear:
		return 5
	default:
		return 2
	}
}
