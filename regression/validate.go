package regression

import (
	"fmt"
	"math"

	"github.com/metrologiafacil-art/VaLiA-DKD-R-6-1/stattest"
)

// nonParametricReason explains not-applicable steps under Theil-Sen.
const nonParametricReason = "non-parametric model"

// runValidation executes the extended hypothesis-test battery for a fit.
// Tests whose assumptions the model family cannot support are marked not
// applicable rather than failed.
func runValidation(modelType ModelType, x, y, fitted, resid []float64, anova *ANOVA) []stattest.StepResult {
	nonParametric := modelType == ModelTheilSen

	steps := make([]stattest.StepResult, 0, 7)

	if nonParametric {
		steps = append(steps, stattest.NotApplicableStep("correlation_significance", nonParametricReason))
	} else {
		steps = append(steps, stattest.PearsonSignificance(x, y))
	}

	steps = append(steps, stattest.SpearmanSignificance(x, y))

	if nonParametric || anova == nil {
		steps = append(steps, stattest.NotApplicableStep("f_test", nonParametricReason))
	} else {
		steps = append(steps, anovaStep(anova))
	}

	if nonParametric {
		steps = append(steps, stattest.NotApplicableStep("anderson_darling", nonParametricReason))
	} else {
		steps = append(steps, stattest.AndersonDarling(resid))
	}

	steps = append(steps, durbinWatsonStep(resid))

	if nonParametric {
		steps = append(steps, stattest.NotApplicableStep("residual_independence", nonParametricReason))
	} else {
		steps = append(steps, stattest.ResidualIndependence(fitted, resid))
	}

	if nonParametric {
		steps = append(steps, stattest.NotApplicableStep("mandel_linearity", nonParametricReason))
	} else {
		steps = append(steps, mandelTest(x, y))
	}

	return steps
}

// anovaStep turns the ANOVA decomposition into a validation step. The model
// passes when regression explains significantly more variance than residual
// noise.
func anovaStep(a *ANOVA) stattest.StepResult {
	crit := stattest.FCritical(a.DFResidual, a.DFRegression)

	return stattest.StepResult{
		Name:      "f_test",
		Statistic: a.F,
		Critical:  crit,
		Passed:    a.F > crit,
		Detail:    fmt.Sprintf("MSreg=%.4g, MSres=%.4g, df=(%d,%d)", a.MSRegression, a.MSResidual, a.DFRegression, a.DFResidual),
	}
}

// durbinWatsonStep checks the residual sequence for first-order
// autocorrelation. Values between 1 and 3 are accepted.
func durbinWatsonStep(resid []float64) stattest.StepResult {
	dw := stattest.DurbinWatson(resid)

	return stattest.StepResult{
		Name:      "durbin_watson",
		Statistic: dw,
		Critical:  2.0,
		Passed:    dw >= 1.0 && dw <= 3.0,
		Detail:    "accepted range [1, 3], ~2 means no autocorrelation",
	}
}

// mandelTest performs the ISO 8466-1 linearity test: it compares the
// residual sum of squares of a linear fit against a quadratic fit on the
// same data. Passing means the linear model is sufficient.
//
// The test is built from the fitting primitives directly; it never re-enters
// the validation orchestrator.
func mandelTest(x, y []float64) stattest.StepResult {
	const name = "mandel_linearity"
	n := len(x)
	if n < 4 {
		return stattest.NotApplicableStep(name, "needs at least 4 points")
	}

	linEst, _ := fitPrimitive(x, y, ModelLinear)
	quadEst, _ := fitPrimitive(x, y, ModelPolynomial2)

	sseLin := sumSquaredResiduals(linEst, x, y)
	sseQuad := sumSquaredResiduals(quadEst, x, y)

	msQuad := sseQuad / float64(n-3)
	var f float64
	switch {
	case msQuad > 0:
		f = (sseLin - sseQuad) / msQuad
		if f < 0 {
			f = 0
		}
	case sseLin > 0:
		// Quadratic fit is exact while the line is not.
		f = math.Inf(1)
	default:
		f = 0
	}

	crit := stattest.FCritical(n-3, 1)

	return stattest.StepResult{
		Name:      name,
		Statistic: f,
		Critical:  crit,
		Passed:    f <= crit,
		Detail:    fmt.Sprintf("SSE_lin=%.4g, SSE_quad=%.4g", sseLin, sseQuad),
	}
}

func sumSquaredResiduals(est Estimator, x, y []float64) float64 {
	var sse float64
	for i := range x {
		r := y[i] - est.Predict(x[i])
		sse += r * r
	}

	return sse
}
