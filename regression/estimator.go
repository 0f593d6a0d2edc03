package regression

import (
	"fmt"
	"math"
	"strings"
)

// Estimator predicts dependent values from a fitted model.
//
// Implementations are immutable value holders: fitting produces a new
// estimator, it is never mutated in place.
type Estimator interface {
	// Predict returns the model value at x. Queries outside the model's
	// mathematical domain return a defined boundary value, never NaN.
	Predict(x float64) float64
	// Type returns the model family.
	Type() ModelType
	// Coefficients returns the fitted coefficients. Semantics depend on the
	// family; see the estimator's documentation.
	Coefficients() []float64
	// Equation returns a human-readable equation string.
	Equation() string
}

// LinearEstimator implements y = c0 + c1·x. It also backs the Theil-Sen
// family and the linear fallbacks of degenerate fits, distinguished by the
// model type it carries.
type LinearEstimator struct {
	intercept, slope float64
	modelType        ModelType
}

// NewLinearEstimator creates a line estimator tagged with the given family
// (ModelLinear or ModelTheilSen).
func NewLinearEstimator(intercept, slope float64, modelType ModelType) *LinearEstimator {
	return &LinearEstimator{intercept: intercept, slope: slope, modelType: modelType}
}

// Predict returns c0 + c1·x.
func (l *LinearEstimator) Predict(x float64) float64 { return l.intercept + l.slope*x }

// Type returns the family the line was fit as.
func (l *LinearEstimator) Type() ModelType { return l.modelType }

// Coefficients returns [intercept, slope].
func (l *LinearEstimator) Coefficients() []float64 { return []float64{l.intercept, l.slope} }

// Equation renders y = c1·x + c0 with scientific-notation coefficients.
func (l *LinearEstimator) Equation() string {
	return fmt.Sprintf("y = %.6e·x + %.6e", l.slope, l.intercept)
}

// PolynomialEstimator implements y = c0 + c1·x + ... + cd·x^d.
type PolynomialEstimator struct {
	coeffs []float64 // ascending powers
}

// NewPolynomialEstimator creates a polynomial estimator from coefficients in
// ascending power order.
func NewPolynomialEstimator(coeffs []float64) *PolynomialEstimator {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)

	return &PolynomialEstimator{coeffs: c}
}

// Predict evaluates the polynomial by Horner's method.
func (p *PolynomialEstimator) Predict(x float64) float64 {
	var y float64
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		y = y*x + p.coeffs[i]
	}

	return y
}

// Type returns ModelPolynomial2 or ModelPolynomial3 depending on degree.
func (p *PolynomialEstimator) Type() ModelType {
	if len(p.coeffs) > 3 {
		return ModelPolynomial3
	}

	return ModelPolynomial2
}

// Coefficients returns the coefficients in ascending power order.
func (p *PolynomialEstimator) Coefficients() []float64 {
	c := make([]float64, len(p.coeffs))
	copy(c, p.coeffs)

	return c
}

// Equation renders the polynomial with scientific-notation coefficients.
func (p *PolynomialEstimator) Equation() string {
	var sb strings.Builder
	sb.WriteString("y =")
	for i, c := range p.coeffs {
		if i > 0 {
			sb.WriteString(" +")
		}
		switch i {
		case 0:
			fmt.Fprintf(&sb, " %.6e", c)
		case 1:
			fmt.Fprintf(&sb, " %.6e·x", c)
		default:
			fmt.Fprintf(&sb, " %.6e·x^%d", c, i)
		}
	}

	return sb.String()
}

// PowerEstimator implements y = c0·x^c1.
type PowerEstimator struct {
	c0, c1 float64
}

// NewPowerEstimator creates a power-law estimator.
func NewPowerEstimator(c0, c1 float64) *PowerEstimator {
	return &PowerEstimator{c0: c0, c1: c1}
}

// Predict returns c0·x^c1. Non-positive x lies outside the fitted domain
// and maps to 0.
func (p *PowerEstimator) Predict(x float64) float64 {
	if x <= 0 {
		return 0
	}

	return p.c0 * math.Pow(x, p.c1)
}

// Type returns ModelPower.
func (p *PowerEstimator) Type() ModelType { return ModelPower }

// Coefficients returns [c0, c1] for y = c0·x^c1.
func (p *PowerEstimator) Coefficients() []float64 { return []float64{p.c0, p.c1} }

// Equation renders y = c0·x^c1.
func (p *PowerEstimator) Equation() string {
	return fmt.Sprintf("y = %.6e·x^%.6e", p.c0, p.c1)
}

// ExponentialEstimator implements y = c0·e^(c1·x).
type ExponentialEstimator struct {
	c0, c1 float64
}

// NewExponentialEstimator creates an exponential estimator.
func NewExponentialEstimator(c0, c1 float64) *ExponentialEstimator {
	return &ExponentialEstimator{c0: c0, c1: c1}
}

// Predict returns c0·e^(c1·x).
func (e *ExponentialEstimator) Predict(x float64) float64 {
	return e.c0 * math.Exp(e.c1*x)
}

// Type returns ModelExponential.
func (e *ExponentialEstimator) Type() ModelType { return ModelExponential }

// Coefficients returns [c0, c1] for y = c0·e^(c1·x).
func (e *ExponentialEstimator) Coefficients() []float64 { return []float64{e.c0, e.c1} }

// Equation renders y = c0·e^(c1·x).
func (e *ExponentialEstimator) Equation() string {
	return fmt.Sprintf("y = %.6e·e^(%.6e·x)", e.c0, e.c1)
}

// LogarithmicEstimator implements y = c0 + c1·ln(x).
type LogarithmicEstimator struct {
	c0, c1 float64
}

// NewLogarithmicEstimator creates a logarithmic estimator.
func NewLogarithmicEstimator(c0, c1 float64) *LogarithmicEstimator {
	return &LogarithmicEstimator{c0: c0, c1: c1}
}

// Predict returns c0 + c1·ln(x). Non-positive x lies outside the fitted
// domain; the logarithmic term is dropped there.
func (l *LogarithmicEstimator) Predict(x float64) float64 {
	if x <= 0 {
		return l.c0
	}

	return l.c0 + l.c1*math.Log(x)
}

// Type returns ModelLogarithmic.
func (l *LogarithmicEstimator) Type() ModelType { return ModelLogarithmic }

// Coefficients returns [c0, c1] for y = c0 + c1·ln(x).
func (l *LogarithmicEstimator) Coefficients() []float64 { return []float64{l.c0, l.c1} }

// Equation renders y = c0 + c1·ln(x).
func (l *LogarithmicEstimator) Equation() string {
	return fmt.Sprintf("y = %.6e + %.6e·ln(x)", l.c0, l.c1)
}

// SplitEstimator blends two segment estimators across an overlap band.
//
// Below BandStart the low segment predicts alone, above BandEnd the high
// segment does; inside the band predictions are blended linearly:
// y = (1−α)·y_low + α·y_high with α = (x − BandStart)/(BandEnd − BandStart).
// A zero-width band (BandStart == BandEnd) degenerates to a hard split at
// that boundary, which is how piecewise_linear fits are represented.
type SplitEstimator struct {
	// Low and High are the segment estimators.
	Low, High Estimator
	// BandStart and BandEnd bound the overlap band.
	BandStart, BandEnd float64
	parent             ModelType
}

// NewSplitEstimator creates a split estimator for the given parent family
// (ModelPiecewiseLinear or ModelPiecewiseMixed).
func NewSplitEstimator(low, high Estimator, bandStart, bandEnd float64, parent ModelType) *SplitEstimator {
	if bandEnd < bandStart {
		bandStart, bandEnd = bandEnd, bandStart
	}

	return &SplitEstimator{Low: low, High: high, BandStart: bandStart, BandEnd: bandEnd, parent: parent}
}

// Predict blends the segment predictions; outside the band it returns the
// nearer segment's pure prediction, guaranteeing continuity at both edges.
func (s *SplitEstimator) Predict(x float64) float64 {
	switch {
	case x <= s.BandStart:
		return s.Low.Predict(x)
	case x >= s.BandEnd:
		return s.High.Predict(x)
	default:
		alpha := s.blend(x)
		return (1.0-alpha)*s.Low.Predict(x) + alpha*s.High.Predict(x)
	}
}

// blend returns the band interpolation factor α for x strictly inside the band.
func (s *SplitEstimator) blend(x float64) float64 {
	width := s.BandEnd - s.BandStart
	if width <= 0 {
		return 0
	}

	return (x - s.BandStart) / width
}

// Type returns the parent piecewise family.
func (s *SplitEstimator) Type() ModelType { return s.parent }

// Coefficients returns the low segment coefficients followed by the high
// segment coefficients. Use the Result's SubModels for tagged access.
func (s *SplitEstimator) Coefficients() []float64 {
	out := append([]float64{}, s.Low.Coefficients()...)

	return append(out, s.High.Coefficients()...)
}

// Equation renders the identity of each segment family and the band bounds.
func (s *SplitEstimator) Equation() string {
	return fmt.Sprintf("piecewise[%s | %s] band [%.6e, %.6e]",
		s.Low.Type(), s.High.Type(), s.BandStart, s.BandEnd)
}
