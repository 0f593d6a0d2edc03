package regression

import (
	"math"

	"github.com/metrologiafacil-art/VaLiA-DKD-R-6-1/stattest"
)

// UncertaintyAt returns the interpolation (prediction-interval) uncertainty
// of the fitted model at the query point x:
//
//	u(x) = t_crit(df) · s_res · √(1 + 1/n + (x − x̄)²/Sxx)
//
// For power and exponential families the regression lives in log-y space,
// so the interval width is relative and is scaled by the magnitude of the
// predicted value. Piecewise fits use the querying segment's own
// statistics; inside the overlap band the two segment uncertainties are
// blended with the same α as the value prediction, keeping both value and
// uncertainty continuous across the band.
//
// Invalid results and degenerate statistics yield 0, never NaN. The result
// is always non-negative.
func UncertaintyAt(x float64, res *Result) float64 {
	if res == nil || res.Estimator == nil || res.Quality == QualityInvalid {
		return 0
	}

	if split, ok := res.Estimator.(*SplitEstimator); ok && res.low != nil && res.high != nil {
		switch {
		case x <= res.bandStart:
			return segmentUncertainty(x, res.low, split.Low)
		case x >= res.bandEnd:
			return segmentUncertainty(x, res.high, split.High)
		default:
			alpha := split.blend(x)
			uLow := segmentUncertainty(x, res.low, split.Low)
			uHigh := segmentUncertainty(x, res.high, split.High)

			return (1.0-alpha)*uLow + alpha*uHigh
		}
	}

	return segmentUncertainty(x, &res.primary, res.Estimator)
}

// segmentUncertainty evaluates the prediction-interval formula with one
// segment's fit-space statistics.
func segmentUncertainty(x float64, st *segmentStats, est Estimator) float64 {
	if st == nil || st.n < 3 || st.sRes == 0 {
		return 0
	}

	xFit := x
	if st.logX {
		if x <= 0 {
			// Outside the logarithmic domain: no leverage term is defined,
			// fall back to the in-sample center.
			xFit = st.meanX
		} else {
			xFit = math.Log(x)
		}
	}

	leverage := 0.0
	if st.sxx > 0 {
		d := xFit - st.meanX
		leverage = d * d / st.sxx
	}

	u := stattest.TCritical(st.df) * st.sRes * math.Sqrt(1.0+1.0/float64(st.n)+leverage)
	if st.relative {
		u *= math.Abs(est.Predict(x))
	}
	if u < 0 || math.IsNaN(u) {
		return 0
	}

	return u
}
