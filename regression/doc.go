// Package regression implements the curve-fitting engine of the calibration
// core: it fits a requested model family to calibration readings, validates
// the fit with a battery of hypothesis tests, ranks it against candidate
// families by information criteria, and propagates prediction-interval
// uncertainties from the fitted model.
//
// # Model Families
//
// Eight families are supported, identified by ModelType:
//
//   - linear_pearson: ordinary least squares line
//   - theil_sen: robust non-parametric line (median of pairwise slopes)
//   - polynomial_2, polynomial_3: OLS polynomials via normal equations
//   - power: y = c0·x^c1, fit in log-log space
//   - exponential: y = c0·e^(c1·x), fit in log-y space
//   - logarithmic: y = c0 + c1·ln(x), fit in log-x space
//   - piecewise_linear: two lines joined at the breakpoint minimizing SSE
//   - piecewise_mixed: two freely chosen families blended across an
//     overlap band around a fixed midpoint breakpoint
//
// # Basic Usage
//
//	res, err := regression.Fit(x, y, regression.ModelLinear)
//	if err != nil {
//	    return err
//	}
//	if res.Quality == regression.QualityInvalid {
//	    // fewer than 3 usable points; res carries zero statistics
//	}
//	yHat := res.Estimator.Predict(42.0)
//	u := regression.UncertaintyAt(42.0, res)
//
// # Failure Policy
//
// The engine never panics on degenerate data and never returns NaN from its
// public surface. Insufficient data (n < 3 after domain filtering) yields a
// sentinel result with Quality QualityInvalid; zero-variance inputs produce
// a defined zero-slope fallback; failed hypothesis tests are recorded in
// Result.Validation and downgrade Result.Quality. The only returned errors
// are malformed input shape and unknown model identifiers.
package regression
