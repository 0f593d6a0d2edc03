package regression

import "sort"

// fitTheilSen fits the robust non-parametric line: the slope is the median
// of all pairwise slopes, the intercept the median of y − slope·x. The
// estimator makes no normality assumption; its validity is governed by the
// Spearman rank significance test instead of the F-test.
func fitTheilSen(x, y []float64, cfg *fitConfig) *Result {
	n := len(x)
	if n < 3 {
		return invalidResult(ModelTheilSen, n, insufficientData(n))
	}

	slopes := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if x[j] == x[i] {
				continue
			}
			slopes = append(slopes, (y[j]-y[i])/(x[j]-x[i]))
		}
	}

	var slope float64
	if len(slopes) > 0 {
		slope = median(slopes)
	}
	// All x equal leaves slope 0 and intercept median(y): a defined
	// degenerate horizontal line rather than a failure.

	intercepts := make([]float64, n)
	for i := range x {
		intercepts[i] = y[i] - slope*x[i]
	}
	intercept := median(intercepts)

	est := NewLinearEstimator(intercept, slope, ModelTheilSen)
	res := buildResult(ModelTheilSen, est, x, y, paramCount(ModelTheilSen), cfg)
	res.primary = fitSpaceStats(x, residualsOf(est, x, y), 2, false, false)

	return res
}

// median returns the median of the values. The input is not modified.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2.0
}
