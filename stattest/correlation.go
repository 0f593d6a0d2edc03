package stattest

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// CorrelationT converts a correlation coefficient into its t statistic:
// t = |r|·√(n−2)/√(1−r²). A |r| of 1 (or more, from rounding) maps to +Inf.
func CorrelationT(r float64, n int) float64 {
	if n < 3 {
		return 0
	}
	abs := math.Abs(r)
	if abs >= 1 {
		return math.Inf(1)
	}

	return abs * math.Sqrt(float64(n-2)) / math.Sqrt(1-r*r)
}

// PearsonSignificance tests whether the Pearson correlation between x and y
// differs significantly from zero at 95 % confidence. The pass condition is
// a significant correlation.
func PearsonSignificance(x, y []float64) StepResult {
	const name = "correlation_significance"
	n := len(x)
	if n < 3 || len(y) != n {
		return NotApplicableStep(name, "fewer than 3 points")
	}

	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		r = 0
	}
	tStat := CorrelationT(r, n)
	crit := TCritical(n - 2)

	return StepResult{
		Name:      name,
		Statistic: tStat,
		Critical:  crit,
		Passed:    tStat > crit,
		Detail:    fmt.Sprintf("r=%.5f, n=%d", r, n),
	}
}

// ResidualIndependence tests the Pearson correlation between fitted values
// and residuals. The pass condition is inverted relative to
// PearsonSignificance: the model passes when no significant relationship
// remains (t below the critical value).
func ResidualIndependence(fitted, residuals []float64) StepResult {
	const name = "residual_independence"
	n := len(fitted)
	if n < 3 || len(residuals) != n {
		return NotApplicableStep(name, "fewer than 3 points")
	}

	r := stat.Correlation(fitted, residuals, nil)
	if math.IsNaN(r) {
		// Zero-variance residuals carry no dependence signal.
		r = 0
	}
	tStat := CorrelationT(r, n)
	crit := TCritical(n - 2)

	return StepResult{
		Name:      name,
		Statistic: tStat,
		Critical:  crit,
		Passed:    tStat < crit,
		Detail:    fmt.Sprintf("r=%.5f between fitted values and residuals", r),
	}
}

// SpearmanRho computes Spearman's rank correlation coefficient with
// tie-averaged ranks: ρ = 1 − 6·Σd²/(n(n²−1)).
func SpearmanRho(x, y []float64) float64 {
	n := len(x)
	if n < 2 || len(y) != n {
		return 0
	}

	rx := rank(x)
	ry := rank(y)

	var sumD2 float64
	for i := range rx {
		d := rx[i] - ry[i]
		sumD2 += d * d
	}

	nf := float64(n)

	return 1.0 - 6.0*sumD2/(nf*(nf*nf-1.0))
}

// SpearmanSignificance tests whether the Spearman rank correlation between
// x and y is significant at 95 % confidence, using the same t transform as
// the Pearson test. It serves as the governing validity test for
// non-parametric fits.
func SpearmanSignificance(x, y []float64) StepResult {
	const name = "spearman_rank"
	n := len(x)
	if n < 3 || len(y) != n {
		return NotApplicableStep(name, "fewer than 3 points")
	}

	rho := SpearmanRho(x, y)
	tStat := CorrelationT(rho, n)
	crit := TCritical(n - 2)

	return StepResult{
		Name:      name,
		Statistic: tStat,
		Critical:  crit,
		Passed:    tStat > crit,
		Detail:    fmt.Sprintf("rho=%.5f, n=%d", rho, n),
	}
}

// rank returns tie-averaged ranks (1-based) of the values.
func rank(values []float64) []float64 {
	n := len(values)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && values[idx[j+1]] == values[idx[i]] {
			j++
		}
		// Ties share the average of their rank positions.
		avg := float64(i+j)/2.0 + 1.0
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}

	return ranks
}
