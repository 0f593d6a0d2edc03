package stattest

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// adCritical is the 5 % critical value for the small-sample corrected
// Anderson-Darling normality statistic.
const adCritical = 0.752

// cdfEps keeps the log arguments away from 0 and 1 for extreme residuals.
const cdfEps = 1e-12

// AndersonDarling tests the residuals for normality using the A² statistic
// on sorted standardized values, with the small-sample correction
// A²* = A²·(1 + 0.75/n + 2.25/n²).
func AndersonDarling(residuals []float64) StepResult {
	const name = "anderson_darling"
	n := len(residuals)
	if n < 3 {
		return NotApplicableStep(name, "fewer than 3 residuals")
	}

	mean := stat.Mean(residuals, nil)
	sd := stat.StdDev(residuals, nil)
	if sd == 0 || math.IsNaN(sd) {
		// All residuals identical: nothing contradicts normality.
		return StepResult{
			Name:     name,
			Critical: adCritical,
			Passed:   true,
			Detail:   "zero residual variance",
		}
	}

	z := make([]float64, n)
	for i, r := range residuals {
		z[i] = (r - mean) / sd
	}
	sort.Float64s(z)

	normal := distuv.Normal{Mu: 0, Sigma: 1}
	a2 := -float64(n)
	for i := 0; i < n; i++ {
		lo := clampProb(normal.CDF(z[i]))
		hi := clampProb(normal.CDF(z[n-1-i]))
		a2 -= float64(2*i+1) / float64(n) * (math.Log(lo) + math.Log(1.0-hi))
	}

	nf := float64(n)
	corrected := a2 * (1.0 + 0.75/nf + 2.25/(nf*nf))

	return StepResult{
		Name:      name,
		Statistic: corrected,
		Critical:  adCritical,
		Passed:    corrected <= adCritical,
		Detail:    fmt.Sprintf("A²=%.4f, A²*=%.4f, n=%d", a2, corrected, n),
	}
}

func clampProb(p float64) float64 {
	if p < cdfEps {
		return cdfEps
	}
	if p > 1.0-cdfEps {
		return 1.0 - cdfEps
	}

	return p
}

// DurbinWatson computes the Durbin-Watson statistic of the residual
// sequence. Values near 2 indicate no first-order autocorrelation.
// A zero residual sum of squares yields exactly 2 (no evidence either way).
func DurbinWatson(residuals []float64) float64 {
	if len(residuals) < 2 {
		return 2.0
	}

	var num, den float64
	for i, r := range residuals {
		den += r * r
		if i > 0 {
			d := r - residuals[i-1]
			num += d * d
		}
	}
	if den == 0 {
		return 2.0
	}

	return num / den
}
