package regression

import (
	"fmt"
	"math"
)

const (
	// sseFloor guards the information-criteria logarithm against
	// non-positive residual sums of squares.
	sseFloor = 1e-15
	// aiccBestDelta is the AICc tolerance within which the chosen model is
	// still considered best-fit.
	aiccBestDelta = 4.0
	// bestFitMinR2 is the minimum explanatory power required for a
	// best-fit verdict regardless of the AICc gap.
	bestFitMinR2 = 0.95
)

// informationCriteria computes AIC, AICc and BIC for a fit with the given
// residual sum of squares, sample size, and parameter count k (which
// already includes the variance term).
//
// AICc degenerates to +Inf when the small-sample correction denominator
// n−k−1 is not positive, so over-parameterized fits always rank last.
func informationCriteria(sse float64, n, k int) (aic, aicc, bic float64) {
	if sse < sseFloor {
		sse = sseFloor
	}
	nf := float64(n)
	kf := float64(k)

	aic = nf*math.Log(sse/nf) + 2.0*kf
	bic = nf*math.Log(sse/nf) + kf*math.Log(nf)

	if n-k-1 > 0 {
		aicc = aic + 2.0*kf*(kf+1.0)/float64(n-k-1)
	} else {
		aicc = math.Inf(1)
	}

	return aic, aicc, bic
}

// bestFitCandidates is the reference set of families the chosen model is
// compared against.
var bestFitCandidates = []ModelType{
	ModelLinear,
	ModelPolynomial2,
	ModelPolynomial3,
	ModelPower,
	ModelExponential,
	ModelLogarithmic,
}

// bestFitCheck compares the chosen model's AICc against candidate families
// fit to the same data. The chosen model is best-fit when its AICc is
// within aiccBestDelta of the minimum and its R² exceeds bestFitMinR2.
//
// Theil-Sen and piecewise_mixed fits are exempt: they have no directly
// comparable AICc baseline. Candidates whose domain filtering would drop
// points are skipped for the same reason.
func bestFitCheck(modelType ModelType, x, y []float64, chosenAICc, r2 float64) (bool, string) {
	if modelType == ModelTheilSen || modelType == ModelPiecewiseMixed {
		return true, ""
	}

	minAICc := chosenAICc
	minType := modelType
	for _, cand := range bestFitCandidates {
		if cand == modelType {
			continue
		}
		fx, fy := filterDomain(x, y, cand)
		if len(fx) != len(x) || len(fx) < 3 {
			continue
		}
		est, _ := fitPrimitive(fx, fy, cand)
		sse := sumSquaredResiduals(est, fx, fy)
		_, aicc, _ := informationCriteria(sse, len(fx), paramCount(cand)+1)
		if aicc < minAICc {
			minAICc = aicc
			minType = cand
		}
	}

	delta := chosenAICc - minAICc
	if math.IsInf(chosenAICc, 1) && math.IsInf(minAICc, 1) {
		delta = 0
	}

	if delta <= aiccBestDelta && r2 > bestFitMinR2 {
		return true, ""
	}
	if minType != modelType {
		return false, fmt.Sprintf("%s fits better (ΔAICc=%.1f)", minType, delta)
	}

	return false, fmt.Sprintf("no candidate fits well (R²=%.3f)", r2)
}
