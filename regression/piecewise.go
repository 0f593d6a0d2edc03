package regression

import "math"

// minSegmentPoints is the smallest segment a split fit may produce.
const minSegmentPoints = 3

// fitPiecewiseLinear searches every breakpoint leaving at least three points
// on each side, fits independent lines to the two halves, and keeps the
// first breakpoint achieving the minimum total residual sum of squares.
// Below six usable points it falls back to a single line.
func fitPiecewiseLinear(x, y []float64, cfg *fitConfig) *Result {
	sx, sy := sortPairs(x, y)
	n := len(sx)
	if n < 3 {
		return invalidResult(ModelPiecewiseLinear, n, insufficientData(n))
	}
	if n < 2*minSegmentPoints {
		return singleLineFallback(ModelPiecewiseLinear, sx, sy, cfg)
	}

	bestK := -1
	bestSSE := math.Inf(1)
	for k := minSegmentPoints; k <= n-minSegmentPoints; k++ {
		lb0, lb1 := olsLine(sx[:k], sy[:k])
		hb0, hb1 := olsLine(sx[k:], sy[k:])
		sse := lineSSE(sx[:k], sy[:k], lb0, lb1) + lineSSE(sx[k:], sy[k:], hb0, hb1)
		// Strict < keeps the first breakpoint achieving the minimum.
		if sse < bestSSE {
			bestSSE = sse
			bestK = k
		}
	}

	lowX, lowY := sx[:bestK], sy[:bestK]
	highX, highY := sx[bestK:], sy[bestK:]
	boundary := (sx[bestK-1] + sx[bestK]) / 2.0

	lowEst, lowSeg := fitPrimitive(lowX, lowY, ModelLinear)
	highEst, highSeg := fitPrimitive(highX, highY, ModelLinear)

	split := NewSplitEstimator(lowEst, highEst, boundary, boundary, ModelPiecewiseLinear)
	res := buildResult(ModelPiecewiseLinear, split, sx, sy, paramCount(ModelPiecewiseLinear), cfg)
	res.low = &lowSeg
	res.high = &highSeg
	res.bandStart = boundary
	res.bandEnd = boundary
	res.SubModels = []SubModel{
		{Type: ModelLinear, Coefficients: lowEst.Coefficients(), Limit: boundary},
		{Type: ModelLinear, Coefficients: highEst.Coefficients(), Limit: sx[n-1]},
	}

	return res
}

// fitPiecewiseMixed fixes the breakpoint near the midpoint, fits the
// configured family to each half, and blends predictions linearly across
// the overlap band spanning from the last point uniquely in the low
// segment to the first point uniquely in the high segment.
func fitPiecewiseMixed(x, y []float64, cfg *fitConfig) *Result {
	sx, sy := sortPairs(x, y)
	n := len(sx)
	if n < 3 {
		return invalidResult(ModelPiecewiseMixed, n, insufficientData(n))
	}
	if n < 2*minSegmentPoints {
		return singleLineFallback(ModelPiecewiseMixed, sx, sy, cfg)
	}

	mid := n / 2
	// The halves share the midpoint so the band has interior support.
	lowX, lowY := sx[:mid+1], sy[:mid+1]
	highX, highY := sx[mid:], sy[mid:]
	bandStart := sx[mid-1]
	bandEnd := sx[mid+1]

	lowEst, lowSeg, lowType := fitSegment(lowX, lowY, cfg.lowModel)
	highEst, highSeg, highType := fitSegment(highX, highY, cfg.highModel)
	if lowEst == nil || highEst == nil {
		return invalidResult(ModelPiecewiseMixed, n, "segment emptied by domain filtering")
	}

	split := NewSplitEstimator(lowEst, highEst, bandStart, bandEnd, ModelPiecewiseMixed)
	k := paramCount(lowType) + paramCount(highType) + 1
	res := buildResult(ModelPiecewiseMixed, split, sx, sy, k, cfg)
	res.low = lowSeg
	res.high = highSeg
	res.bandStart = bandStart
	res.bandEnd = bandEnd
	res.SubModels = []SubModel{
		{Type: lowType, Coefficients: lowEst.Coefficients(), Limit: sx[mid]},
		{Type: highType, Coefficients: highEst.Coefficients(), Limit: sx[n-1]},
	}

	return res
}

// fitSegment fits one piecewise segment with its own domain filtering.
// When filtering starves the requested family, the segment falls back to a
// line (which has no domain constraints); a nil estimator means even that
// was impossible.
func fitSegment(x, y []float64, family ModelType) (Estimator, *segmentStats, ModelType) {
	fx, fy := filterDomain(x, y, family)
	if len(fx) < minSegmentPoints {
		family = ModelLinear
		fx, fy = filterDomain(x, y, family)
		if len(fx) < minSegmentPoints {
			return nil, nil, family
		}
	}

	est, seg := fitPrimitive(fx, fy, family)

	return est, &seg, family
}

// singleLineFallback fits one OLS line when a split fit lacks the six
// points two segments require. The result keeps the requested piecewise
// type with a single sub-model descriptor.
func singleLineFallback(modelType ModelType, sx, sy []float64, cfg *fitConfig) *Result {
	est, seg := fitPrimitive(sx, sy, ModelLinear)
	res := buildResult(modelType, est, sx, sy, paramCount(ModelLinear), cfg)
	res.primary = seg
	res.SubModels = []SubModel{
		{Type: ModelLinear, Coefficients: est.Coefficients(), Limit: sx[len(sx)-1]},
	}
	res.Recommendation = "fewer than 6 points for a split fit, fitted a single line; " + res.Recommendation

	return res
}

func lineSSE(x, y []float64, b0, b1 float64) float64 {
	var sse float64
	for i := range x {
		r := y[i] - (b0 + b1*x[i])
		sse += r * r
	}

	return sse
}
