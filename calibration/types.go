package calibration

// Point is a single measured point of a calibration session: the nominal
// target value, the reference standard's reading, and up to four repeated
// run readings of the device under test, ordered up1, down1, up2, down2.
//
// Points are produced by the entry workflow and treated as read-only here.
type Point struct {
	// Nominal is the target value of the point in the session unit.
	Nominal float64
	// StandardReading is the reference standard's raw reading.
	StandardReading float64
	// Runs holds the repeated readings of the device under test, ordered
	// up1, down1, up2, down2. Fewer than four runs is allowed; trailing
	// entries are ignored beyond RunCount.
	Runs [4]float64
	// RunCount is the number of valid entries in Runs, 0 to 4.
	RunCount int
}

// runValues returns the valid run readings as a slice.
func (p Point) runValues() []float64 {
	n := p.RunCount
	if n < 0 {
		n = 0
	}
	if n > len(p.Runs) {
		n = len(p.Runs)
	}

	return p.Runs[:n]
}

// StandardPoint is one record of a reference standard's own calibration
// certificate.
type StandardPoint struct {
	// Nominal is the certificate's nominal value.
	Nominal float64
	// Indication is the standard's displayed value at this point.
	Indication float64
	// ReferenceValue is the conventional true value assigned by the
	// higher-level laboratory.
	ReferenceValue float64
	// Uncertainty is the expanded uncertainty of ReferenceValue.
	Uncertainty float64
	// CoverageFactor is the coverage factor the certificate states for
	// Uncertainty. Zero means the conventional k=2.
	CoverageFactor float64
	// ConfidenceLevel is the stated confidence level, e.g. 95.45.
	ConfidenceLevel float64
	// Distribution is the stated distribution shape, e.g. "normal".
	Distribution string
}

// coverage returns the certificate coverage factor, defaulting to 2.
func (sp StandardPoint) coverage() float64 {
	if sp.CoverageFactor > 0 {
		return sp.CoverageFactor
	}

	return 2.0
}

// Instrument describes the device under test.
type Instrument struct {
	// Resolution is the smallest indication step of the device, in the
	// session unit.
	Resolution float64
	// Tolerance is the symmetric acceptance band around zero error, in
	// the session unit. Zero or negative means no tolerance is specified
	// and the compliance verdict is vacuously true.
	Tolerance float64
	// Unit is the display unit of the session, e.g. "bar" or "hPa".
	Unit string
	// PascalPerUnit converts one session unit to pascal. It is required
	// for the hydrostatic head correction; zero disables the correction.
	PascalPerUnit float64
}

// Contributors is the uncertainty budget of a single test point. Every
// entry is a standard uncertainty (k=1) in the session unit.
type Contributors struct {
	// Reference is the reference standard's uncertainty at the point,
	// scaled down to k=1 from the uncertainty regression's prediction.
	Reference float64
	// Model is the interpolation uncertainty of the value regression.
	Model float64
	// Resolution is the rectangular resolution term, resolution/√12.
	Resolution float64
	// Repeatability is the sample standard deviation of the run readings.
	Repeatability float64
	// Hysteresis is the rectangular term of the up/down spread.
	Hysteresis float64
}

// Result is the computed outcome of one calibration point.
type Result struct {
	// Nominal is the target value of the point.
	Nominal float64
	// Reading is the head-corrected standard reading the model was
	// queried with.
	Reading float64
	// Predicted is the true value predicted by the value regression.
	Predicted float64
	// Error is Reading minus Predicted, the mean indication error.
	Error float64
	// Hysteresis is the largest up/down difference across the cycles.
	Hysteresis float64
	// Repeatability is the sample standard deviation of the runs.
	Repeatability float64
	// Contributors is the uncertainty budget behind Expanded.
	Contributors Contributors
	// Combined is the root sum of squares of the contributors, k=1.
	Combined float64
	// Expanded is the expanded uncertainty U = k·Combined.
	Expanded float64
	// CoverageFactor is the k applied to Combined, fixed at 2.
	CoverageFactor float64
	// Compliant reports whether |Error| + Expanded fits inside the
	// instrument's tolerance band.
	Compliant bool
}
