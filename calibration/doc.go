// Package calibration holds the session data model and the per-point result
// calculator of the engine.
//
// A calibration session pairs a device under test with a reference standard.
// The standard carries its own calibration history as a set of
// StandardPoint records; fitting those records yields two regressions, one
// predicting the true value from an indication and one predicting the
// reference uncertainty. Both regressions are cached on the Standard and
// invalidated by fingerprint whenever the point set or model choice changes.
//
// ComputeResults walks the session's measured points, applies the
// hydrostatic head correction, predicts the true value, and combines the
// uncertainty contributors (reference, model interpolation, resolution,
// repeatability, hysteresis) by root sum of squares into an expanded
// uncertainty U with coverage factor k=2, which is then compared against
// the instrument's tolerance band.
package calibration
