// Package physics provides the environmental reference formulas used by the
// calibration engine: fluid density, local gravity, and the hydrostatic head
// correction derived from them.
//
// All functions are pure and side-effect free. They implement the formulas
// recommended by the metrology community:
//
//   - Water density: Tanaka empirical polynomial (valid 0-40 °C)
//   - Air density: CIPM-2007 moist-air formula
//   - Local gravity: international gravity formula with free-air correction
//
// The head correction ΔP = ρ·g·h is a deterministic physical correction
// applied to raw readings before any statistical model is queried.
package physics
