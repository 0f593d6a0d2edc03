// Package stattest implements the hypothesis tests and critical-value tables
// used to validate fitted calibration curves.
//
// Every test reports its outcome as a StepResult carrying the statistic, the
// published 95 % critical value it was compared against, and a pass flag.
// A failed test is data, not an error: callers record the failure and
// downgrade the model quality instead of aborting.
//
// The Student-t and F critical values come from fixed lookup tables with
// coarse degree-of-freedom breakpoints. The tables are intentionally not
// replaced by continuous quantile functions: the pass/fail boundaries of
// previously issued certificates depend on these exact values.
package stattest
