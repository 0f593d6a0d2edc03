package stattest

import "fmt"

// StepResult is the outcome of a single validation test.
type StepResult struct {
	// Name identifies the test (e.g. "anderson_darling").
	Name string
	// Statistic is the computed test statistic.
	Statistic float64
	// Critical is the 95 % critical value the statistic was compared against.
	Critical float64
	// Passed reports whether the test passed.
	Passed bool
	// NotApplicable marks tests whose assumptions the active model cannot
	// support (e.g. normality tests under a non-parametric fit). When set,
	// Passed carries no meaning.
	NotApplicable bool
	// Detail is a human-readable explanation of the outcome.
	Detail string
}

// String returns a compact single-line summary of the step.
func (r StepResult) String() string {
	if r.NotApplicable {
		return fmt.Sprintf("%s: not applicable (%s)", r.Name, r.Detail)
	}
	verdict := "failed"
	if r.Passed {
		verdict = "passed"
	}

	return fmt.Sprintf("%s: %s (statistic=%.4g, critical=%.4g)", r.Name, verdict, r.Statistic, r.Critical)
}

// NotApplicableStep builds a StepResult marked not applicable.
func NotApplicableStep(name, reason string) StepResult {
	return StepResult{Name: name, NotApplicable: true, Detail: reason}
}
