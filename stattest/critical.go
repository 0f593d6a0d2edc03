package stattest

// tTable holds two-tailed 95 % Student-t critical values at coarse
// degree-of-freedom breakpoints. TCritical steps down to the largest
// breakpoint not exceeding df, so values between breakpoints are resolved
// conservatively upward.
var tTable = []struct {
	df   int
	crit float64
}{
	{1, 12.706},
	{2, 4.303},
	{3, 3.182},
	{4, 2.776},
	{5, 2.571},
	{10, 2.228},
	{20, 2.086},
	{60, 2.000},
}

// tCriticalInf is the limiting two-tailed 95 % value (standard normal).
const tCriticalInf = 1.960

// TCritical returns the two-tailed 95 % Student-t critical value for the
// given residual degrees of freedom. Degrees of freedom below 1 are clamped
// to 1.
func TCritical(df int) float64 {
	if df < 1 {
		df = 1
	}
	crit := tCriticalInf
	for _, entry := range tTable {
		if df >= entry.df {
			crit = entry.crit
			continue
		}
		break
	}
	if df > tTable[len(tTable)-1].df {
		return tCriticalInf
	}

	return crit
}

// fTable1 and fTable2 hold α=0.05 F critical values for one and two
// regression degrees of freedom, keyed by residual degrees of freedom.
var fTable1 = []struct {
	dfRes int
	crit  float64
}{
	{1, 161.45},
	{2, 18.51},
	{3, 10.13},
	{4, 7.71},
	{5, 6.61},
	{6, 5.99},
	{7, 5.59},
	{8, 5.32},
	{9, 5.12},
	{10, 4.96},
	{15, 4.54},
	{20, 4.35},
	{30, 4.17},
	{60, 4.00},
}

var fTable2 = []struct {
	dfRes int
	crit  float64
}{
	{1, 199.50},
	{2, 19.00},
	{3, 9.55},
	{4, 6.94},
	{5, 5.79},
	{6, 5.14},
	{7, 4.74},
	{8, 4.46},
	{9, 4.26},
	{10, 4.10},
	{15, 3.68},
	{20, 3.49},
	{30, 3.32},
	{60, 3.15},
}

const (
	fCriticalInf1 = 3.84
	fCriticalInf2 = 3.00
	// fCriticalDefault covers regression degrees of freedom above 2, where
	// the table is not tabulated.
	fCriticalDefault = 2.80
)

// FCritical returns the α=0.05 F critical value for the given residual and
// regression degrees of freedom. Only dfReg 1 and 2 are tabulated; higher
// regression degrees of freedom fall back to a fixed default.
func FCritical(dfRes, dfReg int) float64 {
	if dfRes < 1 {
		dfRes = 1
	}

	var table []struct {
		dfRes int
		crit  float64
	}
	var limit float64
	switch dfReg {
	case 1:
		table, limit = fTable1, fCriticalInf1
	case 2:
		table, limit = fTable2, fCriticalInf2
	default:
		return fCriticalDefault
	}

	crit := limit
	for _, entry := range table {
		if dfRes >= entry.dfRes {
			crit = entry.crit
			continue
		}
		break
	}
	if dfRes > table[len(table)-1].dfRes {
		return limit
	}

	return crit
}
