// Package matrix implements the small dense linear solver used by the
// polynomial regression fits.
package matrix

import (
	"errors"
	"math"
)

// ErrSingular is returned when the coefficient matrix has no unique solution.
var ErrSingular = errors.New("matrix: singular coefficient matrix")

// pivotEps is the magnitude below which a pivot is treated as zero.
const pivotEps = 1e-12

// Solve solves the linear system a·x = b by Gaussian elimination with
// partial pivoting. The inputs are not modified.
//
// Parameters:
//   - a: Square coefficient matrix (n rows of n values)
//   - b: Right-hand side vector of length n
//
// Returns:
//   - []float64: Solution vector x of length n
//   - error: ErrSingular if no pivot of sufficient magnitude exists,
//     or an error on malformed dimensions
func Solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)
	if n == 0 || len(b) != n {
		return nil, errors.New("matrix: dimension mismatch")
	}

	// Work on an augmented copy so the caller's data stays intact.
	aug := make([][]float64, n)
	for i, row := range a {
		if len(row) != n {
			return nil, errors.New("matrix: dimension mismatch")
		}
		aug[i] = make([]float64, n+1)
		copy(aug[i], row)
		aug[i][n] = b[i]
	}

	for col := 0; col < n; col++ {
		// Partial pivoting: swap in the row with the largest magnitude pivot.
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(aug[row][col]) > math.Abs(aug[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(aug[pivot][col]) < pivotEps {
			return nil, ErrSingular
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		for row := col + 1; row < n; row++ {
			factor := aug[row][col] / aug[col][col]
			if factor == 0 {
				continue
			}
			for k := col; k <= n; k++ {
				aug[row][k] -= factor * aug[col][k]
			}
		}
	}

	// Back substitution.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := aug[i][n]
		for k := i + 1; k < n; k++ {
			sum -= aug[i][k] * x[k]
		}
		x[i] = sum / aug[i][i]
	}

	return x, nil
}
