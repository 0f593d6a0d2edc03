package stattest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTCritical(t *testing.T) {
	tests := []struct {
		df   int
		want float64
	}{
		{1, 12.706},
		{2, 4.303},
		{3, 3.182},
		{4, 2.776},
		{5, 2.571},
		{7, 2.571}, // between breakpoints: previous breakpoint applies
		{10, 2.228},
		{15, 2.228},
		{20, 2.086},
		{59, 2.086},
		{60, 2.000},
		{61, 1.960},
		{1000, 1.960},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, TCritical(tt.df), "df=%d", tt.df)
	}

	// Degenerate degrees of freedom clamp to the first row.
	require.Equal(t, 12.706, TCritical(0))
	require.Equal(t, 12.706, TCritical(-3))
}

func TestFCritical(t *testing.T) {
	require.Equal(t, 161.45, FCritical(1, 1))
	require.Equal(t, 10.13, FCritical(3, 1))
	require.Equal(t, 4.96, FCritical(10, 1))
	require.Equal(t, 4.96, FCritical(14, 1))
	require.Equal(t, 4.00, FCritical(60, 1))
	require.Equal(t, 3.84, FCritical(200, 1))

	require.Equal(t, 19.00, FCritical(2, 2))
	require.Equal(t, 5.79, FCritical(5, 2))
	require.Equal(t, 3.00, FCritical(120, 2))

	// Untabulated regression degrees of freedom use the fixed default.
	require.Equal(t, 2.80, FCritical(10, 3))
	require.Equal(t, 2.80, FCritical(50, 5))
}

func TestCriticalValuesDecreaseWithDF(t *testing.T) {
	// More degrees of freedom never raise the critical value.
	for df := 2; df <= 100; df++ {
		require.LessOrEqual(t, TCritical(df), TCritical(df-1))
		require.LessOrEqual(t, FCritical(df, 1), FCritical(df-1, 1))
		require.LessOrEqual(t, FCritical(df, 2), FCritical(df-1, 2))
	}
}
