package physics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWaterDensity(t *testing.T) {
	tests := []struct {
		name  string
		tempC float64
		want  float64
		delta float64
	}{
		{name: "reference 20C", tempC: 20, want: 998.207, delta: 0.01},
		{name: "maximum density near 4C", tempC: 3.98, want: 999.975, delta: 0.001},
		{name: "freezing point", tempC: 0, want: 999.84, delta: 0.01},
		{name: "upper range 40C", tempC: 40, want: 992.2, delta: 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, WaterDensity(tt.tempC), tt.delta)
		})
	}
}

func TestWaterDensityMonotonicAboveMaximum(t *testing.T) {
	// Density must strictly decrease with temperature above ~4 °C.
	prev := WaterDensity(5)
	for temp := 6.0; temp <= 40; temp++ {
		cur := WaterDensity(temp)
		require.Less(t, cur, prev, "density should decrease at %.0f °C", temp)
		prev = cur
	}
}

func TestAirDensityCIPM(t *testing.T) {
	t.Run("reference conditions", func(t *testing.T) {
		rho := AirDensityCIPM(20, 1013, 50, 400)
		require.Greater(t, rho, 1.19)
		require.Less(t, rho, 1.21)
	})

	t.Run("CIPM reference point", func(t *testing.T) {
		rho := AirDensityCIPM(20, 1013.25, 50, 400)
		require.InDelta(t, 1.1992, rho, 0.001)
	})

	t.Run("denser when cold", func(t *testing.T) {
		require.Greater(t, AirDensityCIPM(0, 1013.25, 50, 400), AirDensityCIPM(30, 1013.25, 50, 400))
	})

	t.Run("denser at higher pressure", func(t *testing.T) {
		require.Greater(t, AirDensityCIPM(20, 1050, 50, 400), AirDensityCIPM(20, 950, 50, 400))
	})

	t.Run("humid air is lighter", func(t *testing.T) {
		require.Greater(t, AirDensityCIPM(20, 1013.25, 0, 400), AirDensityCIPM(20, 1013.25, 100, 400))
	})
}

func TestLocalGravity(t *testing.T) {
	t.Run("equator at sea level", func(t *testing.T) {
		require.InDelta(t, 9.7803, LocalGravity(0, 0), 0.0001)
	})

	t.Run("poles exceed equator", func(t *testing.T) {
		require.InDelta(t, 9.8322, LocalGravity(90, 0), 0.001)
		require.Greater(t, LocalGravity(90, 0), LocalGravity(0, 0))
	})

	t.Run("free-air correction", func(t *testing.T) {
		sea := LocalGravity(45, 0)
		high := LocalGravity(45, 1000)
		require.InDelta(t, 3.086e-3, sea-high, 1e-9)
	})
}

func TestHeadCorrection(t *testing.T) {
	// 1 m water column at standard conditions is roughly 9.79 kPa.
	dp := HeadCorrection(WaterDensity(20), LocalGravity(45, 0), 1.0)
	require.InDelta(t, 9790, dp, 20)

	// Sign follows the height difference.
	require.Negative(t, HeadCorrection(1.2, 9.81, -0.5))
	require.Zero(t, HeadCorrection(1.2, 9.81, 0))
}
