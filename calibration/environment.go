package calibration

import (
	"github.com/metrologiafacil-art/VaLiA-DKD-R-6-1/physics"
)

// Fluid identifies the pressure-transmitting medium of a session.
type Fluid int

const (
	// FluidNone disables the hydrostatic head correction.
	FluidNone Fluid = iota
	// FluidWater uses the Tanaka water density polynomial.
	FluidWater
	// FluidAir uses the CIPM-2007 moist air density formula.
	FluidAir
)

// Environment carries the ambient conditions of a calibration session as
// entered by the workflow. It is the sole bridge into the physics package.
type Environment struct {
	// TemperatureC is the ambient temperature in degrees Celsius.
	TemperatureC float64
	// PressureHPa is the barometric pressure in hectopascal.
	PressureHPa float64
	// HumidityPct is the relative humidity in percent.
	HumidityPct float64
	// CO2PPM is the carbon dioxide mole fraction in ppm. Zero means the
	// CIPM reference value of 400 ppm.
	CO2PPM float64
	// LatitudeDeg is the laboratory latitude in degrees.
	LatitudeDeg float64
	// AltitudeM is the laboratory altitude in meters.
	AltitudeM float64
	// Medium is the pressure-transmitting fluid.
	Medium Fluid
	// HeightDiffM is the height difference between the reference level of
	// the standard and the device under test, in meters. Positive when
	// the device sits below the standard.
	HeightDiffM float64
}

// Density returns the density of the session medium in kg/m³, or 0 when no
// medium is configured.
func (e Environment) Density() float64 {
	switch e.Medium {
	case FluidWater:
		return physics.WaterDensity(e.TemperatureC)
	case FluidAir:
		co2 := e.CO2PPM
		if co2 == 0 {
			co2 = 400
		}

		return physics.AirDensityCIPM(e.TemperatureC, e.PressureHPa, e.HumidityPct, co2)
	default:
		return 0
	}
}

// Gravity returns the local gravitational acceleration in m/s².
func (e Environment) Gravity() float64 {
	return physics.LocalGravity(e.LatitudeDeg, e.AltitudeM)
}

// HeadCorrectionPa returns the hydrostatic correction ΔP = ρ·g·h in pascal.
// It is zero when no medium is configured or the height difference is zero.
func (e Environment) HeadCorrectionPa() float64 {
	if e.Medium == FluidNone || e.HeightDiffM == 0 {
		return 0
	}

	return physics.HeadCorrection(e.Density(), e.Gravity(), e.HeightDiffM)
}
