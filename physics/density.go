package physics

import "math"

// Tanaka formula constants for the density of air-free water (kg/m³).
const (
	tanakaA1 = -3.983035  // °C
	tanakaA2 = 301.797    // °C
	tanakaA3 = 522528.9   // °C³
	tanakaA4 = 69.34881   // °C
	tanakaA5 = 999.974950 // kg/m³, maximum density
)

// WaterDensity returns the density of air-free water in kg/m³ at the given
// temperature in °C, using the Tanaka empirical formula.
//
// The formula is valid between 0 °C and 40 °C; outside that range the
// polynomial is still evaluated but has no metrological backing.
func WaterDensity(tempC float64) float64 {
	d := tempC + tanakaA1
	return tanakaA5 * (1.0 - d*d*(tempC+tanakaA2)/(tanakaA3*(tempC+tanakaA4)))
}

// CIPM-2007 constants.
const (
	molarGasConstant = 8.314472   // J/(mol·K)
	molarMassVapor   = 18.01528e-3 // kg/mol

	// Saturation vapor pressure exponential polynomial (T in K, result Pa).
	svpA = 1.2378847e-5  // 1/K²
	svpB = -1.9121316e-2 // 1/K
	svpC = 33.93711047
	svpD = -6.3431645e3 // K

	// Enhancement factor (t in °C, p in Pa).
	enhAlpha = 1.00062
	enhBeta  = 3.14e-8 // 1/Pa
	enhGamma = 5.6e-7  // 1/K²

	// Compressibility factor series.
	zA0 = 1.58123e-6  // K/Pa
	zA1 = -2.9331e-8  // 1/Pa
	zA2 = 1.1043e-10  // 1/(K·Pa)
	zB0 = 5.707e-6    // K/Pa
	zB1 = -2.051e-8   // 1/Pa
	zC0 = 1.9898e-4   // K/Pa
	zC1 = -2.376e-6   // 1/Pa
	zD  = 1.83e-11    // K²/Pa²
	zE  = -0.765e-8   // K²/Pa²
)

// AirDensityCIPM returns the density of moist air in kg/m³ according to the
// CIPM-2007 formula.
//
// Parameters:
//   - tempC: Air temperature in °C
//   - pressureHPa: Absolute barometric pressure in hPa
//   - humidityPct: Relative humidity in percent (0-100)
//   - co2PPM: CO₂ concentration in µmol/mol (ambient air is ~400)
//
// The reference conditions 20 °C, 1013.25 hPa, 50 %rh, 400 ppm yield
// approximately 1.1992 kg/m³.
func AirDensityCIPM(tempC, pressureHPa, humidityPct, co2PPM float64) float64 {
	p := pressureHPa * 100.0 // Pa
	tk := tempC + 273.15

	// Saturation vapor pressure of moist air.
	psv := math.Exp(svpA*tk*tk + svpB*tk + svpC + svpD/tk)

	// Enhancement factor and mole fraction of water vapor.
	f := enhAlpha + enhBeta*p + enhGamma*tempC*tempC
	xv := (humidityPct / 100.0) * f * psv / p

	// Compressibility factor Z.
	z := 1.0 -
		p/tk*(zA0+zA1*tempC+zA2*tempC*tempC+(zB0+zB1*tempC)*xv+(zC0+zC1*tempC)*xv*xv) +
		p*p/(tk*tk)*(zD+zE*xv*xv)

	// Apparent molar mass of dry air adjusted for the CO₂ mole fraction.
	xCO2 := co2PPM * 1e-6
	ma := (28.96546 + 12.011*(xCO2-0.0004)) * 1e-3 // kg/mol

	return p * ma / (z * molarGasConstant * tk) * (1.0 - xv*(1.0-molarMassVapor/ma))
}
