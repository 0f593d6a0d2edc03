package physics

import "math"

const (
	gravityEquator   = 9.780327 // m/s², theoretical gravity at the equator
	gravitySin2Coeff = 0.0053024
	gravitySin4Coeff = 0.0000058
	freeAirGradient  = 3.086e-6 // m/s² per meter of altitude
)

// LocalGravity returns the local acceleration of gravity in m/s² from the
// international gravity formula, reduced by the free-air correction for
// altitude above sea level.
//
// Parameters:
//   - latitudeDeg: Geographic latitude in degrees
//   - altitudeM: Altitude above sea level in meters
func LocalGravity(latitudeDeg, altitudeM float64) float64 {
	lat := latitudeDeg * math.Pi / 180.0
	sinLat := math.Sin(lat)
	sin2Lat := math.Sin(2.0 * lat)

	g := gravityEquator * (1.0 + gravitySin2Coeff*sinLat*sinLat - gravitySin4Coeff*sin2Lat*sin2Lat)

	return g - freeAirGradient*altitudeM
}

// HeadCorrection returns the hydrostatic pressure difference ΔP = ρ·g·h in
// pascal for a fluid column of the given density (kg/m³), local gravity
// (m/s²), and height difference (m, positive when the instrument sits above
// the reference plane).
func HeadCorrection(density, gravity, heightM float64) float64 {
	return density * gravity * heightM
}
