package panchanga

import "math"

// OrbitalState carries the mean orbital quantities that the solar solve
// produces and the lunar perturbation series consumes. It is created per
// calculation and passed by value; nothing in this package keeps one.
type OrbitalState struct {
	SunMeanLongitude  float64 `json:"sun_mean_longitude"`
	SunMeanAnomaly    float64 `json:"sun_mean_anomaly"`
	MoonMeanLongitude float64 `json:"moon_mean_longitude"`
	MoonMeanAnomaly   float64 `json:"moon_mean_anomaly"`
}

// SunLongitude returns the Sun's true ecliptic longitude in degrees for day
// count d, along with an OrbitalState whose Sun fields are filled in.
//
// Kepler's equation gets a single first-order correction and is not
// iterated, unlike the Moon's. Changing that shifts results.
func SunLongitude(d float64) (float64, OrbitalState) {
	perihelion := 282.9404 + 4.70935e-5*d
	ecc := 0.016709 - 1.151e-9*d
	meanAnomaly := Normalize(356.0470 + 0.9856002585*d)

	state := OrbitalState{
		SunMeanAnomaly:   meanAnomaly,
		SunMeanLongitude: perihelion + meanAnomaly,
	}

	eccAnomaly := firstOrderEccentricAnomaly(meanAnomaly, ecc)

	x := cosDeg(eccAnomaly) - ecc
	y := sinDeg(eccAnomaly) * math.Sqrt(1.0-ecc*ecc)

	trueAnomaly := Normalize(r2d * math.Atan2(y, x))
	return Normalize(trueAnomaly + perihelion), state
}

// firstOrderEccentricAnomaly is the starting estimate E0 for Kepler's
// equation, in degrees.
func firstOrderEccentricAnomaly(meanAnomaly, ecc float64) float64 {
	return meanAnomaly + r2d*ecc*sinDeg(meanAnomaly)*(1.0+ecc*cosDeg(meanAnomaly))
}
