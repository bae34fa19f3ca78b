package panchanga

import "math"

const (
	moonInclination   = 5.1454  // degrees
	moonSemiMajorAxis = 60.2666 // Earth radii
	moonEccentricity  = 0.054900

	// keplerTolerance is the largest change, in degrees, between two
	// successive eccentric-anomaly estimates that counts as converged.
	keplerTolerance = 0.005

	// maxKeplerIterations bounds the Newton loop for pathological inputs.
	maxKeplerIterations = 100
)

// perturbation is one periodic correction term of the lunar longitude:
// amplitude * sin(m*Mm + d*D + s*Ms + f*F), all angles in degrees.
type perturbation struct {
	name      string
	amplitude float64
	m, d      float64 // Moon mean anomaly, mean elongation
	s, f      float64 // Sun mean anomaly, argument of latitude
}

// lunarPerturbations are applied in this order.
var lunarPerturbations = [12]perturbation{
	{name: "evection", amplitude: -1.274, m: 1, d: -2},
	{name: "variation", amplitude: 0.658, d: 2},
	{name: "yearly equation", amplitude: -0.186, s: 1},
	{amplitude: -0.059, m: 2, d: -2},
	{amplitude: -0.057, m: 1, d: -2, s: 1},
	{amplitude: 0.053, m: 1, d: 2},
	{amplitude: 0.046, d: 2, s: -1},
	{amplitude: 0.041, m: 1, s: -1},
	{amplitude: -0.035, d: 1},
	{amplitude: -0.031, m: 1, s: 1},
	{amplitude: -0.015, d: -2, f: 2},
	{amplitude: 0.011, m: 1, d: -4},
}

// MoonLongitude returns the Moon's true ecliptic longitude in degrees for
// day count d.
//
// state must carry the Sun's mean anomaly and mean longitude for the same
// d, as returned by SunLongitude. The returned state adds the Moon's mean
// elements; the int is the number of Kepler iterations used.
func MoonLongitude(d float64, state OrbitalState) (float64, OrbitalState, int, error) {
	node := 125.1228 - 0.0529538083*d
	perigee := Normalize(318.0634 + 0.1643573223*d)
	meanAnomaly := Normalize(115.3654 + 13.0649929509*d)

	state.MoonMeanAnomaly = meanAnomaly
	state.MoonMeanLongitude = node + perigee + meanAnomaly

	eccAnomaly, iterations, err := SolveKepler(meanAnomaly, moonEccentricity)
	if err != nil {
		return 0, state, iterations, err
	}

	// Position in the orbital plane.
	ecc := moonEccentricity
	x := moonSemiMajorAxis * (cosDeg(eccAnomaly) - ecc)
	y := moonSemiMajorAxis * math.Sqrt(1.0-ecc*ecc) * sinDeg(eccAnomaly)

	r := math.Sqrt(x*x + y*y)
	trueAnomaly := Normalize(r2d * math.Atan2(y, x))

	// Rotate into ecliptic coordinates. Latitude is not needed.
	argLat := trueAnomaly + perigee
	eclX := r * (cosDeg(node)*cosDeg(argLat) - sinDeg(node)*sinDeg(argLat)*cosDeg(moonInclination))
	eclY := r * (sinDeg(node)*cosDeg(argLat) + cosDeg(node)*sinDeg(argLat)*cosDeg(moonInclination))

	lon := applyPerturbations(r2d*math.Atan2(eclY, eclX), state, node)
	if !isFinite(lon) {
		return 0, state, iterations, newError("moon longitude", ErrNonFiniteResult, "day count %v", d)
	}

	return Normalize(lon), state, iterations, nil
}

// applyPerturbations adds the periodic terms, one at a time, to lon.
func applyPerturbations(lon float64, state OrbitalState, node float64) float64 {
	elongation := state.MoonMeanLongitude - state.SunMeanLongitude
	latitudeArg := state.MoonMeanLongitude - node

	for _, p := range lunarPerturbations {
		arg := p.m*state.MoonMeanAnomaly + p.d*elongation + p.s*state.SunMeanAnomaly + p.f*latitudeArg
		lon += p.amplitude * sinDeg(arg)
	}
	return lon
}

// SolveKepler solves Kepler's equation M = E - e·sin(E) for the eccentric
// anomaly E, with M and E in degrees.
//
// It starts from the first-order estimate and applies Newton corrections
// until two successive estimates differ by at most 0.005°. The estimate
// returned is the one before the final correction. The int result is the
// number of corrections computed.
func SolveKepler(meanAnomaly, ecc float64) (float64, int, error) {
	if !isFinite(meanAnomaly) || !isFinite(ecc) {
		return 0, 0, newError("kepler", ErrNonFiniteResult, "mean anomaly %v, eccentricity %v", meanAnomaly, ecc)
	}

	estimate := firstOrderEccentricAnomaly(meanAnomaly, ecc)

	for i := 1; i <= maxKeplerIterations; i++ {
		next := estimate - (estimate-r2d*ecc*sinDeg(estimate)-meanAnomaly)/(1.0-ecc*cosDeg(estimate))
		if !isFinite(next) {
			return 0, i, newError("kepler", ErrNonFiniteResult, "estimate diverged after %d iterations", i)
		}
		if math.Abs(estimate-next) <= keplerTolerance {
			return estimate, i, nil
		}
		estimate = next
	}

	return 0, maxKeplerIterations, newError("kepler", ErrNoConvergence,
		"mean anomaly %v, eccentricity %v after %d iterations", meanAnomaly, ecc, maxKeplerIterations)
}
