package panchanga

import "math"

const (
	// d2r converts degrees to radians.
	d2r = math.Pi / 180.0

	// r2d converts radians to degrees.
	r2d = 180.0 / math.Pi
)

// Normalize maps any angle in degrees into [0, 360).
//
// The reduction is floor-based, so negative inputs land on the correct
// positive angle (-10 becomes 350, not -10).
func Normalize(x float64) float64 {
	r := x - math.Floor(x/360.0)*360.0
	// Tiny negative inputs round up to exactly 360 in float64.
	if r >= 360.0 {
		return 0
	}
	return r
}

func sinDeg(x float64) float64 {
	return math.Sin(x * d2r)
}

func cosDeg(x float64) float64 {
	return math.Cos(x * d2r)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
