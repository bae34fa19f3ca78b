package panchanga

// Ayanamsa returns the Lahiri ayanamsa in degrees for day count d.
//
// The value is the offset added to a tropical longitude to get the
// sidereal one, so it is negative (about -24° in the 2020s).
func Ayanamsa(d float64) float64 {
	// Julian centuries, counted from 1900 January 0.5.
	t := (d + 36523.5) / 36525.0

	// Longitude of the Moon's ascending node.
	node := 259.183275 - 1934.142008333206*t + 0.0020777778*t*t

	// Mean longitude of the Sun.
	sunMean := 279.696678 + 36000.76892*t + 0.0003025*t*t

	// Arcseconds.
	ayan := 17.23*sinDeg(node) + 1.27*sinDeg(2.0*sunMean) - (5025.64+1.11*t)*t

	return (ayan - 80861.27) / 3600.0
}
