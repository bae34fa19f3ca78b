// Package panchanga computes the elements of the Hindu luni-solar calendar
// for a civil date, local time, and zone offset.
//
// The pipeline is: day count since J2000.0, Lahiri ayanamsa, the Sun's true
// longitude from a single-step Kepler approximation, the Moon's true
// longitude from an iterated Kepler solve plus twelve periodic terms, and
// finally five bucket lookups (tithi, nakshatra, yoga, karana, rashi).
//
// Everything here is a pure function of its input. There is no
// package-level mutable state, so concurrent calls need no locking.
package panchanga

import "math"

// Bucket widths in degrees. Nakshatra and yoga use 13°20', applied as the
// multiplier 6/80.
const (
	tithiWidth  = 12.0
	karanaWidth = 6.0
	rashiWidth  = 30.0

	// karanaBuckets is the number of raw karana buckets in a full
	// Moon-Sun separation.
	karanaBuckets = 360 / karanaWidth
)

// Result holds the six classifications for a moment.
type Result struct {
	Tithi     string `json:"tithi"`
	Paksha    string `json:"paksha"`
	Nakshatra string `json:"nakshatra"`
	Yoga      string `json:"yoga"`
	Karana    string `json:"karana"`
	Rashi     string `json:"rashi"`
}

// Indices are the table positions behind a Result, after karana folding.
type Indices struct {
	Tithi     int `json:"tithi"`
	Nakshatra int `json:"nakshatra"`
	Yoga      int `json:"yoga"`
	Karana    int `json:"karana"`
	Rashi     int `json:"rashi"`
}

// Detail is a Result together with the intermediate values that produced it.
type Detail struct {
	Moment           Moment       `json:"-"`
	DayNumber        int          `json:"day_number"`
	Days             float64      `json:"days"`
	Ayanamsa         float64      `json:"ayanamsa"`
	SunLongitude     float64      `json:"sun_longitude"`
	MoonLongitude    float64      `json:"moon_longitude"`
	Orbit            OrbitalState `json:"orbit"`
	KeplerIterations int          `json:"kepler_iterations"`
	Indices          Indices      `json:"indices"`
	Result           Result       `json:"result"`
}

// Compute returns the panchanga for m.
func Compute(m Moment) (Result, error) {
	detail, err := Calculate(m)
	if err != nil {
		return Result{}, err
	}
	return detail.Result, nil
}

// Calculate runs the full pipeline for m and returns every intermediate value.
func Calculate(m Moment) (*Detail, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}

	dayNumber := m.DayNumber()
	days := m.Days()

	// The ayanamsa uses the civil date's day number, without the hour.
	ayanamsa := Ayanamsa(float64(dayNumber))
	if !isFinite(ayanamsa) {
		return nil, newError("ayanamsa", ErrNonFiniteResult, "day number %d", dayNumber)
	}

	sun, state := SunLongitude(days)
	if !isFinite(sun) {
		return nil, newError("sun longitude", ErrNonFiniteResult, "day count %v", days)
	}

	moon, state, iterations, err := MoonLongitude(days, state)
	if err != nil {
		return nil, err
	}

	result, indices, err := Assemble(ayanamsa, sun, moon)
	if err != nil {
		return nil, err
	}

	return &Detail{
		Moment:           m,
		DayNumber:        dayNumber,
		Days:             days,
		Ayanamsa:         ayanamsa,
		SunLongitude:     sun,
		MoonLongitude:    moon,
		Orbit:            state,
		KeplerIterations: iterations,
		Indices:          indices,
		Result:           result,
	}, nil
}

// Assemble derives the five elements and the paksha from the ayanamsa and
// the tropical longitudes of the Sun and Moon, all in degrees.
func Assemble(ayanamsa, sun, moon float64) (Result, Indices, error) {
	var (
		res Result
		idx Indices
		err error
	)

	for _, v := range []float64{ayanamsa, sun, moon} {
		if !isFinite(v) {
			return res, idx, newError("assemble", ErrNonFiniteResult, "ayanamsa %v, sun %v, moon %v", ayanamsa, sun, moon)
		}
	}

	elongation := separation(moon, sun)
	sidereal := Normalize(moon + ayanamsa)

	// Tithi and paksha.
	if idx.Tithi, err = bucket("tithi", elongation/tithiWidth); err != nil {
		return res, idx, err
	}
	if res.Tithi, err = lookup("tithi", tithis[:], idx.Tithi); err != nil {
		return res, idx, err
	}
	res.Paksha = Paksha(idx.Tithi)

	// Nakshatra.
	if idx.Nakshatra, err = bucket("nakshatra", sidereal*6.0/80.0); err != nil {
		return res, idx, err
	}
	if res.Nakshatra, err = lookup("nakshatra", nakshatras[:], idx.Nakshatra); err != nil {
		return res, idx, err
	}

	// Yoga.
	yoga := Normalize((moon + ayanamsa) + (sun + ayanamsa))
	if idx.Yoga, err = bucket("yoga", yoga*6.0/80.0); err != nil {
		return res, idx, err
	}
	if res.Yoga, err = lookup("yoga", yogas[:], idx.Yoga); err != nil {
		return res, idx, err
	}

	// Karana.
	raw, err := bucket("karana", elongation/karanaWidth)
	if err != nil {
		return res, idx, err
	}
	idx.Karana = FoldKarana(raw)
	if res.Karana, err = lookup("karana", karanas[:], idx.Karana); err != nil {
		return res, idx, err
	}

	// Rashi.
	if idx.Rashi, err = bucket("rashi", sidereal/rashiWidth); err != nil {
		return res, idx, err
	}
	if res.Rashi, err = lookup("rashi", rashis[:], idx.Rashi); err != nil {
		return res, idx, err
	}

	return res, idx, nil
}

// Paksha returns the fortnight for a tithi index: Shukla for 0-14,
// Krishna otherwise.
func Paksha(tithiIndex int) string {
	if tithiIndex <= 14 {
		return PakshaShukla
	}
	return PakshaKrishna
}

// FoldKarana maps a raw 6° bucket index (0-59 over a lunar month) onto the
// 11-entry karana table.
//
// Bucket 0 is Kimstughna. Buckets 57-59 are shifted down by 50 and then,
// like every bucket from 1 to 56, folded onto the 7 repeating karanas.
func FoldKarana(raw int) int {
	if raw == 0 {
		return 10
	}
	if raw >= 57 {
		raw -= 50
	}
	if raw > 0 && raw < 57 {
		raw = (raw - 1) % 7
	}
	return raw
}

// separation is the Moon's angular lead over the Sun in [0, 360).
func separation(moon, sun float64) float64 {
	if moon < sun {
		moon += 360.0
	}
	return moon - sun
}

// bucket truncates a scaled, non-negative angle to an integer index.
func bucket(op string, scaled float64) (int, error) {
	if !isFinite(scaled) {
		return 0, newError(op, ErrNonFiniteResult, "bucket value %v", scaled)
	}
	if scaled < 0 || scaled >= math.MaxInt32 {
		return 0, newError(op, ErrIndexOutOfRange, "bucket value %v", scaled)
	}
	return int(scaled), nil
}
