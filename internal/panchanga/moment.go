package panchanga

import "fmt"

// Moment is a civil calendar instant: a date, a local wall-clock hour, and
// the local zone's offset from UT in hours.
type Moment struct {
	Day        int
	Month      int     // 1-12
	Year       int
	Hour       float64 // local time, fractional hours in [0, 24]
	ZoneOffset float64 // hours east of Greenwich, e.g. 5.5 for +05:30
}

// NewMoment builds a Moment from numeric fields.
func NewMoment(day, month, year int, hour, zoneOffset float64) Moment {
	return Moment{
		Day:        day,
		Month:      month,
		Year:       year,
		Hour:       hour,
		ZoneOffset: zoneOffset,
	}
}

// DaysSinceJ2000 returns the integer day count used by the orbital formulas.
//
// This is not a general Julian Day Number: every division truncates toward
// zero in exactly this order, and 1 January 2000 maps to 1.
func DaysSinceJ2000(day, month, year int) int {
	return 367*year - 7*(year+(month+9)/12)/4 + 275*month/9 + day - 730530
}

// DayNumber returns the integer day count of the moment's civil date.
func (m Moment) DayNumber() int {
	return DaysSinceJ2000(m.Day, m.Month, m.Year)
}

// Days returns the continuous day count since J2000.0 in Universal Time,
// including the local-to-UT correction.
func (m Moment) Days() float64 {
	return float64(m.DayNumber()) + (m.Hour-m.ZoneOffset)/24.0
}

// String formats the moment as "DD/MM/YYYY HH:MM ±HH:MM".
func (m Moment) String() string {
	return fmt.Sprintf("%02d/%02d/%04d %s %s", m.Day, m.Month, m.Year, formatClock(m.Hour), FormatZone(m.ZoneOffset))
}

func (m Moment) validate() error {
	if !isFinite(m.Hour) {
		return newError("moment", ErrNonFiniteResult, "hour is %v", m.Hour)
	}
	if !isFinite(m.ZoneOffset) {
		return newError("moment", ErrNonFiniteResult, "zone offset is %v", m.ZoneOffset)
	}
	return nil
}
