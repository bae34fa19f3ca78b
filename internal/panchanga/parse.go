package panchanga

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxZoneOffset is the largest real-world UTC offset, in hours.
const maxZoneOffset = 14.0

// ParseDate parses a "DD/MM/YYYY" date.
func ParseDate(s string) (day, month, year int, err error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return 0, 0, 0, newError("parse date", ErrInvalidInputFormat, "expected DD/MM/YYYY, got %q", s)
	}

	if day, err = parseDigits(parts[0]); err != nil {
		return 0, 0, 0, newError("parse date", ErrInvalidInputFormat, "invalid day %q", parts[0])
	}
	if month, err = parseDigits(parts[1]); err != nil {
		return 0, 0, 0, newError("parse date", ErrInvalidInputFormat, "invalid month %q", parts[1])
	}
	if year, err = parseDigits(parts[2]); err != nil {
		return 0, 0, 0, newError("parse date", ErrInvalidInputFormat, "invalid year %q", parts[2])
	}

	if month < 1 || month > 12 {
		return 0, 0, 0, newError("parse date", ErrInvalidInputFormat, "month %d out of range 1-12", month)
	}
	if day < 1 || day > 31 {
		return 0, 0, 0, newError("parse date", ErrInvalidInputFormat, "day %d out of range 1-31", day)
	}

	return day, month, year, nil
}

// ParseClock parses a 24-hour "HH:MM" time into fractional hours.
// "24:00" is accepted as the end of the day.
func ParseClock(s string) (float64, error) {
	hours, minutes, err := splitHourMinute(strings.TrimSpace(s))
	if err != nil {
		return 0, newError("parse time", ErrInvalidInputFormat, "expected HH:MM, got %q", s)
	}
	if hours < 0 || hours > 24 || (hours == 24 && minutes != 0) {
		return 0, newError("parse time", ErrInvalidInputFormat, "%q out of range 00:00-24:00", s)
	}
	if minutes < 0 || minutes > 59 {
		return 0, newError("parse time", ErrInvalidInputFormat, "minute %d out of range 0-59", minutes)
	}
	return float64(hours) + float64(minutes)/60.0, nil
}

// ParseZone parses a "[+/-]HH:MM" UTC offset into signed fractional hours.
// The sign applies to the whole offset, so "-04:30" is -4.5.
func ParseZone(s string) (float64, error) {
	s = strings.TrimSpace(s)

	sign := 1.0
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		sign = -1.0
		s = s[1:]
	}

	hours, minutes, err := splitHourMinute(s)
	if err != nil || hours < 0 || minutes < 0 || minutes > 59 {
		return 0, newError("parse zone", ErrInvalidInputFormat, "expected [+/-]HH:MM, got %q", s)
	}

	offset := float64(hours) + float64(minutes)/60.0
	if offset > maxZoneOffset {
		return 0, newError("parse zone", ErrInvalidInputFormat, "offset %s exceeds %v hours", s, maxZoneOffset)
	}
	return sign * offset, nil
}

// ParseMoment parses the three textual fields into a Moment.
func ParseMoment(date, clock, zone string) (Moment, error) {
	day, month, year, err := ParseDate(date)
	if err != nil {
		return Moment{}, err
	}
	hour, err := ParseClock(clock)
	if err != nil {
		return Moment{}, err
	}
	offset, err := ParseZone(zone)
	if err != nil {
		return Moment{}, err
	}
	return NewMoment(day, month, year, hour, offset), nil
}

// FormatZone renders an offset in hours as "+HH:MM" or "-HH:MM".
func FormatZone(offset float64) string {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return sign + formatClock(offset)
}

func formatClock(hours float64) string {
	total := int(math.Round(hours * 60))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func splitHourMinute(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want 2 fields, got %d", len(parts))
	}
	hours, err := parseDigits(parts[0])
	if err != nil {
		return 0, 0, err
	}
	minutes, err := parseDigits(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return hours, minutes, nil
}

// parseDigits parses a non-empty run of ASCII digits. Unlike strconv.Atoi
// it rejects signs.
func parseDigits(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty field")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-digit %q in %q", r, s)
		}
	}
	return strconv.Atoi(s)
}
