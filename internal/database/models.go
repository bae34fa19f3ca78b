package database

import "time"

// Calculation is one recorded panchanga calculation.
type Calculation struct {
	ID        int64  `db:"id" json:"id"`
	RequestID string `db:"request_id" json:"request_id,omitempty"`

	// Input as received
	InputDate string `db:"input_date" json:"date"`
	InputTime string `db:"input_time" json:"time"`
	InputZone string `db:"input_zone" json:"zone"`

	// Parsed moment
	Day        int     `db:"day" json:"day"`
	Month      int     `db:"month" json:"month"`
	Year       int     `db:"year" json:"year"`
	Hour       float64 `db:"hour" json:"hour"`
	ZoneOffset float64 `db:"zone_offset" json:"zone_offset"`

	// Results
	Tithi     string `db:"tithi" json:"tithi"`
	Paksha    string `db:"paksha" json:"paksha"`
	Nakshatra string `db:"nakshatra" json:"nakshatra"`
	Yoga      string `db:"yoga" json:"yoga"`
	Karana    string `db:"karana" json:"karana"`
	Rashi     string `db:"rashi" json:"rashi"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CalculationPage is one page of history, newest first.
type CalculationPage struct {
	Calculations []Calculation `json:"calculations"`
	Total        int           `json:"total"`
	Limit        int           `json:"limit"`
	Offset       int           `json:"offset"`
}
