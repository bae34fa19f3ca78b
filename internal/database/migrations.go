package database

// migrationsSQL contains all database migrations, applied in order by
// version number.
var migrationsSQL = map[int]string{
	1: migrationV1Calculations,
}

// migrationV1Calculations creates the calculation history table.
//
// Each row is one successful panchanga calculation: the textual input as
// received, the numeric moment it parsed to, and the six results.
// request_id ties a row to the request log that produced it.
// created_at is declared TIMESTAMP so the driver scans it into time.Time.
const migrationV1Calculations = `
CREATE TABLE IF NOT EXISTS calculations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,

    -- Input as received
    input_date TEXT NOT NULL,
    input_time TEXT NOT NULL,
    input_zone TEXT NOT NULL,

    -- Parsed moment
    day INTEGER NOT NULL,
    month INTEGER NOT NULL CHECK (month BETWEEN 1 AND 12),
    year INTEGER NOT NULL,
    hour REAL NOT NULL,
    zone_offset REAL NOT NULL,

    -- Results
    tithi TEXT NOT NULL,
    paksha TEXT NOT NULL CHECK (paksha IN ('Shukla', 'Krishna')),
    nakshatra TEXT NOT NULL,
    yoga TEXT NOT NULL,
    karana TEXT NOT NULL,
    rashi TEXT NOT NULL,

    request_id TEXT NOT NULL DEFAULT '',

    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_calculations_created
    ON calculations(created_at);

CREATE INDEX IF NOT EXISTS idx_calculations_moment
    ON calculations(year, month, day);
`
