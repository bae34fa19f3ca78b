package database

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDB creates a temporary in-memory database for testing.
func testDB(t *testing.T) *DB {
	t.Helper()

	cfg := DefaultConfig(":memory:")

	// Quiet logger for tests
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	db, err := Open(cfg, logger)
	require.NoError(t, err, "open test database")

	_, err = db.Migrate(context.Background())
	require.NoError(t, err, "migrate test database")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func sampleCalculation() *Calculation {
	return &Calculation{
		RequestID:  "req-123",
		InputDate:  "21/03/2024",
		InputTime:  "12:00",
		InputZone:  "+05:30",
		Day:        21,
		Month:      3,
		Year:       2024,
		Hour:       12,
		ZoneOffset: 5.5,
		Tithi:      "Dwadashi",
		Paksha:     "Shukla",
		Nakshatra:  "Ashlesa",
		Yoga:       "Sukarman",
		Karana:     "Bava",
		Rashi:      "Karka",
	}
}

// -----------------------------------------------------------------
// DB tests
// -----------------------------------------------------------------

func TestOpen(t *testing.T) {
	db := testDB(t)

	assert.NoError(t, db.Health(context.Background()))
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "panchanga.db")

	db, err := Open(DefaultConfig(path), nil)
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(filepath.Dir(path))
	assert.NoError(t, err)
}

func TestMigrate(t *testing.T) {
	db := testDB(t)

	// Migrations already ran in testDB; running again is a no-op.
	count, err := db.Migrate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMigrate_FreshSchema(t *testing.T) {
	db, err := Open(DefaultConfig(":memory:"), slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})))
	require.NoError(t, err)
	defer db.Close()

	count, err := db.Migrate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	var cols []string
	require.NoError(t, db.Select(&cols, `SELECT name FROM pragma_table_info('calculations')`))
	assert.Contains(t, cols, "request_id")
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	err := db.WithTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO calculations
			(input_date, input_time, input_zone, day, month, year, hour, zone_offset,
			 tithi, paksha, nakshatra, yoga, karana, rashi)
			VALUES ('1/1/2000', '12:00', '+00:00', 1, 1, 2000, 12, 0,
			 'Ekadashi', 'Krishna', 'Swathi', 'Dhrithi', 'Bava', 'Tula')`)
		require.NoError(t, err)
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	n, err := db.CountCalculations(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

// -----------------------------------------------------------------
// Calculation tests
// -----------------------------------------------------------------

func TestRecordCalculation(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	c := sampleCalculation()
	require.NoError(t, db.RecordCalculation(ctx, c))
	assert.NotZero(t, c.ID)
	assert.False(t, c.CreatedAt.IsZero())

	got, err := db.GetCalculation(ctx, c.ID)
	require.NoError(t, err)

	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, "req-123", got.RequestID)
	assert.Equal(t, "21/03/2024", got.InputDate)
	assert.Equal(t, 5.5, got.ZoneOffset)
	assert.Equal(t, "Dwadashi", got.Tithi)
	assert.Equal(t, "Karka", got.Rashi)
	assert.WithinDuration(t, c.CreatedAt, got.CreatedAt, time.Second)
}

func TestRecordCalculation_RejectsInvalidPaksha(t *testing.T) {
	db := testDB(t)

	c := sampleCalculation()
	c.Paksha = "Purnimanta"
	assert.Error(t, db.RecordCalculation(context.Background(), c))
}

func TestGetCalculation_NotFound(t *testing.T) {
	db := testDB(t)

	_, err := db.GetCalculation(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestListCalculations(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		c := sampleCalculation()
		c.Day = i
		require.NoError(t, db.RecordCalculation(ctx, c))
	}

	page, err := db.ListCalculations(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, 5, page[0].Day, "newest first")
	assert.Equal(t, 4, page[1].Day)

	page, err = db.ListCalculations(ctx, 10, 4)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, 1, page[0].Day)
}

func TestListCalculations_Empty(t *testing.T) {
	db := testDB(t)

	page, err := db.ListCalculations(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.NotNil(t, page)
	assert.Empty(t, page)
}

func TestCalculationHistory(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, db.RecordCalculation(ctx, sampleCalculation()))
	}

	page, err := db.CalculationHistory(ctx, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.Limit)
	assert.Equal(t, 1, page.Offset)
	assert.Len(t, page.Calculations, 2)
}
