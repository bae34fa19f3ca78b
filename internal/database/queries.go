package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// calculationColumns lists the columns scanned into Calculation.
const calculationColumns = `
	id, request_id,
	input_date, input_time, input_zone,
	day, month, year, hour, zone_offset,
	tithi, paksha, nakshatra, yoga, karana, rashi,
	created_at`

// RecordCalculation inserts c and sets its ID. A zero CreatedAt is set to
// the current time.
func (db *DB) RecordCalculation(ctx context.Context, c *Calculation) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO calculations (
			request_id,
			input_date, input_time, input_zone,
			day, month, year, hour, zone_offset,
			tithi, paksha, nakshatra, yoga, karana, rashi,
			created_at
		) VALUES (
			:request_id,
			:input_date, :input_time, :input_zone,
			:day, :month, :year, :hour, :zone_offset,
			:tithi, :paksha, :nakshatra, :yoga, :karana, :rashi,
			:created_at
		)`

	result, err := db.NamedExecContext(ctx, query, c)
	if err != nil {
		return fmt.Errorf("insert calculation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get calculation id: %w", err)
	}
	c.ID = id

	return nil
}

// GetCalculation retrieves one calculation by ID.
// Returns ErrNotFound if it doesn't exist.
func (db *DB) GetCalculation(ctx context.Context, id int64) (*Calculation, error) {
	var c Calculation
	err := db.GetContext(ctx, &c, "SELECT"+calculationColumns+" FROM calculations WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query calculation: %w", err)
	}
	return &c, nil
}

// ListCalculations returns a page of calculations, newest first.
func (db *DB) ListCalculations(ctx context.Context, limit, offset int) ([]Calculation, error) {
	calcs := []Calculation{}
	err := db.SelectContext(ctx, &calcs,
		"SELECT"+calculationColumns+" FROM calculations ORDER BY id DESC LIMIT ? OFFSET ?",
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	return calcs, nil
}

// CountCalculations returns the number of recorded calculations.
func (db *DB) CountCalculations(ctx context.Context) (int, error) {
	var n int
	if err := db.GetContext(ctx, &n, "SELECT COUNT(*) FROM calculations"); err != nil {
		return 0, fmt.Errorf("count calculations: %w", err)
	}
	return n, nil
}

// CalculationHistory returns a page of calculations together with the total.
func (db *DB) CalculationHistory(ctx context.Context, limit, offset int) (*CalculationPage, error) {
	calcs, err := db.ListCalculations(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := db.CountCalculations(ctx)
	if err != nil {
		return nil, err
	}

	return &CalculationPage{
		Calculations: calcs,
		Total:        total,
		Limit:        limit,
		Offset:       offset,
	}, nil
}
