package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/kalender-api/internal/models"
)

const listFixedHolidaysQuery = `SELECT holiday_date, lang, name FROM fixed_holidays ORDER BY holiday_date, lang`

// HolidayRepository reads the fixed-date holiday table from SQL. The query
// uses no placeholders so it runs unchanged on postgres and sqlite3.
type HolidayRepository struct {
	db *sqlx.DB
}

// NewHolidayRepository constructs a holiday repository.
func NewHolidayRepository(db *sqlx.DB) *HolidayRepository {
	return &HolidayRepository{db: db}
}

// ListFixed returns every localized fixed-holiday row ordered by date.
func (r *HolidayRepository) ListFixed(ctx context.Context) ([]models.FixedHolidayRow, error) {
	var rows []models.FixedHolidayRow
	if err := r.db.SelectContext(ctx, &rows, listFixedHolidaysQuery); err != nil {
		return nil, fmt.Errorf("list fixed holidays: %w", err)
	}
	return rows, nil
}
