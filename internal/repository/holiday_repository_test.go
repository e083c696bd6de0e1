package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newHolidayRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestHolidayRepositoryListFixed(t *testing.T) {
	db, mock, cleanup := newHolidayRepoMock(t)
	defer cleanup()
	repo := NewHolidayRepository(db)

	newYear := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"holiday_date", "lang", "name"}).
		AddRow(newYear, "en", "New Year (Gregorian)").
		AddRow(newYear, "id", "Tahun Baru Masehi")
	mock.ExpectQuery(regexp.QuoteMeta(listFixedHolidaysQuery)).WillReturnRows(rows)

	got, err := repo.ListFixed(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "id", got[1].Lang)
	require.Equal(t, "Tahun Baru Masehi", got[1].Name)
	require.True(t, got[0].HolidayDate.Equal(newYear))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHolidayRepositoryListFixedError(t *testing.T) {
	db, mock, cleanup := newHolidayRepoMock(t)
	defer cleanup()
	repo := NewHolidayRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(listFixedHolidaysQuery)).WillReturnError(errors.New("relation does not exist"))

	_, err := repo.ListFixed(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "list fixed holidays")
}

func TestParseHolidayYAML(t *testing.T) {
	rows, err := ParseHolidayYAML([]byte(`
holidays:
  - date: 2025-03-29
    name:
      id: Hari Suci Nyepi
      en: Day of Silence
  - date: "2025-05-01"
    name:
      id: Hari Buruh Internasional
`))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "en", rows[0].Lang)
	require.Equal(t, "Day of Silence", rows[0].Name)
	require.Equal(t, time.Date(2025, 3, 29, 0, 0, 0, 0, time.UTC), rows[1].HolidayDate)
	require.Equal(t, "Hari Buruh Internasional", rows[2].Name)
}

func TestParseHolidayYAMLRejectsBadDate(t *testing.T) {
	_, err := ParseHolidayYAML([]byte("holidays:\n  - date: 2025-13-40\n    name: {id: X}\n"))
	require.Error(t, err)
}

func TestParseHolidayYAMLRejectsMissingName(t *testing.T) {
	_, err := ParseHolidayYAML([]byte("holidays:\n  - date: 2025-01-01\n"))
	require.Error(t, err)
}

func TestHolidayFileRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.yaml")
	require.NoError(t, os.WriteFile(path, []byte("holidays:\n  - date: 2025-01-01\n    name: {id: Tahun Baru Masehi}\n"), 0o600))

	rows, err := NewHolidayFileRepository(path).ListFixed(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	_, err = NewHolidayFileRepository(filepath.Join(t.TempDir(), "missing.yaml")).ListFixed(context.Background())
	require.Error(t, err)
}
