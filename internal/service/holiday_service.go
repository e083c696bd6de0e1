package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/kalender-api/internal/calendar"
	"github.com/noah-isme/kalender-api/internal/models"
)

type fixedHolidaySource interface {
	ListFixed(ctx context.Context) ([]models.FixedHolidayRow, error)
}

// HolidayService builds the immutable fixed-date holiday table once at startup.
type HolidayService struct {
	source  models.HolidaySource
	store   fixedHolidaySource
	metrics *MetricsService
	logger  *zap.Logger
}

// NewHolidayService constructs the loader. store is ignored for the builtin source.
func NewHolidayService(source models.HolidaySource, store fixedHolidaySource, metrics *MetricsService, logger *zap.Logger) *HolidayService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if source == "" {
		source = models.HolidaySourceBuiltin
	}
	return &HolidayService{source: source, store: store, metrics: metrics, logger: logger}
}

// LoadTable reads the configured source into a HolidayTable.
func (s *HolidayService) LoadTable(ctx context.Context) (*calendar.HolidayTable, error) {
	var holidays []calendar.FixedHoliday
	switch s.source {
	case models.HolidaySourceBuiltin:
		holidays = calendar.BuiltinHolidays()
	case models.HolidaySourceFile, models.HolidaySourceDatabase:
		if s.store == nil {
			return nil, fmt.Errorf("holiday source %q has no store", s.source)
		}
		rows, err := s.store.ListFixed(ctx)
		if err != nil {
			return nil, err
		}
		holidays, err = RowsToHolidays(rows)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown holiday source %q", s.source)
	}

	table := calendar.NewHolidayTable(holidays)
	s.metrics.SetFixedHolidays(table.Len())
	s.logger.Info("fixed holiday table loaded", zap.String("source", string(s.source)), zap.Int("dates", table.Len()))
	return table, nil
}

// RowsToHolidays groups localized rows by date, rejecting rows that fall
// outside the supported Gregorian range or lack a language or name.
func RowsToHolidays(rows []models.FixedHolidayRow) ([]calendar.FixedHoliday, error) {
	index := make(map[calendar.Date]int)
	var out []calendar.FixedHoliday
	for i, row := range rows {
		lang := strings.ToLower(strings.TrimSpace(row.Lang))
		name := strings.TrimSpace(row.Name)
		if lang == "" || name == "" {
			return nil, fmt.Errorf("holiday row %d: language and name are required", i)
		}
		y, m, d := row.HolidayDate.Date()
		date, err := calendar.NewDate(y, m, d)
		if err != nil {
			return nil, fmt.Errorf("holiday row %d: %w", i, err)
		}
		pos, ok := index[date]
		if !ok {
			pos = len(out)
			index[date] = pos
			out = append(out, calendar.FixedHoliday{Date: date, Name: calendar.LocalizedName{}})
		}
		out[pos].Name[lang] = name
	}
	return out, nil
}
