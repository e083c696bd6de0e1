package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/kalender-api/internal/calendar"
	"github.com/noah-isme/kalender-api/internal/converter"
	"github.com/noah-isme/kalender-api/internal/dto"
	"github.com/noah-isme/kalender-api/internal/models"
	appErrors "github.com/noah-isme/kalender-api/pkg/errors"
)

// Day is the fully typed result for one Gregorian date, before it is
// flattened into a models.DayRecord.
type Day struct {
	Date     calendar.Date
	Hijri    converter.Result[calendar.HijriDate]
	Lunar    converter.Result[calendar.LunarDate]
	Javanese calendar.JavaneseDate
	Holidays []string
	Record   models.DayRecord
}

// KalenderService assembles months of multi-calendar day records. It holds no
// mutable state and may be shared across requests.
type KalenderService struct {
	hijri       converter.HijriConverter
	lunar       converter.LunarConverter
	engine      *calendar.HolidayEngine
	validator   *validator.Validate
	metrics     *MetricsService
	logger      *zap.Logger
	defaultLang string
}

// NewKalenderService constructs the service. validate, metrics and logger may be nil.
func NewKalenderService(hijri converter.HijriConverter, lunar converter.LunarConverter, engine *calendar.HolidayEngine, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger, defaultLang string) *KalenderService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if engine == nil {
		engine = calendar.NewHolidayEngine(nil)
	}
	if defaultLang == "" {
		defaultLang = calendar.DefaultLanguage
	}
	return &KalenderService{
		hijri:       hijri,
		lunar:       lunar,
		engine:      engine,
		validator:   validate,
		metrics:     metrics,
		logger:      logger,
		defaultLang: defaultLang,
	}
}

// SynthesizeMonth returns one record per day of the requested month.
func (s *KalenderService) SynthesizeMonth(ctx context.Context, req dto.KalenderRequest) ([]models.DayRecord, error) {
	days, err := s.SynthesizeDays(ctx, req)
	if err != nil {
		return nil, err
	}
	records := make([]models.DayRecord, len(days))
	for i := range days {
		records[i] = days[i].Record
	}
	return records, nil
}

// SynthesizeDays validates the range, then converts every day of the month in
// ascending order. A failing Hijri or lunar conversion only blanks that
// calendar for that day.
func (s *KalenderService) SynthesizeDays(ctx context.Context, req dto.KalenderRequest) (days []Day, err error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	lang := req.Lang
	if lang == "" {
		lang = s.defaultLang
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("month synthesis panicked", zap.Int("year", req.Year), zap.Int("month", req.Month), zap.Any("panic", r))
			days = nil
			err = appErrors.Wrap(fmt.Errorf("%v", r), appErrors.ErrInternal.Code, appErrors.ErrInternal.Status,
				fmt.Sprintf("failed to build calendar for %04d-%02d: %v", req.Year, req.Month, r))
		}
	}()

	start := time.Now()
	month := time.Month(req.Month)
	total := calendar.DaysInMonth(req.Year, month)
	days = make([]Day, 0, total)
	for day := 1; day <= total; day++ {
		days = append(days, s.buildDay(lang, calendar.Date{Year: req.Year, Month: month, Day: day}))
	}
	s.metrics.ObserveMonth(time.Since(start))
	return days, nil
}

func (s *KalenderService) validate(req dto.KalenderRequest) error {
	if err := s.validator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate request")
		}
		msg := ""
		for _, fe := range verrs {
			switch fe.Field() {
			case "Month":
				return appErrors.Clone(appErrors.ErrInvalidRange, "month must be between 1 and 12")
			case "Year":
				msg = fmt.Sprintf("year must be between %d and %d", calendar.MinYear, calendar.MaxYear)
			}
		}
		if msg == "" {
			msg = verrs.Error()
		}
		return appErrors.Clone(appErrors.ErrInvalidRange, msg)
	}
	return nil
}

func (s *KalenderService) buildDay(lang string, d calendar.Date) Day {
	hijri := s.hijri.ToHijri(d)
	if !hijri.OK() {
		s.recordFailure("hijri", d, hijri.Err)
	}
	lunar := s.lunar.ToLunar(d)
	if !lunar.OK() {
		s.recordFailure("lunar", d, lunar.Err)
	}
	jawa := calendar.ToJavanese(d)
	holidays := s.engine.HolidaysFor(lang, d, hijri.Ptr(), lunar.Ptr())

	record := models.DayRecord{
		Masehi: models.MasehiDate{
			Tanggal: d.Day,
			Hari:    calendar.WeekdayName(lang, d.Weekday()),
			Bulan:   calendar.MonthName(lang, d.Month),
			Tahun:   d.Year,
		},
		Jawa: models.JawaDate{
			Tanggal: jawa.Day,
			Pasaran: jawa.Pasaran.String(),
			Bulan:   jawa.MonthName(),
			Tahun:   jawa.Year,
		},
		Libur: calendar.JoinHolidays(holidays),
	}
	if h := hijri.Ptr(); h != nil {
		record.Hijriyah = models.HijriyahDate{
			Tanggal: ptr(h.Day),
			Bulan:   ptr(calendar.HijriMonthName(lang, h.Month)),
			Tahun:   ptr(h.Year),
		}
	}
	if l := lunar.Ptr(); l != nil {
		record.China = models.ChinaDate{
			Tanggal: ptr(calendar.ChineseDayName(l.Day)),
			Bulan:   ptr(calendar.ChineseMonthName(l.Month, l.Leap)),
			Tahun:   ptr(l.Year),
		}
	}

	return Day{
		Date:     d,
		Hijri:    hijri,
		Lunar:    lunar,
		Javanese: jawa,
		Holidays: holidays,
		Record:   record,
	}
}

func (s *KalenderService) recordFailure(calendarName string, d calendar.Date, err error) {
	s.metrics.RecordConversionFailure(calendarName)
	s.logger.Debug("calendar conversion failed",
		zap.String("calendar", calendarName),
		zap.String("date", d.String()),
		zap.Error(err),
	)
}

func ptr[T any](v T) *T {
	return &v
}
