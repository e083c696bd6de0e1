// Package calendar holds the pure date arithmetic behind the kalender API:
// proleptic Gregorian day numbering, the Javanese pasaran/month/year cycles
// and the holiday rule engine. Nothing in this package performs I/O.
package calendar

import (
	"fmt"
	"time"
)

// Supported Gregorian year range.
const (
	MinYear = 1
	MaxYear = 9999
)

// Date is a proleptic Gregorian calendar date without time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate validates the components and returns the date.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("year %d outside %d-%d", year, MinYear, MaxYear)
	}
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("month %d outside 1-12", month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("day %d outside 1-%d", day, DaysInMonth(year, month))
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// DateOf truncates t to its calendar date in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// HijriDate is the output of an Islamic calendar conversion.
type HijriDate struct {
	Year  int
	Month int
	Day   int
}

// LunarDate is the output of a Chinese lunisolar conversion. Leap marks the
// intercalary repetition of Month.
type LunarDate struct {
	Year  int
	Month int
	Day   int
	Leap  bool
}
