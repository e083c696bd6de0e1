package converter

import (
	"fmt"

	lunarcal "github.com/6tail/lunar-go/calendar"

	"github.com/noah-isme/kalender-api/internal/calendar"
)

// julianDayAtNoon is the Julian Day at noon on 1970-01-01, DayNumber zero.
const julianDayAtNoon = 2440588

// Lunar converts using github.com/6tail/lunar-go.
type Lunar struct{}

// NewLunar builds the converter.
func NewLunar() *Lunar {
	return &Lunar{}
}

// ToLunar converts d. The date enters lunar-go as a Julian Day because its
// y/m/d constructor reads dates before 1582-10-15 as Julian. lunar-go reports
// leap months as negative month numbers.
func (l *Lunar) ToLunar(d calendar.Date) (res Result[calendar.LunarDate]) {
	defer recoverInto(&res.Err, "lunar", d)

	ld := lunarcal.NewSolarFromJulianDay(float64(calendar.DayNumber(d) + julianDayAtNoon)).GetLunar()
	if ld == nil {
		return Failure[calendar.LunarDate](fmt.Errorf("lunar %s: no result", d))
	}
	month, leap := ld.GetMonth(), false
	if month < 0 {
		month, leap = -month, true
	}
	if month < 1 || month > 12 || ld.GetDay() < 1 || ld.GetDay() > 30 {
		return Failure[calendar.LunarDate](fmt.Errorf("lunar %s: out of range month %d day %d", d, ld.GetMonth(), ld.GetDay()))
	}
	return Success(calendar.LunarDate{Year: ld.GetYear(), Month: month, Day: ld.GetDay(), Leap: leap})
}
