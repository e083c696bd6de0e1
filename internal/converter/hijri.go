package converter

import (
	"fmt"
	"time"

	hijri "github.com/hablullah/go-hijri"

	"github.com/noah-isme/kalender-api/internal/calendar"
)

// Hijri conversion methods.
const (
	MethodUmmAlQura  = "ummalqura"
	MethodArithmetic = "arithmetic"
)

// HijriOptions selects the conversion method.
type HijriOptions struct {
	Method string
	// ArithmeticFallback retries with the tabular calendar when Umm al-Qura
	// has no data for the date.
	ArithmeticFallback bool
}

// Hijri converts using github.com/hablullah/go-hijri.
type Hijri struct {
	opts HijriOptions
}

// NewHijri validates the method and builds the converter.
func NewHijri(opts HijriOptions) (*Hijri, error) {
	switch opts.Method {
	case "":
		opts.Method = MethodUmmAlQura
	case MethodUmmAlQura, MethodArithmetic:
	default:
		return nil, fmt.Errorf("unknown hijri method %q", opts.Method)
	}
	return &Hijri{opts: opts}, nil
}

// ToHijri converts d. Umm al-Qura covers 1937-03-14 through 2077-11-16; the
// arithmetic calendar covers everything from 622-07-19 (1 Muharram 1).
func (h *Hijri) ToHijri(d calendar.Date) (res Result[calendar.HijriDate]) {
	defer recoverInto(&res.Err, "hijri", d)

	if h.opts.Method == MethodArithmetic {
		return arithmeticHijri(d)
	}
	uq, err := hijri.CreateUmmAlQuraDate(d.Time())
	if err != nil {
		if h.opts.ArithmeticFallback {
			return arithmeticHijri(d)
		}
		return Failure[calendar.HijriDate](fmt.Errorf("umm al-qura %s: %w", d, err))
	}
	return Success(calendar.HijriDate{Year: int(uq.Year), Month: int(uq.Month), Day: int(uq.Day)})
}

// hijriCycleDays is the length of one 30-year arithmetic Hijri cycle.
const hijriCycleDays = 10631

// gregorianReform is the first day go-hijri reads as a Gregorian date; it
// takes earlier y/m/d values as Julian.
var gregorianReform = calendar.Date{Year: 1582, Month: time.October, Day: 15}

// arithmeticHijri moves dates before the reform forward by whole cycles,
// which leaves the Hijri month and day unchanged, and takes the cycles back
// off the year.
func arithmeticHijri(d calendar.Date) Result[calendar.HijriDate] {
	var cycles int64
	if gap := calendar.DayOffset(d, gregorianReform); gap > 0 {
		cycles = (gap + hijriCycleDays - 1) / hijriCycleDays
	}
	shifted := d.Time().AddDate(0, 0, int(cycles*hijriCycleDays))

	hd, err := hijri.CreateHijriDate(shifted, hijri.Default)
	if err != nil {
		return Failure[calendar.HijriDate](fmt.Errorf("arithmetic hijri %s: %w", d, err))
	}
	year := hd.Year - 30*cycles
	if year < 1 {
		return Failure[calendar.HijriDate](fmt.Errorf("arithmetic hijri %s: date is before 1 Muharram 1", d))
	}
	return Success(calendar.HijriDate{Year: int(year), Month: int(hd.Month), Day: int(hd.Day)})
}
