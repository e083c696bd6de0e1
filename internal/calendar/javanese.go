package calendar

import "time"

// Pasaran is a position in the five-day Javanese market week.
type Pasaran int

const (
	Legi Pasaran = iota
	Pahing
	Pon
	Wage
	Kliwon
)

var pasaranNames = [...]string{"Legi", "Pahing", "Pon", "Wage", "Kliwon"}

func (p Pasaran) String() string {
	if p < Legi || p > Kliwon {
		return ""
	}
	return pasaranNames[p]
}

var javaneseMonths = [...]string{
	"Sura", "Sapar", "Mulud", "Bakda Mulud", "Jumadil Awal", "Jumadil Akhir",
	"Rejeb", "Ruwah", "Pasa", "Sawal", "Sela", "Besar",
}

// JavaneseEpoch is 1 Sura 1555 AJ, the Friday Legi on which the Javanese
// calendar was aligned with the Islamic one.
var JavaneseEpoch = Date{Year: 1633, Month: time.July, Day: 8}

// JavaneseEpochYear is the Javanese year that starts at JavaneseEpoch.
const JavaneseEpochYear = 1555

const (
	javaneseMonthLength = 30
	javaneseYearLength  = 354
)

// JavaneseDate is the Javanese rendering of a Gregorian date. Months are
// modelled as fixed 30-day blocks; the year advances every 354 days.
type JavaneseDate struct {
	Day     int
	Pasaran Pasaran
	Month   int
	Year    int
}

// MonthName returns the Javanese month name (Sura..Besar).
func (j JavaneseDate) MonthName() string {
	return javaneseMonths[j.Month-1]
}

// ToJavanese converts d. It is total over the supported Gregorian range and
// wraps correctly for dates before the epoch.
func ToJavanese(d Date) JavaneseDate {
	offset := DayOffset(JavaneseEpoch, d)
	return JavaneseDate{
		Day:     int(FloorMod(offset, javaneseMonthLength)) + 1,
		Pasaran: Pasaran(FloorMod(offset, int64(len(pasaranNames)))),
		Month:   int(FloorMod(FloorDiv(offset, javaneseMonthLength), int64(len(javaneseMonths)))) + 1,
		Year:    JavaneseEpochYear + int(FloorDiv(offset, javaneseYearLength)),
	}
}
