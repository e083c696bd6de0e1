package calendar

import "time"

const secondsPerDay = 24 * 60 * 60

// DayNumber returns the count of days between 1970-01-01 and d. Unix seconds
// are exact multiples of a day at UTC midnight, so the division never rounds.
func DayNumber(d Date) int64 {
	return d.Time().Unix() / secondsPerDay
}

// DayOffset returns the signed number of whole days from a to b.
func DayOffset(a, b Date) int64 {
	return DayNumber(b) - DayNumber(a)
}

// DaysInMonth returns the length of the month, honouring the 4/100/400 leap rule.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsLeapYear reports whether year has 366 days.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// FloorDiv divides rounding toward negative infinity.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns the remainder with the sign of b, so FloorMod(-1, 5) == 4.
func FloorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}
