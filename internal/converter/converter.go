// Package converter adapts third-party Hijri and Chinese lunisolar
// conversion libraries to the calendar types. Every conversion returns a
// Result so that a failure for one day stays visible without aborting the
// caller.
package converter

import (
	"fmt"

	"github.com/noah-isme/kalender-api/internal/calendar"
)

// Result carries either a converted value or the reason the conversion failed.
type Result[T any] struct {
	Value T
	Err   error
}

// OK reports whether the conversion succeeded.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Ptr returns a pointer to the value, or nil on failure.
func (r Result[T]) Ptr() *T {
	if r.Err != nil {
		return nil
	}
	v := r.Value
	return &v
}

// Success wraps a converted value.
func Success[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Failure wraps a conversion error.
func Failure[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// HijriConverter maps a Gregorian date to the Islamic calendar.
type HijriConverter interface {
	ToHijri(d calendar.Date) Result[calendar.HijriDate]
}

// LunarConverter maps a Gregorian date to the Chinese lunisolar calendar.
type LunarConverter interface {
	ToLunar(d calendar.Date) Result[calendar.LunarDate]
}

// HijriFunc adapts a plain function to HijriConverter.
type HijriFunc func(d calendar.Date) Result[calendar.HijriDate]

// ToHijri calls f.
func (f HijriFunc) ToHijri(d calendar.Date) Result[calendar.HijriDate] { return f(d) }

// LunarFunc adapts a plain function to LunarConverter.
type LunarFunc func(d calendar.Date) Result[calendar.LunarDate]

// ToLunar calls f.
func (f LunarFunc) ToLunar(d calendar.Date) Result[calendar.LunarDate] { return f(d) }

// recoverInto turns a panic inside a third-party converter into an error.
func recoverInto(err *error, name string, d calendar.Date) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%s conversion of %s panicked: %v", name, d, r)
	}
}
