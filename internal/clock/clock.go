// Package clock provides epoch-second time helpers for the transmission log.
package clock

import (
	"fmt"
	"time"
)

// SecondsPerDay is the length of one civil day in epoch seconds.
const SecondsPerDay int64 = 86_400

// Clock defines an interface for getting the current time.
// This allows tests to inject a fixed instant.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock implements Clock for tests.
type FixedClock struct {
	Time time.Time
}

func (f FixedClock) Now() time.Time {
	return f.Time
}

// Seconds converts t to whole epoch seconds. Instants before the epoch map to 0.
func Seconds(t time.Time) int64 {
	s := t.Unix()
	if s < 0 {
		return 0
	}
	return s
}

// NowSeconds returns the current epoch seconds of c.
func NowSeconds(c Clock) int64 {
	return Seconds(c.Now())
}

// Label renders seconds as a day-local HH:MM:SS string, wrapping at midnight UTC.
func Label(seconds int64) string {
	today := floorMod(seconds, SecondsPerDay)
	return fmt.Sprintf("%02d:%02d:%02d", today/3600, (today%3600)/60, today%60)
}

// CurrentYear returns the proleptic Gregorian year of c's current day.
func CurrentYear(c Clock) int {
	return YearFromUnixDays(floorDiv(NowSeconds(c), SecondsPerDay))
}

// YearFromUnixDays converts a day count relative to 1970-01-01 into a calendar year.
// Uses Howard Hinnant's civil_from_days with eras of 146097 days.
func YearFromUnixDays(days int64) int {
	z := days + 719_468
	era := floorDiv(z, 146_097)
	doe := z - era*146_097                                     // [0, 146096]
	yoe := (doe - doe/1_460 + doe/36_524 - doe/146_096) / 365 // [0, 399]
	year := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153                  // [0, 11], March-based
	if mp >= 10 {
		// January and February belong to the next civil year.
		year++
	}
	return int(year)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
