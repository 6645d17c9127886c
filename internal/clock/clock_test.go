package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int64
		expected string
	}{
		{name: "Epoch", seconds: 0, expected: "00:00:00"},
		{name: "Padded fields", seconds: 3*3600 + 4*60 + 5, expected: "03:04:05"},
		{name: "Last second of day", seconds: 86_399, expected: "23:59:59"},
		{name: "Wraps at midnight", seconds: 86_400, expected: "00:00:00"},
		{name: "Real timestamp", seconds: 1_700_000_000, expected: "22:13:20"},
		{name: "Negative wraps backwards", seconds: -1, expected: "23:59:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Label(tt.seconds))
		})
	}
}

func TestLabelIsDayPeriodic(t *testing.T) {
	for _, s := range []int64{0, 59, 3_661, 45_296, 86_399, 1_700_000_000} {
		for _, k := range []int64{-3, -1, 1, 2, 365} {
			assert.Equal(t, Label(s), Label(s+SecondsPerDay*k), "s=%d k=%d", s, k)
		}
	}
}

func TestLabelMatchesTimeFormat(t *testing.T) {
	for _, s := range []int64{1, 12_345, 999_999, 1_234_567_890} {
		assert.Equal(t, time.Unix(s, 0).UTC().Format("15:04:05"), Label(s))
	}
}

func TestYearFromUnixDays(t *testing.T) {
	tests := []struct {
		name     string
		days     int64
		expected int
	}{
		{name: "Epoch day", days: 0, expected: 1970},
		{name: "Day before epoch", days: -1, expected: 1969},
		{name: "Last day of 1999", days: 10_956, expected: 1999},
		{name: "First day of 2000", days: 10_957, expected: 2000},
		{name: "Leap day 2000", days: 11_016, expected: 2000},
		{name: "March 2000", days: 11_017, expected: 2000},
		{name: "Leap day 2024", days: 19_782, expected: 2024},
		{name: "Last day of 2023", days: 19_722, expected: 2023},
		{name: "Year zero January", days: -719_528, expected: 0},
		{name: "Year minus one December", days: -719_529, expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, YearFromUnixDays(tt.days))
		})
	}
}

func TestYearFromUnixDaysAgreesWithTimePackage(t *testing.T) {
	for days := int64(-800_000); days <= 800_000; days += 997 {
		want := time.Unix(days*SecondsPerDay, 0).UTC().Year()
		assert.Equal(t, want, YearFromUnixDays(days), "days=%d", days)
	}
}

func TestCurrentYear(t *testing.T) {
	fixed := FixedClock{Time: time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)}
	assert.Equal(t, 2026, CurrentYear(fixed))

	newYear := FixedClock{Time: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, 2025, CurrentYear(newYear))
}

func TestSecondsClampsBeforeEpoch(t *testing.T) {
	assert.Equal(t, int64(0), Seconds(time.Unix(-50, 0)))
	assert.Equal(t, int64(42), Seconds(time.Unix(42, 999_999_999)))
	assert.Equal(t, int64(42), NowSeconds(FixedClock{Time: time.Unix(42, 0)}))
}
