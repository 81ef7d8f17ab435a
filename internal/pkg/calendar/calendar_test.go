package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBusinessDays(t *testing.T) {
	// 2025-03-03 is a Monday.
	cases := []struct {
		name     string
		from, to time.Time
		want     int
	}{
		{"monday to friday", date(2025, 3, 3), date(2025, 3, 7), 5},
		{"weekend only", date(2025, 3, 8), date(2025, 3, 9), 0},
		{"single weekday", date(2025, 3, 5), date(2025, 3, 5), 1},
		{"single saturday", date(2025, 3, 8), date(2025, 3, 8), 0},
		{"two full weeks", date(2025, 3, 3), date(2025, 3, 16), 10},
		{"friday to monday", date(2025, 3, 7), date(2025, 3, 10), 2},
		{"inverted range", date(2025, 3, 7), date(2025, 3, 3), 0},
		{"across month end", date(2025, 2, 27), date(2025, 3, 4), 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, BusinessDays(c.from, c.to))
		})
	}
}

func TestBusinessDays_IgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2025, 3, 3, 23, 59, 0, 0, time.UTC)
	to := time.Date(2025, 3, 4, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 2, BusinessDays(from, to))
}

func TestBusinessDays_UsesOwnCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*3600)
	// Local Friday evening; in UTC this is already Saturday.
	friday := time.Date(2025, 3, 7, 20, 0, 0, 0, loc)
	assert.Equal(t, 1, BusinessDays(friday, friday))
}

func TestIsBusinessDay(t *testing.T) {
	assert.True(t, IsBusinessDay(date(2025, 3, 3)))
	assert.False(t, IsBusinessDay(date(2025, 3, 9)))
}
