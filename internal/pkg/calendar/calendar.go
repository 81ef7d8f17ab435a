// Package calendar counts business days. A business day is Monday through
// Friday; there is no holiday calendar.
package calendar

import "time"

// StartOfDay strips the time of day, keeping the calendar day t carries in
// its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func IsBusinessDay(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}

// BusinessDays counts business days in [from, to], both ends inclusive.
// It returns 0 when to is before from.
func BusinessDays(from, to time.Time) int {
	start := StartOfDay(from)
	end := StartOfDay(to)

	count := 0
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		if IsBusinessDay(current) {
			count++
		}
	}
	return count
}
