package domain

import "time"

// DateFilter is the closed set of named lookback windows.
type DateFilter string

const (
	FilterDay   DateFilter = "day"
	FilterWeek  DateFilter = "week"
	FilterMonth DateFilter = "month"
	FilterYear  DateFilter = "year"
)

// ParseDateFilter maps s onto the closed filter set. Callers must treat an
// unrecognized value as an explicit reset of the start date, not as a
// passthrough.
func ParseDateFilter(s string) (DateFilter, bool) {
	switch f := DateFilter(s); f {
	case FilterDay, FilterWeek, FilterMonth, FilterYear:
		return f, true
	default:
		return "", false
	}
}

// Lookback returns the fixed duration behind "now" for the window. The
// month window is four weeks, not a calendar month, and the year window is
// a flat 365 days.
func (f DateFilter) Lookback() time.Duration {
	switch f {
	case FilterDay:
		return 24 * time.Hour
	case FilterWeek:
		return 7 * 24 * time.Hour
	case FilterMonth:
		return 28 * 24 * time.Hour
	case FilterYear:
		return 365 * 24 * time.Hour
	default:
		return 0
	}
}
