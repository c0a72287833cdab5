package reports

import "time"

// TimeRange selects the reporting window relative to "now".
type TimeRange string

const (
	RangeLast30Days  TimeRange = "last30days"
	RangeLast3Months TimeRange = "last3months"
	RangeLast6Months TimeRange = "last6months"
	RangeThisYear    TimeRange = "thisyear"
	RangeAllTime     TimeRange = "alltime"
)

// Valid reports whether the time range is one of the supported selectors.
func (r TimeRange) Valid() bool {
	switch r {
	case RangeLast30Days, RangeLast3Months, RangeLast6Months, RangeThisYear, RangeAllTime:
		return true
	}
	return false
}

// ResolveRange converts a time-range selector into concrete limits. The end
// limit is the last instant of the current day; the start limit is the start
// of the day at the matching calendar offset, or the epoch for "alltime".
// last30days includes today, so it reaches back 29 days.
func ResolveRange(r TimeRange, now time.Time) (start, end time.Time) {
	end = endOfDay(now)

	switch r {
	case RangeLast30Days:
		start = startOfDay(now.AddDate(0, 0, -29))
	case RangeLast3Months:
		start = startOfDay(now.AddDate(0, -3, 0))
	case RangeLast6Months:
		start = startOfDay(now.AddDate(0, -6, 0))
	case RangeThisYear:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default: // alltime
		start = time.Unix(0, 0)
	}
	return start, end
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func endOfMonth(t time.Time) time.Time {
	return startOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// inRange reports whether the transaction date (normalized to start of day)
// falls within [start, end] inclusive.
func inRange(date, start, end time.Time) bool {
	d := startOfDay(date)
	return !d.Before(start) && !d.After(end)
}
