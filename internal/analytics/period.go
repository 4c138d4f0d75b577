package analytics

import "time"

// DayLayout is the key format used for per-day buckets.
const DayLayout = "2006-01-02"

// Period is an inclusive time range.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the inclusive range.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// MonthPeriod returns the range covering the whole calendar month in loc,
// from the first day at 00:00:00 to the last day at 23:59:59.999999999.
// The last day is the day before the first day of the next month, so month
// lengths and leap years resolve through the calendar rather than a table.
func MonthPeriod(year int, month time.Month, loc *time.Location) Period {
	if loc == nil {
		loc = time.UTC
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := start.AddDate(0, 1, -1)
	end := time.Date(last.Year(), last.Month(), last.Day(), 23, 59, 59, 999999999, loc)
	return Period{Start: start, End: end}
}

// CurrentMonth returns the month period containing now.
func CurrentMonth(now time.Time, loc *time.Location) Period {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	return MonthPeriod(local.Year(), local.Month(), loc)
}

// EndOfDay returns the last instant of t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}
