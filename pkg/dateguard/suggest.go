package dateguard

import "time"

// Suggestion arithmetic. All helpers work on wall-clock time in the
// candidate's own location; results are calendar dates.

// tomorrow returns the calendar day after t.
func tomorrow(t time.Time) time.Time {
	return startOfDay(t.AddDate(0, 0, 1))
}

// oneDayBefore returns the calendar day before t.
func oneDayBefore(t time.Time) time.Time {
	return startOfDay(t.AddDate(0, 0, -1))
}

// oneYearFromNow returns the same calendar date one year after t.
func oneYearFromNow(t time.Time) time.Time {
	return startOfDay(t.AddDate(1, 0, 0))
}

// nextMonday returns the first Monday strictly after t. The (8-dow)%7
// step, with 0 mapped to 7, keeps the result in the future even when t
// is itself a Monday.
func nextMonday(t time.Time) time.Time {
	dow := int(t.Weekday()) // Sunday = 0
	days := (8 - dow) % 7
	if days == 0 {
		days = 7
	}
	return startOfDay(t.AddDate(0, 0, days))
}

func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

// startOfDay returns midnight at the start of t's day.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay returns 23:59:59.999 at the end of t's day.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}

func formatDate(t time.Time) string {
	return t.Format(DateFormat)
}
