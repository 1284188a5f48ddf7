package calendar

import (
	"fmt"
	"time"
)

// DateLayout is the only accepted textual date form: YYYY-MM-DD.
const DateLayout = "2006-01-02"

// Date returns the calendar date year-month-day as a time.Time at UTC
// midnight. Every date produced by this package has that shape.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf drops the clock and location from t, keeping its calendar date.
func DateOf(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// ParseDateString parses a YYYY-MM-DD date. Partial dates such as "2015"
// or "2015-04" are rejected.
func ParseDateString(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, invalidArgument("date %q is not in YYYY-MM-DD form", dateStr)
	}
	return t, nil
}

// FormatDate formats a date as YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// addDays moves a date by n whole days.
func addDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// daysBetween returns the number of days from a to b. Both must be dates
// produced by Date or DateOf.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// weekNumber returns the 1-based 7-day period of date counted from start,
// ie. ceil((date-start+1)/7).
func weekNumber(start, date time.Time) int {
	return daysBetween(start, date)/7 + 1
}

// monthAbbrev returns the English three letter abbreviation for a Julian
// month.
func monthAbbrev(julianMonth int) string {
	if julianMonth < 1 || julianMonth > 12 {
		return fmt.Sprintf("M%02d", julianMonth)
	}
	return time.Month(julianMonth).String()[:3]
}
