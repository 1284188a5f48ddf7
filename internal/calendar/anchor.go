// Package calendar provides 4-5-4 merchandising calendar calculations.
//
// A merch year is 52 or 53 whole weeks long. Its last day is the Saturday
// nearest to a fixed anchor date (the last day of January for the retail
// calendar, the last day of July for the fiscal calendar). Each year is
// split into four 91 day quarters and each quarter into months of 4, 5 and
// 4 weeks. The 53rd week, when present, is appended to month 12.
package calendar

import "time"

// YearAnchor identifies the raw anchor date of a merch year: the last day
// of Month in the Gregorian year (merch year + YearOffset).
type YearAnchor struct {
	Month      time.Month
	YearOffset int
}

var (
	// RetailAnchor ends merch year N near January 31 of year N+1.
	RetailAnchor = YearAnchor{Month: time.January, YearOffset: 1}

	// FiscalAnchor ends fiscal year N near July 31 of year N.
	FiscalAnchor = YearAnchor{Month: time.July, YearOffset: 0}
)

// Date returns the unsnapped anchor date for the given merch year.
func (a YearAnchor) Date(year int) time.Time {
	// Day 0 of the following month is the last day of a.Month.
	return Date(year+a.YearOffset, a.Month+1, 0)
}

// NearestSaturday snaps a date to the Saturday at most three days away.
//
// The offset is the number of days since the previous Saturday
// (Saturday=0, Sunday=1, ..., Friday=6). Offsets of 4 or more round
// forward to the next Saturday, anything else rounds back.
func NearestSaturday(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 1) % 7
	if offset > 3 {
		return addDays(date, 7-offset)
	}
	return addDays(date, -offset)
}
