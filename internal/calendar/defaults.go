package calendar

import "time"

// The functions below operate on the retail calendar, which is the
// default for callers that do not name a variant.

var retail = NewRetailCalendar()

// Retail returns the shared retail calendar.
func Retail() *Calendar {
	return retail
}

// StartOfMonth returns the first day of the selected retail month.
func StartOfMonth(year int, sel MonthSelector) (time.Time, error) {
	return retail.StartOfSelectedMonth(year, sel)
}

// EndOfMonth returns the last day of the selected retail month.
func EndOfMonth(year int, sel MonthSelector) (time.Time, error) {
	return retail.EndOfSelectedMonth(year, sel)
}

// StartOfWeek returns the first day of a week of a retail month. Unlike
// Engine.StartOfWeek the month is a Julian month.
func StartOfWeek(year, julianMonth, week int) (time.Time, error) {
	merchMonth, err := checkWeek(year, julianMonth, week)
	if err != nil {
		return time.Time{}, err
	}
	return retail.StartOfWeek(year, merchMonth, week), nil
}

// EndOfWeek returns the last day of a week of a retail month, by Julian
// month.
func EndOfWeek(year, julianMonth, week int) (time.Time, error) {
	merchMonth, err := checkWeek(year, julianMonth, week)
	if err != nil {
		return time.Time{}, err
	}
	return retail.EndOfWeek(year, merchMonth, week), nil
}

// WeeksForMonth returns the weeks of the selected retail month.
func WeeksForMonth(year int, sel MonthSelector) ([]MerchWeek, error) {
	return retail.WeeksForMonth(year, sel)
}

// WeeksInYear returns 52 or 53 for a retail year.
func WeeksInYear(year int) int {
	return retail.WeeksInYear(year)
}

func checkWeek(year, julianMonth, week int) (int, error) {
	merchMonth, err := retail.JulianToMerch(julianMonth)
	if err != nil {
		return 0, err
	}
	if n := retail.WeeksInMonth(year, merchMonth); week < 1 || week > n {
		return 0, invalidArgument("week must be between 1 and %d, got %d", n, week)
	}
	return merchMonth, nil
}
