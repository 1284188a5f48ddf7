package calendar

import "time"

const (
	daysPerWeek    = 7
	daysPerQuarter = 91

	// Offsets of the second and third month from the start of a quarter.
	secondMonthOffset = 4 * daysPerWeek
	thirdMonthOffset  = 9 * daysPerWeek
)

// Engine computes year, quarter, month and week boundaries of a 4-5-4
// calendar from a single YearAnchor.
//
// Months and weeks are merch indices. Nothing is validated: a month outside
// 1..12 or a week past the end of its month yields a date outside the
// intended period. Validation belongs to Calendar.
type Engine struct {
	anchor YearAnchor
}

// NewEngine returns an Engine for the given anchor.
func NewEngine(anchor YearAnchor) Engine {
	return Engine{anchor: anchor}
}

// Anchor returns the anchor the engine was configured with.
func (e Engine) Anchor() YearAnchor {
	return e.anchor
}

// EndOfYear returns the last day of the merch year.
func (e Engine) EndOfYear(year int) time.Time {
	return NearestSaturday(e.anchor.Date(year))
}

// StartOfYear returns the day after the previous year's last day.
func (e Engine) StartOfYear(year int) time.Time {
	return addDays(e.EndOfYear(year-1), 1)
}

// StartOfMonth returns the first day of a merch month.
func (e Engine) StartOfMonth(year, merchMonth int) time.Time {
	quarter := (merchMonth - 1) / 3
	start := addDays(e.StartOfYear(year), quarter*daysPerQuarter)
	switch (merchMonth - 1) % 3 {
	case 1:
		start = addDays(start, secondMonthOffset)
	case 2:
		start = addDays(start, thirdMonthOffset)
	}
	return start
}

// EndOfMonth returns the last day of a merch month. Month 12 always ends
// on the last day of the year and so absorbs the 53rd week.
func (e Engine) EndOfMonth(year, merchMonth int) time.Time {
	if merchMonth == 12 {
		return e.EndOfYear(year)
	}
	return addDays(e.StartOfMonth(year, merchMonth+1), -1)
}

// StartOfQuarter returns the first day of quarter 1..4.
func (e Engine) StartOfQuarter(year, quarter int) time.Time {
	return e.StartOfMonth(year, 3*(quarter-1)+1)
}

// EndOfQuarter returns the last day of quarter 1..4.
func (e Engine) EndOfQuarter(year, quarter int) time.Time {
	return e.EndOfMonth(year, 3*quarter)
}

// WeeksInYear returns 52 or 53.
func (e Engine) WeeksInYear(year int) int {
	return daysBetween(e.StartOfYear(year), e.StartOfYear(year+1)) / daysPerWeek
}

// WeeksInMonth returns 4 or 5.
func (e Engine) WeeksInMonth(year, merchMonth int) int {
	start := e.StartOfMonth(year, merchMonth)
	return (daysBetween(start, e.EndOfMonth(year, merchMonth)) + 1) / daysPerWeek
}

// StartOfWeek returns the first day of week 1..5 of a merch month.
func (e Engine) StartOfWeek(year, merchMonth, week int) time.Time {
	return addDays(e.StartOfMonth(year, merchMonth), daysPerWeek*(week-1))
}

// EndOfWeek returns the last day of week 1..5 of a merch month.
func (e Engine) EndOfWeek(year, merchMonth, week int) time.Time {
	return addDays(e.StartOfWeek(year, merchMonth, week), daysPerWeek-1)
}
