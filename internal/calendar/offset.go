package calendar

import "time"

// OffsetCalendar is a fiscal calendar defined as the retail calendar
// shifted by a whole number of quarters. Its year, quarter, month and week
// boundaries are those of the retail period it maps to.
//
// Only an offset of -2 is supported: fiscal year N starts at retail
// quarter 3 of year N-1. This usually matches the anchored fiscal calendar
// but not always. A 53 week retail year N-1 makes offset year N 53 weeks
// long, with the extra week in merch month 6, wherever the July anchor
// would have put it.
type OffsetCalendar struct {
	retail   Engine
	quarters int
}

// DefaultQuarterOffset is the only supported quarter offset.
const DefaultQuarterOffset = -2

// NewOffsetCalendar returns a calendar starting quarters before (negative)
// the retail year.
func NewOffsetCalendar(quarters int) (*OffsetCalendar, error) {
	if quarters != DefaultQuarterOffset {
		return nil, invalidArgument("quarter offset %d not supported, only %d", quarters, DefaultQuarterOffset)
	}
	return &OffsetCalendar{retail: NewEngine(RetailAnchor), quarters: quarters}, nil
}

// QuarterOffset returns the number of quarters the year is shifted by.
func (c *OffsetCalendar) QuarterOffset() int {
	return c.quarters
}

// StartOfYear returns the first day of the first offset quarter.
func (c *OffsetCalendar) StartOfYear(year int) time.Time {
	return c.StartOfQuarter(year, 1)
}

// EndOfYear returns the last day of the fourth offset quarter.
func (c *OffsetCalendar) EndOfYear(year int) time.Time {
	return c.EndOfQuarter(year, 4)
}

func (c *OffsetCalendar) StartOfQuarter(year, quarter int) time.Time {
	return c.retail.StartOfQuarter(c.retailQuarter(year, quarter))
}

func (c *OffsetCalendar) EndOfQuarter(year, quarter int) time.Time {
	return c.retail.EndOfQuarter(c.retailQuarter(year, quarter))
}

func (c *OffsetCalendar) StartOfMonth(year, merchMonth int) time.Time {
	return c.retail.StartOfMonth(c.retailMonth(year, merchMonth))
}

func (c *OffsetCalendar) EndOfMonth(year, merchMonth int) time.Time {
	return c.retail.EndOfMonth(c.retailMonth(year, merchMonth))
}

func (c *OffsetCalendar) StartOfWeek(year, merchMonth, week int) time.Time {
	y, m := c.retailMonth(year, merchMonth)
	return c.retail.StartOfWeek(y, m, week)
}

func (c *OffsetCalendar) EndOfWeek(year, merchMonth, week int) time.Time {
	y, m := c.retailMonth(year, merchMonth)
	return c.retail.EndOfWeek(y, m, week)
}

// WeeksInYear returns 52 or 53. With a -2 offset the fiscal year spans
// the last half of retail year N-1 and the first half of retail year N,
// which is as long as retail year N-1.
func (c *OffsetCalendar) WeeksInYear(year int) int {
	return c.retail.WeeksInYear(year - 1)
}

// retailQuarter maps an offset quarter to its retail year and quarter.
func (c *OffsetCalendar) retailQuarter(year, quarter int) (int, int) {
	if quarter >= 1+abs(c.quarters) {
		return year, quarter + c.quarters
	}
	return year - 1, quarter - c.quarters
}

// retailMonth maps an offset merch month to its retail year and month.
func (c *OffsetCalendar) retailMonth(year, merchMonth int) (int, int) {
	months := c.quarters * 3
	if merchMonth >= abs(months)+1 {
		return year, merchMonth + months
	}
	return year - 1, merchMonth - months
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
