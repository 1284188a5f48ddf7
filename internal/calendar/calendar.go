package calendar

import (
	"strings"
	"time"
)

// Kind names a calendar variant.
type Kind string

const (
	KindRetail Kind = "retail"
	KindFiscal Kind = "fiscal"
)

// ValidKinds returns all supported calendar variants.
func ValidKinds() []Kind {
	return []Kind{KindRetail, KindFiscal}
}

// ParseKind parses a calendar variant name, case insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range ValidKinds() {
		if k == valid {
			return k, nil
		}
	}
	return "", invalidArgument("unknown calendar %q, expected retail or fiscal", s)
}

// Season is the merchandising half-year a month belongs to.
type Season string

const (
	SpringSummer Season = "Spring/Summer"
	FallWinter   Season = "Fall/Winter"
)

// yearRule resolves the merch year containing a date.
type yearRule func(e Engine, date time.Time) int

// Calendar is a 4-5-4 calendar variant: an Engine plus the month
// numbering, season split and year resolution specific to the variant.
// A Calendar is immutable and safe for concurrent use.
type Calendar struct {
	Engine
	kind          Kind
	merchToJulian [12]int
	julianToMerch [12]int
	seasons       [12]Season
	yearOf        yearRule
}

// newCalendar builds a variant whose merch month 1 is Julian month
// rotation+1. The first six merch months belong to firstHalf.
func newCalendar(kind Kind, anchor YearAnchor, rotation int, firstHalf Season, rule yearRule) *Calendar {
	c := &Calendar{
		Engine: NewEngine(anchor),
		kind:   kind,
		yearOf: rule,
	}
	secondHalf := FallWinter
	if firstHalf == FallWinter {
		secondHalf = SpringSummer
	}
	for i := 0; i < 12; i++ {
		julian := (i+rotation)%12 + 1
		c.merchToJulian[i] = julian
		c.julianToMerch[julian-1] = i + 1
		if i < 6 {
			c.seasons[i] = firstHalf
		} else {
			c.seasons[i] = secondHalf
		}
	}
	return c
}

// NewRetailCalendar returns the NRF style retail calendar. Merch month 1 is
// February and merch year N ends on the Saturday nearest January 31 of
// year N+1.
func NewRetailCalendar() *Calendar {
	return newCalendar(KindRetail, RetailAnchor, 1, SpringSummer, retailYear)
}

// NewFiscalCalendar returns the Stitch Fix fiscal calendar. Merch month 1
// is August and fiscal year N ends on the Saturday nearest July 31 of
// year N. Its season split is the reverse of the retail calendar.
func NewFiscalCalendar() *Calendar {
	return newCalendar(KindFiscal, FiscalAnchor, 7, FallWinter, fiscalYear)
}

// ForKind returns a new calendar of the given kind.
func ForKind(k Kind) (*Calendar, error) {
	switch k {
	case KindRetail:
		return NewRetailCalendar(), nil
	case KindFiscal:
		return NewFiscalCalendar(), nil
	}
	return nil, invalidArgument("unknown calendar %q", k)
}

// Kind returns the variant of this calendar.
func (c *Calendar) Kind() Kind {
	return c.kind
}

func (c *Calendar) String() string {
	return string(c.kind)
}

// MerchToJulian converts a merch month to its Julian month.
func (c *Calendar) MerchToJulian(merchMonth int) (int, error) {
	if err := checkMonth("merch", merchMonth); err != nil {
		return 0, err
	}
	return c.merchToJulian[merchMonth-1], nil
}

// JulianToMerch converts a Julian month to its merch month.
func (c *Calendar) JulianToMerch(julianMonth int) (int, error) {
	if err := checkMonth("julian", julianMonth); err != nil {
		return 0, err
	}
	return c.julianToMerch[julianMonth-1], nil
}

// Season returns the season of a merch month.
func (c *Calendar) Season(merchMonth int) (Season, error) {
	if err := checkMonth("merch", merchMonth); err != nil {
		return "", err
	}
	return c.seasons[merchMonth-1], nil
}

// Quarter returns the quarter 1..4 of a merch month.
func (c *Calendar) Quarter(merchMonth int) (int, error) {
	if err := checkMonth("merch", merchMonth); err != nil {
		return 0, err
	}
	return quarterOf(merchMonth), nil
}

func quarterOf(merchMonth int) int {
	return (merchMonth + 2) / 3
}

// MerchYearFromDate returns the merch year that contains date.
func (c *Calendar) MerchYearFromDate(date time.Time) int {
	return c.yearOf(c.Engine, DateOf(date))
}

// retailYear places date by comparing it with both ends of the merch year
// that shares its Gregorian year number.
func retailYear(e Engine, date time.Time) int {
	year := date.Year()
	start := e.StartOfYear(year)
	if date.Before(start) {
		return year - 1
	}
	if !date.After(e.EndOfYear(year)) {
		return year
	}
	return year + 1
}

// fiscalYear only compares against the year end: fiscal year N ends in
// late July or early August of year N.
func fiscalYear(e Engine, date time.Time) int {
	year := date.Year()
	if !e.EndOfYear(year).Before(date) {
		return year
	}
	return year + 1
}

// ResolveMonth converts a month selector to a merch month of this calendar.
func (c *Calendar) ResolveMonth(sel MonthSelector) (int, error) {
	switch sel.kind {
	case selectJulian:
		return c.JulianToMerch(sel.month)
	case selectMerch:
		if err := checkMonth("merch", sel.month); err != nil {
			return 0, err
		}
		return sel.month, nil
	}
	return 0, invalidArgument("unrecognized month selector")
}

// StartOfSelectedMonth returns the first day of the selected month.
func (c *Calendar) StartOfSelectedMonth(year int, sel MonthSelector) (time.Time, error) {
	merchMonth, err := c.ResolveMonth(sel)
	if err != nil {
		return time.Time{}, err
	}
	return c.StartOfMonth(year, merchMonth), nil
}

// EndOfSelectedMonth returns the last day of the selected month.
func (c *Calendar) EndOfSelectedMonth(year int, sel MonthSelector) (time.Time, error) {
	merchMonth, err := c.ResolveMonth(sel)
	if err != nil {
		return time.Time{}, err
	}
	return c.EndOfMonth(year, merchMonth), nil
}

// WeeksForMonth returns every week of the selected month of a merch year,
// in order. A month has 4 or 5 weeks.
func (c *Calendar) WeeksForMonth(year int, sel MonthSelector) ([]MerchWeek, error) {
	merchMonth, err := c.ResolveMonth(sel)
	if err != nil {
		return nil, err
	}
	n := c.WeeksInMonth(year, merchMonth)
	weeks := make([]MerchWeek, 0, n)
	for week := 1; week <= n; week++ {
		weeks = append(weeks, c.WeekOf(c.StartOfWeek(year, merchMonth, week)))
	}
	return weeks, nil
}

// MerchMonthsIn returns the start date of each merch month met while
// walking from the month of start to the month of end. The walk probes
// the 14th of each Julian month, which is never near a merch month
// boundary, and consecutive duplicates are dropped. The result is empty
// when start falls in a later month than end.
func (c *Calendar) MerchMonthsIn(start, end time.Time) []time.Time {
	probe := Date(start.Year(), start.Month(), 14)
	last := Date(end.Year(), end.Month(), 14)
	var months []time.Time
	var prev time.Time
	for !probe.After(last) {
		year := c.MerchYearFromDate(probe)
		merchMonth := c.julianToMerch[probe.Month()-1]
		first := c.StartOfMonth(year, merchMonth)
		if !first.Equal(prev) {
			months = append(months, first)
			prev = first
		}
		probe = probe.AddDate(0, 1, 0)
	}
	return months
}
