package calendar

import (
	"fmt"
	"strings"
	"time"
)

// MerchWeek is a date resolved against a calendar variant: the merch year,
// month, quarter, season and week it falls in, and the boundaries of each.
// All fields are computed when the MerchWeek is created.
type MerchWeek struct {
	Date     time.Time `json:"date"`
	Calendar Kind      `json:"calendar"`

	Year       int    `json:"year"`
	MerchMonth int    `json:"merch_month"`
	Month      int    `json:"month"` // Julian
	Quarter    int    `json:"quarter"`
	Season     Season `json:"season"`
	Week       int    `json:"week"`      // within the month, 1..5
	YearWeek   int    `json:"year_week"` // within the year, 1..53

	StartOfYear  time.Time `json:"start_of_year"`
	EndOfYear    time.Time `json:"end_of_year"`
	StartOfMonth time.Time `json:"start_of_month"`
	EndOfMonth   time.Time `json:"end_of_month"`
	StartOfWeek  time.Time `json:"start_of_week"`
	EndOfWeek    time.Time `json:"end_of_week"`
}

// WeekOf resolves date against the calendar.
func (c *Calendar) WeekOf(date time.Time) MerchWeek {
	date = DateOf(date)
	year := c.MerchYearFromDate(date)
	merchMonth := c.monthContaining(year, date)

	mw := MerchWeek{
		Date:         date,
		Calendar:     c.kind,
		Year:         year,
		MerchMonth:   merchMonth,
		Month:        c.merchToJulian[merchMonth-1],
		Quarter:      quarterOf(merchMonth),
		Season:       c.seasons[merchMonth-1],
		StartOfYear:  c.StartOfYear(year),
		EndOfYear:    c.EndOfYear(year),
		StartOfMonth: c.StartOfMonth(year, merchMonth),
		EndOfMonth:   c.EndOfMonth(year, merchMonth),
	}
	mw.Week = weekNumber(mw.StartOfMonth, date)
	mw.YearWeek = weekNumber(mw.StartOfYear, date)
	mw.StartOfWeek = addDays(mw.StartOfMonth, daysPerWeek*(mw.Week-1))
	mw.EndOfWeek = addDays(mw.StartOfWeek, daysPerWeek-1)
	return mw
}

// monthContaining scans the months of a merch year for the one that
// contains date. The year must already be known to contain date.
func (c *Calendar) monthContaining(year int, date time.Time) int {
	for m := 1; m < 12; m++ {
		if !date.After(c.EndOfMonth(year, m)) && !date.Before(c.StartOfMonth(year, m)) {
			return m
		}
	}
	return 12
}

// FromDate resolves a date against cal, or the retail calendar if cal is
// nil.
func FromDate(date time.Time, cal *Calendar) MerchWeek {
	return orRetail(cal).WeekOf(date)
}

// FromDateString resolves a YYYY-MM-DD date against cal, or the retail
// calendar if cal is nil.
func FromDateString(dateStr string, cal *Calendar) (MerchWeek, error) {
	date, err := ParseDateString(dateStr)
	if err != nil {
		return MerchWeek{}, err
	}
	return FromDate(date, cal), nil
}

// Today resolves the current local date.
func Today(cal *Calendar) MerchWeek {
	return FromDate(DateOf(time.Now()), cal)
}

// Find returns the weeks of a Julian month in a merch year.
func Find(year, julianMonth int, cal *Calendar) ([]MerchWeek, error) {
	return orRetail(cal).WeeksForMonth(year, JulianMonth(julianMonth))
}

// FindWeek returns a single week of a Julian month in a merch year.
func FindWeek(year, julianMonth, week int, cal *Calendar) (MerchWeek, error) {
	weeks, err := Find(year, julianMonth, cal)
	if err != nil {
		return MerchWeek{}, err
	}
	if week < 1 || week > len(weeks) {
		return MerchWeek{}, invalidArgument("week must be between 1 and %d, got %d", len(weeks), week)
	}
	return weeks[week-1], nil
}

func orRetail(cal *Calendar) *Calendar {
	if cal == nil {
		return retail
	}
	return cal
}

// Format selects a text rendering of a MerchWeek.
type Format int

const (
	// FormatShort renders "Dec W5".
	FormatShort Format = iota
	// FormatLong renders "2013:48 Dec W5".
	FormatLong
	// FormatElasticsearch renders "2013-12w05".
	FormatElasticsearch
)

var formatNames = map[Format]string{
	FormatShort:         "short",
	FormatLong:          "long",
	FormatElasticsearch: "elasticsearch",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat parses a format name; the empty string is FormatShort.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FormatShort, nil
	}
	for f, name := range formatNames {
		if name == s {
			return f, nil
		}
	}
	return FormatShort, invalidArgument("unknown format %q, expected short, long or elasticsearch", s)
}

// Format renders the week in the requested format.
func (w MerchWeek) Format(f Format) string {
	switch f {
	case FormatElasticsearch:
		return fmt.Sprintf("%04d-%02dw%02d", w.Year, w.Month, w.Week)
	case FormatLong:
		return fmt.Sprintf("%d:%d %s", w.Year, w.YearWeek, w.Format(FormatShort))
	}
	return fmt.Sprintf("%s W%d", monthAbbrev(w.Month), w.Week)
}

func (w MerchWeek) String() string {
	return w.Format(FormatShort)
}
