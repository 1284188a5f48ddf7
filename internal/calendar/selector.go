package calendar

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/datetime"
)

type selectorKind int

const (
	selectNone selectorKind = iota
	selectJulian
	selectMerch
)

// MonthSelector names a month either by its Julian (Gregorian) number or
// by its merch number within a calendar variant. The zero value selects
// nothing and is rejected by Calendar.ResolveMonth.
type MonthSelector struct {
	kind  selectorKind
	month int
}

// JulianMonth selects a month by its Gregorian number, 1 = January.
func JulianMonth(month int) MonthSelector {
	return MonthSelector{kind: selectJulian, month: month}
}

// MerchMonth selects a month by its merch number, 1 = first month of the
// merch year.
func MerchMonth(month int) MonthSelector {
	return MonthSelector{kind: selectMerch, month: month}
}

// IsMerch reports whether the selector holds a merch month.
func (s MonthSelector) IsMerch() bool {
	return s.kind == selectMerch
}

// Month returns the raw month number held by the selector.
func (s MonthSelector) Month() int {
	return s.month
}

func (s MonthSelector) String() string {
	switch s.kind {
	case selectJulian:
		return fmt.Sprintf("julian:%d", s.month)
	case selectMerch:
		return fmt.Sprintf("merch:%d", s.month)
	}
	return "none"
}

// ParseMonthSelector parses the text form of a month selector:
//
//	5, julian:5, month:5   Julian month 5 (May)
//	merch:4                merch month 4
//	May, sept, December    Julian month by English name or prefix
//
// A bare number is always a Julian month. Range checks are left to
// Calendar.ResolveMonth.
func ParseMonthSelector(val string) (MonthSelector, error) {
	val = strings.TrimSpace(val)
	if val == "" {
		return MonthSelector{}, invalidArgument("empty month")
	}
	if prefix, num, ok := strings.Cut(val, ":"); ok {
		n, err := strconv.Atoi(num)
		if err != nil {
			return MonthSelector{}, invalidArgument("month %q: %v", val, err)
		}
		switch strings.ToLower(prefix) {
		case "julian", "julian_month", "month":
			return JulianMonth(n), nil
		case "merch", "merch_month":
			return MerchMonth(n), nil
		}
		return MonthSelector{}, invalidArgument("unknown month selector %q", prefix)
	}
	if n, err := strconv.Atoi(val); err == nil {
		return JulianMonth(n), nil
	}
	m, err := datetime.ParseMonth(val)
	if err != nil {
		return MonthSelector{}, invalidArgument("month %q: %v", val, err)
	}
	return JulianMonth(int(m)), nil
}
