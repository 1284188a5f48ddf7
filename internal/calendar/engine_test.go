package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(year int, month time.Month, day int) time.Time {
	return Date(year, month, day)
}

func TestNearestSaturday(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"saturday stays", d(2017, time.July, 29), d(2017, time.July, 29)},
		{"sunday rounds back", d(2018, time.January, 28), d(2018, time.January, 27)},
		{"tuesday rounds back", d(2017, time.January, 31), d(2017, time.January, 28)},
		{"wednesday rounds forward", d(2018, time.January, 31), d(2018, time.February, 3)},
		{"friday rounds forward", d(2014, time.January, 31), d(2014, time.February, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NearestSaturday(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, time.Saturday, got.Weekday())
		})
	}
}

func TestYearAnchor_Date(t *testing.T) {
	assert.Equal(t, d(2018, time.January, 31), RetailAnchor.Date(2017))
	assert.Equal(t, d(2017, time.July, 31), FiscalAnchor.Date(2017))
	assert.Equal(t, d(2016, time.December, 31), YearAnchor{Month: time.December}.Date(2016))
}

func TestEngine_YearBounds(t *testing.T) {
	retail := NewEngine(RetailAnchor)
	fiscal := NewEngine(FiscalAnchor)

	assert.Equal(t, d(2017, time.January, 28), retail.EndOfYear(2016))
	assert.Equal(t, d(2018, time.February, 3), retail.EndOfYear(2017))
	assert.Equal(t, d(2019, time.February, 2), retail.EndOfYear(2018))
	assert.Equal(t, d(2020, time.February, 1), retail.EndOfYear(2019))
	assert.Equal(t, d(2017, time.January, 29), retail.StartOfYear(2017))
	assert.Equal(t, d(2018, time.February, 4), retail.StartOfYear(2018))

	assert.Equal(t, d(2017, time.July, 29), fiscal.EndOfYear(2017))
	assert.Equal(t, d(2018, time.July, 28), fiscal.EndOfYear(2018))
	assert.Equal(t, d(2019, time.August, 3), fiscal.EndOfYear(2019))
	assert.Equal(t, d(2020, time.August, 1), fiscal.EndOfYear(2020))
	assert.Equal(t, d(2024, time.August, 3), fiscal.EndOfYear(2024))
	assert.Equal(t, d(2025, time.August, 2), fiscal.EndOfYear(2025))
	assert.Equal(t, d(2017, time.July, 30), fiscal.StartOfYear(2018))
	assert.Equal(t, d(2018, time.July, 29), fiscal.StartOfYear(2019))
	assert.Equal(t, d(2019, time.August, 4), fiscal.StartOfYear(2020))
	assert.Equal(t, d(2023, time.July, 30), fiscal.StartOfYear(2024))
	assert.Equal(t, d(2024, time.August, 4), fiscal.StartOfYear(2025))
}

func TestEngine_WeeksInYear(t *testing.T) {
	retail := NewEngine(RetailAnchor)
	fiscal := NewEngine(FiscalAnchor)

	for year, want := range map[int]int{2012: 53, 2013: 52, 2017: 53, 2018: 52, 2019: 52, 2020: 52, 2023: 53} {
		assert.Equal(t, want, retail.WeeksInYear(year), "retail %d", year)
	}
	for year, want := range map[int]int{
		2013: 53, 2014: 52, 2015: 52, 2016: 52, 2017: 52, 2018: 52,
		2019: 53, 2020: 52, 2024: 53, 2025: 52,
	} {
		assert.Equal(t, want, fiscal.WeeksInYear(year), "fiscal %d", year)
	}
}

func TestEngine_Quarters(t *testing.T) {
	retail := NewEngine(RetailAnchor)
	assert.Equal(t, d(2019, time.May, 5), retail.StartOfQuarter(2019, 2))
	assert.Equal(t, d(2019, time.August, 4), retail.StartOfQuarter(2019, 3))
	assert.Equal(t, d(2019, time.November, 3), retail.StartOfQuarter(2019, 4))
	assert.Equal(t, d(2017, time.April, 29), retail.EndOfQuarter(2017, 1))
	assert.Equal(t, d(2018, time.May, 5), retail.EndOfQuarter(2018, 1))
	assert.Equal(t, d(2019, time.August, 3), retail.EndOfQuarter(2019, 2))
	assert.Equal(t, d(2019, time.November, 2), retail.EndOfQuarter(2019, 3))
	assert.Equal(t, d(2020, time.February, 1), retail.EndOfQuarter(2019, 4))

	fiscal := NewEngine(FiscalAnchor)
	assert.Equal(t, d(2017, time.July, 30), fiscal.StartOfQuarter(2018, 1))
	assert.Equal(t, d(2018, time.April, 29), fiscal.StartOfQuarter(2018, 4))
	assert.Equal(t, d(2018, time.October, 28), fiscal.StartOfQuarter(2019, 2))
	assert.Equal(t, d(2019, time.January, 27), fiscal.StartOfQuarter(2019, 3))
	assert.Equal(t, d(2020, time.May, 3), fiscal.StartOfQuarter(2020, 4))
	assert.Equal(t, d(2017, time.October, 28), fiscal.EndOfQuarter(2018, 1))
	assert.Equal(t, d(2018, time.July, 28), fiscal.EndOfQuarter(2018, 4))
	assert.Equal(t, d(2018, time.October, 27), fiscal.EndOfQuarter(2019, 1))
	assert.Equal(t, d(2019, time.January, 26), fiscal.EndOfQuarter(2019, 2))
	assert.Equal(t, d(2019, time.April, 27), fiscal.EndOfQuarter(2019, 3))
	assert.Equal(t, d(2020, time.August, 1), fiscal.EndOfQuarter(2020, 4))
}

func TestEngine_Months(t *testing.T) {
	retail := NewEngine(RetailAnchor)
	want2014 := []time.Time{
		d(2014, time.February, 2), d(2014, time.March, 2), d(2014, time.April, 6),
		d(2014, time.May, 4), d(2014, time.June, 1), d(2014, time.July, 6),
		d(2014, time.August, 3), d(2014, time.August, 31), d(2014, time.October, 5),
		d(2014, time.November, 2), d(2014, time.November, 30), d(2015, time.January, 4),
	}
	for m, want := range want2014 {
		assert.Equal(t, want, retail.StartOfMonth(2014, m+1), "retail 2014 month %d", m+1)
	}

	fiscal := NewEngine(FiscalAnchor)
	want2019 := []time.Time{
		d(2018, time.July, 29), d(2018, time.August, 26), d(2018, time.September, 30),
		d(2018, time.October, 28), d(2018, time.November, 25), d(2018, time.December, 30),
		d(2019, time.January, 27), d(2019, time.February, 24), d(2019, time.March, 31),
		d(2019, time.April, 28), d(2019, time.May, 26), d(2019, time.June, 30),
	}
	for m, want := range want2019 {
		assert.Equal(t, want, fiscal.StartOfMonth(2019, m+1), "fiscal 2019 month %d", m+1)
	}
	assert.Equal(t, d(2017, time.August, 26), fiscal.EndOfMonth(2018, 1))
	assert.Equal(t, d(2018, time.August, 25), fiscal.EndOfMonth(2019, 1))
	assert.Equal(t, d(2019, time.August, 31), fiscal.EndOfMonth(2020, 1))
	assert.Equal(t, d(2020, time.August, 1), fiscal.EndOfMonth(2020, 12))
}

func TestEngine_Weeks(t *testing.T) {
	retail := NewEngine(RetailAnchor)
	assert.Equal(t, d(2018, time.February, 3), retail.EndOfWeek(2017, 12, 5))
	assert.Equal(t, d(2017, time.February, 4), retail.EndOfWeek(2017, 1, 1))

	fiscal := NewEngine(FiscalAnchor)
	assert.Equal(t, d(2016, time.July, 31), fiscal.StartOfWeek(2017, 1, 1))
	assert.Equal(t, d(2017, time.January, 7), fiscal.EndOfWeek(2017, 6, 1))
	assert.Equal(t, d(2018, time.January, 27), fiscal.EndOfWeek(2018, 6, 4))
	assert.Equal(t, d(2019, time.May, 18), fiscal.EndOfWeek(2019, 10, 3))
	assert.Equal(t, d(2019, time.August, 3), fiscal.EndOfWeek(2019, 12, 5))
	assert.Equal(t, d(2019, time.October, 5), fiscal.EndOfWeek(2020, 2, 5))
}

func TestEngine_Contiguity(t *testing.T) {
	for _, anchor := range []YearAnchor{RetailAnchor, FiscalAnchor} {
		e := NewEngine(anchor)
		for year := 1990; year <= 2060; year++ {
			start, end := e.StartOfYear(year), e.EndOfYear(year)
			require.Equal(t, addDays(e.EndOfYear(year-1), 1), start)
			span := daysBetween(start, end) + 1
			require.Contains(t, []int{364, 371}, span, "year %d anchor %+v", year, anchor)
			require.Equal(t, span/daysPerWeek, e.WeeksInYear(year))
			require.Equal(t, time.Sunday, start.Weekday())

			require.Equal(t, start, e.StartOfMonth(year, 1))
			for m := 1; m < 12; m++ {
				require.Equal(t, e.StartOfMonth(year, m+1), addDays(e.EndOfMonth(year, m), 1))
				require.Contains(t, []int{4, 5}, e.WeeksInMonth(year, m))
			}
			require.Equal(t, end, e.EndOfMonth(year, 12))
			require.Contains(t, []int{4, 5}, e.WeeksInMonth(year, 12))
		}
	}
}

func TestEngine_FourFiveFour(t *testing.T) {
	e := NewEngine(RetailAnchor)
	var got []int
	for m := 1; m <= 12; m++ {
		got = append(got, e.WeeksInMonth(2014, m))
	}
	assert.Equal(t, []int{4, 5, 4, 4, 5, 4, 4, 5, 4, 4, 5, 4}, got)
	assert.Equal(t, 5, e.WeeksInMonth(2012, 12))
}
