package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{"retail": KindRetail, " Fiscal ": KindFiscal, "RETAIL": KindRetail} {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseKind("gregorian")
	assert.True(t, IsInvalidArgument(err))
}

func TestForKind(t *testing.T) {
	for _, k := range ValidKinds() {
		cal, err := ForKind(k)
		require.NoError(t, err)
		assert.Equal(t, k, cal.Kind())
		assert.Equal(t, string(k), cal.String())
	}
	_, err := ForKind("lunar")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCalendar_MonthConversion(t *testing.T) {
	retail, fiscal := NewRetailCalendar(), NewFiscalCalendar()
	wantRetail := []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 1}
	wantFiscal := []int{8, 9, 10, 11, 12, 1, 2, 3, 4, 5, 6, 7}

	for m := 1; m <= 12; m++ {
		got, err := retail.MerchToJulian(m)
		require.NoError(t, err)
		assert.Equal(t, wantRetail[m-1], got, "retail merch %d", m)

		got, err = fiscal.MerchToJulian(m)
		require.NoError(t, err)
		assert.Equal(t, wantFiscal[m-1], got, "fiscal merch %d", m)
	}

	for _, cal := range []*Calendar{retail, fiscal} {
		for m := 1; m <= 12; m++ {
			j, err := cal.MerchToJulian(m)
			require.NoError(t, err)
			back, err := cal.JulianToMerch(j)
			require.NoError(t, err)
			assert.Equal(t, m, back, "%s merch round trip %d", cal, m)

			mm, err := cal.JulianToMerch(m)
			require.NoError(t, err)
			back, err = cal.MerchToJulian(mm)
			require.NoError(t, err)
			assert.Equal(t, m, back, "%s julian round trip %d", cal, m)
		}
		for _, bad := range []int{0, 13, -1} {
			_, err := cal.MerchToJulian(bad)
			assert.True(t, IsInvalidArgument(err), "%s merch %d", cal, bad)
			_, err = cal.JulianToMerch(bad)
			assert.True(t, IsInvalidArgument(err), "%s julian %d", cal, bad)
			_, err = cal.Season(bad)
			assert.True(t, IsInvalidArgument(err))
			_, err = cal.Quarter(bad)
			assert.True(t, IsInvalidArgument(err))
		}
	}
}

func TestCalendar_Season(t *testing.T) {
	retail, fiscal := NewRetailCalendar(), NewFiscalCalendar()
	for m := 1; m <= 12; m++ {
		rs, err := retail.Season(m)
		require.NoError(t, err)
		fs, err := fiscal.Season(m)
		require.NoError(t, err)
		if m <= 6 {
			assert.Equal(t, SpringSummer, rs)
			assert.Equal(t, FallWinter, fs)
		} else {
			assert.Equal(t, FallWinter, rs)
			assert.Equal(t, SpringSummer, fs)
		}
	}
}

func TestCalendar_SeasonFromDate(t *testing.T) {
	tests := []struct {
		cal  *Calendar
		date string
		want Season
	}{
		{NewRetailCalendar(), "2011-08-06", FallWinter},
		{NewRetailCalendar(), "2011-09-06", FallWinter},
		{NewRetailCalendar(), "2011-12-06", FallWinter},
		{NewRetailCalendar(), "2012-01-06", FallWinter},
		{NewRetailCalendar(), "2011-02-06", SpringSummer},
		{NewRetailCalendar(), "2011-05-06", SpringSummer},
		{NewRetailCalendar(), "2011-07-06", SpringSummer},
		{NewFiscalCalendar(), "2012-08-06", FallWinter},
		{NewFiscalCalendar(), "2012-12-06", FallWinter},
		{NewFiscalCalendar(), "2012-01-06", FallWinter},
		{NewFiscalCalendar(), "2011-02-06", SpringSummer},
		{NewFiscalCalendar(), "2011-07-06", SpringSummer},
	}
	for _, tt := range tests {
		t.Run(tt.cal.String()+"/"+tt.date, func(t *testing.T) {
			w, err := FromDateString(tt.date, tt.cal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, w.Season)
		})
	}
}

func TestCalendar_Quarter(t *testing.T) {
	cal := NewRetailCalendar()
	for m, want := range map[int]int{1: 1, 2: 1, 3: 1, 4: 2, 5: 2, 7: 3, 9: 3, 10: 4, 11: 4, 12: 4} {
		got, err := cal.Quarter(m)
		require.NoError(t, err)
		assert.Equal(t, want, got, "merch %d", m)
	}
}

func TestCalendar_MerchYearFromDate(t *testing.T) {
	retail := NewRetailCalendar()
	tests := map[time.Time]int{
		d(2018, time.January, 24):  2017,
		d(2018, time.February, 3):  2017,
		d(2018, time.February, 4):  2018,
		d(2019, time.February, 2):  2018,
		d(2019, time.February, 3):  2019,
		d(2019, time.December, 31): 2019,
	}
	for date, want := range tests {
		assert.Equal(t, want, retail.MerchYearFromDate(date), FormatDate(date))
	}

	fiscal := NewFiscalCalendar()
	tests = map[time.Time]int{
		d(2018, time.July, 28):   2018,
		d(2018, time.July, 29):   2019,
		d(2019, time.January, 1): 2019,
		d(2019, time.August, 3):  2019,
		d(2019, time.August, 4):  2020,
	}
	for date, want := range tests {
		assert.Equal(t, want, fiscal.MerchYearFromDate(date), FormatDate(date))
	}
}

func TestCalendar_MerchYearContainsDate(t *testing.T) {
	for _, cal := range []*Calendar{NewRetailCalendar(), NewFiscalCalendar()} {
		for date := d(2010, time.January, 1); date.Before(d(2030, time.January, 1)); date = addDays(date, 1) {
			y := cal.MerchYearFromDate(date)
			if date.Before(cal.StartOfYear(y)) || date.After(cal.EndOfYear(y)) {
				t.Fatalf("%s: %s resolved to year %d outside [%s, %s]", cal, FormatDate(date), y,
					FormatDate(cal.StartOfYear(y)), FormatDate(cal.EndOfYear(y)))
			}
		}
	}
}

func TestCalendar_ResolveMonth(t *testing.T) {
	retail := NewRetailCalendar()

	got, err := retail.ResolveMonth(JulianMonth(2))
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = retail.ResolveMonth(MerchMonth(2))
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	for _, sel := range []MonthSelector{{}, JulianMonth(13), MerchMonth(0)} {
		_, err := retail.ResolveMonth(sel)
		assert.True(t, IsInvalidArgument(err), sel.String())
	}

	start, err := retail.StartOfSelectedMonth(2014, JulianMonth(1))
	require.NoError(t, err)
	assert.Equal(t, d(2015, time.January, 4), start)
	end, err := retail.EndOfSelectedMonth(2014, MerchMonth(12))
	require.NoError(t, err)
	assert.Equal(t, d(2015, time.January, 31), end)

	_, err = retail.EndOfSelectedMonth(2014, MonthSelector{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCalendar_WeeksForMonth(t *testing.T) {
	retail := NewRetailCalendar()
	tests := []struct {
		year, julian, want int
	}{
		{2014, 4, 4},
		{2014, 3, 5},
		{2014, 1, 4},
		{2012, 1, 5},
		{2017, 11, 4},
		{2017, 12, 5},
		{2017, 1, 5},
		{2018, 2, 4},
		{2018, 3, 5},
	}
	for _, tt := range tests {
		weeks, err := retail.WeeksForMonth(tt.year, JulianMonth(tt.julian))
		require.NoError(t, err)
		assert.Len(t, weeks, tt.want, "%d-%d", tt.year, tt.julian)
		for i, w := range weeks {
			assert.Equal(t, i+1, w.Week)
			assert.Equal(t, tt.julian, w.Month)
			assert.Equal(t, tt.year, w.Year)
		}
	}

	weeks, err := retail.WeeksForMonth(2014, JulianMonth(1))
	require.NoError(t, err)
	starts := make([]time.Time, 0, len(weeks))
	for _, w := range weeks {
		starts = append(starts, w.StartOfWeek)
		assert.Equal(t, d(2014, time.February, 2), w.StartOfYear)
		assert.Equal(t, d(2015, time.January, 31), w.EndOfYear)
	}
	assert.Equal(t, []time.Time{
		d(2015, time.January, 4), d(2015, time.January, 11),
		d(2015, time.January, 18), d(2015, time.January, 25),
	}, starts)

	weeks, err = retail.WeeksForMonth(2014, MerchMonth(3))
	require.NoError(t, err)
	assert.Len(t, weeks, 4)
	assert.Equal(t, 4, weeks[0].Month)

	_, err = retail.WeeksForMonth(2014, JulianMonth(0))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCalendar_MerchMonthsIn(t *testing.T) {
	retail := NewRetailCalendar()
	got := retail.MerchMonthsIn(d(2014, time.January, 1), d(2014, time.December, 1))
	assert.Equal(t, []time.Time{
		d(2014, time.January, 5), d(2014, time.February, 2), d(2014, time.March, 2),
		d(2014, time.April, 6), d(2014, time.May, 4), d(2014, time.June, 1),
		d(2014, time.July, 6), d(2014, time.August, 3), d(2014, time.August, 31),
		d(2014, time.October, 5), d(2014, time.November, 2), d(2014, time.November, 30),
	}, got)

	got = retail.MerchMonthsIn(d(2014, time.August, 1), d(2014, time.August, 1))
	assert.Equal(t, []time.Time{d(2014, time.August, 3)}, got)

	assert.Empty(t, retail.MerchMonthsIn(d(2014, time.September, 1), d(2014, time.August, 1)))

	fiscal := NewFiscalCalendar()
	got = fiscal.MerchMonthsIn(d(2018, time.August, 1), d(2019, time.July, 1))
	assert.Equal(t, []time.Time{
		d(2018, time.July, 29), d(2018, time.August, 26), d(2018, time.September, 30),
		d(2018, time.October, 28), d(2018, time.November, 25), d(2018, time.December, 30),
		d(2019, time.January, 27), d(2019, time.February, 24), d(2019, time.March, 31),
		d(2019, time.April, 28), d(2019, time.May, 26), d(2019, time.June, 30),
	}, got)
}
