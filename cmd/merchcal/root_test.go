package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command. Flag values persist between runs, so
// callers always pass --calendar and --format.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestYearCmd(t *testing.T) {
	out, err := execute(t, "year", "2017", "--calendar", "retail", "--format", "long")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "retail 2017: 2017-01-29 .. 2018-02-03, 53 weeks", lines[0])
	// header, blank line and 12 months
	assert.Len(t, lines, 15)
	assert.Contains(t, lines[3], "February")
	assert.Contains(t, lines[14], "January")
	assert.Contains(t, lines[14], "2018-02-03")
}

func TestYearCmd_Fiscal(t *testing.T) {
	out, err := execute(t, "year", "2019", "--calendar", "fiscal", "--format", "long")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "fiscal 2019: 2018-07-29 .. 2019-08-03, 53 weeks\n"), out)
}

func TestYearCmd_InvalidYear(t *testing.T) {
	for _, year := range []string{"abc", "0", "9999"} {
		_, err := execute(t, "year", year, "--calendar", "retail", "--format", "long")
		assert.Error(t, err, year)
	}
}

func TestWeekCmd(t *testing.T) {
	tests := []struct {
		calendar string
		format   string
		date     string
		want     string
	}{
		{"retail", "long", "2014-01-01", "2013:48 Dec W5"},
		{"retail", "short", "2014-01-05", "Jan W1"},
		{"retail", "elasticsearch", "2014-02-02", "2014-02w01"},
		{"fiscal", "elasticsearch", "2019-08-04", "2020-08w01"},
		{"fiscal", "long", "2019-08-01", "2019:53 Jul W5"},
	}

	for _, tt := range tests {
		t.Run(tt.calendar+"/"+tt.date, func(t *testing.T) {
			out, err := execute(t, "week", tt.date, "--calendar", tt.calendar, "--format", tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.SplitN(out, "\n", 2)[0])
		})
	}
}

func TestWeekCmd_Verbose(t *testing.T) {
	out, err := execute(t, "week", "2014-01-01", "--calendar", "retail", "--format", "short", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "year:     2013-02-03 .. 2014-02-01")
	assert.Contains(t, out, "month:    11, 2013-12-01 .. 2014-01-04")
	assert.Contains(t, out, "week:     2013-12-29 .. 2014-01-04")
}

func TestWeekCmd_Errors(t *testing.T) {
	_, err := execute(t, "week", "2014-13-01", "--calendar", "retail", "--format", "long")
	assert.Error(t, err)

	_, err = execute(t, "week", "2014-01-01", "--calendar", "lunar", "--format", "long")
	assert.Error(t, err)

	_, err = execute(t, "week", "2014-01-01", "--calendar", "retail", "--format", "iso")
	assert.Error(t, err)
}

func TestMonthCmd(t *testing.T) {
	out, err := execute(t, "month", "2014", "apr", "--calendar", "retail", "--format", "short")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[1], "Apr W1")
	assert.Contains(t, lines[1], "2014-04-06")
	assert.Contains(t, lines[4], "Apr W4")
	assert.Contains(t, lines[4], "2014-05-03")
}

func TestMonthCmd_MerchSelector(t *testing.T) {
	out, err := execute(t, "month", "2014", "merch:3", "--calendar", "retail", "--format", "short")
	require.NoError(t, err)
	assert.Contains(t, out, "Apr W1")

	_, err = execute(t, "month", "2014", "merch:13", "--calendar", "retail", "--format", "short")
	assert.Error(t, err)
}

func TestMonthsCmd(t *testing.T) {
	out, err := execute(t, "months", "2018-08-01", "2019-07-01", "--calendar", "fiscal", "--format", "long")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "2018-07-29", lines[0])
	assert.Equal(t, "2019-06-30", lines[11])
}

func TestConvertCmd(t *testing.T) {
	tests := []struct {
		calendar string
		kind     string
		month    string
		want     string
	}{
		{"retail", "merch", "1", "2"},
		{"retail", "julian", "1", "12"},
		{"fiscal", "merch", "1", "8"},
		{"fiscal", "julian", "7", "12"},
	}

	for _, tt := range tests {
		out, err := execute(t, "convert", tt.kind, tt.month, "--calendar", tt.calendar, "--format", "long")
		require.NoError(t, err)
		assert.Equal(t, tt.want+"\n", out, "%s %s %s", tt.calendar, tt.kind, tt.month)
	}

	_, err := execute(t, "convert", "merch", "13", "--calendar", "retail", "--format", "long")
	assert.Error(t, err)

	_, err = execute(t, "convert", "lunar", "1", "--calendar", "retail", "--format", "long")
	assert.Error(t, err)
}

func TestOffsetCmd(t *testing.T) {
	out, err := execute(t, "offset", "2019", "--quarters", "-2", "--calendar", "retail", "--format", "long")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "offset -2 year 2019: 2018-08-05 .. 2019-08-03, 52 weeks", lines[0])
	assert.Len(t, lines, 15)

	_, err = execute(t, "offset", "2019", "--quarters", "1", "--calendar", "retail", "--format", "long")
	assert.Error(t, err)
	offsetQuarters = -2
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv("DEFAULT_CALENDAR", "FISCAL")
	t.Setenv("MERCHCAL_FORMAT", "elasticsearch")
	for _, name := range []string{"calendar", "format"} {
		rootCmd.PersistentFlags().Lookup(name).Changed = false
	}

	out, err := execute(t, "week", "2019-08-04")
	require.NoError(t, err)
	assert.Equal(t, "2020-08w01", strings.SplitN(out, "\n", 2)[0])

	out, err = execute(t, "week", "2019-08-04", "--calendar", "retail", "--format", "short")
	require.NoError(t, err)
	assert.Equal(t, "Aug W1", strings.SplitN(out, "\n", 2)[0])
}
