package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/merch-calendar/internal/calendar"
)

var yearCmd = cobra.Command{
	Use:   "year YEAR",
	Short: "Print the months and quarters of a merch year",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := parseYear(args[0])
		if err != nil {
			return err
		}
		cal, err := selectedCalendar()
		if err != nil {
			return err
		}
		return printYear(cmd.OutOrStdout(), cal, year)
	},
}

func init() {
	rootCmd.AddCommand(&yearCmd)
}

func printYear(w io.Writer, cal *calendar.Calendar, year int) error {
	fmt.Fprintf(w, "%s %d: %s .. %s, %d weeks\n\n", cal.Kind(), year,
		calendar.FormatDate(cal.StartOfYear(year)),
		calendar.FormatDate(cal.EndOfYear(year)),
		cal.WeeksInYear(year))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MERCH\tMONTH\tQ\tSEASON\tWEEKS\tSTART\tEND")
	for m := 1; m <= 12; m++ {
		julian, err := cal.MerchToJulian(m)
		if err != nil {
			return err
		}
		quarter, err := cal.Quarter(m)
		if err != nil {
			return err
		}
		season, err := cal.Season(m)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%d\t%s\t%s\n", m, time.Month(julian), quarter, season,
			cal.WeeksInMonth(year, m),
			calendar.FormatDate(cal.StartOfMonth(year, m)),
			calendar.FormatDate(cal.EndOfMonth(year, m)))
	}
	return tw.Flush()
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil || year < 1 || year > 9998 {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return year, nil
}
