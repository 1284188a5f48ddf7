package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/merch-calendar/internal/calendar"
)

var (
	offsetQuarters int

	offsetCmd = cobra.Command{
		Use:   "offset YEAR",
		Short: "Print a fiscal year built by shifting the retail calendar by whole quarters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}
			cal, err := calendar.NewOffsetCalendar(offsetQuarters)
			if err != nil {
				return err
			}
			return printOffsetYear(cmd.OutOrStdout(), cal, year)
		},
	}
)

func init() {
	offsetCmd.Flags().IntVar(&offsetQuarters, "quarters", calendar.DefaultQuarterOffset,
		"quarters to shift the retail year by")
	rootCmd.AddCommand(&offsetCmd)
}

func printOffsetYear(w io.Writer, cal *calendar.OffsetCalendar, year int) error {
	fmt.Fprintf(w, "offset %d year %d: %s .. %s, %d weeks\n\n", cal.QuarterOffset(), year,
		calendar.FormatDate(cal.StartOfYear(year)),
		calendar.FormatDate(cal.EndOfYear(year)),
		cal.WeeksInYear(year))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Q\tMERCH\tSTART\tEND")
	for m := 1; m <= 12; m++ {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", (m-1)/3+1, m,
			calendar.FormatDate(cal.StartOfMonth(year, m)),
			calendar.FormatDate(cal.EndOfMonth(year, m)))
	}
	return tw.Flush()
}
