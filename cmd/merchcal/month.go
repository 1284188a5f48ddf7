package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/merch-calendar/internal/calendar"
)

var monthCmd = cobra.Command{
	Use:   "month YEAR MONTH",
	Short: "Print the weeks of a merch month",
	Long: `Print the weeks of a merch month.

MONTH is a Julian month number or name (4, apr, April) or a merch month
written as merch:N.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := parseYear(args[0])
		if err != nil {
			return err
		}
		sel, err := calendar.ParseMonthSelector(args[1])
		if err != nil {
			return err
		}
		cal, err := selectedCalendar()
		if err != nil {
			return err
		}
		format, err := selectedFormat()
		if err != nil {
			return err
		}
		weeks, err := cal.WeeksForMonth(year, sel)
		if err != nil {
			return err
		}
		return printWeeks(cmd.OutOrStdout(), weeks, format)
	},
}

func init() {
	rootCmd.AddCommand(&monthCmd)
}

func printWeeks(w io.Writer, weeks []calendar.MerchWeek, format calendar.Format) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WEEK\tSTART\tEND")
	for _, week := range weeks {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", week.Format(format),
			calendar.FormatDate(week.StartOfWeek),
			calendar.FormatDate(week.EndOfWeek))
	}
	return tw.Flush()
}
