package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/merch-calendar/internal/calendar"
)

var (
	weekVerbose bool

	weekCmd = cobra.Command{
		Use:   "week [DATE]",
		Short: "Print the merch week of a date, today by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := selectedCalendar()
			if err != nil {
				return err
			}
			format, err := selectedFormat()
			if err != nil {
				return err
			}

			week := calendar.Today(cal)
			if len(args) == 1 {
				if week, err = calendar.FromDateString(args[0], cal); err != nil {
					return err
				}
			}
			printWeek(cmd.OutOrStdout(), week, format, weekVerbose)
			return nil
		},
	}
)

func init() {
	weekCmd.Flags().BoolVarP(&weekVerbose, "verbose", "v", false,
		"print year, month and week boundaries")
	rootCmd.AddCommand(&weekCmd)
}

func printWeek(w io.Writer, week calendar.MerchWeek, format calendar.Format, verbose bool) {
	fmt.Fprintln(w, week.Format(format))
	if !verbose {
		return
	}
	fmt.Fprintf(w, "  calendar: %s\n", week.Calendar)
	fmt.Fprintf(w, "  quarter:  %d (%s)\n", week.Quarter, week.Season)
	fmt.Fprintf(w, "  year:     %s .. %s\n",
		calendar.FormatDate(week.StartOfYear), calendar.FormatDate(week.EndOfYear))
	fmt.Fprintf(w, "  month:    %d, %s .. %s\n", week.MerchMonth,
		calendar.FormatDate(week.StartOfMonth), calendar.FormatDate(week.EndOfMonth))
	fmt.Fprintf(w, "  week:     %s .. %s\n",
		calendar.FormatDate(week.StartOfWeek), calendar.FormatDate(week.EndOfWeek))
}
