package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/merch-calendar/internal/calendar"
)

var monthsCmd = cobra.Command{
	Use:   "months START END",
	Short: "List the first day of every merch month touched by a date range",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := calendar.ParseDateString(args[0])
		if err != nil {
			return fmt.Errorf("start date: %w", err)
		}
		end, err := calendar.ParseDateString(args[1])
		if err != nil {
			return fmt.Errorf("end date: %w", err)
		}
		cal, err := selectedCalendar()
		if err != nil {
			return err
		}
		for _, m := range cal.MerchMonthsIn(start, end) {
			fmt.Fprintln(cmd.OutOrStdout(), calendar.FormatDate(m))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(&monthsCmd)
}
