package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var convertCmd = cobra.Command{
	Use:       "convert merch|julian MONTH",
	Short:     "Convert a merch month to its Julian month or back",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"merch", "julian"},
	RunE: func(cmd *cobra.Command, args []string) error {
		month, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("month %q: %w", args[1], err)
		}
		cal, err := selectedCalendar()
		if err != nil {
			return err
		}

		var out int
		switch args[0] {
		case "merch":
			out, err = cal.MerchToJulian(month)
		case "julian":
			out, err = cal.JulianToMerch(month)
		default:
			return fmt.Errorf("unknown month kind %q, expected merch or julian", args[0])
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(&convertCmd)
}
