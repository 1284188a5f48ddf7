package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/zapponejosh/merch-calendar/internal/calendar"
)

var (
	calendarName string
	formatName   string

	rootCmd = cobra.Command{
		Use:   "merchcal",
		Short: "Retail 4-5-4 and fiscal merch calendar dates",
		Long: `Resolve dates against the 4-5-4 retail calendar or the fiscal
calendar starting in August.

The calendar defaults to DEFAULT_CALENDAR and the week format to
MERCHCAL_FORMAT, read from the environment or .env.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnvs(cmd)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&calendarName, "calendar", "c",
		string(calendar.KindRetail), "calendar variant: retail or fiscal")
	rootCmd.PersistentFlags().StringVarP(&formatName, "format", "f",
		calendar.FormatLong.String(), "week label format: short, long or elasticsearch")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func loadEnvs(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load merchcal envs: %w", err)
	}

	cfg := struct {
		Calendar string `env:"DEFAULT_CALENDAR"`
		Format   string `env:"MERCHCAL_FORMAT"`
	}{}
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse merchcal envs: %w", err)
	}

	if cfg.Calendar != "" && !cmd.Flags().Changed("calendar") {
		calendarName = strings.ToLower(cfg.Calendar)
	}
	if cfg.Format != "" && !cmd.Flags().Changed("format") {
		formatName = cfg.Format
	}
	return nil
}

func selectedCalendar() (*calendar.Calendar, error) {
	kind, err := calendar.ParseKind(calendarName)
	if err != nil {
		return nil, err
	}
	return calendar.ForKind(kind)
}

func selectedFormat() (calendar.Format, error) {
	return calendar.ParseFormat(formatName)
}
