package commands

import (
	"drinkdays/internal/services"
	"drinkdays/internal/structures"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"time"
)

func NewStatsCmd(flags *structures.CliFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print journal statistics as JSON",
	}

	now := time.Now()
	var (
		year   int
		month  int
		offset int
	)

	monthCmd := &cobra.Command{
		Use:   "month",
		Short: "Summary of one calendar month",
		Args:  cobra.NoArgs,
		RunE: withJournal(flags, func(journal services.JournalServiceInterface) (any, error) {
			return journal.MonthSummary(year, time.Month(month))
		}),
	}
	monthCmd.Flags().IntVar(&year, "year", now.Year(), "Year")
	monthCmd.Flags().IntVar(&month, "month", int(now.Month()), "Month, 1-12")

	yearCmd := &cobra.Command{
		Use:   "year",
		Short: "Summary of one year with a per-month breakdown",
		Args:  cobra.NoArgs,
		RunE: withJournal(flags, func(journal services.JournalServiceInterface) (any, error) {
			return journal.YearSummary(year)
		}),
	}
	yearCmd.Flags().IntVar(&year, "year", now.Year(), "Year")

	weekCmd := &cobra.Command{
		Use:   "week",
		Short: "Summary of a Monday-Sunday week",
		Args:  cobra.NoArgs,
		RunE: withJournal(flags, func(journal services.JournalServiceInterface) (any, error) {
			return journal.WeekSummary(offset)
		}),
	}
	weekCmd.Flags().IntVar(&offset, "offset", 0, "Weeks relative to the current one, negative for the past")

	streaksCmd := &cobra.Command{
		Use:   "streaks",
		Short: "Current and longest sober streaks",
		Args:  cobra.NoArgs,
		RunE: withJournal(flags, func(journal services.JournalServiceInterface) (any, error) {
			return journal.Streaks()
		}),
	}

	weekdaysCmd := &cobra.Command{
		Use:   "weekdays",
		Short: "Drinking days per weekday",
		Args:  cobra.NoArgs,
		RunE: withJournal(flags, func(journal services.JournalServiceInterface) (any, error) {
			return journal.Weekdays()
		}),
	}

	cmd.AddCommand(monthCmd, yearCmd, weekCmd, streaksCmd, weekdaysCmd)
	return cmd
}

func withJournal(flags *structures.CliFlags, query func(services.JournalServiceInterface) (any, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		journal, cleanup, err := restoredJournal(cmd, flags)
		if err != nil {
			return err
		}
		defer cleanup()

		result, err := query(journal)
		if err != nil {
			return err
		}
		return printJSON(cmd, result)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(append(out, '\n'))
	return err
}
