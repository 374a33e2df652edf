package commands

import (
	"drinkdays/internal/di"
	"drinkdays/internal/services"
	"drinkdays/internal/structures"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// openJournal builds a journal for one-shot commands. Replaced in tests.
var openJournal = func(flags *structures.CliFlags) (services.JournalServiceInterface, func(), error) {
	return di.InitJournal(flags)
}

func NewRootCmd() *cobra.Command {
	flags := &structures.CliFlags{}

	cmd := &cobra.Command{
		Use:   "drinkdays",
		Short: "Drink journal with day-level statistics",
		Long: `DrinkDays keeps a one-record-per-day drink journal and reports
monthly, yearly and weekly summaries, streaks and spending.

Run "drinkdays serve" for the local JSON API, or use the record and
stats commands directly.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "config.yml", "Path to the YAML config file")
	cmd.PersistentFlags().BoolVar(&flags.DebugMode, "debug", false, "Mirror logs to stderr")

	cmd.AddCommand(
		NewServeCmd(flags),
		NewRecordCmd(flags),
		NewStatsCmd(flags),
		NewVersionCmd(),
	)

	return cmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

// restoredJournal opens the journal and loads it. A journal that cannot be
// restored is still returned: reads work, writes fail with ErrReadOnly.
func restoredJournal(cmd *cobra.Command, flags *structures.CliFlags) (services.JournalServiceInterface, func(), error) {
	journal, cleanup, err := openJournal(flags)
	if err != nil {
		return nil, nil, fmt.Errorf("opening journal: %w", err)
	}
	if err := journal.Restore(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: journal is read-only: %v\n", err)
	}
	return journal, cleanup, nil
}
