package commands

import (
	"drinkdays/internal/calendar"
	"drinkdays/internal/models"
	"drinkdays/internal/structures"
	"fmt"
	"github.com/spf13/cobra"
	"time"
)

func NewRecordCmd(flags *structures.CliFlags) *cobra.Command {
	var input models.RecordInput

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record or replace one day",
		Long: `Record a day in the journal. A day that already has a record is
replaced in place.

Examples:
  drinkdays record --amount 3
  drinkdays record --date 2024-05-10 --amount 1 --unit bottle --note "team dinner"
  drinkdays record --date 2024-05-11 --drank=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if input.Date == "" {
				input.Date = calendar.Today(time.Now()).Key()
			}

			journal, cleanup, err := restoredJournal(cmd, flags)
			if err != nil {
				return err
			}
			defer cleanup()

			rec, err := journal.SaveRecord(input)
			if err != nil {
				return fmt.Errorf("saving %s: %w", input.Date, err)
			}
			return printJSON(cmd, rec)
		},
	}

	cmd.Flags().StringVar(&input.Date, "date", "", "Day to record as YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&input.Drank, "drank", true, "Whether it was a drinking day")
	cmd.Flags().Float64Var(&input.Amount, "amount", 0, "Amount drunk, in --unit")
	cmd.Flags().StringVar(&input.Unit, "unit", string(models.UnitGlass), "glass or bottle")
	cmd.Flags().StringVar(&input.Note, "note", "", "Free-form note")

	return cmd
}
