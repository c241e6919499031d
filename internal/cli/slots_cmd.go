package cli

import (
	"fmt"

	"github.com/alexanderramin/careminder/internal/cli/formatter"
	"github.com/alexanderramin/careminder/internal/recurrence"
	"github.com/spf13/cobra"
)

func newSlotsCmd(app *App) *cobra.Command {
	var (
		date    string
		minutes int
	)

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List the start times a daily reminder can use",
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseReference(date, app.location(), app.now())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("minutes") {
				minutes = app.Rule.SlotMinutes
			}
			if cmd.Flags().Changed("minutes") && minutes <= 0 {
				return fmt.Errorf("--minutes must be positive")
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSlots(recurrence.DailySlots(ref, minutes)))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "reference date and time (YYYY-MM-DD HH:MM, default now)")
	cmd.Flags().IntVar(&minutes, "minutes", recurrence.DefaultSlotMinutes, "slot granularity in minutes")
	return cmd
}
