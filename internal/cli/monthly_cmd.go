package cli

import (
	"fmt"

	"github.com/alexanderramin/careminder/internal/cli/formatter"
	"github.com/alexanderramin/careminder/internal/recurrence"
	"github.com/spf13/cobra"
)

func newMonthlyCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "List the monthly rules available for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseReference(date, app.location(), app.now())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMonthlyOptions(ref, recurrence.MonthlyAnchors(ref)))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "reference date (YYYY-MM-DD, default today)")
	return cmd
}
