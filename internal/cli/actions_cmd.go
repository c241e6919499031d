package cli

import (
	"fmt"

	"github.com/alexanderramin/careminder/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newActionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List configured actions and their suggested frequency",
		RunE: func(cmd *cobra.Command, args []string) error {
			actions, err := app.Catalog.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActions(actions))
			return nil
		},
	}
}
