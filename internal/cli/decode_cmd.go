package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/careminder/internal/cli/formatter"
	"github.com/alexanderramin/careminder/internal/contract"
	"github.com/alexanderramin/careminder/internal/recurrence"
	"github.com/spf13/cobra"
)

func newDecodeCmd(app *App) *cobra.Command {
	var (
		file string
		date string
	)

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Validate a stored frequency payload against a reference date",
		Long: `Read a frequency payload (from --file or stdin), check its shape and
re-check that its anchors are still valid for the reference date.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseReference(date, app.location(), app.now())
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if file != "" {
				fh, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("opening payload: %w", err)
				}
				defer fh.Close()
				in = fh
			}

			payload, err := contract.DecodeFrequency(in)
			if err != nil {
				return err
			}
			rec, err := payload.ToRecurrence()
			if err != nil {
				return err
			}
			if err := app.Rule.Validate(rec, ref); err != nil {
				return err
			}
			if err := recurrence.CheckDateRange(rec, ref); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecurrence(ref, rec, nil))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "payload file (default stdin)")
	cmd.Flags().StringVar(&date, "date", "", "reference date the payload was built for (default now)")
	return cmd
}
