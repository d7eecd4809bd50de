package cli

import (
	"fmt"

	"github.com/alexanderramin/moodwheel/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where the saved check-in stands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := resume(cmd.Context(), app); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), currentStatus(app))
			return nil
		},
	}
}

func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the result of a finished check-in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := resume(cmd.Context(), app); err != nil {
				return err
			}
			res, err := app.CheckIns.Summary()
			if err != nil {
				return fmt.Errorf("%w\nthe check-in is not finished yet; see 'moodwheel status'", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSummary(res, app.CheckIns.Selection()))
			return nil
		},
	}
}
