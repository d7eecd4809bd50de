package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/moodwheel/internal/cli/formatter"
	"github.com/alexanderramin/moodwheel/internal/wheel"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent finished check-ins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit <= 0 {
				return fmt.Errorf("--limit must be at least 1, got %d", limit)
			}
			checkIns, err := app.CheckIns.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(checkIns, time.Now()))
			return nil
		},
	}

	limitFlag(cmd.Flags(), &limit, app.Config.HistoryLimit)

	return cmd
}

func newWheelCmd(app *App) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "wheel",
		Short: "Print the whole emotion wheel",
		Long: `Prints the wheel as an outline with the current selection marked.
With --yaml prints it in the format accepted by --wheel, as a starting point
for a custom wheel.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asYAML {
				data, err := wheel.Marshal(app.CheckIns.Tree())
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			ctx := cmd.Context()
			if err := resume(ctx, app); err != nil {
				return err
			}
			colors, err := app.CheckIns.Palette(ctx)
			if err != nil {
				return err
			}
			counts, err := app.CheckIns.CoreCounts(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(),
				formatter.FormatWheel(app.CheckIns.Tree(), app.CheckIns.Selection(), colors, counts))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the wheel definition as YAML")

	return cmd
}
