package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/moodwheel/internal/cli/formatter"
	"github.com/alexanderramin/moodwheel/internal/wizard"
	"github.com/spf13/cobra"
)

var errNotInteractive = errors.New("checkin needs an interactive terminal; use 'moodwheel choose' in scripts")

func newCheckInCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "checkin",
		Short: "Run a full check-in with one prompt per ring",
		Long: `Starts a fresh check-in and asks for one label per ring of the wheel,
then prints the summary. Any saved in-progress selection is replaced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			pick := app.Pick
			if pick == nil {
				if !app.interactive() {
					return errNotInteractive
				}
				pick = huhPicker(ctx, app)
			}

			svc := app.CheckIns
			if err := svc.Restart(ctx); err != nil {
				return err
			}
			for svc.State() != wizard.Summary {
				label, err := pick(formatter.StepPrompt(svc.State()), svc.Options())
				if err != nil {
					return err
				}
				if _, err := svc.Choose(ctx, label); err != nil {
					if svc.State() != wizard.Summary {
						return err
					}
					fmt.Fprintln(cmd.ErrOrStderr(), formatter.StyleRed.Render("Error: "+err.Error()))
				}
			}

			res, err := svc.Summary()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSummary(res, svc.Selection()))
			return nil
		},
	}
}

// huhPicker asks for each label with a huh select form. Core options carry
// their palette swatch; a palette failure only drops the swatches.
func huhPicker(ctx context.Context, app *App) func(string, []string) (string, error) {
	return func(title string, options []string) (string, error) {
		var colors map[string]string
		if app.CheckIns.State() == wizard.AwaitingCore {
			colors, _ = app.CheckIns.Palette(ctx)
		}
		var choice string
		if err := selectForm(title, options, colors, &choice).Run(); err != nil {
			return "", err
		}
		return choice, nil
	}
}
