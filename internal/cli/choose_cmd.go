package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/alexanderramin/moodwheel/internal/cli/formatter"
	"github.com/alexanderramin/moodwheel/internal/wheel"
	"github.com/alexanderramin/moodwheel/internal/wizard"
	"github.com/spf13/cobra"
)

// maxSuggestDistance is the largest edit distance still offered as a typo fix.
const maxSuggestDistance = 2

func newOptionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "options [core [middle]]",
		Short: "List the labels offered on a ring of the wheel",
		Long: `Without arguments lists the core emotions. Given a core, lists its
middle emotions; given a core and one of its middles, lists the outer ones.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, opts, err := optionsFor(app.CheckIns.Tree(), args)
			if err != nil {
				return err
			}
			var colors map[string]string
			if state == wizard.AwaitingCore {
				if colors, err = app.CheckIns.Palette(cmd.Context()); err != nil {
					return err
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOptions(state, opts, colors))
			return nil
		},
	}
}

// optionsFor resolves the option list named by args without touching the walk.
func optionsFor(tree *wheel.Tree, args []string) (wizard.State, []string, error) {
	switch len(args) {
	case 0:
		opts, err := tree.OptionsFor(wheel.Core, "")
		return wizard.AwaitingCore, opts, err
	case 1:
		opts, err := tree.OptionsFor(wheel.Middle, args[0])
		return wizard.AwaitingMiddle, opts, err
	default:
		middles, err := tree.OptionsFor(wheel.Middle, args[0])
		if err != nil {
			return wizard.AwaitingOuter, nil, err
		}
		if !slices.Contains(middles, args[1]) {
			return wizard.AwaitingOuter, nil, fmt.Errorf("%q is not under %q: %w", args[1], args[0], wheel.ErrLookup)
		}
		opts, err := tree.OptionsFor(wheel.Outer, args[1])
		return wizard.AwaitingOuter, opts, err
	}
}

func newChooseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "choose <label>",
		Short: "Pick a label and advance the saved check-in one step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := resume(ctx, app); err != nil {
				return err
			}
			out, err := chooseAndRender(ctx, app, args[0])
			fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
}

// chooseAndRender advances the walk and renders what comes next. A failure
// to record the finished check-in still renders the summary.
func chooseAndRender(ctx context.Context, app *App, label string) (string, error) {
	svc := app.CheckIns
	offered := svc.Options()
	step, err := svc.Choose(ctx, label)
	switch {
	case errors.Is(err, wizard.ErrInvalidChoice):
		if guess, ok := closestOption(label, offered); ok {
			return "", fmt.Errorf("%w\ndid you mean %q?", err, guess)
		}
		return "", fmt.Errorf("%w\nchoose one of: %s", err, strings.Join(offered, ", "))
	case errors.Is(err, wizard.ErrInvalidState):
		return "", fmt.Errorf("%w\nrun 'moodwheel restart' to begin a new check-in", err)
	}
	if step.State != wizard.Summary {
		return formatter.FormatOptions(step.State, step.Options, nil), err
	}
	res, sumErr := svc.Summary()
	if sumErr != nil {
		return "", errors.Join(err, sumErr)
	}
	return formatter.FormatSummary(res, svc.Selection()) + "\n", err
}

// closestOption returns the offered label nearest to label, ignoring case,
// when it is within maxSuggestDistance edits.
func closestOption(label string, offered []string) (string, bool) {
	best, bestDist := "", maxSuggestDistance+1
	for _, opt := range offered {
		d := levenshtein.ComputeDistance(strings.ToLower(label), strings.ToLower(opt))
		if d < bestDist {
			best, bestDist = opt, d
		}
	}
	return best, best != ""
}

func newRestartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "restart",
		Short: "Clear the saved selection and start over",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.CheckIns.Restart(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("Selection cleared."))
			return nil
		},
	}
}
