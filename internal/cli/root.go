package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/moodwheel/internal/cli/formatter"
	"github.com/alexanderramin/moodwheel/internal/config"
	"github.com/alexanderramin/moodwheel/internal/service"
	"github.com/spf13/cobra"
)

// OpenFunc builds a CheckInService from the resolved configuration. The
// returned close function releases the underlying store.
type OpenFunc func(cfg config.Config) (service.CheckInService, func() error, error)

// App holds the configuration and services used by CLI commands.
type App struct {
	Config config.Config

	// CheckIns is opened lazily from Config by Open unless set up front.
	CheckIns service.CheckInService
	Open     OpenFunc

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	// Pick asks the user to choose one label. Nil uses a huh select form.
	Pick func(title string, options []string) (string, error)

	closer func() error
}

// connect opens the check-in service if it is not open yet.
func (a *App) connect() error {
	if a.CheckIns != nil {
		return nil
	}
	if a.Open == nil {
		return errors.New("no check-in store configured")
	}
	svc, closer, err := a.Open(a.Config)
	if err != nil {
		return err
	}
	a.CheckIns = svc
	a.closer = closer
	return nil
}

// Close releases the store opened by connect.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer()
	a.closer = nil
	return err
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "moodwheel" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "moodwheel",
		Short:         "Name what you feel, one ring of the emotion wheel at a time",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.connect()
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return app.Close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.interactive() {
				return runTUI(cmd.Context(), app)
			}
			if err := resume(cmd.Context(), app); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), currentStatus(app))
			return nil
		},
	}

	bindStoreFlags(root.PersistentFlags(), &app.Config)

	root.AddCommand(
		newOptionsCmd(app),
		newChooseCmd(app),
		newStatusCmd(app),
		newSummaryCmd(app),
		newRestartCmd(app),
		newHistoryCmd(app),
		newWheelCmd(app),
		newCheckInCmd(app),
	)

	return root
}

// Execute runs root and releases the store opened for app. Cobra skips
// PersistentPostRunE when a command fails, so the close happens here too.
func Execute(ctx context.Context, root *cobra.Command, app *App) (err error) {
	defer func() {
		err = errors.Join(err, app.Close())
	}()
	return root.ExecuteContext(ctx)
}

// resume rehydrates the persisted walk for one-shot commands.
func resume(ctx context.Context, app *App) error {
	if err := app.CheckIns.Resume(ctx); err != nil {
		return fmt.Errorf("resuming check-in: %w", err)
	}
	return nil
}

func currentStatus(app *App) string {
	svc := app.CheckIns
	out := formatter.FormatStatus(svc.State(), svc.Selection(), svc.Breadcrumbs())
	if opts := svc.Options(); len(opts) > 0 {
		out += "\n" + formatter.FormatOptions(svc.State(), opts, nil)
	}
	return out
}
