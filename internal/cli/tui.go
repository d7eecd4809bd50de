package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// runTUI starts the full-screen check-in. The saved selection is resumed
// when the configuration allows it and cleared otherwise.
func runTUI(ctx context.Context, app *App) error {
	if app.Config.Resume {
		if err := resume(ctx, app); err != nil {
			return err
		}
	} else if err := app.CheckIns.Restart(ctx); err != nil {
		return fmt.Errorf("clearing saved selection: %w", err)
	}

	p := tea.NewProgram(newAppModel(ctx, app), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
