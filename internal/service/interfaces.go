package service

import (
	"context"

	"github.com/alexanderramin/moodwheel/internal/domain"
	"github.com/alexanderramin/moodwheel/internal/wheel"
	"github.com/alexanderramin/moodwheel/internal/wizard"
)

// CheckInService runs one walk through the wheel and owns its persistence.
type CheckInService interface {
	Tree() *wheel.Tree
	State() wizard.State
	Options() []string
	Selection() wizard.Selection
	Breadcrumbs() []wizard.Breadcrumb

	// Resume rehydrates the walk from the persisted selection. Stored state
	// that no longer fits the wheel is discarded.
	Resume(ctx context.Context) error
	// Choose advances the walk. When the walk reaches the summary a check-in
	// is recorded; a recording failure is returned alongside a valid Step.
	Choose(ctx context.Context, label string) (wizard.Step, error)
	Summary() (wizard.Result, error)
	Restart(ctx context.Context) error

	History(ctx context.Context, limit int) ([]*domain.CheckIn, error)
	CoreCounts(ctx context.Context) (map[string]int, error)
	// Palette returns the color for every core label, assigning missing ones.
	Palette(ctx context.Context) (map[string]string, error)
}
