package cli

import (
	"context"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App
	Ctx context.Context

	// Core label colors, loaded once at startup.
	Colors map[string]string

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines) and status bar (2 lines).
func (s *SharedState) ContentHeight() int {
	return max(s.Height-4, 1)
}

// walkView returns the view for the current position in the walk.
func walkView(state *SharedState) View {
	if _, err := state.App.CheckIns.Summary(); err == nil {
		return newSummaryView(state)
	}
	return newStepView(state)
}
