package cli

import (
	"github.com/alexanderramin/moodwheel/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// summaryView shows the closing message of a finished walk.
type summaryView struct {
	state *SharedState
}

func newSummaryView(state *SharedState) *summaryView {
	return &summaryView{state: state}
}

func (v *summaryView) ID() ViewID    { return ViewSummary }
func (v *summaryView) Title() string { return "Summary" }

func (v *summaryView) ShortHelp() []key.Binding {
	return []key.Binding{keyRestart, keyQuit}
}

func (v *summaryView) Init() tea.Cmd { return nil }

func (v *summaryView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }

func (v *summaryView) View() string {
	svc := v.state.App.CheckIns
	res, err := svc.Summary()
	if err != nil {
		return "\n  " + formatter.StyleRed.Render(err.Error()) + "\n"
	}
	return "\n" + formatter.FormatSummary(res, svc.Selection()) + "\n"
}
