package cli

import (
	"github.com/alexanderramin/moodwheel/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// wizardView wraps a huh.Form as a View on the navigation stack. When the
// form completes it sends a wizardCompleteMsg carrying the done callback's
// command.
type wizardView struct {
	state    *SharedState
	form     *huh.Form
	titleStr string
	done     func() tea.Cmd
}

func newWizardView(state *SharedState, title string, form *huh.Form, done func() tea.Cmd) *wizardView {
	return &wizardView{
		state:    state,
		form:     form,
		titleStr: title,
		done:     done,
	}
}

func (v *wizardView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *wizardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return wizardCompleteMsg{nextCmd: notice(formatter.Dim("Cancelled."))}
		}
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		var doneCmd tea.Cmd
		if v.done != nil {
			doneCmd = v.done()
		}
		return v, func() tea.Msg {
			return wizardCompleteMsg{nextCmd: doneCmd}
		}
	}

	return v, cmd
}

func (v *wizardView) View() string {
	return "\n" + v.form.View()
}

func (v *wizardView) ID() ViewID    { return ViewForm }
func (v *wizardView) Title() string { return v.titleStr }
func (v *wizardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// confirmRestart pushes a confirmation form and restarts the walk if the
// user agrees.
func confirmRestart(state *SharedState) tea.Cmd {
	var confirmed bool
	form := confirmForm("Start over? Your current selection will be cleared.", &confirmed)
	return pushView(newWizardView(state, "Restart", form, func() tea.Cmd {
		if !confirmed {
			return notice(formatter.Dim("Kept the current selection."))
		}
		return restartWalk(state)
	}))
}

// restartWalk clears the walk and shows the first step. The walk restarts
// even when clearing the store fails.
func restartWalk(state *SharedState) tea.Cmd {
	var msg replaceViewMsg
	if err := state.App.CheckIns.Restart(state.Ctx); err != nil {
		msg.notice = formatter.StyleRed.Render(err.Error())
	}
	msg.view = newStepView(state)
	return func() tea.Msg { return msg }
}
