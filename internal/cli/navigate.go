package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// replaceViewMsg replaces the current top view with a new one, optionally
// leaving a notice.
type replaceViewMsg struct {
	view   View
	notice string
}

// noticeMsg shows a transient line under the active view until the next key.
type noticeMsg struct {
	text string
}

// wizardCompleteMsg is sent when a form completes or is cancelled.
// The appModel pops the form view, then runs nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func notice(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text} }
}
