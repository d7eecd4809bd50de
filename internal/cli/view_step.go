package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/moodwheel/internal/cli/formatter"
	"github.com/alexanderramin/moodwheel/internal/wizard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// stepView lists the options offered at the current ring of the wheel.
type stepView struct {
	state   *SharedState
	step    wizard.State
	options []string
	cursor  int
	offset  int
}

// stepHeaderLines is the space the prompt takes above the option list.
const stepHeaderLines = 4

func newStepView(state *SharedState) *stepView {
	svc := state.App.CheckIns
	return &stepView{
		state:   state,
		step:    svc.State(),
		options: svc.Options(),
	}
}

func (v *stepView) ID() ViewID    { return ViewStep }
func (v *stepView) Title() string { return formatter.StepPrompt(v.step) }

func (v *stepView) ShortHelp() []key.Binding {
	return []key.Binding{keyChoose, keyDigit, keyRestart, keyQuit}
}

func (v *stepView) Init() tea.Cmd { return nil }

func (v *stepView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch {
	case key.Matches(keyMsg, keyUp):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(keyMsg, keyDown):
		if v.cursor < len(v.options)-1 {
			v.cursor++
		}
	case key.Matches(keyMsg, keyChoose):
		if v.cursor < len(v.options) {
			return v, v.choose(v.options[v.cursor])
		}
	case key.Matches(keyMsg, keyDigit):
		n, _ := strconv.Atoi(keyMsg.String())
		if n >= 1 && n <= len(v.options) {
			v.cursor = n - 1
			return v, v.choose(v.options[v.cursor])
		}
	}
	v.offset, _ = v.window()
	return v, nil
}

// window returns the range of options that fits the content area while
// keeping the cursor visible. Without a known height every option shows.
func (v *stepView) window() (start, end int) {
	n := len(v.options)
	if v.state.Height <= 0 {
		return 0, n
	}
	rows := max(v.state.ContentHeight()-stepHeaderLines, 1)
	if n <= rows {
		return 0, n
	}
	start = min(v.offset, n-rows, v.cursor)
	start = max(start, v.cursor-rows+1)
	return start, start + rows
}

// choose advances the walk and swaps this view for the next step. A failed
// check-in recording still moves on to the summary.
func (v *stepView) choose(label string) tea.Cmd {
	step, err := v.state.App.CheckIns.Choose(v.state.Ctx, label)
	if err != nil && (errors.Is(err, wizard.ErrInvalidChoice) || errors.Is(err, wizard.ErrInvalidState)) {
		return notice(formatter.StyleRed.Render(err.Error()))
	}
	msg := replaceViewMsg{view: walkView(v.state)}
	if err != nil && step.State == wizard.Summary {
		msg.notice = formatter.StyleRed.Render("Not saved to history: " + err.Error())
	}
	return func() tea.Msg { return msg }
}

func (v *stepView) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + formatter.StyleHeader.Render(strings.ToUpper(formatter.StepPrompt(v.step))) + "\n")
	if sel := v.state.App.CheckIns.Selection(); !sel.IsEmpty() {
		path := strings.Join(nonEmpty(sel.Core, sel.Middle), " › ")
		b.WriteString("  " + formatter.Dim("from ") + formatter.Bold(path) + "\n")
	}
	b.WriteString("\n")

	start, end := v.window()
	for i := start; i < end; i++ {
		opt := v.options[i]
		cursor := "  "
		style := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			style = formatter.StyleBold
		}
		label := style.Render(opt)
		if hex, ok := v.state.Colors[opt]; ok {
			label = formatter.Swatch(hex) + " " + label
		}
		keyHint := formatter.Dim(fmt.Sprintf("[%d]", i+1))
		fmt.Fprintf(&b, "%s%s  %s\n", cursor, label, keyHint)
	}

	return b.String()
}

func nonEmpty(labels ...string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
