package cli

import "github.com/charmbracelet/bubbles/key"

// Global and list key bindings. Views reuse them for ShortHelp.
var (
	keyUp      = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))
	keyDown    = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))
	keyChoose  = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose"))
	keyDigit   = key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "pick"))
	keyRestart = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart"))
	keyQuit    = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
	keyForceQ  = key.NewBinding(key.WithKeys("ctrl+c"))
)
