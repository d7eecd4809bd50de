// Package wizard drives a single top-down walk through a wheel.
//
// A Controller owns one Selection and derives its State from how many
// selection fields are populated. Rendering and persistence live outside the
// package: presentation reads Options and calls Choose, persistence observes
// the Listener notifications.
package wizard

import (
	"errors"
	"fmt"
	"slices"

	"github.com/alexanderramin/moodwheel/internal/wheel"
)

var (
	// ErrInvalidChoice indicates a label that is not in the currently offered option set.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrInvalidState indicates an operation that the current state forbids.
	ErrInvalidState = errors.New("invalid wizard state")
)

// State is the active step of the walk.
type State int

const (
	AwaitingCore State = iota
	AwaitingMiddle
	AwaitingOuter
	Summary
)

func (s State) String() string {
	switch s {
	case AwaitingCore:
		return "awaiting_core"
	case AwaitingMiddle:
		return "awaiting_middle"
	case AwaitingOuter:
		return "awaiting_outer"
	case Summary:
		return "summary"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Selection records the labels chosen so far. Fields are filled strictly
// top-down; an empty string means not chosen.
type Selection struct {
	Core   string
	Middle string
	Outer  string
}

// IsEmpty reports whether nothing has been chosen.
func (s Selection) IsEmpty() bool {
	return s.Core == "" && s.Middle == "" && s.Outer == ""
}

// Step is the result of a successful Choose.
type Step struct {
	State   State
	Options []string // nil once State is Summary
}

// Result is the closing message data for a completed walk.
type Result struct {
	FinalLabel string
	Advice     string
	HasAdvice  bool
}

// Listener observes selection changes. Implementations must not call back
// into the controller.
type Listener interface {
	OnSelectionChanged(level wheel.Level, label string)
	OnReset()
}

// Controller is the wizard state machine. It is not safe for concurrent use.
type Controller struct {
	tree      *wheel.Tree
	selection Selection
	listener  Listener
}

// NewController creates a controller at AwaitingCore for the given tree.
func NewController(tree *wheel.Tree) *Controller {
	return &Controller{tree: tree}
}

// SetListener replaces the notification target. A nil listener disables notifications.
func (c *Controller) SetListener(l Listener) {
	c.listener = l
}

// State returns the active state.
func (c *Controller) State() State {
	switch {
	case c.selection.Core == "":
		return AwaitingCore
	case c.selection.Middle == "":
		return AwaitingMiddle
	case c.selection.Outer == "":
		return AwaitingOuter
	default:
		return Summary
	}
}

// Selection returns a copy of the labels chosen so far.
func (c *Controller) Selection() Selection {
	return c.selection
}

// Options returns the labels currently offered, or nil in Summary.
func (c *Controller) Options() []string {
	level, key, ok := c.pending()
	if !ok {
		return nil
	}
	opts, err := c.tree.OptionsFor(level, key)
	if err != nil {
		// Unreachable: every recorded label was validated against the tree.
		return nil
	}
	return opts
}

// Choose records label at the pending level and advances one state.
func (c *Controller) Choose(label string) (Step, error) {
	level, err := c.choose(label)
	if err != nil {
		return Step{State: c.State()}, err
	}
	if c.listener != nil {
		c.listener.OnSelectionChanged(level, label)
	}
	return Step{State: c.State(), Options: c.Options()}, nil
}

func (c *Controller) choose(label string) (wheel.Level, error) {
	level, key, ok := c.pending()
	if !ok {
		return 0, fmt.Errorf("choose %q in %s: %w", label, c.State(), ErrInvalidState)
	}
	opts, err := c.tree.OptionsFor(level, key)
	if err != nil {
		return 0, fmt.Errorf("choose %q: %w", label, err)
	}
	if !slices.Contains(opts, label) {
		return 0, fmt.Errorf("%q is not a %s option: %w", label, level, ErrInvalidChoice)
	}

	switch level {
	case wheel.Core:
		c.selection.Core = label
	case wheel.Middle:
		c.selection.Middle = label
	case wheel.Outer:
		c.selection.Outer = label
	}
	return level, nil
}

// Summary returns the closing message data. Only valid in the Summary state.
func (c *Controller) Summary() (Result, error) {
	if c.State() != Summary {
		return Result{}, fmt.Errorf("summary in %s: %w", c.State(), ErrInvalidState)
	}
	advice, ok := c.tree.AdviceFor(c.selection.Core)
	return Result{
		FinalLabel: c.selection.Outer,
		Advice:     advice,
		HasAdvice:  ok,
	}, nil
}

// Restart clears the selection and returns to AwaitingCore from any state.
func (c *Controller) Restart() {
	c.selection = Selection{}
	if c.listener != nil {
		c.listener.OnReset()
	}
}

// Replay rehydrates the controller from a stored selection by choosing each
// populated field in order. No notifications are emitted. On error the
// controller is left at AwaitingCore.
func (c *Controller) Replay(sel Selection) error {
	c.selection = Selection{}
	for _, label := range []string{sel.Core, sel.Middle, sel.Outer} {
		if label == "" {
			break
		}
		if _, err := c.choose(label); err != nil {
			c.selection = Selection{}
			return fmt.Errorf("replaying selection: %w", err)
		}
	}
	return nil
}

// pending returns the level and lookup key for the next choice.
// ok is false in the Summary state.
func (c *Controller) pending() (wheel.Level, string, bool) {
	switch c.State() {
	case AwaitingCore:
		return wheel.Core, "", true
	case AwaitingMiddle:
		return wheel.Middle, c.selection.Core, true
	case AwaitingOuter:
		return wheel.Outer, c.selection.Middle, true
	default:
		return 0, "", false
	}
}
