package wheel

import (
	"errors"
	"fmt"
	"slices"
)

// ErrLookup indicates a key that does not exist in the layer being queried.
var ErrLookup = errors.New("label not found in wheel")

// ErrInvalidTree indicates a wheel definition that violates a structural invariant.
var ErrInvalidTree = errors.New("invalid wheel definition")

// Level identifies one of the three layers of the wheel.
type Level int

const (
	Core Level = iota
	Middle
	Outer
)

func (l Level) String() string {
	switch l {
	case Core:
		return "core"
	case Middle:
		return "middle"
	case Outer:
		return "outer"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Definition is the raw, mutable form of a wheel. It is the shape read from
// wheel files and is only ever turned into a Tree through New.
type Definition struct {
	Core   []string            `yaml:"core"`
	Middle map[string][]string `yaml:"middle"`
	Outer  map[string][]string `yaml:"outer"`
	Advice map[string]string   `yaml:"advice"`
}

// Tree is an immutable three-level lookup structure. Build one with New or
// Default; the zero value is empty and offers no options.
type Tree struct {
	core   []string
	middle map[string][]string
	outer  map[string][]string
	advice map[string]string
}

// New validates def and copies it into a Tree. Later changes to def do not
// affect the returned tree.
func New(def Definition) (*Tree, error) {
	if err := Validate(def); err != nil {
		return nil, err
	}
	t := &Tree{
		core:   slices.Clone(def.Core),
		middle: make(map[string][]string, len(def.Middle)),
		outer:  make(map[string][]string, len(def.Outer)),
		advice: make(map[string]string, len(def.Advice)),
	}
	for k, v := range def.Middle {
		t.middle[k] = slices.Clone(v)
	}
	for k, v := range def.Outer {
		t.outer[k] = slices.Clone(v)
	}
	for k, v := range def.Advice {
		t.advice[k] = v
	}
	return t, nil
}

// Definition returns a copy of the tree in its raw form.
func (t *Tree) Definition() Definition {
	def := Definition{
		Core:   slices.Clone(t.core),
		Middle: make(map[string][]string, len(t.middle)),
		Outer:  make(map[string][]string, len(t.outer)),
		Advice: make(map[string]string, len(t.advice)),
	}
	for k, v := range t.middle {
		def.Middle[k] = slices.Clone(v)
	}
	for k, v := range t.outer {
		def.Outer[k] = slices.Clone(v)
	}
	for k, v := range t.advice {
		def.Advice[k] = v
	}
	return def
}

// Validate checks the structural invariants of a definition: unique labels
// per layer, non-empty option lists, every referenced middle label has an
// outer entry, and advice is keyed by core labels only.
func Validate(def Definition) error {
	if len(def.Core) == 0 {
		return fmt.Errorf("%w: no core labels", ErrInvalidTree)
	}
	cores := make(map[string]bool, len(def.Core))
	for _, c := range def.Core {
		if c == "" {
			return fmt.Errorf("%w: empty core label", ErrInvalidTree)
		}
		if cores[c] {
			return fmt.Errorf("%w: duplicate core label %q", ErrInvalidTree, c)
		}
		cores[c] = true
	}

	middles := make(map[string]bool)
	for _, c := range def.Core {
		opts := def.Middle[c]
		if len(opts) == 0 {
			return fmt.Errorf("%w: core %q has no middle options", ErrInvalidTree, c)
		}
		for _, m := range opts {
			if m == "" {
				return fmt.Errorf("%w: empty middle label under %q", ErrInvalidTree, c)
			}
			if middles[m] {
				return fmt.Errorf("%w: duplicate middle label %q", ErrInvalidTree, m)
			}
			middles[m] = true
			if len(def.Outer[m]) == 0 {
				return fmt.Errorf("%w: middle %q has no outer options", ErrInvalidTree, m)
			}
		}
	}
	for c := range def.Middle {
		if !cores[c] {
			return fmt.Errorf("%w: middle options keyed by unknown core %q", ErrInvalidTree, c)
		}
	}

	outers := make(map[string]bool)
	for m, opts := range def.Outer {
		if !middles[m] {
			return fmt.Errorf("%w: outer options keyed by unknown middle %q", ErrInvalidTree, m)
		}
		for _, o := range opts {
			if o == "" {
				return fmt.Errorf("%w: empty outer label under %q", ErrInvalidTree, m)
			}
			if outers[o] {
				return fmt.Errorf("%w: duplicate outer label %q", ErrInvalidTree, o)
			}
			outers[o] = true
		}
	}

	for c := range def.Advice {
		if !cores[c] {
			return fmt.Errorf("%w: advice keyed by unknown core %q", ErrInvalidTree, c)
		}
	}
	return nil
}

// OptionsFor returns the ordered labels offered at level. For Core the key is
// ignored. For Middle the key must be a core label, for Outer a middle label.
func (t *Tree) OptionsFor(level Level, key string) ([]string, error) {
	switch level {
	case Core:
		return slices.Clone(t.core), nil
	case Middle:
		opts, ok := t.middle[key]
		if !ok {
			return nil, fmt.Errorf("middle options for %q: %w", key, ErrLookup)
		}
		return slices.Clone(opts), nil
	case Outer:
		opts, ok := t.outer[key]
		if !ok {
			return nil, fmt.Errorf("outer options for %q: %w", key, ErrLookup)
		}
		return slices.Clone(opts), nil
	default:
		return nil, fmt.Errorf("options for %s: %w", level, ErrLookup)
	}
}

// AdviceFor returns the advisory text for a core label. A missing entry is a
// normal outcome and reports ok=false.
func (t *Tree) AdviceFor(core string) (string, bool) {
	text, ok := t.advice[core]
	return text, ok
}

// Walk visits every label top-down in display order: each core, then each of
// its middles followed by that middle's outers. Returning false stops the walk.
func (t *Tree) Walk(fn func(level Level, label string) bool) {
	for _, c := range t.core {
		if !fn(Core, c) {
			return
		}
		for _, m := range t.middle[c] {
			if !fn(Middle, m) {
				return
			}
			for _, o := range t.outer[m] {
				if !fn(Outer, o) {
					return
				}
			}
		}
	}
}
