package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/moodwheel/internal/domain"
	"github.com/alexanderramin/moodwheel/internal/wheel"
	"github.com/alexanderramin/moodwheel/internal/wizard"
)

const crumbSeparator = " › "

// StepPrompt is the heading shown above the options for a wizard state.
func StepPrompt(state wizard.State) string {
	switch state {
	case wizard.AwaitingCore:
		return "Step 1: How are you feeling?"
	case wizard.AwaitingMiddle:
		return "Step 2: Narrow it down"
	case wizard.AwaitingOuter:
		return "Step 3: Name it precisely"
	default:
		return "Summary"
	}
}

// FormatBreadcrumbs renders the step trail. The active step is amber,
// reachable steps use the foreground color and the rest are dimmed.
func FormatBreadcrumbs(crumbs []wizard.Breadcrumb) string {
	parts := make([]string, len(crumbs))
	for i, c := range crumbs {
		switch {
		case c.Active:
			parts[i] = StyleYellowBold.Render(c.Label)
		case c.Reachable:
			parts[i] = StyleFg.Render(c.Label)
		default:
			parts[i] = Dim(c.Label)
		}
	}
	return strings.Join(parts, Dim(crumbSeparator))
}

// FormatOptions renders a numbered option list. Labels with a palette
// entry are prefixed with their swatch.
func FormatOptions(state wizard.State, options []string, colors map[string]string) string {
	var b strings.Builder
	b.WriteString(Header(StepPrompt(state)))
	b.WriteString("\n")
	for i, opt := range options {
		label := opt
		if hex, ok := colors[opt]; ok {
			label = Swatch(hex) + " " + opt
		}
		fmt.Fprintf(&b, "  %s %s\n", Dim(fmt.Sprintf("%d.", i+1)), label)
	}
	return b.String()
}

// SummaryLines returns the plain summary text for a completed walk.
func SummaryLines(res wizard.Result, sel wizard.Selection) []string {
	lines := []string{"You identified: " + res.FinalLabel}
	if res.HasAdvice {
		return append(lines,
			fmt.Sprintf("You indicated a potentially negative emotion: %s.", sel.Core),
			"Suggestion: "+res.Advice,
		)
	}
	return append(lines, "Thank you for exploring your emotions!")
}

// FormatSummary renders the summary box for a completed walk.
func FormatSummary(res wizard.Result, sel wizard.Selection) string {
	lines := SummaryLines(res, sel)
	styled := make([]string, len(lines))
	styled[0] = Bold(lines[0])
	for i, l := range lines[1:] {
		if res.HasAdvice {
			styled[i+1] = StyleYellow.Render(l)
		} else {
			styled[i+1] = StyleGreen.Render(l)
		}
	}
	return RenderBox("Summary", strings.Join(styled, "\n"))
}

// FormatStatus renders the current position in the walk.
func FormatStatus(state wizard.State, sel wizard.Selection, crumbs []wizard.Breadcrumb) string {
	var b strings.Builder
	b.WriteString(FormatBreadcrumbs(crumbs) + "\n\n")
	fmt.Fprintf(&b, "%s  %s\n", Dim("State:"), state.String())
	if sel.IsEmpty() {
		b.WriteString(Dim("No selection yet.") + "\n")
		return b.String()
	}
	for _, f := range []struct{ name, value string }{
		{"Core:  ", sel.Core},
		{"Middle:", sel.Middle},
		{"Outer: ", sel.Outer},
	} {
		if f.value == "" {
			continue
		}
		fmt.Fprintf(&b, "%s %s\n", Dim(f.name), f.value)
	}
	return b.String()
}

// FormatHistory renders recent check-ins as a table.
func FormatHistory(checkIns []*domain.CheckIn, now time.Time) string {
	if len(checkIns) == 0 {
		return Dim("No check-ins yet.") + "\n"
	}
	rows := make([][]string, 0, len(checkIns))
	for _, c := range checkIns {
		advised := ""
		if c.Advised {
			advised = StyleYellow.Render("yes")
		}
		rows = append(rows, []string{
			Dim(TruncID(c.ID)),
			c.Label(),
			advised,
			HumanTimestampFrom(c.CompletedAt, now),
		})
	}
	return RenderTable([]string{"ID", "PATH", "ADVICE", "WHEN"}, rows)
}

// FormatWheel renders the whole tree as an outline. Labels on the current
// selection path are marked; cores carry their swatch and check-in count.
func FormatWheel(tree *wheel.Tree, sel wizard.Selection, colors map[string]string, counts map[string]int) string {
	var items []TreeItem
	var core, middle string
	tree.Walk(func(level wheel.Level, label string) bool {
		item := TreeItem{Title: label, Level: int(level)}
		switch level {
		case wheel.Core:
			core, middle = label, ""
			item.Selected = label == sel.Core
			item.Color = colors[label]
			item.Detail = coreBadge(tree, label, counts[label])
		case wheel.Middle:
			middle = label
			item.Selected = core == sel.Core && label == sel.Middle
		case wheel.Outer:
			item.Selected = core == sel.Core && middle == sel.Middle && label == sel.Outer
		}
		items = append(items, item)
		return true
	})
	markLast(items)
	return RenderTree(items)
}

func coreBadge(tree *wheel.Tree, core string, count int) string {
	var parts []string
	switch {
	case count == 1:
		parts = append(parts, "1 check-in")
	case count > 1:
		parts = append(parts, fmt.Sprintf("%d check-ins", count))
	}
	if _, ok := tree.AdviceFor(core); ok {
		parts = append(parts, "advice")
	}
	return strings.Join(parts, " · ")
}

// markLast sets IsLast on every item with no later sibling.
func markLast(items []TreeItem) {
	for i := range items {
		items[i].IsLast = true
		for _, next := range items[i+1:] {
			if next.Level < items[i].Level {
				break
			}
			if next.Level == items[i].Level {
				items[i].IsLast = false
				break
			}
		}
	}
}
