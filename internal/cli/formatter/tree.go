package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem is one label in a rendered wheel outline.
type TreeItem struct {
	Title    string
	Level    int
	IsLast   bool
	Selected bool   // on the current selection path
	Color    string // hex swatch shown before core labels
	Detail   string // right-aligned badge
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// RenderTree renders items as an indented outline. Selected items get an
// amber ▶ marker and detail badges are right-aligned across the tree.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		badge   string
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0
	// open[d] reports whether the ancestor at depth d still has siblings below.
	var open []bool

	for idx, item := range items {
		if item.Level < len(open) {
			open = open[:item.Level]
		}
		var prefix strings.Builder
		if item.Level > 0 {
			for d := 1; d < item.Level; d++ {
				if d < len(open) && open[d] {
					prefix.WriteString(treePipe)
				} else {
					prefix.WriteString(treeBlank)
				}
			}
			if item.IsLast {
				prefix.WriteString(treeCorner)
			} else {
				prefix.WriteString(treeBranch)
			}
		}
		for len(open) <= item.Level {
			open = append(open, false)
		}
		open[item.Level] = !item.IsLast

		title := item.Title
		marker := ""
		if item.Selected {
			marker = StyleYellowBold.Render("▶ ")
			title = StyleYellowBold.Render(title)
		} else if item.Level > 0 {
			title = StyleFg.Render(title)
		} else {
			title = Bold(title)
		}
		if item.Color != "" {
			title = Swatch(item.Color) + " " + title
		}

		content := prefix.String() + marker + title
		lines[idx].content = content
		if item.Detail != "" {
			lines[idx].badge = StyleBlue.Render("[ " + item.Detail + " ]")
		}
		if w := lipgloss.Width(content); w > maxContentWidth {
			maxContentWidth = w
		}
	}

	var b strings.Builder
	for _, li := range lines {
		if li.badge == "" {
			b.WriteString(li.content + "\n")
			continue
		}
		pad := max(maxContentWidth-lipgloss.Width(li.content), 0)
		b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.badge + "\n")
	}
	return b.String()
}
