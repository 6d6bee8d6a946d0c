package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/breakeven/internal/cli"
	"github.com/theirongolddev/breakeven/internal/tui/components"
	"github.com/theirongolddev/breakeven/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// lineTabOverhead is the card chrome plus header, rule, and total rows.
const lineTabOverhead = 8

const minColumnWidth = 8

// columnWidths gives fixed columns their declared width and lets the first
// column take what is left of inner. On narrow screens the fixed columns
// shrink one cell at a time down to minColumnWidth.
func columnWidths(sh sheet, inner int) []int {
	widths := make([]int, len(sh.columns))
	for i, c := range sh.columns {
		widths[i] = c.width
	}
	used := func() int {
		n := len(widths) - 1
		for _, w := range widths[1:] {
			n += w
		}
		return n
	}
	for used()+minColumnWidth*2 > inner {
		shrunk := false
		for i := 1; i < len(widths); i++ {
			if widths[i] > minColumnWidth {
				widths[i]--
				shrunk = true
			}
		}
		if !shrunk {
			break
		}
	}
	widths[0] = max(inner-used(), minColumnWidth)
	return widths
}

func cellText(s string, w int, left bool) string {
	s = truncStr(s, w)
	if left {
		return fmt.Sprintf("%-*s", w, s)
	}
	return fmt.Sprintf("%*s", w, s)
}

// visibleWindow picks the slice of n rows to draw so that sel stays on
// screen.
func visibleWindow(n, sel, height int) (int, int) {
	if height < 1 {
		height = 1
	}
	if n <= height {
		return 0, n
	}
	start := sel - height/2
	if start < 0 {
		start = 0
	}
	if start+height > n {
		start = n - height
	}
	return start, start + height
}

func (a App) renderLineTab(cw, contentH int) string {
	t := theme.Active
	sh, _ := a.sheet()
	cur := a.cursors[a.activeTab]
	rows := sh.rows(a.budget)
	inner := components.CardInnerWidth(cw)
	widths := columnWidths(sh, inner)

	header := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true)
	derived := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	plain := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	loss := lipgloss.NewStyle().Foreground(t.Loss).Background(t.Surface)
	selRow := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright)
	selCell := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright).Bold(true)
	gap := plain.Render(" ")
	selGap := selRow.Render(" ")

	var b strings.Builder
	for i, c := range sh.columns {
		if i > 0 {
			b.WriteString(gap)
		}
		b.WriteString(header.Render(cellText(c.title, widths[i], i == 0)))
	}
	b.WriteString("\n")
	b.WriteString(derived.Render(strings.Repeat("─", inner)))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(derived.Render(cellText("No lines yet. Press a to add one.", inner, true)))
		b.WriteString("\n")
	}

	start, end := visibleWindow(len(rows), cur.row, contentH-lineTabOverhead)
	for r := start; r < end; r++ {
		row := rows[r]
		selected := r == cur.row
		for i, cell := range row.cells {
			if i > 0 {
				if selected {
					b.WriteString(selGap)
				} else {
					b.WriteString(gap)
				}
			}
			if selected && i == cur.col && a.editing {
				in := a.input
				in.Width = widths[i] - 1
				b.WriteString(selRow.Render(lipgloss.PlaceHorizontal(widths[i], lipgloss.Left, in.View())))
				continue
			}
			text := cellText(cell, widths[i], i == 0)
			switch {
			case selected && i == cur.col:
				b.WriteString(selCell.Render(text))
			case selected:
				b.WriteString(selRow.Render(text))
			case sh.columns[i].derived && strings.HasPrefix(cell, "-$"):
				b.WriteString(loss.Render(text))
			case sh.columns[i].derived:
				b.WriteString(derived.Render(text))
			default:
				b.WriteString(plain.Render(text))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(derived.Render(strings.Repeat("─", inner)))
	b.WriteString("\n")
	for i, cell := range sh.total(a.budget) {
		if i > 0 {
			b.WriteString(gap)
		}
		b.WriteString(header.Render(cellText(cell, widths[i], i == 0)))
	}

	title := fmt.Sprintf("%s · %s lines", sh.collection.Title(), cli.FormatNumber(int64(len(rows))))
	if end-start < len(rows) {
		title += fmt.Sprintf(" · showing %d-%d", start+1, end)
	}
	return components.ContentCard(title, b.String(), cw, true)
}
