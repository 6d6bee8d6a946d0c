package components

import (
	"fmt"

	"github.com/theirongolddev/breakeven/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// StatusInfo is what the bottom bar reports.
type StatusInfo struct {
	Worksheet string
	Version   uint64
	Hint      string
	Flash     string
	FlashBad  bool
}

// RenderStatusBar draws the status line width columns wide.
func RenderStatusBar(width int, info StatusInfo) string {
	t := theme.Active
	base := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	accent := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)

	left := base.Render(" [?]help  [q]uit")
	if info.Hint != "" {
		left += base.Render("  " + info.Hint)
	}
	if info.Flash != "" {
		fc := t.Profit
		if info.FlashBad {
			fc = t.Loss
		}
		left += lipgloss.NewStyle().Foreground(fc).Background(t.Surface).Render("  " + info.Flash)
	}

	name := info.Worksheet
	if name == "" {
		name = "scratch"
	}
	right := accent.Render(name) + base.Render(fmt.Sprintf("  v%d ", info.Version))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.NewStyle().Background(t.Surface).MaxWidth(width).
		Render(left + base.Render(fmt.Sprintf("%*s", gap, "")) + right)
}
