package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/breakeven/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Slice is one labelled share of a whole.
type Slice struct {
	Label string
	Value float64
	Text  string // preformatted value shown after the bar
}

// ShareChart draws one horizontal bar per slice, scaled to the largest
// value. Non-positive values draw an empty bar.
func ShareChart(slices []Slice, width int) string {
	if len(slices) == 0 {
		return ""
	}
	t := theme.Active

	labelW, textW := 0, 0
	peak := 0.0
	for _, s := range slices {
		labelW = max(labelW, lipgloss.Width(s.Label))
		textW = max(textW, lipgloss.Width(s.Text))
		peak = max(peak, s.Value)
	}
	barW := width - labelW - textW - 2
	if barW < 4 {
		barW = 4
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface).Render(" ")

	lines := make([]string, len(slices))
	for i, s := range slices {
		filled := 0
		if frac := s.Value / peak; peak > 0 && s.Value > 0 && !math.IsNaN(frac) {
			filled = int(min(frac, 1) * float64(barW))
		}
		lines[i] = labelStyle.Render(fmt.Sprintf("%-*s", labelW, s.Label)) + space +
			barStyle.Render(strings.Repeat("█", filled)) +
			emptyStyle.Render(strings.Repeat("░", barW-filled)) + space +
			textStyle.Render(fmt.Sprintf("%*s", textW, s.Text))
	}
	return strings.Join(lines, "\n")
}
