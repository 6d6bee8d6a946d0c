package components

import (
	"fmt"

	"github.com/theirongolddev/breakeven/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// CoverageColor grades how far projected sales get toward breakeven.
func CoverageColor(ratio float64) lipgloss.Color {
	t := theme.Active
	switch {
	case ratio >= 1:
		return t.Profit
	case ratio >= 0.75:
		return t.Accent
	case ratio >= 0.5:
		return t.Warning
	default:
		return t.Loss
	}
}

// CoverageBar renders projected units over breakeven units as a bar. The bar
// fills at 100%; the label keeps the true ratio.
func CoverageBar(label string, ratio float64, labelW, barW int) string {
	t := theme.Active
	color := CoverageColor(ratio)

	fill := ratio
	if fill < 0 {
		fill = 0
	}
	if fill > 1 {
		fill = 1
	}

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	space := lipgloss.NewStyle().Background(t.Surface).Render(" ")

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		space + bar.ViewAs(fill) + space +
		pctStyle.Render(fmt.Sprintf("%4.0f%%", ratio*100))
}
