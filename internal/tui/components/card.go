// Package components provides the widgets the breakeven editor is drawn with.
package components

import (
	"github.com/theirongolddev/breakeven/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tone selects the accent color of a metric value.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneGood
	ToneBad
	ToneWarn
)

func (tn Tone) color() lipgloss.Color {
	t := theme.Active
	switch tn {
	case ToneGood:
		return t.Profit
	case ToneBad:
		return t.Loss
	case ToneWarn:
		return t.Warning
	}
	return t.TextPrimary
}

// Metric is one headline number on the dashboard.
type Metric struct {
	Label string
	Value string
	Note  string
	Tone  Tone
}

// LayoutRow splits total into n widths that add back up to total.
// Leading columns take the remainder.
func LayoutRow(total, n int) []int {
	if n <= 0 {
		return nil
	}
	widths := make([]int, n)
	for i := range widths {
		widths[i] = total / n
		if i < total%n {
			widths[i]++
		}
	}
	return widths
}

func cardStyle(outerWidth int, border lipgloss.Color) lipgloss.Style {
	inner := outerWidth - 2
	if inner < 10 {
		inner = 10
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		BorderBackground(theme.Active.Background).
		Background(theme.Active.Surface).
		Width(inner).
		Padding(0, 1)
}

// MetricCard renders m inside a bordered box outerWidth columns wide.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active
	label := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	value := lipgloss.NewStyle().Foreground(m.Tone.color()).Background(t.Surface).Bold(true)
	note := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	body := label.Render(m.Label) + "\n" + value.Render(m.Value)
	if m.Note != "" {
		body += "\n" + note.Render(m.Note)
	}
	return cardStyle(outerWidth, t.Border).Render(body)
}

// MetricRow lays metrics side by side across totalWidth.
func MetricRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}
	widths := LayoutRow(totalWidth, len(metrics))
	cards := make([]string, len(metrics))
	for i, m := range metrics {
		cards[i] = MetricCard(m, widths[i])
	}
	return CardRow(cards)
}

// ContentCard renders body under an optional title. A focused card gets the
// accent border.
func ContentCard(title, body string, outerWidth int, focused bool) string {
	t := theme.Active
	border := t.Border
	if focused {
		border = t.BorderAccent
	}
	content := body
	if title != "" {
		heading := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true)
		content = heading.Render(title) + "\n" + body
	}
	return cardStyle(outerWidth, border).Render(content)
}

// CardRow joins cards horizontally. Shorter cards are padded with the
// background color so the row has no unstyled gaps.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	tallest := 0
	for _, c := range cards {
		if h := lipgloss.Height(c); h > tallest {
			tallest = h
		}
	}
	padded := make([]string, len(cards))
	for i, c := range cards {
		padded[i] = lipgloss.PlaceVertical(tallest, lipgloss.Top, c,
			lipgloss.WithWhitespaceBackground(theme.Active.Background))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, padded...)
}

// CardInnerWidth is the text width left inside a card after border and
// padding.
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4
	if w < 10 {
		w = 10
	}
	return w
}
