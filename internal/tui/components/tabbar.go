package components

import (
	"strconv"
	"strings"

	"github.com/theirongolddev/breakeven/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab is one entry in the tab bar. Tabs are selected with the digit keys.
type Tab struct {
	Name string
	Key  rune
}

// Tabs lists the editor tabs in display order.
var Tabs = []Tab{
	{Name: "Dashboard", Key: '1'},
	{Name: "Operating", Key: '2'},
	{Name: "Direct", Key: '3'},
	{Name: "Collateral", Key: '4'},
	{Name: "Services", Key: '5'},
	{Name: "Marketing", Key: '6'},
}

func tabLabel(tab Tab, active bool) string {
	t := theme.Active
	pad := lipgloss.NewStyle().Background(t.Surface)
	if active {
		s := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright).Bold(true)
		return s.Render(" " + tab.Name + " ")
	}
	key := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	name := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	return pad.Render(" ") + key.Render(string(tab.Key)) + pad.Render(" ") + name.Render(tab.Name) + pad.Render(" ")
}

// TabVisualWidth is the rendered width of tab. Mouse hit testing relies on
// it matching RenderTabBar exactly.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(tabLabel(tab, active))
}

// RenderTabBar draws the tabs on one line, width columns wide.
func RenderTabBar(activeIdx, width int) string {
	t := theme.Active
	sep := lipgloss.NewStyle().Foreground(t.Border).Background(t.Surface).Render("│")

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		parts[i] = tabLabel(tab, i == activeIdx)
	}
	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(strings.Join(parts, sep))
}

// TabIdxByKey maps a digit key to a tab index, or -1.
func TabIdxByKey(key string) int {
	n, err := strconv.Atoi(key)
	if err != nil || n < 1 || n > len(Tabs) {
		return -1
	}
	return n - 1
}
