package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderTableAlignsColumns(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Item", "Cost"},
		Rows: [][]string{
			{"Flour", "$2.00"},
			{"---"},
			{"Total", "$12.50"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}
	w := lipgloss.Width(lines[0])
	for i, line := range lines {
		if lipgloss.Width(line) != w {
			t.Errorf("line %d width = %d, want %d", i, lipgloss.Width(line), w)
		}
	}
	if !strings.Contains(out, "$12.50") {
		t.Error("table missing total cell")
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if out := RenderTable(Table{}); out != "" {
		t.Fatalf("RenderTable(empty) = %q, want empty", out)
	}
}

func TestRenderProgressBarClamps(t *testing.T) {
	out := RenderProgressBar(3, 10)
	if !strings.Contains(out, "100.0%") {
		t.Fatalf("progress bar = %q, want clamped to 100%%", out)
	}
}
