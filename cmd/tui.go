package cmd

import (
	"fmt"

	"github.com/theirongolddev/breakeven/internal/tui"
	"github.com/theirongolddev/breakeven/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Edit the budget in an interactive terminal UI",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	theme.SetActive(s.cfg.Appearance.Theme)

	// Force TrueColor so background fills render; lipgloss otherwise may pick
	// the Ascii profile and drop them.
	lipgloss.SetColorProfile(termenv.TrueColor)

	// The alt screen owns stderr, so the editor does not log.
	app := tui.NewApp(s.store, tui.Options{
		Worksheet: s.title(),
		Logger:    zap.NewNop(),
	})
	defer app.Close()

	if _, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
