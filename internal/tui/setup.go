package tui

import (
	"fmt"
	"net"
	"strings"

	"github.com/theirongolddev/breakeven/internal/config"
	"github.com/theirongolddev/breakeven/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues collects the answers of the setup form.
type SetupValues struct {
	WorksheetDir     string
	DefaultWorksheet string
	Theme            string
	Addr             string
	LogLevel         string
}

// SetupValuesFrom seeds the form with the current configuration.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		WorksheetDir:     cfg.WorksheetDir(),
		DefaultWorksheet: cfg.General.DefaultWorksheet,
		Theme:            cfg.Appearance.Theme,
		Addr:             cfg.Server.Addr,
		LogLevel:         cfg.Log.Level,
	}
}

// Apply copies the answers onto cfg.
func (v SetupValues) Apply(cfg config.Config) config.Config {
	cfg.General.WorksheetDir = strings.TrimSpace(v.WorksheetDir)
	cfg.General.DefaultWorksheet = strings.TrimSpace(v.DefaultWorksheet)
	cfg.Appearance.Theme = v.Theme
	cfg.Server.Addr = strings.TrimSpace(v.Addr)
	cfg.Log.Level = v.LogLevel
	return cfg
}

func validateAddr(s string) error {
	if _, _, err := net.SplitHostPort(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("expected host:port")
	}
	return nil
}

// NewSetupForm builds the setup wizard. Answers are written into v.
func NewSetupForm(v *SetupValues) *huh.Form {
	themes := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themes = append(themes, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to breakeven").
				Description("Model costs, margin and the breakeven point of a small product business."),
			huh.NewInput().
				Title("Worksheet directory").
				Description("Where breakeven looks for *.toml worksheets.").
				Value(&v.WorksheetDir),
			huh.NewInput().
				Title("Default worksheet").
				Description("Name or path loaded when --worksheet is not given. Leave empty to start blank.").
				Value(&v.DefaultWorksheet),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themes...).
				Value(&v.Theme),
			huh.NewInput().
				Title("API listen address").
				Value(&v.Addr).
				Validate(validateAddr),
			huh.NewSelect[string]().
				Title("Log level").
				Options(huh.NewOptions("debug", "info", "warn", "error")...).
				Value(&v.LogLevel),
		),
	)
}
