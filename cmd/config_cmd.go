package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/breakeven/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := flagConfig
	if path == "" {
		path = config.ConfigPath()
	}
	fmt.Printf("  Config file: %s\n", path)
	if config.Exists() || flagConfig != "" {
		fmt.Println("  Status: loaded (environment overrides applied)")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Worksheet dir:     %s\n", cfg.WorksheetDir())
	if cfg.General.DefaultWorksheet != "" {
		fmt.Printf("    Default worksheet: %s\n", cfg.General.DefaultWorksheet)
	} else {
		fmt.Println("    Default worksheet: none (empty budget)")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address:       %s\n", cfg.Server.Addr)
	fmt.Printf("    Events buffer: %d\n", cfg.Server.EventsBuffer)
	if len(cfg.Server.CORSOrigins) > 0 {
		fmt.Printf("    CORS origins:  %s\n", strings.Join(cfg.Server.CORSOrigins, ", "))
	} else {
		fmt.Println("    CORS origins:  any")
	}
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level:  %s\n", cfg.Log.Level)
	fmt.Printf("    Format: %s\n", cfg.Log.Format)
	fmt.Println()

	fmt.Println("  Run `breakeven setup` to reconfigure.")
	return nil
}
