// Package cmd implements the breakeven CLI commands.
package cmd

import (
	"os"

	"github.com/theirongolddev/breakeven/internal/config"
	"github.com/theirongolddev/breakeven/internal/logger"
	"github.com/theirongolddev/breakeven/internal/source"
	"github.com/theirongolddev/breakeven/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagWorksheet string
	flagQuiet     bool
	flagConfig    string
)

var rootCmd = &cobra.Command{
	Use:   "breakeven",
	Short: "Breakeven budgeting for small product businesses",
	Long: "Track operating and per-unit costs, set price and sales assumptions,\n" +
		"and see margin, profit and the breakeven point recomputed on every edit.",
	SilenceUsage: true,
	RunE:         runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagWorksheet, "worksheet", "w", "", "Worksheet name or path to load")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress warnings and progress output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default "+config.ConfigPath()+")")
}

// session is the state every data command starts from.
type session struct {
	cfg       config.Config
	log       *zap.Logger
	store     *store.Store
	worksheet source.Worksheet
}

func loadConfig() (config.Config, error) {
	if flagConfig != "" {
		return config.LoadFrom(flagConfig)
	}
	return config.Load()
}

// openSession loads config, builds the logger, and seeds a store from the
// selected worksheet. With no worksheet the store starts empty.
func openSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	level := cfg.Log.Level
	if flagQuiet {
		level = "error"
	}
	log, err := logger.New(level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	s := &session{
		cfg:   cfg,
		log:   log,
		store: store.New(store.WithLogger(logger.Named(log, "store"))),
	}

	arg := flagWorksheet
	if arg == "" {
		arg = cfg.General.DefaultWorksheet
	}
	if arg == "" {
		return s, nil
	}

	path := source.Resolve(arg, cfg.WorksheetDir())
	ws, err := source.LoadFile(path)
	if err != nil {
		return nil, err
	}
	for _, w := range ws.Warnings {
		log.Warn("worksheet line replaced", zap.String("path", path), zap.String("detail", w))
	}
	log.Debug("worksheet loaded", zap.String("name", ws.Name), zap.String("path", path))

	s.worksheet = ws
	s.store.Load(ws.Budget)
	return s, nil
}

// title returns the worksheet name, or a placeholder for an empty budget.
func (s *session) title() string {
	if s.worksheet.Name != "" {
		return s.worksheet.Name
	}
	return "scratch"
}

func (s *session) close() {
	_ = s.log.Sync()
}
