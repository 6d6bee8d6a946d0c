// Package config loads and saves breakeven settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all breakeven configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Server     ServerConfig     `toml:"server"`
	Log        LogConfig        `toml:"log"`
}

// GeneralConfig holds worksheet preferences.
type GeneralConfig struct {
	WorksheetDir     string `toml:"worksheet_dir,omitempty"`
	DefaultWorksheet string `toml:"default_worksheet,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme" validate:"oneof=flexoki-dark catppuccin-mocha tokyo-night terminal"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr         string   `toml:"addr" validate:"required,hostname_port"`
	EventsBuffer int      `toml:"events_buffer" validate:"gte=1,lte=10000"`
	CORSOrigins  []string `toml:"cors_origins,omitempty" validate:"dive,url"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `toml:"level" validate:"oneof=debug info warn error"`
	Format string `toml:"format" validate:"oneof=json console"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Server: ServerConfig{
			Addr:         "127.0.0.1:8787",
			EventsBuffer: 200,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "breakeven")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "breakeven")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// WorksheetDir returns where named worksheets live.
func (c Config) WorksheetDir() string {
	if c.General.WorksheetDir != "" {
		return c.General.WorksheetDir
	}
	return filepath.Join(ConfigDir(), "worksheets")
}

// Load reads the default config file. See LoadFrom.
func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config file at path, returning defaults if it doesn't
// exist. A .env file in the working directory and BREAKEVEN_* environment
// variables are applied on top, then the result is validated.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	// A missing .env is fine; settings may come from the environment directly.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("reading config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("BREAKEVEN_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("BREAKEVEN_EVENTS_BUFFER"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.EventsBuffer = n
		}
	}
	if v := os.Getenv("BREAKEVEN_CORS_ORIGINS"); v != "" {
		cfg.Server.CORSOrigins = strings.Split(v, ",")
	}
	if v := os.Getenv("BREAKEVEN_THEME"); v != "" {
		cfg.Appearance.Theme = v
	}
	if v := os.Getenv("BREAKEVEN_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("BREAKEVEN_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("BREAKEVEN_WORKSHEET"); v != "" {
		cfg.General.DefaultWorksheet = v
	}
	if v := os.Getenv("BREAKEVEN_WORKSHEET_DIR"); v != "" {
		cfg.General.WorksheetDir = v
	}
}

var validate = validator.New()

// Validate checks field constraints and reports every failing field.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating config: %w", err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	sort.Strings(fields)
	return fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
}

// Save writes the config to the default path.
func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes the config to path, creating parent directories.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
