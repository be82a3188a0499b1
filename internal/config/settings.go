package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Settings holds user preferences for the CLI and TUI.
type Settings struct {
	General GeneralSettings `toml:"general"`
	Output  OutputSettings  `toml:"output"`
}

// GeneralSettings holds calculator defaults.
type GeneralSettings struct {
	DurationMonths int `toml:"duration_months"`
}

// OutputSettings holds report preferences.
type OutputSettings struct {
	Format string `toml:"format"`
	// Every prints one table row per N months in the console report.
	Every int `toml:"every"`
}

// Environment variable overrides, applied after the settings file.
const (
	EnvConfigDir      = "FIRECALC_CONFIG_DIR"
	EnvFormat         = "FIRECALC_FORMAT"
	EnvDurationMonths = "FIRECALC_DURATION_MONTHS"
)

// DefaultSettings returns the default configuration.
func DefaultSettings() Settings {
	return Settings{
		General: GeneralSettings{DurationMonths: 360},
		Output:  OutputSettings{Format: "console", Every: 12},
	}
}

// SettingsDir returns the XDG-compliant settings directory.
func SettingsDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "firecalc")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "firecalc")
}

// SettingsPath returns the full path to the settings file.
func SettingsPath() string {
	return filepath.Join(SettingsDir(), "config.toml")
}

// SettingsExist reports whether a settings file exists on disk.
func SettingsExist() bool {
	_, err := os.Stat(SettingsPath())
	return err == nil
}

// LoadSettings reads the settings file, returning defaults if it doesn't
// exist, then applies environment overrides. A .env file in the working
// directory is loaded first if present.
func LoadSettings() (Settings, error) {
	_ = godotenv.Load()

	cfg := DefaultSettings()

	data, err := os.ReadFile(SettingsPath())
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing settings: %w", err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading settings: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Settings) error {
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv(EnvDurationMonths); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: must be a number", EnvDurationMonths, v)
		}
		cfg.General.DurationMonths = n
	}
	return nil
}

// Validate checks the settings for values the calculator would reject.
func (s Settings) Validate() error {
	if s.General.DurationMonths <= 0 || s.General.DurationMonths > MaxDurationMonths {
		return fmt.Errorf("general.duration_months must be between 1 and %d", MaxDurationMonths)
	}
	if s.Output.Every <= 0 {
		return fmt.Errorf("output.every must be positive")
	}
	return nil
}

// SaveSettings writes the settings to disk.
func SaveSettings(cfg Settings) error {
	dir := SettingsDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}

	f, err := os.OpenFile(SettingsPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
