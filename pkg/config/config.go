// Package config handles loading and saving cv configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config: ~/.config/cv/config.yaml
//   - Data:   ~/.local/share/cv/ (exported pages, snapshots)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// UIConfig holds UI preference settings.
type UIConfig struct {
	TopK         int    `yaml:"topk,omitempty"`          // Default concept bound (0 = mode default)
	Mouse        bool   `yaml:"mouse,omitempty"`         // Enable mouse hover/click
	ShowStats    bool   `yaml:"show_stats,omitempty"`    // Attribution summary in status bar
	ColorProfile string `yaml:"color_profile,omitempty"` // "", "truecolor", "256", "16"
}

// ExportConfig holds static export preferences.
type ExportConfig struct {
	Format string `yaml:"format,omitempty"` // "html", "svg" or "png"
	Dir    string `yaml:"dir,omitempty"`    // Output directory ("" = cwd)
}

// WatchConfig controls live reload of the snapshot file.
type WatchConfig struct {
	Enabled    bool `yaml:"enabled,omitempty"`
	ForcePoll  bool `yaml:"force_poll,omitempty"`
	PollMillis int  `yaml:"poll_millis,omitempty"`
}

// Config is the top-level configuration for cv.
type Config struct {
	UI     UIConfig     `yaml:"ui,omitempty"`
	Export ExportConfig `yaml:"export,omitempty"`
	Watch  WatchConfig  `yaml:"watch,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			Mouse:     true,
			ShowStats: true,
		},
		Export: ExportConfig{
			Format: "html",
		},
		Watch: WatchConfig{
			PollMillis: 2000,
		},
	}
}

// ConfigDir returns the XDG config directory for cv.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "cv")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "cv")
}

// DataDir returns the XDG data directory for cv.
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "cv")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "cv")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Export.Dir = expandHome(cfg.Export.Dir)
	return cfg, nil
}

// Save writes the config to the XDG config directory, creating it if needed.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func expandHome(p string) string {
	if p == "" || !strings.HasPrefix(p, "~") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
