package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete taskdeck configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Poll    PollConfig    `mapstructure:"poll"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
	Paths   PathsConfig   `mapstructure:"paths"`
}

// ServerConfig describes how to reach the task service
type ServerConfig struct {
	// BaseURL is the root URL of the task service (default: "http://127.0.0.1:8000")
	BaseURL string `mapstructure:"base_url"`
	// TimeoutSeconds is the per-request HTTP timeout (default: 30)
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// PollConfig controls the refresh loops that keep the client current
type PollConfig struct {
	// ListIntervalMs is how often the task list is refreshed (in milliseconds, default: 3000)
	ListIntervalMs int `mapstructure:"list_interval_ms"`
	// TailIntervalMs is how often a tailed task's logs are refreshed (in milliseconds, default: 2000)
	TailIntervalMs int `mapstructure:"tail_interval_ms"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// SidebarWidth is the width of the task list panel in columns (default: 36, min: 20, max: 60)
	SidebarWidth int `mapstructure:"sidebar_width"`
	// MaxLogLines limits how many log lines are kept in the log pane (default: 1000)
	MaxLogLines int `mapstructure:"max_log_lines"`
	// ConfirmActions requires a confirmation prompt before submit, cancel, and retry (default: true)
	ConfirmActions bool `mapstructure:"confirm_actions"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups"`
}

// PathsConfig controls where taskdeck stores data
type PathsConfig struct {
	// DataDir is the directory where log files are written.
	// If empty, defaults to the config directory.
	// Supports ~ for home directory expansion.
	DataDir string `mapstructure:"data_dir"`
}

// ResolveDataDir returns the resolved data directory path.
// If DataDir is empty, it falls back to the config directory.
// If DataDir starts with ~, it expands to the user's home directory.
func (p *PathsConfig) ResolveDataDir() string {
	if p.DataDir == "" {
		return ConfigDir()
	}

	path := p.DataDir

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return path
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL:        "http://127.0.0.1:8000",
			TimeoutSeconds: 30,
		},
		Poll: PollConfig{
			ListIntervalMs: 3000,
			TailIntervalMs: 2000,
		},
		TUI: TUIConfig{
			SidebarWidth:   36,
			MaxLogLines:    1000,
			ConfirmActions: true,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Paths: PathsConfig{
			DataDir: "", // Empty means use the config directory
		},
	}
}

// Timeout returns the per-request timeout as a time.Duration
func (s *ServerConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// ListInterval returns the list refresh interval as a time.Duration
func (p *PollConfig) ListInterval() time.Duration {
	return time.Duration(p.ListIntervalMs) * time.Millisecond
}

// TailInterval returns the tail refresh interval as a time.Duration
func (p *PollConfig) TailInterval() time.Duration {
	return time.Duration(p.TailIntervalMs) * time.Millisecond
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Server defaults
	viper.SetDefault("server.base_url", defaults.Server.BaseURL)
	viper.SetDefault("server.timeout_seconds", defaults.Server.TimeoutSeconds)

	// Poll defaults
	viper.SetDefault("poll.list_interval_ms", defaults.Poll.ListIntervalMs)
	viper.SetDefault("poll.tail_interval_ms", defaults.Poll.TailIntervalMs)

	// TUI defaults
	viper.SetDefault("tui.sidebar_width", defaults.TUI.SidebarWidth)
	viper.SetDefault("tui.max_log_lines", defaults.TUI.MaxLogLines)
	viper.SetDefault("tui.confirm_actions", defaults.TUI.ConfirmActions)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)

	// Paths defaults
	viper.SetDefault("paths.data_dir", defaults.Paths.DataDir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "taskdeck")
	}
	// Fall back to ~/.config/taskdeck
	home, err := os.UserHomeDir()
	if err != nil {
		return ".taskdeck"
	}
	return filepath.Join(home, ".config", "taskdeck")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
