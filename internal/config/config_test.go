package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	// Verify default server config
	if cfg.Server.BaseURL != "http://127.0.0.1:8000" {
		t.Errorf("Server.BaseURL = %q, want %q", cfg.Server.BaseURL, "http://127.0.0.1:8000")
	}
	if cfg.Server.TimeoutSeconds != 30 {
		t.Errorf("Server.TimeoutSeconds = %d, want 30", cfg.Server.TimeoutSeconds)
	}

	// Verify default poll config
	if cfg.Poll.ListIntervalMs != 3000 {
		t.Errorf("Poll.ListIntervalMs = %d, want 3000", cfg.Poll.ListIntervalMs)
	}
	if cfg.Poll.TailIntervalMs != 2000 {
		t.Errorf("Poll.TailIntervalMs = %d, want 2000", cfg.Poll.TailIntervalMs)
	}

	// Verify default TUI config
	if cfg.TUI.SidebarWidth != 36 {
		t.Errorf("TUI.SidebarWidth = %d, want 36", cfg.TUI.SidebarWidth)
	}
	if cfg.TUI.MaxLogLines != 1000 {
		t.Errorf("TUI.MaxLogLines = %d, want 1000", cfg.TUI.MaxLogLines)
	}
	if !cfg.TUI.ConfirmActions {
		t.Error("TUI.ConfirmActions should be true by default")
	}

	// Verify default logging config
	if !cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be true by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestDefaultPassesValidation(t *testing.T) {
	cfg := Default()

	if errs := cfg.Validate(); len(errs) > 0 {
		t.Errorf("Default() config failed validation: %v", ValidationErrors(errs))
	}
}

func TestServerConfig_Timeout(t *testing.T) {
	tests := []struct {
		seconds  int
		expected time.Duration
	}{
		{30, 30 * time.Second},
		{5, 5 * time.Second},
		{0, 0},
	}

	for _, tt := range tests {
		cfg := ServerConfig{TimeoutSeconds: tt.seconds}
		result := cfg.Timeout()
		if result != tt.expected {
			t.Errorf("Timeout() with %ds = %v, want %v", tt.seconds, result, tt.expected)
		}
	}
}

func TestPollConfig_Intervals(t *testing.T) {
	tests := []struct {
		ms       int
		expected time.Duration
	}{
		{3000, 3 * time.Second},
		{2000, 2 * time.Second},
		{500, 500 * time.Millisecond},
		{0, 0},
	}

	for _, tt := range tests {
		cfg := PollConfig{ListIntervalMs: tt.ms, TailIntervalMs: tt.ms}
		if result := cfg.ListInterval(); result != tt.expected {
			t.Errorf("ListInterval() with %dms = %v, want %v", tt.ms, result, tt.expected)
		}
		if result := cfg.TailInterval(); result != tt.expected {
			t.Errorf("TailInterval() with %dms = %v, want %v", tt.ms, result, tt.expected)
		}
	}
}

func TestResolveDataDir(t *testing.T) {
	t.Run("empty falls back to config dir", func(t *testing.T) {
		p := PathsConfig{DataDir: ""}
		if got := p.ResolveDataDir(); got != ConfigDir() {
			t.Errorf("ResolveDataDir() = %q, want %q", got, ConfigDir())
		}
	})

	t.Run("expands tilde prefix", func(t *testing.T) {
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skip("no home directory available")
		}

		p := PathsConfig{DataDir: "~/taskdeck-logs"}
		expected := filepath.Join(home, "taskdeck-logs")
		if got := p.ResolveDataDir(); got != expected {
			t.Errorf("ResolveDataDir() = %q, want %q", got, expected)
		}
	})

	t.Run("keeps absolute path", func(t *testing.T) {
		p := PathsConfig{DataDir: "/var/log/taskdeck"}
		if got := p.ResolveDataDir(); got != "/var/log/taskdeck" {
			t.Errorf("ResolveDataDir() = %q, want %q", got, "/var/log/taskdeck")
		}
	})
}

func TestConfigDir(t *testing.T) {
	t.Run("respects XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")

		expected := filepath.Join("/tmp/xdg-test", "taskdeck")
		if got := ConfigDir(); got != expected {
			t.Errorf("ConfigDir() = %q, want %q", got, expected)
		}
	})

	t.Run("falls back to home config dir", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")

		got := ConfigDir()
		if !strings.HasSuffix(got, filepath.Join(".config", "taskdeck")) && got != ".taskdeck" {
			t.Errorf("ConfigDir() = %q, expected path ending in .config/taskdeck", got)
		}
	})
}

func TestConfigFile(t *testing.T) {
	file := ConfigFile()
	if filepath.Base(file) != "config.yaml" {
		t.Errorf("ConfigFile() = %q, expected config.yaml basename", file)
	}
	if filepath.Dir(file) != ConfigDir() {
		t.Errorf("ConfigFile() dir = %q, want %q", filepath.Dir(file), ConfigDir())
	}
}
