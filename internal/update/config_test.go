package update

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.BusyDelayMillis != 100 || cfg.BusyDelay() != 100*time.Millisecond {
		t.Fatalf("unexpected busy delay default: %+v", cfg)
	}
	if cfg.SchedulerBuffer != 64 || cfg.LogLevel != "info" || cfg.MarkdownStyle != "dark" {
		t.Fatalf("unexpected runtime defaults: %+v", cfg)
	}
	if cfg.DesktopNotifications || cfg.LogFile != "" {
		t.Fatalf("unexpected optional defaults: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("TODOSCREEN_DESKTOP_NOTIFICATIONS", "true")
	t.Setenv("TODOSCREEN_BUSY_DELAY_MS", "250")
	t.Setenv("TODOSCREEN_SCHEDULER_BUFFER", "128")
	t.Setenv("TODOSCREEN_LOG_FILE", "logs/todoscreen.log")
	t.Setenv("TODOSCREEN_LOG_LEVEL", "debug")
	t.Setenv("TODOSCREEN_MARKDOWN_STYLE", "light")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if !cfg.DesktopNotifications {
		t.Fatal("expected desktop notifications true from env")
	}
	if cfg.BusyDelayMillis != 250 || cfg.SchedulerBuffer != 128 {
		t.Fatalf("unexpected numeric overrides: %+v", cfg)
	}
	if cfg.LogFile != "logs/todoscreen.log" || cfg.LogLevel != "debug" || cfg.MarkdownStyle != "light" {
		t.Fatalf("unexpected string overrides: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnvIgnoresInvalidValues(t *testing.T) {
	t.Setenv("TODOSCREEN_DESKTOP_NOTIFICATIONS", "maybe")
	t.Setenv("TODOSCREEN_BUSY_DELAY_MS", "-5")
	t.Setenv("TODOSCREEN_SCHEDULER_BUFFER", "lots")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg != DefaultRuntimeConfig() {
		t.Fatalf("expected defaults to survive invalid env, got %+v", cfg)
	}
}

func TestLoadRuntimeConfigLayersFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todoscreen.yaml")
	body := "desktop_notifications: true\nbusy_delay_ms: 300\nlog_level: warn\nmarkdown_style: notty\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TODOSCREEN_LOG_LEVEL", "error")

	cfg, err := LoadRuntimeConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.DesktopNotifications || cfg.BusyDelayMillis != 300 || cfg.MarkdownStyle != "notty" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.SchedulerBuffer != 64 {
		t.Fatalf("expected default scheduler buffer to survive, got %+v", cfg)
	}
	if cfg.LogLevel != "error" {
		t.Fatalf("expected env to override file, got %q", cfg.LogLevel)
	}
}

func TestLoadRuntimeConfigErrors(t *testing.T) {
	if _, err := LoadRuntimeConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("busy_delay_ms: [1, 2"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadRuntimeConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}
