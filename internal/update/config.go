package update

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	DesktopNotifications bool   `yaml:"desktop_notifications"`
	BusyDelayMillis      int    `yaml:"busy_delay_ms"`
	SchedulerBuffer      int    `yaml:"scheduler_buffer"`
	LogFile              string `yaml:"log_file"`
	LogLevel             string `yaml:"log_level"`
	MarkdownStyle        string `yaml:"markdown_style"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DesktopNotifications: false,
		BusyDelayMillis:      100,
		SchedulerBuffer:      64,
		LogLevel:             "info",
		MarkdownStyle:        "dark",
	}
}

func (c RuntimeConfig) BusyDelay() time.Duration {
	return time.Duration(c.BusyDelayMillis) * time.Millisecond
}

// LoadRuntimeConfig layers defaults, the YAML file at path (optional) and the
// environment, in that order.
func LoadRuntimeConfig(path string) (RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()
	if path = strings.TrimSpace(path); path != "" {
		fileCfg, err := RuntimeConfigFromFile(path, cfg)
		if err != nil {
			return RuntimeConfig{}, err
		}
		cfg = fileCfg
	}
	return RuntimeConfigFromEnv(cfg), nil
}

func RuntimeConfigFromFile(path string, base RuntimeConfig) (RuntimeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuntimeConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RuntimeConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.BusyDelayMillis <= 0 {
		cfg.BusyDelayMillis = base.BusyDelayMillis
	}
	if cfg.SchedulerBuffer <= 0 {
		cfg.SchedulerBuffer = base.SchedulerBuffer
	}
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvBool("TODOSCREEN_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvInt("TODOSCREEN_BUSY_DELAY_MS"); ok && v > 0 {
		cfg.BusyDelayMillis = v
	}
	if v, ok := getEnvInt("TODOSCREEN_SCHEDULER_BUFFER"); ok && v > 0 {
		cfg.SchedulerBuffer = v
	}
	if v := strings.TrimSpace(os.Getenv("TODOSCREEN_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv("TODOSCREEN_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("TODOSCREEN_MARKDOWN_STYLE")); v != "" {
		cfg.MarkdownStyle = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
