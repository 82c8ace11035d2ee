package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is centralized process configuration.
// Values come from the environment; an optional YAML file referenced by
// CONFIG_FILE fills in anything the environment leaves empty.
type Config struct {
	ServiceName string `yaml:"service_name"`
	HTTPPort    string `yaml:"http_port"`
	PostgresDSN string `yaml:"postgres_dsn"`

	// Timezone is the IANA zone used when interpreting month queries and
	// report headings (e.g. "America/Sao_Paulo"). Empty means UTC.
	Timezone string `yaml:"timezone"`

	// ReminderCron is the cron expression for the birthday reminder sweep.
	ReminderCron string `yaml:"reminder_cron"`

	// ChromiumPath enables PDF rendering of calendar reports when set to a
	// chromium/chrome binary. Empty disables PDF and reports return HTML.
	ChromiumPath string `yaml:"chromium_path"`

	SeedDemoData bool `yaml:"seed_demo_data"`
}

func Load() (Config, error) {
	cfg := Config{
		ServiceName:  os.Getenv("SERVICE_NAME"),
		HTTPPort:     os.Getenv("HTTP_PORT"),
		PostgresDSN:  os.Getenv("POSTGRES_DSN"),
		Timezone:     os.Getenv("TIMEZONE"),
		ReminderCron: os.Getenv("REMINDER_CRON"),
		ChromiumPath: os.Getenv("CHROMIUM_PATH"),
		SeedDemoData: envBool("SEED_DEMO_DATA", true),
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		fileCfg, err := loadFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = overlay(cfg, fileCfg)
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "agendaviva"
	}
	if cfg.HTTPPort == "" {
		cfg.HTTPPort = "8080"
	}
	if cfg.ReminderCron == "" {
		cfg.ReminderCron = "0 7 * * *"
	}
	return cfg, nil
}

func loadFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// overlay keeps environment values and falls back to file values.
func overlay(env Config, file Config) Config {
	out := env
	if out.ServiceName == "" {
		out.ServiceName = file.ServiceName
	}
	if out.HTTPPort == "" {
		out.HTTPPort = file.HTTPPort
	}
	if out.PostgresDSN == "" {
		out.PostgresDSN = file.PostgresDSN
	}
	if out.Timezone == "" {
		out.Timezone = file.Timezone
	}
	if out.ReminderCron == "" {
		out.ReminderCron = file.ReminderCron
	}
	if out.ChromiumPath == "" {
		out.ChromiumPath = file.ChromiumPath
	}
	return out
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
