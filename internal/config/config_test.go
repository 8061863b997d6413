package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected missing file to be ignored: %v", err)
	}
	if cfg.Game.TimeZone != nil || cfg.Storage.DB != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigDecodesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[game]
time-zone = "Europe/Berlin"
start-date = "2026-04-01"

[storage]
key = "custom-key"

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Game.TimeZone == nil || *cfg.Game.TimeZone != "Europe/Berlin" {
		t.Fatalf("unexpected time zone: %v", cfg.Game.TimeZone)
	}
	if cfg.Game.StartDate == nil || *cfg.Game.StartDate != "2026-04-01" {
		t.Fatalf("unexpected start date: %v", cfg.Game.StartDate)
	}
	if cfg.Game.Seed != nil {
		t.Fatalf("expected seed to be unset")
	}
	if cfg.Storage.Key == nil || *cfg.Storage.Key != "custom-key" {
		t.Fatalf("unexpected storage key: %v", cfg.Storage.Key)
	}
	if cfg.Log.Level == nil || *cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log level: %v", cfg.Log.Level)
	}
}

func TestLoadConfigRejectsInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[game\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("BWORDIBLE_TIME_ZONE", "UTC")
	t.Setenv("BWORDIBLE_TODAY", "2026-03-05")
	t.Setenv("BWORDIBLE_LOG_LEVEL", "warn")
	cfg, err := ParseEnv()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.TimeZone != "UTC" || cfg.Today != "2026-03-05" || cfg.LogLevel != "warn" {
		t.Fatalf("unexpected env config: %+v", cfg)
	}
	if cfg.Seed != "" {
		t.Fatalf("expected unset seed, got %q", cfg.Seed)
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "bwordible", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultAnswersPath(); got != filepath.Join("/cfg", "bwordible", "answers.json") {
		t.Fatalf("unexpected answers path: %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "bwordible", "bwordible.db") {
		t.Fatalf("unexpected db path: %s", got)
	}
	if got := DefaultLogPath(); got != filepath.Join("/data", "bwordible", "bwordible.log") {
		t.Fatalf("unexpected log path: %s", got)
	}
}
