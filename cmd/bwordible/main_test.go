package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/bwordible/internal/calendar"
	"github.com/verte-zerg/bwordible/internal/config"
	"github.com/verte-zerg/bwordible/internal/schedule"
)

func TestResolveConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("BWORDIBLE_TIME_ZONE", "")
	t.Setenv("BWORDIBLE_SEED", "env-seed")
	t.Setenv("BWORDIBLE_START_DATE", "2026-05-01")
	t.Setenv("BWORDIBLE_TODAY", "2026-05-02")

	path := config.DefaultConfigPath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	content := `[game]
time-zone = "Europe/London"
seed = "file-seed"
start-date = "2026-04-01"

[storage]
key = "custom-key"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	root := newRootCmd()
	require.NoError(t, root.ParseFlags([]string{"--start", "2026-06-01"}))
	cfg, err := resolveConfig(root)
	require.NoError(t, err)

	assert.Equal(t, "Europe/London", cfg.TimeZone)
	assert.Equal(t, "env-seed", cfg.Seed)
	assert.Equal(t, "2026-06-01", cfg.StartDate)
	assert.Equal(t, "2026-05-02", cfg.Today)
	assert.Equal(t, "custom-key", cfg.StorageKey)
	assert.Equal(t, filepath.Join(dir, "bwordible", "bwordible.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(dir, "bwordible", "answers.json"), cfg.AnswersPath)

	_, err = validateConfig(cfg)
	require.NoError(t, err)
}

func TestValidateConfigRejectsBadZone(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := newRootCmd()
	require.NoError(t, root.ParseFlags([]string{"--tz", "Mars/Olympus"}))
	cfg, err := resolveConfig(root)
	require.NoError(t, err)
	_, err = validateConfig(cfg)
	assert.Error(t, err)
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	var cfg config.FileConfig
	_, err := toml.Decode(defaultConfigTemplate(), &cfg)
	require.NoError(t, err)
	assert.Nil(t, cfg.Game.TimeZone)
	assert.Nil(t, cfg.Storage.DB)
}

func TestWritePlanHidesAnswer(t *testing.T) {
	sched := schedule.New([]string{"RIVER", "TORAH", "MANNA", "ANGEL", "PSALM"}, "", "")
	plan, err := sched.Select("2026-03-02")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writePlan(&buf, calendar.Key("2026-03-02"), time.UTC, plan, false))
	assert.Contains(t, buf.String(), "Answer:       *****\n")
	assert.Contains(t, buf.String(), "Date:         2026-03-02 (Mar 2, 2026)\n")
	assert.NotContains(t, buf.String(), "TORAH")

	buf.Reset()
	require.NoError(t, writePlan(&buf, calendar.Key("2026-03-02"), time.UTC, plan, true))
	assert.Contains(t, buf.String(), "Answer:       TORAH\n")
}
