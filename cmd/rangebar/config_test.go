package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ayn2op/rangebar"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	t.Setenv("RANGEBAR_CONFIG_FILE", "bar.yaml")
	t.Setenv("RANGEBAR_LOG_LEVEL", "debug")

	cfg, err := loadEnv()
	require.NoError(t, err)
	assert.Equal(t, "bar.yaml", cfg.ConfigFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "rangebar.log", cfg.LogFile)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, loadDotEnv(filepath.Join(dir, "missing.env")))

	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("RANGEBAR_STATE_FILE=state.yaml\n"), 0o600))
	t.Setenv("RANGEBAR_STATE_FILE", "")
	os.Unsetenv("RANGEBAR_STATE_FILE")

	require.NoError(t, loadDotEnv(path))
	cfg, err := loadEnv()
	require.NoError(t, err)
	assert.Equal(t, "state.yaml", cfg.StateFile)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger(&buf, "warn", "json")
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	log.Info("dropped")
	log.WithField("left", 2).Warn("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"left":2`)

	_, err = newLogger(&buf, "loud", "text")
	assert.Error(t, err)
	_, err = newLogger(&buf, "info", "xml")
	assert.Error(t, err)
}

func TestStateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")

	_, ok, err := readState(path)
	require.NoError(t, err)
	assert.False(t, ok)

	bar, err := rangebar.NewRangeBar(rangebar.DefaultConfig().WithTickCount(8))
	require.NoError(t, err)
	require.NoError(t, bar.SetThumbIndices(2, 5))
	require.NoError(t, writeState(path, bar.SaveState()))

	state, ok, err := readState(path)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, bar.SaveState(), state)
}

func TestLoadBarConfig(t *testing.T) {
	cfg, err := loadBarConfig("")
	require.NoError(t, err)
	assert.Equal(t, rangebar.DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "bar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_value: 100\nmax_value: 300\n"), 0o600))
	cfg, err = loadBarConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.MinValue)
	assert.Equal(t, 300, cfg.MaxValue)

	_, err = loadBarConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewBar(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	bar, err := newBar(runCmd(), runOptions{}, EnvConfig{}, log)
	require.NoError(t, err)
	minValue, maxValue := bar.GetBounds()
	assert.Equal(t, [2]int{100, 300}, [2]int{minValue, maxValue})
	left, right := bar.GetThumbIndices()
	assert.Equal(t, [2]int{150, 250}, [2]int{left, right})

	cmd := runCmd()
	require.NoError(t, cmd.Flags().Set("left", "120"))
	require.NoError(t, cmd.Flags().Set("max", "200"))
	bar, err = newBar(cmd, runOptions{left: 120, maxValue: 200}, EnvConfig{}, log)
	require.NoError(t, err)
	left, right = bar.GetThumbIndices()
	assert.Equal(t, [2]int{120, 200}, [2]int{left, right})

	path := filepath.Join(t.TempDir(), "state.yaml")
	saved, err := rangebar.NewRangeBar(rangebar.DefaultConfig().WithTickCount(8))
	require.NoError(t, err)
	require.NoError(t, saved.SetThumbIndices(2, 5))
	require.NoError(t, writeState(path, saved.SaveState()))

	bar, err = newBar(runCmd(), runOptions{}, EnvConfig{StateFile: path}, log)
	require.NoError(t, err)
	left, right = bar.GetThumbIndices()
	assert.Equal(t, [2]int{2, 5}, [2]int{left, right}, "a saved state wins over the demo selection")
}
