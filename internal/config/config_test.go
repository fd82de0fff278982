package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.DataDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, filepath.Join(cfg.DataDir, "magicmeal.log"), cfg.LogFile)
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MAGICMEAL_DATA_DIR", dir)
	t.Setenv("MAGICMEAL_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, filepath.Join(dir, "magicmeal.log"), cfg.LogFile)
}

func TestExplicitLogFileSurvivesDataDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MAGICMEAL_DATA_DIR", dir)
	t.Setenv("MAGICMEAL_LOG_FILE", "stderr")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "stderr", cfg.LogFile)
}

func TestConfigFileInDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MAGICMEAL_DATA_DIR", dir)

	yaml := "log_level: warn\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)

	// Environment still wins over the file.
	t.Setenv("MAGICMEAL_LOG_LEVEL", "error")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}
