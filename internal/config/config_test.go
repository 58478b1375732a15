package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "Make Escape", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, 512, cfg.Assets.AtlasWidth)
	assert.Equal(t, 256, cfg.Assets.AtlasHeight)
	assert.Equal(t, float32(0.5), cfg.Simulation.Step)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join("assets", "atlas.png"), cfg.Assets.AtlasPath())
	assert.Equal(t, filepath.Join("assets", "sprites.bin"), cfg.Assets.SpritesPath())
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverlaysFile(t *testing.T) {
	t.Setenv(EnvAssetsDir, "")
	t.Setenv(EnvLogLevel, "")
	path := writeFile(t, "cfg.yaml", "window:\n  title: Test\nsimulation:\n  step: 1\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Test", cfg.Window.Title)
	assert.Equal(t, float32(1), cfg.Simulation.Step)
	assert.Equal(t, 800, cfg.Window.Width, "unset keys keep defaults")
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv(EnvAssetsDir, "/tmp/art")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/art", cfg.Assets.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(EnvAssetsDir, "")
	t.Setenv(EnvLogLevel, "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "window: [1, 2"))
	assert.Error(t, err)

	tests := []struct {
		name string
		body string
	}{
		{"zero step", "simulation:\n  step: 0\n"},
		{"huge step", "simulation:\n  step: 5\n"},
		{"tiny window", "window:\n  width: 10\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"no atlas", "assets:\n  atlas: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "cfg.yaml", tt.body))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}
