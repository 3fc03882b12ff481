package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wavefield.toml")
	data := `
width = 800
grid_increment = 0.5
cache = true
cache_capacity = 16

[output]
format = "tiff"
scale = 2

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 500, cfg.Height, "unset keys keep defaults")
	assert.Equal(t, float32(0.5), cfg.GridIncrement)
	assert.True(t, cfg.Cache)
	assert.Equal(t, 16, cfg.CacheCapacity)
	assert.Equal(t, "tiff", cfg.Output.Format)
	assert.Equal(t, 2, cfg.Output.Scale)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = ["), 0o600))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidateRanges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"width too small", func(c *Config) { c.Width = 99 }},
		{"height too large", func(c *Config) { c.Height = 5001 }},
		{"zero grid", func(c *Config) { c.GridIncrement = 0 }},
		{"grid too large", func(c *Config) { c.GridIncrement = 10.5 }},
		{"one frame", func(c *Config) { c.TotalFrames = 1 }},
		{"negative alpha", func(c *Config) { c.Alpha = -0.1 }},
		{"fps too high", func(c *Config) { c.FPS = 31 }},
		{"zero scale", func(c *Config) { c.Output.Scale = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrOutOfRange)
		})
	}
}

func TestParams(t *testing.T) {
	cfg := Default()
	p := cfg.Params(7)
	assert.Equal(t, 500, p.Width)
	assert.Equal(t, 100, p.TotalFrames)
	assert.Equal(t, 7, p.FrameIndex)
	assert.NoError(t, p.Validate())
	assert.Len(t, cfg.FieldOptions(), 2)
}
