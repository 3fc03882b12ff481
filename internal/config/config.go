// Package config loads renderer settings from TOML files.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/wavefield"
	"github.com/gogpu/wavefield/animation"
)

// Ranges accepted for rendering.
const (
	MinImageSize = 100
	MaxImageSize = 5000
	MaxGridSize  = 10.0
)

// ErrOutOfRange is returned by Validate for a setting outside its range.
var ErrOutOfRange = errors.New("config: value out of range")

// Config holds everything the renderer needs.
type Config struct {
	Width         int     `toml:"width"`
	Height        int     `toml:"height"`
	GridIncrement float32 `toml:"grid_increment"`
	TotalFrames   int     `toml:"total_frames"`
	Alpha         float32 `toml:"alpha"`
	FPS           int     `toml:"fps"`

	Cache         bool `toml:"cache"`
	CacheCapacity int  `toml:"cache_capacity"`

	Output Output `toml:"output"`
	Log    Log    `toml:"log"`
}

// Output controls where and how frames are written.
type Output struct {
	Dir    string `toml:"dir"`
	Format string `toml:"format"`
	Scale  int    `toml:"scale"`
	Dump   bool   `toml:"dump"`
}

// Log configures logging.
type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the settings of the surface image view: a 500x500 image
// with unit grid spacing, 100 frames, opaque, at 30 frames per second.
func Default() Config {
	return Config{
		Width:         500,
		Height:        500,
		GridIncrement: 1,
		TotalFrames:   100,
		Alpha:         1,
		FPS:           animation.MaxFramesPerSecond,
		Output: Output{
			Dir:    ".",
			Format: "png",
			Scale:  1,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads a TOML file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every setting against its range.
func (c Config) Validate() error {
	var errs []error
	if c.Width < MinImageSize || c.Width > MaxImageSize {
		errs = append(errs, fmt.Errorf("%w: width %d not in [%d, %d]", ErrOutOfRange, c.Width, MinImageSize, MaxImageSize))
	}
	if c.Height < MinImageSize || c.Height > MaxImageSize {
		errs = append(errs, fmt.Errorf("%w: height %d not in [%d, %d]", ErrOutOfRange, c.Height, MinImageSize, MaxImageSize))
	}
	if !(c.GridIncrement > 0) || c.GridIncrement > MaxGridSize {
		errs = append(errs, fmt.Errorf("%w: grid increment %v not in (0, %v]", ErrOutOfRange, c.GridIncrement, MaxGridSize))
	}
	if c.TotalFrames < 2 {
		errs = append(errs, fmt.Errorf("%w: total frames %d below 2", ErrOutOfRange, c.TotalFrames))
	}
	if c.Alpha < 0 || c.Alpha > 1 {
		errs = append(errs, fmt.Errorf("%w: alpha %v not in [0, 1]", ErrOutOfRange, c.Alpha))
	}
	if c.FPS < 0 || c.FPS > animation.MaxFramesPerSecond {
		errs = append(errs, fmt.Errorf("%w: fps %d not in [0, %d]", ErrOutOfRange, c.FPS, animation.MaxFramesPerSecond))
	}
	if c.Output.Scale < 1 {
		errs = append(errs, fmt.Errorf("%w: scale %d below 1", ErrOutOfRange, c.Output.Scale))
	}
	return errors.Join(errs...)
}

// Params returns the field parameters for frame.
func (c Config) Params(frame int) wavefield.Params {
	return wavefield.Params{
		Width:         c.Width,
		Height:        c.Height,
		GridIncrement: c.GridIncrement,
		TotalFrames:   c.TotalFrames,
		FrameIndex:    frame,
	}
}

// FieldOptions returns the options for a Field built from c.
func (c Config) FieldOptions() []wavefield.FieldOption {
	return []wavefield.FieldOption{
		wavefield.WithCaching(c.Cache),
		wavefield.WithCacheCapacity(c.CacheCapacity),
	}
}
