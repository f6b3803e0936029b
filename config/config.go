// Package config loads demo and pipeline settings: built-in defaults, an optional
// TOML file, then COMBAT_TEXT_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/combat-text/audio"
	"github.com/lixenwraith/combat-text/engine"
	"github.com/lixenwraith/combat-text/glyph"
	"github.com/lixenwraith/combat-text/parameter"
	"github.com/lixenwraith/combat-text/render"
)

// ErrInvalid is returned when a loaded configuration fails validation
var ErrInvalid = errors.New("config: invalid")

// Config is the full settings tree
type Config struct {
	Feature FeatureSection `toml:"feature"`
	Spawn   SpawnSection   `toml:"spawn"`
	Display DisplaySection `toml:"display"`
	Audio   AudioSection   `toml:"audio"`
}

// FeatureSection sizes the ring and instance buffer
type FeatureSection struct {
	Capacity        int     `toml:"capacity"`
	Duration        float32 `toml:"duration"`
	ThreadGroupSize int     `toml:"thread_group_size"`
	Synced          bool    `toml:"synced"`
}

// SpawnSection drives the demo spawner
type SpawnSection struct {
	PerFrame int     `toml:"per_frame"`
	Extent   float32 `toml:"extent"`
	Height   float32 `toml:"height"`
	MaxValue int     `toml:"max_value"`
	Styles   int     `toml:"styles"`
	Seed     int64   `toml:"seed"`
}

// DisplaySection controls the terminal presenter
type DisplaySection struct {
	FPS  int `toml:"fps"`
	Rise int `toml:"rise"`
}

// AudioSection mirrors audio.AudioConfig in file-friendly units
type AudioSection struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
	HitVolume    float64 `toml:"hit_volume"`
	SampleRate   int     `toml:"sample_rate"`
	MinGapMillis int     `toml:"min_gap_ms"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Feature: FeatureSection{
			Capacity:        parameter.MaxRenderCount,
			Duration:        parameter.Duration,
			ThreadGroupSize: parameter.ThreadGroupSize,
			Synced:          true,
		},
		Spawn: SpawnSection{
			PerFrame: parameter.SpawnPerFrame,
			Extent:   parameter.SpawnExtent,
			Height:   parameter.SpawnHeight,
			MaxValue: parameter.MaxSpawnValue,
			Styles:   parameter.SpawnStyles,
			Seed:     parameter.SpawnSeed,
		},
		Display: DisplaySection{
			FPS:  parameter.FPS,
			Rise: render.DefaultRise,
		},
		Audio: AudioSection{
			Enabled:      true,
			MasterVolume: parameter.MasterVolume,
			HitVolume:    parameter.HitVolume,
			SampleRate:   parameter.AudioSampleRate,
			MinGapMillis: int(parameter.MinSoundGap / time.Millisecond),
		},
	}
}

// Load builds a configuration from defaults, the TOML file at path (skipped when
// path is empty) and the environment, then validates it
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		defer f.Close()

		if err := Decode(f, cfg); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	ApplyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode reads TOML from r over the values already in cfg. Unknown keys are rejected
func Decode(r io.Reader, cfg *Config) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Write encodes cfg as TOML
func Write(w io.Writer, cfg *Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Validate checks every section and reports all problems at once
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Feature.Capacity > 0, "feature.capacity %d must be positive", c.Feature.Capacity)
	check(c.Feature.Duration > 0, "feature.duration %v must be positive", c.Feature.Duration)
	check(c.Feature.ThreadGroupSize > 0, "feature.thread_group_size %d must be positive", c.Feature.ThreadGroupSize)

	check(c.Spawn.PerFrame >= 0, "spawn.per_frame %d must not be negative", c.Spawn.PerFrame)
	check(c.Spawn.Extent > 0, "spawn.extent %v must be positive", c.Spawn.Extent)
	check(c.Spawn.MaxValue > 0 && c.Spawn.MaxValue <= glyph.MaxValue+1,
		"spawn.max_value %d must be within [1, %d]", c.Spawn.MaxValue, glyph.MaxValue+1)
	check(c.Spawn.Styles > 0 && c.Spawn.Styles <= glyph.StyleCount,
		"spawn.styles %d must be within [1, %d]", c.Spawn.Styles, glyph.StyleCount)

	check(c.Display.FPS > 0, "display.fps %d must be positive", c.Display.FPS)
	check(c.Display.Rise >= 0, "display.rise %d must not be negative", c.Display.Rise)

	check(c.Audio.MinGapMillis >= 0, "audio.min_gap_ms %d must not be negative", c.Audio.MinGapMillis)
	if err := c.AudioConfig().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}

	return errors.Join(errs...)
}

// FeatureConfig returns the engine settings
func (c *Config) FeatureConfig() engine.FeatureConfig {
	return engine.FeatureConfig{
		Capacity:        c.Feature.Capacity,
		Duration:        c.Feature.Duration,
		ThreadGroupSize: c.Feature.ThreadGroupSize,
		Synced:          c.Feature.Synced,
	}
}

// AudioConfig returns the audio settings
func (c *Config) AudioConfig() *audio.AudioConfig {
	return &audio.AudioConfig{
		Enabled:      c.Audio.Enabled,
		MasterVolume: c.Audio.MasterVolume,
		HitVolume:    c.Audio.HitVolume,
		SampleRate:   c.Audio.SampleRate,
		MinGap:       time.Duration(c.Audio.MinGapMillis) * time.Millisecond,
	}
}

// FrameInterval returns the frame period at the configured FPS
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Display.FPS)
}
