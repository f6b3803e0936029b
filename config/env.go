package config

import (
	"os"
	"strconv"
)

// Environment variable names
const (
	EnvCapacity     = "COMBAT_TEXT_CAPACITY"
	EnvDuration     = "COMBAT_TEXT_DURATION"
	EnvSpawnRate    = "COMBAT_TEXT_SPAWN_PER_FRAME"
	EnvSeed         = "COMBAT_TEXT_SEED"
	EnvFPS          = "COMBAT_TEXT_FPS"
	EnvAudioEnabled = "COMBAT_TEXT_AUDIO_ENABLED"
	EnvMasterVolume = "COMBAT_TEXT_MASTER_VOLUME"
	EnvSampleRate   = "COMBAT_TEXT_SAMPLE_RATE"
)

// ApplyEnv overrides cfg from the environment. Unset or unparsable variables
// leave the current value
func ApplyEnv(cfg *Config) {
	if v, ok := envInt(EnvCapacity); ok {
		cfg.Feature.Capacity = v
	}
	if v := os.Getenv(EnvDuration); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.Feature.Duration = float32(f)
		}
	}
	if v, ok := envInt(EnvSpawnRate); ok {
		cfg.Spawn.PerFrame = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Spawn.Seed = n
		}
	}
	if v, ok := envInt(EnvFPS); ok {
		cfg.Display.FPS = v
	}

	if v := os.Getenv(EnvAudioEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Audio.Enabled = b
		}
	}
	// Master volume is given as 0-100 and clamped
	if v, ok := envInt(EnvMasterVolume); ok {
		cfg.Audio.MasterVolume = float64(min(max(v, 0), 100)) / 100.0
	}
	if v, ok := envInt(EnvSampleRate); ok && v > 0 {
		cfg.Audio.SampleRate = v
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
