package game

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadConfig builds the runtime config: defaults, then an optional .env
// file, then ELECTRON_* environment overrides.
func LoadConfig(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Seed = uint64(time.Now().UnixNano())
	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type lookupFunc func(key string) (string, bool)

func applyEnv(cfg *Config, lookup lookupFunc) error {
	floats := []struct {
		key string
		dst *float64
	}{
		{"ELECTRON_PLAYER_SPEED", &cfg.PlayerSpeed},
		{"ELECTRON_OBSTACLE_SPEED", &cfg.ObstacleBaseSpeed},
		{"ELECTRON_OBSTACLE_ACCEL", &cfg.ObstacleAcceleration},
		{"ELECTRON_SPAWN_MIN", &cfg.SpawnIntervalMin},
		{"ELECTRON_SPAWN_MAX", &cfg.SpawnIntervalMax},
		{"ELECTRON_SLOW_DURATION", &cfg.SlowDuration},
		{"ELECTRON_SLOW_FACTOR", &cfg.SlowFactor},
		{"ELECTRON_INTRO_DURATION", &cfg.IntroDuration},
		{"ELECTRON_ATTRACTION_RANGE", &cfg.AttractionRange},
	}
	for _, f := range floats {
		s, ok := lookup(f.key)
		if !ok || s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", f.key, s, err)
		}
		*f.dst = v
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"ELECTRON_MUTE", &cfg.Mute},
		{"ELECTRON_DEBUG", &cfg.Debug},
		{"ELECTRON_EXIT_ON_LOSS", &cfg.ExitOnLoss},
	}
	for _, b := range bools {
		s, ok := lookup(b.key)
		if !ok || s == "" {
			continue
		}
		v, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", b.key, s, err)
		}
		*b.dst = v
	}

	if s, ok := lookup("ELECTRON_FPS"); ok && s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("ELECTRON_FPS=%q: %w", s, err)
		}
		cfg.TargetFPS = v
	}
	if s, ok := lookup("ELECTRON_SEED"); ok && s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("ELECTRON_SEED=%q: %w", s, err)
		}
		cfg.Seed = v
	}

	if cfg.Debug {
		log.Printf("config: seed=%d fps=%d spawn=[%.2f,%.2f] speed=%.0f+%.1f/s",
			cfg.Seed, cfg.TargetFPS, cfg.SpawnIntervalMin, cfg.SpawnIntervalMax,
			cfg.ObstacleBaseSpeed, cfg.ObstacleAcceleration)
	}
	return nil
}
