package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth    = 9
	DefaultHeight   = 12
	DefaultAttempts = 30
	DefaultBusts    = 2
)

// GameConfig holds the session settings for a game of ghostbust.
// A zero Seed means the CLI seeds from the clock.
type GameConfig struct {
	Width    int    `json:"width" yaml:"width"`
	Height   int    `json:"height" yaml:"height"`
	Attempts int    `json:"attempts" yaml:"attempts"`
	Busts    int    `json:"busts" yaml:"busts"`
	Seed     int64  `json:"seed" yaml:"seed"`
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// Default returns the standard 9x12 board with 30 attempts and 2 busts.
func Default() *GameConfig {
	return &GameConfig{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Attempts: DefaultAttempts,
		Busts:    DefaultBusts,
		LogLevel: "info",
	}
}

// Load builds a config with priority env > file > defaults.
// An empty path or a missing file falls back to defaults.
func Load(path string) (*GameConfig, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}
	if err := loadEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *GameConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	// Try YAML first, then JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return fmt.Errorf("parse config (tried YAML and JSON): YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}
	return nil
}

func loadEnv(cfg *GameConfig) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"GHOSTBUST_WIDTH", &cfg.Width},
		{"GHOSTBUST_HEIGHT", &cfg.Height},
		{"GHOSTBUST_ATTEMPTS", &cfg.Attempts},
		{"GHOSTBUST_BUSTS", &cfg.Busts},
	}
	for _, e := range ints {
		if v := os.Getenv(e.key); v != "" {
			i, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", e.key, err)
			}
			*e.dst = i
		}
	}
	if v := os.Getenv("GHOSTBUST_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("GHOSTBUST_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("GHOSTBUST_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

// Validate checks that a session can be built from the config.
func (c *GameConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("board must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if c.Attempts <= 0 {
		return errors.New("attempts must be positive")
	}
	if c.Busts <= 0 {
		return errors.New("busts must be positive")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// DeepCopy returns an independent copy of the config.
func (c *GameConfig) DeepCopy() *GameConfig {
	cp := *c
	return &cp
}
