package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "tetris.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
//
// Values missing from a file keep their defaults. Only a custom path reports
// read or parse errors; the other locations are skipped when unusable.
func Load(customPath string) (TetrisConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultTetrisYAML)
	if err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the hard-coded defaults and validates the result.
func parse(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports values the game cannot run with.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if c.Timing.BaseIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.base_interval_ms must be positive, got %d", c.Timing.BaseIntervalMs))
	}
	if c.Timing.MinIntervalMs < 0 {
		errs = append(errs, fmt.Errorf("timing.min_interval_ms must not be negative, got %d", c.Timing.MinIntervalMs))
	}
	if c.Timing.LevelFactor < 0 {
		errs = append(errs, fmt.Errorf("timing.level_factor must not be negative, got %g", c.Timing.LevelFactor))
	}
	if _, err := ParsePreset(string(c.Difficulty)); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ExpandPaths returns a copy of c with ~ expanded in every path.
func (c TetrisConfig) ExpandPaths() (TetrisConfig, error) {
	for _, p := range []*string{&c.Paths.HighScore, &c.Paths.Database, &c.Paths.LogFile, &c.Paths.Screenshots} {
		expanded, err := ExpandHome(*p)
		if err != nil {
			return c, err
		}
		*p = expanded
	}
	return c, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}
