// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris game.
package config

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	TickRate   int              `yaml:"tick_rate"` // frames per second of the driver loop
	Seed       int64            `yaml:"seed"`      // 0 picks a time-based seed
	Difficulty DifficultyPreset `yaml:"difficulty"`
	Timing     TimingConfig     `yaml:"timing"`
	Paths      PathsConfig      `yaml:"paths"`
}

// TimingConfig defines how fast pieces fall.
// interval = max(min_interval_ms, base_interval_ms / (1 + level*level_factor))
type TimingConfig struct {
	BaseIntervalMs int     `yaml:"base_interval_ms"`
	MinIntervalMs  int     `yaml:"min_interval_ms"`
	LevelFactor    float64 `yaml:"level_factor"`
}

// PathsConfig defines where files are kept. A leading ~ is expanded.
type PathsConfig struct {
	HighScore   string `yaml:"high_score"`
	Database    string `yaml:"database"`
	LogFile     string `yaml:"log_file"`
	Screenshots string `yaml:"screenshots"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
