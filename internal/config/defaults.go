package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hard-coded configuration, used when even
// the embedded YAML cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		TickRate:   60,
		Seed:       0,
		Difficulty: DifficultyNormal,
		Timing: TimingConfig{
			BaseIntervalMs: 1000,
			MinIntervalMs:  50,
			LevelFactor:    0.5,
		},
		Paths: PathsConfig{
			HighScore:   "~/.tetris/high_score.txt",
			Database:    "~/.tetris/scores.db",
			LogFile:     "~/.tetris/tetris.log",
			Screenshots: "~/.tetris/screenshots",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
