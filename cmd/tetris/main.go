// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                    - Play (same as "tetris play")
//	tetris play               - Play a game
//	tetris scores             - Show recorded games
//	tetris reset-high-score   - Reset the high-score file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for a reproducible piece sequence
//	--db <path>           - Set database path (default: ~/.tetris/scores.db)
//	--high-score <path>   - Set high-score file (default: ~/.tetris/high_score.txt)
//	--config <path>       - Use a custom YAML config
//	--difficulty <name>   - easy, normal, hard or fixed
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagHighScore  string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - the falling-block puzzle in your terminal",
	Long: `Tetris is a terminal-based falling-block puzzle game.

Available commands:
  play              - Play a game (default)
  scores            - View recorded games
  reset-high-score  - Reset the high score

Examples:
  tetris
  tetris play --difficulty hard
  tetris scores --tui
  tetris --config ./my-tetris.yaml`,
	Run: runPlay,
}

func init() {
	defaults := config.DefaultTetrisConfig()

	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", defaults.TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaults.Paths.Database, "Path to game history database")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "high-score", defaults.Paths.HighScore, "Path to high-score file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetCmd)
}

// loadConfig reads the config file and applies the flags the user set
// explicitly. Paths come back with ~ expanded.
func loadConfig(cmd *cobra.Command) (config.TetrisConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Paths.Database = flagDBPath
	}
	if flags.Changed("high-score") {
		cfg.Paths.HighScore = flagHighScore
	}
	if flags.Changed("difficulty") {
		cfg.Difficulty = config.DifficultyPreset(flagDifficulty)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg.ExpandPaths()
}

// newLogger returns a logger writing to w in the game's format.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
	})
}

// openLogFile returns a logger appending to path. The TUI owns the terminal
// while playing, so logs cannot go to stderr. An empty path discards logs.
func openLogFile(path string) (*log.Logger, func(), error) {
	if path == "" {
		return newLogger(io.Discard), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return newLogger(f), func() { f.Close() }, nil
}
