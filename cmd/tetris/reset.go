package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/highscore"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagResetHistory bool

var resetCmd = &cobra.Command{
	Use:   "reset-high-score",
	Short: "Reset the high score to 0",
	Long: `Overwrite the high-score file with 0.

With --history the recorded games are deleted as well.

Examples:
  tetris reset-high-score
  tetris reset-high-score --history`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetHistory, "history", false, "Also delete the recorded games")
}

func runReset(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	scoreFile, err := highscore.NewFileStore(cfg.Paths.HighScore)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	previous := scoreFile.Load()
	if err := scoreFile.Reset(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("high score reset", "path", scoreFile.Path, "previous", previous)

	if !flagResetHistory {
		return
	}

	store, err := storage.Open(cfg.Paths.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	clearErr := store.ClearScores()
	store.Close()
	if clearErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", clearErr)
		os.Exit(1)
	}
	logger.Info("history cleared", "path", cfg.Paths.Database)
}
