package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/highscore"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing Tetris.

Controls:
  S/Enter     - Start or resume
  P/Esc       - Pause
  Left/Right  - Move (also H/L)
  Up          - Rotate (also K)
  Down        - Soft drop (also J)
  Space       - Hard drop
  Ctrl+S      - Screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower start, speeds up with level
  normal - Standard speed, speeds up with level
  hard   - Faster start, speeds up with level
  fixed  - Standard speed, never speeds up

Examples:
  tetris play
  tetris play --difficulty easy
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogFile(cfg.Paths.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	scoreFile, err := highscore.NewFileStore(cfg.Paths.HighScore)
	if err != nil {
		return err
	}

	// Open game history
	history, err := storage.Open(cfg.Paths.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		// Continue without history - game still works
		history = nil
	}
	if history != nil {
		defer history.Close()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := tetris.New(
		tetris.WithSeed(seed),
		tetris.WithTiming(tetris.TimingFromConfig(cfg.EffectiveTiming())),
		tetris.WithHighScoreStore(scoreFile),
	)
	logger.Info("session opened",
		"seed", seed,
		"difficulty", cfg.Difficulty,
		"high_score", game.Session().HighScore,
	)

	runErr := tui.Run(game, tui.Options{
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.TickRate,
		},
		History:       history,
		Logger:        logger,
		ScreenshotDir: cfg.Paths.Screenshots,
	})
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}

	if err := game.Session().Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return nil
}
