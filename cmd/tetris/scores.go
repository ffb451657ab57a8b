package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/highscore"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded games",
	Long: `Display the best recorded games and the overall statistics.

Examples:
  tetris scores
  tetris scores --limit 25
  tetris scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to list")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open game history
	store, err := storage.Open(cfg.Paths.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			newLogger(os.Stderr).Error("scoreboard failed", "error", err)
		}
		return
	}

	games, err := store.TopScores(flagScoresLimit)
	if err != nil {
		newLogger(os.Stderr).Error("could not read scores", "error", err)
		return
	}

	fmt.Println("High Scores - Tetris")
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetris play' to set the first high score!")
	} else {
		fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-8s  %s\n", "Rank", "Score", "Level", "Lines", "Time", "Date")
		fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-8s  %s\n", "----", "-----", "-----", "-----", "----", "----")
		for i, g := range games {
			fmt.Printf("  %-4d  %-8d  %-5d  %-5d  %-8s  %s\n",
				i+1, g.Score, g.Level, g.Lines, g.Duration, g.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	fmt.Println()
	if scoreFile, err := highscore.NewFileStore(cfg.Paths.HighScore); err == nil {
		fmt.Printf("Record: %d\n", scoreFile.Load())
	}
	if best, err := store.HighScore(); err == nil && best > 0 {
		fmt.Printf("Best in history: %d\n", best)
	}
	if stats, err := store.Stats(); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Games: %d  Average: %.0f  Lines: %d  Time played: %s\n",
			stats.GamesCount, stats.AvgScore, stats.TotalLines, stats.PlayTime)
	}
}
