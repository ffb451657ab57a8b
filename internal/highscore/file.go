// Package highscore keeps the best score in a plain text file holding a
// single non-negative integer.
package highscore

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// FileStore reads and writes the high-score file at Path.
type FileStore struct {
	Path string
}

// NewFileStore returns a store for path. A leading ~ is expanded.
func NewFileStore(path string) (*FileStore, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("highscore: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return &FileStore{Path: path}, nil
}

// Load returns the stored score. A missing, unreadable or corrupt file
// reads as 0.
func (f *FileStore) Load() int {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return 0
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		return 0
	}
	return score
}

// Save overwrites the file with score.
func (f *FileStore) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("highscore: negative score %d", score)
	}
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(f.Path, []byte(strconv.Itoa(score)+"\n"), 0o644); err != nil {
		return fmt.Errorf("highscore: cannot write %s: %w", f.Path, err)
	}
	return nil
}

// Reset sets the stored score back to 0.
func (f *FileStore) Reset() error {
	return f.Save(0)
}

// Ensure FileStore implements tetris.HighScoreStore
var _ tetris.HighScoreStore = (*FileStore)(nil)
