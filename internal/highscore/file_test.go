package highscore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		want    int
	}{
		{"missing file", nil, 0},
		{"plain", ptr("1500"), 1500},
		{"trailing newline", ptr("700\n"), 700},
		{"surrounding space", ptr("  42 \n"), 42},
		{"empty", ptr(""), 0},
		{"corrupt", ptr("lots"), 0},
		{"negative", ptr("-5"), 0},
		{"two numbers", ptr("1 2"), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "high_score.txt")
			if tc.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tc.content), 0o644))
			}
			store := &FileStore{Path: path}
			assert.Equal(t, tc.want, store.Load())
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "high_score.txt")
	store := &FileStore{Path: path}

	require.NoError(t, store.Save(1500))
	require.NoError(t, store.Save(300))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "300\n", string(data))
	assert.Equal(t, 300, store.Load())
}

func TestSaveRejectsNegative(t *testing.T) {
	store := &FileStore{Path: filepath.Join(t.TempDir(), "high_score.txt")}

	assert.Error(t, store.Save(-1))
	assert.Equal(t, 0, store.Load())
}

func TestSaveUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	// A regular file where the directory should be.
	store := &FileStore{Path: filepath.Join(blocker, "high_score.txt")}
	err := store.Save(10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "highscore:")
}

func TestReset(t *testing.T) {
	store := &FileStore{Path: filepath.Join(t.TempDir(), "high_score.txt")}
	require.NoError(t, store.Save(900))

	require.NoError(t, store.Reset())
	assert.Equal(t, 0, store.Load())
}

func TestNewFileStoreExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewFileStore("~/.tetris/high_score.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".tetris", "high_score.txt"), store.Path)

	store, err = NewFileStore("high_score.txt")
	require.NoError(t, err)
	assert.Equal(t, "high_score.txt", store.Path)
}

func ptr(s string) *string {
	return &s
}
