package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func frozenClock() func() time.Time {
	now := time.Unix(1_700_000_000, 0)
	return func() time.Time { return now }
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	game := tetris.New(tetris.WithSeed(5), tetris.WithClock(frozenClock()))
	opts.Config = core.RuntimeConfig{ScreenW: 60, ScreenH: 30, TickRate: 60}
	return NewModel(game, opts)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, TickMsg(time.Now()))
}

func TestKeysWaitForTick(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = update(t, m, runeKey("s"))
	if m.Game().Session().Mode != tetris.ModeIdle {
		t.Fatal("a key press must not touch the game before the next tick")
	}

	m, cmd := tick(t, m)
	if m.Game().Session().Mode != tetris.ModeRunning {
		t.Errorf("mode = %v, expected running", m.Game().Session().Mode)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestLatestKeyWins(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = update(t, m, runeKey("p"))
	m, _ = update(t, m, runeKey("s"))
	m, _ = tick(t, m)

	if m.Game().Session().Mode != tetris.ModeRunning {
		t.Errorf("mode = %v, expected running", m.Game().Session().Mode)
	}
}

func TestQuitNotReplacedByLaterKey(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = update(t, m, runeKey("q"))
	m, _ = update(t, m, runeKey("s"))
	m, cmd := tick(t, m)

	if !m.Game().Terminated() {
		t.Fatal("a pending quit must survive a later key press")
	}
	if cmd == nil {
		t.Fatal("expected tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected the command to quit the program")
	}
}

func TestQuitTerminatesOnTick(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	m, cmd := tick(t, m)

	if !m.Game().Terminated() {
		t.Fatal("game should be terminated")
	}
	if cmd == nil {
		t.Fatal("expected tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected the command to quit the program")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestGameOverRecordedOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, Options{History: store})
	s := m.Game().Session()

	// Spend the gate's first free tick so the frozen clock holds the state.
	s.Gate().ShouldTick(0, false)
	s.Mode = tetris.ModeRunning
	s.State = tetris.StateGameOver
	s.Score, s.Level, s.Lines = 700, 1, 3

	for range 3 {
		m, _ = tick(t, m)
	}

	games, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("recorded %d games, expected 1", len(games))
	}
	if games[0].Score != 700 || games[0].Level != 1 || games[0].Lines != 3 {
		t.Errorf("recorded %+v", games[0])
	}
}

func TestSpawnLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	now := time.Unix(1_700_000_000, 0)
	clock := func() time.Time {
		now = now.Add(time.Second)
		return now
	}
	game := tetris.New(tetris.WithSeed(5), tetris.WithClock(clock))
	m := NewModel(game, Options{
		Config: core.RuntimeConfig{ScreenW: 60, ScreenH: 30, TickRate: 60},
		Logger: logger,
	})

	m, _ = update(t, m, runeKey("s"))
	m, _ = tick(t, m)
	m, _ = tick(t, m)

	if m.Game().Session().State != tetris.StateMoving {
		t.Fatalf("state = %v, expected moving", m.Game().Session().State)
	}
	out := buf.String()
	if !strings.Contains(out, "piece spawned") {
		t.Errorf("log should report the spawn, got %q", out)
	}
	if !strings.Contains(out, "interval=") {
		t.Errorf("log should carry the drop interval, got %q", out)
	}
}

func TestViewShowsBoardAndHelp(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})

	view := m.View()
	if !strings.Contains(view, "TETRIS") {
		t.Error("idle view should show the title banner")
	}
	if !strings.Contains(view, "RECORD") {
		t.Error("view should show the sidebar")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should show the help line")
	}
}

func TestScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	m := newTestModel(t, Options{ScreenshotDir: dir})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 screenshot, found %d", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "RECORD") {
		t.Error("screenshot should contain the rendered screen")
	}
	if m.input.Take() != core.ActionNone {
		t.Error("screenshot key must not queue a game action")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.DrawTextColor(0, 1, "ef", core.Color(200))

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") || !strings.Contains(out, "ef") {
		t.Errorf("rendered output lost text: %q", out)
	}
}
