package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Options configures the game screen.
type Options struct {
	Config        core.RuntimeConfig
	History       *storage.Store // optional; finished games are recorded here
	Logger        *log.Logger    // optional; discards when nil
	ScreenshotDir string         // optional; ctrl+s is ignored when empty
}

// Model is the Bubble Tea model driving one tetris game.
//
// Keys only fill the pending action slot. Every TickMsg runs one pass of the
// driver loop: the pending action is applied, the game ticks, and View
// renders the snapshot.
type Model struct {
	game       *tetris.Game
	screen     *core.Screen
	input      core.InputSlot
	keys       KeyMap
	help       help.Model
	history    *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	shotDir    string
	started    time.Time
	lastErr    error
	quitting   bool
	scoreSaved bool // Whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model for game.
func NewModel(game *tetris.Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Config
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(max(cfg.ScreenW, tetris.MinScreenW), max(cfg.ScreenH-1, tetris.MinScreenH)),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		history: opts.History,
		logger:  logger,
		config:  cfg,
		shotDir: opts.ScreenshotDir,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey stores the action for the next tick. The latest key wins.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if action := m.keys.MapKey(msg); action != core.ActionNone {
		m.input.Put(action)
	}
	return m, nil
}

// handleResize keeps the screen buffer in sync with the terminal. One row is
// reserved for the help line.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one pass of the driver loop.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	s := m.game.Session()
	prev := s.State

	state := m.game.Frame(m.input.Take())

	if prev == tetris.StateStart && state == tetris.StateSpawn {
		m.started = time.Now()
		m.scoreSaved = false
		m.logger.Info("game started", "high_score", s.HighScore)
	}

	if prev == tetris.StateSpawn && state == tetris.StateMoving {
		if p := m.game.Piece(); p != nil {
			m.logger.Debug("piece spawned",
				"kind", p.Kind,
				"level", s.Level,
				"interval", s.Gate().Timing().Interval(s.Level),
			)
		}
	}

	if state == tetris.StateGameOver && !m.scoreSaved {
		m.recordGame()
		m.scoreSaved = true
	}

	if err := s.Err(); err != nil && !errors.Is(err, m.lastErr) {
		m.logger.Error("could not save high score", "error", err)
	}
	m.lastErr = s.Err()

	if m.game.Terminated() {
		m.logger.Info("terminated", "score", s.Score, "high_score", s.HighScore)
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// recordGame logs the finished game and stores it in the history.
func (m *Model) recordGame() {
	info := m.game.Info()
	duration := time.Duration(0)
	if !m.started.IsZero() {
		duration = time.Since(m.started).Round(time.Second)
	}

	m.logger.Info("game over",
		"score", info.Score,
		"level", info.Level,
		"lines", info.Lines,
		"duration", duration,
	)

	if m.history == nil {
		return
	}
	_, err := m.history.SaveGame(storage.GameRecord{
		Score:    info.Score,
		Level:    info.Level,
		Lines:    info.Lines,
		Duration: duration,
	})
	if err != nil {
		m.logger.Warn("could not record game", "error", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}

	tetris.Render(m.screen, m.game.Info())

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", tetris.ID, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	tetris.Render(m.screen, m.game.Info())

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game returns the driven game.
func (m Model) Game() *tetris.Game {
	return m.game
}

// Run starts the Bubble Tea program and blocks until the game is terminated.
func Run(game *tetris.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
