// Package tetris implements the falling-block game engine: the piece catalog,
// the field model, collision, scoring, the timing gate and the state machine
// that drives spawn, gravity, attachment and game over.
//
// The engine is pure logic. Input arrives as core.Action values, output
// leaves as an Info snapshot, and the platform decides how to poll and draw.
package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ID is the identifier used for score storage.
const ID = "tetris"

// Title is the human-readable game name.
const Title = "Tetris"

// Game owns one session and its active piece.
type Game struct {
	session *Session
	piece   *Piece
}

// New creates a game with a fresh idle session.
func New(opts ...Option) *Game {
	return &Game{session: NewSession(opts...)}
}

// Session returns the owned session.
func (g *Game) Session() *Session {
	return g.session
}

// Piece returns the active piece, nil before the first spawn.
func (g *Game) Piece() *Piece {
	return g.piece
}

// HandleAction applies a user action to the session and the active piece.
func (g *Game) HandleAction(a core.Action) {
	HandleAction(g.session, g.piece, a)
}

// Advance runs one state machine transition regardless of the timing gate.
func (g *Game) Advance() State {
	s := g.session
	s.State, g.piece = Transition(s.State, s, g.piece)
	return s.State
}

// Tick is the per-frame update: it strips the overlay, lets gravity advance
// the state machine when the timing gate allows, and redraws the overlay.
func (g *Game) Tick() State {
	s := g.session
	s.Field.ClearTransient()
	if s.Gate().ShouldTick(s.Level, !s.Running()) {
		g.Advance()
	}
	s.Field.DrawTransient(g.piece)
	return s.State
}

// Frame is one iteration of the driver loop minus rendering: the polled
// action is applied, then the game ticks.
func (g *Game) Frame(a core.Action) State {
	g.HandleAction(a)
	return g.Tick()
}

// Terminated reports whether the driver should stop.
func (g *Game) Terminated() bool {
	return g.session.Terminated()
}

// Info returns a snapshot of everything a renderer needs.
func (g *Game) Info() Info {
	s := g.session
	info := Info{
		Field:     s.Field,
		Next:      s.Next,
		Score:     s.Score,
		HighScore: s.HighScore,
		Level:     s.Level,
		Speed:     s.Speed,
		Lines:     s.Lines,
		Mode:      s.Mode,
		State:     s.State,
	}
	if g.piece != nil {
		info.Falling = g.piece.Kind
		info.HasPiece = true
	}
	return info
}
