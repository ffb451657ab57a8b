package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// HandleAction applies one user action to the session and its active piece.
// The falling piece overlay is always cleared first so the next draw reflects
// the new position. Unknown actions change nothing else.
func HandleAction(s *Session, p *Piece, a core.Action) {
	if s == nil {
		return
	}
	s.Field.ClearTransient()

	switch a {
	case core.ActionStart:
		if s.Mode == ModePaused || s.Mode == ModeIdle {
			s.Mode = ModeRunning
		}
	case core.ActionPause:
		switch s.Mode {
		case ModeRunning:
			s.Mode = ModePaused
		case ModePaused:
			s.Mode = ModeRunning
		}
	case core.ActionTerminate:
		s.Mode = ModeTerminated
		s.saveHighScore(UpdateHighScore(s.Score, s.HighScore))
	case core.ActionLeft:
		shift(s, p, -1)
	case core.ActionRight:
		shift(s, p, 1)
	case core.ActionUp:
		rotate(s, p)
	case core.ActionDown:
		softDrop(s, p)
	case core.ActionDrop:
		hardDrop(s, p)
	}
}

// canMove reports whether p may be moved by the player right now.
func canMove(s *Session, p *Piece) bool {
	return p != nil && s.Running() && (s.State == StateMoving || s.State == StateAttaching)
}

func shift(s *Session, p *Piece, dir int) {
	if !canMove(s, p) {
		return
	}
	p.Col += dir
	if Collides(&s.Field, p, false) {
		p.Col -= dir
	}
}

func rotate(s *Session, p *Piece) {
	if !canMove(s, p) {
		return
	}
	prev := p.Rotation
	p.SetRotation(prev + 1)
	if Collides(&s.Field, p, false) {
		p.SetRotation(prev)
	}
}

// softDrop moves the piece one row down right away, ignoring the timing gate.
func softDrop(s *Session, p *Piece) {
	if !canMove(s, p) {
		return
	}
	s.State = moveDown(s, p)
}

// hardDrop keeps falling until the piece lands. An anchor can start above the
// field, so the bound covers the field plus one piece of headroom.
func hardDrop(s *Session, p *Piece) {
	if !canMove(s, p) {
		return
	}
	state := StateMoving
	for i := 0; i < FieldHeight+PreviewSize && state == StateMoving; i++ {
		state = moveDown(s, p)
	}
	s.State = state
}
