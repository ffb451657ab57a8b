package tetris

// State is a step of the game's finite-state machine.
type State int

const (
	StateStart State = iota
	StateSpawn
	StateMoving
	StateAttaching
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateSpawn:
		return "spawn"
	case StateMoving:
		return "moving"
	case StateAttaching:
		return "attaching"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Spawn region: a new piece occupies at most these rows and columns, so any
// locked cell inside means the next piece cannot enter.
const (
	spawnRegionTop  = 0
	spawnRegionRows = 3
	spawnRegionLeft = SpawnCol - 1
	spawnRegionCols = 4
)

// Transition performs one step of the state machine and returns the next
// state together with the active piece, which is replaced on spawn and
// dropped on start. A nil session always yields StateGameOver untouched.
func Transition(state State, s *Session, p *Piece) (State, *Piece) {
	if s == nil {
		return StateGameOver, p
	}

	switch state {
	case StateStart:
		s.Reset()
		s.prepareNext()
		return StateSpawn, nil

	case StateSpawn:
		kind, ok := s.Next.Kind()
		if !ok {
			// Nothing to spawn; regenerate and try again next step.
			s.prepareNext()
			return StateSpawn, p
		}
		s.prepareNext()
		return StateMoving, NewPiece(kind)

	case StateMoving:
		if p == nil {
			return StateGameOver, p
		}
		return moveDown(s, p), p

	case StateAttaching:
		if p == nil {
			return StateGameOver, p
		}
		// A piece that can still fall was moved off its support.
		if !Collides(&s.Field, p, true) {
			return StateMoving, p
		}
		return attach(s, p), p

	case StateGameOver:
		if s.Score >= s.HighScore {
			s.HighScore = s.Score
			s.saveHighScore(s.Score)
		}
		s.Mode = ModeIdle
		return StateStart, p

	default:
		return StateGameOver, p
	}
}

// moveDown advances the piece one row, or reports that it has landed.
func moveDown(s *Session, p *Piece) State {
	if Collides(&s.Field, p, true) {
		return StateAttaching
	}
	p.Row++
	return StateMoving
}

// attach settles p, scores completed lines and decides whether the next
// piece can spawn.
func attach(s *Session, p *Piece) State {
	s.Field.Lock(p)
	blocked := s.Field.RegionLocked(spawnRegionTop, spawnRegionLeft, spawnRegionRows, spawnRegionCols)

	lines := s.Field.ClearFullLines()
	s.Lines += lines
	s.Score += ScoreForLines(lines)
	s.Level = LevelForScore(s.Score)
	s.Speed = s.Level
	s.HighScore = UpdateHighScore(s.Score, s.HighScore)

	if blocked {
		return StateGameOver
	}
	return StateSpawn
}
