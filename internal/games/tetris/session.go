package tetris

import (
	"math/rand"
	"time"
)

// Mode is the pause flag of a session.
type Mode int

const (
	ModeIdle       Mode = iota // before the first start and after a game over
	ModeRunning                // gravity and moves are live
	ModePaused                 // frozen until resumed
	ModeTerminated             // the driver must stop
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeRunning:
		return "running"
	case ModePaused:
		return "paused"
	case ModeTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// HighScoreStore persists the single best score.
type HighScoreStore interface {
	Load() int
	Save(score int) error
}

// Session is the mutable state of one game process.
type Session struct {
	Field     Field
	Next      Preview
	Score     int
	HighScore int
	Level     int
	Speed     int // mirrors Level
	Lines     int
	Mode      Mode
	State     State

	gate  *Gate
	rng   *rand.Rand
	store HighScoreStore
	err   error
}

// Option configures a Session.
type Option func(*Session)

// WithSeed makes the piece sequence reproducible.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithTiming replaces the drop speeds.
func WithTiming(t Timing) Option {
	return func(s *Session) {
		s.gate = NewGate(t, s.gate.now)
	}
}

// WithClock replaces the wall clock used by the timing gate.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.gate = NewGate(s.gate.timing, now)
	}
}

// WithHighScoreStore loads the high score from store and saves new records
// to it.
func WithHighScoreStore(store HighScoreStore) Option {
	return func(s *Session) {
		s.store = store
	}
}

// NewSession creates an idle session waiting in the start state.
func NewSession(opts ...Option) *Session {
	s := &Session{
		Mode:  ModeIdle,
		State: StateStart,
		gate:  NewGate(DefaultTiming(), nil),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store != nil {
		s.HighScore = max(s.store.Load(), 0)
	}
	return s
}

// Reset clears the board and the counters for a new game.
// The high score survives.
func (s *Session) Reset() {
	s.Field.Clear()
	s.Next.Clear()
	s.Score = 0
	s.Level = 0
	s.Speed = 0
	s.Lines = 0
}

// Gate returns the session's timing gate.
func (s *Session) Gate() *Gate {
	return s.gate
}

// Err returns the last high-score persistence error, if any.
func (s *Session) Err() error {
	return s.err
}

// Running reports whether moves and gravity are live.
func (s *Session) Running() bool {
	return s.Mode == ModeRunning
}

// Terminated reports whether the driver loop should stop.
func (s *Session) Terminated() bool {
	return s.Mode == ModeTerminated
}

// prepareNext puts a random kind into the preview.
func (s *Session) prepareNext() {
	s.Next.Set(Kind(s.rng.Intn(KindCount)))
}

// saveHighScore writes score to the store. Failures are kept for the driver
// to report; the game goes on.
func (s *Session) saveHighScore(score int) {
	if s.store == nil {
		return
	}
	s.err = s.store.Save(score)
}
