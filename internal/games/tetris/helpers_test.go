package tetris

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// fakeClock is a manually advanced wall clock.
type fakeClock struct {
	t    time.Time
	step time.Duration // added after every Now call when non-zero
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1_700_000_000, 0)}
}

func (c *fakeClock) Now() time.Time {
	now := c.t
	c.t = c.t.Add(c.step)
	return now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// memStore is an in-memory HighScoreStore.
type memStore struct {
	high  int
	saved []int
	err   error
}

func (m *memStore) Load() int {
	return m.high
}

func (m *memStore) Save(score int) error {
	m.saved = append(m.saved, score)
	if m.err != nil {
		return m.err
	}
	m.high = score
	return nil
}

func newTestGame(t *testing.T, opts ...Option) (*Game, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	opts = append([]Option{WithSeed(7), WithClock(clock.Now)}, opts...)
	return New(opts...), clock
}

// spawnKind starts g and spawns a piece of the given kind.
func spawnKind(t *testing.T, g *Game, kind Kind) *Piece {
	t.Helper()
	g.HandleAction(core.ActionStart)
	if st := g.Advance(); st != StateSpawn {
		t.Fatalf("start should lead to spawn, got %v", st)
	}
	g.Session().Next.Set(kind)
	if st := g.Advance(); st != StateMoving {
		t.Fatalf("spawn should lead to moving, got %v", st)
	}
	p := g.Piece()
	if p == nil || p.Kind != kind {
		t.Fatalf("expected active %v piece, got %+v", kind, p)
	}
	return p
}

func lockRow(f *Field, row int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, c := range except {
		skip[c] = true
	}
	for c := range FieldWidth {
		if !skip[c] {
			f[row][c] = CellLocked
		}
	}
}
