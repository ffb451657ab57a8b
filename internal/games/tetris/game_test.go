package tetris

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestTickIdleDoesNotAdvance(t *testing.T) {
	g, _ := newTestGame(t)

	for range 5 {
		if state := g.Tick(); state != StateStart {
			t.Fatalf("idle tick state = %v, want start", state)
		}
	}
}

func TestTickIsGated(t *testing.T) {
	g, clock := newTestGame(t)
	g.HandleAction(core.ActionStart)

	if state := g.Tick(); state != StateSpawn {
		t.Fatalf("first tick state = %v, want spawn", state)
	}
	if state := g.Tick(); state != StateSpawn {
		t.Fatalf("tick without elapsed time state = %v, want spawn", state)
	}

	clock.Advance(time.Second)
	if state := g.Tick(); state != StateMoving {
		t.Fatalf("tick after 1s state = %v, want moving", state)
	}
	row := g.Piece().Row

	clock.Advance(500 * time.Millisecond)
	g.Tick()
	if g.Piece().Row != row {
		t.Error("gravity fired before the interval elapsed")
	}

	clock.Advance(500 * time.Millisecond)
	g.Tick()
	if g.Piece().Row != row+1 {
		t.Errorf("row = %d, want %d", g.Piece().Row, row+1)
	}
}

func TestTickDrawsOverlay(t *testing.T) {
	g, _ := newTestGame(t)
	p := spawnKind(t, g, KindO)
	p.Row = 5

	g.Tick()

	info := g.Info()
	for _, b := range p.Blocks() {
		if info.Field[b.Row][b.Col] != CellTransient {
			t.Errorf("cell (%d, %d) = %d, want transient", b.Row, b.Col, info.Field[b.Row][b.Col])
		}
	}
}

func TestPausedTickFreezes(t *testing.T) {
	g, clock := newTestGame(t)
	p := spawnKind(t, g, KindO)
	g.HandleAction(core.ActionPause)
	row := p.Row

	clock.Advance(10 * time.Second)
	g.Tick()

	if p.Row != row {
		t.Errorf("paused piece fell from %d to %d", row, p.Row)
	}
}

func TestInfoIsACopy(t *testing.T) {
	g, _ := newTestGame(t)
	spawnKind(t, g, KindS)

	info := g.Info()
	info.Field[0][0] = CellLocked
	info.Next.Clear()
	info.Score = 999

	s := g.Session()
	if s.Field[0][0] != CellEmpty || s.Score != 0 {
		t.Error("mutating the snapshot changed the session")
	}
	if _, ok := s.Next.Kind(); !ok {
		t.Error("mutating the snapshot cleared the preview")
	}
	if !g.Info().HasPiece || g.Info().Falling != KindS {
		t.Errorf("snapshot piece = %v, %v", g.Info().Falling, g.Info().HasPiece)
	}
}

type scriptedInput struct {
	actions []core.Action
}

func (s *scriptedInput) Poll() core.Action {
	if len(s.actions) == 0 {
		return core.ActionTerminate
	}
	a := s.actions[0]
	s.actions = s.actions[1:]
	return a
}

type recorder struct {
	frames []Info
}

func (r *recorder) Render(info Info) {
	r.frames = append(r.frames, info)
}

func TestRunStopsOnTerminate(t *testing.T) {
	clock := newFakeClock()
	clock.step = time.Second
	store := &memStore{}
	g := New(WithSeed(3), WithClock(clock.Now), WithHighScoreStore(store))
	in := &scriptedInput{actions: []core.Action{
		core.ActionStart, core.ActionNone, core.ActionNone, core.ActionLeft,
	}}
	out := &recorder{}

	if err := Run(context.Background(), g, in, out, 0); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(out.frames) != 5 {
		t.Fatalf("rendered %d frames, want 5", len(out.frames))
	}
	last := out.frames[len(out.frames)-1]
	if last.Mode != ModeTerminated {
		t.Errorf("last frame mode = %v, want terminated", last.Mode)
	}
	if !out.frames[2].HasPiece || out.frames[2].State != StateMoving {
		t.Errorf("third frame should show a moving piece, got %v", out.frames[2].State)
	}
	if len(store.saved) != 1 {
		t.Errorf("terminate should save once, saved %v", store.saved)
	}
}

type idleInput struct{}

func (idleInput) Poll() core.Action { return core.ActionNone }

func TestRunHonorsContext(t *testing.T) {
	g, _ := newTestGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, g, idleInput{}, &recorder{}, 0)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestRunWithInterval(t *testing.T) {
	g, _ := newTestGame(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	out := &recorder{}
	err := Run(ctx, g, idleInput{}, out, 5*time.Millisecond)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, want context.DeadlineExceeded", err)
	}
	if len(out.frames) == 0 {
		t.Error("no frames rendered")
	}
}
