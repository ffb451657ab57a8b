package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// Timing controls how fast gravity pulls the piece down.
type Timing struct {
	Base        time.Duration // interval at level 0
	Min         time.Duration // floor for high levels
	LevelFactor float64       // interval = Base / (1 + level*LevelFactor)
}

// DefaultTiming returns the stock drop speeds: one row per second at level 0,
// never faster than one row per 50ms.
func DefaultTiming() Timing {
	return Timing{
		Base:        time.Second,
		Min:         50 * time.Millisecond,
		LevelFactor: 0.5,
	}
}

// TimingFromConfig converts the configured milliseconds into a Timing.
func TimingFromConfig(c config.TimingConfig) Timing {
	return Timing{
		Base:        time.Duration(c.BaseIntervalMs) * time.Millisecond,
		Min:         time.Duration(c.MinIntervalMs) * time.Millisecond,
		LevelFactor: c.LevelFactor,
	}
}

// Interval returns the drop interval for a level, truncated to whole
// milliseconds.
func (t Timing) Interval(level int) time.Duration {
	ms := int64(float64(t.Base.Milliseconds()) / (1 + float64(level)*t.LevelFactor))
	return max(time.Duration(ms)*time.Millisecond, t.Min)
}

// Gate throttles automatic gravity. It never blocks: callers ask whether a
// drop is due and get an answer right away.
type Gate struct {
	timing Timing
	now    func() time.Time
	last   time.Time
}

// NewGate creates a gate with the given timing. A nil clock means time.Now.
func NewGate(timing Timing, now func() time.Time) *Gate {
	if now == nil {
		now = time.Now
	}
	return &Gate{timing: timing, now: now}
}

// ShouldTick reports whether a gravity step is due. The reference time moves
// forward only when it returns true. A paused game never ticks.
func (g *Gate) ShouldTick(level int, paused bool) bool {
	if paused {
		return false
	}
	now := g.now()
	if now.Sub(g.last) < g.timing.Interval(level) {
		return false
	}
	g.last = now
	return true
}

// Timing returns the gate's configured speeds.
func (g *Gate) Timing() Timing {
	return g.timing
}
