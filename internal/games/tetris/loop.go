package tetris

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// InputSource supplies one action per poll, core.ActionNone when idle.
type InputSource interface {
	Poll() core.Action
}

// Renderer draws a snapshot. It must not keep references into the game.
type Renderer interface {
	Render(info Info)
}

// Run drives g until the session is terminated or ctx is done: each
// iteration polls one action, applies it, ticks the game and renders.
// A positive interval paces the iterations.
func Run(ctx context.Context, g *Game, in InputSource, out Renderer, interval time.Duration) error {
	var ticker *time.Ticker
	if interval > 0 {
		ticker = time.NewTicker(interval)
		defer ticker.Stop()
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		g.Frame(in.Poll())
		out.Render(g.Info())
		if g.Terminated() {
			return nil
		}

		if ticker != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}
	}
}
