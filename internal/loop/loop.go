// Package loop drives one game on a terminal: input, update, draw, once
// per frame, until the player quits or the context ends.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/splitroids/internal/config"
	"github.com/tomz197/splitroids/internal/draw"
	"github.com/tomz197/splitroids/internal/game"
	"github.com/tomz197/splitroids/internal/input"
	"github.com/tomz197/splitroids/internal/render"
)

// Options configures Run. Zero values fall back to defaults.
type Options struct {
	TermSize  draw.TermSizeFunc
	Logger    *log.Logger
	Seed      int64
	FrameTime time.Duration
	KeyHold   time.Duration
}

func (o *Options) defaults() {
	if o.TermSize == nil {
		o.TermSize = draw.DefaultTermSizeFunc
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.FrameTime <= 0 {
		o.FrameTime = config.TargetFrameTime
	}
	if o.KeyHold <= 0 {
		o.KeyHold = config.KeyHoldDuration
	}
}

// Run plays a game reading keys from r and drawing to w. It returns nil
// when the player quits, the input closes or ctx is done.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	opts.defaults()
	logger := opts.Logger

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g := game.New(game.Options{Seed: opts.Seed})
	stream := input.StartStream(ctx, r, opts.KeyHold)

	cw := draw.NewChunkWriter(w)
	draw.HideCursor(cw)
	draw.ClearScreen(cw)
	if err := cw.Flush(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer func() {
		draw.ClearScreen(cw)
		draw.ShowCursor(cw)
		cw.Flush()
	}()

	width, height, err := opts.TermSize()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	canvas := draw.NewCanvas(width, height, g.Bounds.Width, g.Bounds.Height)

	logger.Info("game started", "seed", opts.Seed, "cols", width, "rows", height)

	ticker := time.NewTicker(opts.FrameTime)
	defer ticker.Stop()

	t := tracker{level: g.Level, logger: logger}
	last := time.Now()
	for {
		var now time.Time
		select {
		case <-ctx.Done():
			logger.Info("game stopped", "reason", ctx.Err())
			return nil
		case now = <-ticker.C:
		}

		elapsed := now.Sub(last).Seconds()
		last = now

		ev := stream.Poll(now, g)
		if ev.Quit {
			logger.Info("player quit", "score", g.Score, "level", g.Level)
			return nil
		}
		if ev.Closed {
			logger.Info("input closed")
			return nil
		}

		g.Update(elapsed)
		t.observe(g)

		if width, height, err := opts.TermSize(); err == nil {
			canvas.Resize(width, height)
		} else {
			logger.Debug("terminal size unavailable", "err", err)
		}

		fps := 0.0
		if elapsed > 0 {
			fps = 1 / elapsed
		}
		canvas.Clear()
		render.Scene(canvas, g, fps)

		draw.ClearScreen(cw)
		if err := canvas.Render(cw); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		if err := cw.Flush(); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
	}
}

// tracker logs level and game-over transitions.
type tracker struct {
	level    int
	gameOver bool
	logger   *log.Logger
}

func (t *tracker) observe(g *game.Game) {
	if g.GameOver != t.gameOver {
		t.gameOver = g.GameOver
		if g.GameOver {
			t.logger.Info("game over", "score", g.Score, "level", g.Level)
		} else {
			t.logger.Info("game restarted")
		}
	}
	if g.Level != t.level {
		t.level = g.Level
		if g.Level > 0 {
			t.logger.Debug("level up", "level", g.Level, "asteroids", len(g.Asteroids))
		}
	}
}
