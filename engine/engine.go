// Package engine owns the runtime configuration and runs the cooperative
// control loop: commands in, one effect stepped on its cadence.
package engine

import (
	"context"
	"io"
	"log/slog"
	"time"

	"nifri2/dotmatrix/effects"
	"nifri2/dotmatrix/grid"
	"nifri2/dotmatrix/proto"
)

const (
	MinSpeedMs = 50
	MaxSpeedMs = 2000

	DefaultSpeedMs    = 200
	DefaultBrightness = 5
	MaxBrightness     = 15

	// quantum bounds polling granularity and shutdown latency.
	quantum = 10 * time.Millisecond
)

// Engine is the single control context. All mutable runtime state lives here
// and is touched only from the Run loop's goroutine; command input arrives
// over a channel, never through shared fields.
type Engine struct {
	log    *slog.Logger
	out    io.Writer
	canvas *grid.Canvas
	state  *effects.State

	running    bool
	current    effects.ID
	speedMs    int
	brightness int

	now      func() time.Time
	lastStep time.Time
}

func New(cv *grid.Canvas, st *effects.State, logger *slog.Logger, out io.Writer) *Engine {
	return &Engine{
		log:        logger,
		out:        out,
		canvas:     cv,
		state:      st,
		current:    effects.None,
		speedMs:    DefaultSpeedMs,
		brightness: DefaultBrightness,
		now:        time.Now,
	}
}

func (e *Engine) Running() bool       { return e.running }
func (e *Engine) Current() effects.ID { return e.current }
func (e *Engine) SpeedMs() int        { return e.speedMs }
func (e *Engine) Brightness() int     { return e.brightness }

// Run drives the loop until ctx is cancelled: apply any completed command in
// arrival order, step the active effect once its interval has elapsed, sleep
// a quantum. On shutdown the panel is cleared.
func (e *Engine) Run(ctx context.Context, in <-chan proto.Result) {
	if err := e.canvas.SetBrightness(e.brightness); err != nil {
		e.log.Warn("set brightness", "error", err)
	}

	ticker := time.NewTicker(quantum)
	defer ticker.Stop()

	e.lastStep = e.now()
	for {
		select {
		case <-ctx.Done():
			e.canvas.Clear()
			if err := e.canvas.Present(); err != nil {
				e.log.Warn("clear on shutdown", "error", err)
			}
			return

		case r, ok := <-in:
			if !ok {
				// Input source is gone; keep animating.
				in = nil
				continue
			}
			if r.Err != nil {
				e.log.Warn("discarding input", "error", r.Err)
				continue
			}
			if err := e.Apply(r.Tokens); err != nil {
				e.log.Warn("command rejected", "error", err)
			}

		case now := <-ticker.C:
			e.tick(now)
		}
	}
}

// tick steps the active effect if its interval has elapsed. lastStep
// advances even when the step faulted, so a broken effect is retried at
// its cadence rather than every quantum.
func (e *Engine) tick(now time.Time) {
	if !e.running || e.current == effects.None {
		return
	}
	if now.Sub(e.lastStep) < time.Duration(e.speedMs)*time.Millisecond {
		return
	}
	if err := e.step(e.current); err != nil {
		e.log.Warn("effect step failed", "error", err)
	}
	e.lastStep = now
}

// step runs one frame of id. Faults are contained: the redraw is skipped and
// state keeps whatever the effect managed to write.
func (e *Engine) step(id effects.ID) error {
	if err := effects.Run(id, e.canvas, e.state); err != nil {
		return joinFault(err)
	}
	return nil
}
