package engine

import (
	"fmt"
	"strconv"
	"strings"

	"nifri2/dotmatrix/effects"
	"nifri2/dotmatrix/grid"
)

// Apply executes one tokenized command line. The command name is matched
// case-insensitively. Rejected commands return a wrapped ErrUnknownCommand
// or ErrInvalidArgument and leave all prior state intact.
func (e *Engine) Apply(tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	cmd := strings.ToLower(tokens[0])
	args := tokens[1:]

	switch cmd {
	case "start":
		name := "matrix"
		if len(args) > 0 {
			name = strings.ToLower(args[0])
		}
		id, ok := effects.Lookup(name)
		if !ok {
			return fmt.Errorf("%w: no effect %q", ErrUnknownCommand, name)
		}
		e.current = id
		e.running = true
		e.lastStep = e.now()
		e.log.Info("started", "effect", id)
		return e.step(id)

	case "stop":
		e.running = false
		e.current = effects.None
		e.canvas.Clear()
		e.log.Info("stopped")
		return e.canvas.Present()

	case "text":
		if len(args) > 0 {
			e.state.Message = strings.ToUpper(strings.Join(args, " "))
			e.state.ResetScroll(e.canvas)
			e.log.Info("scroll message set", "message", e.state.Message)
		}
		return e.step(effects.Text)

	case "clock":
		if err := e.applyClockOpts(args); err != nil {
			return err
		}
		return e.step(effects.Clock)

	case "flip":
		return e.applyFlip(args)

	case "scroll":
		return e.applyScroll(args)

	case "brightness":
		n, err := parseBounded(cmd, args, 0, MaxBrightness)
		if err != nil {
			return err
		}
		e.brightness = n
		e.log.Info("brightness set", "level", n)
		return e.canvas.SetBrightness(n)

	case "speed":
		n, err := parseBounded(cmd, args, MinSpeedMs, MaxSpeedMs)
		if err != nil {
			return err
		}
		e.speedMs = n
		e.log.Info("speed set", "ms", n)
		return nil

	case "list":
		fmt.Fprintf(e.out, "effects: %s\n", strings.Join(effects.Names(), " "))
		return nil

	case "help":
		fmt.Fprint(e.out, helpText)
		return nil
	}

	// Bare effect name: run it exactly once without touching running/current.
	if id, ok := effects.Lookup(cmd); ok {
		return e.step(id)
	}
	return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
}

func (e *Engine) applyClockOpts(args []string) error {
	c := &e.state.Clock
	for _, arg := range args {
		switch strings.ToLower(arg) {
		case "12", "12h":
			c.Use24Hour = false
		case "24", "24h":
			c.Use24Hour = true
		case "seconds", "sec":
			c.ShowSeconds = true
		case "noseconds", "nosec":
			c.ShowSeconds = false
		case "blink":
			c.BlinkColon = true
		case "noblink":
			c.BlinkColon = false
		default:
			return fmt.Errorf("%w: clock option %q", ErrInvalidArgument, arg)
		}
	}
	return nil
}

func (e *Engine) applyFlip(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: flip needs h, v, both or reset", ErrInvalidArgument)
	}
	cv := e.canvas
	switch strings.ToLower(args[0]) {
	case "h":
		cv.FlipH = !cv.FlipH
	case "v":
		cv.FlipV = !cv.FlipV
	case "both":
		cv.FlipH = !cv.FlipH
		cv.FlipV = !cv.FlipV
	case "reset":
		cv.FlipH = false
		cv.FlipV = false
	default:
		return fmt.Errorf("%w: flip %q", ErrInvalidArgument, args[0])
	}
	e.log.Info("orientation", "flipH", cv.FlipH, "flipV", cv.FlipV)
	return nil
}

func (e *Engine) applyScroll(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: scroll needs left or right", ErrInvalidArgument)
	}
	switch strings.ToLower(args[0]) {
	case "left":
		e.canvas.Scroll = grid.ScrollLeft
	case "right":
		e.canvas.Scroll = grid.ScrollRight
	default:
		return fmt.Errorf("%w: scroll %q", ErrInvalidArgument, args[0])
	}
	e.log.Info("scroll direction", "dir", args[0])
	return nil
}

// parseBounded accepts only integers within [lo, hi]. Out-of-range values
// are rejected rather than clamped, keeping the prior setting.
func parseBounded(name string, args []string, lo, hi int) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: %s needs a value", ErrInvalidArgument, name)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrInvalidArgument, name, args[0])
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%w: %s %d outside [%d, %d]", ErrInvalidArgument, name, n, lo, hi)
	}
	return n, nil
}

func joinFault(err error) error {
	return fmt.Errorf("%w: %v", ErrEffectFault, err)
}

const helpText = `commands:
  start <effect>   start an animated effect (default matrix)
  stop             stop animation and clear the panel
  <effect>         run an effect once
  text <message>   set the scroll message and show it
  clock [12|24] [seconds|noseconds] [blink|noblink]
  flip h|v|both|reset
  scroll left|right
  brightness <0-15>
  speed <50-2000>
  list             show all effects
`
