package effects

import (
	"math/rand"
	"time"

	"nifri2/dotmatrix/grid"
)

const (
	defaultMessage = "HELLO WORLD"
	rainDrops      = 6
	ballCount      = 2
)

// Drop is one falling rain trail.
type Drop struct {
	X, Y   int
	Length int
}

// Ball is one bouncing ball with unit velocity components.
type Ball struct {
	X, Y   int
	DX, DY int
}

// PongState holds the ball and the two AI paddle centers.
type PongState struct {
	BallX, BallY int
	DX, DY       int
	Left, Right  int
}

// ClockOpts are the clock rendering flags.
type ClockOpts struct {
	Use24Hour   bool
	ShowSeconds bool
	BlinkColon  bool
}

// State owns the private mutable state of every effect. Inactive effects keep
// their state untouched between activations. Rand, Now and Sleep are injected
// so tests run deterministic and instant.
type State struct {
	Rand  *rand.Rand
	Now   func() time.Time
	Sleep func(time.Duration)

	Drops []Drop
	Heat  [][]int

	PlasmaPhase float64
	WavePhase   float64

	Balls []Ball

	Message   string
	ScrollPos int

	Pong  PongState
	Clock ClockOpts
}

// NewState seeds the effect state for a w by h panel.
func NewState(w, h int, rng *rand.Rand) *State {
	s := &State{
		Rand:      rng,
		Now:       time.Now,
		Sleep:     time.Sleep,
		Message:   defaultMessage,
		ScrollPos: w,
		Pong: PongState{
			BallX: w / 2,
			BallY: h / 2,
			DX:    1,
			DY:    1,
			Left:  h / 2,
			Right: h / 2,
		},
		Clock: ClockOpts{Use24Hour: true, BlinkColon: true},
	}

	s.Heat = make([][]int, h)
	for y := range s.Heat {
		s.Heat[y] = make([]int, w)
	}

	for i := 0; i < rainDrops; i++ {
		s.Drops = append(s.Drops, Drop{
			X:      rng.Intn(w),
			Y:      -5 + rng.Intn(6),
			Length: 3 + rng.Intn(3),
		})
	}

	for i := 0; i < ballCount; i++ {
		s.Balls = append(s.Balls, Ball{
			X:  2 + rng.Intn(w-4),
			Y:  2 + rng.Intn(h-4),
			DX: randSign(rng),
			DY: randSign(rng),
		})
	}

	return s
}

// ResetScroll puts the cursor back at the off-screen start for the current
// scroll direction.
func (s *State) ResetScroll(cv *grid.Canvas) {
	if cv.Scroll == grid.ScrollRight {
		s.ScrollPos = -glyphWidth * len(s.Message)
	} else {
		s.ScrollPos = cv.W
	}
}

func randSign(rng *rand.Rand) int {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
