package effects

import (
	"time"

	"nifri2/dotmatrix/grid"
)

// Static utility patterns: whole-panel on/off, a border frame, and the
// power-on test sequence.

func stepAllOn(cv *grid.Canvas, st *State) error {
	cv.Fill(true)
	return cv.Present()
}

func stepAllOff(cv *grid.Canvas, st *State) error {
	cv.Clear()
	return cv.Present()
}

func stepBorder(cv *grid.Canvas, st *State) error {
	cv.Clear()
	drawBorder(cv)
	return cv.Present()
}

// stepTestPattern blinks the whole panel three times, holds a border frame,
// then blanks. It blocks for the duration of the sequence; the scheduler's
// cooperative loop simply resumes afterwards, as on the device.
func stepTestPattern(cv *grid.Canvas, st *State) error {
	for i := 0; i < 3; i++ {
		cv.Fill(true)
		if err := cv.Present(); err != nil {
			return err
		}
		st.Sleep(300 * time.Millisecond)
		cv.Clear()
		if err := cv.Present(); err != nil {
			return err
		}
		st.Sleep(300 * time.Millisecond)
	}
	cv.Clear()
	drawBorder(cv)
	if err := cv.Present(); err != nil {
		return err
	}
	st.Sleep(time.Second)
	cv.Clear()
	return cv.Present()
}

func drawBorder(cv *grid.Canvas) {
	for x := 0; x < cv.W; x++ {
		cv.Set(x, 0)
		cv.Set(x, cv.H-1)
	}
	for y := 0; y < cv.H; y++ {
		cv.Set(0, y)
		cv.Set(cv.W-1, y)
	}
}
