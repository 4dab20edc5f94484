package effects

import (
	"errors"

	"nifri2/dotmatrix/grid"
)

// stepBalls moves each ball by its velocity and reflects it elastically off
// the panel edges, clamping the position back into range.
func stepBalls(cv *grid.Canvas, st *State) error {
	if len(st.Balls) == 0 {
		return errors.New("no balls seeded")
	}
	cv.Clear()
	for i := range st.Balls {
		b := &st.Balls[i]
		b.X += b.DX
		b.Y += b.DY

		if b.X <= 0 || b.X >= cv.W-1 {
			b.DX = -b.DX
			b.X = clamp(b.X, 0, cv.W-1)
		}
		if b.Y <= 0 || b.Y >= cv.H-1 {
			b.DY = -b.DY
			b.Y = clamp(b.Y, 0, cv.H-1)
		}

		cv.Set(b.X, b.Y)
	}
	return cv.Present()
}
