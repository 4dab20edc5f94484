package effects

import (
	"errors"

	"nifri2/dotmatrix/grid"
)

// stepRain advances the falling trails by one row. A trail that has fully
// left the bottom respawns above the top edge in a random column.
func stepRain(cv *grid.Canvas, st *State) error {
	if len(st.Drops) == 0 {
		return errors.New("no drops seeded")
	}
	cv.Clear()
	for i := range st.Drops {
		d := &st.Drops[i]
		for j := 0; j < d.Length; j++ {
			cv.Set(d.X, d.Y-j)
		}
		d.Y++
		if d.Y > cv.H+2 {
			d.Y = -5 + st.Rand.Intn(5)
			d.X = st.Rand.Intn(cv.W)
		}
	}
	return cv.Present()
}
