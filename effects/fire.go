package effects

import (
	"errors"

	"nifri2/dotmatrix/grid"
)

// stepFire runs one generation of the fire automaton. The phase order is
// decay, inject, propagate; changing it changes the visual character. Heat
// stays within [0, 15]: injections cap at 15 and the upward average of three
// neighbours can never exceed it.
func stepFire(cv *grid.Canvas, st *State) error {
	if len(st.Heat) != cv.H || cv.H < 2 {
		return errors.New("heat grid does not match panel")
	}

	// Cool everything above the bottom row.
	for y := 0; y < cv.H-1; y++ {
		for x := 0; x < cv.W; x++ {
			h := st.Heat[y][x] - (1 + st.Rand.Intn(2))
			if h < 0 {
				h = 0
			}
			st.Heat[y][x] = h
		}
	}

	// Inject fresh heat along the bottom.
	for x := 0; x < cv.W; x++ {
		if st.Rand.Float64() < 0.6 {
			st.Heat[cv.H-1][x] = 10 + st.Rand.Intn(6)
		}
	}

	// Propagate upward, averaging each cell with its lower 3-neighbourhood.
	for y := cv.H - 2; y >= 0; y-- {
		for x := 0; x < cv.W; x++ {
			heat := st.Heat[y+1][x]
			if x > 0 {
				heat += st.Heat[y+1][x-1]
			}
			if x < cv.W-1 {
				heat += st.Heat[y+1][x+1]
			}
			h := heat/3 - st.Rand.Intn(3)
			if h < 0 {
				h = 0
			}
			st.Heat[y][x] = h
		}
	}

	cv.Clear()
	for y := 0; y < cv.H; y++ {
		for x := 0; x < cv.W; x++ {
			if st.Heat[y][x] > 7 {
				cv.Set(x, y)
			}
		}
	}
	return cv.Present()
}
