package effects

import (
	"math"

	"nifri2/dotmatrix/grid"
)

// The wave, scanner and dot effects share WavePhase, so switching between
// them continues the motion instead of snapping back to zero.

func stepWave(cv *grid.Canvas, st *State) error {
	st.WavePhase += 0.3
	cv.Clear()
	for x := 0; x < cv.W; x++ {
		fx := float64(x)
		y1 := int(float64(cv.H)/2 + 2*math.Sin(fx*0.3+st.WavePhase))
		y2 := int(float64(cv.H)/2 + 1.5*math.Sin(fx*0.4+st.WavePhase+1.5))
		cv.Set(x, clamp(y1, 0, cv.H-1))
		cv.Set(x, clamp(y2, 0, cv.H-1))
	}
	return cv.Present()
}

func stepPlasma(cv *grid.Canvas, st *State) error {
	st.PlasmaPhase += 0.1
	cv.Clear()
	for y := 0; y < cv.H; y++ {
		for x := 0; x < cv.W; x++ {
			value := (math.Sin(float64(x)*0.2+st.PlasmaPhase) +
				math.Sin(float64(y)*0.5+st.PlasmaPhase*1.2) +
				math.Sin(float64(x+y)*0.15+st.PlasmaPhase*0.8)) / 3
			if value > 0.3 {
				cv.Set(x, y)
			}
		}
	}
	return cv.Present()
}

// stepScanner sweeps a 6-column window: the middle two columns span the full
// height, the flanking ones a shorter band, faking a brightness falloff with
// binary pixels.
func stepScanner(cv *grid.Canvas, st *State) error {
	st.WavePhase += 0.2
	cv.Clear()
	center := int((math.Sin(st.WavePhase) + 1) * float64(cv.W-6) / 2)
	for i := 0; i < 6; i++ {
		x := center + i
		switch i {
		case 2, 3:
			for y := 0; y < cv.H; y++ {
				cv.Set(x, y)
			}
		case 1, 4:
			for y := 2; y < cv.H-2; y++ {
				cv.Set(x, y)
			}
		}
	}
	return cv.Present()
}

func stepDot(cv *grid.Canvas, st *State) error {
	st.WavePhase += 0.1
	cv.Clear()
	x := int((math.Sin(st.WavePhase) + 1) * float64(cv.W-1) / 2)
	y := int((math.Cos(st.WavePhase*1.3) + 1) * float64(cv.H-1) / 2)
	cv.Set(x, y)
	return cv.Present()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
