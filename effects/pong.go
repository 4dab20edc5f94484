package effects

import "nifri2/dotmatrix/grid"

// stepPong advances the two-paddle game by one tick. The left paddle tracks
// the ball every tick, the right one only 80% of the time, which keeps the
// rally winnable. A ball leaving a horizontal edge is a score and respawns at
// the center with a random diagonal.
func stepPong(cv *grid.Canvas, st *State) error {
	p := &st.Pong
	cv.Clear()

	p.BallX += p.DX
	p.BallY += p.DY

	if p.BallY <= 0 || p.BallY >= cv.H-1 {
		p.DY = -p.DY
		p.BallY = clamp(p.BallY, 0, cv.H-1)
	}

	p.Left = trackPaddle(p.Left, p.BallY, cv.H)
	if st.Rand.Float64() < 0.8 {
		p.Right = trackPaddle(p.Right, p.BallY, cv.H)
	}

	if p.BallX <= 1 && abs(p.BallY-p.Left) <= 1 {
		p.DX = abs(p.DX)
		if p.BallY < p.Left {
			p.DY = -1
		} else if p.BallY > p.Left {
			p.DY = 1
		}
	}
	if p.BallX >= cv.W-2 && abs(p.BallY-p.Right) <= 1 {
		p.DX = -abs(p.DX)
		if p.BallY < p.Right {
			p.DY = -1
		} else if p.BallY > p.Right {
			p.DY = 1
		}
	}

	if p.BallX < 0 || p.BallX >= cv.W {
		p.BallX = cv.W / 2
		p.BallY = cv.H / 2
		p.DX = randSign(st.Rand)
		p.DY = randSign(st.Rand)
	}

	for i := -1; i <= 1; i++ {
		cv.Set(0, p.Left+i)
		cv.Set(cv.W-1, p.Right+i)
	}
	cv.Set(p.BallX, p.BallY)
	for y := 0; y < cv.H; y += 2 {
		cv.Set(cv.W/2, y)
	}

	return cv.Present()
}

// trackPaddle moves a paddle center one row toward the ball, keeping the
// 3-pixel paddle on the panel.
func trackPaddle(pos, ballY, h int) int {
	switch {
	case ballY > pos:
		return min(pos+1, h-2)
	case ballY < pos:
		return max(pos-1, 1)
	}
	return pos
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
