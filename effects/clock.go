package effects

import (
	"fmt"

	"nifri2/dotmatrix/grid"
)

// stepClock renders wall-clock time centered on the panel with the mini
// font. In 12-hour mode an AM/PM suffix follows the digits; with blink
// enabled the colon goes blank on odd seconds.
func stepClock(cv *grid.Canvas, st *State) error {
	now := st.Now()
	hours, minutes, seconds := now.Hour(), now.Minute(), now.Second()

	isPM := false
	if !st.Clock.Use24Hour {
		isPM = hours >= 12
		if hours == 0 {
			hours = 12
		} else if hours > 12 {
			hours -= 12
		}
	}

	var timeStr string
	if st.Clock.ShowSeconds {
		timeStr = fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	} else {
		timeStr = fmt.Sprintf("%02d:%02d", hours, minutes)
	}

	totalWidth := len(timeStr)*glyphWidth - 1
	if !st.Clock.Use24Hour {
		totalWidth += 2*glyphWidth // space plus AM/PM
	}

	cv.Clear()
	x := (cv.W - totalWidth) / 2
	for _, ch := range timeStr {
		if ch == ':' && st.Clock.BlinkColon && seconds%2 == 1 {
			ch = ' '
		}
		drawGlyph(cv, x, ch)
		x += glyphWidth
	}

	if !st.Clock.Use24Hour {
		x++
		suffix := "AM"
		if isPM {
			suffix = "PM"
		}
		for _, ch := range suffix {
			drawGlyph(cv, x, ch)
			x += glyphWidth
		}
	}

	return cv.Present()
}
