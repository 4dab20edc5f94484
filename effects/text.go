package effects

import "nifri2/dotmatrix/grid"

// stepText renders the scroll message at the current cursor and advances the
// cursor one column in the configured direction. Every character of the
// message reserves glyphWidth columns for the wraparound computation, but
// runes outside the font draw nothing and take no columns, matching the
// device's quirk.
func stepText(cv *grid.Canvas, st *State) error {
	cv.Clear()

	totalWidth := glyphWidth * len(st.Message)

	charX := 0
	for _, ch := range st.Message {
		if drawGlyph(cv, st.ScrollPos+charX, ch) {
			charX += glyphWidth
		}
	}

	if cv.Scroll == grid.ScrollRight {
		st.ScrollPos++
		if st.ScrollPos > cv.W {
			st.ScrollPos = -totalWidth
		}
	} else {
		st.ScrollPos--
		if st.ScrollPos < -totalWidth {
			st.ScrollPos = cv.W
		}
	}

	return cv.Present()
}
