package effects

import (
	"testing"

	"nifri2/dotmatrix/grid"
)

func TestTextRendersGlyphs(t *testing.T) {
	cv, m, st := testRig(t)
	st.Message = "HI"
	st.ScrollPos = 0

	if err := stepText(cv, st); err != nil {
		t.Fatal(err)
	}

	// H: columns 0-2, top row 101
	if !m.At(0, 1) || m.At(1, 1) || !m.At(2, 1) {
		t.Fatal("H glyph top row wrong")
	}
	// I: columns 4-6, top row 111
	if !m.At(4, 1) || !m.At(5, 1) || !m.At(6, 1) {
		t.Fatal("I glyph top row wrong")
	}
	if st.ScrollPos != -1 {
		t.Fatalf("cursor = %d, want -1", st.ScrollPos)
	}
}

func TestScrollWraparoundLeft(t *testing.T) {
	cv, _, st := testRig(t)
	st.Message = "HI"
	st.ResetScroll(cv)
	if st.ScrollPos != cv.W {
		t.Fatalf("start cursor = %d, want %d", st.ScrollPos, cv.W)
	}

	minPos := st.ScrollPos
	steps := 0
	for {
		if err := stepText(cv, st); err != nil {
			t.Fatal(err)
		}
		steps++
		if st.ScrollPos < minPos {
			minPos = st.ScrollPos
		}
		if st.ScrollPos == cv.W {
			break
		}
		if steps > 1000 {
			t.Fatal("cursor never wrapped")
		}
	}

	// message length 2: the cursor must reach exactly -4*2 before resetting
	if minPos != -8 {
		t.Fatalf("min cursor = %d, want -8", minPos)
	}
	if steps != cv.W+8+1 {
		t.Fatalf("wrapped after %d steps, want %d", steps, cv.W+8+1)
	}
}

func TestScrollWraparoundRight(t *testing.T) {
	cv, _, st := testRig(t)
	cv.Scroll = grid.ScrollRight
	st.Message = "HI"
	st.ResetScroll(cv)
	if st.ScrollPos != -8 {
		t.Fatalf("start cursor = %d, want -8", st.ScrollPos)
	}

	maxPos := st.ScrollPos
	steps := 0
	for {
		if err := stepText(cv, st); err != nil {
			t.Fatal(err)
		}
		steps++
		if st.ScrollPos > maxPos {
			maxPos = st.ScrollPos
		}
		if st.ScrollPos == -8 {
			break
		}
		if steps > 1000 {
			t.Fatal("cursor never wrapped")
		}
	}

	if maxPos != cv.W {
		t.Fatalf("max cursor = %d, want %d", maxPos, cv.W)
	}
	if steps != cv.W+8+1 {
		t.Fatalf("wrapped after %d steps, want %d", steps, cv.W+8+1)
	}
}

func TestTextSkipsUnknownRunes(t *testing.T) {
	cv, m, st := testRig(t)
	st.Message = "A!B"
	st.ScrollPos = 0

	if err := stepText(cv, st); err != nil {
		t.Fatal(err)
	}
	// The unknown rune draws nothing and takes no columns, so B lands
	// directly after A.
	if !m.At(4, 1) || !m.At(5, 1) {
		t.Fatal("B glyph should start at column 4")
	}
}
