package grid

// Direction is the horizontal scroll direction for text.
type Direction int

const (
	ScrollLeft  Direction = -1
	ScrollRight Direction = 1
)

// Canvas maps logical coordinates to physical ones and is the single
// chokepoint for pixel writes. Flips are idempotent toggles; writes landing
// outside the grid are dropped.
type Canvas struct {
	sink Sink

	W, H int

	FlipH  bool
	FlipV  bool
	Scroll Direction
}

func NewCanvas(sink Sink, w, h int) *Canvas {
	return &Canvas{
		sink:   sink,
		W:      w,
		H:      h,
		Scroll: ScrollLeft,
	}
}

// Set lights the logical pixel (x, y).
func (c *Canvas) Set(x, y int) {
	if c.FlipH {
		x = c.W - 1 - x
	}
	if c.FlipV {
		y = c.H - 1 - y
	}
	if x < 0 || x >= c.W || y < 0 || y >= c.H {
		return
	}
	c.sink.SetPixel(x, y, true)
}

// Clear blanks the staged frame.
func (c *Canvas) Clear() {
	c.sink.Fill(false)
}

// Fill sets every pixel at once, bypassing the orientation transform since
// the result is symmetric.
func (c *Canvas) Fill(on bool) {
	c.sink.Fill(on)
}

func (c *Canvas) Present() error {
	return c.sink.Present()
}

func (c *Canvas) SetBrightness(level int) error {
	return c.sink.SetBrightness(level)
}
