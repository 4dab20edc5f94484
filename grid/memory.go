package grid

import "sync"

// Memory is an in-process Sink that records everything it is asked to do.
// It backs the tests and the headless display mode. It locks internally so a
// test can inspect it while the control loop is running.
type Memory struct {
	W, H int

	mu         sync.Mutex
	cells      []bool
	presents   int
	brightness int
	calls      []int
}

func NewMemory(w, h int) *Memory {
	return &Memory{
		W:          w,
		H:          h,
		cells:      make([]bool, w*h),
		brightness: -1,
	}
}

func (m *Memory) Fill(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.cells {
		m.cells[i] = on
	}
}

func (m *Memory) SetPixel(x, y int, on bool) {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cells[y*m.W+x] = on
}

func (m *Memory) Present() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.presents++
	return nil
}

func (m *Memory) SetBrightness(level int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.brightness = level
	m.calls = append(m.calls, level)
	return nil
}

// At reports whether the pixel (x, y) is lit.
func (m *Memory) At(x, y int) bool {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cells[y*m.W+x]
}

// Lit counts lit pixels.
func (m *Memory) Lit() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.cells {
		if c {
			n++
		}
	}
	return n
}

// Presents reports how many frames were pushed.
func (m *Memory) Presents() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.presents
}

// Brightness reports the last SetBrightness argument, -1 before the first.
func (m *Memory) Brightness() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.brightness
}

// BrightnessCalls returns every SetBrightness argument in order.
func (m *Memory) BrightnessCalls() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.calls...)
}

var _ Sink = (*Memory)(nil)
