package hw

import (
	"github.com/gdamore/tcell/v2"

	"nifri2/dotmatrix/grid"
)

// Terminal renders the panel in a terminal window, two character cells per
// pixel. Brightness maps to the green channel. Commands still arrive over the
// byte stream; with this backend active that stream should be a pipe or
// serial device rather than the terminal itself.
type Terminal struct {
	screen     tcell.Screen
	w, h       int
	cells      []bool
	brightness int
}

func NewTerminal(w, h int) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	t := &Terminal{
		screen:     screen,
		w:          w,
		h:          h,
		cells:      make([]bool, w*h),
		brightness: 15,
	}
	go t.drainEvents()
	return t, nil
}

// drainEvents keeps tcell's event queue from filling up and repaints on
// resize. Key input is deliberately ignored.
func (t *Terminal) drainEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			t.screen.Sync()
		}
	}
}

func (t *Terminal) Fill(on bool) {
	for i := range t.cells {
		t.cells[i] = on
	}
}

func (t *Terminal) SetPixel(x, y int, on bool) {
	if x < 0 || x >= t.w || y < 0 || y >= t.h {
		return
	}
	t.cells[y*t.w+x] = on
}

func (t *Terminal) Present() error {
	lit := tcell.StyleDefault.Foreground(t.color())
	dark := tcell.StyleDefault.Foreground(tcell.NewRGBColor(24, 24, 24))
	for y := 0; y < t.h; y++ {
		for x := 0; x < t.w; x++ {
			ch := '·'
			style := dark
			if t.cells[y*t.w+x] {
				ch = '█'
				style = lit
			}
			t.screen.SetContent(2*x, y, ch, nil, style)
			t.screen.SetContent(2*x+1, y, ch, nil, style)
		}
	}
	t.screen.Show()
	return nil
}

func (t *Terminal) SetBrightness(level int) error {
	if level < 0 {
		level = 0
	}
	if level > 15 {
		level = 15
	}
	t.brightness = level
	return nil
}

func (t *Terminal) color() tcell.Color {
	g := int32(64 + t.brightness*12)
	return tcell.NewRGBColor(0, g, 0)
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

var _ grid.Sink = (*Terminal)(nil)
