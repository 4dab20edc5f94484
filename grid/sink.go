package grid

// Sink is the capability a display backend provides. The engine never talks
// to hardware directly; real panels, the terminal simulator and the in-memory
// test double all implement this.
type Sink interface {
	// Fill sets every pixel at once.
	Fill(on bool)
	// SetPixel sets a single physical pixel. Coordinates are already
	// transformed and bounds-checked by the Canvas.
	SetPixel(x, y int, on bool)
	// Present pushes the staged frame to the device.
	Present() error
	// SetBrightness sets the global intensity, 0..15.
	SetBrightness(level int) error
}
