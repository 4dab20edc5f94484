package hw

import (
	"bytes"
	"testing"
)

// fakeSPI records every transaction.
type fakeSPI struct {
	writes [][]byte
}

func (f *fakeSPI) Tx(w, r []byte) error {
	f.writes = append(f.writes, append([]byte(nil), w...))
	return nil
}

func (f *fakeSPI) Transfer(b byte) (byte, error) { return 0, nil }

func TestConfigureInitializesWholeChain(t *testing.T) {
	bus := &fakeSPI{}
	dev := NewMAX7219(bus, 4)

	if err := dev.Configure(); err != nil {
		t.Fatal(err)
	}

	// 4 setup broadcasts plus 8 row writes for the blank frame.
	if len(bus.writes) != 12 {
		t.Fatalf("transactions = %d, want 12", len(bus.writes))
	}
	wantShutdown := []byte{regShutdown, 1, regShutdown, 1, regShutdown, 1, regShutdown, 1}
	if !bytes.Equal(bus.writes[3], wantShutdown) {
		t.Fatalf("shutdown broadcast = %v", bus.writes[3])
	}
}

func TestPresentPacksRowsFarModuleFirst(t *testing.T) {
	bus := &fakeSPI{}
	dev := NewMAX7219(bus, 4)

	dev.SetPixel(0, 0, true)  // module 0, leftmost bit
	dev.SetPixel(31, 0, true) // module 3, rightmost bit
	dev.SetPixel(9, 3, true)  // module 1, second bit

	if err := dev.Present(); err != nil {
		t.Fatal(err)
	}
	if len(bus.writes) != 8 {
		t.Fatalf("transactions = %d, want one per row", len(bus.writes))
	}

	row0 := bus.writes[0]
	want0 := []byte{regDigit0, 0x01, regDigit0, 0x00, regDigit0, 0x00, regDigit0, 0x80}
	if !bytes.Equal(row0, want0) {
		t.Fatalf("row 0 = %v, want %v", row0, want0)
	}

	row3 := bus.writes[3]
	want3 := []byte{regDigit0 + 3, 0x00, regDigit0 + 3, 0x00, regDigit0 + 3, 0x40, regDigit0 + 3, 0x00}
	if !bytes.Equal(row3, want3) {
		t.Fatalf("row 3 = %v, want %v", row3, want3)
	}
}

func TestSetPixelIgnoresOutOfRange(t *testing.T) {
	bus := &fakeSPI{}
	dev := NewMAX7219(bus, 4)

	dev.SetPixel(-1, 0, true)
	dev.SetPixel(32, 0, true)
	dev.SetPixel(0, 8, true)

	if err := dev.Present(); err != nil {
		t.Fatal(err)
	}
	for _, w := range bus.writes {
		for i := 1; i < len(w); i += 2 {
			if w[i] != 0 {
				t.Fatalf("stray pixel in %v", w)
			}
		}
	}
}

func TestSetBrightnessBroadcastsIntensity(t *testing.T) {
	bus := &fakeSPI{}
	dev := NewMAX7219(bus, 2)

	if err := dev.SetBrightness(9); err != nil {
		t.Fatal(err)
	}
	want := []byte{regIntensity, 9, regIntensity, 9}
	if !bytes.Equal(bus.writes[0], want) {
		t.Fatalf("intensity broadcast = %v, want %v", bus.writes[0], want)
	}

	// levels are clamped into the register range
	if err := dev.SetBrightness(99); err != nil {
		t.Fatal(err)
	}
	if bus.writes[1][1] != 15 {
		t.Fatalf("clamped level = %d, want 15", bus.writes[1][1])
	}
}

func TestFillAndShutdown(t *testing.T) {
	bus := &fakeSPI{}
	dev := NewMAX7219(bus, 1)

	dev.Fill(true)
	if err := dev.Present(); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(bus.writes[0], []byte{regDigit0, 0xFF}) {
		t.Fatalf("filled row = %v", bus.writes[0])
	}

	bus.writes = nil
	if err := dev.Shutdown(); err != nil {
		t.Fatal(err)
	}
	last := bus.writes[len(bus.writes)-1]
	if !bytes.Equal(last, []byte{regShutdown, 0}) {
		t.Fatalf("last transaction = %v, want shutdown", last)
	}
}
