// Package hw holds the display backends: a MAX7219 cascade for the real
// panel, a periph.io SPI bridge, and a tcell terminal simulator.
package hw

import (
	"fmt"

	"tinygo.org/x/drivers"

	"nifri2/dotmatrix/grid"
)

// MAX7219 register map.
const (
	regNoop        = 0x00
	regDigit0      = 0x01
	regDecodeMode  = 0x09
	regIntensity   = 0x0A
	regScanLimit   = 0x0B
	regShutdown    = 0x0C
	regDisplayTest = 0x0F
)

// MAX7219 drives a horizontal cascade of 8x8 modules on one SPI chip
// select. Each register write carries one value per chained chip, farthest
// chip first, so a whole row latches in a single transaction.
type MAX7219 struct {
	bus     drivers.SPI
	cascade int

	// buf holds one byte per module row: buf[m*8+y] is row y of module m,
	// bit 7 being that module's leftmost column.
	buf []byte
	tx  []byte
}

func NewMAX7219(bus drivers.SPI, cascade int) *MAX7219 {
	return &MAX7219{
		bus:     bus,
		cascade: cascade,
		buf:     make([]byte, cascade*8),
		tx:      make([]byte, 0, cascade*2),
	}
}

// Configure wakes the chain up: no decode, all digits scanned, display test
// off, panel blanked.
func (d *MAX7219) Configure() error {
	for _, c := range [][2]byte{
		{regDisplayTest, 0},
		{regDecodeMode, 0},
		{regScanLimit, 7},
		{regShutdown, 1},
	} {
		if err := d.broadcast(c[0], c[1]); err != nil {
			return fmt.Errorf("max7219 configure: %w", err)
		}
	}
	d.Fill(false)
	return d.Present()
}

func (d *MAX7219) Fill(on bool) {
	b := byte(0x00)
	if on {
		b = 0xFF
	}
	for i := range d.buf {
		d.buf[i] = b
	}
}

func (d *MAX7219) SetPixel(x, y int, on bool) {
	if x < 0 || y < 0 || y >= 8 || x >= d.cascade*8 {
		return
	}
	idx := (x/8)*8 + y
	mask := byte(1) << (7 - uint(x%8))
	if on {
		d.buf[idx] |= mask
	} else {
		d.buf[idx] &^= mask
	}
}

// Present pushes the frame, one register per transaction across the chain.
func (d *MAX7219) Present() error {
	for y := 0; y < 8; y++ {
		d.tx = d.tx[:0]
		for m := d.cascade - 1; m >= 0; m-- {
			d.tx = append(d.tx, byte(regDigit0+y), d.buf[m*8+y])
		}
		if err := d.bus.Tx(d.tx, nil); err != nil {
			return fmt.Errorf("max7219 row %d: %w", y, err)
		}
	}
	return nil
}

func (d *MAX7219) SetBrightness(level int) error {
	if level < 0 {
		level = 0
	}
	if level > 15 {
		level = 15
	}
	return d.broadcast(regIntensity, byte(level))
}

// Shutdown blanks the chain and puts the chips to sleep.
func (d *MAX7219) Shutdown() error {
	d.Fill(false)
	if err := d.Present(); err != nil {
		return err
	}
	return d.broadcast(regShutdown, 0)
}

func (d *MAX7219) broadcast(reg, val byte) error {
	d.tx = d.tx[:0]
	for m := 0; m < d.cascade; m++ {
		d.tx = append(d.tx, reg, val)
	}
	return d.bus.Tx(d.tx, nil)
}

var _ grid.Sink = (*MAX7219)(nil)
