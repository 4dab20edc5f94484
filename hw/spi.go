package hw

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
	"tinygo.org/x/drivers"
)

// periphSPI exposes a periph.io SPI connection through the drivers.SPI
// interface the MAX7219 chain is written against.
type periphSPI struct {
	conn spi.Conn
}

func (p *periphSPI) Tx(w, r []byte) error {
	return p.conn.Tx(w, r)
}

func (p *periphSPI) Transfer(b byte) (byte, error) {
	var r [1]byte
	if err := p.conn.Tx([]byte{b}, r[:]); err != nil {
		return 0, err
	}
	return r[0], nil
}

// OpenSPI initializes the host and connects to the named SPI port in mode 0.
// An empty name selects the first available bus. The returned closer releases
// the port.
func OpenSPI(name string, hz int) (drivers.SPI, func() error, error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, fmt.Errorf("host init: %w", err)
	}
	port, err := spireg.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("open spi %q: %w", name, err)
	}
	conn, err := port.Connect(physic.Frequency(hz)*physic.Hertz, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return nil, nil, fmt.Errorf("connect spi %q: %w", name, err)
	}
	return &periphSPI{conn: conn}, port.Close, nil
}
