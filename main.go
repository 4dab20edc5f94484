package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nifri2/dotmatrix/effects"
	"nifri2/dotmatrix/engine"
	"nifri2/dotmatrix/grid"
	"nifri2/dotmatrix/hw"
	"nifri2/dotmatrix/logs"
	"nifri2/dotmatrix/proto"
)

var (
	displayFlag = flag.String("display", "term", "display backend: term, max7219 or none")
	spiFlag     = flag.String("spi", "", "SPI port name for the max7219 backend (empty selects the default bus)")
	hzFlag      = flag.Int("hz", 10_000_000, "SPI clock in Hz")
	cascadeFlag = flag.Int("cascade", 4, "number of chained 8x8 modules")
	inputFlag   = flag.String("input", "-", "command source: - for stdin, or a path (serial device, fifo)")
	debugFlag   = flag.Bool("debug", false, "log at debug level")
)

func main() {
	flag.Parse()
	if *debugFlag {
		logs.Level.Set(slog.LevelDebug)
	}
	logger := logs.New(os.Stderr)

	if err := run(logger); err != nil {
		logger.Error("exiting", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	w, h, err := panelSize(*cascadeFlag)
	if err != nil {
		return err
	}

	var sink grid.Sink
	cleanup := func() {}

	switch *displayFlag {
	case "term":
		term, err := hw.NewTerminal(w, h)
		if err != nil {
			return fmt.Errorf("terminal display: %w", err)
		}
		sink = term
		cleanup = term.Close

	case "max7219":
		bus, closeSPI, err := hw.OpenSPI(*spiFlag, *hzFlag)
		if err != nil {
			return err
		}
		dev := hw.NewMAX7219(bus, *cascadeFlag)
		if err := dev.Configure(); err != nil {
			closeSPI()
			return err
		}
		sink = dev
		cleanup = func() {
			if err := dev.Shutdown(); err != nil {
				logger.Warn("panel shutdown", "error", err)
			}
			closeSPI()
		}

	case "none":
		sink = grid.NewMemory(w, h)

	default:
		return fmt.Errorf("unknown display backend %q", *displayFlag)
	}
	defer cleanup()

	in, closeInput, err := openInput(*inputFlag)
	if err != nil {
		return err
	}
	defer closeInput()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	canvas := grid.NewCanvas(sink, w, h)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	state := effects.NewState(w, h, rng)
	eng := engine.New(canvas, state, logger, os.Stdout)

	lines := make(chan proto.Result, 16)
	go feed(ctx, in, lines, logger)

	logger.Info("ready", "display", *displayFlag, "width", w, "height", h)
	eng.Run(ctx, lines)
	logger.Info("shut down")
	return nil
}

// panelSize derives the logical panel dimensions from the module count.
// The effect state seeds positions with the panel width, so a chain of at
// least one module is required up front.
func panelSize(cascade int) (w, h int, err error) {
	if cascade < 1 {
		return 0, 0, fmt.Errorf("cascade must be at least 1, got %d", cascade)
	}
	return cascade * 8, 8, nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input %q: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

// feed pumps raw bytes through the parser into the command channel. Read
// faults are transient: log, back off briefly, poll again.
func feed(ctx context.Context, r io.Reader, lines chan<- proto.Result, logger *slog.Logger) {
	parser := proto.NewParser()
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			for _, res := range parser.Feed(buf[:n]) {
				select {
				case lines <- res:
				case <-ctx.Done():
					return
				}
			}
		}
		if err != nil {
			if err == io.EOF {
				close(lines)
				return
			}
			logger.Warn("input read failed", "error", err)
			select {
			case <-time.After(100 * time.Millisecond):
			case <-ctx.Done():
				return
			}
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}
