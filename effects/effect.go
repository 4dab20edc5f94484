package effects

import (
	"fmt"

	"nifri2/dotmatrix/grid"
)

// ID identifies an effect. None means no effect is scheduled.
type ID int

const (
	None ID = iota
	Matrix
	Fire
	Wave
	Plasma
	Balls
	Scanner
	Text
	Dot
	Pong
	Border
	On
	Off
	Test
	Clock
)

// StepFunc renders one frame, mutating only its own slice of State.
type StepFunc func(*grid.Canvas, *State) error

type entry struct {
	name string
	step StepFunc
}

// table fixes both the dispatch and the order `list` reports.
var table = [...]entry{
	Matrix:  {"matrix", stepRain},
	Fire:    {"fire", stepFire},
	Wave:    {"wave", stepWave},
	Plasma:  {"plasma", stepPlasma},
	Balls:   {"balls", stepBalls},
	Scanner: {"scanner", stepScanner},
	Text:    {"text", stepText},
	Dot:     {"dot", stepDot},
	Pong:    {"pong", stepPong},
	Border:  {"border", stepBorder},
	On:      {"on", stepAllOn},
	Off:     {"off", stepAllOff},
	Test:    {"test", stepTestPattern},
	Clock:   {"clock", stepClock},
}

func (id ID) String() string {
	if id <= None || int(id) >= len(table) {
		return "none"
	}
	return table[id].name
}

// Lookup resolves a lower-cased effect name.
func Lookup(name string) (ID, bool) {
	for id := None + 1; id < ID(len(table)); id++ {
		if table[id].name == name {
			return id, true
		}
	}
	return None, false
}

// Names lists every effect name in dispatch order.
func Names() []string {
	out := make([]string, 0, len(table)-1)
	for _, e := range table[None+1:] {
		out = append(out, e.name)
	}
	return out
}

// Run executes one step of id. A panicking step is recovered here so a broken
// effect can never take the control loop down; the tick's redraw is simply
// skipped.
func Run(id ID, cv *grid.Canvas, st *State) (err error) {
	if id <= None || int(id) >= len(table) {
		return fmt.Errorf("no such effect id %d", int(id))
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("effect %s panicked: %v", id, r)
		}
	}()
	if err := table[id].step(cv, st); err != nil {
		return fmt.Errorf("effect %s: %w", id, err)
	}
	return nil
}
