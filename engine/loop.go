package engine

import (
	"time"

	"github.com/lixenwraith/ember2d/constants"
	"github.com/lixenwraith/ember2d/input"
)

// Loop drives the simulation at a fixed tick rate decoupled from the
// display rate. Each outer iteration measures elapsed wall time into an
// accumulator and drains whole ticks of FixedStep seconds; rendering
// happens once per outer iteration regardless of how many ticks (zero or
// more) were drained.
type Loop struct {
	clock TimeProvider
	step  float64

	accumulator float64
	last        time.Time
	started     bool

	systems []systemEntry
}

type systemEntry struct {
	system System
	index  int // registration order for stable ordering at equal priority
}

// NewLoop creates a loop with the given clock and fixed step in seconds.
// A non-positive step falls back to constants.FixedStep.
func NewLoop(clock TimeProvider, step float64) *Loop {
	if step <= 0 {
		step = constants.FixedStep
	}
	return &Loop{
		clock:   clock,
		step:    step,
		systems: make([]systemEntry, 0, 4),
	}
}

// Step returns the fixed tick duration in seconds
func (l *Loop) Step() float64 {
	return l.step
}

// AddSystem registers a system, keeping the list sorted by priority.
// Registration order breaks ties, so ordering is a stated policy rather
// than an accident of insertion.
func (l *Loop) AddSystem(s System) {
	entry := systemEntry{system: s, index: len(l.systems)}

	pos := len(l.systems)
	for i, e := range l.systems {
		if s.Priority() < e.system.Priority() ||
			(s.Priority() == e.system.Priority() && entry.index < e.index) {
			pos = i
			break
		}
	}

	l.systems = append(l.systems, systemEntry{})
	copy(l.systems[pos+1:], l.systems[pos:])
	l.systems[pos] = entry
}

// Advance adds elapsed seconds to the accumulator and drains whole fixed
// ticks, running every system per tick. Returns the number of ticks run.
// Draining N accumulated ticks is equivalent to N single-tick advances.
func (l *Loop) Advance(elapsed float64, in input.Snapshot) int {
	l.accumulator += elapsed

	ticks := 0
	for l.accumulator >= l.step {
		for _, e := range l.systems {
			e.system.Update(in, l.step)
		}
		l.accumulator -= l.step
		ticks++
	}
	return ticks
}

// Frame measures elapsed time since the previous Frame call via the loop's
// clock and advances the simulation. The first call establishes the clock
// reference and drains nothing.
func (l *Loop) Frame(in input.Snapshot) int {
	now := l.clock.Now()
	if !l.started {
		l.last = now
		l.started = true
		return 0
	}
	elapsed := now.Sub(l.last).Seconds()
	l.last = now
	return l.Advance(elapsed, in)
}

// Run executes the outer loop until the source reports quit: poll input,
// drain fixed ticks, render once. The render callback blocks until the
// presentation backend accepts the frame, which bounds the outer rate.
//
// Backends that own their own display loop (the windowed one) call Frame
// and render from their callbacks instead.
func (l *Loop) Run(src input.Source, render func()) {
	l.last = l.clock.Now()
	l.started = true

	for {
		in := src.Poll()
		if in.Quit {
			return
		}
		l.Frame(in)
		render()
	}
}
