package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/ember2d/input"
)

// countingSystem records tick invocations and the dt it was handed
type countingSystem struct {
	priority int
	ticks    int
	lastDT   float64
	trace    *[]int // shared sequence log for ordering checks
	id       int
}

func (s *countingSystem) Priority() int { return s.priority }

func (s *countingSystem) Update(in input.Snapshot, dt float64) {
	s.ticks++
	s.lastDT = dt
	if s.trace != nil {
		*s.trace = append(*s.trace, s.id)
	}
}

func TestAdvanceDrainsWholeTicks(t *testing.T) {
	step := 1.0 / 60.0
	loop := NewLoop(NewMonotonicTimeProvider(), step)
	sys := &countingSystem{}
	loop.AddSystem(sys)

	// Double the step drains exactly two ticks
	ticks := loop.Advance(2*step, input.Snapshot{})
	if ticks != 2 {
		t.Errorf("Expected 2 ticks for elapsed 1/30s, got %d", ticks)
	}
	if sys.ticks != 2 {
		t.Errorf("Expected system run twice, got %d", sys.ticks)
	}
	if sys.lastDT != step {
		t.Errorf("Expected dt %v, got %v", step, sys.lastDT)
	}
}

func TestAdvanceLeavesRemainder(t *testing.T) {
	step := 1.0 / 60.0
	loop := NewLoop(NewMonotonicTimeProvider(), step)
	sys := &countingSystem{}
	loop.AddSystem(sys)

	// Half a step drains nothing
	if ticks := loop.Advance(step/2, input.Snapshot{}); ticks != 0 {
		t.Errorf("Expected 0 ticks for half a step, got %d", ticks)
	}

	// The remainder carries over into the next iteration
	if ticks := loop.Advance(step/2, input.Snapshot{}); ticks != 1 {
		t.Errorf("Expected carried accumulator to drain 1 tick, got %d", ticks)
	}
}

func TestAdvanceZeroElapsed(t *testing.T) {
	loop := NewLoop(NewMonotonicTimeProvider(), 1.0/60.0)
	sys := &countingSystem{}
	loop.AddSystem(sys)

	if ticks := loop.Advance(0, input.Snapshot{}); ticks != 0 {
		t.Errorf("Expected 0 ticks for zero elapsed, got %d", ticks)
	}
}

func TestAccumulatedEquivalence(t *testing.T) {
	// N single-step advances must equal one advance of N steps.
	// 1/64 is binary-exact, so the accumulator arithmetic is too and the
	// comparison is free of float drift.
	step := 1.0 / 64.0
	const n = 7

	single := NewLoop(NewMonotonicTimeProvider(), step)
	singleSys := &countingSystem{}
	single.AddSystem(singleSys)
	for i := 0; i < n; i++ {
		single.Advance(step, input.Snapshot{})
	}

	batched := NewLoop(NewMonotonicTimeProvider(), step)
	batchedSys := &countingSystem{}
	batched.AddSystem(batchedSys)
	batched.Advance(n*step, input.Snapshot{})

	if singleSys.ticks != batchedSys.ticks {
		t.Errorf("Expected equal tick counts, got %d vs %d", singleSys.ticks, batchedSys.ticks)
	}
	if singleSys.ticks != n {
		t.Errorf("Expected %d ticks, got %d", n, singleSys.ticks)
	}
}

func TestSystemPriorityOrder(t *testing.T) {
	loop := NewLoop(NewMonotonicTimeProvider(), 1.0/60.0)

	var trace []int
	loop.AddSystem(&countingSystem{priority: 200, trace: &trace, id: 2})
	loop.AddSystem(&countingSystem{priority: 100, trace: &trace, id: 1})

	loop.Advance(1.0/60.0, input.Snapshot{})

	if len(trace) != 2 || trace[0] != 1 || trace[1] != 2 {
		t.Errorf("Expected lower priority first [1 2], got %v", trace)
	}
}

func TestFrameMeasuresClock(t *testing.T) {
	clock := NewMockTimeProvider(time.Unix(0, 0))
	// 10ms step: representable in whole nanoseconds so the mock clock
	// can advance by exact multiples of it
	loop := NewLoop(clock, 0.01)
	sys := &countingSystem{}
	loop.AddSystem(sys)

	// First frame only establishes the reference
	if ticks := loop.Frame(input.Snapshot{}); ticks != 0 {
		t.Errorf("Expected 0 ticks on first frame, got %d", ticks)
	}

	// One outer iteration at double the fixed step drains exactly 2 ticks
	clock.Advance(20 * time.Millisecond)
	if ticks := loop.Frame(input.Snapshot{}); ticks != 2 {
		t.Errorf("Expected 2 ticks after a double-step frame, got %d", ticks)
	}
}

func TestRunRendersOncePerIteration(t *testing.T) {
	clock := NewMockTimeProvider(time.Unix(0, 0))
	loop := NewLoop(clock, 0.01)
	sys := &countingSystem{}
	loop.AddSystem(sys)

	renders := 0
	polls := 0
	src := input.SourceFunc(func() input.Snapshot {
		polls++
		if polls == 1 {
			// One outer iteration worth two ticks
			clock.Advance(20 * time.Millisecond)
			return input.Snapshot{}
		}
		return input.Snapshot{Quit: true}
	})

	loop.Run(src, func() { renders++ })

	if renders != 1 {
		t.Errorf("Expected exactly 1 render regardless of tick count, got %d", renders)
	}
	if sys.ticks != 2 {
		t.Errorf("Expected 2 ticks drained, got %d", sys.ticks)
	}
}

func TestRunQuitObservedAtTopOfIteration(t *testing.T) {
	clock := NewMockTimeProvider(time.Unix(0, 0))
	loop := NewLoop(clock, 1.0/60.0)

	renders := 0
	src := input.SourceFunc(func() input.Snapshot {
		return input.Snapshot{Quit: true}
	})

	loop.Run(src, func() { renders++ })

	if renders != 0 {
		t.Errorf("Expected no render after quit, got %d", renders)
	}
}
