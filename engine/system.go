package engine

import "github.com/lixenwraith/ember2d/input"

// System is a simulation step run once per fixed tick.
// Systems receive the frame's input snapshot and the fixed dt in seconds;
// they operate on world state cached at construction and must not retain
// references past the call.
type System interface {
	// Priority orders systems within a tick; lower values run first
	Priority() int

	// Update advances the system by one fixed tick
	Update(in input.Snapshot, dt float64)
}
