package component

import "github.com/lixenwraith/ember2d/vmath"

// Body holds an entity's motion state.
// Optional: entities without one are skipped by control and physics.
type Body struct {
	Vel vmath.Vec2
	// Mass is carried for future force/impulse systems; nothing reads it yet
	Mass float64
}
