package component

import "github.com/lixenwraith/ember2d/vmath"

// Transform holds an entity's spatial state.
// Every live entity owns exactly one, installed at creation.
type Transform struct {
	Pos   vmath.Vec2
	Rot   float64 // degrees, clockwise
	Scale vmath.Vec2
}

// DefaultTransform returns the transform installed at entity creation:
// origin position, no rotation, unit scale.
func DefaultTransform() Transform {
	return Transform{Scale: vmath.One()}
}
