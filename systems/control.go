package systems

import (
	"github.com/lixenwraith/ember2d/component"
	"github.com/lixenwraith/ember2d/constants"
	"github.com/lixenwraith/ember2d/core"
	"github.com/lixenwraith/ember2d/engine"
	"github.com/lixenwraith/ember2d/input"
	"github.com/lixenwraith/ember2d/vmath"
)

// ControlSystem maps the frame's directional intent onto the controlled
// entity's velocity. Acceleration is additive: held input keeps speeding
// the entity up, release decelerates only through physics damping.
type ControlSystem struct {
	player core.Entity
	speed  float64 // velocity change per tick of held input

	bodies *engine.Store[component.Body]
}

// NewControlSystem creates a control system for the given entity.
// speed is the velocity added per tick while a direction is held.
func NewControlSystem(world *engine.World, player core.Entity, speed float64) engine.System {
	return &ControlSystem{
		player: player,
		speed:  speed,
		bodies: world.Bodies,
	}
}

// Priority returns the system's tick order; control runs before physics
func (s *ControlSystem) Priority() int {
	return constants.PriorityControl
}

// Update adds axis * speed to the controlled entity's velocity.
// An entity without a Body is uncontrollable; that is a no-op, not an error.
func (s *ControlSystem) Update(in input.Snapshot, dt float64) {
	body, ok := s.bodies.Get(s.player)
	if !ok {
		return
	}

	x, y := in.Axis()
	body.Vel = body.Vel.Add(vmath.Vec2{X: x, Y: y}.Scale(s.speed))
	s.bodies.Set(s.player, body)
}
