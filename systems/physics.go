package systems

import (
	"github.com/lixenwraith/ember2d/component"
	"github.com/lixenwraith/ember2d/constants"
	"github.com/lixenwraith/ember2d/engine"
	"github.com/lixenwraith/ember2d/input"
)

// PhysicsSystem integrates motion state into spatial state for every
// entity holding both, then applies per-tick damping. It is the only
// steady-state writer of position and velocity.
type PhysicsSystem struct {
	world *engine.World

	transforms *engine.Store[component.Transform]
	bodies     *engine.Store[component.Body]
}

// NewPhysicsSystem creates a physics system over the world's tables
func NewPhysicsSystem(world *engine.World) engine.System {
	return &PhysicsSystem{
		world:      world,
		transforms: world.Transforms,
		bodies:     world.Bodies,
	}
}

// Priority returns the system's tick order; physics runs after control
func (s *PhysicsSystem) Priority() int {
	return constants.PriorityPhysics
}

// Update advances every movable entity by one tick: explicit Euler
// integration of position, then velocity scaled by the damping factor.
// Entities lacking a Transform or Body are skipped. No inter-entity
// coupling, so iteration order does not affect the result.
func (s *PhysicsSystem) Update(in input.Snapshot, dt float64) {
	for _, e := range s.world.Entities() {
		body, ok := s.bodies.Get(e)
		if !ok {
			continue
		}
		tr, ok := s.transforms.Get(e)
		if !ok {
			continue
		}

		tr.Pos = tr.Pos.Add(body.Vel.Scale(dt))
		body.Vel = body.Vel.Scale(constants.Damping)

		s.transforms.Set(e, tr)
		s.bodies.Set(e, body)
	}
}
