package render

import (
	"math"

	"github.com/lixenwraith/ember2d/component"
	"github.com/lixenwraith/ember2d/engine"
)

// Pass is the render traversal: once per outer iteration it walks the
// live-entity list in creation order (the painter's order) and issues one
// draw per entity holding both a Transform and a Sprite with a live
// texture. It reads component state and never writes it.
type Pass struct {
	world *engine.World

	transforms *engine.Store[component.Transform]
	sprites    *engine.Store[component.Sprite]
}

// NewPass creates a render pass over the world's tables
func NewPass(world *engine.World) *Pass {
	return &Pass{
		world:      world,
		transforms: world.Transforms,
		sprites:    world.Sprites,
	}
}

// RenderFrame clears, draws every visible entity, and presents
func (p *Pass) RenderFrame(pr Presenter) {
	pr.Clear()

	for _, e := range p.world.Entities() {
		sp, ok := p.sprites.Get(e)
		if !ok {
			continue
		}
		tr, ok := p.transforms.Get(e)
		if !ok {
			continue
		}
		if sp.Tex == nil {
			continue
		}

		pr.Draw(sp.Tex, DestRect(tr, sp), tr.Rot)
	}

	pr.Present()
}

// DestRect computes the destination rectangle for a sprite: intrinsic size
// scaled by the transform, centered on the position and rounded to whole
// pixels. Half-extents are integer like the rectangle itself, so odd
// widths bias half a pixel right/down.
func DestRect(tr component.Transform, sp component.Sprite) Rect {
	w := int(float64(sp.W) * tr.Scale.X)
	h := int(float64(sp.H) * tr.Scale.Y)
	return Rect{
		X: int(math.Round(tr.Pos.X - float64(w/2))),
		Y: int(math.Round(tr.Pos.Y - float64(h/2))),
		W: w,
		H: h,
	}
}
