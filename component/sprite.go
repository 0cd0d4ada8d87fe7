package component

import "github.com/lixenwraith/ember2d/core"

// Sprite references a loaded visual plus its intrinsic pixel size.
// Optional: entities without one are skipped by the render pass.
// The texture is owned by the resource collaborator, never by the sprite.
type Sprite struct {
	Tex  core.Texture
	W, H int
}
