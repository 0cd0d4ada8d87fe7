package render

import "github.com/lixenwraith/ember2d/core"

// Presenter is the presentation collaborator: it composites issued draws
// to the display. One Clear/Present pair brackets each frame's draws;
// Present blocks until the display accepts the frame, which bounds the
// outer loop rate.
type Presenter interface {
	// Clear fills the frame with the background before any draws
	Clear()

	// Draw composites the texture into dst rotated by degrees (clockwise,
	// about the rectangle center), no flipping. Backends that cannot
	// rotate (the terminal) accept and ignore the angle.
	Draw(tex core.Texture, dst Rect, degrees float64)

	// Present flips the finished frame to the display
	Present()
}
