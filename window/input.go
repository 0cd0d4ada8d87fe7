package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/ember2d/input"
)

// readKeyboard builds the frame's snapshot from held-key state.
// Arrows and WASD both steer; Escape quits (window close is handled by
// Ebiten itself). Held state, not events: release genuinely clears the
// flag, so opposite holds cancel exactly as the axis contract requires.
func readKeyboard() input.Snapshot {
	return input.Snapshot{
		Quit:  ebiten.IsKeyPressed(ebiten.KeyEscape),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
	}
}
