// Package window is the Ebiten-based presentation and input backend:
// window lifecycle, held-key snapshots, texture loading and frame
// compositing. Ebiten owns the display-rate loop, so the engine's
// fixed-step accumulator is driven from the Update callback while Draw
// issues the frame's render pass.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/ember2d/engine"
	"github.com/lixenwraith/ember2d/input"
	"github.com/lixenwraith/ember2d/render"
)

// App couples the simulation loop and render pass to an Ebiten window
type App struct {
	loop *engine.Loop
	pass *render.Pass

	width, height int
	presenter     *screenPresenter

	// OnFrame, when set, observes each outer iteration after its ticks
	// are drained (audio feedback, stats)
	OnFrame func(in input.Snapshot, ticks int)
}

// NewApp creates an app over an assembled loop and render pass
func NewApp(loop *engine.Loop, pass *render.Pass, width, height int) *App {
	return &App{
		loop:      loop,
		pass:      pass,
		width:     width,
		height:    height,
		presenter: &screenPresenter{},
	}
}

// Update is one outer iteration minus the render: poll the keyboard,
// drain fixed ticks. Ebiten calls it once per display frame.
func (a *App) Update() error {
	snap := readKeyboard()
	if snap.Quit {
		return ebiten.Termination
	}

	ticks := a.loop.Frame(snap)

	if a.OnFrame != nil {
		a.OnFrame(snap, ticks)
	}
	return nil
}

// Draw renders the latest component state once per display frame
func (a *App) Draw(screen *ebiten.Image) {
	a.presenter.screen = screen
	a.pass.RenderFrame(a.presenter)
}

// Layout fixes the logical resolution regardless of the OS window size
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// Run opens the window and blocks until quit or window close
func (a *App) Run(title string) error {
	ebiten.SetWindowSize(a.width, a.height)
	ebiten.SetWindowTitle(title)

	if err := ebiten.RunGame(a); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
