// Package terminal is the tcell-based presentation and input backend.
// It maps the engine's pixel-space contract onto a cell grid so the demo
// runs in any terminal, without a display server. Rotation is accepted
// and ignored; cells cannot rotate.
package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// Backend owns the tcell screen and the event pump
type Backend struct {
	screen tcell.Screen
	events chan tcell.Event
	stop   chan struct{}

	// pixelsPerCell maps engine pixel coordinates onto the cell grid;
	// a 800x600 scene at 8 px/cell needs a 100x75 terminal
	pixelsPerCell int

	background tcell.Style
}

// New creates and initializes a terminal backend.
// pixelsPerCell values below 1 are clamped to 8.
func New(pixelsPerCell int) (*Backend, error) {
	if pixelsPerCell < 1 {
		pixelsPerCell = 8
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	// Scene background matches the windowed clear color
	background := tcell.StyleDefault.Background(tcell.NewRGBColor(50, 50, 60))
	screen.SetStyle(background)
	screen.HideCursor()

	b := &Backend{
		screen:        screen,
		events:        make(chan tcell.Event, 64),
		stop:          make(chan struct{}),
		pixelsPerCell: pixelsPerCell,
		background:    background,
	}

	go screen.ChannelEvents(b.events, b.stop)

	return b, nil
}

// Fini restores the terminal; safe to defer immediately after New
func (b *Backend) Fini() {
	close(b.stop)
	b.screen.Fini()
}

// Size returns the cell grid dimensions
func (b *Backend) Size() (int, int) {
	return b.screen.Size()
}
