package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ember2d/input"
)

// Poll drains all pending terminal events into a fresh snapshot.
// Terminals deliver no key-release events, so each keypress becomes a
// one-frame direction pulse; sustained motion comes from autorepeat and
// the engine's damped velocity, which keeps the additive-control contract
// intact. Quit: q, Escape or Ctrl+C.
func (b *Backend) Poll() input.Snapshot {
	var snap input.Snapshot

	for {
		select {
		case ev := <-b.events:
			switch e := ev.(type) {
			case *tcell.EventKey:
				b.decodeKey(e, &snap)
			case *tcell.EventResize:
				b.screen.Sync()
			}
		default:
			return snap
		}
	}
}

func (b *Backend) decodeKey(e *tcell.EventKey, snap *input.Snapshot) {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		snap.Quit = true
	case tcell.KeyLeft:
		snap.Left = true
	case tcell.KeyRight:
		snap.Right = true
	case tcell.KeyUp:
		snap.Up = true
	case tcell.KeyDown:
		snap.Down = true
	case tcell.KeyRune:
		switch e.Rune() {
		case 'q', 'Q':
			snap.Quit = true
		case 'a', 'h':
			snap.Left = true
		case 'd', 'l':
			snap.Right = true
		case 'w', 'k':
			snap.Up = true
		case 's', 'j':
			snap.Down = true
		}
	}
}
