package input

// Snapshot is the per-frame record of directional intent plus a quit flag.
// It is rebuilt from scratch on every poll and carries no history; the
// parser/backend producing it owns all event decoding.
type Snapshot struct {
	Quit bool

	Left, Right, Up, Down bool
}

// Axis derives the movement axis pair from the directional flags.
// Each component is in {-1, 0, +1}; simultaneous opposite directions
// cancel to zero. Screen convention: Y grows downward, so Down is +1.
func (s Snapshot) Axis() (x, y float64) {
	if s.Left {
		x -= 1
	}
	if s.Right {
		x += 1
	}
	if s.Up {
		y -= 1
	}
	if s.Down {
		y += 1
	}
	return x, y
}

// Active reports whether any direction is held after cancellation
func (s Snapshot) Active() bool {
	x, y := s.Axis()
	return x != 0 || y != 0
}
