package constants

// Simulation timing
const (
	// TicksPerSecond is the fixed simulation rate; render rate is independent
	TicksPerSecond = 60

	// FixedStep is the duration of one simulation tick in seconds
	FixedStep = 1.0 / TicksPerSecond

	// Damping is the per-tick velocity retention factor applied after
	// integration; speed bleeds off asymptotically once input is released
	Damping = 0.98
)

// Player movement
const (
	// PlayerSpeed is the velocity gained per second of held input, in
	// pixels per second; loop setup divides it down to a per-tick delta
	PlayerSpeed = 200.0
)

// System priorities (lower runs first within a tick)
const (
	PriorityControl = 100
	PriorityPhysics = 200
)

// Window defaults, overridable via config
const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
	DefaultWindowTitle  = "ember2d"
)
