package core

// Entity is a unique identifier for an entity.
// IDs are issued monotonically starting at 1; zero is never a live entity.
type Entity uint64

// InvalidEntity is the zero value, never issued by a world.
const InvalidEntity Entity = 0
