package core

// Texture is an opaque handle to a loaded visual resource.
// The concrete type belongs to whichever presentation backend loaded it
// (*ebiten.Image for the windowed backend, a glyph style for the terminal
// backend). The engine only carries it and checks it against nil.
type Texture interface{}
