package terminal

import (
	"hash/fnv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ember2d/core"
)

// Texture is the terminal's visual handle: a glyph plus its style.
// Intrinsic size stays in engine pixels; the presenter divides it down
// to cells at draw time.
type Texture struct {
	Rune  rune
	Style tcell.Style
}

// glyphSize is the nominal intrinsic pixel size of a glyph texture,
// chosen to match the windowed demo's sprite dimensions
const glyphSize = 64

// Load derives a deterministic glyph texture from the resource name.
// There are no files to read in a terminal; the name's hash picks a
// stable color so distinct resources stay distinguishable.
func (b *Backend) Load(name string) (core.Texture, int, int, error) {
	h := fnv.New32a()
	h.Write([]byte(name))
	sum := h.Sum32()

	// Keep channels bright enough to read on the dark background
	r := int32(64 + (sum>>16)&0x7F)
	g := int32(64 + (sum>>8)&0x7F)
	bl := int32(64 + sum&0x7F)

	style := b.background.Foreground(tcell.NewRGBColor(r, g, bl))
	return &Texture{Rune: '█', Style: style}, glyphSize, glyphSize, nil
}

// Placeholder returns the fallback glyph: a solid block in the engine's
// placeholder color
func (b *Backend) Placeholder(w, h int) core.Texture {
	style := b.background.Foreground(tcell.NewRGBColor(200, 80, 80))
	return &Texture{Rune: '█', Style: style}
}
