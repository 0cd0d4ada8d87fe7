package terminal

import (
	"github.com/lixenwraith/ember2d/core"
	"github.com/lixenwraith/ember2d/render"
)

// Clear fills the cell grid with the scene background
func (b *Backend) Clear() {
	b.screen.Fill(' ', b.background)
}

// Draw rasterizes the destination rectangle onto the cell grid using the
// texture's glyph and style. The rotation angle is ignored.
func (b *Backend) Draw(tex core.Texture, dst render.Rect, degrees float64) {
	gt, ok := tex.(*Texture)
	if !ok {
		return
	}

	x0 := dst.X / b.pixelsPerCell
	y0 := dst.Y / b.pixelsPerCell
	x1 := (dst.X + dst.W) / b.pixelsPerCell
	y1 := (dst.Y + dst.H) / b.pixelsPerCell

	// A sub-cell sprite still occupies its cell
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	w, h := b.screen.Size()
	for y := y0; y < y1; y++ {
		if y < 0 || y >= h {
			continue
		}
		for x := x0; x < x1; x++ {
			if x < 0 || x >= w {
				continue
			}
			b.screen.SetContent(x, y, gt.Rune, nil, gt.Style)
		}
	}
}

// Present flips the finished frame to the terminal
func (b *Backend) Present() {
	b.screen.Show()
}
