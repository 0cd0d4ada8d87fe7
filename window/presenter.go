package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/ember2d/core"
	"github.com/lixenwraith/ember2d/render"
)

// backgroundColor is the scene clear color
var backgroundColor = color.RGBA{R: 50, G: 50, B: 60, A: 255}

// screenPresenter implements render.Presenter over the frame's target
// image. Ebiten performs the actual present after Draw returns, so
// Present here is a no-op.
type screenPresenter struct {
	screen *ebiten.Image
}

func (p *screenPresenter) Clear() {
	p.screen.Fill(backgroundColor)
}

// Draw composites the texture into dst, rotated about the rectangle
// center, no flipping
func (p *screenPresenter) Draw(tex core.Texture, dst render.Rect, degrees float64) {
	img, ok := tex.(*ebiten.Image)
	if !ok {
		return
	}

	bounds := img.Bounds()
	iw, ih := bounds.Dx(), bounds.Dy()
	if iw == 0 || ih == 0 || dst.W == 0 || dst.H == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	// Scale intrinsic size to the destination, rotate about the center,
	// then translate the center into place
	op.GeoM.Scale(float64(dst.W)/float64(iw), float64(dst.H)/float64(ih))
	op.GeoM.Translate(-float64(dst.W)/2, -float64(dst.H)/2)
	op.GeoM.Rotate(degrees * math.Pi / 180)
	op.GeoM.Translate(float64(dst.X)+float64(dst.W)/2, float64(dst.Y)+float64(dst.H)/2)

	p.screen.DrawImage(img, op)
}

func (p *screenPresenter) Present() {}
