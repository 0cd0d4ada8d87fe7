package window

import (
	"fmt"
	"image"
	"image/color"
	"os"

	// Registered decoders for the formats sprites ship in
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/ember2d/core"
)

// FileLoader reads sprite images from disk into GPU textures.
// Caching and fallback policy live in asset.Textures; this loader only
// performs the single decode attempt.
type FileLoader struct{}

// Load decodes the image at path into a texture plus its pixel size
func (FileLoader) Load(path string) (core.Texture, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decode texture %s: %w", path, err)
	}

	tex := ebiten.NewImageFromImage(img)
	bounds := img.Bounds()
	return tex, bounds.Dx(), bounds.Dy(), nil
}

// placeholderColor is the deterministic fallback fill
var placeholderColor = color.RGBA{R: 200, G: 80, B: 80, A: 255}

// Placeholder returns a solid-fill texture of the requested size
func (FileLoader) Placeholder(w, h int) core.Texture {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := ebiten.NewImage(w, h)
	img.Fill(placeholderColor)
	return img
}
