package asset

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/ember2d/core"
)

// Loader is the backend half of the resource collaborator: it turns an
// opaque resource name into a texture plus intrinsic pixel dimensions,
// and can synthesize a deterministic placeholder of a requested size.
type Loader interface {
	Load(name string) (tex core.Texture, w, h int, err error)
	Placeholder(w, h int) core.Texture
}

type entry struct {
	tex  core.Texture
	w, h int
}

// Textures fronts a Loader with the engine's acquisition policy: one load
// attempt per name (failures are cached too), and a load failure degrades
// to a placeholder of the fallback size instead of failing the frame.
type Textures struct {
	loader Loader
	cache  map[string]entry
	log    *zap.Logger
}

// NewTextures creates a texture front over the given loader.
// A nil logger disables load-failure reporting.
func NewTextures(loader Loader, log *zap.Logger) *Textures {
	if log == nil {
		log = zap.NewNop()
	}
	return &Textures{
		loader: loader,
		cache:  make(map[string]entry),
		log:    log,
	}
}

// Acquire returns the texture for name, loading it on first request.
// On load failure it returns a placeholder sized fallbackW x fallbackH;
// the substitution is cached, so each name is attempted exactly once.
func (t *Textures) Acquire(name string, fallbackW, fallbackH int) (core.Texture, int, int) {
	if e, ok := t.cache[name]; ok {
		return e.tex, e.w, e.h
	}

	tex, w, h, err := t.loader.Load(name)
	if err != nil {
		t.log.Warn("texture load failed, using placeholder",
			zap.String("name", name),
			zap.Error(err))
		tex = t.loader.Placeholder(fallbackW, fallbackH)
		w, h = fallbackW, fallbackH
	}

	t.cache[name] = entry{tex: tex, w: w, h: h}
	return tex, w, h
}
