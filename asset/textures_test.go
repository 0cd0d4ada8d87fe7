package asset

import (
	"errors"
	"testing"

	"github.com/lixenwraith/ember2d/core"
)

type fakeTexture struct {
	placeholder bool
}

type fakeLoader struct {
	loads int
	fail  bool
}

func (l *fakeLoader) Load(name string) (core.Texture, int, int, error) {
	l.loads++
	if l.fail {
		return nil, 0, 0, errors.New("no such file")
	}
	return &fakeTexture{}, 32, 48, nil
}

func (l *fakeLoader) Placeholder(w, h int) core.Texture {
	return &fakeTexture{placeholder: true}
}

func TestAcquireCachesResult(t *testing.T) {
	loader := &fakeLoader{}
	textures := NewTextures(loader, nil)

	tex1, w, h := textures.Acquire("player.png", 64, 64)
	if tex1 == nil || w != 32 || h != 48 {
		t.Errorf("Expected loaded 32x48 texture, got %v %dx%d", tex1, w, h)
	}

	tex2, _, _ := textures.Acquire("player.png", 64, 64)
	if tex1 != tex2 {
		t.Error("Expected cached texture on second acquire")
	}
	if loader.loads != 1 {
		t.Errorf("Expected single load attempt, got %d", loader.loads)
	}
}

func TestAcquireFallbackOnFailure(t *testing.T) {
	loader := &fakeLoader{fail: true}
	textures := NewTextures(loader, nil)

	tex, w, h := textures.Acquire("missing.png", 64, 64)
	ft, ok := tex.(*fakeTexture)
	if !ok || !ft.placeholder {
		t.Errorf("Expected placeholder substitution, got %v", tex)
	}
	if w != 64 || h != 64 {
		t.Errorf("Expected fallback dimensions 64x64, got %dx%d", w, h)
	}

	// Failure is cached: no retry on the next acquire
	textures.Acquire("missing.png", 64, 64)
	if loader.loads != 1 {
		t.Errorf("Expected no retry after cached failure, got %d attempts", loader.loads)
	}
}
