package graphics

import (
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Texture is an uploaded 2D texture
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

var (
	textureCache = make(map[string]Texture)
	cacheMutex   sync.RWMutex
)

// GetTexture returns the texture for path, loading it on first use.
// Options only apply to the first load of a given path.
func GetTexture(path string, opts TextureOptions) (Texture, error) {
	cacheMutex.RLock()
	if tex, ok := textureCache[path]; ok {
		cacheMutex.RUnlock()
		return tex, nil
	}
	cacheMutex.RUnlock()

	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	// Double check locking
	if tex, ok := textureCache[path]; ok {
		return tex, nil
	}

	id, w, h, err := LoadTexture(path, opts)
	if err != nil {
		return Texture{}, err
	}

	tex := Texture{ID: id, Width: w, Height: h}
	textureCache[path] = tex
	return tex, nil
}

// ReleaseTextures deletes every cached texture. Must run on the GL thread.
func ReleaseTextures() {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	for path, tex := range textureCache {
		gl.DeleteTextures(1, &tex.ID)
		delete(textureCache, path)
	}
}
