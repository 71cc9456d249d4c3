package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared per-frame context for all renderables
type RenderContext struct {
	DT     float64
	Width  int // framebuffer size in pixels
	Height int
	Model  mgl32.Mat4
	View   mgl32.Mat4
	Proj   mgl32.Mat4
}

// Renderable defines the lifecycle of a drawable feature
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
