package renderer

import (
	"fmt"

	"gldemos/internal/graphics"
	"gldemos/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates rendering via renderable features.
// View and projection are taken from the camera once, at construction.
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
	names       []string

	width, height int
	model         mgl32.Mat4
	view          mgl32.Mat4
	proj          mgl32.Mat4
	initialized   int // number of renderables whose Init succeeded
}

// NewRenderer creates a renderer for a width x height framebuffer
func NewRenderer(width, height int, rs ...Renderable) *Renderer {
	camera := graphics.NewCamera(width, height)

	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = fmt.Sprintf("render.%T", r)
	}

	return &Renderer{
		renderables: rs,
		names:       names,
		camera:      camera,
		width:       width,
		height:      height,
		model:       mgl32.Ident4(),
		view:        camera.GetViewMatrix(),
		proj:        camera.GetProjectionMatrix(),
	}
}

// Init initializes every renderable in order and stops at the first failure.
// Renderables initialized before the failure are disposed.
func (r *Renderer) Init() error {
	for i, rd := range r.renderables {
		if err := rd.Init(); err != nil {
			r.Dispose()
			return fmt.Errorf("init %T: %w", rd, err)
		}
		rd.SetViewport(r.width, r.height)
		r.initialized = i + 1
	}
	return nil
}

// Render draws every renderable in registration order
func (r *Renderer) Render(dt float64) {
	ctx := RenderContext{
		DT:     dt,
		Width:  r.width,
		Height: r.height,
		Model:  r.model,
		View:   r.view,
		Proj:   r.proj,
	}

	for i, renderable := range r.renderables {
		stop := profiling.Track(r.names[i])
		renderable.Render(ctx)
		stop()
	}
}

// Dispose cleans up initialized renderables in reverse order
func (r *Renderer) Dispose() {
	for i := r.initialized - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.initialized = 0
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// UpdateViewport records the new framebuffer size. The projection stays
// fixed; only viewport-dependent renderables react.
func (r *Renderer) UpdateViewport(width, height int) {
	r.width, r.height = width, height
	for i := 0; i < r.initialized; i++ {
		r.renderables[i].SetViewport(width, height)
	}
}

// Matrices returns the model, view and projection used for every frame
func (r *Renderer) Matrices() (model, view, proj mgl32.Mat4) {
	return r.model, r.view, r.proj
}
