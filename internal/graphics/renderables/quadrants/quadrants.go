package quadrants

import (
	renderer "gldemos/internal/graphics/renderer"
	"gldemos/internal/quadrant"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Quadrants clears the framebuffer to four coloured quadrants with scissored viewports
type Quadrants struct {
	base quadrant.Color
}

// NewQuadrants creates the renderable; base is the colour the full surface is cleared to first
func NewQuadrants(base quadrant.Color) *Quadrants {
	return &Quadrants{base: base}
}

// Init has nothing to compile; the demo only clears
func (q *Quadrants) Init() error {
	return nil
}

// Render clears each quadrant of the current framebuffer
func (q *Quadrants) Render(ctx renderer.RenderContext) {
	gl.Viewport(0, 0, int32(ctx.Width), int32(ctx.Height))
	gl.ClearColor(q.base[0], q.base[1], q.base[2], q.base[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.Enable(gl.SCISSOR_TEST)
	for _, r := range quadrant.Layout(ctx.Width, ctx.Height) {
		gl.Viewport(r.X, r.Y, r.Width, r.Height)
		gl.Scissor(r.X, r.Y, r.Width, r.Height)
		gl.ClearColor(r.Color[0], r.Color[1], r.Color[2], r.Color[3])
		gl.Clear(gl.COLOR_BUFFER_BIT)
	}
	gl.Disable(gl.SCISSOR_TEST)

	gl.Viewport(0, 0, int32(ctx.Width), int32(ctx.Height))
}

// Dispose owns no GL objects
func (q *Quadrants) Dispose() {}

// SetViewport is a no-op: the layout is recomputed from the context every frame
func (q *Quadrants) SetViewport(width, height int) {}
