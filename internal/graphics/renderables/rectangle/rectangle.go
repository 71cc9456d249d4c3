package rectangle

import (
	"fmt"
	"log/slog"

	"gldemos/internal/graphics"
	renderer "gldemos/internal/graphics/renderer"
	"gldemos/internal/texcoord"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Options names the assets and sampling of the textured rectangle
type Options struct {
	VertShader string
	FragShader string
	Texture    string
	TexOptions graphics.TextureOptions
	ClearColor [4]float32
}

// Rectangle draws the texture-mapped quad driven by a texcoord.Controller
type Rectangle struct {
	opts       Options
	controller *texcoord.Controller
	log        *slog.Logger

	shader  *graphics.Shader
	texture graphics.Texture
	vao     uint32
	vbo     uint32
	ebo     uint32
	uploads int
}

// NewRectangle creates the renderable; GL resources are created in Init
func NewRectangle(controller *texcoord.Controller, opts Options, logger *slog.Logger) *Rectangle {
	if logger == nil {
		logger = slog.Default()
	}
	return &Rectangle{opts: opts, controller: controller, log: logger}
}

// Init compiles the shader, loads the texture and creates the quad buffers
func (r *Rectangle) Init() error {
	var err error
	r.shader, err = graphics.NewShader(r.opts.VertShader, r.opts.FragShader)
	if err != nil {
		return fmt.Errorf("rectangle shader: %w", err)
	}

	r.texture, err = graphics.GetTexture(r.opts.Texture, r.opts.TexOptions)
	if err != nil {
		r.shader.Delete()
		return fmt.Errorf("rectangle texture: %w", err)
	}
	r.log.Info("texture loaded", "path", r.opts.Texture, "width", r.texture.Width, "height", r.texture.Height)

	r.setupVAO()

	c := r.opts.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])

	r.shader.Use()
	r.shader.SetInt("u_texture", 0)
	return nil
}

func (r *Rectangle) setupVAO() {
	rect := r.controller.Rectangle()
	verts := rect.Vertices()
	indices := rect.Indices()

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.DYNAMIC_DRAW)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(texcoord.VertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, texcoord.PositionSize, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, texcoord.TexCoordSize, gl.FLOAT, false, stride, texcoord.PositionSize*4)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Render clears, re-uploads the vertex buffer if the state changed and draws the quad
func (r *Rectangle) Render(ctx renderer.RenderContext) {
	c := r.opts.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)

	r.shader.Use()
	r.shader.SetMatrix4("u_model", ctx.Model)
	r.shader.SetMatrix4("u_view", ctx.View)
	r.shader.SetMatrix4("u_projection", ctx.Proj)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture.ID)

	gl.BindVertexArray(r.vao)
	if r.controller.TakeDirty() {
		// The whole buffer is replaced, never patched
		verts := r.controller.Rectangle().Vertices()
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.DYNAMIC_DRAW)
		gl.BindBuffer(gl.ARRAY_BUFFER, 0)
		r.uploads++
	}
	gl.DrawElements(gl.TRIANGLES, int32(len(r.controller.Rectangle().Indices())), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Dispose releases GL resources
func (r *Rectangle) Dispose() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.shader != nil {
		r.shader.Delete()
	}
	graphics.ReleaseTextures()
	r.log.Debug("rectangle disposed", "uploads", r.uploads)
}

// SetViewport keeps the GL viewport in step with the framebuffer; the
// projection itself stays fixed.
func (r *Rectangle) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}
