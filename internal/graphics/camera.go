package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera handles the view and projection matrices.
// The demos compute both once at startup and keep them fixed.
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
	// Translation moves the world into camera space
	Translation mgl32.Vec3
}

func NewCamera(width, height int) *Camera {
	c := &Camera{
		FOV:         60.0,
		NearPlane:   0.1,
		FarPlane:    1000.0,
		Translation: mgl32.Vec3{-0.5, -0.5, -2},
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio; zero heights keep the previous ratio
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		if c.AspectRatio == 0 {
			c.AspectRatio = 1
		}
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(c.Translation.X(), c.Translation.Y(), c.Translation.Z())
}
