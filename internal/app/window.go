package app

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowOptions describes the demo window
type WindowOptions struct {
	Width     int
	Height    int
	Title     string
	VSync     bool
	Resizable bool
	// KeepAspect locks the window to its initial aspect ratio
	KeepAspect bool
}

// GLFWWindow adapts *glfw.Window to the Window interface
type GLFWWindow struct {
	*glfw.Window
}

// PollEvents processes pending events; callbacks run on the calling thread
func (w GLFWWindow) PollEvents() {
	glfw.PollEvents()
}

// OpenWindow creates the window and makes its OpenGL 4.1 core context
// current. glfw.Init must have been called. Every failure wraps
// ErrContextUnsupported.
func OpenWindow(opts WindowOptions) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if opts.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContextUnsupported, err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("%w: %w", ErrContextUnsupported, err)
	}

	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	if opts.KeepAspect {
		window.SetAspectRatio(opts.Width, opts.Height)
	}

	return window, nil
}

// GLVersion returns the driver's version string
func GLVersion() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}
