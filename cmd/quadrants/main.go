package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"gldemos/internal/app"
	"gldemos/internal/config"
	"gldemos/internal/graphics/renderables/quadrants"
	renderer "gldemos/internal/graphics/renderer"
	"gldemos/internal/input"
	"gldemos/internal/quadrant"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "optional YAML settings file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("program terminated with error", "error", err)
		fmt.Fprintln(os.Stderr, "Failed to initialize program:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	settings, err := config.Load(configPath, config.QuadrantDefaults())
	if err != nil {
		return err
	}
	config.Apply(settings)

	logger, err := app.NewLogger(os.Stderr, settings.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: %w", app.ErrContextUnsupported, err)
	}
	defer glfw.Terminate()

	window, err := app.OpenWindow(app.WindowOptions{
		Width:     settings.Window.Width,
		Height:    settings.Window.Height,
		Title:     settings.Window.Title,
		VSync:     settings.VSync,
		Resizable: true,
	})
	if err != nil {
		return err
	}
	defer window.Destroy()
	logger.Info("context created", "gl", app.GLVersion())

	fbW, fbH := window.GetFramebufferSize()
	r := renderer.NewRenderer(fbW, fbH, quadrants.NewQuadrants(quadrant.Color(settings.ClearColor)))

	im := input.NewInputManager()
	im.SetKeyCallback(window)

	demo := app.New(app.GLFWWindow{Window: window}, r, im, logger)
	if err := demo.Start(); err != nil {
		return err
	}
	defer demo.Close()

	setupResizeHandlers(window, r, demo, logger)

	return demo.Run()
}

// setupResizeHandlers keeps the window square and re-lays out the quadrants
// whenever the framebuffer changes size.
func setupResizeHandlers(window *glfw.Window, r *renderer.Renderer, demo *app.App, logger *slog.Logger) {
	window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		size := quadrant.SquareSize(width, height)
		if size > 0 && (width != size || height != size) {
			w.SetSize(size, size)
		}
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		logger.Debug("framebuffer resized", "width", fbWidth, "height", fbHeight)
		r.UpdateViewport(fbWidth, fbHeight)
		demo.Refresh()
	})

	window.SetRefreshCallback(func(w *glfw.Window) {
		demo.Refresh()
	})
}
