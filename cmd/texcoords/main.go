// Command texcoords draws a textured unit rectangle under a fixed
// perspective camera. Pressing space cycles through four texture
// coordinate layouts: 0, 1, 2, 3, 0, ...
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"gldemos/internal/app"
	"gldemos/internal/config"
	"gldemos/internal/graphics"
	"gldemos/internal/graphics/renderables/overlay"
	"gldemos/internal/graphics/renderables/rectangle"
	renderer "gldemos/internal/graphics/renderer"
	"gldemos/internal/input"
	"gldemos/internal/texcoord"

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
	settings, err := config.Load(configPath, config.TexcoordDefaults())
	if err != nil {
		return err
	}
	config.Apply(settings)

	logger, err := app.NewLogger(os.Stderr, settings.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	texOpts, err := textureOptions(settings.Texture)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: %w", app.ErrContextUnsupported, err)
	}
	defer glfw.Terminate()

	window, err := app.OpenWindow(app.WindowOptions{
		Width:      settings.Window.Width,
		Height:     settings.Window.Height,
		Title:      settings.Window.Title,
		VSync:      settings.VSync,
		Resizable:  true,
		KeepAspect: true,
	})
	if err != nil {
		return err
	}
	defer window.Destroy()
	logger.Info("context created", "gl", app.GLVersion())

	text := overlay.NewText(filepath.Join(settings.Assets.ShadersDir, "font"), "")
	controller := texcoord.NewController(text, logger)
	rect := rectangle.NewRectangle(controller, rectangle.Options{
		VertShader: filepath.Join(settings.Assets.ShadersDir, settings.Assets.VertexShader),
		FragShader: filepath.Join(settings.Assets.ShadersDir, settings.Assets.FragShader),
		Texture:    settings.Assets.Texture,
		TexOptions: texOpts,
		ClearColor: settings.ClearColor,
	}, logger)

	// Projection aspect comes from the startup framebuffer and never changes
	fbW, fbH := window.GetFramebufferSize()
	r := renderer.NewRenderer(fbW, fbH, rect, text)

	im := input.NewInputManager()
	im.SetKeyCallback(window)

	demo := app.New(app.GLFWWindow{Window: window}, r, im, logger)
	demo.OnAction(input.ActionCycleState, func() {
		s := controller.Advance()
		logger.Info("state changed", "state", int(s))
	})

	// Shader and texture are ready before the first frame is scheduled
	if err := demo.Start(); err != nil {
		return err
	}
	defer demo.Close()

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		r.UpdateViewport(fbWidth, fbHeight)
	})

	return demo.Run()
}

func textureOptions(s config.TextureSettings) (graphics.TextureOptions, error) {
	opts := graphics.DefaultTextureOptions()
	wrap, err := graphics.ParseWrapMode(s.Wrap)
	if err != nil {
		return opts, err
	}
	opts.WrapS, opts.WrapT = wrap, wrap
	opts.MinFilter, opts.MagFilter, err = graphics.ParseFilter(s.Filter, opts.Mipmaps)
	if err != nil {
		return opts, err
	}
	opts.FlipY = s.FlipY
	return opts, nil
}
