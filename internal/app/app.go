package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gldemos/internal/input"
	"gldemos/internal/profiling"
)

var (
	// ErrContextUnsupported means no window or OpenGL context could be created
	ErrContextUnsupported = errors.New("OpenGL context is not supported")
	// ErrInit means shader compilation or asset loading failed
	ErrInit = errors.New("failed to initialize program")
	// ErrAlreadyInitialized is returned by a second Start
	ErrAlreadyInitialized = errors.New("already initialized")
	// ErrNotStarted is returned by Run before a successful Start
	ErrNotStarted = errors.New("not initialized")
)

// slowFrame is the processing time above which a frame is logged
const slowFrame = 16 * time.Millisecond

// Window is the part of a GLFW window the frame loop drives
type Window interface {
	ShouldClose() bool
	SetShouldClose(bool)
	SwapBuffers()
	PollEvents()
}

// Scene is everything drawn in a frame
type Scene interface {
	Init() error
	Render(dt float64)
	Dispose()
}

// App owns one demo: its window, scene and input. It replaces the
// process-wide mutable state a demo would otherwise keep.
type App struct {
	window   Window
	scene    Scene
	input    *input.InputManager
	log      *slog.Logger
	handlers map[input.Action][]func()

	fpsLimiter *FPSLimiter
	started    bool
	frames     int
	lastTime   time.Time
}

// New creates an app. Escape (ActionQuit) closes the window by default.
func New(window Window, scene Scene, im *input.InputManager, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	a := &App{
		window:     window,
		scene:      scene,
		input:      im,
		log:        logger,
		handlers:   make(map[input.Action][]func()),
		fpsLimiter: NewFPSLimiter(),
	}
	a.OnAction(input.ActionQuit, func() { a.window.SetShouldClose(true) })
	return a
}

// OnAction registers fn to run once for each press of action
func (a *App) OnAction(action input.Action, fn func()) {
	a.handlers[action] = append(a.handlers[action], fn)
}

// Start runs the scene's initialization once. No frame is ever rendered
// unless Start succeeded.
func (a *App) Start() error {
	if a.started {
		a.log.Warn("start called twice")
		return ErrAlreadyInitialized
	}
	if err := a.scene.Init(); err != nil {
		return fmt.Errorf("%w: %w", ErrInit, err)
	}
	a.started = true
	a.lastTime = time.Now()
	a.log.Info("initialized")
	return nil
}

// Run drives the frame loop until the window is asked to close
func (a *App) Run() error {
	if !a.started {
		return ErrNotStarted
	}
	for !a.window.ShouldClose() {
		a.tick()
	}
	a.log.Info("window closed", "frames", a.frames)
	return nil
}

// Frames returns the number of frames rendered so far
func (a *App) Frames() int {
	return a.frames
}

func (a *App) tick() {
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); a.window.PollEvents() }()
	a.dispatch()

	a.scene.Render(dt)
	a.frames++

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	if d := time.Since(now) - profiling.SumWithPrefix("glfw."); d > slowFrame {
		a.log.Warn("slow frame", "duration", d, "top", profiling.TopN(5))
	}

	a.input.PostUpdate()
	a.fpsLimiter.Wait()
}

func (a *App) dispatch() {
	for action := input.Action(0); action < input.ActionCount; action++ {
		if !a.input.JustPressed(action) {
			continue
		}
		for _, fn := range a.handlers[action] {
			fn()
		}
	}
}

// Refresh redraws immediately, outside the regular loop (window resize)
func (a *App) Refresh() {
	if !a.started {
		return
	}
	a.scene.Render(0)
	a.window.SwapBuffers()
}

// Close disposes the scene
func (a *App) Close() {
	if a.started {
		a.scene.Dispose()
		a.started = false
	}
}
