package input_test

import (
	"gldemos/internal/input"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestSpacePressProducesOneEdge(t *testing.T) {
	im := input.NewInputManager()

	im.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	if !im.JustPressed(input.ActionCycleState) {
		t.Fatal("expected JustPressed after space press")
	}
	if !im.IsActive(input.ActionCycleState) {
		t.Error("expected action held")
	}
	im.PostUpdate()

	// Auto-repeat while held must not look like a new press
	im.HandleKeyEvent(glfw.KeySpace, glfw.Repeat)
	if im.JustPressed(input.ActionCycleState) {
		t.Error("repeat produced a second press edge")
	}

	im.HandleKeyEvent(glfw.KeySpace, glfw.Release)
	if !im.JustReleased(input.ActionCycleState) {
		t.Error("expected JustReleased after release")
	}
	if im.IsActive(input.ActionCycleState) {
		t.Error("action still held after release")
	}
	im.PostUpdate()

	im.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	if !im.JustPressed(input.ActionCycleState) {
		t.Error("second distinct press not detected")
	}
}

func TestOtherKeysAreIgnored(t *testing.T) {
	im := input.NewInputManager()

	for _, k := range []glfw.Key{glfw.KeyA, glfw.KeyEnter, glfw.KeyW, glfw.KeyUp} {
		im.HandleKeyEvent(k, glfw.Press)
	}
	for a := input.Action(0); a < input.ActionCount; a++ {
		if im.JustPressed(a) || im.IsActive(a) {
			t.Errorf("action %d triggered by an unbound key", a)
		}
	}
}

func TestEscapeQuits(t *testing.T) {
	im := input.NewInputManager()
	im.HandleKeyEvent(glfw.KeyEscape, glfw.Press)
	if !im.JustPressed(input.ActionQuit) {
		t.Error("escape did not map to ActionQuit")
	}
	if im.JustPressed(input.ActionCycleState) {
		t.Error("escape leaked into ActionCycleState")
	}
}

func TestRebinding(t *testing.T) {
	im := input.NewInputManager()
	im.UnbindKey(glfw.KeySpace)
	im.BindKey(glfw.KeyEnter, input.ActionCycleState)
	im.BindKey(glfw.KeyEnter, input.ActionCount) // out of range, dropped

	im.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	if im.JustPressed(input.ActionCycleState) {
		t.Error("unbound space still cycles")
	}
	im.HandleKeyEvent(glfw.KeyEnter, glfw.Press)
	if !im.JustPressed(input.ActionCycleState) {
		t.Error("enter binding not applied")
	}
	if im.JustPressed(input.ActionCount) || im.JustPressed(-1) {
		t.Error("out of range actions must report false")
	}
}
