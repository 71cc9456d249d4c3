package profiling

import (
	"testing"
	"time"
)

func record(name string, d time.Duration) {
	mu.Lock()
	frameTotals[name] += d
	mu.Unlock()
}

func TestTopNOrdersByDuration(t *testing.T) {
	ResetFrame()
	defer ResetFrame()

	record("render.quadrants", 4200*time.Microsecond)
	record("render.overlay", 300*time.Microsecond)
	record("glfw.PollEvents", 2*time.Millisecond)

	got := TopN(2)
	want := "render.quadrants:4.2ms, glfw.PollEvents:2ms"
	if got != want {
		t.Errorf("TopN(2) = %q, want %q", got, want)
	}

	if got := TopN(10); got != "render.quadrants:4.2ms, glfw.PollEvents:2ms, render.overlay:0.3ms" {
		t.Errorf("TopN(10) = %q", got)
	}
}

func TestSumWithPrefix(t *testing.T) {
	ResetFrame()
	defer ResetFrame()

	record("render.a", time.Millisecond)
	record("render.b", 2*time.Millisecond)
	record("glfw.SwapBuffers", 5*time.Millisecond)

	if got := SumWithPrefix("render."); got != 3*time.Millisecond {
		t.Errorf("SumWithPrefix(render.) = %v, want 3ms", got)
	}
	if got := SumWithPrefix("missing."); got != 0 {
		t.Errorf("SumWithPrefix(missing.) = %v, want 0", got)
	}
}

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()
	defer ResetFrame()

	stop := Track("work")
	time.Sleep(time.Millisecond)
	stop()
	Track("work")()

	if d := Snapshot()["work"]; d < time.Millisecond {
		t.Errorf("tracked %v, want at least 1ms", d)
	}

	ResetFrame()
	if len(Snapshot()) != 0 {
		t.Error("ResetFrame left entries behind")
	}
}
