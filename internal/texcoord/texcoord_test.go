package texcoord

import (
	"io"
	"log/slog"
	"testing"
)

var expectedTables = [StateCount][8]float32{
	{1, 1, 0, 1, 0, 0, 1, 0},
	{0.5, 0.5, 0, 0.5, 0, 0, 0.5, 0},
	{2, 1, -1, 1, -1, 0, 2, 0},
	{2, 2, -1, 2, -1, -1, 2, -1},
}

type recordingSink struct {
	texts []string
}

func (r *recordingSink) SetText(text string) { r.texts = append(r.texts, text) }

func (r *recordingSink) last() string {
	if len(r.texts) == 0 {
		return ""
	}
	return r.texts[len(r.texts)-1]
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCoordsMatchTable(t *testing.T) {
	for s := State(0); s < StateCount; s++ {
		if got := s.Coords(); got != expectedTables[s] {
			t.Errorf("state %d coords = %v, want %v", s, got, expectedTables[s])
		}
	}
}

func TestNextIsCyclic(t *testing.T) {
	for start := State(0); start < StateCount; start++ {
		s := start
		for i := 0; i < StateCount; i++ {
			s = s.Next()
		}
		if s != start {
			t.Errorf("four transitions from %d ended at %d", start, s)
		}
	}
	if got := State(3).Next(); got != 0 {
		t.Errorf("State(3).Next() = %d, want 0", got)
	}
	// Out of range values still land in the cycle
	if got := State(-1).Next(); got != 0 {
		t.Errorf("State(-1).Next() = %d, want 0", got)
	}
}

func TestRectangleApplyInterleaves(t *testing.T) {
	r := NewRectangle()
	r.Apply(2)

	v := r.Vertices()
	if len(v) != 4*VertexStride {
		t.Fatalf("vertex data has %d floats, want %d", len(v), 4*VertexStride)
	}
	wantPos := [][3]float32{{1, 1, 0}, {0, 1, 0}, {0, 0, 0}, {1, 0, 0}}
	for i := 0; i < 4; i++ {
		base := i * VertexStride
		pos := [3]float32{v[base], v[base+1], v[base+2]}
		if pos != wantPos[i] {
			t.Errorf("vertex %d position = %v, want %v", i, pos, wantPos[i])
		}
		uv := [2]float32{v[base+3], v[base+4]}
		want := [2]float32{expectedTables[2][i*2], expectedTables[2][i*2+1]}
		if uv != want {
			t.Errorf("vertex %d uv = %v, want %v", i, uv, want)
		}
	}

	idx := r.Indices()
	if len(idx) != 6 {
		t.Fatalf("expected 2 triangles, got %d indices", len(idx))
	}
}

func TestApplyOverwritesInPlace(t *testing.T) {
	r := NewRectangle()
	before := r.Vertices()
	r.Apply(3)
	after := r.Vertices()
	if &before[0] != &after[0] {
		t.Error("Apply reallocated the vertex buffer")
	}
	if r.TexCoords() != expectedTables[3] {
		t.Errorf("TexCoords() = %v", r.TexCoords())
	}
}

func TestControllerScenario(t *testing.T) {
	sink := &recordingSink{}
	c := NewController(sink, quietLogger())

	if c.State() != 0 {
		t.Fatalf("initial state = %d", c.State())
	}
	if sink.last() != "Press space bar. state = 0" {
		t.Errorf("initial label = %q", sink.last())
	}
	if !c.TakeDirty() {
		t.Error("initial geometry must be uploaded once")
	}
	if c.TakeDirty() {
		t.Error("dirty flag not cleared")
	}

	if s := c.Advance(); s != 1 {
		t.Fatalf("after one press state = %d, want 1", s)
	}
	if sink.last() != "Press space bar. state = 1" {
		t.Errorf("label = %q", sink.last())
	}
	if c.Rectangle().TexCoords() != expectedTables[1] {
		t.Errorf("coords = %v, want state-1 table", c.Rectangle().TexCoords())
	}
	if !c.TakeDirty() {
		t.Error("transition did not mark the geometry dirty")
	}

	for i := 0; i < 3; i++ {
		c.Advance()
	}
	if c.State() != 0 {
		t.Errorf("after four presses state = %d, want 0", c.State())
	}
	if c.Rectangle().TexCoords() != expectedTables[0] {
		t.Errorf("original table not restored: %v", c.Rectangle().TexCoords())
	}
	if len(sink.texts) != 5 {
		t.Errorf("label updated %d times, want 5", len(sink.texts))
	}
}

func TestControllerWithoutSink(t *testing.T) {
	c := NewController(nil, nil)
	if c.Advance() != 1 {
		t.Error("advance without a label sink failed")
	}
}
