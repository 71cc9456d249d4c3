package quadrant

import "testing"

func TestLayoutOrderAndColors(t *testing.T) {
	regions := Layout(500, 500)
	if len(regions) != 4 {
		t.Fatalf("expected 4 regions, got %d", len(regions))
	}

	want := []Region{
		{Name: "top-left", X: 0, Y: 250, Width: 250, Height: 250, Color: Red},
		{Name: "top-right", X: 250, Y: 250, Width: 250, Height: 250, Color: Green},
		{Name: "bottom-left", X: 0, Y: 0, Width: 250, Height: 250, Color: Blue},
		{Name: "bottom-right", X: 250, Y: 0, Width: 250, Height: 250, Color: Yellow},
	}
	for i := range want {
		if regions[i] != want[i] {
			t.Errorf("region %d = %+v, want %+v", i, regions[i], want[i])
		}
	}
}

func TestLayoutPartitionsSurface(t *testing.T) {
	sizes := [][2]int{{2, 2}, {10, 6}, {64, 128}, {500, 500}, {7, 9}, {1, 1}}
	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		regions := Layout(w, h)

		for i := range regions {
			if regions[i].Width != int32(w/2) || regions[i].Height != int32(h/2) {
				t.Errorf("%dx%d: region %s has size %dx%d", w, h, regions[i].Name, regions[i].Width, regions[i].Height)
			}
			for j := i + 1; j < len(regions); j++ {
				if regions[i].Overlaps(regions[j]) {
					t.Errorf("%dx%d: %s overlaps %s", w, h, regions[i].Name, regions[j].Name)
				}
			}
		}

		// Every pixel inside the even part of the surface is covered exactly once
		for y := int32(0); y < int32(h/2*2); y++ {
			for x := int32(0); x < int32(w/2*2); x++ {
				n := 0
				for _, r := range regions {
					if r.Contains(x, y) {
						n++
					}
				}
				if n != 1 {
					t.Fatalf("%dx%d: pixel (%d,%d) covered %d times", w, h, x, y, n)
				}
			}
		}
	}
}

func TestLayoutAfterResizeScales(t *testing.T) {
	before := Layout(500, 500)
	s := SquareSize(1200, 800)
	if s != 800 {
		t.Fatalf("SquareSize(1200, 800) = %d, want 800", s)
	}
	after := Layout(s, s)

	for i := range before {
		if before[i].Color != after[i].Color || before[i].Name != after[i].Name {
			t.Errorf("region %d changed identity after resize: %+v -> %+v", i, before[i], after[i])
		}
		if after[i].Width != 400 || after[i].Height != 400 {
			t.Errorf("region %d size %dx%d, want 400x400", i, after[i].Width, after[i].Height)
		}
		if after[i].X != before[i].X*400/250 || after[i].Y != before[i].Y*400/250 {
			t.Errorf("region %d origin not scaled: (%d,%d)", i, after[i].X, after[i].Y)
		}
	}
}

func TestLayoutDegenerateSurface(t *testing.T) {
	for _, r := range Layout(0, -3) {
		if r.Width != 0 || r.Height != 0 {
			t.Errorf("expected empty region, got %+v", r)
		}
	}
}
