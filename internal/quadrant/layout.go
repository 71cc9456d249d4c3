// Package quadrant computes the four-colour split of the quadrant clear demo.
package quadrant

// Color is an RGBA clear colour with components in [0,1]
type Color [4]float32

var (
	Red    = Color{1, 0, 0, 1}
	Green  = Color{0, 1, 0, 1}
	Blue   = Color{0, 0, 1, 1}
	Yellow = Color{1, 1, 0, 1}
)

// Region is one scissored clear. X and Y are framebuffer coordinates with the
// origin at the bottom-left corner, as glViewport and glScissor expect.
type Region struct {
	Name          string
	X, Y          int32
	Width, Height int32
	Color         Color
}

// Contains reports whether the pixel (px, py) lies inside r
func (r Region) Contains(px, py int32) bool {
	return px >= r.X && px < r.X+r.Width && py >= r.Y && py < r.Y+r.Height
}

// Overlaps reports whether r and o share at least one pixel
func (r Region) Overlaps(o Region) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Layout splits a width x height surface into four equal quadrants in the
// order top-left, top-right, bottom-left, bottom-right, coloured red, green,
// blue and yellow. For odd sizes the last column/row is left uncovered.
func Layout(width, height int) []Region {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	hw := int32(width / 2)
	hh := int32(height / 2)

	return []Region{
		{Name: "top-left", X: 0, Y: hh, Width: hw, Height: hh, Color: Red},
		{Name: "top-right", X: hw, Y: hh, Width: hw, Height: hh, Color: Green},
		{Name: "bottom-left", X: 0, Y: 0, Width: hw, Height: hh, Color: Blue},
		{Name: "bottom-right", X: hw, Y: 0, Width: hw, Height: hh, Color: Yellow},
	}
}

// SquareSize is the side of the square surface the demo keeps after a resize
func SquareSize(width, height int) int {
	return min(width, height)
}
