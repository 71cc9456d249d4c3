// Package texcoord holds the texture-coordinate state machine of the textured
// rectangle demo and the quad geometry it drives.
package texcoord

import "strconv"

// State selects one of the coordinate tables. It cycles 0, 1, 2, 3, 0, ...
type State int

// StateCount is the number of coordinate states
const StateCount = 4

// Texture coordinates per state, vertex order top-right, top-left,
// bottom-left, bottom-right.
var coordTable = [StateCount][8]float32{
	// full image
	{1, 1, 0, 1, 0, 0, 1, 0},
	// lower-left quarter, magnified
	{0.5, 0.5, 0, 0.5, 0, 0, 0.5, 0},
	// x in [-1,2]: three repetitions horizontally
	{2, 1, -1, 1, -1, 0, 2, 0},
	// x and y in [-1,2]
	{2, 2, -1, 2, -1, -1, 2, -1},
}

// Next returns the state that follows s
func (s State) Next() State {
	return (s.normalize() + 1) % StateCount
}

// Coords returns the texture coordinates selected by s
func (s State) Coords() [8]float32 {
	return coordTable[s.normalize()]
}

func (s State) String() string {
	return strconv.Itoa(int(s))
}

func (s State) normalize() State {
	return ((s % StateCount) + StateCount) % StateCount
}

// Label is the overlay text shown for s
func Label(s State) string {
	return "Press space bar. state = " + s.String()
}
