package texcoord

// Floats per vertex in the interleaved buffer: position xyz + texcoord uv
const (
	PositionSize = 3
	TexCoordSize = 2
	VertexStride = PositionSize + TexCoordSize
)

// Unit rectangle at the origin in the same vertex order as the coordinate
// tables: top-right, top-left, bottom-left, bottom-right.
var rectanglePositions = [4 * PositionSize]float32{
	1, 1, 0,
	0, 1, 0,
	0, 0, 0,
	1, 0, 0,
}

var rectangleIndices = []uint32{
	0, 1, 2,
	0, 2, 3,
}

// Rectangle is the CPU side of the textured quad.
type Rectangle struct {
	texCoords [8]float32
	vertices  []float32
}

// NewRectangle returns a rectangle with the coordinates of state 0
func NewRectangle() *Rectangle {
	r := &Rectangle{
		vertices: make([]float32, 4*VertexStride),
	}
	r.Apply(0)
	return r
}

// Apply overwrites the texture coordinates in place with the table of s and
// rebuilds the interleaved vertex data.
func (r *Rectangle) Apply(s State) {
	r.texCoords = s.Coords()
	for v := 0; v < 4; v++ {
		dst := r.vertices[v*VertexStride:]
		copy(dst[:PositionSize], rectanglePositions[v*PositionSize:])
		copy(dst[PositionSize:VertexStride], r.texCoords[v*TexCoordSize:])
	}
}

// TexCoords returns the current texture coordinates
func (r *Rectangle) TexCoords() [8]float32 {
	return r.texCoords
}

// Vertices returns the interleaved vertex data uploaded to the GPU.
// The slice is owned by the rectangle and changes on Apply.
func (r *Rectangle) Vertices() []float32 {
	return r.vertices
}

// Indices returns the two triangles of the quad
func (r *Rectangle) Indices() []uint32 {
	return rectangleIndices
}
