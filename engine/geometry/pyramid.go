package geometry

// pyramidVertices is a square base of half-width 1 on the y=0 plane with an
// apex 2 units up. Index 4 is the apex.
var pyramidVertices = []float64{
	-1, 0, 1,
	1, 0, 1,
	1, 0, -1,
	-1, 0, -1,
	0, 2, 0,
}

// Pyramid builds a square pyramid placed at pos with a flat fill color.
// It has 4 triangular sides, 1 quad base and 8 edges.
func Pyramid(name string, pos [3]float64, c RGBA) Solid {
	verts := make([]float64, len(pyramidVertices))
	copy(verts, pyramidVertices)
	return Solid{
		Name:     name,
		Vertices: verts,
		Faces: []Face{
			{0, 1, 4},
			{1, 2, 4},
			{2, 3, 4},
			{3, 0, 4},
			{0, 1, 2, 3}, // base
		},
		Edges: []Edge{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{0, 4}, {1, 4}, {2, 4}, {3, 4},
		},
		Translation: pos,
		Color:       c,
	}
}

// DefaultScene returns the three pyramids of the reference scene.
func DefaultScene() []Solid {
	return []Solid{
		Pyramid("left", [3]float64{-3, 0, 0}, Cyan),
		Pyramid("back", [3]float64{0, 0, -5}, Magenta),
		Pyramid("right", [3]float64{3, 0, 0}, Yellow),
	}
}
