package geometry

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedVertices = errors.New("vertex list length is not a multiple of 3")
	ErrIndexOutOfRange   = errors.New("vertex index out of range")
	ErrDegenerateFace    = errors.New("face has fewer than 3 vertices")
)

// RGBA is a normalized (0-1) color
type RGBA struct {
	R, G, B, A float64
}

var (
	Cyan    = RGBA{0, 1, 1, 1}
	Magenta = RGBA{1, 0, 1, 1}
	Yellow  = RGBA{1, 1, 0, 1}
	Black   = RGBA{0, 0, 0, 1}
)

// Float32 returns the color as a uniform-ready slice.
func (c RGBA) Float32() []float32 {
	return []float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

// Face is an ordered polygon of vertex indices, wound for triangle-fan submission.
type Face []int

// Edge is a pair of vertex indices drawn as a wireframe line.
type Edge [2]int

// Solid is one renderable polyhedron. Vertices are stored flat: vertex i
// occupies Vertices[3i : 3i+3].
type Solid struct {
	Name        string
	Vertices    []float64
	Faces       []Face
	Edges       []Edge
	Translation [3]float64
	Color       RGBA
}

// VertexCount returns the number of 3D points in the vertex list.
func (s *Solid) VertexCount() int {
	return len(s.Vertices) / 3
}

// Validate checks that every face and edge index refers to an existing vertex.
func (s *Solid) Validate() error {
	if len(s.Vertices)%3 != 0 {
		return fmt.Errorf("solid %q: %w (len %d)", s.Name, ErrMalformedVertices, len(s.Vertices))
	}
	n := s.VertexCount()
	for fi, f := range s.Faces {
		if len(f) < 3 {
			return fmt.Errorf("solid %q face %d: %w", s.Name, fi, ErrDegenerateFace)
		}
		for _, idx := range f {
			if idx < 0 || idx >= n {
				return fmt.Errorf("solid %q face %d: %w (%d >= %d)", s.Name, fi, ErrIndexOutOfRange, idx, n)
			}
		}
	}
	for ei, e := range s.Edges {
		for _, idx := range e {
			if idx < 0 || idx >= n {
				return fmt.Errorf("solid %q edge %d: %w (%d >= %d)", s.Name, ei, ErrIndexOutOfRange, idx, n)
			}
		}
	}
	return nil
}

// ValidateScene validates every solid, stopping at the first failure.
func ValidateScene(solids []Solid) error {
	for i := range solids {
		if err := solids[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Vertex returns the i-th point of a flat vertex list.
func Vertex(vertices []float64, i int) (x, y, z float64) {
	return vertices[3*i], vertices[3*i+1], vertices[3*i+2]
}
