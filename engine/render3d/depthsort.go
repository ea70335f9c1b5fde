package render3d

import (
	"sort"

	"github.com/1siamBot/pyramid-viewer/engine/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// MeanDepth is the average Euclidean distance from eye to each vertex of face.
func MeanDepth(face geometry.Face, world []float64, eye mgl64.Vec3) float64 {
	if len(face) == 0 {
		return 0
	}
	var sum float64
	for _, idx := range face {
		sum += VertexAt(world, idx).Sub(eye).Len()
	}
	return sum / float64(len(face))
}

// SortFaces returns faces ordered farthest-first by MeanDepth (Painter's
// Algorithm). Equal depths keep their input order. The input is not modified.
func SortFaces(faces []geometry.Face, world []float64, eye mgl64.Vec3) []geometry.Face {
	type faceDepth struct {
		face  geometry.Face
		depth float64
	}
	keyed := make([]faceDepth, len(faces))
	for i, f := range faces {
		keyed[i] = faceDepth{face: f, depth: MeanDepth(f, world, eye)}
	}

	sort.SliceStable(keyed, func(i, j int) bool {
		return keyed[i].depth > keyed[j].depth
	})

	out := make([]geometry.Face, len(keyed))
	for i, k := range keyed {
		out[i] = k.face
	}
	return out
}
