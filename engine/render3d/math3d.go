package render3d

import "github.com/go-gl/mathgl/mgl64"

var (
	// Up is the fixed camera up-vector; no roll is supported.
	Up = mgl64.Vec3{0, 1, 0}
	// Origin is the orbit look-at point.
	Origin = mgl64.Vec3{}
)

// VertexAt reads vertex i of a flat vertex list.
func VertexAt(vertices []float64, i int) mgl64.Vec3 {
	return mgl64.Vec3{vertices[3*i], vertices[3*i+1], vertices[3*i+2]}
}

// ProjectToScreen converts a world point to pixel coordinates (Y down).
// ok is false when the point lies at or behind the eye plane (clip w <= 0),
// where the perspective divide would fold it back onto the screen.
func ProjectToScreen(viewProj mgl64.Mat4, p mgl64.Vec3, screenW, screenH int) (sx, sy, depth float64, ok bool) {
	clip := viewProj.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 0 {
		return 0, 0, 0, false
	}
	ndcX, ndcY, ndcZ := clip.X()/w, clip.Y()/w, clip.Z()/w
	sx = (ndcX*0.5 + 0.5) * float64(screenW)
	sy = (1 - (ndcY*0.5 + 0.5)) * float64(screenH)
	return sx, sy, ndcZ, true
}
