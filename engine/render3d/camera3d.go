package render3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// EyePosition places the camera on a sphere of the given radius around the
// origin. angleX is the azimuth, angleY the elevation. Callers keep angleY
// inside [-pi/2, pi/2]; at exactly the pole the eye is parallel to Up.
func EyePosition(angleX, angleY, radius float64) mgl64.Vec3 {
	return mgl64.Vec3{
		radius * math.Sin(angleX) * math.Cos(angleY),
		radius * math.Sin(angleY),
		radius * math.Cos(angleX) * math.Cos(angleY),
	}
}

// OrbitCamera is a perspective camera orbiting the origin
type OrbitCamera struct {
	AngleX, AngleY float64
	Radius         float64

	FovY   float64 // radians
	Aspect float64
	Near   float64
	Far    float64
}

// Eye returns the Cartesian eye position for the current orbit angles.
func (c OrbitCamera) Eye() mgl64.Vec3 {
	return EyePosition(c.AngleX, c.AngleY, c.Radius)
}

// View looks from the eye toward the origin.
func (c OrbitCamera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye(), Origin, Up)
}

// Projection returns the perspective matrix.
func (c OrbitCamera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}

// ViewProj returns Projection * View.
func (c OrbitCamera) ViewProj() mgl64.Mat4 {
	return c.Projection().Mul4(c.View())
}
