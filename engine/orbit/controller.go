package orbit

import "math"

// MaxElevation bounds the vertical angle in both directions.
const MaxElevation = math.Pi / 2

// State is the orbit camera state read once per frame
type State struct {
	AngleX float64 // azimuth
	AngleY float64 // elevation, always within [-MaxElevation, MaxElevation]
	Radius float64
}

// ClampElevation limits a vertical angle to [-pi/2, pi/2] inclusive.
func ClampElevation(a float64) float64 {
	return math.Max(-MaxElevation, math.Min(MaxElevation, a))
}

// Controller maps pointer drags and zoom input onto orbit State.
// It is idle until PointerDown and dragging until PointerUp/PointerLeave.
type Controller struct {
	Sensitivity float64 // radians per pixel
	MinRadius   float64

	state   State
	initial State

	dragging     bool
	lastX, lastY float64
}

// NewController creates a controller starting at initial.
func NewController(initial State, sensitivity, minRadius float64) *Controller {
	c := &Controller{
		Sensitivity: sensitivity,
		MinRadius:   minRadius,
	}
	initial.AngleY = ClampElevation(initial.AngleY)
	initial.Radius = c.clampRadius(initial.Radius)
	c.initial = initial
	c.state = initial
	return c
}

func (c *Controller) State() State   { return c.state }
func (c *Controller) Dragging() bool { return c.dragging }

// PointerDown starts a drag at (x, y).
func (c *Controller) PointerDown(x, y float64) {
	c.dragging = true
	c.lastX, c.lastY = x, y
}

// PointerMove accumulates the delta from the last tracked position while dragging.
func (c *Controller) PointerMove(x, y float64) {
	if !c.dragging {
		return
	}
	dx := x - c.lastX
	dy := y - c.lastY

	c.state.AngleX += dx * c.Sensitivity
	c.state.AngleY = ClampElevation(c.state.AngleY + dy*c.Sensitivity)

	c.lastX, c.lastY = x, y
}

func (c *Controller) PointerUp()    { c.dragging = false }
func (c *Controller) PointerLeave() { c.dragging = false }

// SetRadius applies a zoom value. Values below MinRadius are raised to it
// so the eye never reaches or passes through the origin.
func (c *Controller) SetRadius(r float64) {
	c.state.Radius = c.clampRadius(r)
}

// Reset restores the initial state and ends any drag.
func (c *Controller) Reset() {
	c.state = c.initial
	c.dragging = false
}

func (c *Controller) clampRadius(r float64) float64 {
	if math.IsNaN(r) || r < c.MinRadius {
		return c.MinRadius
	}
	return r
}
