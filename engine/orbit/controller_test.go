package orbit

import (
	"math"
	"math/rand"
	"testing"
)

func newTestController() *Controller {
	return NewController(State{Radius: 10}, 0.01, 0.1)
}

func TestDragAccumulatesAngles(t *testing.T) {
	c := newTestController()
	c.PointerDown(200, 300)
	c.PointerMove(300, 300)

	s := c.State()
	if s.AngleX != 1.0 {
		t.Errorf("AngleX = %v, want exactly 1.0", s.AngleX)
	}
	if s.AngleY != 0 {
		t.Errorf("AngleY = %v, want 0", s.AngleY)
	}

	// Deltas are relative to the last move, not the drag start.
	c.PointerMove(300, 350)
	if got := c.State().AngleY; math.Abs(got-0.5) > 1e-12 {
		t.Errorf("AngleY = %v, want 0.5", got)
	}
}

func TestMoveWhileIdleIgnored(t *testing.T) {
	c := newTestController()
	c.PointerMove(500, 500)
	if s := c.State(); s.AngleX != 0 || s.AngleY != 0 {
		t.Fatalf("idle move changed state: %+v", s)
	}

	c.PointerDown(0, 0)
	c.PointerUp()
	c.PointerMove(100, 100)
	if s := c.State(); s.AngleX != 0 || s.AngleY != 0 {
		t.Fatalf("move after release changed state: %+v", s)
	}

	c.PointerDown(0, 0)
	c.PointerLeave()
	if c.Dragging() {
		t.Fatal("still dragging after pointer leave")
	}
}

func TestElevationClamp(t *testing.T) {
	tests := []struct {
		name string
		dy   float64
		want float64
	}{
		{"far down", 10000, MaxElevation},
		{"far up", -10000, -MaxElevation},
		{"inside", 50, 0.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestController()
			c.PointerDown(0, 0)
			c.PointerMove(0, tc.dy)
			if got := c.State().AngleY; math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("AngleY = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestElevationStaysClampedUnderRandomDrags(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	c := newTestController()
	c.PointerDown(0, 0)
	x, y := 0.0, 0.0
	for i := 0; i < 2000; i++ {
		x += (rng.Float64() - 0.5) * 400
		y += (rng.Float64() - 0.5) * 400
		c.PointerMove(x, y)
		if a := c.State().AngleY; a < -MaxElevation || a > MaxElevation {
			t.Fatalf("step %d: AngleY = %v out of range", i, a)
		}
	}
}

func TestSetRadius(t *testing.T) {
	c := newTestController()
	c.SetRadius(25)
	if got := c.State().Radius; got != 25 {
		t.Errorf("Radius = %v, want 25", got)
	}
	for _, r := range []float64{0, -3, math.NaN()} {
		c.SetRadius(r)
		if got := c.State().Radius; got != 0.1 {
			t.Errorf("SetRadius(%v) -> %v, want min radius 0.1", r, got)
		}
	}
}

func TestReset(t *testing.T) {
	c := NewController(State{AngleX: 0.2, AngleY: 3, Radius: 12}, 0.01, 0.1)
	if got := c.State().AngleY; got != MaxElevation {
		t.Fatalf("initial AngleY = %v, want clamped to %v", got, MaxElevation)
	}
	c.PointerDown(0, 0)
	c.PointerMove(80, -40)
	c.SetRadius(40)
	c.Reset()

	want := State{AngleX: 0.2, AngleY: MaxElevation, Radius: 12}
	if c.State() != want {
		t.Errorf("after Reset: %+v, want %+v", c.State(), want)
	}
	if c.Dragging() {
		t.Error("Reset left the controller dragging")
	}
}
