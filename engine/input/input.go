package input

import (
	"github.com/1siamBot/pyramid-viewer/engine/orbit"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState tracks mouse state per tick and turns it into orbit events
type InputState struct {
	// Mouse
	MouseX, MouseY   int
	MouseDX, MouseDY int // delta since last tick
	prevMouseX       int
	prevMouseY       int
	LeftPressed      bool
	LeftJustPressed  bool
	LeftJustReleased bool
	ScrollY          float64

	// Inside is true while the cursor is within the ScreenW x ScreenH viewport.
	Inside    bool
	wasInside bool
	ScreenW   int
	ScreenH   int
}

func NewInputState(screenW, screenH int) *InputState {
	return &InputState{ScreenW: screenW, ScreenH: screenH}
}

// Update should be called every tick
func (s *InputState) Update() {
	s.prevMouseX = s.MouseX
	s.prevMouseY = s.MouseY
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.MouseDX = s.MouseX - s.prevMouseX
	s.MouseDY = s.MouseY - s.prevMouseY

	s.LeftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.LeftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	_, s.ScrollY = ebiten.Wheel()

	s.wasInside = s.Inside
	s.Inside = s.MouseX >= 0 && s.MouseY >= 0 && s.MouseX < s.ScreenW && s.MouseY < s.ScreenH
}

// EmitPointer queues this tick's pointer transitions on bus. A press for
// which captured returns true belongs to another widget and starts no drag.
func (s *InputState) EmitPointer(bus *orbit.Bus, captured func(x, y int) bool) {
	x, y := float64(s.MouseX), float64(s.MouseY)

	if s.wasInside && !s.Inside {
		bus.Emit(orbit.Event{Type: orbit.EvtPointerLeave, X: x, Y: y})
		return
	}
	if s.LeftJustPressed && s.Inside && (captured == nil || !captured(s.MouseX, s.MouseY)) {
		bus.Emit(orbit.Event{Type: orbit.EvtPointerDown, X: x, Y: y})
	}
	if s.LeftPressed && (s.MouseDX != 0 || s.MouseDY != 0) {
		bus.Emit(orbit.Event{Type: orbit.EvtPointerMove, X: x, Y: y})
	}
	if s.LeftJustReleased {
		bus.Emit(orbit.Event{Type: orbit.EvtPointerUp, X: x, Y: y})
	}
}

// IsKeyJustPressed returns true if key was just pressed this tick
func (s *InputState) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
