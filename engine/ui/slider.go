package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	sliderTrack  = color.RGBA{30, 35, 50, 240}
	sliderAccent = color.RGBA{0, 200, 255, 255}
	sliderRim    = color.RGBA{255, 255, 255, 100}
)

// Slider is a horizontal range control. OnChange fires with the new value
// whenever a press or drag moves the knob.
type Slider struct {
	Label    string
	X, Y     int
	W, H     int
	Min, Max float64
	Value    float64
	OnChange func(v float64)

	grabbed bool
}

// Contains reports whether (mx, my) is over the slider's track area.
func (s *Slider) Contains(mx, my int) bool {
	return mx >= s.X && mx < s.X+s.W && my >= s.Y && my < s.Y+s.H
}

// Grabbed is true while a press that started on the slider is held.
func (s *Slider) Grabbed() bool { return s.grabbed }

// ValueAt maps a pixel column to a value in [Min, Max].
func (s *Slider) ValueAt(mx int) float64 {
	t := float64(mx-s.X) / float64(s.W)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return s.Min + t*(s.Max-s.Min)
}

// Set moves the knob to v (clamped) and fires OnChange.
func (s *Slider) Set(v float64) {
	if v < s.Min {
		v = s.Min
	}
	if v > s.Max {
		v = s.Max
	}
	s.Value = v
	if s.OnChange != nil {
		s.OnChange(v)
	}
}

// Update handles a tick of mouse state.
func (s *Slider) Update(mx, my int, pressed, justPressed bool) {
	if justPressed && s.Contains(mx, my) {
		s.grabbed = true
	}
	if !pressed {
		s.grabbed = false
		return
	}
	if s.grabbed {
		s.Set(s.ValueAt(mx))
	}
}

func (s *Slider) Draw(screen *ebiten.Image) {
	trackY := float32(s.Y + s.H/2 - 2)
	vector.DrawFilledRect(screen, float32(s.X), trackY, float32(s.W), 4, sliderTrack, false)

	t := (s.Value - s.Min) / (s.Max - s.Min)
	fillW := float32(float64(s.W) * t)
	vector.DrawFilledRect(screen, float32(s.X), trackY, fillW, 4, sliderAccent, false)

	knobX := float32(s.X) + fillW
	vector.DrawFilledCircle(screen, knobX, float32(s.Y+s.H/2), 8, sliderAccent, true)
	vector.StrokeCircle(screen, knobX, float32(s.Y+s.H/2), 8, 1.5, sliderRim, true)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %.1f", s.Label, s.Value), s.X+s.W+12, s.Y+s.H/2-8)
}
