package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/1siamBot/pyramid-viewer/engine/orbit"
	"github.com/1siamBot/pyramid-viewer/engine/render3d"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD is the top-left text overlay
type HUD struct {
	Visible bool
	Width   int
	Height  int
}

func NewHUD() *HUD {
	return &HUD{Visible: true, Width: 380, Height: 70}
}

// Draw renders orbit state and the last frame's submission counts.
func (h *HUD) Draw(screen *ebiten.Image, s orbit.State, stats render3d.FrameStats, dragging bool) {
	if !h.Visible {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(h.Width), float32(h.Height), color.RGBA{0, 0, 0, 150}, false)

	mode := "idle"
	if dragging {
		mode = "dragging"
	}
	info := fmt.Sprintf(
		"FPS: %.0f | %s\n"+
			"Azimuth: %.1f deg | Elevation: %.1f deg | Radius: %.2f\n"+
			"Faces: %d | Edges: %d\n"+
			"[Drag] Orbit [Wheel] Zoom [R] Reset [P] Screenshot [H] HUD",
		ebiten.ActualFPS(), mode,
		s.AngleX*180/math.Pi, s.AngleY*180/math.Pi, s.Radius,
		stats.Faces, stats.Edges,
	)
	ebitenutil.DebugPrint(screen, info)
}
