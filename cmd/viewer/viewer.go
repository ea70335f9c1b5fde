package main

import (
	"fmt"
	"image"
	"log"
	"time"

	"github.com/1siamBot/pyramid-viewer/engine/config"
	"github.com/1siamBot/pyramid-viewer/engine/geometry"
	"github.com/1siamBot/pyramid-viewer/engine/gfx"
	"github.com/1siamBot/pyramid-viewer/engine/input"
	"github.com/1siamBot/pyramid-viewer/engine/orbit"
	"github.com/1siamBot/pyramid-viewer/engine/render3d"
	"github.com/1siamBot/pyramid-viewer/engine/screenshot"
	"github.com/1siamBot/pyramid-viewer/engine/ui"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Viewer implements ebiten.Game. Update turns input into orbit events and
// applies them; Draw renders one frame from the resulting state. Ebiten runs
// both on the same goroutine, so state is never read mid-mutation.
type Viewer struct {
	cfg config.Config
	log *log.Logger

	scene    []geometry.Solid
	ctrl     *orbit.Controller
	bus      *orbit.Bus
	input    *input.InputState
	device   *gfx.Device
	pipeline *render3d.Pipeline

	zoom *ui.Slider
	hud  *ui.HUD

	screenW, screenH int
	stats            render3d.FrameStats
	wantShot         bool
}

// NewViewer builds the scene and graphics resources. Any error here is an
// initialization failure and the viewer must not start.
func NewViewer(cfg config.Config, logger *log.Logger) (*Viewer, error) {
	scene := geometry.DefaultScene()
	if err := geometry.ValidateScene(scene); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	device, err := gfx.NewDevice(cfg.Render.EdgeWidth, cfg.Render.AntiAlias)
	if err != nil {
		return nil, err
	}

	v := &Viewer{
		cfg:      cfg,
		log:      logger,
		scene:    scene,
		bus:      orbit.NewBus(),
		input:    input.NewInputState(cfg.Window.Width, cfg.Window.Height),
		device:   device,
		pipeline: render3d.NewPipeline(device),
		hud:      ui.NewHUD(),
	}

	v.ctrl = orbit.NewController(
		orbit.State{Radius: cfg.Camera.Radius},
		cfg.Camera.Sensitivity,
		cfg.Camera.MinRadius,
	)
	v.ctrl.Subscribe(v.bus)

	v.zoom = &ui.Slider{
		Label: "Zoom",
		W:     240,
		H:     24,
		Min:   cfg.Zoom.Min,
		Max:   cfg.Zoom.Max,
		Value: v.ctrl.State().Radius,
		OnChange: func(r float64) {
			v.bus.Emit(orbit.Event{Type: orbit.EvtZoom, Value: r})
		},
	}
	v.layout(cfg.Window.Width, cfg.Window.Height)

	logger.Printf("scene ready: %d solids", len(scene))
	return v, nil
}

func (v *Viewer) Update() error {
	in := v.input
	in.Update()

	v.zoom.Update(in.MouseX, in.MouseY, in.LeftPressed, in.LeftJustPressed)
	if in.ScrollY != 0 {
		v.zoom.Set(v.zoom.Value - in.ScrollY*v.cfg.Zoom.WheelStep)
	}
	in.EmitPointer(v.bus, v.zoom.Contains)

	if in.IsKeyJustPressed(ebiten.KeyR) {
		v.bus.Emit(orbit.Event{Type: orbit.EvtReset})
	}
	if in.IsKeyJustPressed(ebiten.KeyH) {
		v.hud.Visible = !v.hud.Visible
	}
	if in.IsKeyJustPressed(ebiten.KeyP) {
		v.wantShot = true
	}

	v.bus.Dispatch()

	// Keep the knob on the applied radius (reset, min-radius clamp).
	v.zoom.Value = v.ctrl.State().Radius
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	s := v.ctrl.State()
	cam := render3d.OrbitCamera{
		AngleX: s.AngleX,
		AngleY: s.AngleY,
		Radius: s.Radius,
		FovY:   mgl64.DegToRad(v.cfg.Camera.FovDegrees),
		Aspect: float64(v.screenW) / float64(v.screenH),
		Near:   v.cfg.Camera.Near,
		Far:    v.cfg.Camera.Far,
	}

	cc := v.cfg.Render.ClearColor
	v.device.Begin(screen, geometry.RGBA{R: cc[0], G: cc[1], B: cc[2], A: cc[3]})
	v.stats = v.pipeline.RenderFrame(cam, v.scene)

	// Captured before overlays so the image holds only the scene.
	if v.wantShot {
		v.wantShot = false
		v.saveScreenshot(screen)
	}

	v.zoom.Draw(screen)
	v.hud.Draw(screen, s, v.stats, v.ctrl.Dragging())
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != v.screenW || outsideHeight != v.screenH {
		v.layout(outsideWidth, outsideHeight)
	}
	return v.screenW, v.screenH
}

func (v *Viewer) layout(w, h int) {
	v.screenW, v.screenH = max(w, 1), max(h, 1)
	v.input.ScreenW, v.input.ScreenH = v.screenW, v.screenH
	v.zoom.X = 20
	v.zoom.Y = v.screenH - 44
}

func (v *Viewer) saveScreenshot(screen *ebiten.Image) {
	b := screen.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)

	path, err := screenshot.Save(v.cfg.Screenshot.Dir, img, v.cfg.Screenshot.Scale, time.Now())
	if err != nil {
		v.log.Printf("screenshot: %v", err)
		return
	}
	v.log.Printf("screenshot saved to %s", path)
}
