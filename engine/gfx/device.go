package gfx

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/1siamBot/pyramid-viewer/engine/geometry"
	"github.com/1siamBot/pyramid-viewer/engine/render3d"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var ErrShaderCompile = errors.New("fill shader compile failed")

// fillShader paints every covered pixel with the uniform Color.
const fillShader = `//kage:unit pixels

package main

var Color vec4

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	return vec4(Color.rgb*Color.a, Color.a)
}
`

// Device implements render3d.Context on an ebiten image. Vertices are
// projected on the CPU with the bound matrices; fills go through the flat
// color shader and lines through vector.StrokeLine.
type Device struct {
	EdgeWidth float32
	AntiAlias bool

	shader   *ebiten.Shader
	target   *ebiten.Image
	screenW  int
	screenH  int
	viewProj mgl64.Mat4

	buf   []float32
	color geometry.RGBA

	// Reused across draws.
	screenPts []float32
	vertices  []ebiten.Vertex
	indices   []uint16
	uniforms  map[string]any
}

var _ render3d.Context = (*Device)(nil)

// NewDevice compiles the fill shader. A compile failure is terminal for the session.
func NewDevice(edgeWidth float64, antialias bool) (*Device, error) {
	sh, err := ebiten.NewShader([]byte(fillShader))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShaderCompile, err)
	}
	return &Device{
		EdgeWidth: float32(edgeWidth),
		AntiAlias: antialias,
		shader:    sh,
		viewProj:  mgl64.Ident4(),
		uniforms:  make(map[string]any, 1),
	}, nil
}

// Begin targets a new frame image and clears it.
func (d *Device) Begin(target *ebiten.Image, clear geometry.RGBA) {
	d.target = target
	b := target.Bounds()
	d.screenW, d.screenH = b.Dx(), b.Dy()
	target.Fill(toColor(clear))
}

func (d *Device) SetMatrices(projection, view mgl64.Mat4) {
	d.viewProj = projection.Mul4(view)
}

func (d *Device) Upload(vertices []float32) {
	d.buf = append(d.buf[:0], vertices...)
}

func (d *Device) SetColor(c geometry.RGBA) {
	d.color = c
}

func (d *Device) Draw(mode render3d.Primitive, count int) {
	if d.target == nil || count > len(d.buf)/3 {
		return
	}
	if !d.project(count) {
		return
	}
	switch mode {
	case render3d.TriangleFan:
		d.fillFan(count)
	case render3d.Lines:
		d.strokeLines(count)
	}
}

// project converts the first count buffered vertices to pixels. It reports
// false when any vertex is behind the eye; the primitive is then skipped.
func (d *Device) project(count int) bool {
	d.screenPts = d.screenPts[:0]
	for i := 0; i < count; i++ {
		p := mgl64.Vec3{float64(d.buf[3*i]), float64(d.buf[3*i+1]), float64(d.buf[3*i+2])}
		sx, sy, _, ok := render3d.ProjectToScreen(d.viewProj, p, d.screenW, d.screenH)
		if !ok {
			return false
		}
		d.screenPts = append(d.screenPts, float32(sx), float32(sy))
	}
	return true
}

func (d *Device) fillFan(count int) {
	if count < 3 {
		return
	}
	d.vertices = d.vertices[:0]
	d.indices = d.indices[:0]
	for i := 0; i < count; i++ {
		d.vertices = append(d.vertices, ebiten.Vertex{
			DstX:   d.screenPts[2*i],
			DstY:   d.screenPts[2*i+1],
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		})
	}
	for i := 1; i+1 < count; i++ {
		d.indices = append(d.indices, 0, uint16(i), uint16(i+1))
	}

	d.uniforms["Color"] = d.color.Float32()
	op := &ebiten.DrawTrianglesShaderOptions{
		Uniforms:  d.uniforms,
		AntiAlias: d.AntiAlias,
	}
	d.target.DrawTrianglesShader(d.vertices, d.indices, d.shader, op)
}

func (d *Device) strokeLines(count int) {
	clr := toColor(d.color)
	for i := 0; i+1 < count; i += 2 {
		x0, y0 := d.screenPts[2*i], d.screenPts[2*i+1]
		x1, y1 := d.screenPts[2*i+2], d.screenPts[2*i+3]
		vector.StrokeLine(d.target, x0, y0, x1, y1, d.EdgeWidth, clr, d.AntiAlias)
	}
}

func toColor(c geometry.RGBA) color.NRGBA {
	return color.NRGBA{unit8(c.R), unit8(c.G), unit8(c.B), unit8(c.A)}
}

func unit8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
