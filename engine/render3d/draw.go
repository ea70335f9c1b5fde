package render3d

import (
	"github.com/1siamBot/pyramid-viewer/engine/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// Primitive is the topology of a draw submission
type Primitive uint8

const (
	TriangleFan Primitive = iota
	Lines
)

func (p Primitive) String() string {
	switch p {
	case TriangleFan:
		return "triangle-fan"
	case Lines:
		return "lines"
	default:
		return "unknown"
	}
}

// EdgeColor is used for every wireframe edge regardless of the solid's fill.
var EdgeColor = geometry.Black

// Context is the graphics boundary the pipeline submits to. Upload replaces
// the bound vertex buffer (3 floats per vertex), SetColor binds the flat
// fill uniform and Draw rasterizes count vertices of the bound buffer.
// Implementations must not retain the uploaded slice after Draw returns.
type Context interface {
	SetMatrices(projection, view mgl64.Mat4)
	Upload(vertices []float32)
	SetColor(c geometry.RGBA)
	Draw(mode Primitive, count int)
}

// appendVertex appends world vertex idx to buf as float32 xyz.
func appendVertex(buf []float32, world []float64, idx int) []float32 {
	return append(buf, float32(world[3*idx]), float32(world[3*idx+1]), float32(world[3*idx+2]))
}

// DrawFace submits face as a flat-colored triangle fan, vertices in declared order.
func (p *Pipeline) DrawFace(face geometry.Face, world []float64, c geometry.RGBA) {
	buf := p.scratch[:0]
	for _, idx := range face {
		buf = appendVertex(buf, world, idx)
	}
	p.scratch = buf

	p.ctx.Upload(buf)
	p.ctx.SetColor(c)
	p.ctx.Draw(TriangleFan, len(face))
}

// DrawEdges submits every edge as a 2-point line in EdgeColor.
func (p *Pipeline) DrawEdges(edges []geometry.Edge, world []float64) {
	for _, e := range edges {
		buf := p.scratch[:0]
		buf = appendVertex(buf, world, e[0])
		buf = appendVertex(buf, world, e[1])
		p.scratch = buf

		p.ctx.Upload(buf)
		p.ctx.SetColor(EdgeColor)
		p.ctx.Draw(Lines, 2)
	}
}
