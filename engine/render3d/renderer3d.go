package render3d

import "github.com/1siamBot/pyramid-viewer/engine/geometry"

// Pipeline runs Transform -> Depth-Sort -> Draw for a scene each frame
type Pipeline struct {
	ctx Context

	// scratch is reused for every upload; Context does not retain it.
	scratch []float32
}

// FrameStats counts what one RenderFrame submitted
type FrameStats struct {
	Solids int
	Faces  int
	Edges  int
}

// NewPipeline creates a pipeline submitting to ctx
func NewPipeline(ctx Context) *Pipeline {
	return &Pipeline{
		ctx:     ctx,
		scratch: make([]float32, 0, 16*3),
	}
}

// RenderFrame draws every solid from the camera's point of view. Faces are
// sorted per solid only; solids are drawn in scene order, so overlap between
// different solids is not resolved.
func (p *Pipeline) RenderFrame(cam OrbitCamera, solids []geometry.Solid) FrameStats {
	var stats FrameStats
	eye := cam.Eye()
	p.ctx.SetMatrices(cam.Projection(), cam.View())

	for i := range solids {
		s := &solids[i]
		world := WorldVertices(s.Vertices, s.Translation)

		for _, f := range SortFaces(s.Faces, world, eye) {
			p.DrawFace(f, world, s.Color)
			stats.Faces++
		}

		// Edges go after all faces so the wireframe stays on top.
		p.DrawEdges(s.Edges, world)
		stats.Edges += len(s.Edges)
		stats.Solids++
	}
	return stats
}
