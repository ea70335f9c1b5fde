package render3d

import (
	"reflect"
	"testing"

	"github.com/1siamBot/pyramid-viewer/engine/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

type drawCall struct {
	mode     Primitive
	count    int
	color    geometry.RGBA
	vertices []float32
}

// recorder is a Context that records every submission.
type recorder struct {
	matrixSets int
	buf        []float32
	color      geometry.RGBA
	calls      []drawCall
}

func (r *recorder) SetMatrices(_, _ mgl64.Mat4) { r.matrixSets++ }
func (r *recorder) Upload(v []float32)          { r.buf = append(r.buf[:0], v...) }
func (r *recorder) SetColor(c geometry.RGBA)     { r.color = c }
func (r *recorder) Draw(mode Primitive, count int) {
	r.calls = append(r.calls, drawCall{
		mode:     mode,
		count:    count,
		color:    r.color,
		vertices: append([]float32(nil), r.buf...),
	})
}

func (r *recorder) byMode(mode Primitive) []drawCall {
	var out []drawCall
	for _, c := range r.calls {
		if c.mode == mode {
			out = append(out, c)
		}
	}
	return out
}

func testCamera() OrbitCamera {
	return OrbitCamera{Radius: 10, FovY: mgl64.DegToRad(30), Aspect: 4.0 / 3.0, Near: 0.1, Far: 100}
}

func TestDrawFaceSubmitsFan(t *testing.T) {
	rec := &recorder{}
	p := NewPipeline(rec)
	world := []float64{
		0, 0, 0,
		1, 0, 0,
		1, 1, 0,
		0, 1, 0,
	}
	p.DrawFace(geometry.Face{2, 3, 0, 1}, world, geometry.Magenta)

	if len(rec.calls) != 1 {
		t.Fatalf("%d draw calls, want 1", len(rec.calls))
	}
	c := rec.calls[0]
	if c.mode != TriangleFan || c.count != 4 {
		t.Errorf("draw(%v, %d), want (triangle-fan, 4)", c.mode, c.count)
	}
	if c.color != geometry.Magenta {
		t.Errorf("color = %v, want magenta", c.color)
	}
	want := []float32{1, 1, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0}
	if !reflect.DeepEqual(c.vertices, want) {
		t.Errorf("vertices = %v, want %v (declared face order)", c.vertices, want)
	}
}

func TestDrawEdgesAlwaysBlack(t *testing.T) {
	rec := &recorder{}
	p := NewPipeline(rec)
	s := geometry.Pyramid("p", [3]float64{1, 2, 3}, geometry.Yellow)
	world := WorldVertices(s.Vertices, s.Translation)

	p.DrawEdges(s.Edges, world)

	if len(rec.calls) != 8 {
		t.Fatalf("%d line submissions, want 8", len(rec.calls))
	}
	for i, c := range rec.calls {
		if c.mode != Lines || c.count != 2 {
			t.Errorf("edge %d: draw(%v, %d), want (lines, 2)", i, c.mode, c.count)
		}
		if c.color != geometry.Black {
			t.Errorf("edge %d: color %v, want black", i, c.color)
		}
		a, b := s.Edges[i][0], s.Edges[i][1]
		want := []float32{
			float32(world[3*a]), float32(world[3*a+1]), float32(world[3*a+2]),
			float32(world[3*b]), float32(world[3*b+1]), float32(world[3*b+2]),
		}
		if !reflect.DeepEqual(c.vertices, want) {
			t.Errorf("edge %d: vertices %v, want %v", i, c.vertices, want)
		}
	}
}

func TestRenderFrameOrdering(t *testing.T) {
	rec := &recorder{}
	p := NewPipeline(rec)
	scene := geometry.DefaultScene()

	stats := p.RenderFrame(testCamera(), scene)

	if rec.matrixSets != 1 {
		t.Errorf("matrices set %d times, want once per frame", rec.matrixSets)
	}
	if stats.Solids != 3 || stats.Faces != 15 || stats.Edges != 24 {
		t.Errorf("stats = %+v, want {3 15 24}", stats)
	}
	if len(rec.byMode(Lines)) != 24 || len(rec.byMode(TriangleFan)) != 15 {
		t.Fatalf("got %d lines and %d fans", len(rec.byMode(Lines)), len(rec.byMode(TriangleFan)))
	}

	// Per solid: 5 faces in its fill color, then 8 black edges.
	for si, s := range scene {
		block := rec.calls[si*13 : si*13+13]
		for i, c := range block[:5] {
			if c.mode != TriangleFan || c.color != s.Color {
				t.Errorf("solid %s call %d = %v %v, want fill", s.Name, i, c.mode, c.color)
			}
		}
		for i, c := range block[5:] {
			if c.mode != Lines || c.color != geometry.Black {
				t.Errorf("solid %s call %d = %v %v, want black edge", s.Name, i+5, c.mode, c.color)
			}
		}
	}
}

func TestRenderFrameFacesFarthestFirst(t *testing.T) {
	rec := &recorder{}
	p := NewPipeline(rec)
	cam := testCamera()
	cam.AngleX, cam.AngleY = 0.7, 0.4
	scene := []geometry.Solid{geometry.Pyramid("p", [3]float64{0, 0, -5}, geometry.Magenta)}

	p.RenderFrame(cam, scene)

	eye := cam.Eye()
	fans := rec.byMode(TriangleFan)
	depth := func(v []float32) float64 {
		var sum float64
		n := len(v) / 3
		for i := 0; i < n; i++ {
			d := mgl64.Vec3{float64(v[3*i]), float64(v[3*i+1]), float64(v[3*i+2])}.Sub(eye)
			sum += d.Len()
		}
		return sum / float64(n)
	}
	for i := 1; i < len(fans); i++ {
		// float32 upload loses a little precision.
		if depth(fans[i-1].vertices)+1e-5 < depth(fans[i].vertices) {
			t.Fatalf("fan %d nearer than fan %d", i-1, i)
		}
	}
}

func TestRenderFrameDoesNotMutateScene(t *testing.T) {
	scene := geometry.DefaultScene()
	want := geometry.DefaultScene()
	NewPipeline(&recorder{}).RenderFrame(testCamera(), scene)
	if !reflect.DeepEqual(scene, want) {
		t.Fatal("RenderFrame modified the scene")
	}
}
