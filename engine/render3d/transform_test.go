package render3d

import (
	"testing"

	"github.com/1siamBot/pyramid-viewer/engine/geometry"
)

func TestWorldVertices(t *testing.T) {
	p := geometry.Pyramid("p", [3]float64{-3, 0.5, 7}, geometry.Cyan)
	orig := append([]float64(nil), p.Vertices...)

	world := WorldVertices(p.Vertices, p.Translation)
	if len(world) != len(p.Vertices) {
		t.Fatalf("len = %d, want %d", len(world), len(p.Vertices))
	}
	for k := 0; k < p.VertexCount(); k++ {
		for j := 0; j < 3; j++ {
			if got, want := world[3*k+j], p.Vertices[3*k+j]+p.Translation[j]; got != want {
				t.Errorf("vertex %d axis %d = %v, want %v", k, j, got, want)
			}
		}
	}
	for i := range orig {
		if p.Vertices[i] != orig[i] {
			t.Fatal("WorldVertices modified its input")
		}
	}
}

func TestWorldVerticesZeroTranslation(t *testing.T) {
	local := []float64{1, 2, 3, 4, 5, 6}
	world := WorldVertices(local, [3]float64{})
	for i := range local {
		if world[i] != local[i] {
			t.Fatalf("world[%d] = %v, want %v", i, world[i], local[i])
		}
	}
	world[0] = 99
	if local[0] == 99 {
		t.Fatal("output aliases input")
	}
}
