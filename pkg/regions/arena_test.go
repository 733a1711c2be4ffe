package regions

import (
	"testing"

	"github.com/0x0FACED/voronoi-regions/pkg/voronoi"
)

func TestArena(t *testing.T) {
	finite := []voronoi.Vertex{{X: 1, Y: 2}, {X: 3, Y: 4}}
	a := NewArena(finite)

	finite[0] = voronoi.Vertex{X: 99, Y: 99}
	if p, _ := a.At(0); p != (voronoi.Vertex{X: 1, Y: 2}) {
		t.Errorf("arena shares storage with its seed: %v", p)
	}

	if i := a.Append(voronoi.Vertex{X: 5, Y: 6}); i != 2 {
		t.Errorf("Append() = %d, want 2", i)
	}
	if i := a.Append(voronoi.Vertex{X: 5, Y: 6}); i != 3 {
		t.Errorf("Append() of an equal point = %d, want 3", i)
	}

	if a.Len() != 4 || a.Finite() != 2 {
		t.Errorf("Len() = %d, Finite() = %d", a.Len(), a.Finite())
	}
	for i, want := range []bool{false, false, true, true, false} {
		if got := a.Synthetic(i); got != want {
			t.Errorf("Synthetic(%d) = %v, want %v", i, got, want)
		}
	}
	for i, want := range []bool{true, true, false, false, false} {
		if got := a.Seeded(i); got != want {
			t.Errorf("Seeded(%d) = %v, want %v", i, got, want)
		}
	}
	if a.Seeded(-1) {
		t.Error("Seeded(-1) = true")
	}
	if _, ok := a.At(4); ok {
		t.Error("At(4) should be out of range")
	}
	if _, ok := a.At(-1); ok {
		t.Error("At(-1) should be out of range")
	}

	out := a.Vertices()
	out[2] = voronoi.Vertex{}
	if p, _ := a.At(2); p != (voronoi.Vertex{X: 5, Y: 6}) {
		t.Errorf("Vertices() returned the live buffer")
	}
}
