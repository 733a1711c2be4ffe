package regions

import (
	"math"
	"testing"

	"github.com/0x0FACED/voronoi-regions/pkg/voronoi"
)

func TestCellArea(t *testing.T) {
	ccw := Cell{Polygon: []voronoi.Vertex{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 0, Y: 3}}}
	if got := ccw.SignedArea(); got != 12 {
		t.Errorf("SignedArea() = %v, want 12", got)
	}
	if !ccw.IsCounterClockwise() {
		t.Error("IsCounterClockwise() = false")
	}

	cw := Cell{Polygon: []voronoi.Vertex{{X: 0, Y: 3}, {X: 4, Y: 3}, {X: 4, Y: 0}, {X: 0, Y: 0}}}
	if got := cw.SignedArea(); got != -12 {
		t.Errorf("SignedArea() = %v, want -12", got)
	}
	if cw.Area() != 12 || cw.IsCounterClockwise() {
		t.Errorf("Area() = %v, IsCounterClockwise() = %v", cw.Area(), cw.IsCounterClockwise())
	}

	if (Cell{Polygon: []voronoi.Vertex{{X: 0, Y: 0}, {X: 1, Y: 1}}}).Area() != 0 {
		t.Error("degenerate polygon should have zero area")
	}
}

func TestCellContains(t *testing.T) {
	c := Cell{Polygon: []voronoi.Vertex{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}}}

	tests := []struct {
		p    voronoi.Vertex
		want bool
	}{
		{voronoi.Vertex{X: 5, Y: 1}, true},
		{voronoi.Vertex{X: 5, Y: 7.9}, true},
		{voronoi.Vertex{X: 1, Y: 5}, false},
		{voronoi.Vertex{X: 5, Y: -0.1}, false},
		{voronoi.Vertex{X: 11, Y: 0.5}, false},
		{voronoi.Vertex{X: math.Inf(-1), Y: 1}, false},
	}

	for _, tt := range tests {
		if got := c.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
