package regions

import (
	"testing"

	"github.com/0x0FACED/voronoi-regions/pkg/voronoi"
)

func TestIndexRidges(t *testing.T) {
	ridges := []voronoi.Ridge{
		{Sites: [2]int{0, 1}, Vertices: [2]voronoi.VertexRef{voronoi.Finite(0), voronoi.Unbounded}},
		{Sites: [2]int{2, 0}, Vertices: [2]voronoi.VertexRef{voronoi.Finite(0), voronoi.Finite(1)}},
		{Sites: [2]int{1, 2}, Vertices: [2]voronoi.VertexRef{voronoi.Unbounded, voronoi.Finite(1)}},
	}

	adj := IndexRidges(ridges)

	want := map[int][]int{0: {1, 2}, 1: {0, 2}, 2: {0, 1}}
	for site, others := range want {
		got, ok := adj.Neighbors(site)
		if !ok {
			t.Fatalf("site %d missing", site)
		}
		if len(got) != len(others) {
			t.Fatalf("site %d: %d neighbors, want %d", site, len(got), len(others))
		}
		for k, nb := range got {
			if nb.Site != others[k] {
				t.Errorf("site %d neighbor %d = %d, want %d", site, k, nb.Site, others[k])
			}
		}
	}

	// вершины ребра не переставляются ни для одной из сторон
	n2, _ := adj.Neighbors(2)
	if n2[1].Vertices != ridges[2].Vertices {
		t.Errorf("vertices = %v, want %v", n2[1].Vertices, ridges[2].Vertices)
	}
	n1, _ := adj.Neighbors(1)
	if n1[1].Vertices != ridges[2].Vertices {
		t.Errorf("vertices = %v, want %v", n1[1].Vertices, ridges[2].Vertices)
	}
}

func TestNeighborsUnknownSite(t *testing.T) {
	adj := IndexRidges(nil)
	if got, ok := adj.Neighbors(4); ok || got != nil {
		t.Errorf("Neighbors(4) = %v, %v", got, ok)
	}
}
