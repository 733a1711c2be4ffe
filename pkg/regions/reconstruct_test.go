package regions

import (
	"math"
	"reflect"
	"testing"

	apperrors "github.com/0x0FACED/voronoi-regions/pkg/errors"
	"github.com/0x0FACED/voronoi-regions/pkg/voronoi"
)

func isInvariant(err error) bool {
	return apperrors.Is(err, apperrors.ErrCodeInvariantViolation)
}

func near(a, b voronoi.Vertex, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

var square = []voronoi.Vertex{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}}

func TestSpread(t *testing.T) {
	tests := []struct {
		name  string
		sites []voronoi.Vertex
		want  float64
	}{
		{"empty", nil, 0},
		{"square", square, 10},
		{"wide", []voronoi.Vertex{{X: -3, Y: 0}, {X: 5, Y: 1}, {X: 0, Y: 2}}, 8},
		{"tall", []voronoi.Vertex{{X: 0, Y: -7}, {X: 1, Y: 5}, {X: 2, Y: 0}}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Spread(tt.sites); got != tt.want {
				t.Errorf("Spread() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewScene(t *testing.T) {
	scene := NewScene(square)
	if scene.Centroid != (voronoi.Vertex{X: 5, Y: 5}) {
		t.Errorf("Centroid = %v", scene.Centroid)
	}
	if scene.Radius != 100 {
		t.Errorf("Radius = %v, want 100", scene.Radius)
	}
}

func TestReconstructBounded(t *testing.T) {
	arena := NewArena([]voronoi.Vertex{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
	region := []voronoi.VertexRef{voronoi.Finite(2), voronoi.Finite(0), voronoi.Finite(1)}

	got, err := Reconstruct(0, region, nil, arena, NewScene(square))
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	if want := []int{2, 0, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if arena.Len() != 3 {
		t.Errorf("bounded region appended %d vertices", arena.Len()-3)
	}
}

func TestReconstructSquareCorner(t *testing.T) {
	ridges := []voronoi.Ridge{
		{Sites: [2]int{0, 1}, Vertices: [2]voronoi.VertexRef{voronoi.Finite(0), voronoi.Unbounded}},
		{Sites: [2]int{2, 0}, Vertices: [2]voronoi.VertexRef{voronoi.Unbounded, voronoi.Finite(0)}},
		{Sites: [2]int{1, 3}, Vertices: [2]voronoi.VertexRef{voronoi.Finite(0), voronoi.Unbounded}},
	}
	adj := IndexRidges(ridges)
	arena := NewArena([]voronoi.Vertex{{X: 5, Y: 5}})
	neighbors, _ := adj.Neighbors(0)

	got, err := Reconstruct(0, []voronoi.VertexRef{voronoi.Finite(0), voronoi.Unbounded}, neighbors, arena, NewScene(square))
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// вниз от ребра 0|1 и влево от ребра 0|2
	for i, want := range map[int]voronoi.Vertex{1: {X: 5, Y: -95}, 2: {X: -95, Y: 5}} {
		p, _ := arena.At(i)
		if !near(p, want, 1e-9) {
			t.Errorf("far point %d = %v, want %v", i, p, want)
		}
	}
}

func TestFarPointZeroDot(t *testing.T) {
	// середина ребра совпадает с центроидом: знак считается положительным
	scene := Scene{
		Sites:    []voronoi.Vertex{{X: 0, Y: 0}, {X: 2, Y: 0}},
		Centroid: voronoi.Vertex{X: 1, Y: 0},
		Radius:   10,
	}

	if got := farPoint(scene, 0, 1, voronoi.Vertex{X: 1, Y: 0}); !near(got, voronoi.Vertex{X: 1, Y: 10}, 1e-12) {
		t.Errorf("farPoint(0, 1) = %v", got)
	}
	if got := farPoint(scene, 1, 0, voronoi.Vertex{X: 1, Y: 0}); !near(got, voronoi.Vertex{X: 1, Y: -10}, 1e-12) {
		t.Errorf("farPoint(1, 0) = %v", got)
	}
	if outward(0) != 1 || outward(math.Copysign(0, -1)) != 1 || outward(-1e-300) != -1 {
		t.Error("outward sign")
	}
}

func TestReconstructInvariants(t *testing.T) {
	open := []voronoi.VertexRef{voronoi.Finite(0), voronoi.Unbounded}
	scene := NewScene(square)

	tests := []struct {
		name      string
		site      int
		region    []voronoi.VertexRef
		neighbors []Neighbor
	}{
		{
			name:   "vertex outside arena",
			region: []voronoi.VertexRef{voronoi.Finite(0), voronoi.Finite(4), voronoi.Finite(1)},
		},
		{
			name:   "no ridges",
			region: open,
		},
		{
			name:   "unknown site",
			site:   9,
			region: open,
			neighbors: []Neighbor{
				{Site: 1, Vertices: [2]voronoi.VertexRef{voronoi.Finite(0), voronoi.Unbounded}},
			},
		},
		{
			name:   "both ends unbounded",
			region: open,
			neighbors: []Neighbor{
				{Site: 1, Vertices: [2]voronoi.VertexRef{voronoi.Unbounded, voronoi.Unbounded}},
			},
		},
		{
			name:   "neighbor outside sites",
			region: open,
			neighbors: []Neighbor{
				{Site: 12, Vertices: [2]voronoi.VertexRef{voronoi.Finite(0), voronoi.Unbounded}},
			},
		},
		{
			name:   "too few vertices",
			region: open,
			neighbors: []Neighbor{
				{Site: 1, Vertices: [2]voronoi.VertexRef{voronoi.Finite(0), voronoi.Unbounded}},
				{Site: 2, Vertices: [2]voronoi.VertexRef{voronoi.Finite(0), voronoi.Finite(1)}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arena := NewArena([]voronoi.Vertex{{X: 5, Y: 5}, {X: 5, Y: 20}})
			_, err := Reconstruct(tt.site, tt.region, tt.neighbors, arena, scene)
			if !isInvariant(err) {
				t.Errorf("Reconstruct() error = %v, want %s", err, apperrors.ErrCodeInvariantViolation)
			}
		})
	}
}

func TestReconstructRejectsFarPointRefs(t *testing.T) {
	scene := NewScene(square)
	open := func(i int) [2]voronoi.VertexRef {
		return [2]voronoi.VertexRef{voronoi.Finite(i), voronoi.Unbounded}
	}

	tests := []struct {
		name      string
		region    []voronoi.VertexRef
		neighbors []Neighbor
	}{
		{
			name:   "region",
			region: []voronoi.VertexRef{voronoi.Finite(1), voronoi.Unbounded},
			neighbors: []Neighbor{
				{Site: 0, Vertices: open(0)},
				{Site: 3, Vertices: open(0)},
			},
		},
		{
			name:   "ridge",
			region: []voronoi.VertexRef{voronoi.Finite(0), voronoi.Unbounded},
			neighbors: []Neighbor{
				{Site: 0, Vertices: open(0)},
				{Site: 3, Vertices: open(2)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arena := NewArena([]voronoi.Vertex{{X: 5, Y: 5}})
			// дальние точки предыдущего сайта
			arena.Append(voronoi.Vertex{X: 5, Y: -95})
			arena.Append(voronoi.Vertex{X: -95, Y: 5})

			got, err := Reconstruct(1, tt.region, tt.neighbors, arena, scene)
			if !isInvariant(err) {
				t.Fatalf("Reconstruct() = %v, %v, want %s", got, err, apperrors.ErrCodeInvariantViolation)
			}
			if site, ok := apperrors.SiteOf(err); !ok || site != 1 {
				t.Errorf("SiteOf() = %d, %v, want site 1", site, ok)
			}
			if arena.Len() > 4 {
				t.Errorf("arena grew to %d", arena.Len())
			}
		})
	}
}
