package regions

import "github.com/0x0FACED/voronoi-regions/pkg/voronoi"

// Arena is the append-only vertex buffer shared by all cells of one call.
// The first Finite() entries are the diagram's own vertices; anything after
// them was synthesised. Indices never change once handed out.
type Arena struct {
	vertices []voronoi.Vertex
	finite   int
}

// NewArena seeds an arena with a copy of the finite vertices.
func NewArena(finite []voronoi.Vertex) *Arena {
	vertices := make([]voronoi.Vertex, len(finite), len(finite)+2*len(finite)+8)
	copy(vertices, finite)
	return &Arena{vertices: vertices, finite: len(finite)}
}

// Append stores p and returns its index.
func (a *Arena) Append(p voronoi.Vertex) int {
	a.vertices = append(a.vertices, p)
	return len(a.vertices) - 1
}

// At returns vertex i; ok is false when i is out of range.
func (a *Arena) At(i int) (p voronoi.Vertex, ok bool) {
	if i < 0 || i >= len(a.vertices) {
		return voronoi.Vertex{}, false
	}
	return a.vertices[i], true
}

func (a *Arena) Len() int { return len(a.vertices) }

// Finite returns how many vertices came from the raw diagram.
func (a *Arena) Finite() int { return a.finite }

// Seeded reports whether i is one of the vertices the arena was seeded with.
func (a *Arena) Seeded(i int) bool {
	return i >= 0 && i < a.finite
}

// Synthetic reports whether i was appended after seeding.
func (a *Arena) Synthetic(i int) bool {
	return i >= a.finite && i < len(a.vertices)
}

// Vertices returns a copy of the buffer.
func (a *Arena) Vertices() []voronoi.Vertex {
	out := make([]voronoi.Vertex, len(a.vertices))
	copy(out, a.vertices)
	return out
}
