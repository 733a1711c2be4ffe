package regions

import (
	"math"

	"github.com/0x0FACED/voronoi-regions/pkg/voronoi"
)

// Cell is the closed region of influence of one site.
type Cell struct {
	Site int
	// Indices are arena indices in polygon order.
	Indices []int
	// Polygon is Indices resolved to coordinates, counter-clockwise.
	Polygon []voronoi.Vertex
}

// SignedArea returns the shoelace area, positive for counter-clockwise order.
func (c Cell) SignedArea() float64 {
	n := len(c.Polygon)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += c.Polygon[i].X * c.Polygon[j].Y
		area -= c.Polygon[j].X * c.Polygon[i].Y
	}
	return area / 2
}

func (c Cell) Area() float64 {
	return math.Abs(c.SignedArea())
}

func (c Cell) IsCounterClockwise() bool {
	return c.SignedArea() > 0
}

// Contains reports whether p lies inside the polygon (ray casting).
// Points exactly on the boundary may go either way.
func (c Cell) Contains(p voronoi.Vertex) bool {
	n := len(c.Polygon)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi := c.Polygon[i]
		vj := c.Polygon[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}
