package regions

import (
	"math"
	"sort"

	"github.com/0x0FACED/voronoi-regions/pkg/voronoi"
)

type byAngle struct {
	indices []int
	angles  []float64
}

func (s byAngle) Len() int { return len(s.indices) }
func (s byAngle) Swap(i, j int) {
	s.indices[i], s.indices[j] = s.indices[j], s.indices[i]
	s.angles[i], s.angles[j] = s.angles[j], s.angles[i]
}
func (s byAngle) Less(i, j int) bool { return s.angles[i] < s.angles[j] }

// Order sorts indices counter-clockwise around the centroid of the points
// they reference. Equal angles keep their input order. The input slice is
// not modified.
func Order(indices []int, arena *Arena) ([]int, error) {
	points := make([]voronoi.Vertex, len(indices))
	var c voronoi.Vertex
	for k, i := range indices {
		p, ok := arena.At(i)
		if !ok {
			return nil, invariant("vertex %d outside arena of %d", i, arena.Len())
		}
		points[k] = p
		c.X += p.X
		c.Y += p.Y
	}
	if len(indices) > 0 {
		c.X /= float64(len(indices))
		c.Y /= float64(len(indices))
	}

	s := byAngle{
		indices: append([]int(nil), indices...),
		angles:  make([]float64, len(indices)),
	}
	for k, p := range points {
		s.angles[k] = math.Atan2(p.Y-c.Y, p.X-c.X)
	}
	sort.Stable(s)

	return s.indices, nil
}
