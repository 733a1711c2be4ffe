package voronoi

import (
	"fmt"

	apperrors "github.com/0x0FACED/voronoi-regions/pkg/errors"
	"go.uber.org/zap"
)

// VertexRef points at a vertex of a RawDiagram or marks an end that goes to
// infinity. The zero value is Unbounded; finite references are built with
// Finite, so index 0 never doubles as a sentinel.
type VertexRef struct {
	index   int
	bounded bool
}

// Unbounded is the reference of a ridge end at infinity.
var Unbounded = VertexRef{}

// Finite returns a reference to vertex i.
func Finite(i int) VertexRef {
	return VertexRef{index: i, bounded: true}
}

// IsUnbounded reports whether r is the Unbounded reference.
func (r VertexRef) IsUnbounded() bool {
	return !r.bounded
}

// Index returns the referenced vertex index; ok is false for Unbounded.
func (r VertexRef) Index() (i int, ok bool) {
	return r.index, r.bounded
}

func (r VertexRef) String() string {
	if !r.bounded {
		return "unbounded"
	}
	return fmt.Sprintf("v%d", r.index)
}

// Ridge is the boundary between two neighbouring sites. Vertices keeps the
// end order produced by the sweep.
type Ridge struct {
	Sites    [2]int
	Vertices [2]VertexRef
}

// RawDiagram is the unbounded Voronoi diagram of a site set.
type RawDiagram struct {
	// Vertices holds every finite vertex once, in order of discovery.
	Vertices []Vertex
	// Regions[i] lists the vertices around site i, unordered. Each finite
	// vertex appears once, Unbounded at most once.
	Regions [][]VertexRef
	// Ridges lists every Voronoi edge, bounded or not.
	Ridges []Ridge
}

// export переводит рёбра развёртки в сырую диаграмму
func (v *Voronoi) export(nSites int) (*RawDiagram, error) {
	d := &RawDiagram{Regions: make([][]VertexRef, nSites)}

	// одна и та же вершина записана во все рёбра одним значением,
	// поэтому хватает точного сравнения координат
	indexOf := make(map[Vertex]int)
	ref := func(p Vertex) VertexRef {
		if p == noVertex {
			return Unbounded
		}
		i, ok := indexOf[p]
		if !ok {
			i = len(d.Vertices)
			indexOf[p] = i
			d.Vertices = append(d.Vertices, p)
		}
		return Finite(i)
	}

	seen := make([]map[VertexRef]bool, nSites)
	addToRegion := func(site int, r VertexRef) {
		if seen[site] == nil {
			seen[site] = make(map[VertexRef]bool)
		}
		if seen[site][r] {
			return
		}
		seen[site][r] = true
		d.Regions[site] = append(d.Regions[site], r)
	}

	for _, e := range v.edges {
		u, w := ref(e.va), ref(e.vb)
		if u.IsUnbounded() && w.IsUnbounded() {
			return nil, apperrors.New(apperrors.ErrCodeDegenerateInput,
				"sites %d and %d share an edge with no finite end: sites are collinear", e.lCell.index, e.rCell.index)
		}
		// вырожденное ребро нулевой длины
		if u == w {
			continue
		}

		ridge := Ridge{
			Sites:    [2]int{e.lCell.index, e.rCell.index},
			Vertices: [2]VertexRef{u, w},
		}
		d.Ridges = append(d.Ridges, ridge)

		for _, site := range ridge.Sites {
			addToRegion(site, u)
			addToRegion(site, w)
		}
	}

	v.log.Debug("[v-export] Сырая диаграмма",
		zap.Int("vertices", len(d.Vertices)),
		zap.Int("ridges", len(d.Ridges)))

	return d, nil
}
