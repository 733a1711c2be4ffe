package regions

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	apperrors "github.com/0x0FACED/voronoi-regions/pkg/errors"
	"github.com/0x0FACED/voronoi-regions/pkg/voronoi"
)

// RadiusFactor is the far-point distance in units of the site spread.
const RadiusFactor = 10

// Scene holds the per-call values shared by every reconstruction.
type Scene struct {
	Sites    []voronoi.Vertex
	Centroid voronoi.Vertex
	// Radius is how far a far point sits from the finite end of its ridge.
	Radius float64
}

// NewScene computes the centroid and scale radius of sites once.
func NewScene(sites []voronoi.Vertex) Scene {
	var sum r2.Vec
	for _, s := range sites {
		sum = r2.Add(sum, s)
	}
	var centroid r2.Vec
	if len(sites) > 0 {
		centroid = r2.Scale(1/float64(len(sites)), sum)
	}
	return Scene{
		Sites:    sites,
		Centroid: centroid,
		Radius:   RadiusFactor * Spread(sites),
	}
}

// Spread returns the larger of the x and y extents of sites.
func Spread(sites []voronoi.Vertex) float64 {
	if len(sites) == 0 {
		return 0
	}
	lo, hi := sites[0], sites[0]
	for _, s := range sites[1:] {
		lo.X = math.Min(lo.X, s.X)
		lo.Y = math.Min(lo.Y, s.Y)
		hi.X = math.Max(hi.X, s.X)
		hi.Y = math.Max(hi.Y, s.Y)
	}
	return math.Max(hi.X-lo.X, hi.Y-lo.Y)
}

// Reconstruct returns the arena indices bounding site's cell, unordered.
// Region and ridge references must point into the arena's seeded prefix;
// far points appended for earlier sites are not diagram vertices.
//
// A region without an Unbounded reference is returned as is. Otherwise the
// finite references are kept and every ridge of the site with exactly one
// unbounded end gets a far point appended to arena.
func Reconstruct(site int, region []voronoi.VertexRef, neighbors []Neighbor, arena *Arena, scene Scene) ([]int, error) {
	out := make([]int, 0, len(region)+2)
	open := false
	for _, ref := range region {
		i, ok := ref.Index()
		if !ok {
			open = true
			continue
		}
		if !arena.Seeded(i) {
			return nil, siteInvariant(site, "region vertex %d is not one of the %d diagram vertices", i, arena.Finite())
		}
		out = append(out, i)
	}
	if !open {
		return out, nil
	}

	if site < 0 || site >= len(scene.Sites) {
		return nil, invariant("site %d outside %d sites", site, len(scene.Sites))
	}
	if len(neighbors) == 0 {
		return nil, siteInvariant(site, "unbounded region but no ridges indexed")
	}

	for _, nb := range neighbors {
		u, w := nb.Vertices[0], nb.Vertices[1]
		if !u.IsUnbounded() && !w.IsUnbounded() {
			continue
		}
		if u.IsUnbounded() && w.IsUnbounded() {
			return nil, siteInvariant(site, "ridge to site %d has no finite end", nb.Site)
		}
		if u.IsUnbounded() {
			u, w = w, u
		}
		if nb.Site < 0 || nb.Site >= len(scene.Sites) {
			return nil, siteInvariant(site, "ridge references unknown site %d", nb.Site)
		}
		i, _ := u.Index()
		if !arena.Seeded(i) {
			return nil, siteInvariant(site, "ridge vertex %d is not one of the %d diagram vertices", i, arena.Finite())
		}
		v1, _ := arena.At(i)

		out = append(out, arena.Append(farPoint(scene, site, nb.Site, v1)))
	}

	if len(out) < 3 {
		return nil, siteInvariant(site, "reconstructed region has %d vertices", len(out))
	}
	return out, nil
}

// farPoint pushes v1 along the normal of the site->other direction, on the
// side facing away from the scene centroid.
func farPoint(scene Scene, site, other int, v1 voronoi.Vertex) voronoi.Vertex {
	p, q := scene.Sites[site], scene.Sites[other]
	tangent := r2.Unit(r2.Sub(q, p))
	normal := r2.Vec{X: -tangent.Y, Y: tangent.X}
	midpoint := r2.Scale(0.5, r2.Add(p, q))
	sign := outward(r2.Dot(r2.Sub(midpoint, scene.Centroid), normal))
	return r2.Add(v1, r2.Scale(sign*scene.Radius, normal))
}

// outward is the sign of dot; zero counts as positive.
func outward(dot float64) float64 {
	if dot < 0 {
		return -1
	}
	return 1
}

func invariant(format string, args ...any) error {
	return apperrors.New(apperrors.ErrCodeInvariantViolation, format, args...)
}

func siteInvariant(site int, format string, args ...any) error {
	return apperrors.AtSite(site, apperrors.ErrCodeInvariantViolation, format, args...)
}
