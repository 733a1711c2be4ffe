package regions

import "github.com/0x0FACED/voronoi-regions/pkg/voronoi"

// Neighbor is a ridge seen from one of its two sites.
type Neighbor struct {
	// Site is the site on the other side of the ridge.
	Site int
	// Vertices are the ridge ends as received from the raw diagram.
	Vertices [2]voronoi.VertexRef
}

// Adjacency maps a site to the ridges that touch it.
type Adjacency map[int][]Neighbor

// IndexRidges files every ridge under both of its sites.
func IndexRidges(ridges []voronoi.Ridge) Adjacency {
	adj := make(Adjacency)
	for _, r := range ridges {
		a, b := r.Sites[0], r.Sites[1]
		adj[a] = append(adj[a], Neighbor{Site: b, Vertices: r.Vertices})
		adj[b] = append(adj[b], Neighbor{Site: a, Vertices: r.Vertices})
	}
	return adj
}

// Neighbors returns the ridges of site; ok is false when no ridge touches it.
func (a Adjacency) Neighbors(site int) (neighbors []Neighbor, ok bool) {
	neighbors, ok = a[site]
	return neighbors, ok
}
