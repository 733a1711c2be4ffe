// Package regions turns an unbounded Voronoi diagram into one closed polygon
// per site, the "region of influence" overlay drawn behind cluster centroids.
//
// The raw diagram comes from an external primitive (voronoi.Compute by
// default). Cells whose region reaches infinity are closed by synthesising a
// far point for every open ridge: the finite end of the ridge pushed along the
// ridge normal by a scale radius of 10x the site spread. The normal is
// oriented away from the centroid of all sites, which is an approximation and
// can pick the wrong side for strongly non-convex layouts.
//
// All vertices live in one append-only Arena; cells reference them by index:
//
//	res, err := regions.Synthesize(sites, log)
//	if err != nil {
//	    return err
//	}
//	for _, c := range res.Cells {
//	    fill(c.Polygon, colours[c.Site])
//	}
//
// Cells are not clipped to any viewport.
package regions
