package render

import (
	"math"

	"github.com/0x0FACED/voronoi-regions/pkg/voronoi"
)

// Viewport is the world-space rectangle a figure shows.
type Viewport struct {
	MinX, MinY, MaxX, MaxY float64
}

// Fit returns the bounding box of sites grown by pad times its size on every
// side. A zero extent is widened to 1 so Project never divides by zero.
func Fit(sites []voronoi.Vertex, pad float64) Viewport {
	if len(sites) == 0 {
		return Viewport{MaxX: 1, MaxY: 1}
	}
	v := Viewport{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, s := range sites {
		v.MinX = math.Min(v.MinX, s.X)
		v.MinY = math.Min(v.MinY, s.Y)
		v.MaxX = math.Max(v.MaxX, s.X)
		v.MaxY = math.Max(v.MaxY, s.Y)
	}

	w, h := v.MaxX-v.MinX, v.MaxY-v.MinY
	if w == 0 {
		v.MinX, v.MaxX, w = v.MinX-0.5, v.MaxX+0.5, 1
	}
	if h == 0 {
		v.MinY, v.MaxY, h = v.MinY-0.5, v.MaxY+0.5, 1
	}
	v.MinX -= pad * w
	v.MaxX += pad * w
	v.MinY -= pad * h
	v.MaxY += pad * h
	return v
}

func (v Viewport) Width() float64  { return v.MaxX - v.MinX }
func (v Viewport) Height() float64 { return v.MaxY - v.MinY }

// Project maps p to pixel coordinates of a width x height image. Y grows
// downwards in pixels, so the world Y axis is flipped.
func (v Viewport) Project(p voronoi.Vertex, width, height int) (x, y float64) {
	x = (p.X - v.MinX) / v.Width() * float64(width)
	y = float64(height) - (p.Y-v.MinY)/v.Height()*float64(height)
	return x, y
}
