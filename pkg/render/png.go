package render

import (
	"io"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"

	apperrors "github.com/0x0FACED/voronoi-regions/pkg/errors"
	"github.com/0x0FACED/voronoi-regions/pkg/regions"
	"github.com/0x0FACED/voronoi-regions/pkg/voronoi"
)

// Frame is the pixel size of an image and the world area it shows.
type Frame struct {
	Width, Height int
	View          Viewport
}

// Style controls how cells and sites are painted.
type Style struct {
	// Palette holds anchor colours; cells get evenly spread shades of it.
	Palette    []string
	Opacity    float64
	Background string
	SiteRadius float64
}

// PNG paints every cell of res with its palette colour, outlines it, marks
// the sites and writes the image to w as PNG.
func PNG(w io.Writer, res *regions.Result, sites []voronoi.Vertex, frame Frame, style Style) error {
	if frame.Width <= 0 || frame.Height <= 0 {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "frame must be positive, got %dx%d", frame.Width, frame.Height)
	}
	colours, err := Palette(len(res.Cells), style.Palette)
	if err != nil {
		return err
	}

	dc := gg.NewContext(frame.Width, frame.Height)
	defer dc.Close()

	background := style.Background
	if background == "" {
		background = "#ffffff"
	}
	dc.ClearWithColor(gg.Hex(background))

	trace := func(polygon []voronoi.Vertex) {
		for k, p := range polygon {
			x, y := frame.View.Project(p, frame.Width, frame.Height)
			if k == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
	}

	for i, cell := range res.Cells {
		c, err := colorful.Hex(colours[i])
		if err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "cell colour %q", colours[i])
		}

		trace(cell.Polygon)
		dc.SetRGBA(c.R, c.G, c.B, style.Opacity)
		if err := dc.Fill(); err != nil {
			return err
		}

		trace(cell.Polygon)
		dc.SetRGBA(c.R, c.G, c.B, 1)
		dc.SetLineWidth(1)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}

	if style.SiteRadius > 0 {
		dc.SetRGBA(0, 0, 0, 1)
		for _, s := range sites {
			x, y := frame.View.Project(s, frame.Width, frame.Height)
			dc.DrawCircle(x, y, style.SiteRadius)
			if err := dc.Fill(); err != nil {
				return err
			}
		}
	}

	return dc.EncodePNG(w)
}
