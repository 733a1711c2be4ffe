package regions

import (
	"time"

	apperrors "github.com/0x0FACED/voronoi-regions/pkg/errors"
	"github.com/0x0FACED/voronoi-regions/pkg/logger"
	"github.com/0x0FACED/voronoi-regions/pkg/voronoi"
	"go.uber.org/zap"
)

// DiagramFunc computes the raw Voronoi diagram of sites.
type DiagramFunc func(sites []voronoi.Vertex) (*voronoi.RawDiagram, error)

type Option func(*Synthesizer)

// WithDiagram replaces the Voronoi primitive (voronoi.Compute by default).
func WithDiagram(fn DiagramFunc) Option {
	return func(s *Synthesizer) {
		s.diagram = fn
	}
}

// Synthesizer builds closed cells for site sets. It keeps no state between
// calls, so one Synthesizer may serve concurrent callers as long as its
// DiagramFunc does.
type Synthesizer struct {
	diagram DiagramFunc
	log     *logger.ZapLogger
}

func New(log *logger.ZapLogger, opts ...Option) *Synthesizer {
	if log == nil {
		log = logger.Nop()
	}
	s := &Synthesizer{log: log}
	s.diagram = func(sites []voronoi.Vertex) (*voronoi.RawDiagram, error) {
		return voronoi.Compute(sites, s.log)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result is the output of one Synthesize call.
type Result struct {
	// Cells[i] belongs to site i.
	Cells []Cell
	// Vertices is the final arena: the diagram's finite vertices in their
	// original order, then far points in site-processing order.
	Vertices []voronoi.Vertex
	// Finite is the number of leading non-synthetic vertices.
	Finite int
}

// Synthesize is New(log).Synthesize(sites).
func Synthesize(sites []voronoi.Vertex, log *logger.ZapLogger) (*Result, error) {
	return New(log).Synthesize(sites)
}

// Synthesize returns one closed counter-clockwise polygon per site.
// Errors from the Voronoi primitive are returned unchanged; on any error no
// partial result is returned.
func (s *Synthesizer) Synthesize(sites []voronoi.Vertex) (*Result, error) {
	start := time.Now()

	if len(sites) < voronoi.MinSites {
		return nil, apperrors.New(apperrors.ErrCodeDegenerateInput, "need at least %d sites, got %d", voronoi.MinSites, len(sites))
	}

	raw, err := s.diagram(sites)
	if err != nil {
		s.log.Error("[r] Voronoi primitive failed", zap.Error(err))
		return nil, err
	}
	if raw == nil {
		return nil, invariant("diagram primitive returned no diagram and no error")
	}
	if len(raw.Regions) != len(sites) {
		return nil, invariant("diagram has %d regions for %d sites", len(raw.Regions), len(sites))
	}
	for _, r := range raw.Ridges {
		for _, site := range r.Sites {
			if site < 0 || site >= len(sites) {
				return nil, invariant("ridge references site %d outside %d sites", site, len(sites))
			}
		}
	}

	adj := IndexRidges(raw.Ridges)
	scene := NewScene(sites)
	arena := NewArena(raw.Vertices)

	s.log.Debug("[r] Scene",
		zap.Any("centroid", scene.Centroid),
		zap.Float64("radius", scene.Radius),
		zap.Int("finite", arena.Finite()))

	regions := make([][]int, len(sites))
	for site, region := range raw.Regions {
		neighbors, _ := adj.Neighbors(site)
		before := arena.Len()
		indices, err := Reconstruct(site, region, neighbors, arena, scene)
		if err != nil {
			s.log.Error("[r-site] Reconstruction failed", zap.Int("site", site), zap.Error(err))
			return nil, err
		}
		regions[site] = indices
		s.log.Debug("[r-site] Region",
			zap.Int("site", site),
			zap.Ints("indices", indices),
			zap.Int("synthesized", arena.Len()-before))
	}

	cells := make([]Cell, len(sites))
	for site, indices := range regions {
		ordered, err := Order(indices, arena)
		if err != nil {
			return nil, err
		}
		if len(ordered) < 3 {
			return nil, siteInvariant(site, "cell has %d vertices", len(ordered))
		}
		polygon := make([]voronoi.Vertex, len(ordered))
		for k, i := range ordered {
			polygon[k], _ = arena.At(i)
		}
		cells[site] = Cell{Site: site, Indices: ordered, Polygon: polygon}
	}

	s.log.Info("[r] Cells built",
		zap.Int("sites", len(sites)),
		zap.Int("vertices", arena.Len()),
		zap.Int("synthesized", arena.Len()-arena.Finite()),
		zap.Duration("elapsed", time.Since(start)))

	return &Result{
		Cells:    cells,
		Vertices: arena.Vertices(),
		Finite:   arena.Finite(),
	}, nil
}
