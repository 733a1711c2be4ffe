package voronoi

import (
	"math"

	apperrors "github.com/0x0FACED/voronoi-regions/pkg/errors"
)

// MinSites is the smallest site count with a non-degenerate diagram.
const MinSites = 3

func validateSites(sites []Vertex) error {
	if len(sites) < MinSites {
		return apperrors.New(apperrors.ErrCodeDegenerateInput, "need at least %d sites, got %d", MinSites, len(sites))
	}

	seen := make(map[Vertex]int, len(sites))
	for i, s := range sites {
		if math.IsNaN(s.X) || math.IsNaN(s.Y) || math.IsInf(s.X, 0) || math.IsInf(s.Y, 0) {
			return apperrors.New(apperrors.ErrCodeDegenerateInput, "site %d has a non-finite coordinate %v", i, s)
		}
		if j, ok := seen[s]; ok {
			return apperrors.New(apperrors.ErrCodeDegenerateInput, "sites %d and %d coincide at %v", j, i, s)
		}
		seen[s] = i
	}
	return nil
}
