package render

import (
	"github.com/lucasb-eyer/go-colorful"

	apperrors "github.com/0x0FACED/voronoi-regions/pkg/errors"
)

// Palette returns n colours spread evenly across anchors, blended in Lab
// space. The first colour is anchors[0] and the last one anchors[len-1].
func Palette(n int, anchors []string) ([]string, error) {
	if len(anchors) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "palette needs at least one anchor colour")
	}
	stops := make([]colorful.Color, len(anchors))
	for i, hex := range anchors {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "anchor colour %q", hex)
		}
		stops[i] = c
	}

	out := make([]string, n)
	for i := range out {
		out[i] = at(stops, position(i, n)).Hex()
	}
	return out, nil
}

// position maps i of n to [0, 1].
func position(i, n int) float64 {
	if n < 2 {
		return 0
	}
	return float64(i) / float64(n-1)
}

func at(stops []colorful.Color, t float64) colorful.Color {
	if len(stops) == 1 {
		return stops[0]
	}
	segments := len(stops) - 1
	scaled := t * float64(segments)
	k := int(scaled)
	if k >= segments {
		return stops[segments]
	}
	frac := scaled - float64(k)
	if frac == 0 {
		return stops[k]
	}
	return stops[k].BlendLab(stops[k+1], frac).Clamped()
}
