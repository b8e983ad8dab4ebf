package scoring

import (
	"math"

	"facescore/pkg/geometry"
)

// Stabilize pulls raw toward the neutral score in proportion to missing
// confidence, then bounds it by the confidence floor and the ceiling. Low
// confidence can therefore never produce an extreme score.
func (p Params) Stabilize(raw, confidence float64) float64 {
	c := geometry.Clamp01(confidence)
	if math.IsNaN(raw) {
		raw = p.Neutral
	}
	blended := raw*c + p.Neutral*(1-c)
	return geometry.Clamp(blended, p.floor(c), p.Ceiling)
}

func (p Params) floor(c float64) float64 {
	for _, step := range p.Floors {
		if c >= step.MinConfidence {
			return step.Floor
		}
	}
	return p.DefaultFloor
}

// ErrorBar returns the half-width of the uncertainty band for a score with
// the given confidence.
func (p Params) ErrorBar(confidence float64) float64 {
	return (1-geometry.Clamp01(confidence))*p.ErrorBarScale + p.ErrorBarBase
}

func round(v float64) int {
	return int(math.Round(geometry.Clamp(v, 0, 100)))
}
