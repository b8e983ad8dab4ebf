package pose

import (
	"math"

	"facescore/internal/landmark"
	"facescore/pkg/geometry"
)

// FromLandmarks estimates a coarse pose from landmark depth. Points are split
// into left/right and upper/lower halves around the centroid; yaw is the
// depth difference right-minus-left and pitch lower-minus-upper, both scaled
// into [-90, 90]. Roll is the angle of the line from the leftmost to the
// rightmost point. The result always carries the fixed fallback confidence.
func FromLandmarks(ls []landmark.Landmark, p Params) Estimate {
	pts := make([]landmark.Landmark, 0, len(ls))
	for _, l := range ls {
		if l.Finite() {
			pts = append(pts, l)
		}
	}
	if len(pts) < 2 {
		return None()
	}

	var cx, cy float64
	for _, l := range pts {
		cx += l.X
		cy += l.Y
	}
	cx /= float64(len(pts))
	cy /= float64(len(pts))

	var left, right, upper, lower depthSum
	leftmost, rightmost := pts[0], pts[0]
	for _, l := range pts {
		if l.X < cx {
			left.add(l.Z)
		} else {
			right.add(l.Z)
		}
		if l.Y < cy {
			upper.add(l.Z)
		} else {
			lower.add(l.Z)
		}
		if l.X < leftmost.X {
			leftmost = l
		}
		if l.X > rightmost.X {
			rightmost = l
		}
	}

	yaw := geometry.Clamp((right.mean()-left.mean())*p.DepthToDegrees, -90, 90)
	pitch := geometry.Clamp((lower.mean()-upper.mean())*p.DepthToDegrees, -90, 90)

	var roll float64
	dx := rightmost.X - leftmost.X
	dy := rightmost.Y - leftmost.Y
	if dx != 0 || dy != 0 {
		roll = geometry.Degrees(math.Atan2(dy, dx))
	}

	return Classify(yaw, pitch, roll, SourceFallback, p.FallbackConfidence, p)
}

type depthSum struct {
	sum float64
	n   int
}

func (d *depthSum) add(z float64) {
	d.sum += z
	d.n++
}

func (d depthSum) mean() float64 {
	if d.n == 0 {
		return 0
	}
	return d.sum / float64(d.n)
}
