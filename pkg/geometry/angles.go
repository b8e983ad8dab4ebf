package geometry

import "math"

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// AngleAt returns the interior angle in degrees at vertex formed by the rays
// vertex->a and vertex->b. Degenerate rays yield 0.
func AngleAt(a, vertex, b Point2D) float64 {
	v1 := a.Sub(vertex)
	v2 := b.Sub(vertex)
	n1, n2 := v1.Norm(), v2.Norm()
	if n1 < 1e-12 || n2 < 1e-12 {
		return 0
	}
	cos := Clamp(v1.Dot(v2)/(n1*n2), -1, 1)
	return Degrees(math.Acos(cos))
}

// LineAngle returns the angle of the segment from->to relative to the
// positive x axis, in degrees, with y growing downward as in image space.
// A segment rising to the right yields a positive angle.
func LineAngle(from, to Point2D) float64 {
	return Degrees(math.Atan2(from.Y-to.Y, to.X-from.X))
}

// SignedDistanceToLine returns the perpendicular distance of p from the
// infinite line through a and b. The sign follows the 2D cross product
// (b-a) x (p-a).
func SignedDistanceToLine(p, a, b Point2D) float64 {
	ab := b.Sub(a)
	n := ab.Norm()
	if n < 1e-12 {
		return p.Distance(a)
	}
	ap := p.Sub(a)
	return (ab.X*ap.Y - ab.Y*ap.X) / n
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return Clamp(v, 0, 1)
}

// Smoothstep is the cubic Hermite ramp between edge0 and edge1: 0 at or
// below edge0, 1 at or above edge1, monotonic in between.
func Smoothstep(edge0, edge1, x float64) float64 {
	if edge1 <= edge0 {
		if x >= edge1 {
			return 1
		}
		return 0
	}
	t := Clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}
