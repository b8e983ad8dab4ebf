package landmark

import (
	"math"

	"facescore/pkg/geometry"
)

// Frame is a landmark set mapped into a scale and translation free frame:
// the bounding box is centred on (0.5, 0.5) and its long side has length 1.
type Frame struct {
	Landmarks []Landmark
	// Roll is the rotation removed before normalizing, in degrees.
	Roll float64
	// Scale is the long side of the original bounding box.
	Scale float64
}

// At returns the normalized position of mesh index i.
func (f Frame) At(i int) (geometry.Point2D, bool) {
	l, ok := At(f.Landmarks, i)
	if !ok {
		return geometry.Point2D{}, false
	}
	return l.Point(), true
}

// Has reports whether every index is present and finite.
func (f Frame) Has(indices ...int) bool {
	for _, i := range indices {
		if _, ok := At(f.Landmarks, i); !ok {
			return false
		}
	}
	return true
}

// Normalize maps ls into a Frame without removing roll.
func Normalize(ls []Landmark) Frame {
	return normalize(ls, 0)
}

// NormalizeLevel rotates ls so the line from index right to index left is
// horizontal, then normalizes. Missing indices leave the set unrotated.
func NormalizeLevel(ls []Landmark, right, left int) Frame {
	r, okR := At(ls, right)
	l, okL := At(ls, left)
	if !okR || !okL {
		return normalize(ls, 0)
	}
	angle := math.Atan2(l.Y-r.Y, l.X-r.X)
	if math.Abs(angle) > math.Pi/2 {
		// mirrored input; levelling would flip the face
		return normalize(ls, 0)
	}
	center := r.Point().Midpoint(l.Point())
	t := geometry.RotationAbout(center, -angle)
	rotated := make([]Landmark, len(ls))
	for i, lm := range ls {
		rotated[i] = lm
		if lm.Finite() {
			p := t.Apply(lm.Point())
			rotated[i].X, rotated[i].Y = p.X, p.Y
		}
	}
	f := normalize(rotated, 0)
	f.Roll = geometry.Degrees(angle)
	return f
}

func normalize(ls []Landmark, roll float64) Frame {
	box := geometry.BoundingBox(Points(ls))
	side := box.LongSide()
	out := make([]Landmark, len(ls))
	copy(out, ls)
	if side <= 1e-12 {
		return Frame{Landmarks: out, Roll: roll}
	}
	c := box.Center()
	for i := range out {
		if !out[i].Finite() {
			continue
		}
		out[i].X = (out[i].X-c.X)/side + 0.5
		out[i].Y = (out[i].Y-c.Y)/side + 0.5
		out[i].Z /= side
	}
	return Frame{Landmarks: out, Roll: roll, Scale: side}
}

// WithOverrides returns a copy of ls with positions replaced for the given
// mesh indices. Overrides beyond the list length are ignored.
func WithOverrides(ls []Landmark, positions map[int]geometry.Point2D, visibility map[int]float64) []Landmark {
	out := make([]Landmark, len(ls))
	copy(out, ls)
	for i, p := range positions {
		if i < 0 || i >= len(out) {
			continue
		}
		out[i].X, out[i].Y = p.X, p.Y
		if v, ok := visibility[i]; ok {
			out[i].Visibility = &v
		}
	}
	return out
}
