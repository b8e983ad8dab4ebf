// Package landmark defines the facial landmark record produced by the
// detector layer and the index schema of the dense front mesh.
package landmark

import (
	"math"

	"facescore/pkg/geometry"
)

// View identifies which photo a landmark set or measurement belongs to.
type View string

const (
	ViewFront   View = "front"
	ViewSide    View = "side"
	ViewUnknown View = "unknown"
)

func (v View) String() string {
	return string(v)
}

// Landmark is one detector point. X and Y are normalized to [0,1] relative to
// the source image; Z is relative depth where more negative is closer to the
// camera. Visibility is nil when the detector does not report it.
type Landmark struct {
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	Z          float64  `json:"z,omitempty"`
	Visibility *float64 `json:"visibility,omitempty"`
}

// Point returns the image-plane position.
func (l Landmark) Point() geometry.Point2D {
	return geometry.Point2D{X: l.X, Y: l.Y}
}

// Vis returns the visibility, defaulting to 1 when unreported.
func (l Landmark) Vis() float64 {
	if l.Visibility == nil {
		return 1
	}
	return geometry.Clamp01(*l.Visibility)
}

// Finite reports whether all coordinates are finite numbers.
func (l Landmark) Finite() bool {
	return isFinite(l.X) && isFinite(l.Y) && isFinite(l.Z)
}

// At returns the landmark at index i when present and finite.
func At(ls []Landmark, i int) (Landmark, bool) {
	if i < 0 || i >= len(ls) {
		return Landmark{}, false
	}
	l := ls[i]
	if !l.Finite() {
		return Landmark{}, false
	}
	return l, true
}

// Points returns the image-plane positions of every finite landmark.
func Points(ls []Landmark) []geometry.Point2D {
	pts := make([]geometry.Point2D, 0, len(ls))
	for _, l := range ls {
		if l.Finite() {
			pts = append(pts, l.Point())
		}
	}
	return pts
}

// ToImageSpace returns a copy of ls with coordinates normalized to [0,1]
// image space. Detectors occasionally report pixel coordinates; when any
// coordinate exceeds 1.5 and the image size is known the set is divided by
// width and height. Depth is scaled by the width to stay proportional.
func ToImageSpace(ls []Landmark, width, height int) []Landmark {
	out := make([]Landmark, len(ls))
	copy(out, ls)
	if width <= 0 || height <= 0 || !looksLikePixels(ls) {
		return out
	}
	w, h := float64(width), float64(height)
	for i := range out {
		out[i].X /= w
		out[i].Y /= h
		out[i].Z /= w
	}
	return out
}

func looksLikePixels(ls []Landmark) bool {
	for _, l := range ls {
		if !l.Finite() {
			continue
		}
		if math.Abs(l.X) > 1.5 || math.Abs(l.Y) > 1.5 {
			return true
		}
	}
	return false
}

// MeanVisibility returns the average visibility of finite landmarks and
// whether any landmark reported a visibility at all.
func MeanVisibility(ls []Landmark) (float64, bool) {
	var sum float64
	var n int
	reported := false
	for _, l := range ls {
		if !l.Finite() {
			continue
		}
		if l.Visibility != nil {
			reported = true
		}
		sum += l.Vis()
		n++
	}
	if n == 0 {
		return 0, reported
	}
	return sum / float64(n), reported
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
