// Package calibration seeds the manual landmark overlay from detector output
// and applies the confirm/move/reset transitions used to correct it.
package calibration

import (
	"fmt"

	"facescore/internal/landmark"
	"facescore/internal/reason"
	"facescore/pkg/geometry"
)

// Source records where a point's position came from.
type Source string

const (
	SourceAuto          Source = "auto"
	SourceManual        Source = "manual"
	SourceAutoConfirmed Source = "auto_confirmed"
)

const (
	// ConfirmedConfidence is assigned when a user confirms a point.
	ConfirmedConfidence = 1.0
	// ManualConfidence is the floor for a point placed by hand.
	ManualConfidence = 0.9
)

// Point is one calibration target as placed on a photo. Coordinates are
// normalized image coordinates.
type Point struct {
	ID          string        `json:"id" validate:"required"`
	View        landmark.View `json:"view" validate:"oneof=front side"`
	X           float64       `json:"x" validate:"gte=0,lte=1"`
	Y           float64       `json:"y" validate:"gte=0,lte=1"`
	Source      Source        `json:"source" validate:"oneof=auto manual auto_confirmed"`
	Confidence  float64       `json:"confidence" validate:"gte=0,lte=1"`
	ReasonCodes reason.Set    `json:"reasonCodes"`
	Confirmed   bool          `json:"confirmed"`
	Required    bool          `json:"required"`
}

// Position returns the point's image-plane position.
func (p Point) Position() geometry.Point2D {
	return geometry.NewPoint2D(p.X, p.Y)
}

// String returns a compact human-readable form.
func (p Point) String() string {
	return fmt.Sprintf("Point{%s (%.3f,%.3f) %s conf:%.2f confirmed:%t}",
		p.ID, p.X, p.Y, p.Source, p.Confidence, p.Confirmed)
}

// Confirm marks p as accepted by the user. Auto points become
// auto_confirmed; manual points keep their source.
func Confirm(p Point) Point {
	p.ReasonCodes = p.ReasonCodes.With()
	p.Confirmed = true
	if p.Source == SourceAuto {
		p.Source = SourceAutoConfirmed
	}
	p.Confidence = ConfirmedConfidence
	return p
}

// MoveTo places p at (x, y), clamped to the image. Moving always clears
// confirmation and tags the point as manually adjusted.
func MoveTo(p Point, x, y float64) Point {
	p.X = geometry.Clamp01(x)
	p.Y = geometry.Clamp01(y)
	p.Source = SourceManual
	p.Confirmed = false
	p.Confidence = max(p.Confidence, ManualConfidence)
	p.ReasonCodes = p.ReasonCodes.With(reason.ManualAdjusted)
	return p
}

// Reset restores p to the value it was seeded with. A mismatched original
// leaves p unchanged.
func Reset(p, original Point) Point {
	if p.ID != original.ID {
		return p
	}
	original.ReasonCodes = original.ReasonCodes.With()
	return original
}

// Ready reports whether every required point of view is confirmed.
func Ready(points []Point, view landmark.View) bool {
	done, total := Progress(points, view)
	return done == total
}

// Progress returns the number of confirmed required points and the number
// of required points for view.
func Progress(points []Point, view landmark.View) (done, total int) {
	for _, p := range points {
		if p.View != view || !p.Required {
			continue
		}
		total++
		if p.Confirmed {
			done++
		}
	}
	return done, total
}

// NextPending returns the index of the first unconfirmed required point of
// view at or after from, wrapping around once. It returns -1 when none is
// pending.
func NextPending(points []Point, view landmark.View, from int) int {
	n := len(points)
	if n == 0 {
		return -1
	}
	if from < 0 || from >= n {
		from = 0
	}
	for k := 0; k < n; k++ {
		i := (from + k) % n
		p := points[i]
		if p.View == view && p.Required && !p.Confirmed {
			return i
		}
	}
	return -1
}

// ConfirmedFraction returns the share of view's points that were confirmed
// or placed by hand.
func ConfirmedFraction(points []Point, view landmark.View) float64 {
	var n, done int
	for _, p := range points {
		if p.View != view {
			continue
		}
		n++
		if p.Confirmed || p.Source == SourceManual {
			done++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(done) / float64(n)
}
