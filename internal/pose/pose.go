// Package pose resolves a head pose (yaw, pitch, roll) for one photo from the
// detector's 4x4 transformation matrix, or from landmark depth when no usable
// matrix is available.
package pose

import (
	"fmt"
	"math"

	"facescore/internal/landmark"
)

// Source indicates how a pose estimate was obtained.
type Source string

const (
	SourceMatrix   Source = "matrix"
	SourceFallback Source = "fallback"
	SourceNone     Source = "none"
)

// Estimate is an immutable head pose for one detection pass.
type Estimate struct {
	Yaw        float64       `json:"yaw"`
	Pitch      float64       `json:"pitch"`
	Roll       float64       `json:"roll"`
	Source     Source        `json:"source"`
	Confidence float64       `json:"confidence"`
	View       landmark.View `json:"view"`
	ValidFront bool          `json:"validFront"`
	ValidSide  bool          `json:"validSide"`

	// RollWarning is set when |roll| exceeds the front roll tolerance. It
	// never clears ValidFront.
	RollWarning bool `json:"rollWarning"`
}

// String returns a compact human-readable form.
func (e Estimate) String() string {
	return fmt.Sprintf("Pose{yaw:%.1f pitch:%.1f roll:%.1f src:%s conf:%.2f view:%s front:%t side:%t}",
		e.Yaw, e.Pitch, e.Roll, e.Source, e.Confidence, e.View, e.ValidFront, e.ValidSide)
}

// ValidFor reports whether the pose is valid for the given photo view.
func (e Estimate) ValidFor(v landmark.View) bool {
	switch v {
	case landmark.ViewFront:
		return e.ValidFront
	case landmark.ViewSide:
		return e.ValidSide
	default:
		return false
	}
}

// Classify builds an Estimate from decoded angles, filling in the view and
// validity flags.
func Classify(yaw, pitch, roll float64, src Source, confidence float64, p Params) Estimate {
	ay, ap, ar := math.Abs(yaw), math.Abs(pitch), math.Abs(roll)

	view := landmark.ViewUnknown
	switch {
	case ay <= p.FrontViewMaxYaw:
		view = landmark.ViewFront
	case ay >= p.SideViewMinYaw:
		view = landmark.ViewSide
	}

	return Estimate{
		Yaw:         yaw,
		Pitch:       pitch,
		Roll:        roll,
		Source:      src,
		Confidence:  confidence,
		View:        view,
		ValidFront:  ay <= p.FrontMaxYaw && ap <= p.FrontMaxPitch,
		ValidSide:   ay >= p.SideMinYaw && ap <= p.SideMaxPitch && ar <= p.SideMaxRoll,
		RollWarning: ar > p.FrontMaxRoll,
	}
}

// None is the estimate used when neither a matrix nor landmarks exist.
func None() Estimate {
	return Estimate{Source: SourceNone, View: landmark.ViewUnknown}
}

// Resolve decodes matrix when it is usable and otherwise falls back to the
// landmark heuristic. A malformed matrix is never reported as an error; the
// fallback is recorded through Source.
func Resolve(matrix []float64, fallback []landmark.Landmark, expected landmark.View, p Params) Estimate {
	if est, ok := FromMatrix(matrix, expected, p); ok {
		return est
	}
	return FromLandmarks(fallback, p)
}
