// Package quality evaluates whether one photo's landmarks are usable for
// measurement and how much they should be trusted.
package quality

import (
	"image"
	"math"

	"facescore/internal/landmark"
	"facescore/internal/pose"
	"facescore/internal/reason"
	"facescore/pkg/geometry"
)

// Margins are the distances from the landmark bounding box to each image
// edge, in normalized image units. Negative means the face is cut off.
type Margins struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Min returns the smallest margin.
func (m Margins) Min() float64 {
	return math.Min(math.Min(m.Left, m.Right), math.Min(m.Top, m.Bottom))
}

// Factor is one multiplicative penalty applied to Confidence.
type Factor struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// PhotoQuality is the derived quality record for one view of one detection
// pass. It is never modified after Evaluate returns it.
type PhotoQuality struct {
	View          landmark.View `json:"view"`
	Pose          pose.Estimate `json:"pose"`
	BlurVariance  float64       `json:"blurVariance"`
	BlurChecked   bool          `json:"blurChecked"`
	InFrame       bool          `json:"inFrame"`
	Margins       Margins       `json:"margins"`
	LandmarkCount int           `json:"landmarkCount"`
	ValidRatio    float64       `json:"validRatio"`
	Confidence    float64       `json:"confidence"`
	ViewWeight    float64       `json:"viewWeight"`
	Factors       []Factor      `json:"factors"`
	ReasonCodes   reason.Set    `json:"reasonCodes"`
	Issues        []string      `json:"issues"`
}

// Input describes one photo handed over by the detector layer.
type Input struct {
	View        landmark.View
	Landmarks   []landmark.Landmark
	ImageWidth  int
	ImageHeight int
	// BlurSource is the decoded photo; nil skips the blur check.
	BlurSource image.Image
	Pose       pose.Estimate
	// Transformed is the detector flag for photos rotated or mirrored
	// before detection.
	Transformed bool
}

// Result is the outcome of Evaluate. OK is false when any error-severity
// reason code was raised.
type Result struct {
	OK       bool         `json:"ok"`
	Errors   []string     `json:"errors"`
	Warnings []string     `json:"warnings"`
	Quality  PhotoQuality `json:"quality"`
}

// evaluation accumulates codes and factors; codes are never removed.
type evaluation struct {
	codes   reason.Set
	factors []Factor
}

func (e *evaluation) flag(codes ...reason.Code) {
	e.codes = e.codes.With(codes...)
}

func (e *evaluation) factor(name string, v float64) {
	e.factors = append(e.factors, Factor{Name: name, Value: v})
}

func (e *evaluation) confidence() float64 {
	c := 1.0
	for _, f := range e.factors {
		c *= f.Value
	}
	return geometry.Clamp01(c)
}

// Evaluate checks pose, framing, blur, resolution and landmark coverage for
// one view. Problems never abort evaluation; each adds a reason code and a
// multiplicative confidence factor so several small problems compound.
func Evaluate(in Input, p Params) Result {
	ev := &evaluation{}
	ls := landmark.ToImageSpace(in.Landmarks, in.ImageWidth, in.ImageHeight)

	q := PhotoQuality{
		View:          in.View,
		Pose:          in.Pose,
		LandmarkCount: len(ls),
	}

	if len(ls) == 0 {
		ev.flag(reason.NoLandmarks)
		q.Factors = []Factor{}
		return finish(q, ev)
	}

	evaluateCount(ev, in.View, len(ls), p)
	q.ValidRatio = validRatio(ls)
	if q.ValidRatio < p.ValidRatioThreshold {
		ev.flag(reason.LowValidRatio)
	}
	ev.factor("valid_ratio", 0.7+0.3*q.ValidRatio)

	q.ViewWeight = evaluatePose(ev, in.View, in.Pose, p)

	q.Margins = margins(landmark.Points(ls))
	q.InFrame = q.Margins.Min() >= p.FrameMargin
	if !q.InFrame {
		ev.flag(reason.OutOfFrame)
		ev.factor("frame", p.FramePenalty)
	}

	if variance, ok := LaplacianVariance(in.BlurSource, p.BlurMaxSide); ok {
		q.BlurChecked = true
		q.BlurVariance = variance
		switch {
		case variance < p.BlurThreshold/3:
			ev.flag(reason.Blur)
			ev.factor("blur", p.SevereBlurPenalty)
		case variance < p.BlurThreshold:
			ev.flag(reason.Blur)
			ev.factor("blur", p.BlurPenalty)
		}
	}

	if in.ImageWidth > 0 && in.ImageHeight > 0 && min(in.ImageWidth, in.ImageHeight) < p.MinResolution {
		ev.flag(reason.LowResolution)
		ev.factor("resolution", p.ResolutionPenalty)
	}

	if in.Transformed {
		ev.flag(reason.Transformed)
		ev.factor("transformed", p.TransformedPenalty)
	}

	if vis, reported := landmark.MeanVisibility(ls); reported && vis < p.OcclusionVisibility {
		ev.flag(reason.Occlusion)
		ev.factor("occlusion", p.OcclusionPenalty)
	}

	return finish(q, ev)
}

func finish(q PhotoQuality, ev *evaluation) Result {
	if q.LandmarkCount > 0 {
		q.Confidence = ev.confidence()
		q.Factors = ev.factors
	}
	q.ReasonCodes = ev.codes
	q.Issues = ev.codes.Issues()
	return Result{
		OK:       len(ev.codes.Filter(reason.SeverityError)) == 0,
		Errors:   reason.Messages(ev.codes.Filter(reason.SeverityError)),
		Warnings: reason.Messages(ev.codes.Filter(reason.SeverityWarning)),
		Quality:  q,
	}
}

func evaluateCount(ev *evaluation, view landmark.View, n int, p Params) {
	switch {
	case n < p.MinLandmarks:
		ev.flag(reason.TooFewLandmarks)
		ev.factor("landmark_count", p.TooFewPenalty)
	case view == landmark.ViewFront && n < p.FrontExpectedLandmarks:
		ev.flag(reason.LowLandmarkCount)
		ev.factor("landmark_count", p.LowCountPenalty)
	}
}

// evaluatePose applies pose factors and returns the view weight.
func evaluatePose(ev *evaluation, view landmark.View, est pose.Estimate, p Params) float64 {
	switch est.Source {
	case pose.SourceNone:
		ev.flag(reason.PoseMissing)
	case pose.SourceFallback:
		ev.flag(reason.PoseFallback)
		ev.factor("pose_source", p.PoseFallbackPenalty)
	}

	if view == landmark.ViewSide {
		return evaluateSidePose(ev, est, p)
	}

	ev.factor("pose_confidence", 0.85+0.15*geometry.Clamp01(est.Confidence))
	if est.RollWarning {
		ev.flag(reason.RollTilt)
		ev.factor("roll", p.RollPenalty)
	}
	if !est.ValidFront {
		ev.flag(reason.BadPose)
		ev.factor("pose", p.InvalidPosePenalty)
		return 0
	}
	return 1
}

// evaluateSidePose gives three-quarter photos partial credit through a
// smoothstep ramp over |yaw| instead of a hard cutoff.
func evaluateSidePose(ev *evaluation, est pose.Estimate, p Params) float64 {
	ev.factor("pose_confidence", 0.85+0.15*geometry.Clamp01(est.Confidence))

	weight := geometry.Smoothstep(p.SideRampStart, p.SideRampEnd, math.Abs(est.Yaw))
	if weight > 0 && (math.Abs(est.Pitch) > p.SideMaxPitch || math.Abs(est.Roll) > p.SideMaxRoll) {
		ev.flag(reason.RollTilt)
		weight *= p.SideTiltPenalty
	}
	if est.Source == pose.SourceNone {
		weight = 0
	}

	switch {
	case weight < p.SideMinViewWeight:
		ev.flag(reason.SideDisabled)
		ev.factor("pose", p.InvalidPosePenalty)
	case weight < 1:
		ev.flag(reason.ThreeQuarter)
		ev.factor("pose", p.InvalidPosePenalty+(1-p.InvalidPosePenalty)*weight)
	}
	return weight
}

func validRatio(ls []landmark.Landmark) float64 {
	if len(ls) == 0 {
		return 0
	}
	valid := 0
	for _, l := range ls {
		if l.Finite() && l.X >= -0.02 && l.X <= 1.02 && l.Y >= -0.02 && l.Y <= 1.02 {
			valid++
		}
	}
	return float64(valid) / float64(len(ls))
}

func margins(pts []geometry.Point2D) Margins {
	if len(pts) == 0 {
		return Margins{}
	}
	box := geometry.BoundingBox(pts)
	return Margins{
		Left:   box.X,
		Top:    box.Y,
		Right:  1 - box.Right(),
		Bottom: 1 - box.Bottom(),
	}
}
