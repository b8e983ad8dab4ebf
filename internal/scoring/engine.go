// Package scoring turns front and side landmark sets into confidence
// weighted pillar scores and per-metric diagnostics.
package scoring

import (
	"math"

	"facescore/internal/calibration"
	"facescore/internal/cohort"
	"facescore/internal/landmark"
	"facescore/internal/quality"
	"facescore/internal/reason"
	"facescore/pkg/geometry"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Input is one scoring request. Landmarks are in normalized image space.
type Input struct {
	Front        []landmark.Landmark
	Side         []landmark.Landmark
	FrontQuality quality.PhotoQuality
	SideQuality  quality.PhotoQuality
	// Manual carries calibration points; confirmed or hand-placed points
	// replace detector positions.
	Manual []calibration.Point
	Cohort cohort.Key
}

// sideSupplied reports whether a side photo was handed in at all, even if
// detection found nothing on it.
func (in Input) sideSupplied() bool {
	return len(in.Side) > 0 || in.SideQuality.View == landmark.ViewSide
}

// Engine computes scores. It holds no per-call state and is safe for
// concurrent use.
type Engine struct {
	params  Params
	metrics []Metric
}

// NewEngine returns an engine over the standard metric catalogue.
func NewEngine(p Params) Engine {
	return Engine{params: p, metrics: Metrics()}
}

// Params returns the engine's constants.
func (e Engine) Params() Params {
	return e.params
}

// viewState is the per-view context a metric is measured in.
type viewState struct {
	frame       landmark.Frame
	quality     quality.PhotoQuality
	usable      bool
	weight      float64
	validity    string
	calibration float64
}

// Compute scores one detection pass. It never fails: input too degenerate
// to measure yields the fallback result.
func (e Engine) Compute(in Input) Result {
	p := e.params
	if len(in.Front) == 0 || len(in.Front) < p.MinScoringLandmarks {
		return e.fallback(in)
	}

	views := e.views(in)
	table := cohort.For(in.Cohort)

	diags := make([]MetricDiagnostic, 0, len(e.metrics))
	for _, m := range e.metrics {
		diags = append(diags, e.measure(m, views[m.View], table))
	}

	qp := p.QualityPenalty(in)
	w := p.PenaltyWeights

	frontH := e.pillar(diags, Harmony, landmark.ViewFront, w.Harmony*qp)
	sideH := e.pillar(diags, Harmony, landmark.ViewSide, w.Harmony*qp)
	ang := e.pillar(diags, Angularity, landmark.ViewUnknown, w.Angularity*qp)
	dim := e.pillar(diags, Dimorphism, landmark.ViewUnknown, w.Dimorphism*qp)
	feat := e.pillar(diags, Features, landmark.ViewUnknown, w.Features*qp)

	noSide := len(in.Side) == 0
	sw := p.SideWeightWithSide
	if noSide {
		sw = p.SideWeightNoSide
	}
	harmony := pillarScore{
		score:      frontH.score*(1-sw) + sideH.score*sw,
		confidence: frontH.confidence*(1-sw) + sideH.confidence*sw,
	}

	combined := p.HarmonyWeight*harmony.confidence +
		p.PillarWeight*(ang.confidence+dim.confidence+feat.confidence)
	overall := p.HarmonyWeight*harmony.score +
		p.PillarWeight*(ang.score+dim.score+feat.score)
	overall -= (1 - geometry.Clamp01(combined)) * p.UncertaintyPenalty
	if noSide {
		overall -= p.NoSidePenalty
	}
	overall = geometry.Clamp(overall, 0, 100)
	if !in.sideSupplied() {
		overall = math.Min(overall, p.NoSideCap)
	}

	return Result{
		OverallScore:      round(overall),
		HarmonyScore:      round(harmony.score),
		FrontHarmonyScore: round(frontH.score),
		SideHarmonyScore:  round(sideH.score),
		AngularityScore:   round(ang.score),
		DimorphismScore:   round(dim.score),
		FeaturesScore:     round(feat.score),

		OverallConfidence:      geometry.Clamp01(combined),
		HarmonyConfidence:      harmony.confidence,
		FrontHarmonyConfidence: frontH.confidence,
		SideHarmonyConfidence:  sideH.confidence,
		AngularityConfidence:   ang.confidence,
		DimorphismConfidence:   dim.confidence,
		FeaturesConfidence:     feat.confidence,

		OverallErrorBar:    p.ErrorBar(combined),
		HarmonyErrorBar:    p.ErrorBar(harmony.confidence),
		AngularityErrorBar: p.ErrorBar(ang.confidence),
		DimorphismErrorBar: p.ErrorBar(dim.confidence),
		FeaturesErrorBar:   p.ErrorBar(feat.confidence),

		AngularityAssessments: e.assessments(diags, Angularity),
		DimorphismAssessments: e.assessments(diags, Dimorphism),
		FeaturesAssessments:   e.assessments(diags, Features),
		MetricDiagnostics:     diags,

		QualityPenalty: qp,
		Cohort:         in.Cohort,
	}
}

func (e Engine) views(in Input) map[landmark.View]viewState {
	p := e.params
	overrides := calibration.Overrides(in.Manual, calibration.Registry{})

	front := viewState{
		frame: landmark.NormalizeLevel(
			applyOverrides(in.Front, overrides[landmark.ViewFront]),
			landmark.EyeOuterRight, landmark.EyeOuterLeft),
		quality:     in.FrontQuality,
		usable:      in.FrontQuality.Pose.ValidFront,
		weight:      1,
		calibration: 1 + p.CalibrationBoost*calibration.ConfirmedFraction(in.Manual, landmark.ViewFront),
	}
	if !front.usable {
		front.weight = 0
		front.validity = ValidityFrontPose
	}

	sq := in.SideQuality
	side := viewState{
		frame:       landmark.Normalize(applyOverrides(in.Side, overrides[landmark.ViewSide])),
		quality:     sq,
		calibration: 1 + p.CalibrationBoost*calibration.ConfirmedFraction(in.Manual, landmark.ViewSide),
	}
	switch {
	case len(in.Side) == 0:
		side.validity = ValidityNoSide
	case sq.ReasonCodes.Has(reason.SideDisabled) || sq.ViewWeight < p.SideMinViewWeight:
		side.validity = ValiditySidePose
	default:
		side.usable = true
		side.weight = geometry.Clamp01(sq.ViewWeight)
		if side.weight < 1 {
			side.validity = ValidityThreeQuarter
		}
	}

	return map[landmark.View]viewState{
		landmark.ViewFront: front,
		landmark.ViewSide:  side,
	}
}

func applyOverrides(ls []landmark.Landmark, ov map[int]calibration.Override) []landmark.Landmark {
	if len(ov) == 0 || len(ls) == 0 {
		return ls
	}
	positions := make(map[int]geometry.Point2D, len(ov))
	visibility := make(map[int]float64, len(ov))
	for i, o := range ov {
		positions[i] = geometry.NewPoint2D(o.X, o.Y)
		visibility[i] = o.Confidence
	}
	return landmark.WithOverrides(ls, positions, visibility)
}

func (e Engine) measure(m Metric, v viewState, table cohort.RatioTable) MetricDiagnostic {
	p := e.params
	d := MetricDiagnostic{
		ID:             m.ID,
		Title:          m.Title,
		Pillar:         m.Pillar,
		View:           m.View,
		BaseWeight:     m.BaseWeight,
		ValidityReason: v.validity,
		ReasonCodes:    v.quality.ReasonCodes.With(),
		Insufficient:   true,
	}

	ref, hasRef := table.Get(m.ID)
	d.Ideal = ref.Ideal

	switch {
	case !v.frame.Has(m.Points...):
		if d.ValidityReason == "" {
			d.ValidityReason = ValidityMissingPoints
		}
	default:
		value, ok := m.Measure(v.frame)
		if !ok || math.IsNaN(value) || math.IsInf(value, 0) {
			if d.ValidityReason == "" {
				d.ValidityReason = ValidityDegenerate
			}
			break
		}
		d.Value = value
		if !hasRef || ref.Spread <= 0 {
			d.ValidityReason = ValidityNoBaseline
			break
		}
		z := (value - ref.Ideal) / ref.Spread
		d.Score = 100 * math.Exp(-0.5*z*z)
		d.Confidence = geometry.Clamp01(v.quality.Confidence * m.Reliability *
			meanVisibility(v.frame, m.Points) * v.calibration)
		if v.usable {
			d.Scored = true
			d.Insufficient = false
			d.UsedWeight = m.BaseWeight * v.weight
		}
	}

	if d.Insufficient {
		d.UsedWeight = 0
		d.Scored = false
	}
	d.ErrorBar = p.ErrorBar(d.Confidence)
	return d
}

func meanVisibility(f landmark.Frame, indices []int) float64 {
	if len(indices) == 0 {
		return 1
	}
	vis := make([]float64, 0, len(indices))
	for _, i := range indices {
		l, _ := landmark.At(f.Landmarks, i)
		vis = append(vis, l.Vis())
	}
	return stat.Mean(vis, nil)
}

type pillarScore struct {
	score      float64
	confidence float64
}

// pillar aggregates the scored metrics of one pillar, optionally limited to
// one view (ViewUnknown takes every view). The raw score is the mean metric
// score weighted by usedWeight x confidence; pillar confidence is that
// weight mass relative to the pillar's full base weight.
func (e Engine) pillar(diags []MetricDiagnostic, pl Pillar, view landmark.View, penalty float64) pillarScore {
	p := e.params
	var scores, weights, bases []float64
	for _, d := range diags {
		if d.Pillar != pl || (view != landmark.ViewUnknown && d.View != view) {
			continue
		}
		bases = append(bases, d.BaseWeight)
		if !d.Scored {
			continue
		}
		scores = append(scores, d.Score)
		weights = append(weights, d.UsedWeight*d.Confidence)
	}

	mass := floats.Sum(weights)
	if mass <= 0 {
		return pillarScore{score: p.Stabilize(p.Neutral, 0)}
	}
	raw := stat.Mean(scores, weights)
	conf := geometry.Clamp01(mass / floats.Sum(bases))
	return pillarScore{
		score:      p.Stabilize(raw-penalty, conf),
		confidence: conf,
	}
}

func (e Engine) assessments(diags []MetricDiagnostic, pl Pillar) []Assessment {
	p := e.params
	var out []Assessment
	for _, d := range diags {
		if d.Pillar != pl {
			continue
		}
		a := Assessment{
			ID:           d.ID,
			Title:        d.Title,
			View:         d.View,
			Value:        d.Value,
			Confidence:   d.Confidence,
			Insufficient: d.Insufficient,
		}
		if d.Insufficient {
			a.Score = round(math.Max(p.InsufficientFloor, p.Neutral))
			a.Verdict = VerdictInsufficient
		} else {
			a.Score = round(p.Stabilize(d.Score, d.Confidence))
			a.Verdict = verdict(a.Score)
		}
		out = append(out, a)
	}
	return out
}
