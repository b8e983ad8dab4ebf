package scoring

import (
	"facescore/internal/cohort"
	"facescore/internal/landmark"
	"facescore/internal/reason"
)

// Reasons a metric could not be scored, or was scored with partial weight.
const (
	ValidityFrontPose     = "front_pose_invalid"
	ValiditySidePose      = "side_pose_invalid"
	ValidityNoSide        = "no_side_landmarks"
	ValidityThreeQuarter  = "three_quarter_partial"
	ValidityMissingPoints = "missing_landmarks"
	ValidityDegenerate    = "degenerate_geometry"
	ValidityNoBaseline    = "no_baseline"
	ValidityNoFront       = "no_front_landmarks"
)

// MetricDiagnostic records how one metric was measured and weighted.
type MetricDiagnostic struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Pillar         Pillar        `json:"pillar"`
	View           landmark.View `json:"view"`
	Value          float64       `json:"value"`
	Ideal          float64       `json:"ideal"`
	Score          float64       `json:"score"`
	Confidence     float64       `json:"confidence"`
	BaseWeight     float64       `json:"baseWeight"`
	UsedWeight     float64       `json:"usedWeight"`
	Scored         bool          `json:"scored"`
	Insufficient   bool          `json:"insufficient"`
	ValidityReason string        `json:"validityReason,omitempty"`
	ReasonCodes    reason.Set    `json:"reasonCodes"`
	ErrorBar       float64       `json:"errorBar"`
}

// Verdicts for assessments.
const (
	VerdictIdeal        = "ideal"
	VerdictGood         = "good"
	VerdictAverage      = "average"
	VerdictBelowAverage = "below_average"
	VerdictInsufficient = "insufficient_data"
)

// Assessment is the user-facing view of one metric within a pillar.
type Assessment struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	View         landmark.View `json:"view"`
	Value        float64       `json:"value"`
	Score        int           `json:"score"`
	Confidence   float64       `json:"confidence"`
	Insufficient bool          `json:"insufficient"`
	Verdict      string        `json:"verdict"`
}

func verdict(score int) string {
	switch {
	case score >= 85:
		return VerdictIdeal
	case score >= 70:
		return VerdictGood
	case score >= 50:
		return VerdictAverage
	default:
		return VerdictBelowAverage
	}
}

// Result is the outcome of one scoring call. Scores are integers in
// [0, 100]; confidences lie in [0, 1].
type Result struct {
	OverallScore      int `json:"overallScore"`
	HarmonyScore      int `json:"harmonyScore"`
	FrontHarmonyScore int `json:"frontHarmonyScore"`
	SideHarmonyScore  int `json:"sideHarmonyScore"`
	AngularityScore   int `json:"angularityScore"`
	DimorphismScore   int `json:"dimorphismScore"`
	FeaturesScore     int `json:"featuresScore"`

	OverallConfidence      float64 `json:"overallConfidence"`
	HarmonyConfidence      float64 `json:"harmonyConfidence"`
	FrontHarmonyConfidence float64 `json:"frontHarmonyConfidence"`
	SideHarmonyConfidence  float64 `json:"sideHarmonyConfidence"`
	AngularityConfidence   float64 `json:"angularityConfidence"`
	DimorphismConfidence   float64 `json:"dimorphismConfidence"`
	FeaturesConfidence     float64 `json:"featuresConfidence"`

	OverallErrorBar    float64 `json:"overallErrorBar"`
	HarmonyErrorBar    float64 `json:"harmonyErrorBar"`
	AngularityErrorBar float64 `json:"angularityErrorBar"`
	DimorphismErrorBar float64 `json:"dimorphismErrorBar"`
	FeaturesErrorBar   float64 `json:"featuresErrorBar"`

	AngularityAssessments []Assessment       `json:"angularityAssessments"`
	DimorphismAssessments []Assessment       `json:"dimorphismAssessments"`
	FeaturesAssessments   []Assessment       `json:"featuresAssessments"`
	MetricDiagnostics     []MetricDiagnostic `json:"metricDiagnostics"`

	QualityPenalty float64    `json:"qualityPenalty"`
	Cohort         cohort.Key `json:"cohort"`
	Fallback       bool       `json:"fallback"`
}

// Diagnostic returns the diagnostic with the given metric id.
func (r Result) Diagnostic(id string) (MetricDiagnostic, bool) {
	for _, d := range r.MetricDiagnostics {
		if d.ID == id {
			return d, true
		}
	}
	return MetricDiagnostic{}, false
}
