package scoring

import (
	"facescore/internal/landmark"
)

// fallback is the fixed low-confidence result for an empty front set.
// Every metric is reported as insufficient so the diagnostics stay complete.
func (e Engine) fallback(in Input) Result {
	fb := e.params.Fallback

	diags := make([]MetricDiagnostic, 0, len(e.metrics))
	for _, m := range e.metrics {
		reasonText := ValidityNoFront
		if m.View == landmark.ViewSide && len(in.Side) == 0 {
			reasonText = ValidityNoSide
		}
		diags = append(diags, MetricDiagnostic{
			ID:             m.ID,
			Title:          m.Title,
			Pillar:         m.Pillar,
			View:           m.View,
			BaseWeight:     m.BaseWeight,
			Insufficient:   true,
			ValidityReason: reasonText,
			ReasonCodes:    in.FrontQuality.ReasonCodes.With(),
			ErrorBar:       fb.ErrorBar,
		})
	}

	return Result{
		OverallScore:      fb.Overall,
		HarmonyScore:      fb.Harmony,
		FrontHarmonyScore: fb.FrontHarmony,
		SideHarmonyScore:  fb.SideHarmony,
		AngularityScore:   fb.Angularity,
		DimorphismScore:   fb.Dimorphism,
		FeaturesScore:     fb.Features,

		OverallConfidence:      fb.Confidence,
		HarmonyConfidence:      fb.Confidence,
		FrontHarmonyConfidence: fb.Confidence,
		SideHarmonyConfidence:  fb.Confidence,
		AngularityConfidence:   fb.Confidence,
		DimorphismConfidence:   fb.Confidence,
		FeaturesConfidence:     fb.Confidence,

		OverallErrorBar:    fb.ErrorBar,
		HarmonyErrorBar:    fb.ErrorBar,
		AngularityErrorBar: fb.ErrorBar,
		DimorphismErrorBar: fb.ErrorBar,
		FeaturesErrorBar:   fb.ErrorBar,

		AngularityAssessments: e.assessments(diags, Angularity),
		DimorphismAssessments: e.assessments(diags, Dimorphism),
		FeaturesAssessments:   e.assessments(diags, Features),
		MetricDiagnostics:     diags,

		QualityPenalty: e.params.MaxQualityPenalty,
		Cohort:         in.Cohort,
		Fallback:       true,
	}
}
