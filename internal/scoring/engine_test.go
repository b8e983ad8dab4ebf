package scoring

import (
	"math"
	"testing"

	"facescore/internal/calibration"
	"facescore/internal/cohort"
	"facescore/internal/landmark"
	"facescore/internal/landmark/landmarktest"
	"facescore/internal/pose"
	"facescore/internal/quality"
	"facescore/internal/reason"

	"github.com/stretchr/testify/require"
)

func photoQuality(view landmark.View, ls []landmark.Landmark, yaw, pitch, roll, conf float64) quality.PhotoQuality {
	est := pose.Classify(yaw, pitch, roll, pose.SourceMatrix, conf, pose.DefaultParams())
	return quality.Evaluate(quality.Input{
		View:        view,
		Landmarks:   ls,
		ImageWidth:  1080,
		ImageHeight: 1440,
		Pose:        est,
	}, quality.DefaultParams()).Quality
}

func baseInput() Input {
	front, side := landmarktest.Front(), landmarktest.Side()
	return Input{
		Front:        front,
		Side:         side,
		FrontQuality: photoQuality(landmark.ViewFront, front, 2, 0, 0, 0.95),
		SideQuality:  photoQuality(landmark.ViewSide, side, 80, 0, 0, 0.95),
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestComputeProportionateFace(t *testing.T) {
	r := NewEngine(DefaultParams()).Compute(baseInput())

	require.False(t, r.Fallback)
	require.Zero(t, r.QualityPenalty)
	require.Len(t, r.MetricDiagnostics, len(Metrics()))
	for _, d := range r.MetricDiagnostics {
		require.True(t, d.Scored, d.ID)
		require.False(t, d.Insufficient, d.ID)
		require.Equal(t, d.BaseWeight, d.UsedWeight, d.ID)
		require.Greater(t, d.Score, 80.0, d.ID)
	}
	require.GreaterOrEqual(t, r.OverallScore, 75)
	require.LessOrEqual(t, r.OverallScore, 95)
	require.GreaterOrEqual(t, r.HarmonyScore, 75)
	require.Greater(t, r.OverallConfidence, 0.7)
	require.Less(t, r.OverallErrorBar, 8.0)

	sym, ok := r.Diagnostic("symmetry")
	require.True(t, ok)
	require.InDelta(t, 0, sym.Value, 1e-9)
	require.InDelta(t, 100, sym.Score, 1e-6)
}

func TestScaleAndTranslationInvariance(t *testing.T) {
	engine := NewEngine(DefaultParams())
	base := engine.Compute(baseInput())

	front := landmarktest.Transform(landmarktest.Front(), 0.8, 0.07, 0.07)
	side := landmarktest.Transform(landmarktest.Side(), 0.8, 0.07, 0.07)
	moved := engine.Compute(Input{
		Front:        front,
		Side:         side,
		FrontQuality: photoQuality(landmark.ViewFront, front, 2, 0, 0, 0.95),
		SideQuality:  photoQuality(landmark.ViewSide, side, 80, 0, 0, 0.95),
	})

	require.LessOrEqual(t, abs(base.OverallScore-moved.OverallScore), 1)
	require.LessOrEqual(t, abs(base.HarmonyScore-moved.HarmonyScore), 1)
	require.LessOrEqual(t, abs(base.AngularityScore-moved.AngularityScore), 1)
	for i, d := range base.MetricDiagnostics {
		require.InDelta(t, d.Value, moved.MetricDiagnostics[i].Value, 1e-9, d.ID)
	}
}

func TestSmallPoseChangeIsStable(t *testing.T) {
	engine := NewEngine(DefaultParams())
	in := baseInput()
	a := engine.Compute(in)

	in.FrontQuality = photoQuality(landmark.ViewFront, in.Front, 8, 6, 2, 0.88)
	require.True(t, in.FrontQuality.Pose.ValidFront)
	b := engine.Compute(in)

	require.LessOrEqual(t, abs(a.OverallScore-b.OverallScore), 8)
	require.LessOrEqual(t, abs(a.HarmonyScore-b.HarmonyScore), 20)
}

func TestSideDisabledDegradesGracefully(t *testing.T) {
	in := baseInput()
	in.SideQuality = photoQuality(landmark.ViewSide, in.Side, 35, 0, 0, 0.9)
	require.True(t, in.SideQuality.ReasonCodes.Has(reason.SideDisabled))

	r := NewEngine(DefaultParams()).Compute(in)
	for _, d := range r.MetricDiagnostics {
		if d.View != landmark.ViewSide {
			continue
		}
		require.False(t, d.Scored, d.ID)
		require.True(t, d.Insufficient, d.ID)
		require.Zero(t, d.UsedWeight, d.ID)
		require.Equal(t, ValiditySidePose, d.ValidityReason, d.ID)
	}
	for _, list := range [][]Assessment{r.AngularityAssessments, r.DimorphismAssessments, r.FeaturesAssessments} {
		for _, a := range list {
			if a.Insufficient {
				require.GreaterOrEqual(t, a.Score, 50, a.ID)
				require.Equal(t, VerdictInsufficient, a.Verdict)
			}
		}
	}
	require.GreaterOrEqual(t, r.OverallScore, 45)
	require.Equal(t, 56, r.SideHarmonyScore)
	require.Zero(t, r.SideHarmonyConfidence)
}

func TestThreeQuarterSideGetsPartialCredit(t *testing.T) {
	in := baseInput()
	in.SideQuality = photoQuality(landmark.ViewSide, in.Side, 42, 0, 0, 0.9)
	require.True(t, in.SideQuality.ReasonCodes.Has(reason.ThreeQuarter))
	w := in.SideQuality.ViewWeight
	require.Greater(t, w, 0.2)
	require.Less(t, w, 1.0)

	r := NewEngine(DefaultParams()).Compute(in)
	scored := 0
	for _, d := range r.MetricDiagnostics {
		if d.View != landmark.ViewSide {
			continue
		}
		require.True(t, d.Scored, d.ID)
		require.InDelta(t, d.BaseWeight*w, d.UsedWeight, 1e-12, d.ID)
		require.Equal(t, ValidityThreeQuarter, d.ValidityReason)
		scored++
	}
	require.Positive(t, scored)
	require.Positive(t, r.QualityPenalty)
}

func TestInvalidFrontPoseMarksFrontInsufficient(t *testing.T) {
	in := baseInput()
	in.FrontQuality = photoQuality(landmark.ViewFront, in.Front, 25, 0, 0, 0.9)

	r := NewEngine(DefaultParams()).Compute(in)
	d, ok := r.Diagnostic("fWHR")
	require.True(t, ok)
	require.True(t, d.Insufficient)
	require.Equal(t, ValidityFrontPose, d.ValidityReason)
	require.NotZero(t, d.Value, "value is still reported for transparency")
	require.Zero(t, r.FrontHarmonyConfidence)
}

func TestFrontRollDoesNotInvalidateScoring(t *testing.T) {
	in := baseInput()
	in.FrontQuality = photoQuality(landmark.ViewFront, in.Front, 4, -5, 29, 0.9)
	require.True(t, in.FrontQuality.Pose.ValidFront)

	r := NewEngine(DefaultParams()).Compute(in)
	d, _ := r.Diagnostic("symmetry")
	require.True(t, d.Scored)
	require.True(t, d.ReasonCodes.Has(reason.RollTilt))
}

func TestEmptyFrontReturnsFallback(t *testing.T) {
	r := NewEngine(DefaultParams()).Compute(Input{})

	require.True(t, r.Fallback)
	require.Equal(t, 34, r.OverallScore)
	require.Equal(t, 38, r.HarmonyScore)
	require.Equal(t, 38, r.FrontHarmonyScore)
	require.Equal(t, 38, r.SideHarmonyScore)
	require.Equal(t, 33, r.AngularityScore)
	require.Equal(t, 35, r.DimorphismScore)
	require.Equal(t, 34, r.FeaturesScore)
	require.Equal(t, 0.1, r.OverallConfidence)
	require.Equal(t, 24.0, r.OverallErrorBar)
	require.Len(t, r.MetricDiagnostics, len(Metrics()))
	for _, a := range r.AngularityAssessments {
		require.GreaterOrEqual(t, a.Score, 50)
	}
}

func TestNoSidePhotoIsCapped(t *testing.T) {
	in := baseInput()
	in.Side = nil
	in.SideQuality = quality.PhotoQuality{}

	r := NewEngine(DefaultParams()).Compute(in)
	require.LessOrEqual(t, r.OverallScore, 67)
	d, _ := r.Diagnostic("gonialAngleAvg")
	require.True(t, d.Insufficient)
	require.Equal(t, ValidityNoSide, d.ValidityReason)
}

func TestManualCalibrationOverridesAndRaisesConfidence(t *testing.T) {
	engine := NewEngine(DefaultParams())
	in := baseInput()
	before := engine.Compute(in)

	seeds := calibration.Seed(calibration.SeedInput{
		Front:        in.Front,
		Side:         in.Side,
		FrontQuality: in.FrontQuality,
		SideQuality:  in.SideQuality,
	}, calibration.DefaultParams())
	confirmed := make([]calibration.Point, len(seeds))
	for i, p := range seeds {
		confirmed[i] = p
		if p.View == landmark.ViewFront && p.Confidence > 0 {
			confirmed[i] = calibration.Confirm(p)
		}
	}
	in.Manual = confirmed
	after := engine.Compute(in)
	require.Greater(t, after.FrontHarmonyConfidence, before.FrontHarmonyConfidence)

	for i, p := range confirmed {
		if p.ID == "front.menton" {
			confirmed[i] = calibration.MoveTo(p, p.X, p.Y+0.05)
		}
	}
	moved := engine.Compute(in)
	was, _ := after.Diagnostic("faceHeightWidth")
	now, _ := moved.Diagnostic("faceHeightWidth")
	require.Greater(t, now.Value, was.Value)
}

func TestCohortChangesIdeals(t *testing.T) {
	engine := NewEngine(DefaultParams())
	in := baseInput()
	in.Cohort = cohort.Key{Ethnicity: "east_asian", Gender: "male", AgeBand: "under_30"}
	male := engine.Compute(in)
	in.Cohort.Gender = "female"
	female := engine.Compute(in)

	m, _ := male.Diagnostic("fWHR")
	f, _ := female.Diagnostic("fWHR")
	require.Equal(t, m.Value, f.Value)
	require.NotEqual(t, m.Ideal, f.Ideal)
	require.Equal(t, in.Cohort, female.Cohort)
}

func TestEveryMetricHasABaseline(t *testing.T) {
	table := cohort.Baseline("", "", "")
	seen := map[string]bool{}
	for _, m := range Metrics() {
		require.False(t, seen[m.ID], m.ID)
		seen[m.ID] = true
		r, ok := table.Get(m.ID)
		require.True(t, ok, m.ID)
		require.Positive(t, r.Spread, m.ID)
	}
	require.Equal(t, table.Len(), len(seen))
}

func TestStabilize(t *testing.T) {
	p := DefaultParams()
	require.Equal(t, 98.0, p.Stabilize(120, 1))
	require.InDelta(t, 16.8, p.Stabilize(0, 0.7), 1e-9)
	require.Equal(t, 6.0, p.Stabilize(0, 0.9))
	require.Equal(t, 12.0, p.Stabilize(-20, 0.7))
	require.Equal(t, 18.0, p.Stabilize(-50, 0.5))
	require.Equal(t, 22.0, p.Stabilize(-100, 0.4))
	require.Equal(t, 56.0, p.Stabilize(100, 0))
	require.Equal(t, 56.0, p.Stabilize(math.NaN(), 0.5))
	require.InDelta(t, 2.0, p.ErrorBar(1), 1e-12)
	require.InDelta(t, 20.0, p.ErrorBar(0), 1e-12)
}

func TestQualityPenalty(t *testing.T) {
	p := DefaultParams()
	in := baseInput()
	require.Zero(t, p.QualityPenalty(in))

	in.Front = in.Front[:150]
	in.FrontQuality.ReasonCodes = reason.NewSet(reason.Blur, reason.BadPose)
	in.FrontQuality.Pose.ValidFront = false
	// sparse 12 + pose 6 + blur 4 + two issues 3
	require.InDelta(t, 25, p.QualityPenalty(in), 1e-9)

	in.SideQuality.ReasonCodes = reason.NewSet(reason.SideDisabled, reason.Blur, reason.Occlusion, reason.OutOfFrame)
	require.Equal(t, p.MaxQualityPenalty, p.QualityPenalty(in))
}
