package pose

import (
	"math"
	"testing"

	"facescore/internal/landmark"
	"facescore/internal/landmark/landmarktest"

	"github.com/stretchr/testify/require"
)

func TestResolveRowMajorSideMatrix(t *testing.T) {
	p := DefaultParams()
	m := landmarktest.RotationMatrix(80, 6, 12)

	est := Resolve(m, nil, landmark.ViewSide, p)
	require.Equal(t, SourceMatrix, est.Source)
	require.GreaterOrEqual(t, math.Abs(est.Yaw), 65.0)
	require.LessOrEqual(t, math.Abs(est.Pitch), 20.0)
	require.True(t, est.ValidSide)
	require.Equal(t, landmark.ViewSide, est.View)
	require.InDelta(t, 1.0, est.Confidence, 1e-9)
}

func TestResolveColumnMajorSideMatrix(t *testing.T) {
	p := DefaultParams()
	m := landmarktest.RotationMatrixColumnMajor(74, 6, 12)

	est := Resolve(m, nil, landmark.ViewSide, p)
	require.Equal(t, SourceMatrix, est.Source)
	require.GreaterOrEqual(t, math.Abs(est.Yaw), 65.0)
	require.LessOrEqual(t, math.Abs(est.Pitch), 20.0)
	require.True(t, est.ValidSide)
}

func TestCandidatesDecodeBothLayouts(t *testing.T) {
	p := DefaultParams()
	cands, ok := Candidates(landmarktest.RotationMatrixColumnMajor(74, 6, 12), p)
	require.True(t, ok)
	require.Len(t, cands, 2)
	require.Equal(t, RowMajor, cands[0].Layout)
	require.Equal(t, ColumnMajor, cands[1].Layout)

	// The transposed reading is still a side view but fails the roll window.
	require.Equal(t, landmark.ViewSide, cands[0].Estimate.View)
	require.False(t, cands[0].Estimate.ValidSide)
	require.True(t, cands[1].Estimate.ValidSide)
}

func TestPickSkipsLowConfidenceReadings(t *testing.T) {
	p := DefaultParams()
	side := func(layout Layout, yaw, roll, conf float64) Candidate {
		return Candidate{Layout: layout, Estimate: Classify(yaw, 0, roll, SourceMatrix, conf, p)}
	}

	// The valid side reading would win on rank but is too unreliable.
	cands := []Candidate{
		side(RowMajor, 80, 0, 0.1),
		side(ColumnMajor, 75, 25, 0.9),
	}
	best, ok := pick(cands, landmark.ViewSide, p.MinMatrixConfidence)
	require.True(t, ok)
	require.Equal(t, ColumnMajor, best.Layout)

	_, ok = pick([]Candidate{side(RowMajor, 80, 0, 0.1), side(ColumnMajor, 80, 0, 0.15)}, landmark.ViewSide, p.MinMatrixConfidence)
	require.False(t, ok)
}

func TestPickTieBreaksOnConfidence(t *testing.T) {
	p := DefaultParams()
	a := Candidate{Layout: RowMajor, Estimate: Classify(78, 2, 3, SourceMatrix, 0.6, p)}
	b := Candidate{Layout: ColumnMajor, Estimate: Classify(82, 2, 3, SourceMatrix, 0.9, p)}

	best, ok := pick([]Candidate{a, b}, landmark.ViewSide, p.MinMatrixConfidence)
	require.True(t, ok)
	require.Equal(t, ColumnMajor, best.Layout)

	// Equal confidence keeps the first reading.
	b.Estimate.Confidence = a.Estimate.Confidence
	best, _ = pick([]Candidate{a, b}, landmark.ViewSide, p.MinMatrixConfidence)
	require.Equal(t, RowMajor, best.Layout)
}

func TestIdentityMatrixIsFront(t *testing.T) {
	p := DefaultParams()
	est := Resolve(landmarktest.RotationMatrix(0, 0, 0), nil, landmark.ViewFront, p)
	require.Equal(t, SourceMatrix, est.Source)
	require.InDelta(t, 0, est.Yaw, 1e-9)
	require.True(t, est.ValidFront)
	require.False(t, est.ValidSide)
	require.Equal(t, landmark.ViewFront, est.View)
}

func TestSingularMatrix(t *testing.T) {
	p := DefaultParams()
	est, ok := FromMatrix(landmarktest.RotationMatrix(0, 90, 0), landmark.ViewUnknown, p)
	require.True(t, ok)
	require.Zero(t, est.Yaw)
	require.InDelta(t, 90, est.Pitch, 1e-6)
}

func TestFrontRollIsOnlyAWarning(t *testing.T) {
	est := Classify(4, -5, 29, SourceMatrix, 0.9, DefaultParams())
	require.True(t, est.ValidFront)
	require.True(t, est.RollWarning)
	require.Equal(t, landmark.ViewFront, est.View)
}

func TestFrontYawAndPitchInvalidate(t *testing.T) {
	p := DefaultParams()
	require.False(t, Classify(12, 0, 0, SourceMatrix, 1, p).ValidFront)
	require.False(t, Classify(0, -11, 0, SourceMatrix, 1, p).ValidFront)
}

func TestViewClassification(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		yaw  float64
		want landmark.View
	}{
		{0, landmark.ViewFront},
		{-15, landmark.ViewFront},
		{30, landmark.ViewUnknown},
		{-60, landmark.ViewSide},
		{85, landmark.ViewSide},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Classify(tt.yaw, 0, 0, SourceMatrix, 1, p).View, "yaw %.0f", tt.yaw)
	}
}

func TestMalformedMatrixFallsBack(t *testing.T) {
	p := DefaultParams()
	face := landmarktest.Front()

	short := make([]float64, 15)
	est := Resolve(short, face, landmark.ViewFront, p)
	require.Equal(t, SourceFallback, est.Source)
	require.Equal(t, p.FallbackConfidence, est.Confidence)

	bad := landmarktest.RotationMatrix(0, 0, 0)
	bad[5] = math.NaN()
	est = Resolve(bad, face, landmark.ViewFront, p)
	require.Equal(t, SourceFallback, est.Source)

	zero := make([]float64, 16)
	est = Resolve(zero, face, landmark.ViewFront, p)
	require.Equal(t, SourceFallback, est.Source)
}

func TestFallbackOnSymmetricFaceIsFrontal(t *testing.T) {
	est := FromLandmarks(landmarktest.Front(), DefaultParams())
	require.Equal(t, SourceFallback, est.Source)
	require.InDelta(t, 0, est.Yaw, 2.0)
	require.InDelta(t, 0, est.Roll, 1.0)
	require.True(t, est.ValidFront)
}

func TestFallbackDepthAndRoll(t *testing.T) {
	ls := []landmark.Landmark{
		{X: 0.2, Y: 0.5, Z: -0.1},
		{X: 0.3, Y: 0.4, Z: -0.1},
		{X: 0.7, Y: 0.45, Z: 0.1},
		{X: 0.8, Y: 0.6, Z: 0.1},
	}
	est := FromLandmarks(ls, DefaultParams())
	require.Equal(t, SourceFallback, est.Source)
	require.Greater(t, est.Yaw, 45.0)
	require.InDelta(t, math.Atan2(0.1, 0.6)*180/math.Pi, est.Roll, 1e-9)
}

func TestNoInputResolvesToNone(t *testing.T) {
	est := Resolve(nil, nil, landmark.ViewFront, DefaultParams())
	require.Equal(t, SourceNone, est.Source)
	require.Zero(t, est.Confidence)
	require.Equal(t, landmark.ViewUnknown, est.View)
}
