package analysis

import (
	"testing"

	"facescore/internal/calibration"
	"facescore/internal/cohort"
	"facescore/internal/config"
	"facescore/internal/landmark"
	"facescore/internal/landmark/landmarktest"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const (
	width  = 1080
	height = 1440
)

func request() Request {
	return Request{
		Front: Photo{
			Landmarks: landmarktest.Front(),
			Matrix:    landmarktest.RotationMatrix(0, 0, 0),
			Width:     width,
			Height:    height,
		},
		Side: &Photo{
			Landmarks: landmarktest.Side(),
			Matrix:    landmarktest.RotationMatrix(80, 6, 12),
			Width:     width,
			Height:    height,
		},
		Cohort: cohort.Key{Ethnicity: "european", Gender: "female", AgeBand: "under_30"},
	}
}

func TestAnalyzeFullPass(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	a := New(config.Default(), WithLogger(zap.New(core)))

	rep := a.Analyze(request())
	require.Len(t, rep.ID, 26)
	require.True(t, rep.Front.Quality.OK, rep.Front.Quality.Errors)
	require.True(t, rep.Front.Pose.ValidFront)
	require.NotNil(t, rep.Side)
	require.True(t, rep.Side.Pose.ValidSide)

	require.False(t, rep.Score.Fallback)
	require.GreaterOrEqual(t, rep.Score.OverallScore, 70)
	require.Equal(t, "european", rep.Score.Cohort.Ethnicity)

	// The hairline always needs a human.
	require.False(t, rep.FrontReady)
	require.Len(t, rep.Calibration, calibration.Default.Len())

	require.Equal(t, 2, logs.FilterMessage("pose resolved").Len())
	require.Equal(t, 1, logs.FilterMessage("analysis complete").Len())
}

func TestAnalyzeAcceptsPixelCoordinates(t *testing.T) {
	a := New(config.Default())
	want := a.Analyze(request())

	req := request()
	px := make([]landmark.Landmark, len(req.Front.Landmarks))
	for i, l := range req.Front.Landmarks {
		l.X *= width
		l.Y *= height
		l.Z *= width
		px[i] = l
	}
	req.Front.Landmarks = px
	got := a.Analyze(req)

	require.InDelta(t, want.Score.OverallScore, got.Score.OverallScore, 1)
	require.InDelta(t, want.Score.OverallConfidence, got.Score.OverallConfidence, 1e-6)
}

func TestAnalyzeResumesManualCalibration(t *testing.T) {
	a := New(config.Default())
	first := a.Analyze(request())

	var manual []calibration.Point
	for _, p := range first.Calibration {
		if p.View == landmark.ViewFront {
			manual = append(manual, calibration.Confirm(p))
		}
	}
	req := request()
	req.Manual = manual
	second := a.Analyze(req)

	require.True(t, second.FrontReady)
	require.NotEqual(t, first.ID, second.ID)
	for _, p := range second.Calibration {
		if p.View == landmark.ViewFront {
			require.True(t, p.Confirmed, p.ID)
		}
	}
}

func TestAnalyzeWithoutLandmarksFallsBack(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	a := New(config.Default(), WithLogger(zap.New(core)))

	rep := a.Analyze(Request{Front: Photo{Width: width, Height: height}})
	require.True(t, rep.Score.Fallback)
	require.False(t, rep.Front.Quality.OK)
	require.Nil(t, rep.Side)
	require.Equal(t, 1, logs.FilterMessage("scored with fallback constants").Len())
}

func TestMergeManualKeepsSeedRequirement(t *testing.T) {
	seeds := []calibration.Point{
		{ID: "front.menton", View: landmark.ViewFront, X: 0.5, Y: 0.8, Required: true},
		{ID: "side.pogonion", View: landmark.ViewSide, X: 0.4, Y: 0.8},
	}
	manual := []calibration.Point{
		{ID: "front.menton", View: landmark.ViewFront, X: 0.5, Y: 0.82, Source: calibration.SourceManual, Confirmed: true},
		{ID: "side.pogonion", View: landmark.ViewFront, X: 0.1, Y: 0.1},
	}
	got := mergeManual(seeds, manual)
	require.Equal(t, 0.82, got[0].Y)
	require.True(t, got[0].Required)
	require.Equal(t, seeds[1], got[1])
}
