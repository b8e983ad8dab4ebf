// Package analysis runs one detection pass through pose resolution, quality
// evaluation, calibration seeding and scoring.
package analysis

import (
	"image"

	"facescore/internal/calibration"
	"facescore/internal/cohort"
	"facescore/internal/config"
	"facescore/internal/landmark"
	"facescore/internal/logging"
	"facescore/internal/pose"
	"facescore/internal/quality"
	"facescore/internal/scoring"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Photo is the detector output for one photo.
type Photo struct {
	Landmarks []landmark.Landmark `json:"landmarks"`
	// Matrix is the optional 4x4 facial transformation matrix in either
	// row- or column-major order.
	Matrix      []float64 `json:"matrix,omitempty"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Transformed bool      `json:"transformed"`
	// Image is the decoded photo for the blur check; nil skips it.
	Image image.Image `json:"-"`
}

// Request is one front photo, an optional side photo and the context they
// are scored in.
type Request struct {
	Front  Photo               `json:"front"`
	Side   *Photo              `json:"side,omitempty"`
	Cohort cohort.Key          `json:"cohort"`
	Manual []calibration.Point `json:"manual,omitempty"`
}

// ViewReport is the pose and quality verdict for one photo.
type ViewReport struct {
	Pose    pose.Estimate  `json:"pose"`
	Quality quality.Result `json:"quality"`
}

// Report is the full outcome of one pass.
type Report struct {
	ID          string              `json:"id"`
	Front       ViewReport          `json:"front"`
	Side        *ViewReport         `json:"side,omitempty"`
	Calibration []calibration.Point `json:"calibration"`
	FrontReady  bool                `json:"frontReady"`
	SideReady   bool                `json:"sideReady"`
	Score       scoring.Result      `json:"score"`
}

// Analyzer is immutable after construction and safe for concurrent use.
type Analyzer struct {
	tuning config.Tuning
	engine scoring.Engine
	log    *zap.Logger
}

// Option customises an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) { a.log = logging.OrNop(l) }
}

// New returns an analyzer using t.
func New(t config.Tuning, opts ...Option) *Analyzer {
	a := &Analyzer{
		tuning: t,
		engine: scoring.NewEngine(t.Scoring),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the pipeline. It never fails; degenerate input yields
// reason codes and the fallback score.
func (a *Analyzer) Analyze(req Request) Report {
	id := ulid.Make().String()
	log := a.log.With(zap.String("analysis", id))

	front, frontLs := a.view(log, landmark.ViewFront, req.Front)
	report := Report{ID: id, Front: front}

	var sideLs []landmark.Landmark
	sideQuality := quality.PhotoQuality{}
	if req.Side != nil {
		side, ls := a.view(log, landmark.ViewSide, *req.Side)
		report.Side = &side
		sideLs = ls
		sideQuality = side.Quality.Quality
	}

	seeds := calibration.Seed(calibration.SeedInput{
		Front:        frontLs,
		Side:         sideLs,
		FrontQuality: front.Quality.Quality,
		SideQuality:  sideQuality,
	}, a.tuning.Calibration)
	points := mergeManual(seeds, req.Manual)
	report.Calibration = points
	report.FrontReady = calibration.Ready(points, landmark.ViewFront)
	report.SideReady = calibration.Ready(points, landmark.ViewSide)

	report.Score = a.engine.Compute(scoring.Input{
		Front:        frontLs,
		Side:         sideLs,
		FrontQuality: front.Quality.Quality,
		SideQuality:  sideQuality,
		Manual:       req.Manual,
		Cohort:       req.Cohort,
	})

	fields := []zap.Field{
		zap.Int("overall", report.Score.OverallScore),
		zap.Float64("confidence", report.Score.OverallConfidence),
		zap.Float64("qualityPenalty", report.Score.QualityPenalty),
		zap.Stringer("cohort", req.Cohort),
	}
	if report.Score.Fallback {
		log.Warn("scored with fallback constants", fields...)
	} else {
		log.Info("analysis complete", fields...)
	}
	return report
}

func (a *Analyzer) view(log *zap.Logger, v landmark.View, ph Photo) (ViewReport, []landmark.Landmark) {
	ls := landmark.ToImageSpace(ph.Landmarks, ph.Width, ph.Height)
	est := pose.Resolve(ph.Matrix, ls, v, a.tuning.Pose)
	log.Debug("pose resolved",
		zap.Stringer("view", v),
		zap.Float64("yaw", est.Yaw),
		zap.Float64("pitch", est.Pitch),
		zap.Float64("roll", est.Roll),
		zap.String("source", string(est.Source)),
		zap.Float64("confidence", est.Confidence),
	)

	res := quality.Evaluate(quality.Input{
		View:        v,
		Landmarks:   ls,
		ImageWidth:  ph.Width,
		ImageHeight: ph.Height,
		BlurSource:  ph.Image,
		Pose:        est,
		Transformed: ph.Transformed,
	}, a.tuning.Quality)

	if !res.OK || len(res.Warnings) > 0 {
		log.Warn("photo quality issues",
			zap.Stringer("view", v),
			zap.Strings("errors", res.Errors),
			zap.Strings("warnings", res.Warnings),
			zap.Float64("confidence", res.Quality.Confidence),
		)
	}
	return ViewReport{Pose: est, Quality: res}, ls
}

// mergeManual replaces seeded points with stored ones of the same id, so a
// saved calibration resumes on a fresh detection pass.
func mergeManual(seeds, manual []calibration.Point) []calibration.Point {
	if len(manual) == 0 {
		return seeds
	}
	byID := make(map[string]calibration.Point, len(manual))
	for _, p := range manual {
		byID[p.ID] = p
	}
	out := make([]calibration.Point, len(seeds))
	for i, s := range seeds {
		if p, ok := byID[s.ID]; ok && p.View == s.View {
			p.Required = s.Required
			out[i] = p
			continue
		}
		out[i] = s
	}
	return out
}
