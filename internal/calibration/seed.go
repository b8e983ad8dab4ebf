package calibration

import (
	"facescore/internal/landmark"
	"facescore/internal/quality"
	"facescore/internal/reason"
	"facescore/pkg/geometry"
)

// SeedInput carries one detection pass for seeding.
type SeedInput struct {
	// Registry defaults to Default when empty.
	Registry     Registry
	Front        []landmark.Landmark
	Side         []landmark.Landmark
	FrontQuality quality.PhotoQuality
	SideQuality  quality.PhotoQuality
}

// Seed creates one point per registry entry from detector landmarks. Points
// whose mesh index is missing start at the image centre with zero
// confidence. Seed never confirms a point.
func Seed(in SeedInput, p Params) []Point {
	reg := in.Registry
	if reg.Len() == 0 {
		reg = Default
	}

	sideDisabled := in.SideQuality.ViewWeight <= p.SideDisableWeight || in.SideQuality.LandmarkCount == 0

	views := map[landmark.View]viewSeed{
		landmark.ViewFront: newViewSeed(in.Front, in.FrontQuality),
		landmark.ViewSide:  newViewSeed(in.Side, in.SideQuality),
	}

	entries := reg.Entries()
	points := make([]Point, 0, len(entries))
	for _, e := range entries {
		vs, ok := views[e.View]
		if !ok {
			continue
		}
		pt := seedPoint(e, vs, p)
		if e.View == landmark.ViewSide && sideDisabled {
			pt.Required = false
			pt.ReasonCodes = pt.ReasonCodes.With(reason.SideNotSuitable)
		}
		points = append(points, pt)
	}
	return points
}

type viewSeed struct {
	landmarks []landmark.Landmark
	quality   quality.PhotoQuality
	face      geometry.Rect
}

func newViewSeed(ls []landmark.Landmark, q quality.PhotoQuality) viewSeed {
	return viewSeed{
		landmarks: ls,
		quality:   q,
		face:      geometry.BoundingBox(landmark.Points(ls)),
	}
}

func seedPoint(e Entry, vs viewSeed, p Params) Point {
	pt := Point{
		ID:       e.ID,
		View:     e.View,
		X:        0.5,
		Y:        0.5,
		Source:   SourceAuto,
		Required: e.Required,
	}

	l, ok := landmark.Landmark{}, false
	if e.HasMesh() {
		l, ok = landmark.At(vs.landmarks, e.MeshIndex)
	}
	if !ok {
		pt.ReasonCodes = reason.NewSet(reason.NotDetected)
		if e.ForceManual {
			pt.ReasonCodes = pt.ReasonCodes.With(reason.ManualRequired)
		}
		return pt
	}

	pt.X = geometry.Clamp01(l.X)
	pt.Y = geometry.Clamp01(l.Y)

	var codes []reason.Code
	conf := vs.quality.Confidence * l.Vis()

	inherited := vs.quality.ReasonCodes
	if inherited.Has(reason.Occlusion) {
		conf *= p.OcclusionPenalty
		codes = append(codes, reason.Occlusion)
	}
	if inherited.Has(reason.OutOfFrame) {
		conf *= p.OutOfFramePenalty
		codes = append(codes, reason.OutOfFrame)
	}
	if inherited.Has(reason.Blur) {
		conf *= p.BlurPenalty
		codes = append(codes, reason.Blur)
	}

	if pt.X < p.EdgeMargin || pt.X > 1-p.EdgeMargin || pt.Y < p.EdgeMargin || pt.Y > 1-p.EdgeMargin {
		conf *= p.EdgePenalty
		codes = append(codes, reason.NearEdge)
	}

	if e.HairSensitive && vs.face.Height > 0 && (l.Y-vs.face.Y)/vs.face.Height < p.HairlineBand {
		conf *= p.HairPenalty
		codes = append(codes, reason.HairRisk)
	}

	if e.ForceManual {
		conf = min(conf, p.ForceManualCap)
		codes = append(codes, reason.ManualRequired)
	}

	pt.Confidence = geometry.Clamp01(conf)
	pt.ReasonCodes = reason.NewSet(codes...)
	return pt
}
