package scoring

import (
	"math"

	"facescore/internal/landmark"
	"facescore/pkg/geometry"
)

// Pillar is one of the four top-level score categories.
type Pillar string

const (
	Harmony    Pillar = "harmony"
	Angularity Pillar = "angularity"
	Dimorphism Pillar = "dimorphism"
	Features   Pillar = "features"
)

// Metric is one named measurement. Measure receives a normalized frame in
// which every index of Points is present.
type Metric struct {
	ID          string
	Title       string
	Pillar      Pillar
	View        landmark.View
	BaseWeight  float64
	Reliability float64
	Points      []int
	Measure     func(f landmark.Frame) (float64, bool)
}

// shape gives metric functions short accessors over one frame.
type shape struct {
	f       landmark.Frame
	forward float64
}

func newShape(f landmark.Frame) shape {
	return shape{f: f, forward: 1}
}

// newProfile orients a side frame so forward(p) grows toward the nose.
func newProfile(f landmark.Frame) shape {
	s := shape{f: f, forward: 1}
	c := geometry.Centroid(landmark.Points(f.Landmarks))
	if tip, ok := f.At(landmark.NoseTip); ok && tip.X < c.X {
		s.forward = -1
	}
	return s
}

func (s shape) p(i int) geometry.Point2D {
	p, _ := s.f.At(i)
	return p
}

func (s shape) dist(a, b int) float64 {
	return s.p(a).Distance(s.p(b))
}

func (s shape) y(i int) float64 { return s.p(i).Y }

func (s shape) fwd(i int) float64 { return s.forward * s.p(i).X }

func (s shape) meanY(a, b int) float64 { return (s.y(a) + s.y(b)) / 2 }

func (s shape) angle(a, vertex, b int) float64 {
	return geometry.AngleAt(s.p(a), s.p(vertex), s.p(b))
}

// tilt returns the elevation of outer above inner in degrees.
func (s shape) tilt(inner, outer int) float64 {
	in, out := s.p(inner), s.p(outer)
	return geometry.Degrees(math.Atan2(in.Y-out.Y, math.Abs(out.X-in.X)))
}

// incline returns the elevation of from->to above the backward horizontal
// of a profile, in degrees.
func (s shape) incline(from, to int) float64 {
	a := geometry.LineAngle(s.p(from), s.p(to))
	if s.forward > 0 {
		a = 180 - a
	}
	return a
}

// ahead returns how far point lies in front of the line a-b.
func (s shape) ahead(point, a, b int) float64 {
	return -s.forward * geometry.SignedDistanceToLine(s.p(point), s.p(a), s.p(b))
}

func (s shape) faceWidth() float64 { return s.dist(landmark.ZygionRight, landmark.ZygionLeft) }

func (s shape) faceHeight() float64 { return s.y(landmark.Menton) - s.y(landmark.Trichion) }

func (s shape) intercanthal() float64 { return s.dist(landmark.EyeInnerRight, landmark.EyeInnerLeft) }

func (s shape) eyeWidth() float64 {
	return (s.dist(landmark.EyeOuterRight, landmark.EyeInnerRight) +
		s.dist(landmark.EyeOuterLeft, landmark.EyeInnerLeft)) / 2
}

func (s shape) ipd() float64 { return s.dist(landmark.PupilRight, landmark.PupilLeft) }

func ratio(num, den float64) (float64, bool) {
	if math.Abs(den) < 1e-9 || math.IsNaN(num) || math.IsNaN(den) {
		return 0, false
	}
	return num / den, true
}

func front(fn func(s shape) (float64, bool)) func(landmark.Frame) (float64, bool) {
	return func(f landmark.Frame) (float64, bool) { return fn(newShape(f)) }
}

func profile(fn func(s shape) (float64, bool)) func(landmark.Frame) (float64, bool) {
	return func(f landmark.Frame) (float64, bool) { return fn(newProfile(f)) }
}

func symmetryPoints() []int {
	pts := make([]int, 0, 2*len(landmark.MirrorPairs))
	for _, mp := range landmark.MirrorPairs {
		pts = append(pts, mp.Right, mp.Left)
	}
	return pts
}

var (
	faceBox   = []int{landmark.ZygionRight, landmark.ZygionLeft, landmark.Trichion, landmark.Menton}
	eyeCorner = []int{landmark.EyeOuterRight, landmark.EyeInnerRight, landmark.EyeOuterLeft, landmark.EyeInnerLeft}
)

func with(base []int, more ...int) []int {
	out := make([]int, 0, len(base)+len(more))
	out = append(out, base...)
	return append(out, more...)
}

// Metrics returns the measurement catalogue in report order.
func Metrics() []Metric {
	return []Metric{
		{
			ID: "symmetry", Title: "Bilateral symmetry", Pillar: Harmony, View: landmark.ViewFront,
			BaseWeight: 1.4, Reliability: 0.95, Points: symmetryPoints(),
			Measure: front(func(s shape) (float64, bool) {
				var sum float64
				for _, mp := range landmark.MirrorPairs {
					r, l := s.p(mp.Right), s.p(mp.Left)
					sum += math.Abs(l.X+r.X-1) + math.Abs(l.Y-r.Y)
				}
				return sum / float64(len(landmark.MirrorPairs)), true
			}),
		},
		{
			ID: "facialThirds", Title: "Facial thirds balance", Pillar: Harmony, View: landmark.ViewFront,
			BaseWeight: 1.0, Reliability: 0.8,
			Points: []int{landmark.Trichion, landmark.Glabella, landmark.Subnasale, landmark.Menton},
			Measure: front(func(s shape) (float64, bool) {
				thirds := [3]float64{
					s.y(landmark.Glabella) - s.y(landmark.Trichion),
					s.y(landmark.Subnasale) - s.y(landmark.Glabella),
					s.y(landmark.Menton) - s.y(landmark.Subnasale),
				}
				mean := (thirds[0] + thirds[1] + thirds[2]) / 3
				var worst float64
				for _, t := range thirds {
					worst = math.Max(worst, math.Abs(t-mean))
				}
				return ratio(worst, mean)
			}),
		},
		{
			ID: "faceHeightWidth", Title: "Face height to width", Pillar: Harmony, View: landmark.ViewFront,
			BaseWeight: 0.8, Reliability: 0.85, Points: faceBox,
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.faceHeight(), s.faceWidth())
			}),
		},
		{
			ID: "eyeSpacing", Title: "Eye spacing", Pillar: Harmony, View: landmark.ViewFront,
			BaseWeight: 0.8, Reliability: 0.9,
			Points: []int{landmark.EyeInnerRight, landmark.EyeInnerLeft, landmark.ZygionRight, landmark.ZygionLeft},
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.intercanthal(), s.faceWidth())
			}),
		},
		{
			ID: "eyeWidthRatio", Title: "Eye width to intercanthal distance", Pillar: Harmony, View: landmark.ViewFront,
			BaseWeight: 0.6, Reliability: 0.85, Points: eyeCorner,
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.eyeWidth(), s.intercanthal())
			}),
		},
		{
			ID: "noseWidthRatio", Title: "Nose width to intercanthal distance", Pillar: Harmony, View: landmark.ViewFront,
			BaseWeight: 0.6, Reliability: 0.85,
			Points: []int{landmark.AlarRight, landmark.AlarLeft, landmark.EyeInnerRight, landmark.EyeInnerLeft},
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.dist(landmark.AlarRight, landmark.AlarLeft), s.intercanthal())
			}),
		},
		{
			ID: "mouthWidthRatio", Title: "Mouth width to nose width", Pillar: Harmony, View: landmark.ViewFront,
			BaseWeight: 0.6, Reliability: 0.85,
			Points: []int{landmark.MouthCornerRight, landmark.MouthCornerLeft, landmark.AlarRight, landmark.AlarLeft},
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.dist(landmark.MouthCornerRight, landmark.MouthCornerLeft), s.dist(landmark.AlarRight, landmark.AlarLeft))
			}),
		},
		{
			ID: "philtrumChinRatio", Title: "Philtrum to chin height", Pillar: Harmony, View: landmark.ViewFront,
			BaseWeight: 0.7, Reliability: 0.8,
			Points: []int{landmark.Subnasale, landmark.LabraleSuperius, landmark.Stomion, landmark.Menton},
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.y(landmark.LabraleSuperius)-s.y(landmark.Subnasale), s.y(landmark.Menton)-s.y(landmark.Stomion))
			}),
		},
		{
			ID: "midfaceRatio", Title: "Midface ratio", Pillar: Harmony, View: landmark.ViewFront,
			BaseWeight: 0.8, Reliability: 0.85,
			Points: []int{landmark.PupilRight, landmark.PupilLeft, landmark.LabraleSuperius},
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.ipd(), s.y(landmark.LabraleSuperius)-s.meanY(landmark.PupilRight, landmark.PupilLeft))
			}),
		},
		{
			ID: "noseLengthRatio", Title: "Nose length to face height", Pillar: Harmony, View: landmark.ViewFront,
			BaseWeight: 0.5, Reliability: 0.8, Points: with(faceBox, landmark.Nasion, landmark.Subnasale),
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.y(landmark.Subnasale)-s.y(landmark.Nasion), s.faceHeight())
			}),
		},
		{
			ID: "jawWidthRatio", Title: "Jaw width to face width", Pillar: Angularity, View: landmark.ViewFront,
			BaseWeight: 1.2, Reliability: 0.8,
			Points: []int{landmark.GonionRight, landmark.GonionLeft, landmark.ZygionRight, landmark.ZygionLeft},
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.dist(landmark.GonionRight, landmark.GonionLeft), s.faceWidth())
			}),
		},
		{
			ID: "jawFrontalAngle", Title: "Frontal jaw angle", Pillar: Angularity, View: landmark.ViewFront,
			BaseWeight: 1.0, Reliability: 0.75,
			Points: []int{landmark.RamusRight, landmark.GonionRight, landmark.RamusLeft, landmark.GonionLeft, landmark.Menton},
			Measure: front(func(s shape) (float64, bool) {
				r := s.angle(landmark.RamusRight, landmark.GonionRight, landmark.Menton)
				l := s.angle(landmark.RamusLeft, landmark.GonionLeft, landmark.Menton)
				return (r + l) / 2, r > 0 && l > 0
			}),
		},
		{
			ID: "chinWidthRatio", Title: "Chin width to jaw width", Pillar: Angularity, View: landmark.ViewFront,
			BaseWeight: 0.6, Reliability: 0.75,
			Points: []int{landmark.ChinRight, landmark.ChinLeft, landmark.GonionRight, landmark.GonionLeft},
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.dist(landmark.ChinRight, landmark.ChinLeft), s.dist(landmark.GonionRight, landmark.GonionLeft))
			}),
		},
		{
			ID: "fWHR", Title: "Facial width to height", Pillar: Dimorphism, View: landmark.ViewFront,
			BaseWeight: 1.2, Reliability: 0.85,
			Points: []int{landmark.ZygionRight, landmark.ZygionLeft, landmark.BrowMidRight, landmark.BrowMidLeft, landmark.LabraleSuperius},
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.faceWidth(), s.y(landmark.LabraleSuperius)-s.meanY(landmark.BrowMidRight, landmark.BrowMidLeft))
			}),
		},
		{
			ID: "browEyeDistance", Title: "Brow to eye distance", Pillar: Dimorphism, View: landmark.ViewFront,
			BaseWeight: 0.9, Reliability: 0.75,
			Points: with(faceBox, landmark.EyeTopRight, landmark.EyeTopLeft, landmark.BrowMidRight, landmark.BrowMidLeft),
			Measure: front(func(s shape) (float64, bool) {
				gap := s.meanY(landmark.EyeTopRight, landmark.EyeTopLeft) - s.meanY(landmark.BrowMidRight, landmark.BrowMidLeft)
				return ratio(gap, s.faceHeight())
			}),
		},
		{
			ID: "lowerFaceRatio", Title: "Lower face height", Pillar: Dimorphism, View: landmark.ViewFront,
			BaseWeight: 0.8, Reliability: 0.85, Points: with(faceBox, landmark.Subnasale),
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.y(landmark.Menton)-s.y(landmark.Subnasale), s.faceHeight())
			}),
		},
		{
			ID: "cheekboneHeight", Title: "Cheekbone height", Pillar: Dimorphism, View: landmark.ViewFront,
			BaseWeight: 0.6, Reliability: 0.7,
			Points: []int{landmark.Menton, landmark.CheekboneRight, landmark.CheekboneLeft, landmark.EyeOuterRight, landmark.EyeOuterLeft},
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.y(landmark.Menton)-s.meanY(landmark.CheekboneRight, landmark.CheekboneLeft),
					s.y(landmark.Menton)-s.meanY(landmark.EyeOuterRight, landmark.EyeOuterLeft))
			}),
		},
		{
			ID: "canthalTilt", Title: "Canthal tilt", Pillar: Features, View: landmark.ViewFront,
			BaseWeight: 1.0, Reliability: 0.8, Points: eyeCorner,
			Measure: front(func(s shape) (float64, bool) {
				return (s.tilt(landmark.EyeInnerRight, landmark.EyeOuterRight) +
					s.tilt(landmark.EyeInnerLeft, landmark.EyeOuterLeft)) / 2, true
			}),
		},
		{
			ID: "eyeAspectRatio", Title: "Eye aspect ratio", Pillar: Features, View: landmark.ViewFront,
			BaseWeight: 0.8, Reliability: 0.8,
			Points: with(eyeCorner, landmark.EyeTopRight, landmark.EyeBottomRight, landmark.EyeTopLeft, landmark.EyeBottomLeft),
			Measure: front(func(s shape) (float64, bool) {
				h := (s.y(landmark.EyeBottomRight) - s.y(landmark.EyeTopRight) +
					s.y(landmark.EyeBottomLeft) - s.y(landmark.EyeTopLeft)) / 2
				return ratio(h, s.eyeWidth())
			}),
		},
		{
			ID: "nasalIndex", Title: "Nasal index", Pillar: Features, View: landmark.ViewFront,
			BaseWeight: 0.7, Reliability: 0.8,
			Points: []int{landmark.AlarRight, landmark.AlarLeft, landmark.Nasion, landmark.Subnasale},
			Measure: front(func(s shape) (float64, bool) {
				v, ok := ratio(s.dist(landmark.AlarRight, landmark.AlarLeft), s.y(landmark.Subnasale)-s.y(landmark.Nasion))
				return v * 100, ok
			}),
		},
		{
			ID: "lipRatio", Title: "Lower to upper lip", Pillar: Features, View: landmark.ViewFront,
			BaseWeight: 0.7, Reliability: 0.75,
			Points: []int{landmark.LabraleSuperius, landmark.Stomion, landmark.LowerLipInner, landmark.LabraleInferius},
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.y(landmark.LabraleInferius)-s.y(landmark.LowerLipInner), s.y(landmark.Stomion)-s.y(landmark.LabraleSuperius))
			}),
		},
		{
			ID: "esr", Title: "Eye separation ratio", Pillar: Features, View: landmark.ViewFront,
			BaseWeight: 0.6, Reliability: 0.9,
			Points: []int{landmark.PupilRight, landmark.PupilLeft, landmark.ZygionRight, landmark.ZygionLeft},
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.ipd(), s.faceWidth())
			}),
		},
		{
			ID: "browTilt", Title: "Brow tilt", Pillar: Features, View: landmark.ViewFront,
			BaseWeight: 0.4, Reliability: 0.7,
			Points: []int{landmark.BrowInnerRight, landmark.BrowOuterRight, landmark.BrowInnerLeft, landmark.BrowOuterLeft},
			Measure: front(func(s shape) (float64, bool) {
				return (s.tilt(landmark.BrowInnerRight, landmark.BrowOuterRight) +
					s.tilt(landmark.BrowInnerLeft, landmark.BrowOuterLeft)) / 2, true
			}),
		},
		{
			ID: "intercanthalIpd", Title: "Intercanthal to interpupillary distance", Pillar: Harmony, View: landmark.ViewFront,
			BaseWeight: 0.5, Reliability: 0.85,
			Points: []int{landmark.EyeInnerRight, landmark.EyeInnerLeft, landmark.PupilRight, landmark.PupilLeft},
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.intercanthal(), s.ipd())
			}),
		},
		{
			ID: "mouthFaceWidth", Title: "Mouth width to face width", Pillar: Harmony, View: landmark.ViewFront,
			BaseWeight: 0.5, Reliability: 0.85,
			Points: []int{landmark.MouthCornerRight, landmark.MouthCornerLeft, landmark.ZygionRight, landmark.ZygionLeft},
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.dist(landmark.MouthCornerRight, landmark.MouthCornerLeft), s.faceWidth())
			}),
		},
		{
			ID: "noseFaceWidth", Title: "Nose width to face width", Pillar: Harmony, View: landmark.ViewFront,
			BaseWeight: 0.5, Reliability: 0.85,
			Points: []int{landmark.AlarRight, landmark.AlarLeft, landmark.ZygionRight, landmark.ZygionLeft},
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.dist(landmark.AlarRight, landmark.AlarLeft), s.faceWidth())
			}),
		},
		{
			ID: "eyeFifth", Title: "Eye width to face width", Pillar: Harmony, View: landmark.ViewFront,
			BaseWeight: 0.5, Reliability: 0.85, Points: with(eyeCorner, landmark.ZygionRight, landmark.ZygionLeft),
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.eyeWidth(), s.faceWidth())
			}),
		},
		{
			ID: "upperThird", Title: "Upper third height", Pillar: Harmony, View: landmark.ViewFront,
			BaseWeight: 0.5, Reliability: 0.7, Points: with(faceBox, landmark.Glabella),
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.y(landmark.Glabella)-s.y(landmark.Trichion), s.faceHeight())
			}),
		},
		{
			ID: "middleThird", Title: "Middle third height", Pillar: Harmony, View: landmark.ViewFront,
			BaseWeight: 0.5, Reliability: 0.8, Points: with(faceBox, landmark.Glabella, landmark.Subnasale),
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.y(landmark.Subnasale)-s.y(landmark.Glabella), s.faceHeight())
			}),
		},
		{
			ID: "bitragalRatio", Title: "Bitragal to bizygomatic width", Pillar: Harmony, View: landmark.ViewFront,
			BaseWeight: 0.4, Reliability: 0.7,
			Points: []int{landmark.TragusRight, landmark.TragusLeft, landmark.ZygionRight, landmark.ZygionLeft},
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.dist(landmark.TragusRight, landmark.TragusLeft), s.faceWidth())
			}),
		},
		{
			ID: "bitemporalRatio", Title: "Bitemporal to bizygomatic width", Pillar: Angularity, View: landmark.ViewFront,
			BaseWeight: 0.6, Reliability: 0.75,
			Points: []int{landmark.TempleRight, landmark.TempleLeft, landmark.ZygionRight, landmark.ZygionLeft},
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.dist(landmark.TempleRight, landmark.TempleLeft), s.faceWidth())
			}),
		},
		{
			ID: "mandibleLength", Title: "Mandible length to face height", Pillar: Angularity, View: landmark.ViewFront,
			BaseWeight: 0.7, Reliability: 0.75, Points: with(faceBox, landmark.GonionRight, landmark.GonionLeft),
			Measure: front(func(s shape) (float64, bool) {
				return ratio((s.dist(landmark.GonionRight, landmark.Menton)+s.dist(landmark.GonionLeft, landmark.Menton))/2, s.faceHeight())
			}),
		},
		{
			ID: "chinAngle", Title: "Mandibular chin angle", Pillar: Angularity, View: landmark.ViewFront,
			BaseWeight: 0.8, Reliability: 0.75,
			Points: []int{landmark.GonionRight, landmark.Menton, landmark.GonionLeft},
			Measure: front(func(s shape) (float64, bool) {
				a := s.angle(landmark.GonionRight, landmark.Menton, landmark.GonionLeft)
				return a, a > 0
			}),
		},
		{
			ID: "chinPhiltrumRatio", Title: "Chin height to philtrum", Pillar: Dimorphism, View: landmark.ViewFront,
			BaseWeight: 0.7, Reliability: 0.8,
			Points: []int{landmark.Subnasale, landmark.LabraleSuperius, landmark.LabraleInferius, landmark.Menton},
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.y(landmark.Menton)-s.y(landmark.LabraleInferius), s.y(landmark.LabraleSuperius)-s.y(landmark.Subnasale))
			}),
		},
		{
			ID: "chinFaceWidth", Title: "Chin width to face width", Pillar: Dimorphism, View: landmark.ViewFront,
			BaseWeight: 0.5, Reliability: 0.75,
			Points: []int{landmark.ChinRight, landmark.ChinLeft, landmark.ZygionRight, landmark.ZygionLeft},
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.dist(landmark.ChinRight, landmark.ChinLeft), s.faceWidth())
			}),
		},
		{
			ID: "cheekboneWidthRatio", Title: "Cheekbone to bizygomatic width", Pillar: Dimorphism, View: landmark.ViewFront,
			BaseWeight: 0.6, Reliability: 0.75,
			Points: []int{landmark.CheekboneRight, landmark.CheekboneLeft, landmark.ZygionRight, landmark.ZygionLeft},
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.dist(landmark.CheekboneRight, landmark.CheekboneLeft), s.faceWidth())
			}),
		},
		{
			ID: "facialIndex", Title: "Facial index", Pillar: Dimorphism, View: landmark.ViewFront,
			BaseWeight: 0.8, Reliability: 0.8,
			Points: []int{landmark.Nasion, landmark.Menton, landmark.ZygionRight, landmark.ZygionLeft},
			Measure: front(func(s shape) (float64, bool) {
				v, ok := ratio(s.y(landmark.Menton)-s.y(landmark.Nasion), s.faceWidth())
				return v * 100, ok
			}),
		},
		{
			ID: "upperLipHeight", Title: "Upper lip height", Pillar: Features, View: landmark.ViewFront,
			BaseWeight: 0.5, Reliability: 0.75, Points: with(faceBox, landmark.LabraleSuperius, landmark.Stomion),
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.y(landmark.Stomion)-s.y(landmark.LabraleSuperius), s.faceHeight())
			}),
		},
		{
			ID: "lowerLipHeight", Title: "Lower lip height", Pillar: Features, View: landmark.ViewFront,
			BaseWeight: 0.5, Reliability: 0.75, Points: with(faceBox, landmark.LowerLipInner, landmark.LabraleInferius),
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.y(landmark.LabraleInferius)-s.y(landmark.LowerLipInner), s.faceHeight())
			}),
		},
		{
			ID: "mouthIpdRatio", Title: "Mouth width to interpupillary distance", Pillar: Features, View: landmark.ViewFront,
			BaseWeight: 0.5, Reliability: 0.85,
			Points: []int{landmark.MouthCornerRight, landmark.MouthCornerLeft, landmark.PupilRight, landmark.PupilLeft},
			Measure: front(func(s shape) (float64, bool) {
				return ratio(s.dist(landmark.MouthCornerRight, landmark.MouthCornerLeft), s.ipd())
			}),
		},
		{
			ID: "mouthCornerTilt", Title: "Mouth corner tilt", Pillar: Features, View: landmark.ViewFront,
			BaseWeight: 0.4, Reliability: 0.7,
			Points: []int{landmark.Stomion, landmark.MouthCornerRight, landmark.MouthCornerLeft},
			Measure: front(func(s shape) (float64, bool) {
				return (s.tilt(landmark.Stomion, landmark.MouthCornerRight) +
					s.tilt(landmark.Stomion, landmark.MouthCornerLeft)) / 2, true
			}),
		},
		{
			ID: "browLength", Title: "Brow length to eye width", Pillar: Features, View: landmark.ViewFront,
			BaseWeight: 0.4, Reliability: 0.7,
			Points: with(eyeCorner, landmark.BrowInnerRight, landmark.BrowOuterRight, landmark.BrowInnerLeft, landmark.BrowOuterLeft),
			Measure: front(func(s shape) (float64, bool) {
				brow := (s.dist(landmark.BrowInnerRight, landmark.BrowOuterRight) + s.dist(landmark.BrowInnerLeft, landmark.BrowOuterLeft)) / 2
				return ratio(brow, s.eyeWidth())
			}),
		},
		{
			ID: "browArch", Title: "Brow arch height", Pillar: Features, View: landmark.ViewFront,
			BaseWeight: 0.4, Reliability: 0.7,
			Points: with(eyeCorner, landmark.BrowInnerRight, landmark.BrowInnerLeft, landmark.BrowPeakRight, landmark.BrowPeakLeft),
			Measure: front(func(s shape) (float64, bool) {
				rise := s.meanY(landmark.BrowInnerRight, landmark.BrowInnerLeft) - s.meanY(landmark.BrowPeakRight, landmark.BrowPeakLeft)
				return ratio(rise, s.eyeWidth())
			}),
		},

		{
			ID: "gonialAngleAvg", Title: "Gonial angle", Pillar: Angularity, View: landmark.ViewSide,
			BaseWeight: 1.3, Reliability: 0.8,
			Points: []int{landmark.RamusRight, landmark.GonionRight, landmark.Menton},
			Measure: profile(func(s shape) (float64, bool) {
				a := s.angle(landmark.RamusRight, landmark.GonionRight, landmark.Menton)
				if s.f.Has(landmark.GonionLeft) {
					a = (a + s.angle(landmark.RamusRight, landmark.GonionLeft, landmark.Menton)) / 2
				}
				return a, a > 0
			}),
		},
		{
			ID: "ramusRatio", Title: "Ramus to mandible length", Pillar: Angularity, View: landmark.ViewSide,
			BaseWeight: 0.7, Reliability: 0.7,
			Points: []int{landmark.ProfileTragus, landmark.GonionRight, landmark.Menton},
			Measure: profile(func(s shape) (float64, bool) {
				return ratio(s.dist(landmark.ProfileTragus, landmark.GonionRight), s.dist(landmark.GonionRight, landmark.Menton))
			}),
		},
		{
			ID: "chinProjection", Title: "Chin projection", Pillar: Dimorphism, View: landmark.ViewSide,
			BaseWeight: 1.0, Reliability: 0.8,
			Points: []int{landmark.Pogonion, landmark.Subnasale, landmark.Trichion, landmark.Menton},
			Measure: profile(func(s shape) (float64, bool) {
				return ratio(s.fwd(landmark.Pogonion)-s.fwd(landmark.Subnasale), s.faceHeight())
			}),
		},
		{
			ID: "facialConvexity", Title: "Facial convexity", Pillar: Harmony, View: landmark.ViewSide,
			BaseWeight: 1.0, Reliability: 0.85,
			Points: []int{landmark.Glabella, landmark.Subnasale, landmark.Pogonion},
			Measure: profile(func(s shape) (float64, bool) {
				a := s.angle(landmark.Glabella, landmark.Subnasale, landmark.Pogonion)
				return a, a > 0
			}),
		},
		{
			ID: "nasofrontalAngle", Title: "Nasofrontal angle", Pillar: Features, View: landmark.ViewSide,
			BaseWeight: 0.6, Reliability: 0.75,
			Points: []int{landmark.Glabella, landmark.Nasion, landmark.NoseDorsum},
			Measure: profile(func(s shape) (float64, bool) {
				a := s.angle(landmark.Glabella, landmark.Nasion, landmark.NoseDorsum)
				return a, a > 0
			}),
		},
		{
			ID: "nasolabialAngle", Title: "Nasolabial angle", Pillar: Features, View: landmark.ViewSide,
			BaseWeight: 0.8, Reliability: 0.75,
			Points: []int{landmark.Columella, landmark.Subnasale, landmark.LabraleSuperius},
			Measure: profile(func(s shape) (float64, bool) {
				a := s.angle(landmark.Columella, landmark.Subnasale, landmark.LabraleSuperius)
				return a, a > 0
			}),
		},
		{
			ID: "mentolabialAngle", Title: "Mentolabial angle", Pillar: Harmony, View: landmark.ViewSide,
			BaseWeight: 0.6, Reliability: 0.7,
			Points: []int{landmark.LabraleInferius, landmark.Labiomental, landmark.Pogonion},
			Measure: profile(func(s shape) (float64, bool) {
				a := s.angle(landmark.LabraleInferius, landmark.Labiomental, landmark.Pogonion)
				return a, a > 0
			}),
		},
		{
			ID: "eLineLips", Title: "Lower lip to E-line", Pillar: Harmony, View: landmark.ViewSide,
			BaseWeight: 0.6, Reliability: 0.75,
			Points: []int{landmark.Pronasale, landmark.Pogonion, landmark.LabraleInferius, landmark.Trichion, landmark.Menton},
			Measure: profile(func(s shape) (float64, bool) {
				a, b := s.p(landmark.Pronasale), s.p(landmark.Pogonion)
				if math.Abs(b.Y-a.Y) < 1e-9 {
					return 0, false
				}
				lip := s.p(landmark.LabraleInferius)
				t := (lip.Y - a.Y) / (b.Y - a.Y)
				lineX := a.X + t*(b.X-a.X)
				return ratio(s.forward*(lip.X-lineX), s.faceHeight())
			}),
		},
		{
			ID: "goodeRatio", Title: "Goode nasal projection", Pillar: Features, View: landmark.ViewSide,
			BaseWeight: 0.6, Reliability: 0.7,
			Points: []int{landmark.NoseTip, landmark.AlarRight, landmark.Nasion},
			Measure: profile(func(s shape) (float64, bool) {
				return ratio(s.fwd(landmark.NoseTip)-s.fwd(landmark.AlarRight), s.dist(landmark.Nasion, landmark.NoseTip))
			}),
		},
		{
			ID: "eLineUpperLip", Title: "Upper lip to E-line", Pillar: Harmony, View: landmark.ViewSide,
			BaseWeight: 0.5, Reliability: 0.7,
			Points: []int{landmark.Pronasale, landmark.Pogonion, landmark.LabraleSuperius, landmark.Trichion, landmark.Menton},
			Measure: profile(func(s shape) (float64, bool) {
				return ratio(s.ahead(landmark.LabraleSuperius, landmark.Pronasale, landmark.Pogonion), s.faceHeight())
			}),
		},
		{
			ID: "sLineLowerLip", Title: "Lower lip to S-line", Pillar: Harmony, View: landmark.ViewSide,
			BaseWeight: 0.5, Reliability: 0.7,
			Points: []int{landmark.Columella, landmark.Pogonion, landmark.LabraleInferius, landmark.Trichion, landmark.Menton},
			Measure: profile(func(s shape) (float64, bool) {
				return ratio(s.ahead(landmark.LabraleInferius, landmark.Columella, landmark.Pogonion), s.faceHeight())
			}),
		},
		{
			ID: "ramusInclination", Title: "Ramus inclination", Pillar: Angularity, View: landmark.ViewSide,
			BaseWeight: 0.5, Reliability: 0.7,
			Points: []int{landmark.GonionRight, landmark.ProfileTragus},
			Measure: profile(func(s shape) (float64, bool) {
				return s.incline(landmark.GonionRight, landmark.ProfileTragus), true
			}),
		},
		{
			ID: "mandibularPlane", Title: "Mandibular plane angle", Pillar: Angularity, View: landmark.ViewSide,
			BaseWeight: 0.8, Reliability: 0.75,
			Points: []int{landmark.Menton, landmark.GonionRight},
			Measure: profile(func(s shape) (float64, bool) {
				return s.incline(landmark.Menton, landmark.GonionRight), true
			}),
		},
		{
			ID: "lipChinProjection", Title: "Lower lip ahead of chin", Pillar: Dimorphism, View: landmark.ViewSide,
			BaseWeight: 0.6, Reliability: 0.75,
			Points: []int{landmark.LabraleInferius, landmark.Pogonion, landmark.Trichion, landmark.Menton},
			Measure: profile(func(s shape) (float64, bool) {
				return ratio(s.fwd(landmark.LabraleInferius)-s.fwd(landmark.Pogonion), s.faceHeight())
			}),
		},
		{
			ID: "foreheadInclination", Title: "Forehead inclination", Pillar: Dimorphism, View: landmark.ViewSide,
			BaseWeight: 0.5, Reliability: 0.7,
			Points: []int{landmark.Glabella, landmark.ForeheadCenter},
			Measure: profile(func(s shape) (float64, bool) {
				return 90 - s.incline(landmark.Glabella, landmark.ForeheadCenter), true
			}),
		},
		{
			ID: "nasalProjection", Title: "Nasal tip projection", Pillar: Features, View: landmark.ViewSide,
			BaseWeight: 0.5, Reliability: 0.75,
			Points: []int{landmark.NoseTip, landmark.Subnasale, landmark.Trichion, landmark.Menton},
			Measure: profile(func(s shape) (float64, bool) {
				return ratio(s.fwd(landmark.NoseTip)-s.fwd(landmark.Subnasale), s.faceHeight())
			}),
		},
		{
			ID: "nasalTipAngle", Title: "Nasal tip angle", Pillar: Features, View: landmark.ViewSide,
			BaseWeight: 0.5, Reliability: 0.7,
			Points: []int{landmark.NoseDorsum, landmark.NoseTip, landmark.Columella},
			Measure: profile(func(s shape) (float64, bool) {
				a := s.angle(landmark.NoseDorsum, landmark.NoseTip, landmark.Columella)
				return a, a > 0
			}),
		},
	}
}
