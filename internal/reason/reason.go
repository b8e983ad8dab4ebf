// Package reason holds the stable reason codes that explain quality and
// confidence deductions, and the ordered set type used to accumulate them.
package reason

// Code is a stable short identifier for one deduction.
type Code string

// Severity orders codes for display.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

// Photo quality codes.
const (
	NoLandmarks      Code = "no_landmarks"
	TooFewLandmarks  Code = "too_few_landmarks"
	BadPose          Code = "bad_pose"
	SideDisabled     Code = "side_disabled"
	LowLandmarkCount Code = "low_landmark_count"
	LowValidRatio    Code = "low_valid_ratio"
	OutOfFrame       Code = "out_of_frame"
	Blur             Code = "blur"
	LowResolution    Code = "low_resolution"
	Transformed      Code = "transformed"
	Occlusion        Code = "occlusion"
	RollTilt         Code = "roll_tilt"
	ThreeQuarter     Code = "three_quarter"
	PoseFallback     Code = "pose_fallback"
	PoseMissing      Code = "pose_missing"
)

// Calibration point codes.
const (
	NotDetected     Code = "not_detected"
	NearEdge        Code = "near_edge"
	HairRisk        Code = "hair_risk"
	ManualRequired  Code = "manual_required"
	SideNotSuitable Code = "side_not_suitable"
	ManualAdjusted  Code = "manual_adjusted"
)

type entry struct {
	code     Code
	severity Severity
	message  string
}

// catalogue fixes display order; errors are listed before warnings.
var catalogue = []entry{
	{NoLandmarks, SeverityError, "No face landmarks were detected."},
	{TooFewLandmarks, SeverityError, "Too few face landmarks were detected to measure reliably."},
	{BadPose, SeverityError, "Face is not looking straight at the camera."},
	{SideDisabled, SeverityError, "Side photo is not turned far enough to measure the profile."},

	{LowLandmarkCount, SeverityWarning, "Some face landmarks are missing."},
	{LowValidRatio, SeverityWarning, "Some landmarks fall outside the photo."},
	{OutOfFrame, SeverityWarning, "Face is too close to the photo edge; leave space around the head."},
	{Blur, SeverityWarning, "Photo looks blurry."},
	{LowResolution, SeverityWarning, "Photo resolution is low."},
	{Transformed, SeverityWarning, "Photo was rotated or mirrored before detection."},
	{Occlusion, SeverityWarning, "Part of the face appears covered."},
	{RollTilt, SeverityWarning, "Head is tilted to one side."},
	{ThreeQuarter, SeverityWarning, "Side photo is a three-quarter view; profile measurements get partial weight."},
	{PoseFallback, SeverityWarning, "Head pose was estimated from landmarks only."},
	{PoseMissing, SeverityWarning, "Head pose could not be estimated."},

	{NotDetected, SeverityInfo, "Point was not detected; place it manually."},
	{NearEdge, SeverityInfo, "Point is close to the photo edge."},
	{HairRisk, SeverityInfo, "Point may be hidden by hair."},
	{ManualRequired, SeverityInfo, "Point needs manual placement."},
	{SideNotSuitable, SeverityInfo, "Side photo is not suitable for calibration."},
	{ManualAdjusted, SeverityInfo, "Point was adjusted by hand."},
}

var index = func() map[Code]int {
	m := make(map[Code]int, len(catalogue))
	for i, e := range catalogue {
		m[e.code] = i
	}
	return m
}()

// Known reports whether c is in the catalogue.
func Known(c Code) bool {
	_, ok := index[c]
	return ok
}

// Severity returns the display severity of c. Unknown codes are info.
func (c Code) Severity() Severity {
	if i, ok := index[c]; ok {
		return catalogue[i].severity
	}
	return SeverityInfo
}

// Message returns the human-readable text for c.
func (c Code) Message() string {
	if i, ok := index[c]; ok {
		return catalogue[i].message
	}
	return string(c)
}

// Set is an ordered, duplicate-free collection of codes. The zero value is
// empty and ready to use. Sets are values; With returns a new set.
type Set []Code

// NewSet builds a set from codes.
func NewSet(codes ...Code) Set {
	return Set(nil).With(codes...)
}

// With returns a copy of s with codes added, keeping catalogue order. An
// empty result is nil.
func (s Set) With(codes ...Code) Set {
	if len(s)+len(codes) == 0 {
		return nil
	}
	out := make(Set, 0, len(s)+len(codes))
	out = append(out, s...)
	for _, c := range codes {
		if !out.Has(c) {
			out = append(out, c)
		}
	}
	sortSet(out)
	return out
}

// Has reports whether c is present.
func (s Set) Has(c Code) bool {
	for _, x := range s {
		if x == c {
			return true
		}
	}
	return false
}

// HasAny reports whether any of codes is present.
func (s Set) HasAny(codes ...Code) bool {
	for _, c := range codes {
		if s.Has(c) {
			return true
		}
	}
	return false
}

// Filter returns the codes with the given severity, in order.
func (s Set) Filter(sev Severity) []Code {
	var out []Code
	for _, c := range s {
		if c.Severity() == sev {
			out = append(out, c)
		}
	}
	return out
}

// Messages maps codes one-to-one to their messages.
func Messages(codes []Code) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		out = append(out, c.Message())
	}
	return out
}

// Issues returns one message per code, errors first then warnings then info.
func (s Set) Issues() []string {
	out := make([]string, 0, len(s))
	for _, sev := range []Severity{SeverityError, SeverityWarning, SeverityInfo} {
		out = append(out, Messages(s.Filter(sev))...)
	}
	return out
}

func order(c Code) int {
	if i, ok := index[c]; ok {
		return i
	}
	return len(catalogue)
}

// sortSet is an insertion sort by catalogue position, then by code text for
// codes outside the catalogue. Sets are small.
func sortSet(s Set) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && less(s[j], s[j-1]); j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

func less(a, b Code) bool {
	oa, ob := order(a), order(b)
	if oa != ob {
		return oa < ob
	}
	return a < b
}
