package landmark

// Dense mesh size including the refined iris points.
const (
	MeshSize     = 478
	MeshCoreSize = 468
)

// Named indices into the dense face mesh. "Right" and "Left" refer to the
// subject; in an unmirrored front photo the subject's right side appears on
// the image left.
const (
	Trichion       = 10
	ForeheadCenter = 151
	Glabella       = 9
	Nasion         = 168
	NoseBridge     = 6
	NoseDorsum     = 197
	NoseTip        = 1
	Pronasale      = 4
	Columella      = 19
	Subnasale      = 2

	AlarRight       = 98
	AlarLeft        = 327
	AlarCreaseRight = 64
	AlarCreaseLeft  = 294

	LabraleSuperius  = 0
	Stomion          = 13
	LowerLipInner    = 14
	LabraleInferius  = 17
	MouthCornerRight = 61
	MouthCornerLeft  = 291
	CupidPeakRight   = 37
	CupidPeakLeft    = 267
	Labiomental      = 200

	ChinUpper   = 199
	Pogonion    = 175
	Menton      = 152
	ChinRight   = 148
	ChinLeft    = 377
	GonionRight = 172
	GonionLeft  = 397
	JawMidRight = 136
	JawMidLeft  = 365
	JawLowRight = 58
	JawLowLeft  = 288
	RamusRight  = 132
	RamusLeft   = 361

	ZygionRight    = 234
	ZygionLeft     = 454
	CheekboneRight = 116
	CheekboneLeft  = 345
	TempleRight    = 127
	TempleLeft     = 356
	TragusRight    = 93
	TragusLeft     = 323
	OrbitaleRight  = 230

	// In profile the mesh's outer cheek contour point sits at the ear.
	ProfileTragus = ZygionRight

	EyeOuterRight  = 33
	EyeInnerRight  = 133
	EyeTopRight    = 159
	EyeBottomRight = 145
	EyeOuterLeft   = 263
	EyeInnerLeft   = 362
	EyeTopLeft     = 386
	EyeBottomLeft  = 374
	PupilRight     = 468
	PupilLeft      = 473

	BrowInnerRight = 107
	BrowMidRight   = 105
	BrowPeakRight  = 66
	BrowOuterRight = 70
	BrowInnerLeft  = 336
	BrowMidLeft    = 334
	BrowPeakLeft   = 296
	BrowOuterLeft  = 300
)

// MirrorPair is a bilateral pair of mesh indices, subject right first.
type MirrorPair struct {
	Right, Left int
}

// MirrorPairs lists the bilateral points used for symmetry measurement.
var MirrorPairs = []MirrorPair{
	{EyeOuterRight, EyeOuterLeft},
	{EyeInnerRight, EyeInnerLeft},
	{EyeTopRight, EyeTopLeft},
	{EyeBottomRight, EyeBottomLeft},
	{BrowOuterRight, BrowOuterLeft},
	{BrowMidRight, BrowMidLeft},
	{MouthCornerRight, MouthCornerLeft},
	{AlarRight, AlarLeft},
	{ZygionRight, ZygionLeft},
	{GonionRight, GonionLeft},
	{RamusRight, RamusLeft},
	{JawLowRight, JawLowLeft},
}
