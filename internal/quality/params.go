package quality

// Params holds the thresholds and multiplicative penalty factors used by
// Evaluate. Every penalty factor lies in [0.7, 1].
type Params struct {
	// Blur: Laplacian variance on a grayscale copy no longer than BlurMaxSide.
	BlurMaxSide       int     `yaml:"blurMaxSide" validate:"gte=16"`
	BlurThreshold     float64 `yaml:"blurThreshold" validate:"gt=0"`
	BlurPenalty       float64 `yaml:"blurPenalty" validate:"gte=0.7,lte=1"`
	SevereBlurPenalty float64 `yaml:"severeBlurPenalty" validate:"gte=0.7,lte=1"`

	// Framing: minimum margin on each side of the landmark bounding box.
	FrameMargin  float64 `yaml:"frameMargin" validate:"gte=0,lt=0.5"`
	FramePenalty float64 `yaml:"framePenalty" validate:"gte=0.7,lte=1"`

	// Side view weight ramps over |yaw| from SideRampStart to SideRampEnd.
	SideRampStart     float64 `yaml:"sideRampStart" validate:"gte=0"`
	SideRampEnd       float64 `yaml:"sideRampEnd" validate:"gtfield=SideRampStart"`
	SideMinViewWeight float64 `yaml:"sideMinViewWeight" validate:"gte=0,lte=1"`
	SideTiltPenalty   float64 `yaml:"sideTiltPenalty" validate:"gte=0.7,lte=1"`
	// SideTiltPenalty applies when |pitch| or |roll| leaves these limits.
	SideMaxPitch float64 `yaml:"sideMaxPitch" validate:"gt=0"`
	SideMaxRoll  float64 `yaml:"sideMaxRoll" validate:"gt=0"`

	// Pose factors
	InvalidPosePenalty  float64 `yaml:"invalidPosePenalty" validate:"gte=0.7,lte=1"`
	RollPenalty         float64 `yaml:"rollPenalty" validate:"gte=0.7,lte=1"`
	PoseFallbackPenalty float64 `yaml:"poseFallbackPenalty" validate:"gte=0.7,lte=1"`

	// Resolution in pixels of the short side.
	MinResolution     int     `yaml:"minResolution" validate:"gte=0"`
	ResolutionPenalty float64 `yaml:"resolutionPenalty" validate:"gte=0.7,lte=1"`

	TransformedPenalty float64 `yaml:"transformedPenalty" validate:"gte=0.7,lte=1"`

	// Landmark counts. Front photos should carry the full core mesh.
	FrontExpectedLandmarks int     `yaml:"frontExpectedLandmarks" validate:"gte=0"`
	MinLandmarks           int     `yaml:"minLandmarks" validate:"gte=1"`
	LowCountPenalty        float64 `yaml:"lowCountPenalty" validate:"gte=0.7,lte=1"`
	TooFewPenalty          float64 `yaml:"tooFewPenalty" validate:"gte=0.7,lte=1"`
	ValidRatioThreshold    float64 `yaml:"validRatioThreshold" validate:"gte=0,lte=1"`

	// Occlusion from mean detector visibility.
	OcclusionVisibility float64 `yaml:"occlusionVisibility" validate:"gte=0,lte=1"`
	OcclusionPenalty    float64 `yaml:"occlusionPenalty" validate:"gte=0.7,lte=1"`
}

// DefaultParams returns the production quality thresholds.
func DefaultParams() Params {
	return Params{
		BlurMaxSide:       256,
		BlurThreshold:     60,
		BlurPenalty:       0.8,
		SevereBlurPenalty: 0.7,

		FrameMargin:  0.04,
		FramePenalty: 0.85,

		SideRampStart:     25,
		SideRampEnd:       65,
		SideMinViewWeight: 0.2,
		SideTiltPenalty:   0.8,
		SideMaxPitch:      12,
		SideMaxRoll:       10,

		InvalidPosePenalty:  0.7,
		RollPenalty:         0.95,
		PoseFallbackPenalty: 0.9,

		MinResolution:     480,
		ResolutionPenalty: 0.85,

		TransformedPenalty: 0.9,

		FrontExpectedLandmarks: 468,
		MinLandmarks:           60,
		LowCountPenalty:        0.85,
		TooFewPenalty:          0.7,
		ValidRatioThreshold:    0.9,

		OcclusionVisibility: 0.6,
		OcclusionPenalty:    0.85,
	}
}
