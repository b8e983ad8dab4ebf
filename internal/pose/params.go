package pose

// Params holds the angular tolerances and heuristics used to classify a head
// pose. Angles are in degrees.
type Params struct {
	// View classification by |yaw|
	FrontViewMaxYaw float64 `yaml:"frontViewMaxYaw" validate:"gt=0,lt=90"`
	SideViewMinYaw  float64 `yaml:"sideViewMinYaw" validate:"gt=0,lte=90"`

	// validFront window. Roll beyond FrontMaxRoll only raises a warning.
	FrontMaxYaw   float64 `yaml:"frontMaxYaw" validate:"gt=0"`
	FrontMaxPitch float64 `yaml:"frontMaxPitch" validate:"gt=0"`
	FrontMaxRoll  float64 `yaml:"frontMaxRoll" validate:"gt=0"`

	// validSide window
	SideMinYaw   float64 `yaml:"sideMinYaw" validate:"gt=0,lte=90"`
	SideMaxPitch float64 `yaml:"sideMaxPitch" validate:"gt=0"`
	SideMaxRoll  float64 `yaml:"sideMaxRoll" validate:"gt=0"`

	// Matrix decoding
	SingularThreshold   float64 `yaml:"singularThreshold" validate:"gt=0"`
	MinMatrixConfidence float64 `yaml:"minMatrixConfidence" validate:"gte=0,lte=1"`

	// Landmark fallback: depth difference between half clusters is
	// multiplied by DepthToDegrees and clamped to [-90, 90].
	FallbackConfidence float64 `yaml:"fallbackConfidence" validate:"gte=0,lte=1"`
	DepthToDegrees     float64 `yaml:"depthToDegrees" validate:"gt=0"`
}

// DefaultParams returns the production pose tolerances.
func DefaultParams() Params {
	return Params{
		FrontViewMaxYaw: 15,
		SideViewMinYaw:  60,

		FrontMaxYaw:   10,
		FrontMaxPitch: 10,
		FrontMaxRoll:  7,

		SideMinYaw:   70,
		SideMaxPitch: 12,
		SideMaxRoll:  10,

		SingularThreshold:   1e-6,
		MinMatrixConfidence: 0.2,

		FallbackConfidence: 0.4,
		DepthToDegrees:     300,
	}
}
