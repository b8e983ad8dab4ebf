package calibration

// Params holds the seeding penalties. Factors multiply the seeded
// confidence.
type Params struct {
	EdgeMargin  float64 `yaml:"edgeMargin" validate:"gte=0,lt=0.5"`
	EdgePenalty float64 `yaml:"edgePenalty" validate:"gte=0,lte=1"`

	// HairlineBand is the top fraction of the face height where
	// hair-sensitive points are likely covered.
	HairlineBand float64 `yaml:"hairlineBand" validate:"gte=0,lte=1"`
	HairPenalty  float64 `yaml:"hairPenalty" validate:"gte=0,lte=1"`

	ForceManualCap float64 `yaml:"forceManualCap" validate:"gte=0,lte=1"`

	OcclusionPenalty  float64 `yaml:"occlusionPenalty" validate:"gte=0,lte=1"`
	OutOfFramePenalty float64 `yaml:"outOfFramePenalty" validate:"gte=0,lte=1"`
	BlurPenalty       float64 `yaml:"blurPenalty" validate:"gte=0,lte=1"`

	// The side view is excluded from calibration at or below this weight.
	SideDisableWeight float64 `yaml:"sideDisableWeight" validate:"gte=0,lte=1"`
}

// DefaultParams returns the production seeding penalties.
func DefaultParams() Params {
	return Params{
		EdgeMargin:        0.03,
		EdgePenalty:       0.7,
		HairlineBand:      0.15,
		HairPenalty:       0.6,
		ForceManualCap:    0.45,
		OcclusionPenalty:  0.8,
		OutOfFramePenalty: 0.85,
		BlurPenalty:       0.85,
		SideDisableWeight: 0.1,
	}
}
