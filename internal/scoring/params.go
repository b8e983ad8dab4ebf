package scoring

// FloorStep sets the lowest reportable score for results whose confidence is
// at least MinConfidence.
type FloorStep struct {
	MinConfidence float64 `yaml:"minConfidence" validate:"gte=0,lte=1"`
	Floor         float64 `yaml:"floor" validate:"gte=0,lte=100"`
}

// PenaltyWeights scale the quality penalty per pillar.
type PenaltyWeights struct {
	Harmony    float64 `yaml:"harmony" validate:"gte=0"`
	Angularity float64 `yaml:"angularity" validate:"gte=0"`
	Dimorphism float64 `yaml:"dimorphism" validate:"gte=0"`
	Features   float64 `yaml:"features" validate:"gte=0"`
}

// Fallback are the scores reported for input too degenerate to measure.
type Fallback struct {
	Overall      int     `yaml:"overall" validate:"gte=0,lte=100"`
	Harmony      int     `yaml:"harmony" validate:"gte=0,lte=100"`
	FrontHarmony int     `yaml:"frontHarmony" validate:"gte=0,lte=100"`
	SideHarmony  int     `yaml:"sideHarmony" validate:"gte=0,lte=100"`
	Angularity   int     `yaml:"angularity" validate:"gte=0,lte=100"`
	Dimorphism   int     `yaml:"dimorphism" validate:"gte=0,lte=100"`
	Features     int     `yaml:"features" validate:"gte=0,lte=100"`
	Confidence   float64 `yaml:"confidence" validate:"gte=0,lte=1"`
	ErrorBar     float64 `yaml:"errorBar" validate:"gte=0"`
}

// Params holds every constant of score computation.
type Params struct {
	// Stabilization: low confidence regresses toward Neutral.
	Neutral      float64     `yaml:"neutral" validate:"gte=0,lte=100"`
	Ceiling      float64     `yaml:"ceiling" validate:"gte=0,lte=100"`
	Floors       []FloorStep `yaml:"floors" validate:"dive"`
	DefaultFloor float64     `yaml:"defaultFloor" validate:"gte=0,lte=100"`

	// Harmony blend of front and side.
	SideWeightWithSide float64 `yaml:"sideWeightWithSide" validate:"gte=0,lte=1"`
	SideWeightNoSide   float64 `yaml:"sideWeightNoSide" validate:"gte=0,lte=1"`

	// Overall blend.
	HarmonyWeight      float64 `yaml:"harmonyWeight" validate:"gte=0,lte=1"`
	PillarWeight       float64 `yaml:"pillarWeight" validate:"gte=0,lte=1"`
	UncertaintyPenalty float64 `yaml:"uncertaintyPenalty" validate:"gte=0"`
	NoSidePenalty      float64 `yaml:"noSidePenalty" validate:"gte=0"`
	NoSideCap          float64 `yaml:"noSideCap" validate:"gte=0,lte=100"`

	// Quality penalty accumulation.
	MaxQualityPenalty   float64        `yaml:"maxQualityPenalty" validate:"gte=0"`
	FrontFullCount      int            `yaml:"frontFullCount" validate:"gte=0"`
	FrontSparseCount    int            `yaml:"frontSparseCount" validate:"gte=0"`
	FrontPartialPenalty float64        `yaml:"frontPartialPenalty" validate:"gte=0"`
	FrontSparsePenalty  float64        `yaml:"frontSparsePenalty" validate:"gte=0"`
	SideSparseCount     int            `yaml:"sideSparseCount" validate:"gte=0"`
	SideSparsePenalty   float64        `yaml:"sideSparsePenalty" validate:"gte=0"`
	FrontPosePenalty    float64        `yaml:"frontPosePenalty" validate:"gte=0"`
	SideDisabledPenalty float64        `yaml:"sideDisabledPenalty" validate:"gte=0"`
	ThreeQuarterPenalty float64        `yaml:"threeQuarterPenalty" validate:"gte=0"`
	BlurPenalty         float64        `yaml:"blurPenalty" validate:"gte=0"`
	IssuePenalty        float64        `yaml:"issuePenalty" validate:"gte=0"`
	MaxIssuePenalty     float64        `yaml:"maxIssuePenalty" validate:"gte=0"`
	PenaltyWeights      PenaltyWeights `yaml:"penaltyWeights"`
	SideMinViewWeight   float64        `yaml:"sideMinViewWeight" validate:"gte=0,lte=1"`
	CalibrationBoost    float64        `yaml:"calibrationBoost" validate:"gte=0,lte=1"`
	InsufficientFloor   float64        `yaml:"insufficientFloor" validate:"gte=0,lte=100"`
	ErrorBarBase        float64        `yaml:"errorBarBase" validate:"gte=0"`
	ErrorBarScale       float64        `yaml:"errorBarScale" validate:"gte=0"`
	MinScoringLandmarks int            `yaml:"minScoringLandmarks" validate:"gte=0"`
	Fallback            Fallback       `yaml:"fallback"`
}

// DefaultParams returns the production scoring constants.
func DefaultParams() Params {
	return Params{
		Neutral: 56,
		Ceiling: 98,
		Floors: []FloorStep{
			{MinConfidence: 0.82, Floor: 6},
			{MinConfidence: 0.62, Floor: 12},
			{MinConfidence: 0.42, Floor: 18},
		},
		DefaultFloor: 22,

		SideWeightWithSide: 0.4,
		SideWeightNoSide:   0.18,

		HarmonyWeight:      0.34,
		PillarWeight:       0.22,
		UncertaintyPenalty: 14,
		NoSidePenalty:      8,
		NoSideCap:          67,

		MaxQualityPenalty:   32,
		FrontFullCount:      468,
		FrontSparseCount:    200,
		FrontPartialPenalty: 6,
		FrontSparsePenalty:  12,
		SideSparseCount:     100,
		SideSparsePenalty:   4,
		FrontPosePenalty:    6,
		SideDisabledPenalty: 4,
		ThreeQuarterPenalty: 3,
		BlurPenalty:         4,
		IssuePenalty:        1.5,
		MaxIssuePenalty:     8,
		PenaltyWeights: PenaltyWeights{
			Harmony:    0.5,
			Angularity: 0.35,
			Dimorphism: 0.3,
			Features:   0.4,
		},
		SideMinViewWeight:   0.2,
		CalibrationBoost:    0.1,
		InsufficientFloor:   50,
		ErrorBarBase:        2,
		ErrorBarScale:       18,
		MinScoringLandmarks: 1,

		Fallback: Fallback{
			Overall:      34,
			Harmony:      38,
			FrontHarmony: 38,
			SideHarmony:  38,
			Angularity:   33,
			Dimorphism:   35,
			Features:     34,
			Confidence:   0.1,
			ErrorBar:     24,
		},
	}
}
