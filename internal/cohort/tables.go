package cohort

// Cohort field values.
var (
	Ethnicities = []string{
		"african",
		"east_asian",
		"european",
		"hispanic",
		"middle_eastern",
		"native_american",
		"pacific_islander",
		"south_asian",
	}
	Genders  = []string{"male", "female"}
	AgeBands = []string{"under_30", "30_plus"}
)

// Ratios are dimensionless unless the metric is an angle (degrees) or an
// index scaled by 100.
var base = delta{
	"symmetry":          {0, 0.03},
	"facialThirds":      {0, 0.12},
	"faceHeightWidth":   {1.52, 0.12},
	"eyeSpacing":        {0.235, 0.025},
	"eyeWidthRatio":     {1.0, 0.12},
	"noseWidthRatio":    {1.0, 0.12},
	"mouthWidthRatio":   {1.5, 0.15},
	"philtrumChinRatio": {0.33, 0.08},
	"midfaceRatio":      {1.0, 0.08},
	"noseLengthRatio":   {0.30, 0.03},
	"intercanthalIpd":   {0.49, 0.04},
	"mouthFaceWidth":    {0.35, 0.035},
	"noseFaceWidth":     {0.22, 0.025},
	"eyeFifth":          {0.21, 0.025},
	"upperThird":        {0.333, 0.03},
	"middleThird":       {0.333, 0.03},
	"bitragalRatio":     {0.97, 0.04},

	"jawWidthRatio":   {0.85, 0.06},
	"jawFrontalAngle": {135, 12},
	"chinWidthRatio":  {0.22, 0.05},
	"bitemporalRatio": {0.93, 0.05},
	"mandibleLength":  {0.33, 0.03},
	"chinAngle":       {110, 9},

	"fWHR":            {1.85, 0.15},
	"browEyeDistance": {0.055, 0.012},
	"lowerFaceRatio":  {0.33, 0.03},
	"cheekboneHeight": {0.88, 0.06},

	"chinPhiltrumRatio":   {2.5, 0.35},
	"chinFaceWidth":       {0.18, 0.03},
	"cheekboneWidthRatio": {0.78, 0.05},
	"facialIndex":         {95, 6},

	"canthalTilt":    {4, 3},
	"eyeAspectRatio": {0.32, 0.05},
	"nasalIndex":     {50, 8},
	"lipRatio":       {1.6, 0.3},
	"esr":            {0.46, 0.03},
	"browTilt":       {-2, 6},

	"upperLipHeight":  {0.028, 0.006},
	"lowerLipHeight":  {0.044, 0.008},
	"mouthIpdRatio":   {0.76, 0.07},
	"mouthCornerTilt": {-2, 5},
	"browLength":      {1.15, 0.12},
	"browArch":        {0.1, 0.04},

	"gonialAngleAvg":   {124, 8},
	"ramusRatio":       {1.2, 0.2},
	"chinProjection":   {-0.01, 0.03},
	"facialConvexity":  {170, 6},
	"nasofrontalAngle": {145, 10},
	"nasolabialAngle":  {102, 10},
	"mentolabialAngle": {130, 12},
	"eLineLips":        {-0.03, 0.02},
	"goodeRatio":       {0.55, 0.1},

	"eLineUpperLip":       {-0.02, 0.012},
	"sLineLowerLip":       {-0.01, 0.012},
	"ramusInclination":    {84, 6},
	"mandibularPlane":     {30, 7},
	"lipChinProjection":   {0.005, 0.02},
	"foreheadInclination": {12, 6},
	"nasalProjection":     {0.07, 0.015},
	"nasalTipAngle":       {100, 10},
}

var ethnicity = map[string]delta{
	"african": {
		"nasalIndex":      {72, 12},
		"canthalTilt":     {5, 3},
		"noseWidthRatio":  {1.25, 0.15},
		"facialConvexity": {165, 7},
		"eLineLips":       {0, 0.025},
		"goodeRatio":      {0.5, 0.1},
		"eyeAspectRatio":  {0.33, 0.05},
	},
	"east_asian": {
		"nasalIndex":      {66, 10},
		"canthalTilt":     {7, 3.5},
		"noseWidthRatio":  {1.1, 0.14},
		"facialConvexity": {167, 6},
		"eLineLips":       {-0.01, 0.02},
		"goodeRatio":      {0.5, 0.1},
		"eyeAspectRatio":  {0.28, 0.05},
	},
	"european": {
		"nasalIndex":      {48, 7},
		"canthalTilt":     {4, 3},
		"noseWidthRatio":  {0.98, 0.12},
		"facialConvexity": {170, 6},
		"eLineLips":       {-0.035, 0.02},
		"goodeRatio":      {0.57, 0.1},
		"eyeAspectRatio":  {0.32, 0.05},
	},
	"hispanic": {
		"nasalIndex":      {58, 9},
		"canthalTilt":     {5, 3},
		"noseWidthRatio":  {1.05, 0.13},
		"facialConvexity": {168, 6},
		"eLineLips":       {-0.02, 0.02},
		"goodeRatio":      {0.54, 0.1},
		"eyeAspectRatio":  {0.31, 0.05},
	},
	"middle_eastern": {
		"nasalIndex":      {52, 8},
		"canthalTilt":     {4.5, 3},
		"noseWidthRatio":  {1.0, 0.12},
		"facialConvexity": {168, 6},
		"eLineLips":       {-0.025, 0.02},
		"goodeRatio":      {0.58, 0.1},
		"eyeAspectRatio":  {0.33, 0.05},
	},
	"native_american": {
		"nasalIndex":      {60, 9},
		"canthalTilt":     {5.5, 3},
		"noseWidthRatio":  {1.05, 0.13},
		"facialConvexity": {168, 6},
		"eLineLips":       {-0.02, 0.02},
		"goodeRatio":      {0.53, 0.1},
		"eyeAspectRatio":  {0.29, 0.05},
	},
	"pacific_islander": {
		"nasalIndex":      {68, 10},
		"canthalTilt":     {5, 3},
		"noseWidthRatio":  {1.15, 0.14},
		"facialConvexity": {166, 6},
		"eLineLips":       {-0.01, 0.025},
		"goodeRatio":      {0.52, 0.1},
		"eyeAspectRatio":  {0.31, 0.05},
	},
	"south_asian": {
		"nasalIndex":      {58, 9},
		"canthalTilt":     {4.5, 3},
		"noseWidthRatio":  {1.05, 0.13},
		"facialConvexity": {168, 6},
		"eLineLips":       {-0.02, 0.02},
		"goodeRatio":      {0.55, 0.1},
		"eyeAspectRatio":  {0.33, 0.05},
	},
}

var gender = map[string]delta{
	"male": {
		"fWHR":            {1.95, 0.15},
		"gonialAngleAvg":  {121, 8},
		"jawWidthRatio":   {0.88, 0.06},
		"browEyeDistance": {0.05, 0.012},
		"chinWidthRatio":  {0.24, 0.05},
		"nasolabialAngle": {97, 10},
		"chinAngle":       {104, 9},
		"mandibularPlane": {28, 7},
		"chinFaceWidth":   {0.19, 0.03},
		"browArch":        {0.08, 0.04},
	},
	"female": {
		"fWHR":            {1.8, 0.15},
		"gonialAngleAvg":  {127, 8},
		"jawWidthRatio":   {0.81, 0.06},
		"browEyeDistance": {0.062, 0.012},
		"chinWidthRatio":  {0.2, 0.05},
		"nasolabialAngle": {106, 10},
		"chinAngle":       {112, 9},
		"mandibularPlane": {31, 7},
		"chinFaceWidth":   {0.17, 0.03},
		"browArch":        {0.11, 0.04},
	},
}

var age = map[string]delta{
	"under_30": {
		"lipRatio":         {1.6, 0.3},
		"mentolabialAngle": {128, 12},
		"lowerFaceRatio":   {0.33, 0.03},
	},
	"30_plus": {
		"lipRatio":         {1.5, 0.3},
		"mentolabialAngle": {132, 12},
		"lowerFaceRatio":   {0.335, 0.03},
		"eyeAspectRatio":   {0.30, 0.05},
	},
}
