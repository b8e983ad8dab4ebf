// Package landmarktest builds deterministic synthetic landmark sets for tests.
package landmarktest

import (
	"math"

	"facescore/internal/landmark"
	"facescore/pkg/geometry"
)

type xyz struct{ x, y, z float64 }

// Key positions of a proportionate, symmetric, camera-facing face.
var frontKeys = map[int]xyz{
	landmark.Trichion:       {0.500, 0.155, -0.010},
	landmark.ForeheadCenter: {0.500, 0.230, -0.030},
	landmark.Glabella:       {0.500, 0.360, -0.045},
	landmark.Nasion:         {0.500, 0.390, -0.040},
	landmark.NoseBridge:     {0.500, 0.420, -0.050},
	landmark.NoseDorsum:     {0.500, 0.460, -0.060},
	landmark.NoseTip:        {0.500, 0.540, -0.080},
	landmark.Pronasale:      {0.500, 0.530, -0.075},
	landmark.Columella:      {0.500, 0.562, -0.060},
	landmark.Subnasale:      {0.500, 0.575, -0.050},

	landmark.AlarRight:       {0.455, 0.555, -0.035},
	landmark.AlarLeft:        {0.545, 0.555, -0.035},
	landmark.AlarCreaseRight: {0.460, 0.560, -0.030},
	landmark.AlarCreaseLeft:  {0.540, 0.560, -0.030},

	landmark.LabraleSuperius:  {0.500, 0.618, -0.050},
	landmark.CupidPeakRight:   {0.485, 0.615, -0.048},
	landmark.CupidPeakLeft:    {0.515, 0.615, -0.048},
	landmark.Stomion:          {0.500, 0.635, -0.045},
	landmark.LowerLipInner:    {0.500, 0.640, -0.045},
	landmark.LabraleInferius:  {0.500, 0.668, -0.048},
	landmark.MouthCornerRight: {0.432, 0.640, -0.030},
	landmark.MouthCornerLeft:  {0.568, 0.640, -0.030},
	landmark.Labiomental:      {0.500, 0.695, -0.040},

	landmark.ChinUpper: {0.500, 0.730, -0.045},
	landmark.Pogonion:  {0.500, 0.760, -0.045},
	landmark.Menton:    {0.500, 0.780, -0.040},
	landmark.ChinRight: {0.465, 0.765, -0.035},
	landmark.ChinLeft:  {0.535, 0.765, -0.035},

	landmark.GonionRight: {0.335, 0.660, 0.020},
	landmark.GonionLeft:  {0.665, 0.660, 0.020},
	landmark.JawMidRight: {0.360, 0.710, 0.005},
	landmark.JawMidLeft:  {0.640, 0.710, 0.005},
	landmark.JawLowRight: {0.350, 0.680, 0.010},
	landmark.JawLowLeft:  {0.650, 0.680, 0.010},
	landmark.RamusRight:  {0.320, 0.600, 0.030},
	landmark.RamusLeft:   {0.680, 0.600, 0.030},

	landmark.ZygionRight:    {0.300, 0.460, 0.040},
	landmark.ZygionLeft:     {0.700, 0.460, 0.040},
	landmark.CheekboneRight: {0.345, 0.480, 0.000},
	landmark.CheekboneLeft:  {0.655, 0.480, 0.000},
	landmark.TempleRight:    {0.310, 0.400, 0.040},
	landmark.TempleLeft:     {0.690, 0.400, 0.040},
	landmark.TragusRight:    {0.305, 0.500, 0.050},
	landmark.TragusLeft:     {0.695, 0.500, 0.050},
	landmark.OrbitaleRight:  {0.410, 0.470, -0.010},

	landmark.EyeOuterRight:  {0.368, 0.443, -0.005},
	landmark.EyeInnerRight:  {0.455, 0.448, -0.020},
	landmark.EyeTopRight:    {0.410, 0.433, -0.020},
	landmark.EyeBottomRight: {0.410, 0.460, -0.018},
	landmark.EyeOuterLeft:   {0.632, 0.443, -0.005},
	landmark.EyeInnerLeft:   {0.545, 0.448, -0.020},
	landmark.EyeTopLeft:     {0.590, 0.433, -0.020},
	landmark.EyeBottomLeft:  {0.590, 0.460, -0.018},
	landmark.PupilRight:     {0.410, 0.446, -0.022},
	landmark.PupilLeft:      {0.590, 0.446, -0.022},

	landmark.BrowInnerRight: {0.460, 0.405, -0.035},
	landmark.BrowMidRight:   {0.410, 0.400, -0.030},
	landmark.BrowPeakRight:  {0.420, 0.397, -0.030},
	landmark.BrowOuterRight: {0.360, 0.410, -0.015},
	landmark.BrowInnerLeft:  {0.540, 0.405, -0.035},
	landmark.BrowMidLeft:    {0.590, 0.400, -0.030},
	landmark.BrowPeakLeft:   {0.580, 0.397, -0.030},
	landmark.BrowOuterLeft:  {0.640, 0.410, -0.015},
}

// Key positions of the same face in left-facing profile (nose toward x=0).
var sideKeys = map[int]xyz{
	landmark.Trichion:       {0.550, 0.150, 0},
	landmark.ForeheadCenter: {0.530, 0.230, 0},
	landmark.Glabella:       {0.500, 0.360, 0},
	landmark.Nasion:         {0.505, 0.390, 0},
	landmark.NoseBridge:     {0.490, 0.430, 0},
	landmark.NoseDorsum:     {0.470, 0.480, 0},
	landmark.NoseTip:        {0.430, 0.545, 0},
	landmark.Pronasale:      {0.435, 0.530, 0},
	landmark.Columella:      {0.455, 0.565, 0},
	landmark.Subnasale:      {0.475, 0.575, 0},
	landmark.AlarRight:      {0.520, 0.555, 0},
	landmark.AlarLeft:       {0.520, 0.555, 0},

	landmark.LabraleSuperius:  {0.462, 0.615, 0},
	landmark.Stomion:          {0.480, 0.635, 0},
	landmark.LabraleInferius:  {0.475, 0.670, 0},
	landmark.Labiomental:      {0.490, 0.695, 0},
	landmark.ChinUpper:        {0.490, 0.730, 0},
	landmark.Pogonion:         {0.475, 0.755, 0},
	landmark.Menton:           {0.500, 0.780, 0},
	landmark.MouthCornerRight: {0.520, 0.640, 0},

	landmark.GonionRight: {0.660, 0.680, 0},
	landmark.GonionLeft:  {0.665, 0.685, 0},
	landmark.RamusRight:  {0.670, 0.580, 0},
	landmark.ZygionRight: {0.680, 0.450, 0},
	landmark.TragusRight: {0.690, 0.480, 0},

	landmark.EyeOuterRight:  {0.530, 0.445, 0},
	landmark.BrowMidRight:   {0.520, 0.400, 0},
	landmark.BrowPeakRight:  {0.525, 0.397, 0},
	landmark.CheekboneRight: {0.560, 0.480, 0},
	landmark.OrbitaleRight:  {0.540, 0.470, 0},
}

// Front returns a full 478-point front mesh.
func Front() []landmark.Landmark {
	return build(frontKeys, geometry.NewPoint2D(0.5, 0.47), 0.19, 0.29)
}

// Side returns a full 478-point profile mesh.
func Side() []landmark.Landmark {
	return build(sideKeys, geometry.NewPoint2D(0.57, 0.47), 0.10, 0.29)
}

// build places the key points and fills every other index on a golden-angle
// spiral inside an ellipse so the set has a realistic bounding box.
func build(keys map[int]xyz, center geometry.Point2D, rx, ry float64) []landmark.Landmark {
	const golden = 2.399963229728653
	out := make([]landmark.Landmark, landmark.MeshSize)
	for i := range out {
		if k, ok := keys[i]; ok {
			out[i] = landmark.Landmark{X: k.x, Y: k.y, Z: k.z}
			continue
		}
		r := math.Sqrt((float64(i) + 0.5) / landmark.MeshSize)
		theta := float64(i) * golden
		out[i] = landmark.Landmark{
			X: center.X + rx*r*math.Cos(theta),
			Y: center.Y + ry*r*math.Sin(theta),
			Z: -0.02 * (1 - r*r),
		}
	}
	return out
}

// Transform applies a uniform scale about the origin followed by a
// translation to every landmark. Depth scales with the plane.
func Transform(ls []landmark.Landmark, scale, dx, dy float64) []landmark.Landmark {
	t := geometry.Translation(dx, dy).Compose(geometry.Scale(scale, scale))
	out := make([]landmark.Landmark, len(ls))
	for i, l := range ls {
		p := t.Apply(l.Point())
		out[i] = landmark.Landmark{X: p.X, Y: p.Y, Z: l.Z * scale, Visibility: l.Visibility}
	}
	return out
}

// RotationMatrix builds a row-major 4x4 transform whose rotation block is
// Rx(roll)·Ry(pitch)·Rz(yaw), angles in degrees.
func RotationMatrix(yaw, pitch, roll float64) []float64 {
	r := rotation(yaw, pitch, roll)
	return []float64{
		r[0][0], r[0][1], r[0][2], 0,
		r[1][0], r[1][1], r[1][2], 0,
		r[2][0], r[2][1], r[2][2], 0,
		0, 0, 0, 1,
	}
}

// RotationMatrixColumnMajor encodes the same rotation column-major.
func RotationMatrixColumnMajor(yaw, pitch, roll float64) []float64 {
	r := rotation(yaw, pitch, roll)
	return []float64{
		r[0][0], r[1][0], r[2][0], 0,
		r[0][1], r[1][1], r[2][1], 0,
		r[0][2], r[1][2], r[2][2], 0,
		0, 0, 0, 1,
	}
}

func rotation(yaw, pitch, roll float64) [3][3]float64 {
	cy, sy := math.Cos(geometry.Radians(yaw)), math.Sin(geometry.Radians(yaw))
	cp, sp := math.Cos(geometry.Radians(pitch)), math.Sin(geometry.Radians(pitch))
	cr, sr := math.Cos(geometry.Radians(roll)), math.Sin(geometry.Radians(roll))
	return [3][3]float64{
		{cp * cy, -cp * sy, sp},
		{cr*sy + sr*sp*cy, cr*cy - sr*sp*sy, -sr * cp},
		{sr*sy - cr*sp*cy, sr*cy + cr*sp*sy, cr * cp},
	}
}
