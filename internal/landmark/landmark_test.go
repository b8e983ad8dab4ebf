package landmark

import (
	"math"
	"testing"

	"facescore/pkg/geometry"

	"github.com/stretchr/testify/require"
)

func TestToImageSpaceConvertsPixels(t *testing.T) {
	ls := []Landmark{{X: 540, Y: 720, Z: -10.8}, {X: 100, Y: 200}}
	got := ToImageSpace(ls, 1080, 1440)
	require.InDelta(t, 0.5, got[0].X, 1e-12)
	require.InDelta(t, 0.5, got[0].Y, 1e-12)
	require.InDelta(t, -0.01, got[0].Z, 1e-12)
	require.Equal(t, 540.0, ls[0].X, "input must not be modified")
}

func TestToImageSpaceKeepsNormalized(t *testing.T) {
	ls := []Landmark{{X: 0.4, Y: 0.6}}
	got := ToImageSpace(ls, 1080, 1440)
	require.Equal(t, ls, got)
}

func TestAtRejectsNonFinite(t *testing.T) {
	ls := []Landmark{{X: 0.1, Y: 0.2}, {X: math.NaN(), Y: 0.3}}
	_, ok := At(ls, 1)
	require.False(t, ok)
	_, ok = At(ls, 5)
	require.False(t, ok)
	l, ok := At(ls, 0)
	require.True(t, ok)
	require.Equal(t, 0.1, l.X)
}

func TestMeanVisibility(t *testing.T) {
	v := 0.5
	mean, reported := MeanVisibility([]Landmark{{X: 0, Y: 0, Visibility: &v}, {X: 1, Y: 1}})
	require.True(t, reported)
	require.InDelta(t, 0.75, mean, 1e-12)

	_, reported = MeanVisibility([]Landmark{{X: 0, Y: 0}})
	require.False(t, reported)
}

func TestNormalizeCentersAndScales(t *testing.T) {
	ls := []Landmark{{X: 0.2, Y: 0.3, Z: 0.04}, {X: 0.6, Y: 0.5}, {X: math.NaN(), Y: 0.1}}
	f := Normalize(ls)
	require.InDelta(t, 0.4, f.Scale, 1e-12)
	require.InDelta(t, 0.0, f.Landmarks[0].X, 1e-12)
	require.InDelta(t, 0.25, f.Landmarks[0].Y, 1e-12)
	require.InDelta(t, 0.1, f.Landmarks[0].Z, 1e-12)
	require.InDelta(t, 1.0, f.Landmarks[1].X, 1e-12)
	require.True(t, math.IsNaN(f.Landmarks[2].X))
	require.False(t, f.Has(2))
}

func TestNormalizeLevelRemovesRoll(t *testing.T) {
	// Eye line tilted by 10 degrees about (0.5, 0.5).
	a := 10 * math.Pi / 180
	ls := make([]Landmark, 3)
	ls[0] = Landmark{X: 0.5 - 0.2*math.Cos(a), Y: 0.5 - 0.2*math.Sin(a)}
	ls[1] = Landmark{X: 0.5 + 0.2*math.Cos(a), Y: 0.5 + 0.2*math.Sin(a)}
	ls[2] = Landmark{X: 0.5, Y: 0.8}

	f := NormalizeLevel(ls, 0, 1)
	require.InDelta(t, 10, f.Roll, 1e-9)
	r, _ := f.At(0)
	l, _ := f.At(1)
	require.InDelta(t, r.Y, l.Y, 1e-12)
}

func TestWithOverrides(t *testing.T) {
	ls := []Landmark{{X: 0.1, Y: 0.1}, {X: 0.2, Y: 0.2}}
	got := WithOverrides(ls, map[int]geometry.Point2D{1: {X: 0.3, Y: 0.4}, 7: {}}, map[int]float64{1: 0.9})
	require.Equal(t, 0.3, got[1].X)
	require.Equal(t, 0.9, got[1].Vis())
	require.Equal(t, 0.2, ls[1].X)
}
