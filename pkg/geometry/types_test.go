package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRotationAboutKeepsCenterFixed(t *testing.T) {
	center := NewPoint2D(0.5, 0.5)
	rot := RotationAbout(center, Radians(30))

	got := rot.Apply(center)
	require.InDelta(t, 0.5, got.X, 1e-12)
	require.InDelta(t, 0.5, got.Y, 1e-12)

	p := rot.Apply(NewPoint2D(0.6, 0.5))
	require.InDelta(t, 0.1, p.Distance(center), 1e-12)
}

func TestAngleAt(t *testing.T) {
	require.InDelta(t, 90, AngleAt(NewPoint2D(1, 0), NewPoint2D(0, 0), NewPoint2D(0, 1)), 1e-9)
	require.InDelta(t, 180, AngleAt(NewPoint2D(-1, 0), NewPoint2D(0, 0), NewPoint2D(1, 0)), 1e-9)
	require.Zero(t, AngleAt(NewPoint2D(0, 0), NewPoint2D(0, 0), NewPoint2D(1, 0)))
}

func TestLineAngleImageSpace(t *testing.T) {
	// y grows downward, so a segment whose end has smaller y rises.
	require.InDelta(t, 45, LineAngle(NewPoint2D(0, 1), NewPoint2D(1, 0)), 1e-9)
	require.InDelta(t, -45, LineAngle(NewPoint2D(0, 0), NewPoint2D(1, 1)), 1e-9)
}

func TestSignedDistanceToLine(t *testing.T) {
	a, b := NewPoint2D(0, 0), NewPoint2D(0, 2)
	require.InDelta(t, -3, SignedDistanceToLine(NewPoint2D(3, 1), a, b), 1e-12)
	require.InDelta(t, 3, SignedDistanceToLine(NewPoint2D(-3, 5), a, b), 1e-12)
	require.Zero(t, SignedDistanceToLine(NewPoint2D(0, 7), a, b))
	// A degenerate line falls back to the distance from its point.
	require.InDelta(t, 5, SignedDistanceToLine(NewPoint2D(3, 4), a, a), 1e-12)
}

func TestSmoothstep(t *testing.T) {
	require.Zero(t, Smoothstep(25, 65, 10))
	require.Equal(t, 1.0, Smoothstep(25, 65, 80))
	require.InDelta(t, 0.5, Smoothstep(25, 65, 45), 1e-12)

	prev := -1.0
	for x := 20.0; x <= 70; x += 2.5 {
		v := Smoothstep(25, 65, x)
		require.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestClamp01(t *testing.T) {
	require.Zero(t, Clamp01(math.NaN()))
	require.Equal(t, 1.0, Clamp01(3))
	require.Equal(t, 0.25, Clamp01(0.25))
}

func TestBoundingBoxAndCentroid(t *testing.T) {
	pts := []Point2D{{X: 0.2, Y: 0.3}, {X: 0.8, Y: 0.1}, {X: 0.5, Y: 0.9}}
	box := BoundingBox(pts)
	require.InDelta(t, 0.2, box.X, 1e-12)
	require.InDelta(t, 0.1, box.Y, 1e-12)
	require.InDelta(t, 0.6, box.Width, 1e-12)
	require.InDelta(t, 0.8, box.Height, 1e-12)

	c := Centroid(pts)
	require.InDelta(t, 0.5, c.X, 1e-12)
	require.InDelta(t, 13.0/30.0, c.Y, 1e-12)
}
