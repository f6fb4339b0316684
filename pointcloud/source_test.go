package pointcloud_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbitgraph/pointcloud"
)

const (
	testRadius = 15.0
	testCount  = 200
	eps        = 1e-9
)

var testOrigin = pointcloud.Point{X: 0, Y: 2, Z: 0}

func TestGenerate_SphereSurfaceOnShell(t *testing.T) {
	src := pointcloud.NewSource(pointcloud.WithSeed(7))
	pts, err := src.Generate(pointcloud.SphereSurface, testOrigin, testRadius, testCount)
	require.NoError(t, err)
	require.Len(t, pts, testCount)

	for i, p := range pts {
		d := math.Sqrt(p.DistanceSquared(testOrigin))
		assert.InDelta(t, testRadius, d, 1e-6, "point %d off the shell", i)
	}
}

func TestGenerate_SphereInsideBall(t *testing.T) {
	src := pointcloud.NewSource(pointcloud.WithSeed(7))
	pts, err := src.Generate(pointcloud.Sphere, testOrigin, testRadius, testCount)
	require.NoError(t, err)

	for i, p := range pts {
		assert.LessOrEqual(t, p.DistanceSquared(testOrigin), testRadius*testRadius+eps, "point %d outside", i)
	}
}

func TestGenerate_CirclesAreFlat(t *testing.T) {
	src := pointcloud.NewSource(pointcloud.WithSeed(3))
	for _, kind := range []pointcloud.Kind{pointcloud.CircleArc, pointcloud.Circle} {
		pts, err := src.Generate(kind, testOrigin, testRadius, testCount)
		require.NoError(t, err)
		for _, p := range pts {
			assert.Equal(t, testOrigin.Y, p.Y, "%v must stay in the y=origin plane", kind)
			assert.LessOrEqual(t, p.DistanceSquared(testOrigin), testRadius*testRadius+eps)
		}
	}

	arc, err := src.Generate(pointcloud.CircleArc, testOrigin, testRadius, 10)
	require.NoError(t, err)
	for _, p := range arc {
		assert.InDelta(t, testRadius, math.Sqrt(p.DistanceSquared(testOrigin)), 1e-6)
	}
}

func TestGenerate_GalaxyIsFinite(t *testing.T) {
	src := pointcloud.NewSource(pointcloud.WithSeed(11))
	pts, err := src.Generate(pointcloud.Galaxy, testOrigin, testRadius, testCount)
	require.NoError(t, err)
	for _, p := range pts {
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z))
	}
}

func TestGenerate_DeterministicPerSeed(t *testing.T) {
	for _, kind := range pointcloud.Kinds() {
		a, err := pointcloud.NewSource(pointcloud.WithSeed(42)).Generate(kind, testOrigin, testRadius, 25)
		require.NoError(t, err)
		b, err := pointcloud.NewSource(pointcloud.WithSeed(42)).Generate(kind, testOrigin, testRadius, 25)
		require.NoError(t, err)
		assert.Equal(t, a, b, "kind %v", kind)
	}
}

func TestGenerate_Errors(t *testing.T) {
	src := pointcloud.NewSource()

	_, err := src.Generate(pointcloud.Kind(99), testOrigin, testRadius, 1)
	assert.ErrorIs(t, err, pointcloud.ErrUnknownKind)

	_, err = src.Generate(pointcloud.Sphere, testOrigin, testRadius, -1)
	assert.ErrorIs(t, err, pointcloud.ErrBadCount)

	_, err = src.Generate(pointcloud.Sphere, testOrigin, math.NaN(), 1)
	assert.ErrorIs(t, err, pointcloud.ErrBadRadius)

	pts, err := src.Generate(pointcloud.Sphere, testOrigin, testRadius, 0)
	require.NoError(t, err)
	assert.NotNil(t, pts)
	assert.Empty(t, pts)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want pointcloud.Kind
	}{
		{"sphere", pointcloud.Sphere},
		{"Sphere_Surface", pointcloud.SphereSurface},
		{"galaxy", pointcloud.Galaxy},
		{"circle-arc", pointcloud.CircleArc},
		{" circle ", pointcloud.Circle},
	}
	for _, tc := range tests {
		got, err := pointcloud.ParseKind(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, got, mustRoundTrip(t, got))
	}

	_, err := pointcloud.ParseKind("torus")
	assert.ErrorIs(t, err, pointcloud.ErrUnknownKind)
}

func mustRoundTrip(t *testing.T, k pointcloud.Kind) pointcloud.Kind {
	t.Helper()
	text, err := k.MarshalText()
	require.NoError(t, err)
	var back pointcloud.Kind
	require.NoError(t, back.UnmarshalText(text))

	return back
}

func TestPoint_DistanceSquared(t *testing.T) {
	p := pointcloud.Point{X: 1, Y: 2, Z: 3}
	q := pointcloud.Point{X: 4, Y: 6, Z: 3}
	assert.Equal(t, 25.0, p.DistanceSquared(q))
	assert.Equal(t, 25.0, q.DistanceSquared(p))
	assert.Equal(t, pointcloud.Point{X: 5, Y: 8, Z: 6}, p.Add(q))
}
