package pointcloud

import (
	"fmt"
	"math"
	"math/rand"
)

// defaultSeed is used when no seed or RNG is supplied, so an unconfigured
// Source is still reproducible.
const defaultSeed int64 = 1

// Galaxy shape parameters.
const (
	galaxyVerticalNoise   = 2.0
	galaxyHorizontalNoise = 2.0
	galaxySpiralA         = 0.5
	galaxySpiralB         = 0.5
	galaxyCoreShare       = 0.3
	galaxyMirrorThreshold = 0.49
)

// Source draws point clouds from a private RNG.
// A Source is not safe for concurrent use.
type Source struct {
	rng *rand.Rand
}

// Option configures a Source.
type Option func(*Source)

// WithSeed seeds the Source deterministically.
func WithSeed(seed int64) Option {
	return func(s *Source) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pointcloud: WithRand(nil)")
	}
	return func(s *Source) {
		s.rng = r
	}
}

// NewSource returns a Source. Without options it is seeded with a fixed seed.
func NewSource(opts ...Option) *Source {
	s := &Source{rng: rand.New(rand.NewSource(defaultSeed))}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Generate returns count points of the given kind around origin.
// Points for count==0 is an empty, non-nil slice.
func (s *Source) Generate(kind Kind, origin Point, radius float64, count int) ([]Point, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("Generate(%v): %w", kind, ErrUnknownKind)
	}
	if count < 0 {
		return nil, fmt.Errorf("Generate: count=%d: %w", count, ErrBadCount)
	}
	if radius < 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("Generate: radius=%g: %w", radius, ErrBadRadius)
	}

	var draw func(Point, float64) Point
	switch kind {
	case Sphere:
		draw = s.spherePoint
	case SphereSurface:
		draw = s.sphereSurfacePoint
	case Galaxy:
		draw = s.galaxyPoint
	case CircleArc:
		draw = s.circleArcPoint
	case Circle:
		draw = s.circlePoint
	}

	out := make([]Point, count)
	for i := range out {
		out[i] = draw(origin, radius)
	}

	return out, nil
}

// sphericalAngles draws a uniformly distributed direction.
func (s *Source) sphericalAngles() (theta, phi float64) {
	theta = 2 * math.Pi * s.rng.Float64()
	phi = math.Acos(2*s.rng.Float64() - 1)

	return theta, phi
}

func (s *Source) spherePoint(o Point, r float64) Point {
	theta, phi := s.sphericalAngles()
	// each axis gets its own jitter
	return Point{
		X: o.X + r*math.Sin(phi)*math.Cos(theta)*s.rng.Float64(),
		Y: o.Y + r*math.Sin(phi)*math.Sin(theta)*s.rng.Float64(),
		Z: o.Z + r*math.Cos(phi)*s.rng.Float64(),
	}
}

func (s *Source) sphereSurfacePoint(o Point, r float64) Point {
	theta, phi := s.sphericalAngles()
	return Point{
		X: o.X + r*math.Sin(phi)*math.Cos(theta),
		Y: o.Y + r*math.Sin(phi)*math.Sin(theta),
		Z: o.Z + r*math.Cos(phi),
	}
}

func (s *Source) galaxyPoint(o Point, r float64) Point {
	mirror := 1.0
	if s.rng.Float64() > galaxyMirrorThreshold {
		mirror = -1
	}
	theta := 2 * math.Pi * s.rng.Float64()
	beta, phi := s.sphericalAngles()

	if s.rng.Float64() < galaxyCoreShare {
		return Point{
			X: o.X + r*math.Sin(phi)*math.Cos(theta)*s.rng.Float64(),
			Y: o.Y + (galaxyVerticalNoise+1)*math.Sin(phi)*math.Sin(theta)*s.rng.Float64(),
			Z: o.Z + r*math.Cos(phi)*s.rng.Float64(),
		}
	}

	arm := galaxySpiralA * math.Exp(galaxySpiralB*theta)
	return Point{
		X: o.X + mirror*arm*math.Cos(theta) + galaxyHorizontalNoise*math.Sin(phi)*math.Cos(beta)*s.rng.Float64(),
		Y: o.Y + galaxyVerticalNoise*math.Cos(phi)*s.rng.Float64(),
		Z: o.Z + mirror*arm*math.Sin(theta) + galaxyHorizontalNoise*math.Sin(phi)*math.Sin(beta)*s.rng.Float64(),
	}
}

func (s *Source) circleArcPoint(o Point, r float64) Point {
	theta := 2 * math.Pi * s.rng.Float64()
	return Point{
		X: o.X + r*math.Sin(theta),
		Y: o.Y,
		Z: o.Z + r*math.Cos(theta),
	}
}

func (s *Source) circlePoint(o Point, r float64) Point {
	theta := 2 * math.Pi * s.rng.Float64()
	return Point{
		X: o.X + r*math.Sin(theta)*s.rng.Float64(),
		Y: o.Y,
		Z: o.Z + r*math.Cos(theta)*s.rng.Float64(),
	}
}
