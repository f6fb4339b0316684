package pointcloud

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownKind is returned for a Kind outside the supported set.
	ErrUnknownKind = errors.New("pointcloud: unknown geometry kind")

	// ErrBadCount is returned when a negative point count is requested.
	ErrBadCount = errors.New("pointcloud: count must be non-negative")

	// ErrBadRadius is returned for a negative, NaN or infinite radius.
	ErrBadRadius = errors.New("pointcloud: radius must be finite and non-negative")
)

// Point is a position in 3D space.
type Point struct {
	X, Y, Z float64
}

// DistanceSquared returns |p-q|².
func (p Point) DistanceSquared(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	dz := p.Z - q.Z

	return dx*dx + dy*dy + dz*dz
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Kind selects the shape of a point cloud.
type Kind int

const (
	Sphere Kind = iota
	SphereSurface
	Galaxy
	CircleArc
	Circle
)

var kindNames = [...]string{
	Sphere:        "sphere",
	SphereSurface: "sphere_surface",
	Galaxy:        "galaxy",
	CircleArc:     "circle_arc",
	Circle:        "circle",
}

// Kinds lists every supported Kind in declaration order.
func Kinds() []Kind {
	return []Kind{Sphere, SphereSurface, Galaxy, CircleArc, Circle}
}

// String returns the canonical lower_snake name of k.
func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	return k >= Sphere && k <= Circle
}

// ParseKind maps a name (case-insensitive, "-" accepted for "_") to a Kind.
func ParseKind(name string) (Kind, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for k, n := range kindNames {
		if n == norm {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", name, ErrUnknownKind)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, ErrUnknownKind
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}
