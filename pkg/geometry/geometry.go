// Package geometry provides the point and path model for the FOAM toolpath
// compiler, together with normalization of raw tool geometry into ordered
// point sequences.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Precision is the coordinate precision applied at ingestion, in decimal
// places. Upstream CAD geometry carries floating-point noise that would
// otherwise leak into emitted instructions and bounds checks.
const Precision = 3

// Point is a rounded 3D coordinate. It is a value type: two points with the
// same coordinates are the same point.
type Point struct {
	X, Y, Z float64
}

// NewPoint builds a Point with each coordinate rounded to Precision decimals.
func NewPoint(x, y, z float64) Point {
	return Point{X: round(x), Y: round(y), Z: round(z)}
}

var precisionScale = math.Pow10(Precision)

func round(v float64) float64 {
	return math.Round(v*precisionScale) / precisionScale
}

// Vec returns the point as a gonum r3 vector.
func (p Point) Vec() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// DistanceTo returns the Euclidean distance to q.
func (p Point) DistanceTo(q Point) float64 {
	return r3.Norm(r3.Sub(q.Vec(), p.Vec()))
}

// Midpoint returns the unrounded midpoint of the segment ab.
func Midpoint(a, b Point) Point {
	m := r3.Scale(0.5, r3.Add(a.Vec(), b.Vec()))
	return Point{X: m.X, Y: m.Y, Z: m.Z}
}

// Path is one continuous ordered sequence of points representing a single
// tool motion. A valid Path is non-empty; Normalize returns nil for inputs
// that yield no points.
type Path []Point

// PointSource is any raw path representation that can attempt conversion to
// an ordered vertex sequence. Sources report ok=false when no polyline
// representation exists; that is a normal outcome, not an error.
type PointSource interface {
	Vertices() ([]r3.Vec, bool)
}

// Polyline is an already-ordered vertex list. Conversion always succeeds.
type Polyline []r3.Vec

// Vertices implements PointSource.
func (p Polyline) Vertices() ([]r3.Vec, bool) {
	return p, true
}

// Normalize extracts a rounded Path from a raw source. A nil source, a failed
// conversion, or a source with zero vertices yields nil; callers skip such
// paths silently.
func Normalize(src PointSource) Path {
	if src == nil {
		return nil
	}
	verts, ok := src.Vertices()
	if !ok || len(verts) == 0 {
		return nil
	}
	path := make(Path, len(verts))
	for i, v := range verts {
		path[i] = NewPoint(v.X, v.Y, v.Z)
	}
	return path
}

// NormalizeAll normalizes every source, dropping those that yield no points.
func NormalizeAll(sources []PointSource) []Path {
	paths := make([]Path, 0, len(sources))
	for _, src := range sources {
		if p := Normalize(src); len(p) > 0 {
			paths = append(paths, p)
		}
	}
	return paths
}
