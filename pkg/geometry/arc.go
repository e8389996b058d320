package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultArcResolution is the chord length used when an Arc does not specify
// its own, in the same units as the coordinates (mm).
const DefaultArcResolution = 1.0

// Arc is a circular XY-plane arc with optional helical Z travel, described
// G2/G3 style: the center is given as an I/J offset from the start point.
// It approximates itself with short linear chords, so it can feed the
// normalizer like any other point source.
type Arc struct {
	Start     r3.Vec
	End       r3.Vec
	Offset    [2]float64 // center offset from Start (I, J)
	Clockwise bool

	// Resolution is the target chord length; <= 0 uses DefaultArcResolution.
	Resolution float64
}

// Vertices implements PointSource by flattening the arc into chords. The
// approximation follows Marlin's plan_arc: travel angle from the cross and
// dot products of the start/end radius vectors, one rotation step per chord,
// with the final vertex snapped to the exact end point. A degenerate arc
// (zero center offset) reports ok=false.
func (a Arc) Vertices() ([]r3.Vec, bool) {
	if a.Offset[0] == 0 && a.Offset[1] == 0 {
		return nil, false
	}

	rP := -a.Offset[0]
	rQ := -a.Offset[1]
	centerX := a.Start.X - rP
	centerY := a.Start.Y - rQ

	rtX := a.End.X - centerX
	rtY := a.End.Y - centerY

	angularTravel := math.Atan2(rP*rtY-rQ*rtX, rP*rtX+rQ*rtY)
	if angularTravel < 0 {
		angularTravel += 2 * math.Pi
	}
	if a.Clockwise {
		angularTravel -= 2 * math.Pi
	}
	// Coincident start and end with no angle means a full circle.
	if angularTravel == 0 && a.Start.X == a.End.X && a.Start.Y == a.End.Y {
		angularTravel = 2 * math.Pi
	}

	linearTravel := a.End.Z - a.Start.Z
	radius := math.Hypot(rP, rQ)
	flat := radius * angularTravel
	travel := math.Abs(flat)
	if linearTravel != 0 {
		travel = math.Hypot(flat, linearTravel)
	}

	res := a.Resolution
	if res <= 0 {
		res = DefaultArcResolution
	}
	segments := int(math.Max(1, math.Floor(travel/res)))

	theta := angularTravel / float64(segments)
	linear := linearTravel / float64(segments)

	verts := make([]r3.Vec, 0, segments+1)
	verts = append(verts, a.Start)
	for i := 1; i <= segments; i++ {
		if i == segments {
			verts = append(verts, a.End)
			break
		}
		cos := math.Cos(float64(i) * theta)
		sin := math.Sin(float64(i) * theta)
		rotP := -a.Offset[0]*cos + a.Offset[1]*sin
		rotQ := -a.Offset[0]*sin - a.Offset[1]*cos
		verts = append(verts, r3.Vec{
			X: centerX + rotP,
			Y: centerY + rotQ,
			Z: a.Start.Z + float64(i)*linear,
		})
	}
	return verts, true
}
