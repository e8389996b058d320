// Package workspace provides reachability envelopes for the target machine
// and run-level validation of toolpaths against them.
package workspace

import (
	"math"

	"foamgen/pkg/geometry"
)

// Reason is a violation code for a single breached envelope constraint.
type Reason string

const (
	ReasonXNeg   Reason = "X<0"
	ReasonYNeg   Reason = "Y<0"
	ReasonZNeg   Reason = "Z<0"
	ReasonXMax   Reason = "X>BedX"
	ReasonYMax   Reason = "Y>BedY"
	ReasonZMax   Reason = "Z>BedZ"
	ReasonRadius Reason = "r>BedRadius"
)

// Envelope describes where the tool can physically go. Implementations are
// pure: checking the same point twice yields identical results.
type Envelope interface {
	// Type returns the envelope type name ("Cartesian" or "Delta").
	Type() string

	// CheckPoint reports whether p is reachable. When it is not, every
	// breached constraint contributes a Reason, in a fixed order.
	CheckPoint(p geometry.Point) (bool, []Reason)

	// CheckSegment reports whether the straight segment ab stays reachable.
	CheckSegment(a, b geometry.Point) bool
}

// Cartesian is a rectangular-prism envelope anchored at the origin.
type Cartesian struct {
	BedX, BedY, BedZ float64
}

// Type implements Envelope.
func (c Cartesian) Type() string { return "Cartesian" }

// CheckPoint checks each of the six half-space constraints independently;
// simultaneous violations are all reported.
func (c Cartesian) CheckPoint(p geometry.Point) (bool, []Reason) {
	var reasons []Reason
	if p.X < 0 {
		reasons = append(reasons, ReasonXNeg)
	}
	if p.Y < 0 {
		reasons = append(reasons, ReasonYNeg)
	}
	if p.Z < 0 {
		reasons = append(reasons, ReasonZNeg)
	}
	if p.X > c.BedX {
		reasons = append(reasons, ReasonXMax)
	}
	if p.Y > c.BedY {
		reasons = append(reasons, ReasonYMax)
	}
	if p.Z > c.BedZ {
		reasons = append(reasons, ReasonZMax)
	}
	return len(reasons) == 0, reasons
}

// CheckSegment checks both endpoints and the midpoint. The midpoint check
// catches diagonal motions whose interior leaves the prism even though both
// endpoints are inside adjacent faces.
func (c Cartesian) CheckSegment(a, b geometry.Point) bool {
	okA, _ := c.CheckPoint(a)
	okB, _ := c.CheckPoint(b)
	okM, _ := c.CheckPoint(geometry.Midpoint(a, b))
	return okA && okB && okM
}

// Delta is a cylindrical envelope: a radius around the Z axis and a height.
type Delta struct {
	Radius float64
	BedZ   float64
}

// Type implements Envelope.
func (d Delta) Type() string { return "Delta" }

// CheckPoint checks the radial distance and the Z range.
func (d Delta) CheckPoint(p geometry.Point) (bool, []Reason) {
	var reasons []Reason
	if math.Sqrt(p.X*p.X+p.Y*p.Y) > d.Radius {
		reasons = append(reasons, ReasonRadius)
	}
	if p.Z < 0 {
		reasons = append(reasons, ReasonZNeg)
	}
	if p.Z > d.BedZ {
		reasons = append(reasons, ReasonZMax)
	}
	return len(reasons) == 0, reasons
}

// CheckSegment checks the two endpoints only. A chord of a cylinder never
// leaves it radially, so no interior sample is taken here.
func (d Delta) CheckSegment(a, b geometry.Point) bool {
	okA, _ := d.CheckPoint(a)
	okB, _ := d.CheckPoint(b)
	return okA && okB
}
