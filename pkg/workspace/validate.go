package workspace

import (
	"fmt"
	"strings"

	"foamgen/pkg/geometry"
)

// Segment is an endpoint pair from a validated path.
type Segment struct {
	A, B geometry.Point
}

// Annotation pairs a violating point with the reasons it was rejected, for
// rendering by the caller (warning markers, reports).
type Annotation struct {
	Point   geometry.Point
	Reasons []Reason
}

// Label renders the reasons as a comma-separated marker text.
func (a Annotation) Label() string {
	parts := make([]string, len(a.Reasons))
	for i, r := range a.Reasons {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}

// Diagnostics accumulates validation results for one compilation run. It is
// created empty at run start, populated during validation, and returned
// unchanged at run end.
type Diagnostics struct {
	// Violations counts out-of-bounds points. Segment violations are
	// tracked separately and do not contribute to this count.
	Violations int

	BadPoints   []geometry.Point
	BadSegments []Segment
	Annotations []Annotation
}

// Status summarizes the run: "OK" when no point violations occurred,
// otherwise a summary carrying the violation count. Segment violations do
// not affect the status.
func (d *Diagnostics) Status() string {
	if d.Violations == 0 {
		return "OK"
	}
	return fmt.Sprintf("out of bounds: %d point(s)", d.Violations)
}

// Validate checks every point of every path individually and every
// consecutive pair as a segment, independently. A path can contribute to
// both the point and the segment lists. Validation never aborts: it only
// accumulates diagnostics.
func Validate(paths []geometry.Path, env Envelope) Diagnostics {
	var d Diagnostics
	for _, path := range paths {
		for _, pt := range path {
			ok, reasons := env.CheckPoint(pt)
			if !ok {
				d.Violations++
				d.BadPoints = append(d.BadPoints, pt)
				d.Annotations = append(d.Annotations, Annotation{Point: pt, Reasons: reasons})
			}
		}
		for i := 1; i < len(path); i++ {
			if !env.CheckSegment(path[i-1], path[i]) {
				d.BadSegments = append(d.BadSegments, Segment{A: path[i-1], B: path[i]})
			}
		}
	}
	return d
}
