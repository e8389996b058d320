// Package profile defines the printer profile consumed by the FOAM toolpath
// compiler: the process mode, the machine envelope, and the per-mode motion
// and material parameters.
package profile

import "foamgen/pkg/workspace"

// Mode is the material/motion discipline for a compilation run. The wire
// names come from the legacy profile encodings and are kept for
// compatibility with them.
type Mode string

const (
	// ModeHot is thermoplastic FDM: heated nozzle and bed, cumulative
	// extrusion tracking.
	ModeHot Mode = "Hot"

	// ModeClay is paste extrusion (clay, concrete): pressure-based flow,
	// no extrusion axis.
	ModeClay Mode = "Clay"

	// ModePen is motion-only: pen plotting or cold toolpath preview.
	ModePen Mode = "Pen"
)

// Stock bed dimensions used when a profile does not specify its own.
const (
	DefaultBedX      = 300.0
	DefaultBedY      = 300.0
	DefaultBedZ      = 300.0
	DefaultBedRadius = 150.0
)

// HotParams are the thermoplastic mode parameters.
type HotParams struct {
	NozzleTemp          float64
	BedTemp             float64
	ExtrusionMultiplier float64
	FeedRate            float64
	ClearanceHeight     float64
}

// DefaultHotParams returns the documented Hot mode defaults.
func DefaultHotParams() HotParams {
	return HotParams{
		NozzleTemp:          210,
		BedTemp:             30,
		ExtrusionMultiplier: 0.20,
		FeedRate:            1500,
		ClearanceHeight:     5,
	}
}

// ClayParams are the paste extrusion mode parameters.
type ClayParams struct {
	ExtrusionPressure float64
	FlowRate          float64
	RetractionDelay   float64
	CurePause         float64
	FeedRate          float64
	ClearanceHeight   float64
}

// DefaultClayParams returns the documented Clay mode defaults.
func DefaultClayParams() ClayParams {
	return ClayParams{
		ExtrusionPressure: 4.0,
		FlowRate:          10.0,
		RetractionDelay:   0.5,
		CurePause:         0.0,
		FeedRate:          800,
		ClearanceHeight:   5,
	}
}

// PenParams are the motion-only mode parameters.
type PenParams struct {
	UpHeight   float64
	DownOffset float64
	DownDelay  float64
	FeedRate   float64
}

// DefaultPenParams returns the documented Pen mode defaults.
func DefaultPenParams() PenParams {
	return PenParams{
		UpHeight:   5,
		DownOffset: 0.2,
		DownDelay:  100,
		FeedRate:   1000,
	}
}

// Profile is the immutable configuration record for one compilation run.
// Only the parameter struct matching Mode is consulted by the compiler; the
// others stay at their defaults.
type Profile struct {
	Mode     Mode
	Envelope workspace.Envelope

	Hot  HotParams
	Clay ClayParams
	Pen  PenParams
}

// Default returns the stock profile used when configuration input cannot be
// decoded: motion-only on a Cartesian machine with the stock bed.
func Default() Profile {
	return Profile{
		Mode:     ModePen,
		Envelope: workspace.Cartesian{BedX: DefaultBedX, BedY: DefaultBedY, BedZ: DefaultBedZ},
		Hot:      DefaultHotParams(),
		Clay:     DefaultClayParams(),
		Pen:      DefaultPenParams(),
	}
}

// FeedRate returns the configured feed rate for the active mode.
func (p Profile) FeedRate() float64 {
	switch p.Mode {
	case ModeHot:
		return p.Hot.FeedRate
	case ModeClay:
		return p.Clay.FeedRate
	default:
		return p.Pen.FeedRate
	}
}

// Clearance returns the lift height used to bracket each path in the active
// mode. Pen mode lifts by its pen-up height.
func (p Profile) Clearance() float64 {
	switch p.Mode {
	case ModeHot:
		return p.Hot.ClearanceHeight
	case ModeClay:
		return p.Clay.ClearanceHeight
	default:
		return p.Pen.UpHeight
	}
}
