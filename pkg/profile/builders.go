package profile

import "foamgen/pkg/workspace"

// Setup constructors for the three modes. Optional fields are pointers: nil
// means "use the documented default", so a zero value (CurePause 0.0) can
// still be set explicitly.

// BedSetup selects the machine envelope for a profile under construction.
type BedSetup struct {
	// PrinterType is "Cartesian" (default) or "Delta". Use FromToggle to
	// convert the legacy numeric selector.
	PrinterType string

	BedX, BedY, BedZ *float64
	BedRadius        *float64
}

// FromToggle converts the legacy numeric printer selector (0 = Cartesian,
// 1 = Delta) into a printer type name.
func FromToggle(t int) string {
	if t == 1 {
		return "Delta"
	}
	return "Cartesian"
}

func (b BedSetup) envelope() workspace.Envelope {
	if b.PrinterType == "Delta" {
		return workspace.Delta{
			Radius: orDefault(b.BedRadius, DefaultBedRadius),
			BedZ:   orDefault(b.BedZ, DefaultBedZ),
		}
	}
	return workspace.Cartesian{
		BedX: orDefault(b.BedX, DefaultBedX),
		BedY: orDefault(b.BedY, DefaultBedY),
		BedZ: orDefault(b.BedZ, DefaultBedZ),
	}
}

// HotSetup builds a thermoplastic profile.
type HotSetup struct {
	Bed BedSetup

	NozzleTemp          *float64
	BedTemp             *float64
	ExtrusionMultiplier *float64
	FeedRate            *float64
	ClearanceHeight     *float64
}

// NewHot returns a Hot profile with defaults filled in.
func NewHot(s HotSetup) Profile {
	p := Default()
	p.Mode = ModeHot
	p.Envelope = s.Bed.envelope()
	p.Hot = HotParams{
		NozzleTemp:          orDefault(s.NozzleTemp, 210),
		BedTemp:             orDefault(s.BedTemp, 30),
		ExtrusionMultiplier: orDefault(s.ExtrusionMultiplier, 0.20),
		FeedRate:            orDefault(s.FeedRate, 1500),
		ClearanceHeight:     orDefault(s.ClearanceHeight, 5),
	}
	return p
}

// ClaySetup builds a paste extrusion profile.
type ClaySetup struct {
	Bed BedSetup

	ExtrusionPressure *float64
	FlowRate          *float64
	RetractionDelay   *float64
	CurePause         *float64
	FeedRate          *float64
	ClearanceHeight   *float64
}

// NewClay returns a Clay profile with defaults filled in.
func NewClay(s ClaySetup) Profile {
	p := Default()
	p.Mode = ModeClay
	p.Envelope = s.Bed.envelope()
	p.Clay = ClayParams{
		ExtrusionPressure: orDefault(s.ExtrusionPressure, 4.0),
		FlowRate:          orDefault(s.FlowRate, 10.0),
		RetractionDelay:   orDefault(s.RetractionDelay, 0.5),
		CurePause:         orDefault(s.CurePause, 0.0),
		FeedRate:          orDefault(s.FeedRate, 800),
		ClearanceHeight:   orDefault(s.ClearanceHeight, 5),
	}
	return p
}

// PenSetup builds a motion-only profile.
type PenSetup struct {
	Bed BedSetup

	UpHeight   *float64
	DownOffset *float64
	DownDelay  *float64
	FeedRate   *float64
}

// NewPen returns a Pen profile with defaults filled in.
func NewPen(s PenSetup) Profile {
	p := Default()
	p.Mode = ModePen
	p.Envelope = s.Bed.envelope()
	p.Pen = PenParams{
		UpHeight:   orDefault(s.UpHeight, 5),
		DownOffset: orDefault(s.DownOffset, 0.2),
		DownDelay:  orDefault(s.DownDelay, 100),
		FeedRate:   orDefault(s.FeedRate, 1000),
	}
	return p
}

func orDefault(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}

// Float is a convenience for building setups with literal overrides.
func Float(v float64) *float64 {
	return &v
}
