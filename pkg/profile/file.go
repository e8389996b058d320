package profile

import (
	"github.com/BurntSushi/toml"

	"foamgen/pkg/errors"
	"foamgen/pkg/workspace"
)

// fileSpec is the on-disk TOML profile schema.
//
//	mode = "Hot"
//	printer_type = "Cartesian"
//	bed_x = 220.0
//	bed_y = 220.0
//	bed_z = 250.0
//
//	[params]
//	nozzle_temp = 205.0
//	feed_rate = 1800.0
type fileSpec struct {
	Mode        string             `toml:"mode"`
	PrinterType string             `toml:"printer_type"`
	BedX        *float64           `toml:"bed_x"`
	BedY        *float64           `toml:"bed_y"`
	BedZ        *float64           `toml:"bed_z"`
	BedRadius   *float64           `toml:"bed_radius"`
	Params      map[string]float64 `toml:"params"`
}

// LoadFile reads a TOML profile file. Unlike the legacy string decoder, a
// file the operator pointed at explicitly does not fall back silently: read
// and syntax failures are reported.
func LoadFile(path string) (Profile, error) {
	var spec fileSpec
	if _, err := toml.DecodeFile(path, &spec); err != nil {
		return Default(), errors.ProfileFileError(path, err)
	}
	return spec.profile()
}

// LoadString parses a TOML profile from a string.
func LoadString(data string) (Profile, error) {
	var spec fileSpec
	if _, err := toml.Decode(data, &spec); err != nil {
		return Default(), errors.ProfileFileError("<inline>", err)
	}
	return spec.profile()
}

// profile resolves the decoded schema. Unlike the legacy decoders, an
// explicit file gets strict validation: an unknown mode is rejected, not
// silently mapped to Pen.
func (s fileSpec) profile() (Profile, error) {
	p := Default()
	switch Mode(s.Mode) {
	case ModeHot, ModeClay, ModePen:
		p.Mode = Mode(s.Mode)
	case "":
		// Absent mode keeps the motion-only default.
	default:
		return Default(), errors.ProfileModeError(s.Mode)
	}

	printerType := s.PrinterType
	if printerType == "" {
		printerType = "Cartesian"
	}
	switch printerType {
	case "Delta":
		p.Envelope = workspace.Delta{
			Radius: orDefault(s.BedRadius, DefaultBedRadius),
			BedZ:   orDefault(s.BedZ, DefaultBedZ),
		}
	case "Cartesian":
		p.Envelope = workspace.Cartesian{
			BedX: orDefault(s.BedX, DefaultBedX),
			BedY: orDefault(s.BedY, DefaultBedY),
			BedZ: orDefault(s.BedZ, DefaultBedZ),
		}
	default:
		return Default(), errors.ProfileVariantError(printerType)
	}

	for k, v := range s.Params {
		setParam(&p, canonicalKey(k), v)
	}
	return p, nil
}
