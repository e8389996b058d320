package profile

import (
	"encoding/json"
	"strings"

	"foamgen/pkg/errors"
	"foamgen/pkg/workspace"
)

// The legacy encodings reach us in three physical forms: a keyed mapping, a
// fixed-position list, and a string-serialized variant of either. The
// decoders below are the only place that understands those forms; the rest
// of the compiler sees only Profile.

// Decode builds a Profile from any supported legacy encoding. A nil input
// yields the stock default profile. An input whose structural shape is
// present but whose printer type is neither Cartesian nor Delta is rejected
// explicitly rather than silently defaulted.
func Decode(v interface{}) (Profile, error) {
	switch enc := v.(type) {
	case nil:
		return Default(), nil
	case Profile:
		return enc, nil
	case map[string]interface{}:
		return DecodeMap(enc)
	case []interface{}:
		return DecodeList(enc)
	case string:
		return DecodeString(enc)
	default:
		return Default(), nil
	}
}

// DecodeMap decodes the keyed mapping form:
// Mode, PrinterType, Params, BedX, BedY, BedZ, BedRadius, BedShape.
// Missing keys fall back to defaults; unrecognized keys are ignored.
func DecodeMap(m map[string]interface{}) (Profile, error) {
	p := Default()
	p.Mode = decodeMode(m["Mode"])

	printerType := "Cartesian"
	if v, ok := m["PrinterType"].(string); ok && v != "" {
		printerType = v
	}

	switch printerType {
	case "Delta":
		p.Envelope = workspace.Delta{
			Radius: floatOr(m["BedRadius"], DefaultBedRadius),
			BedZ:   floatOr(m["BedZ"], DefaultBedZ),
		}
	case "Cartesian":
		p.Envelope = workspace.Cartesian{
			BedX: floatOr(m["BedX"], DefaultBedX),
			BedY: floatOr(m["BedY"], DefaultBedY),
			BedZ: floatOr(m["BedZ"], DefaultBedZ),
		}
	default:
		return Default(), errors.ProfileVariantError(printerType)
	}

	if params, ok := m["Params"].(map[string]interface{}); ok {
		applyParams(&p, params)
	}
	return p, nil
}

// DecodeList decodes the fixed-position list form:
// [Mode, PrinterType, Params, BedX, BedY, BedZ, BedRadius, BedShape].
// Absent trailing positions fall back to defaults; the BedShape slot is a
// host-geometry artifact and is ignored.
func DecodeList(list []interface{}) (Profile, error) {
	at := func(i int) interface{} {
		if i < len(list) {
			return list[i]
		}
		return nil
	}

	p := Default()
	p.Mode = decodeMode(at(0))

	printerType := "Cartesian"
	if v, ok := at(1).(string); ok && v != "" {
		printerType = v
	}

	switch printerType {
	case "Delta":
		p.Envelope = workspace.Delta{
			Radius: floatOr(at(6), DefaultBedRadius),
			BedZ:   floatOr(at(5), DefaultBedZ),
		}
	case "Cartesian":
		p.Envelope = workspace.Cartesian{
			BedX: floatOr(at(3), DefaultBedX),
			BedY: floatOr(at(4), DefaultBedY),
			BedZ: floatOr(at(5), DefaultBedZ),
		}
	default:
		return Default(), errors.ProfileVariantError(printerType)
	}

	if params, ok := at(2).(map[string]interface{}); ok {
		applyParams(&p, params)
	}
	return p, nil
}

// DecodeString decodes a string-serialized profile (JSON object or array).
// A string that fails to decode falls back to the full default profile; that
// is a documented outcome, never an error.
func DecodeString(s string) (Profile, error) {
	var v interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &v); err != nil {
		return Default(), nil
	}
	switch enc := v.(type) {
	case map[string]interface{}:
		return DecodeMap(enc)
	case []interface{}:
		return DecodeList(enc)
	default:
		return Default(), nil
	}
}

func decodeMode(v interface{}) Mode {
	s, _ := v.(string)
	switch Mode(s) {
	case ModeHot, ModeClay, ModePen:
		return Mode(s)
	default:
		return ModePen
	}
}

// floatOr coerces a decoded numeric value, falling back when the slot is
// absent, null, or not a number.
func floatOr(v interface{}, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return fallback
	}
}

// canonicalKey folds a parameter name for lookup: case and underscores are
// insignificant, so TOML-style nozzle_temp matches the legacy NozzleTemp.
func canonicalKey(k string) string {
	return strings.ToLower(strings.ReplaceAll(k, "_", ""))
}

// applyParams overlays recognized parameters onto the struct for the active
// mode. Keys belonging to other modes, and unknown keys, are ignored.
func applyParams(p *Profile, params map[string]interface{}) {
	for k, v := range params {
		f, ok := v.(float64)
		if !ok {
			if i, isInt := v.(int); isInt {
				f = float64(i)
			} else {
				continue
			}
		}
		setParam(p, canonicalKey(k), f)
	}
}

func setParam(p *Profile, key string, v float64) {
	switch p.Mode {
	case ModeHot:
		switch key {
		case "nozzletemp":
			p.Hot.NozzleTemp = v
		case "bedtemp":
			p.Hot.BedTemp = v
		case "extrusionmultiplier":
			p.Hot.ExtrusionMultiplier = v
		case "feedrate":
			p.Hot.FeedRate = v
		case "clearanceheight":
			p.Hot.ClearanceHeight = v
		}
	case ModeClay:
		switch key {
		case "extrusionpressure":
			p.Clay.ExtrusionPressure = v
		case "flowrate":
			p.Clay.FlowRate = v
		case "retractiondelay":
			p.Clay.RetractionDelay = v
		case "curepause":
			p.Clay.CurePause = v
		case "feedrate":
			p.Clay.FeedRate = v
		case "clearanceheight":
			p.Clay.ClearanceHeight = v
		}
	case ModePen:
		switch key {
		case "penupheight":
			p.Pen.UpHeight = v
		case "pendownoffset":
			p.Pen.DownOffset = v
		case "pendowndelay":
			p.Pen.DownDelay = v
		case "feedrate":
			p.Pen.FeedRate = v
		}
	}
}
