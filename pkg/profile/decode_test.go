package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foamgen/pkg/errors"
	"foamgen/pkg/workspace"
)

func TestDecodeMapCartesian(t *testing.T) {
	p, err := DecodeMap(map[string]interface{}{
		"Mode":        "Hot",
		"PrinterType": "Cartesian",
		"BedX":        220.0,
		"BedY":        220.0,
		"BedZ":        250.0,
		"Params": map[string]interface{}{
			"NozzleTemp": 205.0,
			"FeedRate":   1800.0,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, ModeHot, p.Mode)
	assert.Equal(t, workspace.Cartesian{BedX: 220, BedY: 220, BedZ: 250}, p.Envelope)
	assert.Equal(t, 205.0, p.Hot.NozzleTemp)
	assert.Equal(t, 1800.0, p.Hot.FeedRate)
	// Unspecified parameters keep their defaults.
	assert.Equal(t, 30.0, p.Hot.BedTemp)
	assert.Equal(t, 0.20, p.Hot.ExtrusionMultiplier)
}

func TestDecodeMapDelta(t *testing.T) {
	p, err := DecodeMap(map[string]interface{}{
		"Mode":        "Clay",
		"PrinterType": "Delta",
		"BedRadius":   180.0,
		"BedZ":        400.0,
	})
	require.NoError(t, err)

	assert.Equal(t, ModeClay, p.Mode)
	assert.Equal(t, workspace.Delta{Radius: 180, BedZ: 400}, p.Envelope)
	assert.Equal(t, 800.0, p.Clay.FeedRate)
}

func TestDecodeMapDefaults(t *testing.T) {
	p, err := DecodeMap(map[string]interface{}{})
	require.NoError(t, err)

	assert.Equal(t, ModePen, p.Mode)
	assert.Equal(t, workspace.Cartesian{BedX: 300, BedY: 300, BedZ: 300}, p.Envelope)
}

func TestDecodeMapAmbiguousVariant(t *testing.T) {
	_, err := DecodeMap(map[string]interface{}{
		"Mode":        "Hot",
		"PrinterType": "Polar",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrProfileVariant))
}

func TestDecodeMapIgnoresUnrecognizedParams(t *testing.T) {
	p, err := DecodeMap(map[string]interface{}{
		"Mode": "Pen",
		"Params": map[string]interface{}{
			"PenUpHeight": 8.0,
			"NozzleTemp":  999.0, // Hot-mode key, ignored in Pen mode
			"Bogus":       1.0,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 8.0, p.Pen.UpHeight)
	assert.Equal(t, 210.0, p.Hot.NozzleTemp)
}

func TestDecodeListCartesian(t *testing.T) {
	p, err := DecodeList([]interface{}{
		"Hot", "Cartesian",
		map[string]interface{}{"ExtrusionMultiplier": 0.3},
		200.0, 210.0, 220.0, nil,
	})
	require.NoError(t, err)

	assert.Equal(t, ModeHot, p.Mode)
	assert.Equal(t, workspace.Cartesian{BedX: 200, BedY: 210, BedZ: 220}, p.Envelope)
	assert.Equal(t, 0.3, p.Hot.ExtrusionMultiplier)
}

func TestDecodeListDeltaPositions(t *testing.T) {
	// Delta reads BedZ from slot 5 and BedRadius from slot 6.
	p, err := DecodeList([]interface{}{
		"Pen", "Delta", nil, nil, nil, 350.0, 125.0,
	})
	require.NoError(t, err)

	assert.Equal(t, workspace.Delta{Radius: 125, BedZ: 350}, p.Envelope)
}

func TestDecodeListMissingTrailingBedShape(t *testing.T) {
	// A legacy list missing the trailing bed-shape slot must decode without
	// raising and fall back to a default-shaped bed.
	p, err := DecodeList([]interface{}{"Pen", "Cartesian", nil, 300.0, 300.0, 300.0})
	require.NoError(t, err)
	assert.Equal(t, workspace.Cartesian{BedX: 300, BedY: 300, BedZ: 300}, p.Envelope)
}

func TestDecodeListShort(t *testing.T) {
	p, err := DecodeList([]interface{}{"Clay"})
	require.NoError(t, err)
	assert.Equal(t, ModeClay, p.Mode)
	assert.Equal(t, workspace.Cartesian{BedX: 300, BedY: 300, BedZ: 300}, p.Envelope)
}

func TestDecodeListAmbiguousVariant(t *testing.T) {
	_, err := DecodeList([]interface{}{"Pen", "Scara"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrProfileVariant))
}

func TestDecodeStringJSON(t *testing.T) {
	p, err := DecodeString(`{"Mode":"Hot","PrinterType":"Cartesian","BedX":150}`)
	require.NoError(t, err)
	assert.Equal(t, ModeHot, p.Mode)
	assert.Equal(t, workspace.Cartesian{BedX: 150, BedY: 300, BedZ: 300}, p.Envelope)
}

func TestDecodeStringUndecodableFallsBack(t *testing.T) {
	for _, in := range []string{"", "not json at all", "{broken", "42"} {
		p, err := DecodeString(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, Default(), p, "input %q", in)
	}
}

func TestDecodeUnknownModeFallsBackToPen(t *testing.T) {
	p, err := DecodeMap(map[string]interface{}{"Mode": "Laser"})
	require.NoError(t, err)
	assert.Equal(t, ModePen, p.Mode)
}

func TestDecodeDispatch(t *testing.T) {
	p, err := Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)

	p, err = Decode([]interface{}{"Hot"})
	require.NoError(t, err)
	assert.Equal(t, ModeHot, p.Mode)

	custom := NewClay(ClaySetup{})
	p, err = Decode(custom)
	require.NoError(t, err)
	assert.Equal(t, custom, p)
}

func TestModeAccessors(t *testing.T) {
	hot := NewHot(HotSetup{})
	assert.Equal(t, 1500.0, hot.FeedRate())
	assert.Equal(t, 5.0, hot.Clearance())

	clay := NewClay(ClaySetup{})
	assert.Equal(t, 800.0, clay.FeedRate())

	pen := NewPen(PenSetup{UpHeight: Float(12)})
	assert.Equal(t, 1000.0, pen.FeedRate())
	assert.Equal(t, 12.0, pen.Clearance())
}
