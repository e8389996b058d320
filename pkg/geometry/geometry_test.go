package geometry

import (
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestNewPointRounds(t *testing.T) {
	p := NewPoint(1.00049, 2.0005, -0.0004)
	if p.X != 1.0 {
		t.Errorf("X = %v, want 1.0", p.X)
	}
	if p.Y != 2.001 {
		t.Errorf("Y = %v, want 2.001", p.Y)
	}
	if p.Z != -0.0 && p.Z != 0.0 {
		t.Errorf("Z = %v, want 0", p.Z)
	}
}

func TestRoundFollowsPrecision(t *testing.T) {
	// One digit past Precision must be folded away by the shared scale.
	step := math.Pow10(-Precision)
	p := NewPoint(1+step/4, 0, 0)
	if p.X != 1.0 {
		t.Errorf("X = %v, want 1.0 at %d-decimal precision", p.X, Precision)
	}
	q := NewPoint(1+step, 0, 0)
	if math.Abs(q.X-(1+step)) > 1e-12 {
		t.Errorf("X = %v, want %v preserved", q.X, 1+step)
	}
}

func TestDistanceTo(t *testing.T) {
	a := NewPoint(0, 0, 0)
	b := NewPoint(3, 4, 0)
	if d := a.DistanceTo(b); math.Abs(d-5.0) > 1e-12 {
		t.Errorf("DistanceTo = %v, want 5.0", d)
	}
}

func TestMidpoint(t *testing.T) {
	m := Midpoint(NewPoint(0, 0, 0), NewPoint(10, 4, 2))
	want := Point{X: 5, Y: 2, Z: 1}
	if m != want {
		t.Errorf("Midpoint = %+v, want %+v", m, want)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		src  PointSource
		want int // point count; 0 means nil path
	}{
		{"nil source", nil, 0},
		{"empty polyline", Polyline{}, 0},
		{"two points", Polyline{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}}, 2},
		{"failed conversion", Arc{}, 0}, // zero offset arc cannot convert
	}

	for _, tt := range tests {
		got := Normalize(tt.src)
		if len(got) != tt.want {
			t.Errorf("%s: Normalize yielded %d points, want %d", tt.name, len(got), tt.want)
		}
	}
}

func TestNormalizeRoundsCoordinates(t *testing.T) {
	path := Normalize(Polyline{{X: 1.23456, Y: 0, Z: 9.9999}})
	if len(path) != 1 {
		t.Fatalf("expected 1 point, got %d", len(path))
	}
	if path[0].X != 1.235 || path[0].Z != 10.0 {
		t.Errorf("point not rounded: %+v", path[0])
	}
}

func TestNormalizeAllDropsDegenerate(t *testing.T) {
	sources := []PointSource{
		Polyline{{X: 0, Y: 0, Z: 0}},
		Polyline{},
		nil,
		Polyline{{X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}},
	}
	paths := NormalizeAll(sources)
	if len(paths) != 2 {
		t.Fatalf("NormalizeAll kept %d paths, want 2", len(paths))
	}
	if len(paths[0]) != 1 || len(paths[1]) != 2 {
		t.Errorf("unexpected path lengths: %d, %d", len(paths[0]), len(paths[1]))
	}
}

func TestReadPolylines(t *testing.T) {
	in := `[[[0,0,0],[10,0,0]],[[1,2,3]]]`
	sources, err := ReadPolylines(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadPolylines: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("got %d sources, want 2", len(sources))
	}
	verts, ok := sources[0].Vertices()
	if !ok || len(verts) != 2 {
		t.Errorf("first path: ok=%v verts=%d", ok, len(verts))
	}
	if verts[1] != (r3.Vec{X: 10, Y: 0, Z: 0}) {
		t.Errorf("vertex = %+v", verts[1])
	}
}

func TestReadPolylinesErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not json", `{{`},
		{"bad arity", `[[[1,2]]]`},
	}

	for _, tt := range tests {
		if _, err := ReadPolylines(strings.NewReader(tt.in)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}
