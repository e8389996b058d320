package program

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"foamgen/pkg/errors"
)

func TestParseLine(t *testing.T) {
	in, err := ParseLine("G1 X10.5 Y-3 Z0 E1.2345 F1500 ; layer 1")
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if in.Cmd != "G1" {
		t.Errorf("Cmd = %q, want G1", in.Cmd)
	}
	if v, ok := in.FieldValue("Y"); !ok || v != -3 {
		t.Errorf("Y = %v, %v", v, ok)
	}
	if v, ok := in.FieldValue("E"); !ok || v != 1.2345 {
		t.Errorf("E = %v, %v", v, ok)
	}
	if in.Comment != "layer 1" {
		t.Errorf("Comment = %q", in.Comment)
	}
}

func TestParseLineComment(t *testing.T) {
	in, err := ParseLine("; End of print")
	if err != nil {
		t.Fatal(err)
	}
	if !in.IsComment() || in.Comment != "End of print" {
		t.Errorf("parsed = %+v", in)
	}
}

func TestParseLineBareAxisFlag(t *testing.T) {
	in, err := ParseLine("G28 X")
	if err != nil {
		t.Fatal(err)
	}
	if !in.HasField("X") {
		t.Error("bare X flag should be present")
	}
}

func TestParseLineBadValue(t *testing.T) {
	_, err := ParseLine("G1 Xabc")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !errors.Is(err, errors.ErrProgramParse) {
		t.Errorf("error = %v, want PROGRAM_PARSE", err)
	}
}

func TestParseProgramRoundTrip(t *testing.T) {
	src := strings.Join([]string{
		"; custom preamble",
		"G28 ; Home all axes",
		"",
		"M104 S215",
		"G92 E0",
	}, "\n")

	prog, err := ParseProgram(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	if diff := cmp.Diff(strings.Split(src, "\n"), prog.Lines()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestParseProgramReportsLine(t *testing.T) {
	src := "G28\nG1 Xnope\n"
	_, err := ParseProgram(strings.NewReader(src))
	if err == nil {
		t.Fatal("expected error")
	}
	ce, ok := err.(*errors.CompileError)
	if !ok {
		t.Fatalf("error type %T", err)
	}
	if ce.Context["line"] != 2 {
		t.Errorf("line context = %v, want 2", ce.Context["line"])
	}
}
