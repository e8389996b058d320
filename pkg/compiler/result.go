package compiler

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"foamgen/pkg/geometry"
	"foamgen/pkg/program"
	"foamgen/pkg/workspace"
)

// Result is the outcome of one compilation run. A result is always produced,
// even when every input point lies outside the envelope; Status and
// Diagnostics carry the verdict.
type Result struct {
	RunID       uuid.UUID
	Program     program.Program
	Status      string
	Diagnostics workspace.Diagnostics

	// Paths holds the normalized toolpaths the program was compiled from.
	Paths []geometry.Path

	// Sources counts the raw inputs, including ones that yielded no path.
	Sources int
}

// Report summarizes the run in one line per fact.
func (r Result) Report() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Geometry inputs: %d\n", r.Sources)
	fmt.Fprintf(&sb, "Toolpaths: %d\n", len(r.Paths))
	fmt.Fprintf(&sb, "G-code lines: %d\n", len(r.Program))
	fmt.Fprintf(&sb, "Status: %s", r.Status)
	return sb.String()
}

// Preview returns the first n lines of the program followed by a total-line
// trailer, mirroring what an operator sees before committing to a run.
func (r Result) Preview(n int) string {
	lines := r.Program.Lines()
	if len(lines) == 0 {
		return "no G-code generated"
	}
	if n > len(lines) {
		n = len(lines)
	}
	var sb strings.Builder
	for _, ln := range lines[:n] {
		sb.WriteString(ln)
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "... (%d lines total)", len(lines))
	return sb.String()
}
