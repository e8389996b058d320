// Package compiler walks ordered toolpaths and emits a motion program for
// the configured machine, validating every point and segment against the
// machine envelope along the way.
package compiler

import (
	"github.com/google/uuid"

	"foamgen/pkg/geometry"
	"foamgen/pkg/log"
	"foamgen/pkg/profile"
	"foamgen/pkg/program"
	"foamgen/pkg/workspace"
)

// RapidFeedRate is the fixed feed rate for the lift/approach brackets around
// each path, in mm/min.
const RapidFeedRate = 2000.0

// Compiler turns normalized toolpaths into an instruction stream. It holds
// no per-run state: all run state lives in the compilation call.
type Compiler struct {
	log *log.Logger
}

// New creates a Compiler. A nil logger uses the process default.
func New(logger *log.Logger) *Compiler {
	if logger == nil {
		logger = log.Default().Component("compiler")
	}
	return &Compiler{log: logger}
}

// Compile runs one full compilation: normalize the raw sources, validate
// against the profile's envelope, compile motion per path, and bracket the
// body with the header and footer. Validation never aborts the run; bounds
// problems surface only in the result diagnostics.
//
// A non-empty base program replaces the synthesized header verbatim. The
// synthesized footer is appended regardless of the header source.
func (c *Compiler) Compile(sources []geometry.PointSource, prof profile.Profile, base program.Program) Result {
	paths := geometry.NormalizeAll(sources)
	diags := workspace.Validate(paths, prof.Envelope)

	prog := header(prof, base)
	prog = c.compileMotion(prog, paths, prof)
	prog = footer(prog, prof)

	res := Result{
		RunID:       uuid.New(),
		Program:     prog,
		Status:      diags.Status(),
		Diagnostics: diags,
		Paths:       paths,
		Sources:     len(sources),
	}

	if diags.Violations > 0 {
		c.log.Warnf("%s", res.Status)
	}
	c.log.WithFields(log.Fields{
		"run":   res.RunID,
		"mode":  string(prof.Mode),
		"paths": len(paths),
		"lines": len(prog),
	}).Debugf("compilation complete")

	return res
}

// compileMotion emits the per-path motion body. Cumulative extrusion is the
// only state carried across paths, and only Hot mode uses it.
func (c *Compiler) compileMotion(prog program.Program, paths []geometry.Path, prof profile.Profile) program.Program {
	extrusion := 0.0
	feed := prof.FeedRate()
	clearance := prof.Clearance()

	for _, path := range paths {
		first := path[0]
		prog = append(prog,
			program.NewComment("Start path"),
			program.NewCommand("G1",
				program.F("X", first.X), program.F("Y", first.Y),
				program.F("Z", first.Z+clearance), program.F("F", RapidFeedRate),
			).WithComment("move above start"),
			program.NewCommand("G1",
				program.F("X", first.X), program.F("Y", first.Y),
				program.F("Z", first.Z), program.F("F", feed),
			).WithComment("descend to start"),
		)

		for j := 1; j < len(path); j++ {
			pt := path[j]
			if prof.Mode == profile.ModeHot {
				extrusion += path[j-1].DistanceTo(pt) * prof.Hot.ExtrusionMultiplier
				prog = append(prog, program.NewCommand("G1",
					program.F("X", pt.X), program.F("Y", pt.Y), program.F("Z", pt.Z),
					program.Fixed("E", extrusion, 4), program.F("F", feed),
				))
			} else {
				prog = append(prog, program.NewCommand("G1",
					program.F("X", pt.X), program.F("Y", pt.Y), program.F("Z", pt.Z),
					program.F("F", feed),
				))
			}
		}

		last := path[len(path)-1]
		prog = append(prog,
			program.NewComment("End path"),
			program.NewCommand("G1",
				program.F("Z", last.Z+clearance), program.F("F", RapidFeedRate),
			).WithComment("lift tool"),
		)
	}
	return prog
}

// Compile runs a compilation with the default compiler.
func Compile(sources []geometry.PointSource, prof profile.Profile, base program.Program) Result {
	return New(nil).Compile(sources, prof, base)
}
