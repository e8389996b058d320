package compiler

import (
	"foamgen/pkg/profile"
	"foamgen/pkg/program"
)

// header returns the program preamble. A non-empty base program is used
// verbatim in place of the synthesized header; temperature setup and the
// extrusion reset are then the operator's responsibility.
func header(prof profile.Profile, base program.Program) program.Program {
	if len(base) > 0 {
		return append(program.Program{}, base...)
	}

	prog := program.Program{
		program.NewComment("FOAM G-code Generator"),
		program.NewCommand("G28").WithComment("Home all axes"),
	}
	if prof.Mode == profile.ModeHot {
		prog = append(prog,
			program.NewCommand("M104", program.F("S", prof.Hot.NozzleTemp)).WithComment("set nozzle temp"),
			program.NewCommand("M140", program.F("S", prof.Hot.BedTemp)).WithComment("set bed temp"),
		)
	}
	return append(prog, program.NewCommand("G92", program.F("E", 0)).WithComment("Reset extrusion"))
}

// footer appends the shutdown sequence. It is emitted on every run, header
// override or not.
func footer(prog program.Program, prof profile.Profile) program.Program {
	prog = append(prog, program.NewComment("End of FOAM print"))
	if prof.Mode == profile.ModeHot {
		prog = append(prog,
			program.NewCommand("M104", program.F("S", 0)).WithComment("turn off hotend"),
			program.NewCommand("M140", program.F("S", 0)).WithComment("turn off bed"),
		)
	}
	return append(prog,
		program.NewCommand("M107").WithComment("fans off"),
		program.NewCommand("G28", program.F("X", 0)).WithComment("home X"),
		program.NewCommand("M84").WithComment("disable motors"),
	)
}
