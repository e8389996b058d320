package program

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"foamgen/pkg/errors"
)

// ParseLine parses one G-code line into an Instruction. The original text is
// preserved, so a parsed program serializes back verbatim; parsing only adds
// structure for introspection. Blank lines and comments parse successfully.
func ParseLine(line string) (Instruction, error) {
	in := Instruction{raw: line, parsed: true}

	ln := line
	if idx := strings.IndexByte(ln, ';'); idx >= 0 {
		in.Comment = strings.TrimSpace(ln[idx+1:])
		ln = ln[:idx]
	}
	ln = strings.TrimSpace(ln)
	if ln == "" {
		return in, nil
	}

	fields := strings.Fields(ln)
	in.Cmd = strings.ToUpper(fields[0])
	for _, f := range fields[1:] {
		if len(f) < 1 {
			continue
		}
		letter := strings.ToUpper(f[:1])
		rest := f[1:]
		if rest == "" {
			// Bare axis flags (G28 X) carry no value.
			in.Fields = append(in.Fields, Field{Letter: letter, Decimals: -1})
			continue
		}
		v, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return in, errors.ProgramParseError(line, fmt.Sprintf("bad value for field %s", letter))
		}
		in.Fields = append(in.Fields, Field{Letter: letter, Value: v, Decimals: -1})
	}
	return in, nil
}

// ParseProgram reads a line-oriented instruction stream, e.g. an operator
// supplied header override. Every input line is kept, including blanks, so
// the program round-trips byte for byte.
func ParseProgram(r io.Reader) (Program, error) {
	var prog Program
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		in, err := ParseLine(scanner.Text())
		if err != nil {
			if ce, ok := err.(*errors.CompileError); ok {
				return nil, ce.SetContext("line", lineNum)
			}
			return nil, err
		}
		prog = append(prog, in)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrProgramParse, "reading instruction stream")
	}
	return prog, nil
}
