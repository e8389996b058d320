// Package program models motion-control instructions as structured records
// and serializes them to G-code text only at the output boundary.
package program

import (
	"strconv"
	"strings"
)

// Field is one LETTER<number> argument of a directive, e.g. X12.5 or F1500.
type Field struct {
	Letter string
	Value  float64

	// Decimals fixes the emitted decimal places; negative emits the
	// shortest exact representation.
	Decimals int
}

// F builds a field with shortest-representation formatting.
func F(letter string, value float64) Field {
	return Field{Letter: letter, Value: value, Decimals: -1}
}

// Fixed builds a field with a fixed number of decimals.
func Fixed(letter string, value float64, decimals int) Field {
	return Field{Letter: letter, Value: value, Decimals: decimals}
}

func (f Field) format() string {
	return f.Letter + strconv.FormatFloat(f.Value, 'f', f.Decimals, 64)
}

// Instruction is a single motion/control directive or comment line. An
// instruction parsed from text keeps its raw form and round-trips verbatim.
type Instruction struct {
	// Cmd is the command token (G1, G28, M104, ...); empty for comments.
	Cmd string

	// Fields are the ordered letter arguments.
	Fields []Field

	// Comment is trailing (or whole-line) comment text, without the
	// leading semicolon.
	Comment string

	// raw holds the original text of a parsed line; parsed instructions
	// serialize back verbatim, even when blank.
	raw    string
	parsed bool
}

// NewComment builds a comment-only instruction.
func NewComment(text string) Instruction {
	return Instruction{Comment: text}
}

// NewCommand builds a directive with ordered fields.
func NewCommand(cmd string, fields ...Field) Instruction {
	return Instruction{Cmd: cmd, Fields: fields}
}

// WithComment attaches a trailing comment to a directive.
func (in Instruction) WithComment(text string) Instruction {
	in.Comment = text
	return in
}

// FieldValue returns the value of the named field.
func (in Instruction) FieldValue(letter string) (float64, bool) {
	for _, f := range in.Fields {
		if f.Letter == letter {
			return f.Value, true
		}
	}
	return 0, false
}

// HasField reports whether the named field is present.
func (in Instruction) HasField(letter string) bool {
	_, ok := in.FieldValue(letter)
	return ok
}

// IsComment reports whether the instruction carries no directive.
func (in Instruction) IsComment() bool {
	return in.Cmd == ""
}

// String serializes the instruction to one G-code line. Parsed instructions
// return their original text unchanged.
func (in Instruction) String() string {
	if in.parsed {
		return in.raw
	}
	if in.Cmd == "" {
		return "; " + in.Comment
	}
	var sb strings.Builder
	sb.WriteString(in.Cmd)
	for _, f := range in.Fields {
		sb.WriteByte(' ')
		sb.WriteString(f.format())
	}
	if in.Comment != "" {
		sb.WriteString(" ; ")
		sb.WriteString(in.Comment)
	}
	return sb.String()
}

// Program is an ordered instruction sequence. It is append-only while a
// compilation runs and immutable once returned.
type Program []Instruction

// Lines serializes every instruction.
func (p Program) Lines() []string {
	lines := make([]string, len(p))
	for i, in := range p {
		lines[i] = in.String()
	}
	return lines
}

// Text serializes the program as newline-joined G-code.
func (p Program) Text() string {
	return strings.Join(p.Lines(), "\n")
}

// Directives returns the non-comment instructions, in order.
func (p Program) Directives() []Instruction {
	var out []Instruction
	for _, in := range p {
		if in.Cmd != "" {
			out = append(out, in)
		}
	}
	return out
}
