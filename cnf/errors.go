package cnf

import "fmt"

// A FormatError reports malformed DIMACS input: a bad problem line, a
// non-numeric literal token, or clause data appearing before the header.
type FormatError struct {
	Line int // 1-based line of the offending token, 0 if unknown
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("cnf: line %d: %s", e.Line, e.Msg)
	}
	return "cnf: " + e.Msg
}

// A StructuralError reports a well-formed file whose content is
// inconsistent, i.e. a clause referencing a variable outside the range
// declared by the problem line.
type StructuralError struct {
	Literal int // the offending signed DIMACS literal
	NumVars int
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("cnf: literal %d out of range for problem with %d vars", e.Literal, e.NumVars)
}
