package cnf

import (
	"bufio"
	"strconv"
	"strings"
)

// Parse reads a DIMACS CNF problem from text and returns the corresponding
// Formula. The verbatim input is retained in Formula.Source.
//
// Comment lines start with 'c'. Exactly one problem line "p cnf V C" must
// appear before any clause data. Clause boundaries are determined solely by
// the literal token "0": a clause may span several lines and a line may hold
// several clauses. A trailing clause with no terminating 0 at EOF is kept.
// Literals referencing a variable outside the declared range are rejected.
func Parse(text string) (*Formula, error) {
	f := &Formula{Source: text}
	var (
		current   Clause
		sawHeader bool
		lineNo    int
	)
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == 'c' {
			continue
		}
		if line[0] == 'p' {
			if sawHeader {
				return nil, &FormatError{Line: lineNo, Msg: "duplicate problem line"}
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, &FormatError{Line: lineNo, Msg: "invalid problem line " + strconv.Quote(line)}
			}
			nbVars, err := strconv.Atoi(fields[2])
			if err != nil || nbVars < 0 {
				return nil, &FormatError{Line: lineNo, Msg: "invalid number of variables " + strconv.Quote(fields[2])}
			}
			nbClauses, err := strconv.Atoi(fields[3])
			if err != nil || nbClauses < 0 {
				return nil, &FormatError{Line: lineNo, Msg: "invalid number of clauses " + strconv.Quote(fields[3])}
			}
			f.NumVars = nbVars
			f.NumClauses = nbClauses
			f.Clauses = make([]Clause, 0, nbClauses)
			sawHeader = true
			continue
		}
		if !sawHeader {
			return nil, &FormatError{Line: lineNo, Msg: "clause data before problem line"}
		}
		for _, tok := range strings.Fields(line) {
			val, err := strconv.Atoi(tok)
			if err != nil {
				return nil, &FormatError{Line: lineNo, Msg: "invalid literal " + strconv.Quote(tok)}
			}
			if val == 0 {
				if len(current) > 0 {
					f.Clauses = append(f.Clauses, current)
					current = nil
				}
				continue
			}
			if val > f.NumVars || -val > f.NumVars {
				return nil, &StructuralError{Literal: val, NumVars: f.NumVars}
			}
			current = append(current, IntToLit(val))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &FormatError{Msg: err.Error()}
	}
	if !sawHeader {
		return nil, &FormatError{Msg: "missing problem line"}
	}
	// Lenient about a missing final terminator.
	if len(current) > 0 {
		f.Clauses = append(f.Clauses, current)
	}
	f.buildVarIndex()
	return f, nil
}
