package cnf

// Basic types shared by the parser, the solver and the validator.

// Var is a 0-based variable index. The DIMACS variable 1 is the Var 0.
type Var int32

// Lit is a compact literal encoding: the variable index is stored in the
// high bits and the sign in the last bit. The DIMACS literal -3 is thus
// encoded as 2*(3-1)+1 = 5.
type Lit int32

// IntToLit converts a signed DIMACS literal to a Lit.
func IntToLit(i int) Lit {
	if i < 0 {
		return Lit(2*(-i-1) + 1)
	}
	return Lit(2 * (i - 1))
}

// Var returns the variable of l.
func (l Lit) Var() Var {
	return Var(l / 2)
}

// IsNegated is true iff l is a negated literal.
func (l Lit) IsNegated() bool {
	return l&1 == 1
}

// Negation returns the opposite literal on the same variable.
func (l Lit) Negation() Lit {
	return l ^ 1
}

// Int returns the equivalent signed DIMACS literal.
func (l Lit) Int() int {
	res := int(l/2 + 1)
	if l.IsNegated() {
		return -res
	}
	return res
}

// A Clause is a disjunction of literals. Insertion order is irrelevant to
// semantics but preserved for diagnostic reproducibility.
type Clause []Lit

// Ints returns the clause as signed DIMACS literals, in insertion order.
func (c Clause) Ints() []int {
	res := make([]int, len(c))
	for i, l := range c {
		res[i] = l.Int()
	}
	return res
}

// An Occurrence records that a clause contains a literal on a given
// variable, with the given sign.
type Occurrence struct {
	Clause  int
	Negated bool
}

// A Formula is a parsed CNF problem.
// VarIndex[v] contains (c, s) iff clause c contains the literal (v, s);
// it is built once by Parse and must not be mutated afterwards.
type Formula struct {
	NumVars    int
	NumClauses int
	Clauses    []Clause
	VarIndex   [][]Occurrence
	Source     string // verbatim DIMACS text, kept for audit/replay
}

// Satisfied reports whether clause c is satisfied under the assignment.
// The assignment must have at least NumVars entries.
func (f *Formula) Satisfied(c int, assignment []bool) bool {
	for _, l := range f.Clauses[c] {
		if assignment[l.Var()] != l.IsNegated() {
			return true
		}
	}
	return false
}

// buildVarIndex establishes the VarIndex invariant from the clause list.
func (f *Formula) buildVarIndex() {
	f.VarIndex = make([][]Occurrence, f.NumVars)
	for ci, clause := range f.Clauses {
		for _, l := range clause {
			v := l.Var()
			f.VarIndex[v] = append(f.VarIndex[v], Occurrence{Clause: ci, Negated: l.IsNegated()})
		}
	}
}
