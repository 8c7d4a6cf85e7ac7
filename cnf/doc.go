// Package cnf parses DIMACS CNF problems and holds the shared formula
// representation used by the solver and the validator.
//
// A Formula is immutable once parsed. Besides the clause list it carries an
// occurrence index (variable to clause adjacency) built once at parse time,
// and the verbatim source text so that any claimed solution can later be
// audited against the exact problem that was solved.
package cnf
