// Package walksat implements the WalkSAT stochastic local-search solver.
//
// The engine is deliberately best-effort: Solve always returns the final
// assignment and its search counters, whether or not the formula was
// satisfied. Satisfiability of a result is only ever asserted by the
// independent validator in package verify, never by the engine itself.
//
// A solve is fully sequential and owns no shared state; batches of formulas
// may be solved concurrently as long as each call receives its own RNG.
package walksat
