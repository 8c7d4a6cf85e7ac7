// Package verify independently re-derives the satisfiability of a claimed
// solution from the original CNF text.
//
// Nothing a solver reports about itself is trusted here: the validator
// re-parses the problem, decodes the claimed assignment and re-checks every
// clause from first principles. This is the audit layer protecting the rest
// of the system against solvers, in particular external hardware solvers,
// that mis-report success.
//
// Validation never returns a Go error. Every outcome, including malformed
// inputs, is encoded in the returned Report.
package verify
