package verify

import (
	"fmt"
	"strings"

	"github.com/dacroq/satcore/cnf"
	"github.com/dacroq/satcore/walksat"
)

// State classifies the outcome of a validation call.
type State int

const (
	// StateNoClaim means the caller never claimed a solution; there is
	// nothing to check.
	StateNoClaim State = iota
	// StateIncomplete means a solution was claimed but the claim could not
	// be checked: the assignment payload or the CNF text is missing or
	// undecodable.
	StateIncomplete
	// StateChecked means the claim was fully re-checked against every
	// clause; IsValid carries the verdict.
	StateChecked
)

func (s State) String() string {
	switch s {
	case StateNoClaim:
		return "no-claim"
	case StateIncomplete:
		return "incomplete"
	case StateChecked:
		return "checked"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// A Claim is what a solver, local or external, asserts about a problem.
type Claim struct {
	Claimed  bool   // did the solver claim to have found a solution?
	Solution string // the claimed assignment payload
	Format   Format
}

// A Report is the validator's verdict. It is produced fresh on every call
// and shares no state with the engine; identical inputs always produce an
// identical Report.
type Report struct {
	State              State
	Claimed            bool
	IsValid            bool
	UnsatisfiedClauses []int // 1-based clause indices, for human reporting
	Message            string
}

// Validate re-derives the satisfiability of solutionText against cnfText
// with an auto-detected solution format. It is the plain two-argument form
// for call sites that always claim a solution.
func Validate(cnfText, solutionText string) Report {
	return ValidateClaim(cnfText, Claim{Claimed: true, Solution: solutionText, Format: FormatAuto})
}

// ValidateClaim audits a solver claim. The engine's, or the hardware's, own
// notion of success is never consulted: the CNF text is re-parsed and every
// clause re-checked against the decoded assignment.
func ValidateClaim(cnfText string, claim Claim) Report {
	if !claim.Claimed {
		return Report{State: StateNoClaim, Message: "no solution claimed"}
	}
	if strings.TrimSpace(cnfText) == "" {
		return Report{State: StateIncomplete, Claimed: true, Message: "solution claimed but CNF text is missing"}
	}
	if strings.TrimSpace(claim.Solution) == "" {
		return Report{State: StateIncomplete, Claimed: true, Message: "solution claimed but no assignment payload"}
	}
	f, err := cnf.Parse(cnfText)
	if err != nil {
		return Report{State: StateIncomplete, Claimed: true, Message: fmt.Sprintf("cannot parse CNF: %v", err)}
	}
	assignment, err := ParseSolution(claim.Solution, claim.Format, f.NumVars)
	if err != nil {
		return Report{State: StateIncomplete, Claimed: true, Message: fmt.Sprintf("cannot parse solution: %v", err)}
	}
	var unsat []int
	for ci, clause := range f.Clauses {
		satisfied := false
		for _, l := range clause {
			val, ok := assignment[int(l.Var())]
			if !ok {
				// Distinct condition: the claim does not cover this
				// variable at all. Never a silent failure.
				return Report{
					State:   StateChecked,
					Claimed: true,
					Message: fmt.Sprintf("validation error: variable %d not assigned", int(l.Var())+1),
				}
			}
			if val != l.IsNegated() {
				satisfied = true
			}
		}
		if !satisfied {
			unsat = append(unsat, ci+1)
		}
	}
	report := Report{State: StateChecked, Claimed: true, UnsatisfiedClauses: unsat}
	if len(unsat) == 0 {
		report.IsValid = true
		report.Message = fmt.Sprintf("all %d clauses satisfied", len(f.Clauses))
	} else {
		report.Message = fmt.Sprintf("%d of %d clauses unsatisfied", len(unsat), len(f.Clauses))
	}
	return report
}

// AuditResult re-checks a SolveResult from first principles, treating the
// engine as just another untrusted solver. A SolveResult that claims
// success but fails this audit indicates a logic bug in the search loop.
func AuditResult(res walksat.SolveResult) Report {
	return ValidateClaim(res.OriginalCNF, Claim{
		Claimed:  res.SolutionFound,
		Solution: res.SolutionString,
		Format:   FormatBitString,
	})
}
