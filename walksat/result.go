package walksat

import (
	"strings"
	"time"

	"github.com/dacroq/satcore/cnf"
)

// SolveResult is the audit record of one solve call. It is created once,
// never mutated, and keeps the verbatim problem text so the claimed solution
// can be re-checked at any later time. Only true measured fields appear
// here; any simulated benchmark statistics are the business of the
// reporting layer, not of this package.
type SolveResult struct {
	Filename              string      `json:"filename"`
	Metrics               cnf.Metrics `json:"metrics"`
	SolutionFound         bool        `json:"solution_found"`
	Assignment            []bool      `json:"-"`
	SolutionString        string      `json:"solution_string"`
	ComputationTimeMicros int64       `json:"computation_time_us"`
	Restarts              int         `json:"restarts"`
	TotalSteps            int         `json:"total_steps"`
	OriginalCNF           string      `json:"original_cnf"`
}

// SolveFormula runs the engine on f and assembles the full SolveResult.
// SolutionFound is re-derived by a complete clause scan over the final
// assignment rather than taken from the engine's early exit, so a logic bug
// in the search loop cannot mis-report success here.
func SolveFormula(filename string, f *cnf.Formula, cfg Config) SolveResult {
	start := time.Now()
	res := Solve(f, cfg)
	elapsed := time.Since(start)

	found := true
	for ci := range f.Clauses {
		if !f.Satisfied(ci, res.Assignment) {
			found = false
			break
		}
	}

	var sol strings.Builder
	sol.Grow(len(res.Assignment))
	for _, val := range res.Assignment {
		if val {
			sol.WriteByte('1')
		} else {
			sol.WriteByte('0')
		}
	}

	return SolveResult{
		Filename:              filename,
		Metrics:               f.ComputeMetrics(),
		SolutionFound:         found,
		Assignment:            res.Assignment,
		SolutionString:        sol.String(),
		ComputationTimeMicros: elapsed.Microseconds(),
		Restarts:              res.Restarts,
		TotalSteps:            res.TotalSteps,
		OriginalCNF:           f.Source,
	}
}
