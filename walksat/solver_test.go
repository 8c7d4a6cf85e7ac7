package walksat

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacroq/satcore/cnf"
)

const exampleCNF = `p cnf 3 5
1 2 0
-1 -2 0
2 3 0
-2 -3 0
1 3 0
`

func mustParse(t *testing.T, text string) *cnf.Formula {
	t.Helper()
	f, err := cnf.Parse(text)
	require.NoError(t, err)
	return f
}

func TestSolveExample(t *testing.T) {
	f := mustParse(t, exampleCNF)
	res := SolveFormula("example.cnf", f, DefaultConfig(1))
	assert.True(t, res.SolutionFound)
	for ci := range f.Clauses {
		assert.True(t, f.Satisfied(ci, res.Assignment), "clause %d unsatisfied", ci)
	}
	assert.Equal(t, exampleCNF, res.OriginalCNF)
	assert.Len(t, res.SolutionString, 3)
}

func TestSolveZeroClauses(t *testing.T) {
	f := mustParse(t, "p cnf 4 0\n")
	res := SolveFormula("empty.cnf", f, DefaultConfig(7))
	assert.True(t, res.SolutionFound)
	assert.Equal(t, 0, res.TotalSteps)
	assert.Equal(t, 0, res.Restarts)
}

func TestSolveReproducible(t *testing.T) {
	f := mustParse(t, exampleCNF)
	first := Solve(f, DefaultConfig(42))
	second := Solve(f, DefaultConfig(42))
	assert.Equal(t, first.Assignment, second.Assignment)
	assert.Equal(t, first.TotalSteps, second.TotalSteps)
	assert.Equal(t, first.Restarts, second.Restarts)
}

func TestSolveUnsatExhaustsBudget(t *testing.T) {
	f := mustParse(t, "p cnf 1 2\n1 0\n-1 0\n")
	cfg := DefaultConfig(3)
	cfg.MaxSteps = 1000
	cfg.RestartInterval = 100
	res := SolveFormula("unsat.cnf", f, cfg)
	assert.False(t, res.SolutionFound)
	assert.Equal(t, 1000, res.TotalSteps)
	assert.Greater(t, res.Restarts, 0, "expected periodic restarts on an unsat instance")
}

func TestSolveStop(t *testing.T) {
	f := mustParse(t, "p cnf 1 2\n1 0\n-1 0\n")
	cfg := DefaultConfig(3)
	steps := 0
	cfg.Stop = func() bool {
		steps++
		return steps > 10
	}
	res := Solve(f, cfg)
	assert.Equal(t, 10, res.TotalSteps, "search must halt when the caller's cutoff fires")
}

// randomKSAT generates a uniform random 3-SAT instance in DIMACS form.
func randomKSAT(rng *rand.Rand, numVars, numClauses int) string {
	text := fmt.Sprintf("p cnf %d %d\n", numVars, numClauses)
	for i := 0; i < numClauses; i++ {
		seen := make(map[int]bool)
		for len(seen) < 3 {
			seen[1+rng.Intn(numVars)] = true
		}
		for v := range seen {
			if rng.Intn(2) == 0 {
				v = -v
			}
			text += fmt.Sprintf("%d ", v)
		}
		text += "0\n"
	}
	return text
}

// giniSatisfiable asks an independent complete solver whether f is
// satisfiable.
func giniSatisfiable(f *cnf.Formula) bool {
	g := gini.New()
	for _, clause := range f.Clauses {
		for _, l := range clause {
			v := z.Var(int(l.Var()) + 1)
			if l.IsNegated() {
				g.Add(v.Neg())
			} else {
				g.Add(v.Pos())
			}
		}
		g.Add(z.LitNull)
	}
	return g.Solve() == 1
}

// Below the satisfiability threshold, seeded WalkSAT runs with the
// reference budget should nearly always find a model. The expectation is
// statistical: one failure in the batch is tolerated.
func TestSolveSuccessRate(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	gen := rand.New(rand.NewSource(99))
	runs, solved := 0, 0
	for i := 0; i < 40; i++ {
		f := mustParse(t, randomKSAT(gen, 20, 50)) // ratio 2.5
		if !giniSatisfiable(f) {
			continue
		}
		runs++
		res := SolveFormula("random.cnf", f, DefaultConfig(int64(i)))
		if res.SolutionFound {
			solved++
		}
	}
	require.Greater(t, runs, 20, "generator produced too few satisfiable instances")
	assert.GreaterOrEqual(t, solved, runs-1, "solved %d of %d satisfiable instances", solved, runs)
}

// The incremental unsatisfied-set update must stay identical to a full
// rescan after any sequence of flips.
func TestIncrementalUnsatSet(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	f := mustParse(t, randomKSAT(rng, 12, 40))
	s := newSearch(f)
	s.randomize(rng)
	for i := 0; i < 200; i++ {
		s.flip(cnf.Var(rng.Intn(f.NumVars)))
		expected := make(map[int]bool)
		for ci := range f.Clauses {
			if !f.Satisfied(ci, s.assignment) {
				expected[ci] = true
			}
		}
		require.Len(t, s.unsat, len(expected), "flip %d", i)
		for _, ci := range s.unsat {
			require.True(t, expected[ci], "flip %d: clause %d wrongly marked unsatisfied", i, ci)
			require.Equal(t, 0, s.numTrue[ci])
		}
	}
}
