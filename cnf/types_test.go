package cnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLitRoundTrip(t *testing.T) {
	for _, i := range []int{1, -1, 3, -3, 42, -42, 1000, -1000} {
		l := IntToLit(i)
		assert.Equal(t, i, l.Int(), "round trip of literal %d", i)
		assert.Equal(t, i < 0, l.IsNegated())
		assert.Equal(t, Var((abs(i))-1), l.Var())
		assert.Equal(t, -i, l.Negation().Int())
	}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

func TestSatisfied(t *testing.T) {
	f, err := Parse("p cnf 3 2\n1 -2 0\n-1 3 0\n")
	assert.NoError(t, err)
	tests := []struct {
		assignment []bool
		clause     int
		expected   bool
	}{
		{[]bool{true, true, true}, 0, true}, // 1 satisfies
		{[]bool{false, true, false}, 0, false},
		{[]bool{false, true, false}, 1, true}, // -1 satisfies
		{[]bool{true, false, false}, 1, false},
		{[]bool{true, false, true}, 1, true}, // 3 satisfies
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, f.Satisfied(test.clause, test.assignment),
			"clause %d under %v", test.clause, test.assignment)
	}
}

func TestVarIndexInvariant(t *testing.T) {
	f, err := Parse("p cnf 4 3\n1 -2 3 0\n-1 -3 0\n2 4 0\n")
	assert.NoError(t, err)
	// VarIndex[v] contains (c, s) iff clause c contains the literal (v, s).
	for v := 0; v < f.NumVars; v++ {
		seen := make(map[Occurrence]bool)
		for _, occ := range f.VarIndex[v] {
			seen[occ] = true
		}
		for ci, clause := range f.Clauses {
			for _, l := range clause {
				if int(l.Var()) == v {
					assert.True(t, seen[Occurrence{Clause: ci, Negated: l.IsNegated()}],
						"missing occurrence of var %d in clause %d", v, ci)
					delete(seen, Occurrence{Clause: ci, Negated: l.IsNegated()})
				}
			}
		}
		assert.Empty(t, seen, "spurious occurrences for var %d", v)
	}
}
