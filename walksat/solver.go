package walksat

import (
	"math/rand"

	"github.com/dacroq/satcore/cnf"
)

// Reference tuning parameters. They are defaults only: every value can be
// overridden per call through Config.
const (
	DefaultMaxSteps        = 100000
	DefaultNoise           = 0.5
	DefaultRestartInterval = 10000
)

// Config holds all tunables for a single solve. Nothing is global: the RNG
// in particular must be owned by the call so that batch runs stay
// reproducible and safe under concurrency.
type Config struct {
	// MaxSteps is the step budget. The engine performs no other form of
	// cancellation on its own.
	MaxSteps int
	// Noise is the probability of a diversifying random move when every
	// candidate flip would break at least one clause.
	Noise float64
	// RestartInterval is the number of steps between full re-randomizations
	// of the assignment while the formula is still unsatisfied. 0 disables
	// restarts.
	RestartInterval int
	// Rand is the random source for this call. A nil Rand is replaced by a
	// deterministic source seeded with 0.
	Rand *rand.Rand
	// Stop, when non-nil, is polled once per step; returning true abandons
	// the search. Wall-clock timeouts are layered here by the caller, the
	// engine has no clock awareness.
	Stop func() bool
}

// DefaultConfig returns the reference configuration with a fresh RNG seeded
// from seed.
func DefaultConfig(seed int64) Config {
	return Config{
		MaxSteps:        DefaultMaxSteps,
		Noise:           DefaultNoise,
		RestartInterval: DefaultRestartInterval,
		Rand:            rand.New(rand.NewSource(seed)),
	}
}

// Result carries the outcome of one search: the final assignment, whether or
// not it satisfies the formula, plus the search counters.
type Result struct {
	Assignment []bool
	Restarts   int
	TotalSteps int
}

// search is the per-solve state: the current assignment and the unsatisfied
// clause set, kept in sync after every flip.
type search struct {
	f          *cnf.Formula
	assignment []bool
	numTrue    []int // satisfied literal count per clause
	unsat      []int // unsatisfied clause indices
	where      []int // position of each clause in unsat, -1 when satisfied
}

func newSearch(f *cnf.Formula) *search {
	return &search{
		f:          f,
		assignment: make([]bool, f.NumVars),
		numTrue:    make([]int, len(f.Clauses)),
		where:      make([]int, len(f.Clauses)),
	}
}

// randomize draws a fresh uniform assignment and rebuilds the unsatisfied
// set with a full scan.
func (s *search) randomize(rng *rand.Rand) {
	for i := range s.assignment {
		s.assignment[i] = rng.Intn(2) == 1
	}
	s.unsat = s.unsat[:0]
	for ci, clause := range s.f.Clauses {
		n := 0
		for _, l := range clause {
			if s.assignment[l.Var()] != l.IsNegated() {
				n++
			}
		}
		s.numTrue[ci] = n
		if n == 0 {
			s.where[ci] = len(s.unsat)
			s.unsat = append(s.unsat, ci)
		} else {
			s.where[ci] = -1
		}
	}
}

// breakCount is the number of currently satisfied clauses that would become
// unsatisfied if v were flipped: exactly those satisfied by a single
// literal, that literal being on v.
func (s *search) breakCount(v cnf.Var) int {
	breaks := 0
	for _, occ := range s.f.VarIndex[v] {
		if s.numTrue[occ.Clause] == 1 && s.assignment[v] != occ.Negated {
			breaks++
		}
	}
	return breaks
}

// flip toggles v and updates the unsatisfied set incrementally. Only
// clauses referencing v can change status, so the update is restricted to
// VarIndex[v]; the resulting set is identical to a full rescan.
func (s *search) flip(v cnf.Var) {
	s.assignment[v] = !s.assignment[v]
	for _, occ := range s.f.VarIndex[v] {
		ci := occ.Clause
		if s.assignment[v] != occ.Negated {
			// The literal on v just became true.
			s.numTrue[ci]++
			if s.numTrue[ci] == 1 {
				s.removeUnsat(ci)
			}
		} else {
			s.numTrue[ci]--
			if s.numTrue[ci] == 0 {
				s.where[ci] = len(s.unsat)
				s.unsat = append(s.unsat, ci)
			}
		}
	}
}

func (s *search) removeUnsat(ci int) {
	pos := s.where[ci]
	last := len(s.unsat) - 1
	s.unsat[pos] = s.unsat[last]
	s.where[s.unsat[pos]] = pos
	s.unsat = s.unsat[:last]
	s.where[ci] = -1
}

// Solve runs WalkSAT on f within the given configuration and returns the
// final assignment and counters, whether or not the formula was satisfied.
func Solve(f *cnf.Formula, cfg Config) Result {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}
	s := newSearch(f)
	s.randomize(rng)
	restarts := 0
	totalSteps := 0
	for step := 0; step < cfg.MaxSteps; step++ {
		if len(s.unsat) == 0 {
			break
		}
		if cfg.Stop != nil && cfg.Stop() {
			break
		}
		totalSteps++
		ci := s.unsat[rng.Intn(len(s.unsat))]
		clause := s.f.Clauses[ci]
		minBreaks := len(s.f.Clauses) + 1
		var best []cnf.Var
		for _, l := range clause {
			breaks := s.breakCount(l.Var())
			if breaks < minBreaks {
				minBreaks = breaks
				best = best[:0]
				best = append(best, l.Var())
			} else if breaks == minBreaks {
				best = append(best, l.Var())
			}
		}
		var v cnf.Var
		if minBreaks > 0 && cfg.Noise > 0 && rng.Float64() < cfg.Noise {
			v = clause[rng.Intn(len(clause))].Var()
		} else {
			v = best[rng.Intn(len(best))]
		}
		s.flip(v)
		// Periodic restart: discard all progress, pure diversification.
		if cfg.RestartInterval > 0 && step > 0 && step%cfg.RestartInterval == 0 && len(s.unsat) > 0 {
			restarts++
			s.randomize(rng)
		}
	}
	return Result{Assignment: s.assignment, Restarts: restarts, TotalSteps: totalSteps}
}
