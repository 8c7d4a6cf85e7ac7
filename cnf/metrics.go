package cnf

// Metrics are measured structural properties of a formula. They describe the
// problem itself, never the solving process.
type Metrics struct {
	Variables      int     `json:"variables"`
	Clauses        int     `json:"clauses"`
	ClauseVarRatio float64 `json:"clause_var_ratio"`
	AvgClauseSize  float64 `json:"avg_clause_size"`
	MaxClauseSize  int     `json:"max_clause_size"`
	MinClauseSize  int     `json:"min_clause_size"`
}

// ComputeMetrics derives Metrics from the parsed clause list.
func (f *Formula) ComputeMetrics() Metrics {
	m := Metrics{
		Variables: f.NumVars,
		Clauses:   f.NumClauses,
	}
	if f.NumVars > 0 {
		m.ClauseVarRatio = float64(f.NumClauses) / float64(f.NumVars)
	}
	if len(f.Clauses) == 0 {
		return m
	}
	total := 0
	m.MinClauseSize = len(f.Clauses[0])
	for _, clause := range f.Clauses {
		size := len(clause)
		total += size
		if size > m.MaxClauseSize {
			m.MaxClauseSize = size
		}
		if size < m.MinClauseSize {
			m.MinClauseSize = size
		}
	}
	m.AvgClauseSize = float64(total) / float64(len(f.Clauses))
	return m
}
