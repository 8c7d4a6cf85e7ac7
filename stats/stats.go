// Package stats holds the numeric primitives used by the reporting layer to
// summarize repeated solver runs: percentile ladders and log10
// time-to-solution statistics. Only true measurements come in; the
// simulated run noise some report paths add lives outside this module.
package stats

import (
	"math"
	"sort"

	"github.com/dacroq/satcore/walksat"
)

// Percentile computes the pth percentile of data by linear interpolation:
// the values are sorted ascending and the rank r = p/100*(n-1) is
// interpolated between its two neighbours by its fractional part. The input
// slice is left untouched.
func Percentile(data []float64, p float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)
	pos := p / 100.0 * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}
	weight := pos - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// CDF is the empirical distribution of time-to-solution values.
type CDF struct {
	Values        []float64 `json:"tts_values"`
	Probabilities []float64 `json:"probabilities"`
}

// Summary aggregates time-to-solution measurements, in seconds.
type Summary struct {
	Runs      int     `json:"runs"`
	MeanLog10 float64 `json:"mean_log10_tts"`
	StdLog10  float64 `json:"std_log10_tts"`
	Median    float64 `json:"median_tts"`
	Q90       float64 `json:"q90_tts"`
	TTS95     float64 `json:"tts_95"`
	CILower   float64 `json:"tts_ci_lower"` // 2.5th percentile
	CIUpper   float64 `json:"tts_ci_upper"` // 97.5th percentile
	CDF       CDF     `json:"cdf"`
}

// Empty reports whether the summary was built from no measurements. An
// empty summary carries +Inf time-to-solution fields.
func (s Summary) Empty() bool {
	return s.Runs == 0
}

// Summarize builds a Summary from raw time-to-solution values in seconds.
// The standard deviation is the population form.
func Summarize(times []float64) Summary {
	n := len(times)
	if n == 0 {
		inf := math.Inf(1)
		return Summary{
			MeanLog10: inf,
			Median:    inf,
			Q90:       inf,
			TTS95:     inf,
			CILower:   inf,
			CIUpper:   inf,
			CDF:       CDF{Values: []float64{inf}, Probabilities: []float64{1}},
		}
	}
	var sum float64
	logs := make([]float64, n)
	for i, v := range times {
		logs[i] = math.Log10(v)
		sum += logs[i]
	}
	mean := sum / float64(n)
	var variance float64
	for _, v := range logs {
		variance += (v - mean) * (v - mean)
	}
	sorted := make([]float64, n)
	copy(sorted, times)
	sort.Float64s(sorted)
	cdf := CDF{
		Values:        sorted,
		Probabilities: make([]float64, n),
	}
	for i := range sorted {
		if n > 1 {
			cdf.Probabilities[i] = float64(i) / float64(n-1)
		} else {
			cdf.Probabilities[i] = 1
		}
	}
	return Summary{
		Runs:      n,
		MeanLog10: mean,
		StdLog10:  math.Sqrt(variance / float64(n)),
		Median:    Percentile(times, 50),
		Q90:       Percentile(times, 90),
		TTS95:     Percentile(times, 95),
		CILower:   Percentile(times, 2.5),
		CIUpper:   Percentile(times, 97.5),
		CDF:       cdf,
	}
}

// FromResults summarizes the measured computation times of a set of solve
// results, in seconds. Unsolved runs are excluded: there is no
// time-to-solution for them.
func FromResults(results []walksat.SolveResult) Summary {
	times := make([]float64, 0, len(results))
	for _, res := range results {
		if res.SolutionFound {
			times = append(times, float64(res.ComputationTimeMicros)/1e6)
		}
	}
	return Summarize(times)
}
