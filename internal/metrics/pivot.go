package metrics

import (
	"math"
	"sort"

	"benchplot/internal/results"
)

// RunMetrics is one pivoted row: both tools' elapsed minutes for a single
// run, plus the derived comparison metrics. Missing values are NaN.
type RunMetrics struct {
	Run              int
	EGAFetchMinutes  float64
	PyEGA3Minutes    float64
	TimeReductionPct float64
	SpeedupX         float64
	SpeedIncreasePct float64
}

// HasBoth reports whether both tools produced a value for this run.
func (r RunMetrics) HasBoth() bool {
	return !math.IsNaN(r.EGAFetchMinutes) && !math.IsNaN(r.PyEGA3Minutes)
}

// TargetSummary aggregates the pivoted rows for one target.
type TargetSummary struct {
	TargetID string
	Rows     []RunMetrics // sorted by run

	// HaveBoth is true when the target has data for both tools at all.
	// Comparison metrics exist only in that case.
	HaveBoth bool

	MeanTimeReductionPct float64
	MeanSpeedupX         float64
	MeanSpeedIncreasePct float64
}

// Pivot folds a target's records into one row per run with a column per
// tool. The first value seen for a (run, tool) pair wins; later duplicates
// are ignored.
func Pivot(recs []results.Record) []RunMetrics {
	byRun := make(map[int]*RunMetrics)
	var runs []int
	for _, rec := range recs {
		row, ok := byRun[rec.Run]
		if !ok {
			row = &RunMetrics{
				Run:              rec.Run,
				EGAFetchMinutes:  math.NaN(),
				PyEGA3Minutes:    math.NaN(),
				TimeReductionPct: math.NaN(),
				SpeedupX:         math.NaN(),
				SpeedIncreasePct: math.NaN(),
			}
			byRun[rec.Run] = row
			runs = append(runs, rec.Run)
		}
		switch rec.Tool {
		case results.ToolEGAFetch:
			if math.IsNaN(row.EGAFetchMinutes) {
				row.EGAFetchMinutes = rec.ElapsedMinutes
			}
		case results.ToolPyEGA3:
			if math.IsNaN(row.PyEGA3Minutes) {
				row.PyEGA3Minutes = rec.ElapsedMinutes
			}
		}
	}
	sort.Ints(runs)
	rows := make([]RunMetrics, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, *byRun[run])
	}
	return rows
}

// Compute pivots one target's records and derives the comparison metrics.
// Positive time reduction and a speedup above 1 both mean EGAfetch was
// faster. Metrics stay NaN for targets missing either tool.
func Compute(targetID string, recs []results.Record) TargetSummary {
	sum := TargetSummary{
		TargetID:             targetID,
		Rows:                 Pivot(recs),
		MeanTimeReductionPct: math.NaN(),
		MeanSpeedupX:         math.NaN(),
		MeanSpeedIncreasePct: math.NaN(),
	}

	var haveEGA, havePy bool
	for _, rec := range recs {
		switch rec.Tool {
		case results.ToolEGAFetch:
			haveEGA = true
		case results.ToolPyEGA3:
			havePy = true
		}
	}
	sum.HaveBoth = haveEGA && havePy
	if !sum.HaveBoth {
		return sum
	}

	var reductions, speedups, increases []float64
	for i := range sum.Rows {
		row := &sum.Rows[i]
		// NaN operands propagate, matching rows where one tool is absent.
		row.TimeReductionPct = (row.PyEGA3Minutes - row.EGAFetchMinutes) / row.PyEGA3Minutes * 100.0
		row.SpeedupX = row.PyEGA3Minutes / row.EGAFetchMinutes
		row.SpeedIncreasePct = (row.SpeedupX - 1.0) * 100.0

		reductions = append(reductions, row.TimeReductionPct)
		speedups = append(speedups, row.SpeedupX)
		increases = append(increases, row.SpeedIncreasePct)
	}
	sum.MeanTimeReductionPct = mean(reductions)
	sum.MeanSpeedupX = mean(speedups)
	sum.MeanSpeedIncreasePct = mean(increases)
	return sum
}

// mean averages the non-NaN values; NaN when none remain.
func mean(xs []float64) float64 {
	var total float64
	var n int
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		total += x
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return total / float64(n)
}
