package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"benchplot/internal/metrics"
	"benchplot/internal/results"
)

func TestPrintTarget(t *testing.T) {
	recs := []results.Record{
		{Run: 1, Tool: results.ToolEGAFetch, ElapsedMinutes: 2.0},
		{Run: 1, Tool: results.ToolPyEGA3, ElapsedMinutes: 6.0},
		{Run: 2, Tool: results.ToolEGAFetch, ElapsedMinutes: 2.5},
		{Run: 2, Tool: results.ToolPyEGA3, ElapsedMinutes: 5.0},
	}
	sum := metrics.Compute("EGAD001", recs)

	var buf bytes.Buffer
	PrintTarget(&buf, sum)
	out := buf.String()

	assert.Contains(t, out, "=== EGAD001 ===")
	assert.Contains(t, out, "EGAfetch")
	assert.Contains(t, out, "pyEGA3")
	assert.Contains(t, out, "2.000")
	assert.Contains(t, out, "6.000")
	assert.Contains(t, out, "Averages:")
	assert.Contains(t, out, "Mean speedup:")
	assert.Contains(t, out, "×")
	// mean of speedups 3.0 and 2.0
	assert.Contains(t, out, "2.50×")
}

func TestPrintTarget_InsufficientData(t *testing.T) {
	recs := []results.Record{
		{Run: 1, Tool: results.ToolEGAFetch, ElapsedMinutes: 2.0},
	}
	sum := metrics.Compute("EGAD001", recs)

	var buf bytes.Buffer
	PrintTarget(&buf, sum)
	out := buf.String()

	assert.Contains(t, out, "Not enough data to compute speedup")
	assert.Contains(t, out, "EGAfetch")
	assert.Contains(t, out, "pyEGA3")
	assert.NotContains(t, out, "Averages:")
	assert.NotContains(t, out, "RUN")
}

func TestPrintSaved(t *testing.T) {
	var buf bytes.Buffer
	PrintSaved(&buf, "out/bench_EGAD001.png")
	assert.Equal(t, "Saved plot: out/bench_EGAD001.png\n", buf.String())
}
