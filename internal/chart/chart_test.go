package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benchplot/internal/metrics"
	"benchplot/internal/results"
)

func sampleData() (metrics.TargetSummary, []results.Record) {
	recs := []results.Record{
		{Run: 1, Tool: results.ToolEGAFetch, TargetID: "EGAD001", ElapsedMinutes: 2.0},
		{Run: 1, Tool: results.ToolPyEGA3, TargetID: "EGAD001", ElapsedMinutes: 6.0},
		{Run: 2, Tool: results.ToolEGAFetch, TargetID: "EGAD001", ElapsedMinutes: 2.5},
		{Run: 2, Tool: results.ToolPyEGA3, TargetID: "EGAD001", ElapsedMinutes: 5.0},
	}
	return metrics.Compute("EGAD001", recs), recs
}

func TestBuild(t *testing.T) {
	sum, recs := sampleData()
	p, err := Build(sum, recs)
	require.NoError(t, err)
	assert.Equal(t, "Download benchmark: EGAD001", p.Title.Text)
	assert.Equal(t, "Run", p.X.Label.Text)
	assert.Equal(t, "Elapsed time (minutes)", p.Y.Label.Text)
	// headroom applied for annotation labels above the pyEGA3 line
	assert.InDelta(t, 6.0*1.12, p.Y.Max, 1e-9)
}

func TestBuild_SingleTool(t *testing.T) {
	recs := []results.Record{
		{Run: 1, Tool: results.ToolEGAFetch, TargetID: "EGAD001", ElapsedMinutes: 2.0},
	}
	sum := metrics.Compute("EGAD001", recs)
	p, err := Build(sum, recs)
	require.NoError(t, err)
	require.NotNil(t, p)
}

func TestSave_Formats(t *testing.T) {
	sum, recs := sampleData()
	p, err := Build(sum, recs)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"bench.png", "bench.svg", "bench.pdf"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(p, path), name)

		info, err := os.Stat(path)
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}
}

func TestSave_UnsupportedFormat(t *testing.T) {
	sum, recs := sampleData()
	p, err := Build(sum, recs)
	require.NoError(t, err)

	err = Save(p, filepath.Join(t.TempDir(), "bench.gif"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestTargetPath(t *testing.T) {
	tests := []struct {
		name   string
		out    string
		target string
		multi  bool
		want   string
	}{
		{"single target untouched", "bench.png", "EGAD001", false, "bench.png"},
		{"multi target embeds id", "bench.png", "EGAD001", true, "bench_EGAD001.png"},
		{"multi with directory", filepath.Join("out", "bench.svg"), "EGAD002", true, filepath.Join("out", "bench_EGAD002.svg")},
		{"multi without extension", "bench", "EGAD001", true, "bench_EGAD001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TargetPath(tt.out, tt.target, tt.multi))
		})
	}
}
