package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"benchplot/internal/metrics"
	"benchplot/internal/results"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	noticeStyle = lipgloss.NewStyle().Faint(true)
)

// PrintTarget writes one target's summary: a header, then either the
// per-run metrics table with averages or an insufficient-data notice.
func PrintTarget(w io.Writer, sum metrics.TargetSummary) {
	fmt.Fprintf(w, "\n%s\n", headerStyle.Render(fmt.Sprintf("=== %s ===", sum.TargetID)))

	if !sum.HaveBoth {
		fmt.Fprintln(w, noticeStyle.Render(fmt.Sprintf(
			"Not enough data to compute speedup (need both %s and %s).",
			results.ToolEGAFetch, results.ToolPyEGA3)))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "RUN\t%s\t%s\tTIME REDUCTION %%\tSPEEDUP\tSPEED INCREASE %%\n",
		results.ToolEGAFetch, results.ToolPyEGA3)
	for _, row := range sum.Rows {
		fmt.Fprintf(tw, "%d\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\n",
			row.Run,
			row.EGAFetchMinutes,
			row.PyEGA3Minutes,
			row.TimeReductionPct,
			row.SpeedupX,
			row.SpeedIncreasePct)
	}
	tw.Flush()

	fmt.Fprintln(w, "\nAverages:")
	fmt.Fprintf(w, "  Mean time reduction: %.2f%%\n", sum.MeanTimeReductionPct)
	fmt.Fprintf(w, "  Mean speedup:        %.2f×\n", sum.MeanSpeedupX)
	fmt.Fprintf(w, "  Mean speed increase: %.2f%%\n", sum.MeanSpeedIncreasePct)
}

// PrintSaved reports a written chart file.
func PrintSaved(w io.Writer, path string) {
	fmt.Fprintf(w, "Saved plot: %s\n", path)
}
