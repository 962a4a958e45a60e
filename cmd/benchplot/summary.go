package main

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"benchplot/internal/metrics"
	"benchplot/internal/report"
	"benchplot/internal/results"
)

var (
	summaryCSV         string
	summaryOnlySuccess bool
	summaryFormat      string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print per-target speedup tables without rendering charts",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringVar(&summaryCSV, "csv", "", "Path to results.csv")
	summaryCmd.Flags().BoolVar(&summaryOnlySuccess, "only-success", false, "Include only rows with exit_code == 0")
	summaryCmd.Flags().StringVar(&summaryFormat, "format", "table", "Output format (table, json)")
	summaryCmd.MarkFlagRequired("csv")
}

func runSummary(cmd *cobra.Command, args []string) error {
	recs, err := results.LoadRecords(summaryCSV, summaryOnlySuccess)
	if err != nil {
		return err
	}

	targets := results.Targets(recs)
	sums := make([]metrics.TargetSummary, 0, len(targets))
	for _, target := range targets {
		sums = append(sums, metrics.Compute(target, results.ForTarget(recs, target)))
	}

	switch summaryFormat {
	case "table":
		for _, sum := range sums {
			report.PrintTarget(cmd.OutOrStdout(), sum)
		}
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(toJSONSummaries(sums)); err != nil {
			return fmt.Errorf("encode summary: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q (use table or json)", summaryFormat)
	}
	return nil
}

// JSON mirror types: NaN is not representable in JSON, so missing values
// become nulls via pointers.

type runJSON struct {
	Run              int      `json:"run"`
	EGAFetchMinutes  *float64 `json:"egafetch_minutes"`
	PyEGA3Minutes    *float64 `json:"pyega3_minutes"`
	TimeReductionPct *float64 `json:"time_reduction_pct"`
	SpeedupX         *float64 `json:"speedup_x"`
	SpeedIncreasePct *float64 `json:"speed_increase_pct"`
}

type summaryJSON struct {
	TargetID             string    `json:"target_id"`
	HaveBoth             bool      `json:"have_both"`
	Runs                 []runJSON `json:"runs"`
	MeanTimeReductionPct *float64  `json:"mean_time_reduction_pct"`
	MeanSpeedupX         *float64  `json:"mean_speedup_x"`
	MeanSpeedIncreasePct *float64  `json:"mean_speed_increase_pct"`
}

func toJSONSummaries(sums []metrics.TargetSummary) []summaryJSON {
	out := make([]summaryJSON, 0, len(sums))
	for _, sum := range sums {
		js := summaryJSON{
			TargetID:             sum.TargetID,
			HaveBoth:             sum.HaveBoth,
			MeanTimeReductionPct: fptr(sum.MeanTimeReductionPct),
			MeanSpeedupX:         fptr(sum.MeanSpeedupX),
			MeanSpeedIncreasePct: fptr(sum.MeanSpeedIncreasePct),
		}
		for _, row := range sum.Rows {
			js.Runs = append(js.Runs, runJSON{
				Run:              row.Run,
				EGAFetchMinutes:  fptr(row.EGAFetchMinutes),
				PyEGA3Minutes:    fptr(row.PyEGA3Minutes),
				TimeReductionPct: fptr(row.TimeReductionPct),
				SpeedupX:         fptr(row.SpeedupX),
				SpeedIncreasePct: fptr(row.SpeedIncreasePct),
			})
		}
		out = append(out, js)
	}
	return out
}

func fptr(x float64) *float64 {
	if math.IsNaN(x) {
		return nil
	}
	return &x
}
