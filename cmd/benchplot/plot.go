package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/plot"

	"benchplot/internal/chart"
	"benchplot/internal/history"
	"benchplot/internal/metrics"
	"benchplot/internal/report"
	"benchplot/internal/results"
	"benchplot/internal/viewer"
)

var (
	plotCSV         string
	plotOut         string
	plotOnlySuccess bool
	plotSave        bool
)

// factories, replaceable in tests
var (
	newHistoryStore = func(path string) (history.Store, error) { return history.NewSQLiteStore(path) }
	showChart       = viewer.Show
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render per-target comparison charts with a printed summary",
	Long: `Reads the results CSV, computes per-run speedup of EGAfetch over pyEGA3
for every target, renders a line chart per target, and prints the metrics
table. Without --out each chart opens in the platform image viewer; with
--out charts are written as image files (png/svg/pdf by extension), one per
target when the CSV covers several targets.`,
	RunE: runPlot,
}

func init() {
	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().StringVar(&plotCSV, "csv", "", "Path to results.csv")
	plotCmd.Flags().StringVar(&plotOut, "out", "", "Optional output image path (png/svg/pdf). If omitted, shows viewer.")
	plotCmd.Flags().BoolVar(&plotOnlySuccess, "only-success", false, "Include only rows with exit_code == 0")
	plotCmd.Flags().BoolVar(&plotSave, "save", false, "Save per-target mean metrics to the history store")
	plotCmd.MarkFlagRequired("csv")
}

func runPlot(cmd *cobra.Command, args []string) error {
	recs, err := results.LoadRecords(plotCSV, plotOnlySuccess)
	if err != nil {
		return err
	}

	var store history.Store
	if plotSave {
		store, err = newHistoryStore(viper.GetString("history_path"))
		if err != nil {
			return fmt.Errorf("open history store: %w", err)
		}
		defer store.Close()
	}

	targets := results.Targets(recs)
	multi := len(targets) > 1

	for _, target := range targets {
		sub := results.ForTarget(recs, target)
		sum := metrics.Compute(target, sub)

		p, err := chart.Build(sum, sub)
		if err != nil {
			return fmt.Errorf("chart for %s: %w", target, err)
		}

		report.PrintTarget(cmd.OutOrStdout(), sum)

		if plotOut != "" {
			outPath := chart.TargetPath(plotOut, target, multi)
			if err := chart.Save(p, outPath); err != nil {
				return err
			}
			report.PrintSaved(cmd.OutOrStdout(), outPath)
		} else {
			if err := showPlot(p, target); err != nil {
				return err
			}
		}

		if store != nil {
			if !sum.HaveBoth {
				slog.Debug("skipping history save, metrics unavailable", "target", target)
				continue
			}
			entry := history.Entry{
				CSVPath:              plotCSV,
				TargetID:             target,
				Runs:                 len(sum.Rows),
				MeanTimeReductionPct: sum.MeanTimeReductionPct,
				MeanSpeedupX:         sum.MeanSpeedupX,
				MeanSpeedIncreasePct: sum.MeanSpeedIncreasePct,
			}
			if err := store.SaveEntry(entry); err != nil {
				return fmt.Errorf("save history for %s: %w", target, err)
			}
		}
	}
	return nil
}

// showPlot renders the chart to a temp file and hands it to the platform
// viewer, one target at a time. The file is left in place: openers like
// xdg-open return before the real viewer has read it, so rendered charts
// stay until the OS clears its temp directory.
func showPlot(p *plot.Plot, target string) error {
	dir, err := os.MkdirTemp("", "benchplot")
	if err != nil {
		return fmt.Errorf("temp dir for viewer: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.png", target))
	if err := chart.Save(p, path); err != nil {
		return err
	}
	slog.Debug("rendered chart for viewer", "path", path)
	return showChart(path)
}
