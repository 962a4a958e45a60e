package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"benchplot/internal/results"
)

var (
	checkCSV         string
	checkOnlySuccess bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a results CSV and report row coverage",
	Long: `Validates that the CSV carries every required column and that rows exist
for the benchmarked tools, then reports per-tool and per-target row counts
along with how many rows numeric coercion would drop.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkCSV, "csv", "", "Path to results.csv")
	checkCmd.Flags().BoolVar(&checkOnlySuccess, "only-success", false, "Include only rows with exit_code == 0")
	checkCmd.MarkFlagRequired("csv")
}

func runCheck(cmd *cobra.Command, args []string) error {
	rows, err := results.Load(checkCSV)
	if err != nil {
		return err
	}
	total := len(rows)

	rows, err = results.FilterTools(rows)
	if err != nil {
		return err
	}
	recognized := len(rows)

	successful := len(results.FilterSuccess(rows))
	if checkOnlySuccess {
		rows = results.FilterSuccess(rows)
	}

	recs := results.Normalize(rows)
	dropped := len(rows) - len(recs)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: OK\n\n", checkCSV)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "METRIC\tCOUNT")
	fmt.Fprintf(w, "Total rows\t%d\n", total)
	fmt.Fprintf(w, "Recognized-tool rows\t%d\n", recognized)
	fmt.Fprintf(w, "Successful rows\t%d\n", successful)
	fmt.Fprintf(w, "Dropped (unparseable)\t%d\n", dropped)
	fmt.Fprintf(w, "Usable records\t%d\n", len(recs))
	w.Flush()

	byTool := make(map[string]int)
	for _, rec := range recs {
		byTool[rec.Tool]++
	}
	fmt.Fprintln(out, "\nRows per tool:")
	for _, tool := range []string{results.ToolEGAFetch, results.ToolPyEGA3} {
		fmt.Fprintf(out, "  %-10s %d\n", tool, byTool[tool])
	}

	fmt.Fprintln(out, "\nRows per target:")
	for _, target := range results.Targets(recs) {
		fmt.Fprintf(out, "  %-20s %d\n", target, len(results.ForTarget(recs, target)))
	}
	return nil
}
